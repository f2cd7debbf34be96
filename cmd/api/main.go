package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/moviesir-api/internal/application/register"
	"github.com/moviesir-api/internal/config"
	"github.com/moviesir-api/internal/infrastructure/dynamo"
	"github.com/moviesir-api/internal/infrastructure/smtp"
	snsinfra "github.com/moviesir-api/internal/infrastructure/sns"
	transporthttp "github.com/moviesir-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// Mailer: real SMTP in production, log-only elsewhere so the flow works
	// without a mail server.
	var mailer smtp.Mailer
	if cfg.AppEnv == "production" {
		mailer = smtp.NewMailer(cfg)
	} else {
		mailer = smtp.NewLogMailer()
	}

	// SNS registration-event publisher (optional — graceful fallback).
	var publisher transporthttp.EventPublisher
	if cfg.SNSTopicARN != "" {
		if p, err := snsinfra.NewPublisher(cfg); err == nil {
			publisher = p
		} else {
			log.Printf("WARN: SNS publisher not available: %v", err)
		}
	}

	deps := &transporthttp.Deps{
		AccountRepo: dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTables.Accounts),
		MovieRepo:   dynamo.NewMovieRepo(dynamoClient, cfg.DynamoTables.Movies, cfg.DynamoTables.Genres, cfg.DynamoTables.Providers),
		Mailer:      mailer,
		Publisher:   publisher,
		Codes:       register.NewCodeStore(),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	movieapp "github.com/moviesir-api/internal/application/movie"
	"github.com/moviesir-api/internal/application/register"
	"github.com/moviesir-api/internal/config"
	"github.com/moviesir-api/internal/transport/http/handler"
	appmiddleware "github.com/moviesir-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	AccountRepo AccountRepository
	MovieRepo   MovieRepository
	Mailer      CodeMailer
	Publisher   EventPublisher
	Codes       *register.CodeStore
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the public register group.
	publicRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	registerSvc := register.NewService(register.ServiceDeps{
		AccountStore: deps.AccountRepo,
		Codes:        deps.Codes,
		CodeSender:   deps.Mailer,
		Publisher:    deps.Publisher,
	})
	movieSvc := movieapp.NewService(deps.MovieRepo)

	healthH := handler.NewHealthHandler()
	registerH := handler.NewRegisterHandler(registerSvc)
	movieH := handler.NewMovieHandler(movieSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check", healthH.Ping)

		r.Route("/register", func(r chi.Router) {
			r.Use(publicRL.Limit)
			r.Post("/basic", registerH.Basic)
			r.Post("/email/check", registerH.CheckEmail)
			r.Post("/email/send-code", registerH.SendCode)
			r.Post("/email/verify-code", registerH.VerifyCode)
			r.Post("/preferences", registerH.Preferences)
			r.Post("/complete", registerH.Complete)
		})

		r.Get("/movies", movieH.List)
	})

	return r
}

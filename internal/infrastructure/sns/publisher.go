package sns

import (
	"context"
	"encoding/json"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/moviesir-api/internal/config"
	"github.com/moviesir-api/internal/domain"
)

// Publisher announces completed registrations on an SNS topic so downstream
// consumers (welcome mail, analytics) can react.
type Publisher interface {
	PublishRegistered(ctx context.Context, a *domain.Account) error
}

type publisher struct {
	client   *sns.Client
	topicARN string
}

func NewPublisher(cfg *config.Config) (Publisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &publisher{client: sns.NewFromConfig(awsCfg), topicARN: cfg.SNSTopicARN}, nil
}

type registeredEvent struct {
	Event      string `json:"event"`
	AccountID  string `json:"account_id"`
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	CreatedAt  string `json:"created_at"`
}

func (p *publisher) PublishRegistered(ctx context.Context, a *domain.Account) error {
	payload, err := json.Marshal(registeredEvent{
		Event:      "user.registered",
		AccountID:  a.AccountID,
		Identifier: a.Identifier,
		Email:      a.Email,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	msg := string(payload)
	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: &p.topicARN,
		Message:  &msg,
	})
	return err
}

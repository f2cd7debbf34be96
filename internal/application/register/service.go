package register

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moviesir-api/internal/domain"
	"github.com/moviesir-api/internal/pkg/id"
)

// Service exposes the six registration stage operations. The stages are
// independently callable and share no state except the injected CodeStore;
// sequencing (basic → verify → complete) is the client's contract, not
// enforced here.
type Service interface {
	Basic(ctx context.Context, req domain.RegisterBasicRequest) (*domain.RegisterIdentity, error)
	CheckEmail(ctx context.Context, email string) error
	SendCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
	Preferences(ctx context.Context, req domain.RegisterPreferencesRequest) (*domain.RegisterPreferences, error)
	Complete(ctx context.Context, req domain.RegisterCompleteRequest) (*domain.Account, error)
}

type accountStore interface {
	ExistsByIdentifier(ctx context.Context, identifier string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, a *domain.Account) error
}

type codeSender interface {
	SendVerificationCode(email, code string) error
}

type eventPublisher interface {
	PublishRegistered(ctx context.Context, a *domain.Account) error
}

type service struct {
	store     accountStore
	codes     *CodeStore
	sender    codeSender
	publisher eventPublisher // optional
}

type ServiceDeps struct {
	AccountStore accountStore
	Codes        *CodeStore
	CodeSender   codeSender
	Publisher    eventPublisher
}

func NewService(deps ServiceDeps) Service {
	return &service{
		store:     deps.AccountStore,
		codes:     deps.Codes,
		sender:    deps.CodeSender,
		publisher: deps.Publisher,
	}
}

// Basic validates the submitted identity and checks for duplicates. It
// persists nothing; the echo lets the client move to the next stage.
func (s *service) Basic(ctx context.Context, req domain.RegisterBasicRequest) (*domain.RegisterIdentity, error) {
	if err := ValidateIdentifier(req.Identifier); err != nil {
		return nil, err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if req.Password != req.PasswordConfirm {
		return nil, fmt.Errorf("passwords do not match: %w", domain.ErrConflict)
	}
	taken, err := s.store.ExistsByIdentifier(ctx, req.Identifier)
	if err != nil {
		return nil, fmt.Errorf("user store lookup: %v: %w", err, domain.ErrDependency)
	}
	if taken {
		return nil, fmt.Errorf("identifier already taken: %w", domain.ErrConflict)
	}
	inUse, err := s.store.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("user store lookup: %v: %w", err, domain.ErrDependency)
	}
	if inUse {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}
	return &domain.RegisterIdentity{
		Identifier:  req.Identifier,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	}, nil
}

// CheckEmail is a pure query: syntax plus duplicate check, no mutation.
func (s *service) CheckEmail(ctx context.Context, email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	inUse, err := s.store.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("user store lookup: %v: %w", err, domain.ErrDependency)
	}
	if inUse {
		return fmt.Errorf("email already in use: %w", domain.ErrConflict)
	}
	return nil
}

// SendCode issues a fresh code for the email (replacing any prior one) and
// hands it to the delivery channel.
func (s *service) SendCode(ctx context.Context, email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	code, err := s.codes.Issue(email)
	if err != nil {
		return err
	}
	if err := s.sender.SendVerificationCode(email, code); err != nil {
		return fmt.Errorf("deliver verification code: %v: %w", err, domain.ErrDependency)
	}
	return nil
}

// VerifyCode compares the candidate against the stored code. A match leaves
// no persisted trace; "verified" means a matching code existed at check time.
func (s *service) VerifyCode(ctx context.Context, email, code string) error {
	matched, err := s.codes.Check(email, code)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("verification code does not match: %w", domain.ErrConflict)
	}
	return nil
}

// Preferences echoes the submitted sets. Preferences are only persisted at
// the complete stage, as part of the resupplied payload.
func (s *service) Preferences(ctx context.Context, req domain.RegisterPreferencesRequest) (*domain.RegisterPreferences, error) {
	return &domain.RegisterPreferences{
		PreferredGenres: req.PreferredGenres,
		OwnedServices:   req.OwnedServices,
	}, nil
}

// Complete assembles the account record and hands it to the user store.
// Earlier stages are not re-checked here.
func (s *service) Complete(ctx context.Context, req domain.RegisterCompleteRequest) (*domain.Account, error) {
	a := &domain.Account{
		AccountID:  id.New(),
		Identifier: req.Identifier,
		// TODO: hash with bcrypt before persisting once hashing is in scope
		Password:        req.Password,
		DisplayName:     req.DisplayName,
		Email:           req.Email,
		PreferredGenres: req.PreferredGenres,
		OwnedServices:   req.OwnedServices,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.store.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create account: %v: %w", err, domain.ErrDependency)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishRegistered(ctx, a); err != nil {
			slog.Warn("failed to publish registration event", "account_id", a.AccountID, "err", err)
		}
	}
	return a, nil
}

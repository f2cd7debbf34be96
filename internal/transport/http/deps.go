package http

import (
	"context"

	"github.com/moviesir-api/internal/domain"
)

// AccountRepository is the minimal interface the router requires from the
// user store: duplicate checks and the single create at completion.
type AccountRepository interface {
	ExistsByIdentifier(ctx context.Context, identifier string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, a *domain.Account) error
}

// MovieRepository is the minimal interface the router requires from the
// movie catalog store.
type MovieRepository interface {
	Upsert(ctx context.Context, m *domain.Movie) error
	PutGenreIfAbsent(ctx context.Context, g domain.MovieGenre) (bool, error)
	PutProviderIfAbsent(ctx context.Context, p domain.MovieProvider) (bool, error)
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Movie, string, error)
}

// CodeMailer is the delivery channel for verification codes.
type CodeMailer interface {
	SendVerificationCode(to, code string) error
}

// EventPublisher announces completed registrations. May be nil.
type EventPublisher interface {
	PublishRegistered(ctx context.Context, a *domain.Account) error
}

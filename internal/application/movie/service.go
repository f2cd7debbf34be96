package movie

import (
	"context"
	"log/slog"
	"time"

	"github.com/moviesir-api/internal/domain"
)

type movieStore interface {
	Upsert(ctx context.Context, m *domain.Movie) error
	PutGenreIfAbsent(ctx context.Context, g domain.MovieGenre) (bool, error)
	PutProviderIfAbsent(ctx context.Context, p domain.MovieProvider) (bool, error)
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Movie, string, error)
}

// IngestStats summarizes one loader run.
type IngestStats struct {
	Total     int
	Succeeded int
	Failed    int
	Genres    int
	Providers int
}

type Service interface {
	Ingest(ctx context.Context, records []domain.MovieRecord) (*IngestStats, error)
	List(ctx context.Context, limit int, cursor string) ([]domain.Movie, string, error)
}

type service struct {
	store movieStore
}

func NewService(store movieStore) Service {
	return &service{store: store}
}

// Ingest upserts every record plus its genre and provider catalog rows.
// A record that fails is counted and skipped; the run carries on.
func (s *service) Ingest(ctx context.Context, records []domain.MovieRecord) (*IngestStats, error) {
	stats := &IngestStats{Total: len(records)}
	now := time.Now().UTC()
	for i, rec := range records {
		if (i+1)%100 == 0 {
			slog.Info("ingest progress", "done", i+1, "total", stats.Total)
		}
		m := toMovie(rec, now)
		if err := s.store.Upsert(ctx, m); err != nil {
			slog.Warn("movie upsert failed", "movie_id", rec.ID, "title", rec.Title, "err", err)
			stats.Failed++
			continue
		}
		stats.Succeeded++
		for _, g := range rec.Genres {
			created, err := s.store.PutGenreIfAbsent(ctx, g)
			if err != nil {
				slog.Warn("genre insert failed", "movie_id", rec.ID, "genre_id", g.GenreID, "err", err)
				continue
			}
			if created {
				stats.Genres++
			}
		}
		for _, p := range rec.Providers {
			if p.ProviderID == 0 {
				continue
			}
			created, err := s.store.PutProviderIfAbsent(ctx, p)
			if err != nil {
				slog.Warn("provider insert failed", "movie_id", rec.ID, "provider_id", p.ProviderID, "err", err)
				continue
			}
			if created {
				stats.Providers++
			}
		}
	}
	return stats, nil
}

func (s *service) List(ctx context.Context, limit int, cursor string) ([]domain.Movie, string, error) {
	if limit < 1 {
		limit = 50
	}
	return s.store.ScanPage(ctx, int32(limit), cursor)
}

func toMovie(rec domain.MovieRecord, now time.Time) *domain.Movie {
	providers := make([]domain.MovieProvider, 0, len(rec.Providers))
	for _, p := range rec.Providers {
		if p.ProviderID == 0 {
			continue
		}
		if p.Region == "" {
			p.Region = "KR"
		}
		providers = append(providers, p)
	}
	return &domain.Movie{
		MovieID:     rec.ID,
		Title:       rec.Title,
		TitleEN:     rec.OriginalTitle,
		PosterPath:  rec.PosterPath,
		Overview:    rec.Overview,
		ReleaseDate: rec.ReleaseDate,
		Runtime:     rec.Runtime,
		VoteAverage: rec.VoteAverage,
		VoteCount:   rec.VoteCount,
		Popularity:  rec.Popularity,
		Genres:      rec.Genres,
		Providers:   providers,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

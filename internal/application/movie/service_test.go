package movie

import (
	"context"
	"errors"
	"testing"

	"github.com/moviesir-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockMovieStore struct{ mock.Mock }

func (m *mockMovieStore) Upsert(ctx context.Context, mv *domain.Movie) error {
	return m.Called(ctx, mv).Error(0)
}
func (m *mockMovieStore) PutGenreIfAbsent(ctx context.Context, g domain.MovieGenre) (bool, error) {
	args := m.Called(ctx, g)
	return args.Bool(0), args.Error(1)
}
func (m *mockMovieStore) PutProviderIfAbsent(ctx context.Context, p domain.MovieProvider) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}
func (m *mockMovieStore) ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Movie, string, error) {
	args := m.Called(ctx, limit, cursor)
	return args.Get(0).([]domain.Movie), args.String(1), args.Error(2)
}

func sampleRecord() domain.MovieRecord {
	return domain.MovieRecord{
		ID:            603,
		Title:         "매트릭스",
		OriginalTitle: "The Matrix",
		PosterPath:    "/poster.jpg",
		ReleaseDate:   "1999-03-31",
		Runtime:       136,
		VoteAverage:   8.2,
		VoteCount:     25000,
		Popularity:    91.5,
		Genres:        []domain.MovieGenre{{GenreID: 28, Name: "Action"}, {GenreID: 878, Name: "SF"}},
		Providers:     []domain.MovieProvider{{ProviderID: 8, Name: "Netflix"}},
	}
}

func TestIngest_CountsStats(t *testing.T) {
	store := &mockMovieStore{}
	store.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	store.On("PutGenreIfAbsent", mock.Anything, domain.MovieGenre{GenreID: 28, Name: "Action"}).Return(true, nil)
	store.On("PutGenreIfAbsent", mock.Anything, domain.MovieGenre{GenreID: 878, Name: "SF"}).Return(false, nil)
	store.On("PutProviderIfAbsent", mock.Anything, mock.Anything).Return(true, nil)

	svc := NewService(store)
	stats, err := svc.Ingest(context.Background(), []domain.MovieRecord{sampleRecord()})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Succeeded)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 1, stats.Genres) // only the newly created row counts
	assert.Equal(t, 1, stats.Providers)
}

func TestIngest_UpsertFailureSkipsRecord(t *testing.T) {
	store := &mockMovieStore{}
	store.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("dynamo down"))

	svc := NewService(store)
	stats, err := svc.Ingest(context.Background(), []domain.MovieRecord{sampleRecord()})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 0, stats.Succeeded)
	// Catalog rows of a failed record are never attempted.
	store.AssertNotCalled(t, "PutGenreIfAbsent", mock.Anything, mock.Anything)
}

func TestIngest_DefaultsProviderRegion(t *testing.T) {
	store := &mockMovieStore{}
	var upserted *domain.Movie
	store.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { upserted = args.Get(1).(*domain.Movie) }).
		Return(nil)
	store.On("PutGenreIfAbsent", mock.Anything, mock.Anything).Return(false, nil)
	store.On("PutProviderIfAbsent", mock.Anything, mock.Anything).Return(false, nil)

	svc := NewService(store)
	_, err := svc.Ingest(context.Background(), []domain.MovieRecord{sampleRecord()})

	require.NoError(t, err)
	require.NotNil(t, upserted)
	require.Len(t, upserted.Providers, 1)
	assert.Equal(t, "KR", upserted.Providers[0].Region)
	assert.Equal(t, "The Matrix", upserted.TitleEN)
	assert.False(t, upserted.CreatedAt.IsZero())
}

func TestIngest_SkipsProviderWithoutID(t *testing.T) {
	rec := sampleRecord()
	rec.Genres = nil
	rec.Providers = []domain.MovieProvider{{ProviderID: 0, Name: "Unknown"}}

	store := &mockMovieStore{}
	store.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store)
	stats, err := svc.Ingest(context.Background(), []domain.MovieRecord{rec})

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Providers)
	store.AssertNotCalled(t, "PutProviderIfAbsent", mock.Anything, mock.Anything)
}

func TestList_DefaultsLimit(t *testing.T) {
	store := &mockMovieStore{}
	store.On("ScanPage", mock.Anything, int32(50), "").Return([]domain.Movie{}, "", nil)

	svc := NewService(store)
	_, _, err := svc.List(context.Background(), 0, "")

	require.NoError(t, err)
	store.AssertExpectations(t)
}

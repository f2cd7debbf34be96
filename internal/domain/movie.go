package domain

import "time"

// Movie mirrors the TMDB crawl dump ingested by cmd/loader. Genres and
// providers are denormalized onto the item; the catalog tables only hold the
// id→name mapping.
type Movie struct {
	MovieID     int64           `json:"id" dynamodbav:"movie_id"`
	Title       string          `json:"title" dynamodbav:"title"`
	TitleEN     string          `json:"title_en" dynamodbav:"title_en"`
	PosterPath  string          `json:"poster_path" dynamodbav:"poster_path"`
	Overview    string          `json:"overview" dynamodbav:"overview"`
	ReleaseDate string          `json:"release_date" dynamodbav:"release_date"`
	Runtime     int             `json:"runtime" dynamodbav:"runtime"`
	VoteAverage float64         `json:"vote_average" dynamodbav:"vote_average"`
	VoteCount   int             `json:"vote_count" dynamodbav:"vote_count"`
	Popularity  float64         `json:"popularity" dynamodbav:"popularity"`
	Genres      []MovieGenre    `json:"genres" dynamodbav:"genres"`
	Providers   []MovieProvider `json:"providers" dynamodbav:"providers"`
	CreatedAt   time.Time       `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time       `json:"updated" dynamodbav:"updated_at"`
}

type MovieGenre struct {
	GenreID int64  `json:"id" dynamodbav:"genre_id"`
	Name    string `json:"name" dynamodbav:"name"`
}

type MovieProvider struct {
	ProviderID int64  `json:"provider_id" dynamodbav:"provider_id"`
	Name       string `json:"provider_name" dynamodbav:"name"`
	Region     string `json:"region,omitempty" dynamodbav:"region"`
}

// MovieRecord is the raw shape of one entry in the loader's JSON input.
type MovieRecord struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	OriginalTitle string          `json:"original_title"`
	PosterPath    string          `json:"poster_path"`
	Overview      string          `json:"overview"`
	ReleaseDate   string          `json:"release_date"`
	Runtime       int             `json:"runtime"`
	VoteAverage   float64         `json:"vote_average"`
	VoteCount     int             `json:"vote_count"`
	Popularity    float64         `json:"popularity"`
	Genres        []MovieGenre    `json:"genres"`
	Providers     []MovieProvider `json:"providers"`
}

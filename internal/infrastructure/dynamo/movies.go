package dynamo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/moviesir-api/internal/domain"
)

// MovieRepo provides typed DynamoDB operations for the movie catalog tables.
type MovieRepo struct {
	client         *dynamodb.Client
	moviesTable    string
	genresTable    string
	providersTable string
}

func NewMovieRepo(client *dynamodb.Client, moviesTable, genresTable, providersTable string) *MovieRepo {
	return &MovieRepo{
		client:         client,
		moviesTable:    moviesTable,
		genresTable:    genresTable,
		providersTable: providersTable,
	}
}

// Upsert writes the movie unconditionally; a repeated load replaces the item.
func (r *MovieRepo) Upsert(ctx context.Context, m *domain.Movie) error {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal movie: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.moviesTable),
		Item:      item,
	})
	return err
}

// PutGenreIfAbsent inserts the genre catalog row unless it already exists.
// Returns true when a new row was written.
func (r *MovieRepo) PutGenreIfAbsent(ctx context.Context, g domain.MovieGenre) (bool, error) {
	item, err := attributevalue.MarshalMap(g)
	if err != nil {
		return false, fmt.Errorf("marshal genre: %w", err)
	}
	return r.putIfAbsent(ctx, r.genresTable, item, "genre_id")
}

// PutProviderIfAbsent inserts the OTT provider catalog row unless it already
// exists. Returns true when a new row was written.
func (r *MovieRepo) PutProviderIfAbsent(ctx context.Context, p domain.MovieProvider) (bool, error) {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return false, fmt.Errorf("marshal provider: %w", err)
	}
	return r.putIfAbsent(ctx, r.providersTable, item, "provider_id")
}

func (r *MovieRepo) putIfAbsent(ctx context.Context, table string, item map[string]types.AttributeValue, pk string) (bool, error) {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(" + pk + ")"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ScanPage returns a page of movies. cursor is a base64-encoded movie_id used
// as ExclusiveStartKey; an empty next cursor means no more pages.
func (r *MovieRepo) ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Movie, string, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.moviesTable),
		Limit:     aws.Int32(limit),
	}
	if cursor != "" {
		movieID, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", fmt.Errorf("invalid cursor: %w", domain.ErrBadRequest)
		}
		input.ExclusiveStartKey = numKey("movie_id", movieID)
	}
	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, "", err
	}
	var movies []domain.Movie
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &movies); err != nil {
		return nil, "", err
	}
	nextCursor := ""
	if v, ok := out.LastEvaluatedKey["movie_id"].(*types.AttributeValueMemberN); ok {
		nextCursor = encodeCursor(v.Value)
	}
	return movies, nextCursor, nil
}

func encodeCursor(movieID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(movieID))
}

func decodeCursor(cursor string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", err
	}
	if _, err := strconv.ParseInt(string(b), 10, 64); err != nil {
		return "", err
	}
	return string(b), nil
}

package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"movie-catalog-service/internal/events"
	"movie-catalog-service/internal/model"
	"movie-catalog-service/internal/repository"
)

var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

// foreign_key_violation
const pgFKViolation = "23503"

type RatingService interface {
	RateMovie(ctx context.Context, movieID, accountID uuid.UUID, rating int) (float64, error)
	ListAccountRatings(ctx context.Context, accountID uuid.UUID) ([]model.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	publisher  events.EventPublisher
}

func NewRatingService(ratingRepo repository.RatingRepository, publisher events.EventPublisher) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		publisher:  publisher,
	}
}

// RateMovie validates the range, then records the rating and the movie's
// recomputed mean as one atomic unit. A later submission for the same
// (account, movie) pair overwrites the earlier one.
func (s *ratingService) RateMovie(ctx context.Context, movieID, accountID uuid.UUID, rating int) (float64, error) {
	if rating < 1 || rating > 5 {
		return 0, ErrRatingOutOfRange
	}

	mean, err := s.ratingRepo.Upsert(ctx, accountID, movieID, rating)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrMovieNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
			return 0, ErrMovieNotFound
		}

		return 0, err
	}

	s.publisher.PublishMovieRated(movieID, accountID, rating, mean)

	return mean, nil
}

func (s *ratingService) ListAccountRatings(ctx context.Context, accountID uuid.UUID) ([]model.Rating, error) {
	return s.ratingRepo.ListByAccount(ctx, accountID)
}

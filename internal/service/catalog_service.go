package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"movie-catalog-service/internal/events"
	"movie-catalog-service/internal/model"
	"movie-catalog-service/internal/repository"
)

var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrDirectorNotFound = errors.New("director not found")
)

type CatalogService interface {
	CreateMovie(ctx context.Context, title string, directorID *uuid.UUID) (*model.Movie, error)
	ListMovies(ctx context.Context) ([]model.Movie, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, title string, directorID *uuid.UUID) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	SearchMovies(ctx context.Context, term string) ([]model.Movie, error)

	CreateDirector(ctx context.Context, name string) (*model.Director, error)
	ListDirectors(ctx context.Context) ([]model.Director, error)
	GetDirector(ctx context.Context, id uuid.UUID) (*model.Director, error)
	ListDirectorMovies(ctx context.Context, directorID uuid.UUID) ([]model.Movie, error)
	UpdateDirector(ctx context.Context, id uuid.UUID, name string) (*model.Director, error)
	DeleteDirector(ctx context.Context, id uuid.UUID) (*model.Director, error)
}

type catalogService struct {
	movieRepo    repository.MovieRepository
	directorRepo repository.DirectorRepository
	publisher    events.EventPublisher
}

func NewCatalogService(movieRepo repository.MovieRepository, directorRepo repository.DirectorRepository, publisher events.EventPublisher) CatalogService {
	return &catalogService{
		movieRepo:    movieRepo,
		directorRepo: directorRepo,
		publisher:    publisher,
	}
}

func (s *catalogService) CreateMovie(ctx context.Context, title string, directorID *uuid.UUID) (*model.Movie, error) {
	movie := &model.Movie{
		Title:      title,
		DirectorID: directorID,
	}

	created, err := s.movieRepo.Create(ctx, movie)
	if err != nil {
		return nil, err
	}

	s.publisher.PublishMovieCreated(created)

	return created, nil
}

func (s *catalogService) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return s.movieRepo.List(ctx)
}

func (s *catalogService) GetMovie(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	return movie, nil
}

func (s *catalogService) UpdateMovie(ctx context.Context, id uuid.UUID, title string, directorID *uuid.UUID) (*model.Movie, error) {
	movie, err := s.movieRepo.Update(ctx, id, title, directorID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	return movie, nil
}

func (s *catalogService) DeleteMovie(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	movie, err := s.movieRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	return movie, nil
}

func (s *catalogService) SearchMovies(ctx context.Context, term string) ([]model.Movie, error) {
	return s.movieRepo.SearchByTitle(ctx, term)
}

func (s *catalogService) CreateDirector(ctx context.Context, name string) (*model.Director, error) {
	return s.directorRepo.Create(ctx, &model.Director{Name: name})
}

func (s *catalogService) ListDirectors(ctx context.Context) ([]model.Director, error) {
	return s.directorRepo.List(ctx)
}

func (s *catalogService) GetDirector(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	director, err := s.directorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if director == nil {
		return nil, ErrDirectorNotFound
	}

	return director, nil
}

func (s *catalogService) ListDirectorMovies(ctx context.Context, directorID uuid.UUID) ([]model.Movie, error) {
	return s.movieRepo.ListByDirector(ctx, directorID)
}

func (s *catalogService) UpdateDirector(ctx context.Context, id uuid.UUID, name string) (*model.Director, error) {
	director, err := s.directorRepo.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if director == nil {
		return nil, ErrDirectorNotFound
	}

	return director, nil
}

func (s *catalogService) DeleteDirector(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	director, err := s.directorRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if director == nil {
		return nil, ErrDirectorNotFound
	}

	return director, nil
}

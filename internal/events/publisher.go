package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"movie-catalog-service/internal/model"
)

// EventPublisher emits catalog events for downstream consumers. Publishing
// is fire-and-forget: a broker failure never fails the originating request.
type EventPublisher interface {
	PublishMovieCreated(movie *model.Movie)
	PublishMovieRated(movieID, accountID uuid.UUID, rating int, mean float64)
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (*NatsPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type MovieCreatedEvent struct {
	EventType  string     `json:"event_type"`
	MovieID    uuid.UUID  `json:"movie_id"`
	Title      string     `json:"title"`
	DirectorID *uuid.UUID `json:"director_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type MovieRatedEvent struct {
	EventType  string    `json:"event_type"`
	MovieID    uuid.UUID `json:"movie_id"`
	AccountID  uuid.UUID `json:"account_id"`
	Rating     int       `json:"rating"`
	MeanRating float64   `json:"mean_rating"`
	RatedAt    time.Time `json:"rated_at"`
}

func (p *NatsPublisher) PublishMovieCreated(movie *model.Movie) {
	event := MovieCreatedEvent{
		EventType:  "movie.created",
		MovieID:    movie.ID,
		Title:      movie.Title,
		DirectorID: movie.DirectorID,
		CreatedAt:  movie.CreatedAt,
	}

	p.publish("movie.created", event)
}

func (p *NatsPublisher) PublishMovieRated(movieID, accountID uuid.UUID, rating int, mean float64) {
	event := MovieRatedEvent{
		EventType:  "movie.rated",
		MovieID:    movieID,
		AccountID:  accountID,
		Rating:     rating,
		MeanRating: mean,
		RatedAt:    time.Now(),
	}

	p.publish("movie.rated", event)
}

func (p *NatsPublisher) publish(subject string, event any) {
	eventJSON, err := json.Marshal(event)

	if err != nil {
		slog.Error("Error marshalling event JSON", "subject", subject, "error", err)
		return
	}

	if err := p.conn.Publish(subject, eventJSON); err != nil {
		slog.Error("Error publishing to NATS", "subject", subject, "error", err)
		return
	}

	slog.Info("Published event to NATS", "subject", subject)
}

// NoopPublisher is used when no NATS URL is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishMovieCreated(*model.Movie) {}

func (NoopPublisher) PublishMovieRated(uuid.UUID, uuid.UUID, int, float64) {}

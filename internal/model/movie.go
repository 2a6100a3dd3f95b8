package model

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	DirectorID *uuid.UUID `db:"director_id" json:"director_id"`
	// Rating is the denormalized mean of all ratings for the movie.
	// Nil until the first rating arrives.
	Rating    *float64  `db:"rating" json:"rating"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

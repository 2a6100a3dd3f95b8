package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"movie-catalog-service/internal/service"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type RateMovieRequest struct {
	Rating int `json:"rating"`
}

func (h *RatingHandler) RateMovie(c *fiber.Ctx) error {
	movieID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid movie ID format"})
	}

	accountID, err := GetAccountIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request RateMovieRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	mean, err := h.ratingService.RateMovie(c.Context(), movieID, accountID, request.Rating)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrRatingOutOfRange):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
		case errors.Is(err, service.ErrMovieNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Movie not found"})
		default:
			slog.Error("Error rating movie", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": fmt.Sprintf("Rating put successfully:%.2f", mean)})
}

func (h *RatingHandler) ListMine(c *fiber.Ctx) error {
	accountID, err := GetAccountIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	ratings, err := h.ratingService.ListAccountRatings(c.Context(), accountID)

	if err != nil {
		slog.Error("Error listing ratings", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(ratings)
}

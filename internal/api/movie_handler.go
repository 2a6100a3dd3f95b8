package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"movie-catalog-service/internal/service"
)

type MovieHandler struct {
	catalogService service.CatalogService
	validate       *validator.Validate
}

func NewMovieHandler(catalogService service.CatalogService) *MovieHandler {
	return &MovieHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

type MovieRequest struct {
	Title      string     `json:"title" validate:"required"`
	DirectorID *uuid.UUID `json:"director_id"`
}

func (h *MovieHandler) Create(c *fiber.Ctx) error {
	var request MovieRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	movie, err := h.catalogService.CreateMovie(c.Context(), request.Title, request.DirectorID)

	if err != nil {
		slog.Error("Error creating movie", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

func (h *MovieHandler) List(c *fiber.Ctx) error {
	movies, err := h.catalogService.ListMovies(c.Context())

	if err != nil {
		slog.Error("Error listing movies", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(movies)
}

func (h *MovieHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid movie ID format"})
	}

	movie, err := h.catalogService.GetMovie(c.Context(), id)

	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Movie not found"})
		}

		slog.Error("Error fetching movie", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(movie)
}

func (h *MovieHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid movie ID format"})
	}

	var request MovieRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	movie, err := h.catalogService.UpdateMovie(c.Context(), id, request.Title, request.DirectorID)

	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Movie not found"})
		}

		slog.Error("Error updating movie", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(movie)
}

func (h *MovieHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid movie ID format"})
	}

	movie, err := h.catalogService.DeleteMovie(c.Context(), id)

	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Movie not found"})
		}

		slog.Error("Error deleting movie", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Movie deleted", "deletedMovie": movie})
}

func (h *MovieHandler) Search(c *fiber.Ctx) error {
	term := c.Query("name")

	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please provide a search term"})
	}

	movies, err := h.catalogService.SearchMovies(c.Context(), term)

	if err != nil {
		slog.Error("Error searching movies", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(movies)
}

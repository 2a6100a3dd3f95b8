package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"movie-catalog-service/internal/service"
)

type DirectorHandler struct {
	catalogService service.CatalogService
	validate       *validator.Validate
}

func NewDirectorHandler(catalogService service.CatalogService) *DirectorHandler {
	return &DirectorHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

type DirectorRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *DirectorHandler) Create(c *fiber.Ctx) error {
	var request DirectorRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	director, err := h.catalogService.CreateDirector(c.Context(), request.Name)

	if err != nil {
		slog.Error("Error creating director", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(director)
}

func (h *DirectorHandler) List(c *fiber.Ctx) error {
	directors, err := h.catalogService.ListDirectors(c.Context())

	if err != nil {
		slog.Error("Error listing directors", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(directors)
}

func (h *DirectorHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid director ID format"})
	}

	director, err := h.catalogService.GetDirector(c.Context(), id)

	if err != nil {
		if errors.Is(err, service.ErrDirectorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Director not found"})
		}

		slog.Error("Error fetching director", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(director)
}

func (h *DirectorHandler) ListMovies(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid director ID format"})
	}

	movies, err := h.catalogService.ListDirectorMovies(c.Context(), id)

	if err != nil {
		slog.Error("Error listing director movies", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(movies)
}

func (h *DirectorHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid director ID format"})
	}

	var request DirectorRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	director, err := h.catalogService.UpdateDirector(c.Context(), id, request.Name)

	if err != nil {
		if errors.Is(err, service.ErrDirectorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Director not found"})
		}

		slog.Error("Error updating director", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(director)
}

func (h *DirectorHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid director ID format"})
	}

	director, err := h.catalogService.DeleteDirector(c.Context(), id)

	if err != nil {
		if errors.Is(err, service.ErrDirectorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Director not found"})
		}

		slog.Error("Error deleting director", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Director deleted", "deletedDirector": director})
}

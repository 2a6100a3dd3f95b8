package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"movie-catalog-service/internal/api"
	"movie-catalog-service/internal/model"
	"movie-catalog-service/internal/service"
)

type fakeRatingService struct {
	mean    float64
	err     error
	lastArg int
}

func (f *fakeRatingService) RateMovie(_ context.Context, _, _ uuid.UUID, rating int) (float64, error) {
	f.lastArg = rating
	if f.err != nil {
		return 0, f.err
	}
	return f.mean, nil
}

func (f *fakeRatingService) ListAccountRatings(context.Context, uuid.UUID) ([]model.Rating, error) {
	return []model.Rating{}, nil
}

func newRatingApp(svc service.RatingService) *fiber.App {
	app := fiber.New()
	h := api.NewRatingHandler(svc)
	app.Post("/movies/:id", api.AuthMiddleware(), h.RateMovie)
	app.Get("/ratings", api.AuthMiddleware(), h.ListMine)
	return app
}

func TestRateMovie_Success_EmbedsMean(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &fakeRatingService{mean: 4}
	app := newRatingApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/movies/"+uuid.NewString(), strings.NewReader(`{"rating":4}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Equal(t, "Rating put successfully:4.00", payload["message"])
	require.Equal(t, 4, svc.lastArg)
}

func TestRateMovie_OutOfRange(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &fakeRatingService{err: service.ErrRatingOutOfRange}
	app := newRatingApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/movies/"+uuid.NewString(), strings.NewReader(`{"rating":6}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRateMovie_UnknownMovie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &fakeRatingService{err: service.ErrMovieNotFound}
	app := newRatingApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/movies/"+uuid.NewString(), strings.NewReader(`{"rating":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRateMovie_BadMovieID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newRatingApp(&fakeRatingService{})

	req := httptest.NewRequest(http.MethodPost, "/movies/not-a-uuid", strings.NewReader(`{"rating":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListMine_RequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newRatingApp(&fakeRatingService{})

	req := httptest.NewRequest(http.MethodGet, "/ratings", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

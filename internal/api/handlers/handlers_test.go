package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/feed"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeedService struct{}

func (s *stubFeedService) GetNearbyFeed(ctx context.Context, cfg feed.FilterConfig, policy feed.SortPolicy) ([]domain.ListingResponse, error) {
	return []domain.ListingResponse{}, nil
}

func (s *stubFeedService) GetRecommendedFeed(ctx context.Context, cfg feed.FilterConfig) ([]domain.ListingResponse, error) {
	return []domain.ListingResponse{}, nil
}

func (s *stubFeedService) SearchListings(ctx context.Context, query string) ([]domain.ListingResponse, error) {
	return []domain.ListingResponse{}, nil
}

type stubListingService struct {
	err error
}

func (s *stubListingService) CreateListing(ctx context.Context, req domain.CreateListingRequest, userID string) (domain.ListingResponse, error) {
	return domain.ListingResponse{}, s.err
}

func (s *stubListingService) UpdateListing(ctx context.Context, id string, req domain.UpdateListingRequest, userID string) error {
	return s.err
}

func (s *stubListingService) DeleteListing(ctx context.Context, id string, userID string) error {
	return s.err
}

func (s *stubListingService) GetListingByID(ctx context.Context, id string) (domain.ListingResponse, error) {
	return domain.ListingResponse{}, s.err
}

func (s *stubListingService) GetUserListings(ctx context.Context, userID string, page, limit int) ([]domain.ListingResponse, int64, error) {
	return nil, 0, s.err
}

func (s *stubListingService) UploadListingImage(ctx context.Context, req domain.UploadListingImageRequest, userID string) error {
	return s.err
}

func (s *stubListingService) ReserveListing(ctx context.Context, listingID string, reserverID string) (domain.ReservationResponse, error) {
	return domain.ReservationResponse{}, s.err
}

func (s *stubListingService) CancelReservation(ctx context.Context, listingID string, userID string) error {
	return s.err
}

func (s *stubListingService) RateListing(ctx context.Context, listingID string, req domain.RateListingRequest, userID string) error {
	return s.err
}

func withTestUser(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.NewString())
		return c.Next()
	})
}

func TestGetNearbyFeedRejectsMalformedCoordinates(t *testing.T) {
	app := fiber.New()
	h := NewFeedHandler(&stubFeedService{})
	app.Get("/feed", h.GetNearbyFeed)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/feed?lat=abc&lng=13.4", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.ErrInvalidCoordinates.Error(), body.Error)
}

func TestGetNearbyFeedAcceptsValidQuery(t *testing.T) {
	app := fiber.New()
	h := NewFeedHandler(&stubFeedService{})
	app.Get("/feed", h.GetNearbyFeed)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/feed?lat=52.52&lng=13.4&sort=distance", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/feed?sort=bogus", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteListingByNonOwnerIsForbidden(t *testing.T) {
	app := fiber.New()
	withTestUser(app)
	h := NewListingHandler(&stubListingService{err: domain.ErrUserNotAllowed}, validator.New())
	app.Delete("/listings/:id", h.DeleteListing)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/listings/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.MessageUserNotAllowed, body.Message)
}

func TestCancelReservationMissingReservationIsBadRequest(t *testing.T) {
	app := fiber.New()
	withTestUser(app)
	h := NewListingHandler(&stubListingService{err: domain.ErrReservationNotFound}, validator.New())
	app.Post("/listings/:id/cancel-reservation", h.CancelReservation)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/listings/"+uuid.NewString()+"/cancel-reservation", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

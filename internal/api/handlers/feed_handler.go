package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/feed"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type (
	FeedHandler interface {
		GetNearbyFeed(c *fiber.Ctx) error
		GetRecommendedFeed(c *fiber.Ctx) error
		SearchListings(c *fiber.Ctx) error
	}

	feedHandler struct {
		feedService feed.FeedService
	}
)

func NewFeedHandler(feedService feed.FeedService) FeedHandler {
	return &feedHandler{feedService: feedService}
}

func (h *feedHandler) GetNearbyFeed(c *fiber.Ctx) error {
	cfg, err := parseFilterConfig(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFeed, err)
	}

	policy, err := feed.ParseSortPolicy(c.Query("sort"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFeed, err)
	}

	items, err := h.feedService.GetNearbyFeed(c.Context(), cfg, policy)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetFeed, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": items}, fiber.StatusOK, domain.MessageSuccessGetFeed)
}

func (h *feedHandler) GetRecommendedFeed(c *fiber.Ctx) error {
	cfg, err := parseFilterConfig(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommended, err)
	}

	items, err := h.feedService.GetRecommendedFeed(c.Context(), cfg)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecommended, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": items}, fiber.StatusOK, domain.MessageSuccessGetRecommended)
}

func (h *feedHandler) SearchListings(c *fiber.Ctx) error {
	items, err := h.feedService.SearchListings(c.Context(), c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSearch, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": items}, fiber.StatusOK, domain.MessageSuccessSearch)
}

// parseFilterConfig reads the filter parameters from the query string.
// The reference point is only set when both lat and lng are present;
// without one the feed is served unfiltered by distance.
func parseFilterConfig(c *fiber.Ctx) (feed.FilterConfig, error) {
	cfg := feed.FilterConfig{}

	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw != "" && lngRaw != "" {
		lat, err := strconv.ParseFloat(latRaw, 64)
		if err != nil {
			return feed.FilterConfig{}, domain.ErrInvalidCoordinates
		}
		lng, err := strconv.ParseFloat(lngRaw, 64)
		if err != nil {
			return feed.FilterConfig{}, domain.ErrInvalidCoordinates
		}
		cfg.Reference = &feed.Coordinate{Latitude: lat, Longitude: lng}
	}

	if raw := c.Query("max_distance_km"); raw != "" {
		maxDistance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return feed.FilterConfig{}, err
		}
		cfg.MaxDistanceKm = maxDistance
	}

	if raw := c.Query("categories"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				cfg.CategoryNames = append(cfg.CategoryNames, name)
			}
		}
	}

	cfg.IncludeExpired = c.QueryBool("include_expired", false)

	return cfg, nil
}

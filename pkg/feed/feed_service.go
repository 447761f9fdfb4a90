package feed

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/category"
	"FoodShare-Backend/pkg/listing"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

type (
	FeedService interface {
		GetNearbyFeed(ctx context.Context, cfg FilterConfig, policy SortPolicy) ([]domain.ListingResponse, error)
		GetRecommendedFeed(ctx context.Context, cfg FilterConfig) ([]domain.ListingResponse, error)
		SearchListings(ctx context.Context, query string) ([]domain.ListingResponse, error)
	}

	feedService struct {
		listingRepository listing.ListingRepository
		categoryService   category.CategoryService

		// Refresh bookkeeping: only the completion of the most recently
		// started fetch may replace the published working set. A stale
		// completion is dropped, not applied out of order.
		seq         atomic.Uint64
		mu          sync.Mutex
		snapshot    []*entities.Listing
		snapshotSeq uint64
	}
)

func NewFeedService(listingRepository listing.ListingRepository, categoryService category.CategoryService) FeedService {
	return &feedService{
		listingRepository: listingRepository,
		categoryService:   categoryService,
	}
}

func (s *feedService) GetNearbyFeed(ctx context.Context, cfg FilterConfig, policy SortPolicy) ([]domain.ListingResponse, error) {
	working, err := s.refresh(ctx)
	if err != nil {
		return []domain.ListingResponse{}, err
	}

	filtered := Filter(working, cfg, time.Now())
	sorted := Sort(filtered, policy, cfg.Reference)

	return s.toResponses(sorted, cfg.Reference), nil
}

func (s *feedService) GetRecommendedFeed(ctx context.Context, cfg FilterConfig) ([]domain.ListingResponse, error) {
	working, err := s.refresh(ctx)
	if err != nil {
		return []domain.ListingResponse{}, err
	}

	nearby := Filter(working, cfg, time.Now())
	recommended := Recommend(working, nearby)

	return s.toResponses(recommended, nil), nil
}

func (s *feedService) SearchListings(ctx context.Context, query string) ([]domain.ListingResponse, error) {
	working, err := s.refresh(ctx)
	if err != nil {
		return []domain.ListingResponse{}, err
	}

	matched := Search(query, working)
	return s.toResponses(Sort(matched, SortByNewest, nil), nil), nil
}

// refresh fetches the full available working set and publishes it under
// the sequence guard. The returned slice is the freshest published
// snapshot, which may come from a newer invocation than this one.
func (s *feedService) refresh(ctx context.Context) ([]*entities.Listing, error) {
	seq := s.seq.Add(1)

	listings, err := s.listingRepository.GetAvailableListings(ctx)
	if err != nil {
		return nil, domain.ErrRemoteFetch
	}

	// Categories belong to the same fetch stage; loading them here warms
	// the cache and surfaces store failures at the same boundary.
	if _, err := s.categoryService.LoadCategories(ctx); err != nil {
		return nil, domain.ErrRemoteFetch
	}

	valid := make([]*entities.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Title == "" {
			logrus.WithField("listing_id", l.ID.String()).Warn("skipping malformed listing record")
			continue
		}
		valid = append(valid, l)
	}

	// Newest-first is the normalization baseline every later stage
	// builds on.
	valid = Sort(valid, SortByNewest, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.snapshotSeq {
		s.snapshotSeq = seq
		s.snapshot = valid
	}

	published := make([]*entities.Listing, len(s.snapshot))
	copy(published, s.snapshot)
	return published, nil
}

func (s *feedService) toResponses(listings []*entities.Listing, reference *Coordinate) []domain.ListingResponse {
	response := make([]domain.ListingResponse, 0, len(listings))
	for _, l := range listings {
		item := listing.ToListingResponse(l)
		if reference != nil && hasCoordinates(l) {
			d := DistanceKm(*reference, Coordinate{Latitude: l.Latitude, Longitude: l.Longitude})
			item.DistanceKm = &d
		}
		response = append(response, item)
	}
	return response
}

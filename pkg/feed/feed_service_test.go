package feed

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubListingRepository struct {
	listings []*entities.Listing
	err      error
}

func (r *stubListingRepository) GetAvailableListings(ctx context.Context) ([]*entities.Listing, error) {
	return r.listings, r.err
}

func (r *stubListingRepository) CreateListing(ctx context.Context, l *entities.Listing) error {
	return nil
}

func (r *stubListingRepository) GetListingByID(ctx context.Context, id string) (*entities.Listing, error) {
	return nil, errors.New("not implemented")
}

func (r *stubListingRepository) UpdateListing(ctx context.Context, l *entities.Listing) error {
	return nil
}

func (r *stubListingRepository) DeleteListing(ctx context.Context, id string) error { return nil }

func (r *stubListingRepository) GetUserListings(ctx context.Context, userID string, page, limit int) ([]*entities.Listing, int64, error) {
	return nil, 0, nil
}

func (r *stubListingRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	return nil
}

func (r *stubListingRepository) MarkUnavailable(ctx context.Context, id string) error { return nil }

func (r *stubListingRepository) ReplacePickupSlots(ctx context.Context, listingID string, slots []*entities.PickupSlot) error {
	return nil
}

func (r *stubListingRepository) AddRating(ctx context.Context, rating *entities.Rating) error {
	return nil
}

func (r *stubListingRepository) CreateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return nil
}

func (r *stubListingRepository) GetActiveReservation(ctx context.Context, listingID string) (*entities.Reservation, error) {
	return nil, errors.New("not implemented")
}

func (r *stubListingRepository) UpdateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return nil
}

type stubCategoryService struct {
	err error
}

func (s *stubCategoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	return nil, s.err
}

func (s *stubCategoryService) LoadCategories(ctx context.Context) ([]*entities.Category, error) {
	return nil, s.err
}

func TestGetNearbyFeedSortsNewestFirst(t *testing.T) {
	repo := &stubListingRepository{listings: []*entities.Listing{
		newListing(1, day(1)),
		newListing(2, day(3)),
		newListing(3, day(2)),
	}}
	svc := NewFeedService(repo, &stubCategoryService{})

	items, err := svc.GetNearbyFeed(context.Background(), FilterConfig{}, SortByNewest)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Listing 2", items[0].Title)
	assert.Equal(t, "Listing 3", items[1].Title)
	assert.Equal(t, "Listing 1", items[2].Title)
}

func TestGetNearbyFeedSkipsMalformedRecords(t *testing.T) {
	broken := newListing(1, day(1))
	broken.Title = ""
	repo := &stubListingRepository{listings: []*entities.Listing{
		broken,
		newListing(2, day(2)),
	}}
	svc := NewFeedService(repo, &stubCategoryService{})

	items, err := svc.GetNearbyFeed(context.Background(), FilterConfig{}, SortByNewest)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Listing 2", items[0].Title)
}

func TestGetNearbyFeedStoreFailure(t *testing.T) {
	repo := &stubListingRepository{err: errors.New("connection refused")}
	svc := NewFeedService(repo, &stubCategoryService{})

	items, err := svc.GetNearbyFeed(context.Background(), FilterConfig{}, SortByNewest)

	assert.ErrorIs(t, err, domain.ErrRemoteFetch)
	assert.Empty(t, items)
}

func TestGetNearbyFeedCategoryStoreFailure(t *testing.T) {
	repo := &stubListingRepository{listings: []*entities.Listing{newListing(1, day(1))}}
	svc := NewFeedService(repo, &stubCategoryService{err: domain.ErrRemoteFetch})

	_, err := svc.GetNearbyFeed(context.Background(), FilterConfig{}, SortByNewest)

	assert.ErrorIs(t, err, domain.ErrRemoteFetch)
}

func TestGetNearbyFeedAttachesDistance(t *testing.T) {
	l := newListing(1, day(1))
	l.Latitude, l.Longitude = 0, 0.01
	repo := &stubListingRepository{listings: []*entities.Listing{l}}
	svc := NewFeedService(repo, &stubCategoryService{})

	ref := &Coordinate{Latitude: 0, Longitude: 0}
	items, err := svc.GetNearbyFeed(context.Background(), FilterConfig{Reference: ref}, SortByDistance)

	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].DistanceKm)
	assert.InDelta(t, 1.11, *items[0].DistanceKm, 0.05)
}

func TestGetRecommendedFeedExcludesNearby(t *testing.T) {
	ref := Coordinate{Latitude: 0, Longitude: 0}

	near := newListing(1, day(1))
	near.Latitude, near.Longitude = 0, 0.01
	far := newListing(2, day(2))
	far.Latitude, far.Longitude = 10, 10

	repo := &stubListingRepository{listings: []*entities.Listing{near, far}}
	svc := NewFeedService(repo, &stubCategoryService{})

	items, err := svc.GetRecommendedFeed(context.Background(), FilterConfig{Reference: &ref, MaxDistanceKm: 5})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Listing 2", items[0].Title)
}

func TestSearchListings(t *testing.T) {
	bread := newListing(1, day(1))
	bread.Title = "Sourdough bread"
	repo := &stubListingRepository{listings: []*entities.Listing{bread, newListing(2, day(2))}}
	svc := NewFeedService(repo, &stubCategoryService{})

	items, err := svc.SearchListings(context.Background(), "sourdough")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Sourdough bread", items[0].Title)

	items, err = svc.SearchListings(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

// gatedRepository blocks its first fetch until released so a newer fetch
// can complete first.
type gatedRepository struct {
	stubListingRepository
	calls   atomic.Int32
	started chan struct{}
	gate    chan struct{}
	first   []*entities.Listing
	second  []*entities.Listing
}

func (r *gatedRepository) GetAvailableListings(ctx context.Context) ([]*entities.Listing, error) {
	if r.calls.Add(1) == 1 {
		close(r.started)
		<-r.gate
		return r.first, nil
	}
	return r.second, nil
}

func TestStaleRefreshDoesNotOverwriteNewerSnapshot(t *testing.T) {
	repo := &gatedRepository{
		started: make(chan struct{}),
		gate:    make(chan struct{}),
		first:   []*entities.Listing{newListing(1, day(1))},
		second:  []*entities.Listing{newListing(2, day(2))},
	}
	svc := NewFeedService(repo, &stubCategoryService{})

	type result struct {
		items []domain.ListingResponse
		err   error
	}
	staleDone := make(chan result, 1)

	go func() {
		items, err := svc.GetNearbyFeed(context.Background(), FilterConfig{}, SortByNewest)
		staleDone <- result{items, err}
	}()

	<-repo.started

	// The second invocation starts later and completes first.
	fresh, err := svc.GetNearbyFeed(context.Background(), FilterConfig{}, SortByNewest)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Listing 2", fresh[0].Title)

	close(repo.gate)

	select {
	case stale := <-staleDone:
		require.NoError(t, stale.err)
		require.Len(t, stale.items, 1)
		assert.Equal(t, "Listing 2", stale.items[0].Title, "stale completion must not resurface the older working set")
	case <-time.After(2 * time.Second):
		t.Fatal("stale refresh never completed")
	}
}

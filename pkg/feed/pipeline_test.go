package feed

import (
	"FoodShare-Backend/entities"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 5, n, 12, 0, 0, 0, time.UTC)
}

func testID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func newListing(n int, created time.Time) *entities.Listing {
	l := &entities.Listing{
		ID:           testID(n),
		Title:        fmt.Sprintf("Listing %d", n),
		CategoryName: "Meals",
		Latitude:     52.52,
		Longitude:    13.405,
		IsAvailable:  true,
	}
	l.CreatedAt = created
	return l
}

func withExpiry(l *entities.Listing, expiry time.Time) *entities.Listing {
	l.ExpiresAt = &expiry
	return l
}

func ids(listings []*entities.Listing) []int {
	result := make([]int, 0, len(listings))
	for _, l := range listings {
		var n int
		fmt.Sscanf(l.ID.String(), "00000000-0000-0000-0000-%012d", &n)
		result = append(result, n)
	}
	return result
}

func TestFilterDropsExpiredListings(t *testing.T) {
	now := day(10)
	expired := withExpiry(newListing(1, day(1)), day(9))
	alive := withExpiry(newListing(2, day(1)), day(11))
	noExpiry := newListing(3, day(1))

	result := Filter([]*entities.Listing{expired, alive, noExpiry}, FilterConfig{}, now)

	assert.Equal(t, []int{2, 3}, ids(result))
}

func TestFilterExpiryBoundaryIsExclusive(t *testing.T) {
	// A listing expiring exactly at "now" is not yet expired.
	now := day(10)
	boundary := withExpiry(newListing(1, day(1)), day(10))

	result := Filter([]*entities.Listing{boundary}, FilterConfig{}, now)

	assert.Len(t, result, 1)
}

func TestFilterIncludeExpiredKeepsEverything(t *testing.T) {
	now := day(10)
	expired := withExpiry(newListing(1, day(1)), day(2))

	result := Filter([]*entities.Listing{expired}, FilterConfig{IncludeExpired: true}, now)

	assert.Len(t, result, 1)
}

func TestFilterNullExpiryUnaffectedByIncludeExpired(t *testing.T) {
	now := day(10)
	noExpiry := newListing(1, day(1))

	for _, includeExpired := range []bool{true, false} {
		result := Filter([]*entities.Listing{noExpiry}, FilterConfig{IncludeExpired: includeExpired}, now)
		assert.Len(t, result, 1)
	}
}

func TestFilterByCategoryNames(t *testing.T) {
	meals := newListing(1, day(1))
	bakery := newListing(2, day(1))
	bakery.CategoryName = "Bakery"

	result := Filter([]*entities.Listing{meals, bakery}, FilterConfig{CategoryNames: []string{"Bakery"}}, day(10))

	assert.Equal(t, []int{2}, ids(result))
}

func TestFilterEmptyCategorySetMeansNoRestriction(t *testing.T) {
	meals := newListing(1, day(1))
	bakery := newListing(2, day(1))
	bakery.CategoryName = "Bakery"

	result := Filter([]*entities.Listing{meals, bakery}, FilterConfig{}, day(10))

	assert.Len(t, result, 2)
}

func TestFilterByDistanceInclusiveBoundary(t *testing.T) {
	ref := Coordinate{Latitude: 0, Longitude: 0}

	atBoundary := newListing(1, day(1))
	atBoundary.Latitude, atBoundary.Longitude = 0, 1
	boundaryKm := DistanceKm(ref, Coordinate{Latitude: 0, Longitude: 1})

	result := Filter([]*entities.Listing{atBoundary}, FilterConfig{Reference: &ref, MaxDistanceKm: boundaryKm}, day(10))
	assert.Len(t, result, 1, "listing exactly at the cap is included")

	result = Filter([]*entities.Listing{atBoundary}, FilterConfig{Reference: &ref, MaxDistanceKm: boundaryKm - 0.01}, day(10))
	assert.Empty(t, result)
}

func TestFilterWithoutReferenceSkipsDistanceEntirely(t *testing.T) {
	farAway := newListing(1, day(1))
	farAway.Latitude, farAway.Longitude = -33.86, 151.2

	result := Filter([]*entities.Listing{farAway}, FilterConfig{MaxDistanceKm: 1}, day(10))

	assert.Len(t, result, 1)
}

func TestFilterDropsListingsWithoutCoordinatesWhenReferenceSet(t *testing.T) {
	ref := Coordinate{Latitude: 52.52, Longitude: 13.405}
	missing := newListing(1, day(1))
	missing.Latitude, missing.Longitude = 0, 0

	result := Filter([]*entities.Listing{missing}, FilterConfig{Reference: &ref, MaxDistanceKm: 30000}, day(10))

	assert.Empty(t, result)
}

func TestFilterClampsDistanceCap(t *testing.T) {
	cfg := FilterConfig{MaxDistanceKm: -5}.normalized()
	assert.Equal(t, MinMaxDistanceKm, cfg.MaxDistanceKm)

	cfg = FilterConfig{}.normalized()
	assert.Equal(t, DefaultMaxDistanceKm, cfg.MaxDistanceKm)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	input := []*entities.Listing{
		withExpiry(newListing(1, day(1)), day(2)),
		newListing(2, day(3)),
	}

	_ = Filter(input, FilterConfig{}, day(10))

	assert.Equal(t, []int{1, 2}, ids(input))
}

func TestSortByNewest(t *testing.T) {
	listings := []*entities.Listing{
		newListing(1, day(1)),
		newListing(2, day(3)),
		newListing(3, day(2)),
	}

	sorted := Sort(listings, SortByNewest, nil)

	assert.Equal(t, []int{2, 3, 1}, ids(sorted))
	assert.Equal(t, []int{1, 2, 3}, ids(listings), "input order untouched")
}

func TestSortByNewestBreaksTiesById(t *testing.T) {
	listings := []*entities.Listing{
		newListing(2, day(1)),
		newListing(1, day(1)),
	}

	sorted := Sort(listings, SortByNewest, nil)

	assert.Equal(t, []int{1, 2}, ids(sorted))
}

func TestSortIsIdempotent(t *testing.T) {
	listings := []*entities.Listing{
		newListing(3, day(2)),
		newListing(1, day(2)),
		newListing(2, day(5)),
	}

	once := Sort(listings, SortByNewest, nil)
	twice := Sort(once, SortByNewest, nil)

	assert.Equal(t, ids(once), ids(twice))
}

func TestSortByExpiryUrgencyFirst(t *testing.T) {
	noExpiry := newListing(1, day(9))
	soon := withExpiry(newListing(2, day(1)), day(11))
	later := withExpiry(newListing(3, day(1)), day(20))

	sorted := Sort([]*entities.Listing{noExpiry, later, soon}, SortByExpiry, nil)

	assert.Equal(t, []int{2, 3, 1}, ids(sorted))
}

func TestSortByExpiryNullExpiryFallsBackToNewest(t *testing.T) {
	older := newListing(1, day(1))
	newer := newListing(2, day(5))

	sorted := Sort([]*entities.Listing{older, newer}, SortByExpiry, nil)

	assert.Equal(t, []int{2, 1}, ids(sorted))
}

func TestSortByDistance(t *testing.T) {
	ref := Coordinate{Latitude: 0, Longitude: 0}

	near := newListing(1, day(1))
	near.Latitude, near.Longitude = 0, 0.01
	far := newListing(2, day(5))
	far.Latitude, far.Longitude = 0, 0.5

	sorted := Sort([]*entities.Listing{far, near}, SortByDistance, &ref)

	assert.Equal(t, []int{1, 2}, ids(sorted))
}

func TestSortByDistanceWithoutReferenceKeepsOrder(t *testing.T) {
	listings := []*entities.Listing{
		newListing(2, day(1)),
		newListing(1, day(5)),
	}

	sorted := Sort(listings, SortByDistance, nil)

	assert.Equal(t, []int{2, 1}, ids(sorted))
}

func TestExpiryScenario(t *testing.T) {
	// A(created Day3, no expiry), B(created Day1, expiry Day5),
	// C(created Day2, expiry Day4), now = Day4: nothing is expired yet
	// and expiry sorting yields C, B, A.
	a := newListing(1, day(3))
	b := withExpiry(newListing(2, day(1)), day(5))
	c := withExpiry(newListing(3, day(2)), day(4))

	filtered := Filter([]*entities.Listing{a, b, c}, FilterConfig{}, day(4))
	require.Len(t, filtered, 3)

	sorted := Sort(filtered, SortByExpiry, nil)
	assert.Equal(t, []int{3, 2, 1}, ids(sorted))
}

func TestRecommendExcludesAndCaps(t *testing.T) {
	all := make([]*entities.Listing, 0, 15)
	for i := 1; i <= 15; i++ {
		all = append(all, newListing(i, day(i)))
	}
	excluding := all[:3]

	recommended := Recommend(all, excluding)

	assert.Len(t, recommended, 10)
	excluded := map[string]struct{}{}
	for _, l := range excluding {
		excluded[l.ID.String()] = struct{}{}
	}
	for _, l := range recommended {
		_, ok := excluded[l.ID.String()]
		assert.False(t, ok, "recommended feed must not contain excluded listing %s", l.ID)
	}
	// Newest first.
	assert.Equal(t, 15, ids(recommended)[0])
}

func TestSearchMatchesTitleDescriptionAndCategory(t *testing.T) {
	bread := newListing(1, day(1))
	bread.Title = "Sourdough Bread"
	soup := newListing(2, day(1))
	soup.Title = "Leftover soup"
	soup.Description = "Tomato basil, two portions"
	bakery := newListing(3, day(1))
	bakery.CategoryName = "Bakery"

	within := []*entities.Listing{bread, soup, bakery}

	assert.Equal(t, []int{1}, ids(Search("sourdough", within)))
	assert.Equal(t, []int{2}, ids(Search("BASIL", within)))
	assert.Equal(t, []int{3}, ids(Search("bakery", within)))
}

func TestSearchEmptyQueryReturnsEmpty(t *testing.T) {
	within := []*entities.Listing{newListing(1, day(1))}

	assert.Empty(t, Search("", within))
	assert.Empty(t, Search("   ", within))
}

func TestParseSortPolicy(t *testing.T) {
	policy, err := ParseSortPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SortByNewest, policy)

	policy, err = ParseSortPolicy("distance")
	require.NoError(t, err)
	assert.Equal(t, SortByDistance, policy)

	_, err = ParseSortPolicy("bogus")
	assert.Error(t, err)
}

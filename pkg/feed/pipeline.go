package feed

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"sort"
	"strings"
	"time"
)

type SortPolicy string

const (
	SortByDistance SortPolicy = "distance"
	SortByNewest   SortPolicy = "newest"
	SortByExpiry   SortPolicy = "expiry"
)

func ParseSortPolicy(value string) (SortPolicy, error) {
	switch value {
	case "", string(SortByNewest):
		return SortByNewest, nil
	case string(SortByDistance):
		return SortByDistance, nil
	case string(SortByExpiry):
		return SortByExpiry, nil
	default:
		return "", domain.ErrInvalidSortPolicy
	}
}

const (
	DefaultMaxDistanceKm = 10.0
	MinMaxDistanceKm     = 0.1
)

type FilterConfig struct {
	IncludeExpired bool
	CategoryNames  []string
	MaxDistanceKm  float64
	Reference      *Coordinate
}

// normalized clamps the distance cap instead of rejecting bad values:
// the zero value gets the default radius, anything below the floor gets
// the floor.
func (c FilterConfig) normalized() FilterConfig {
	if c.MaxDistanceKm == 0 {
		c.MaxDistanceKm = DefaultMaxDistanceKm
	}
	if c.MaxDistanceKm < MinMaxDistanceKm {
		c.MaxDistanceKm = MinMaxDistanceKm
	}
	return c
}

// Filter narrows listings by expiry, category membership and distance to
// the reference point. Without a reference point no distance filtering
// happens at all. Output order is unspecified; Sort imposes the final one.
func Filter(listings []*entities.Listing, cfg FilterConfig, now time.Time) []*entities.Listing {
	cfg = cfg.normalized()

	var categories map[string]struct{}
	if len(cfg.CategoryNames) > 0 {
		categories = make(map[string]struct{}, len(cfg.CategoryNames))
		for _, name := range cfg.CategoryNames {
			categories[name] = struct{}{}
		}
	}

	result := make([]*entities.Listing, 0, len(listings))
	for _, l := range listings {
		// A listing expires strictly after its expiry instant; equality
		// is still valid. Nil expiry never expires.
		if !cfg.IncludeExpired && l.ExpiresAt != nil && l.ExpiresAt.Before(now) {
			continue
		}

		if categories != nil {
			if _, ok := categories[l.CategoryName]; !ok {
				continue
			}
		}

		if cfg.Reference != nil {
			if !hasCoordinates(l) {
				continue
			}
			d := DistanceKm(*cfg.Reference, Coordinate{Latitude: l.Latitude, Longitude: l.Longitude})
			if d > cfg.MaxDistanceKm {
				continue
			}
		}

		result = append(result, l)
	}

	return result
}

// Sort returns a freshly ordered slice; the input is never reordered in
// place so concurrent readers of the working set stay safe. Every policy
// breaks exact ties by id so the order is repeatable.
func Sort(listings []*entities.Listing, policy SortPolicy, reference *Coordinate) []*entities.Listing {
	sorted := make([]*entities.Listing, len(listings))
	copy(sorted, listings)

	switch policy {
	case SortByDistance:
		if reference == nil {
			// No reference point: keep the incoming order rather than fail.
			return sorted
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			di := DistanceKm(*reference, Coordinate{Latitude: sorted[i].Latitude, Longitude: sorted[i].Longitude})
			dj := DistanceKm(*reference, Coordinate{Latitude: sorted[j].Latitude, Longitude: sorted[j].Longitude})
			if di != dj {
				return di < dj
			}
			return sorted[i].ID.String() < sorted[j].ID.String()
		})
	case SortByExpiry:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessByExpiry(sorted[i], sorted[j])
		})
	default: // SortByNewest
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessByNewest(sorted[i], sorted[j])
		})
	}

	return sorted
}

func lessByNewest(a, b *entities.Listing) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}

// lessByExpiry puts urgent listings first: non-nil expiry ascending, then
// nil-expiry listings ordered by newest.
func lessByExpiry(a, b *entities.Listing) bool {
	switch {
	case a.ExpiresAt != nil && b.ExpiresAt == nil:
		return true
	case a.ExpiresAt == nil && b.ExpiresAt != nil:
		return false
	case a.ExpiresAt == nil && b.ExpiresAt == nil:
		return lessByNewest(a, b)
	}
	if !a.ExpiresAt.Equal(*b.ExpiresAt) {
		return a.ExpiresAt.Before(*b.ExpiresAt)
	}
	return a.ID.String() < b.ID.String()
}

// Recommend returns the newest listings not present in the excluded set,
// capped at maxRecommended entries.
const maxRecommended = 10

func Recommend(all []*entities.Listing, excluding []*entities.Listing) []*entities.Listing {
	excluded := make(map[string]struct{}, len(excluding))
	for _, l := range excluding {
		excluded[l.ID.String()] = struct{}{}
	}

	candidates := make([]*entities.Listing, 0, len(all))
	for _, l := range all {
		if _, ok := excluded[l.ID.String()]; ok {
			continue
		}
		candidates = append(candidates, l)
	}

	candidates = Sort(candidates, SortByNewest, nil)
	if len(candidates) > maxRecommended {
		candidates = candidates[:maxRecommended]
	}
	return candidates
}

// Search matches the query case-insensitively against title, description
// and category name. A blank query yields an empty result on purpose:
// "no query yet" is a distinct UI state the caller handles itself.
func Search(query string, within []*entities.Listing) []*entities.Listing {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return []*entities.Listing{}
	}

	result := make([]*entities.Listing, 0, len(within))
	for _, l := range within {
		if strings.Contains(strings.ToLower(l.Title), query) ||
			strings.Contains(strings.ToLower(l.Description), query) ||
			strings.Contains(strings.ToLower(l.CategoryName), query) {
			result = append(result, l)
		}
	}
	return result
}

// Null Island coordinates are treated as missing.
func hasCoordinates(l *entities.Listing) bool {
	return l.Latitude != 0 || l.Longitude != 0
}

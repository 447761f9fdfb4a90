package category

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	categoryCacheKey = "foodshare:categories"
	categoryCacheTTL = 5 * time.Minute
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		LoadCategories(ctx context.Context) ([]*entities.Category, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
		redis              *redis.Client
	}
)

func NewCategoryService(categoryRepository CategoryRepository, redisClient *redis.Client) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		redis:              redisClient,
	}
}

// LoadCategories returns the category set sorted alphabetically by name with
// duplicate names removed. The store permits duplicate name rows, so dedup
// happens here; sorting by (name, id) first keeps the surviving row stable
// across loads.
func (s *categoryService) LoadCategories(ctx context.Context) ([]*entities.Category, error) {
	if cached := s.readCache(ctx); cached != nil {
		return cached, nil
	}

	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, domain.ErrRemoteFetch
	}

	deduped := DedupeByName(categories)
	s.writeCache(ctx, deduped)
	return deduped, nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, domain.CategoryResponse{
			ID:   c.ID.String(),
			Name: c.Name,
			Icon: c.Icon,
		})
	}
	return response, nil
}

func DedupeByName(categories []*entities.Category) []*entities.Category {
	sorted := make([]*entities.Category, len(categories))
	copy(sorted, categories)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	deduped := make([]*entities.Category, 0, len(sorted))
	for _, c := range sorted {
		if len(deduped) > 0 && deduped[len(deduped)-1].Name == c.Name {
			continue
		}
		deduped = append(deduped, c)
	}
	return deduped
}

func (s *categoryService) readCache(ctx context.Context) []*entities.Category {
	if s.redis == nil {
		return nil
	}

	payload, err := s.redis.Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warn("category cache read failed")
		}
		return nil
	}

	var categories []*entities.Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		logrus.WithError(err).Warn("category cache payload invalid")
		return nil
	}
	return categories
}

func (s *categoryService) writeCache(ctx context.Context, categories []*entities.Category) {
	if s.redis == nil {
		return
	}

	payload, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, categoryCacheKey, payload, categoryCacheTTL).Err(); err != nil {
		logrus.WithError(err).Warn("category cache write failed")
	}
}

package categories

import (
	"context"
	"helpmynew-service/internal/app/models"
	"sort"
	"sync"
)

type CategoryMemoryRepository struct {
	mu         sync.RWMutex
	categories map[string]models.Category
}

func NewCategoryMemoryRepository() *CategoryMemoryRepository {
	return &CategoryMemoryRepository{categories: make(map[string]models.Category)}
}

func (r *CategoryMemoryRepository) FindActive(ctx context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Category, 0, len(r.categories))
	for _, category := range r.categories {
		if category.IsActive {
			result = append(result, category)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CategoryID < result[j].CategoryID
	})
	return result, nil
}

func (r *CategoryMemoryRepository) Upsert(ctx context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories[category.CategoryID] = *category
	return nil
}

package category

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/sebuszqo/FinanceTracker/internal/models"
)

type MockCategoryRepository struct {
	Categories []models.Category
	// KnownUsers, when non-nil, rejects creates for any other user id.
	KnownUsers map[string]bool
	Err        error
	Calls      int
}

func (m *MockCategoryRepository) List(_ context.Context) ([]models.Category, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := append([]models.Category(nil), m.Categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MockCategoryRepository) Create(_ context.Context, category *models.Category) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	if m.KnownUsers != nil && !m.KnownUsers[category.UserID] {
		return ErrUnknownUser
	}
	category.ID = uuid.NewString()
	m.Categories = append(m.Categories, *category)
	return nil
}

package category

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
)

func TestCreate_ValidatesBeforePersisting(t *testing.T) {
	userID := uuid.NewString()
	tests := []struct {
		name         string
		categoryName string
		categoryType string
		userID       string
		want         error
	}{
		{"missing name", "", "despesa", userID, ErrMissingRequiredFields},
		{"blank name", "   ", "despesa", userID, ErrMissingRequiredFields},
		{"missing type", "Mercado", "", userID, ErrMissingRequiredFields},
		{"missing user", "Mercado", "despesa", "", ErrMissingRequiredFields},
		{"unknown type", "Mercado", "investimento", userID, ErrInvalidType},
		{"malformed user id", "Mercado", "despesa", "123", ErrInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockCategoryRepository{}
			svc := NewCategoryService(repo, zap.NewNop())

			_, err := svc.Create(context.Background(), tt.categoryName, tt.categoryType, tt.userID)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, appErrors.IsValidationError(err))
			assert.Zero(t, repo.Calls)
		})
	}
}

func TestCreate_AcceptsEveryCategoryType(t *testing.T) {
	for _, categoryType := range []string{"receita", "despesa", "transferencia"} {
		repo := &MockCategoryRepository{}
		svc := NewCategoryService(repo, zap.NewNop())

		category, err := svc.Create(context.Background(), "Conta", categoryType, uuid.NewString())
		require.NoError(t, err, categoryType)
		assert.Equal(t, categoryType, category.Type)
		assert.NotEmpty(t, category.ID)
	}
}

func TestCreate_UnknownUser(t *testing.T) {
	repo := &MockCategoryRepository{KnownUsers: map[string]bool{}}
	svc := NewCategoryService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), "Mercado", "despesa", uuid.NewString())
	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.True(t, appErrors.IsValidationError(err))
}

func TestList_OrderedByName(t *testing.T) {
	repo := &MockCategoryRepository{}
	svc := NewCategoryService(repo, zap.NewNop())
	userID := uuid.NewString()

	for _, name := range []string{"Salário", "Aluguel", "Mercado"} {
		_, err := svc.Create(context.Background(), name, "despesa", userID)
		require.NoError(t, err)
	}

	categories, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Aluguel", categories[0].Name)
	assert.Equal(t, "Mercado", categories[1].Name)
	assert.Equal(t, "Salário", categories[2].Name)
}

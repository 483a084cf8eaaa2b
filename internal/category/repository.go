package category

import (
	"context"

	"gorm.io/gorm"

	database "github.com/sebuszqo/FinanceTracker/internal/db"
	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/models"
)

var ErrUnknownUser = appErrors.NewValidationError("Usuário informado não existe")

type Repository interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) Repository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&categories).Error; err != nil {
		return nil, appErrors.NewPersistenceError("Erro ao buscar categorias", err)
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrUnknownUser
		}
		return appErrors.NewPersistenceError("Erro ao criar categoria", err)
	}
	return nil
}

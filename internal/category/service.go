package category

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/models"
)

var (
	ErrMissingRequiredFields = appErrors.NewValidationError("Nome, tipo e usuário são obrigatórios")
	ErrInvalidType           = appErrors.NewValidationError("Tipo deve ser: receita, despesa ou transferencia")
	ErrInvalidUserID         = appErrors.NewValidationError("usuario_id inválido")
)

type Service interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name, categoryType, userID string) (*models.Category, error)
}

type CategoryService struct {
	repo Repository
	log  *zap.Logger
}

func NewCategoryService(repo Repository, log *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx)
}

// Create validates every field before touching the database.
func (s *CategoryService) Create(ctx context.Context, name, categoryType, userID string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	categoryType = strings.TrimSpace(categoryType)
	userID = strings.TrimSpace(userID)

	if name == "" || categoryType == "" || userID == "" {
		return nil, ErrMissingRequiredFields
	}
	if !models.IsValidCategoryType(categoryType) {
		return nil, ErrInvalidType
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidUserID
	}

	category := &models.Category{
		Name:   name,
		Type:   categoryType,
		UserID: userID,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info("category created", zap.String("category_id", category.ID), zap.String("user_id", userID))
	return category, nil
}

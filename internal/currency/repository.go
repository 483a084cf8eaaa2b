package currency

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Currency, error)
	// InsertMissing inserts the given currencies, skipping codes that already exist.
	InsertMissing(ctx context.Context, currencies []models.Currency) (int64, error)
}

type currencyRepository struct {
	db *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) Repository {
	return &currencyRepository{db: db}
}

func (r *currencyRepository) List(ctx context.Context) ([]models.Currency, error) {
	currencies := make([]models.Currency, 0)
	err := r.db.WithContext(ctx).
		Order("principal DESC").
		Order("nome ASC").
		Find(&currencies).Error
	if err != nil {
		return nil, appErrors.NewPersistenceError("Erro ao buscar moedas", err)
	}
	return currencies, nil
}

func (r *currencyRepository) InsertMissing(ctx context.Context, currencies []models.Currency) (int64, error) {
	if len(currencies) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "codigo"}}, DoNothing: true}).
		Create(&currencies)
	if result.Error != nil {
		return 0, appErrors.NewPersistenceError("Erro ao inserir moedas padrão", result.Error)
	}
	return result.RowsAffected, nil
}

package account

import (
	"context"

	"gorm.io/gorm"

	database "github.com/sebuszqo/FinanceTracker/internal/db"
	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/models"
)

var ErrUnknownReference = appErrors.NewValidationError("Usuário ou moeda informados não existem")

type Repository interface {
	List(ctx context.Context) ([]models.Account, error)
	Create(ctx context.Context, account *models.Account) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) Repository {
	return &accountRepository{db: db}
}

func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	err := r.db.WithContext(ctx).
		Preload("Currency").
		Order("nome ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, appErrors.NewPersistenceError("Erro ao buscar contas", err)
	}
	return accounts, nil
}

// Create inserts the account and reloads it so the response carries its currency.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(account).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrUnknownReference
		}
		return appErrors.NewPersistenceError("Erro ao criar conta", err)
	}

	if account.CurrencyID == nil {
		return nil
	}
	var currency models.Currency
	if err := db.Where("id = ?", *account.CurrencyID).First(&currency).Error; err != nil {
		return appErrors.NewPersistenceError("Erro ao carregar moeda da conta", err)
	}
	account.Currency = &currency
	return nil
}

package account

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/models"
)

var (
	ErrMissingRequiredFields = appErrors.NewValidationError("Nome e usuário são obrigatórios")
	ErrInvalidUserID         = appErrors.NewValidationError("usuario_id inválido")
	ErrInvalidCurrencyID     = appErrors.NewValidationError("moeda_id inválido")
)

// CreateInput holds the fields accepted when opening an account. Type,
// InitialBalance and CurrencyID are optional.
type CreateInput struct {
	Name           string           `json:"nome"`
	Type           string           `json:"tipo"`
	InitialBalance *decimal.Decimal `json:"saldo_inicial"`
	UserID         string           `json:"usuario_id"`
	CurrencyID     *string          `json:"moeda_id"`
}

type Service interface {
	List(ctx context.Context) ([]models.Account, error)
	Create(ctx context.Context, input CreateInput) (*models.Account, error)
}

type service struct {
	repo Repository
	log  *zap.Logger
}

func NewAccountService(repo Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) List(ctx context.Context) ([]models.Account, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Account, error) {
	name := strings.TrimSpace(input.Name)
	userID := strings.TrimSpace(input.UserID)
	if name == "" || userID == "" {
		return nil, ErrMissingRequiredFields
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidUserID
	}

	account := &models.Account{
		Name:           name,
		Type:           strings.TrimSpace(input.Type),
		InitialBalance: decimal.Zero,
		UserID:         userID,
	}
	if input.InitialBalance != nil {
		account.InitialBalance = *input.InitialBalance
	}
	if input.CurrencyID != nil {
		if currencyID := strings.TrimSpace(*input.CurrencyID); currencyID != "" {
			if _, err := uuid.Parse(currencyID); err != nil {
				return nil, ErrInvalidCurrencyID
			}
			account.CurrencyID = &currencyID
		}
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info("account created", zap.String("account_id", account.ID), zap.String("user_id", userID))
	return account, nil
}

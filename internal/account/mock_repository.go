package account

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/sebuszqo/FinanceTracker/internal/models"
)

type MockRepository struct {
	Accounts   []models.Account
	Currencies map[string]models.Currency
	Users      map[string]bool
	Err        error
	Calls      int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		Currencies: make(map[string]models.Currency),
		Users:      make(map[string]bool),
	}
}

func (m *MockRepository) List(_ context.Context) ([]models.Account, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := append([]models.Account(nil), m.Accounts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MockRepository) Create(_ context.Context, account *models.Account) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	if !m.Users[account.UserID] {
		return ErrUnknownReference
	}
	if account.CurrencyID != nil {
		currency, ok := m.Currencies[*account.CurrencyID]
		if !ok {
			return ErrUnknownReference
		}
		account.Currency = &currency
	}
	account.ID = uuid.NewString()
	m.Accounts = append(m.Accounts, *account)
	return nil
}

package currency

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/sebuszqo/FinanceTracker/internal/models"
)

type MockRepository struct {
	Currencies []models.Currency
	Err        error
}

func (m *MockRepository) List(_ context.Context) ([]models.Currency, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := append([]models.Currency(nil), m.Currencies...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Primary != out[j].Primary {
			return out[i].Primary
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *MockRepository) InsertMissing(_ context.Context, currencies []models.Currency) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	existing := make(map[string]bool, len(m.Currencies))
	for _, c := range m.Currencies {
		existing[c.Code] = true
	}

	var inserted int64
	for _, c := range currencies {
		if existing[c.Code] {
			continue
		}
		c.ID = uuid.NewString()
		m.Currencies = append(m.Currencies, c)
		existing[c.Code] = true
		inserted++
	}
	return inserted, nil
}

package currency

import (
	"context"

	"go.uber.org/zap"

	"github.com/sebuszqo/FinanceTracker/internal/models"
)

// Defaults returns the currencies inserted by Seed. BRL is the primary one.
func Defaults() []models.Currency {
	return []models.Currency{
		{Code: "BRL", Name: "Real Brasileiro", Symbol: "R$", Primary: true},
		{Code: "USD", Name: "Dólar Americano", Symbol: "$"},
		{Code: "EUR", Name: "Euro", Symbol: "€"},
	}
}

type Service interface {
	List(ctx context.Context) ([]models.Currency, error)
	Seed(ctx context.Context) error
}

type service struct {
	repo Repository
	log  *zap.Logger
}

func NewCurrencyService(repo Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) List(ctx context.Context) ([]models.Currency, error) {
	return s.repo.List(ctx)
}

// Seed is safe to run on every start; existing codes are left untouched.
func (s *service) Seed(ctx context.Context) error {
	inserted, err := s.repo.InsertMissing(ctx, Defaults())
	if err != nil {
		return err
	}
	if inserted == 0 {
		s.log.Info("currency seed already applied, skipping")
		return nil
	}
	s.log.Info("default currencies seeded", zap.Int64("inserted", inserted))
	return nil
}

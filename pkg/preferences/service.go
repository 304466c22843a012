package preferences

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalid marks a preference update rejected by validation.
var ErrInvalid = errors.New("invalid preferences")

type Service interface {
	Get(ctx context.Context) (Preferences, error)
	// Update replaces the whole document, last write wins. The currency
	// symbol must come from the fixed list; its name is resolved from the
	// list so a tampered name cannot be stored.
	Update(ctx context.Context, prefs Preferences) (Preferences, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewServiceImpl(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Get(ctx context.Context) (Preferences, error) {
	return s.repo.Load(ctx)
}

func (s *ServiceImpl) Update(ctx context.Context, prefs Preferences) (Preferences, error) {
	currency, ok := CurrencyBySymbol(prefs.Currency.Symbol)
	if !ok {
		return Preferences{}, fmt.Errorf("%w: unknown currency symbol %q", ErrInvalid, prefs.Currency.Symbol)
	}
	prefs.Currency = currency

	t := prefs.Notification.Time
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return Preferences{}, fmt.Errorf("%w: notification time out of range", ErrInvalid)
	}

	if err := s.repo.Save(ctx, prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

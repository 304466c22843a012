package budget

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalid marks a limit or month key rejected by validation.
var ErrInvalid = errors.New("invalid budget limit")

type Service interface {
	Get(ctx context.Context) (Document, error)
	SetLimit(ctx context.Context, month string, limit Limit, isDefault bool) (Document, error)
	// EffectiveLimit derives the limit for month+category at read time: the
	// month entry when present, else the default entry, else none.
	EffectiveLimit(ctx context.Context, month, categoryID string) (float64, bool, error)
	ClearAll(ctx context.Context) error
}

type ServiceImpl struct {
	repo Repository
}

func NewServiceImpl(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Get(ctx context.Context) (Document, error) {
	return s.repo.Load(ctx)
}

func (s *ServiceImpl) SetLimit(ctx context.Context, month string, limit Limit, isDefault bool) (Document, error) {
	if limit.CategoryID == "" {
		return Document{}, fmt.Errorf("%w: missing categoryId", ErrInvalid)
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return Document{}, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalid)
	}

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return Document{}, err
	}

	// A limit is either a default override or a month entry, never both for
	// the same category in one write.
	if isDefault {
		doc.Default[limit.CategoryID] = limit.Amount
	} else {
		delete(doc.Default, limit.CategoryID)
	}

	if doc.Budget[month] == nil {
		doc.Budget[month] = []Limit{}
	}

	if limit.Amount > 0 {
		replaced := false
		for i, l := range doc.Budget[month] {
			if l.CategoryID == limit.CategoryID {
				doc.Budget[month][i] = limit
				replaced = true
				break
			}
		}
		if !replaced {
			doc.Budget[month] = append(doc.Budget[month], limit)
		}
	} else {
		// A zero or negative amount removes the month entry instead of
		// storing a zero.
		kept := make([]Limit, 0, len(doc.Budget[month]))
		for _, l := range doc.Budget[month] {
			if l.CategoryID != limit.CategoryID {
				kept = append(kept, l)
			}
		}
		doc.Budget[month] = kept
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (s *ServiceImpl) EffectiveLimit(ctx context.Context, month, categoryID string) (float64, bool, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return 0, false, err
	}
	for _, l := range doc.Budget[month] {
		if l.CategoryID == categoryID {
			return l.Amount, true, nil
		}
	}
	if amount, ok := doc.Default[categoryID]; ok {
		return amount, true, nil
	}
	return 0, false, nil
}

func (s *ServiceImpl) ClearAll(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

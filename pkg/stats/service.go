package stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/moneypal/moneypal/pkg/budget"
	"github.com/moneypal/moneypal/pkg/category"
	"github.com/moneypal/moneypal/pkg/transaction"
)

// ErrInvalidMonth marks a month key that is not YYYY-MM.
var ErrInvalidMonth = errors.New("month must be YYYY-MM")

type Service interface {
	Monthly(ctx context.Context, month string) (MonthlySummary, error)
}

type ServiceImpl struct {
	transactions transaction.Repository
	categories   category.Service
	budget       budget.Service
}

func NewServiceImpl(transactions transaction.Repository, categories category.Service, budgetService budget.Service) *ServiceImpl {
	return &ServiceImpl{transactions: transactions, categories: categories, budget: budgetService}
}

func (s *ServiceImpl) Monthly(ctx context.Context, month string) (MonthlySummary, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return MonthlySummary{}, ErrInvalidMonth
	}

	transactions, err := s.transactions.GetAll(ctx)
	if err != nil {
		return MonthlySummary{}, err
	}

	summary := MonthlySummary{Month: month, Categories: []CategorySummary{}}
	totals := map[string]float64{}

	for _, t := range transactions {
		if !strings.HasPrefix(t.Date, month) {
			continue
		}
		switch t.Type {
		case transaction.TypeIncome:
			summary.Income += t.Amount
		case transaction.TypeExpense:
			summary.Expense += t.Amount
			id := t.Category
			if id == "" {
				id = category.FallbackExpenseID
			}
			totals[id] += t.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense

	for id, total := range totals {
		// A deleted category falls back to the sentinel definition but the
		// row keeps its own id for limit lookup.
		resolved, err := s.categories.ResolveOrFallback(ctx, id, category.TypeExpense)
		if err != nil {
			return MonthlySummary{}, fmt.Errorf("could not resolve category %q: %w", id, err)
		}

		row := CategorySummary{Category: resolved, Total: total}
		limit, ok, err := s.budget.EffectiveLimit(ctx, month, id)
		if err != nil {
			return MonthlySummary{}, err
		}
		if ok {
			remaining := limit - total
			row.Limit = &limit
			row.Remaining = &remaining
		}
		summary.Categories = append(summary.Categories, row)
	}

	sort.Slice(summary.Categories, func(i, j int) bool {
		if summary.Categories[i].Total != summary.Categories[j].Total {
			return summary.Categories[i].Total > summary.Categories[j].Total
		}
		return summary.Categories[i].Category.ID < summary.Categories[j].Category.ID
	})

	return summary, nil
}

package stats

import (
	"context"
	"testing"

	"github.com/moneypal/moneypal/internal/kv"
	"github.com/moneypal/moneypal/pkg/budget"
	"github.com/moneypal/moneypal/pkg/category"
	"github.com/moneypal/moneypal/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type fixture struct {
	transactions *transaction.StubRepository
	budget       budget.Service
	service      *ServiceImpl
}

func newFixture() *fixture {
	kvStore := kv.NewStubStore()
	f := &fixture{
		transactions: transaction.NewStubRepository(),
		budget:       budget.NewServiceImpl(budget.NewRepository(kvStore)),
	}
	categories := category.NewServiceImpl(category.NewRepository(kvStore))
	f.service = NewServiceImpl(f.transactions, categories, f.budget)
	return f
}

func (f *fixture) add(t *testing.T, tx transaction.Transaction) {
	t.Helper()
	_, err := f.transactions.Add(ctx, tx)
	require.NoError(t, err)
}

func TestServiceImpl_Monthly(t *testing.T) {
	t.Run("should total income and expense for the month only", func(t *testing.T) {
		// given
		f := newFixture()
		f.add(t, transaction.Transaction{ID: "1", Type: transaction.TypeIncome, Amount: 1000, Date: "2024-03-01", Category: "salary"})
		f.add(t, transaction.Transaction{ID: "2", Type: transaction.TypeExpense, Amount: 200, Date: "2024-03-10", Category: "food"})
		f.add(t, transaction.Transaction{ID: "3", Type: transaction.TypeExpense, Amount: 999, Date: "2024-04-10", Category: "food"})

		// when
		summary, err := f.service.Monthly(ctx, "2024-03")

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1000.0, summary.Income)
		assert.Equal(t, 200.0, summary.Expense)
		assert.Equal(t, 800.0, summary.Balance)
	})

	t.Run("should sort categories by spending descending", func(t *testing.T) {
		// given
		f := newFixture()
		f.add(t, transaction.Transaction{ID: "1", Type: transaction.TypeExpense, Amount: 50, Date: "2024-03-01", Category: "food"})
		f.add(t, transaction.Transaction{ID: "2", Type: transaction.TypeExpense, Amount: 120, Date: "2024-03-02", Category: "transport"})
		f.add(t, transaction.Transaction{ID: "3", Type: transaction.TypeExpense, Amount: 30, Date: "2024-03-03", Category: "food"})

		// when
		summary, err := f.service.Monthly(ctx, "2024-03")

		// then
		assert.NoError(t, err)
		require.Len(t, summary.Categories, 2)
		assert.Equal(t, "transport", summary.Categories[0].Category.ID)
		assert.Equal(t, 120.0, summary.Categories[0].Total)
		assert.Equal(t, "food", summary.Categories[1].Category.ID)
		assert.Equal(t, 80.0, summary.Categories[1].Total)
	})

	t.Run("should join the effective limit and remaining amount", func(t *testing.T) {
		// given
		f := newFixture()
		_, err := f.budget.SetLimit(ctx, "2024-03", budget.Limit{CategoryID: "food", Amount: 100}, false)
		require.NoError(t, err)
		f.add(t, transaction.Transaction{ID: "1", Type: transaction.TypeExpense, Amount: 60, Date: "2024-03-01", Category: "food"})
		f.add(t, transaction.Transaction{ID: "2", Type: transaction.TypeExpense, Amount: 10, Date: "2024-03-02", Category: "transport"})

		// when
		summary, err := f.service.Monthly(ctx, "2024-03")

		// then
		assert.NoError(t, err)
		require.Len(t, summary.Categories, 2)
		food := summary.Categories[0]
		require.NotNil(t, food.Limit)
		assert.Equal(t, 100.0, *food.Limit)
		assert.Equal(t, 40.0, *food.Remaining)
		assert.Nil(t, summary.Categories[1].Limit)
	})

	t.Run("should bucket uncategorized spending under the fallback category", func(t *testing.T) {
		// given
		f := newFixture()
		f.add(t, transaction.Transaction{ID: "1", Type: transaction.TypeExpense, Amount: 25, Date: "2024-03-01"})

		// when
		summary, err := f.service.Monthly(ctx, "2024-03")

		// then
		assert.NoError(t, err)
		require.Len(t, summary.Categories, 1)
		assert.Equal(t, category.FallbackExpenseID, summary.Categories[0].Category.ID)
	})

	t.Run("should reject a malformed month", func(t *testing.T) {
		// given
		f := newFixture()

		// when
		_, err := f.service.Monthly(ctx, "03-2024")

		// then
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}

func TestCsvRendererImpl_RenderMonthly(t *testing.T) {
	t.Run("should render category rows followed by the totals", func(t *testing.T) {
		// given
		limit := 100.0
		remaining := 40.0
		summary := MonthlySummary{
			Month:   "2024-03",
			Income:  1000,
			Expense: 60,
			Balance: 940,
			Categories: []CategorySummary{
				{Category: category.Category{ID: "food", Name: "Food & Dining"}, Total: 60, Limit: &limit, Remaining: &remaining},
			},
		}

		// when
		rendered, err := NewCsvRenderer().RenderMonthly(summary)

		// then
		assert.NoError(t, err)
		assert.Equal(t,
			"Category,Spent,Limit,Remaining\n"+
				"Food & Dining,60.00,100.00,40.00\n"+
				"Income,1000.00,,\n"+
				"Expense,60.00,,\n"+
				"Balance,940.00,,\n",
			rendered)
	})
}

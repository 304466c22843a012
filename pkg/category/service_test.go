package category

import (
	"context"
	"testing"

	"github.com/moneypal/moneypal/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newService() *ServiceImpl {
	return NewServiceImpl(NewRepository(kv.NewStubStore()))
}

func TestServiceImpl_List(t *testing.T) {
	t.Run("should list built-ins followed by custom categories of the type", func(t *testing.T) {
		// given
		service := newService()
		_, err := service.CreateCustom(ctx, Category{ID: "pets", Name: "Pets", Type: TypeExpense})
		require.NoError(t, err)
		_, err = service.CreateCustom(ctx, Category{ID: "rental", Name: "Rental", Type: TypeIncome})
		require.NoError(t, err)

		// when
		expense, err := service.List(ctx, TypeExpense)

		// then
		assert.NoError(t, err)
		builtIn := BuiltIn(TypeExpense)
		require.Len(t, expense, len(builtIn)+1)
		assert.Equal(t, builtIn, expense[:len(builtIn)])
		assert.Equal(t, "pets", expense[len(expense)-1].ID)
	})
}

func TestServiceImpl_CreateCustom(t *testing.T) {
	t.Run("should reject a category without a name", func(t *testing.T) {
		// given
		service := newService()

		// when
		_, err := service.CreateCustom(ctx, Category{ID: "pets", Type: TypeExpense})

		// then
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("should reject an unknown type", func(t *testing.T) {
		// given
		service := newService()

		// when
		_, err := service.CreateCustom(ctx, Category{ID: "pets", Name: "Pets", Type: "savings"})

		// then
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestServiceImpl_ResolveOrFallback(t *testing.T) {
	t.Run("should resolve a custom category", func(t *testing.T) {
		// given
		service := newService()
		_, err := service.CreateCustom(ctx, Category{ID: "pets", Name: "Pets", Type: TypeExpense})
		require.NoError(t, err)

		// when
		c, err := service.ResolveOrFallback(ctx, "pets", TypeExpense)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Pets", c.Name)
	})

	t.Run("should substitute the sentinel after the custom category is deleted", func(t *testing.T) {
		// given
		service := newService()
		_, err := service.CreateCustom(ctx, Category{ID: "pets", Name: "Pets", Type: TypeExpense})
		require.NoError(t, err)
		require.NoError(t, service.DeleteCustom(ctx, "pets"))

		// when
		c, err := service.ResolveOrFallback(ctx, "pets", TypeExpense)

		// then
		assert.NoError(t, err)
		assert.Equal(t, FallbackExpenseID, c.ID)
	})

	t.Run("should substitute the income sentinel for an unknown income id", func(t *testing.T) {
		// given
		service := newService()

		// when
		c, err := service.ResolveOrFallback(ctx, "unknown", TypeIncome)

		// then
		assert.NoError(t, err)
		assert.Equal(t, FallbackIncomeID, c.ID)
	})
}

func TestServiceImpl_ClearCustom(t *testing.T) {
	t.Run("should remove custom categories but keep the built-in catalog", func(t *testing.T) {
		// given
		service := newService()
		_, err := service.CreateCustom(ctx, Category{ID: "pets", Name: "Pets", Type: TypeExpense})
		require.NoError(t, err)

		// when
		err = service.ClearCustom(ctx)

		// then
		assert.NoError(t, err)
		custom, err := service.ListCustom(ctx)
		require.NoError(t, err)
		assert.Empty(t, custom)
		merged, err := service.List(ctx, TypeExpense)
		require.NoError(t, err)
		assert.Equal(t, BuiltIn(TypeExpense), merged)
	})
}

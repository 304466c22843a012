package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltIn(t *testing.T) {
	t.Run("should contain the fallback id for each type", func(t *testing.T) {
		// when
		expense := BuiltIn(TypeExpense)
		income := BuiltIn(TypeIncome)

		// then
		assert.Equal(t, FallbackExpenseID, expense[len(expense)-1].ID)
		assert.Equal(t, FallbackIncomeID, income[len(income)-1].ID)
	})

	t.Run("should return a copy that callers cannot mutate", func(t *testing.T) {
		// given
		catalog := BuiltIn(TypeExpense)

		// when
		catalog[0].Name = "mutated"

		// then
		assert.NotEqual(t, "mutated", BuiltIn(TypeExpense)[0].Name)
	})
}

func TestResolve(t *testing.T) {
	t.Run("should resolve a built-in id", func(t *testing.T) {
		// when
		c, ok := Resolve("food", TypeExpense, nil)

		// then
		assert.True(t, ok)
		assert.Equal(t, "Food & Dining", c.Name)
	})

	t.Run("should resolve a user category of the same type", func(t *testing.T) {
		// given
		user := []Category{{ID: "pets", Name: "Pets", Type: TypeExpense}}

		// when
		c, ok := Resolve("pets", TypeExpense, user)

		// then
		assert.True(t, ok)
		assert.Equal(t, "Pets", c.Name)
	})

	t.Run("should let the built-in definition shadow a user category with the same id", func(t *testing.T) {
		// given
		user := []Category{{ID: "food", Name: "My Food", Type: TypeExpense}}

		// when
		c, ok := Resolve("food", TypeExpense, user)

		// then
		assert.True(t, ok)
		assert.Equal(t, "Food & Dining", c.Name)
	})

	t.Run("should not resolve a user category of the other type", func(t *testing.T) {
		// given
		user := []Category{{ID: "pets", Name: "Pets", Type: TypeExpense}}

		// when
		_, ok := Resolve("pets", TypeIncome, user)

		// then
		assert.False(t, ok)
	})

	t.Run("should miss an unknown id", func(t *testing.T) {
		// when
		_, ok := Resolve("unknown", TypeExpense, nil)

		// then
		assert.False(t, ok)
	})
}

func TestFallback(t *testing.T) {
	t.Run("should always return a fully defined category", func(t *testing.T) {
		for _, typ := range []Type{TypeExpense, TypeIncome} {
			// when
			c := Fallback(typ)

			// then
			assert.NotEmpty(t, c.ID)
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Icon)
			assert.NotEmpty(t, c.Color)
			assert.Equal(t, typ, c.Type)
		}
	})
}

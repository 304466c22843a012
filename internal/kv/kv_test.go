package kv_test

import (
	"context"
	"testing"

	"github.com/moneypal/moneypal/internal/kv"
	"github.com/moneypal/moneypal/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should report a missing key as not found", func(t *testing.T) {
		// given
		store := kv.NewSQLStore(test_utils.SetupTestDB(t))

		// when
		_, found, err := store.Get(ctx, "missing")

		// then
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("should return what was set", func(t *testing.T) {
		// given
		store := kv.NewSQLStore(test_utils.SetupTestDB(t))

		// when
		err := store.Set(ctx, "greeting", []byte("hello"))
		require.NoError(t, err)
		value, found, err := store.Get(ctx, "greeting")

		// then
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("hello"), value)
	})

	t.Run("should overwrite an existing value", func(t *testing.T) {
		// given
		store := kv.NewSQLStore(test_utils.SetupTestDB(t))
		require.NoError(t, store.Set(ctx, "greeting", []byte("hello")))

		// when
		err := store.Set(ctx, "greeting", []byte("goodbye"))
		require.NoError(t, err)
		value, found, err := store.Get(ctx, "greeting")

		// then
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("goodbye"), value)
	})

	t.Run("should delete a key", func(t *testing.T) {
		// given
		store := kv.NewSQLStore(test_utils.SetupTestDB(t))
		require.NoError(t, store.Set(ctx, "greeting", []byte("hello")))

		// when
		err := store.Delete(ctx, "greeting")
		require.NoError(t, err)
		_, found, err := store.Get(ctx, "greeting")

		// then
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("should tolerate deleting a missing key", func(t *testing.T) {
		// given
		store := kv.NewSQLStore(test_utils.SetupTestDB(t))

		// when
		err := store.Delete(ctx, "missing")

		// then
		assert.NoError(t, err)
	})
}

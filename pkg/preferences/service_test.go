package preferences

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

func TestServiceImpl_Get(t *testing.T) {
	t.Run("should return defaults before anything was saved", func(t *testing.T) {
		// given
		service := newService()

		// when
		prefs, err := service.Get(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, Defaults(), prefs)
		assert.Equal(t, "$", prefs.Currency.Symbol)
		assert.False(t, prefs.Notification.Enabled)
	})

	t.Run("should return defaults when the stored document is corrupt", func(t *testing.T) {
		// given
		kvStore := kv.NewStubStore()
		require.NoError(t, kvStore.Set(ctx, "preferences", []byte("{broken")))
		service := NewServiceImpl(NewRepository(kvStore))

		// when
		prefs, err := service.Get(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, Defaults(), prefs)
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should persist a full replacement", func(t *testing.T) {
		// given
		service := newService()

		// when
		updated, err := service.Update(ctx, Preferences{
			Currency:     Currency{Symbol: "Rp"},
			Notification: Notification{Enabled: true, Time: NotificationTime{Hour: 7, Minute: 30}},
		})

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Indonesian Rupiah", updated.Currency.Name)
		stored, err := service.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("should resolve the currency name from the fixed list", func(t *testing.T) {
		// given
		service := newService()

		// when
		updated, err := service.Update(ctx, Preferences{
			Currency: Currency{Symbol: "€", Name: "Tampered"},
		})

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Euro", updated.Currency.Name)
	})

	t.Run("should reject a symbol outside the fixed list", func(t *testing.T) {
		// given
		service := newService()

		// when
		_, err := service.Update(ctx, Preferences{Currency: Currency{Symbol: "₿"}})

		// then
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("should reject a notification time out of range", func(t *testing.T) {
		// given
		service := newService()

		// when
		_, err := service.Update(ctx, Preferences{
			Currency:     Currency{Symbol: "$"},
			Notification: Notification{Enabled: true, Time: NotificationTime{Hour: 24, Minute: 0}},
		})

		// then
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestCurrencies(t *testing.T) {
	t.Run("should offer six currencies", func(t *testing.T) {
		assert.Len(t, Currencies(), 6)
	})
}

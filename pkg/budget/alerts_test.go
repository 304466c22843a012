package budget

import (
	"testing"

	"github.com/moneypal/moneypal/internal/event_bus"
	"github.com/moneypal/moneypal/pkg/transaction"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlerter(t *testing.T) {
	publish := func(bus *event_bus.EventBus, data event_bus.TransactionCreated) error {
		return bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionCreatedEvent, data))
	}

	t.Run("should warn when month spending passes the effective limit", func(t *testing.T) {
		// given
		hook := test.NewGlobal()
		defer hook.Reset()

		service := newService()
		_, err := service.SetLimit(ctx, "2024-03", Limit{CategoryID: "food", Amount: 50}, false)
		require.NoError(t, err)

		repo := transaction.NewStubRepository()
		_, err = repo.Add(ctx, transaction.Transaction{ID: "tx-1", Type: transaction.TypeExpense, Amount: 40, Date: "2024-03-10", Category: "food"})
		require.NoError(t, err)
		_, err = repo.Add(ctx, transaction.Transaction{ID: "tx-2", Type: transaction.TypeExpense, Amount: 30, Date: "2024-03-12", Category: "food"})
		require.NoError(t, err)

		bus := event_bus.NewEventBus()
		NewAlerter(service, repo).Register(bus)

		// when
		err = publish(bus, event_bus.TransactionCreated{ID: "tx-2", Type: "expense", Amount: 30, Date: "2024-03-12", CategoryID: "food"})

		// then
		assert.NoError(t, err)
		require.NotEmpty(t, hook.Entries)
		entry := hook.LastEntry()
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Contains(t, entry.Message, "budget exceeded")
		assert.Contains(t, entry.Message, "food")
	})

	t.Run("should stay silent while spending is within the limit", func(t *testing.T) {
		// given
		hook := test.NewGlobal()
		defer hook.Reset()

		service := newService()
		_, err := service.SetLimit(ctx, "2024-03", Limit{CategoryID: "food", Amount: 100}, false)
		require.NoError(t, err)

		repo := transaction.NewStubRepository()
		_, err = repo.Add(ctx, transaction.Transaction{ID: "tx-1", Type: transaction.TypeExpense, Amount: 40, Date: "2024-03-10", Category: "food"})
		require.NoError(t, err)

		bus := event_bus.NewEventBus()
		NewAlerter(service, repo).Register(bus)

		// when
		err = publish(bus, event_bus.TransactionCreated{ID: "tx-1", Type: "expense", Amount: 40, Date: "2024-03-10", CategoryID: "food"})

		// then
		assert.NoError(t, err)
		assert.Empty(t, hook.Entries)
	})

	t.Run("should ignore income and uncategorized transactions", func(t *testing.T) {
		// given
		hook := test.NewGlobal()
		defer hook.Reset()

		service := newService()
		repo := transaction.NewStubRepository()
		bus := event_bus.NewEventBus()
		NewAlerter(service, repo).Register(bus)

		// when
		err := publish(bus, event_bus.TransactionCreated{ID: "tx-1", Type: "income", Amount: 1000, Date: "2024-03-01", CategoryID: "salary"})
		require.NoError(t, err)
		err = publish(bus, event_bus.TransactionCreated{ID: "tx-2", Type: "expense", Amount: 10, Date: "2024-03-01"})

		// then
		assert.NoError(t, err)
		assert.Empty(t, hook.Entries)
	})
}

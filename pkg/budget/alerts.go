package budget

import (
	"context"
	"strings"

	"github.com/moneypal/moneypal/internal/event_bus"
	"github.com/moneypal/moneypal/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

// Alerter watches created transactions and warns when a month's spending for
// a category passes its effective limit.
type Alerter struct {
	budget       Service
	transactions transaction.Repository
}

func NewAlerter(budget Service, transactions transaction.Repository) *Alerter {
	return &Alerter{budget: budget, transactions: transactions}
}

func (a *Alerter) Register(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.TransactionCreatedEvent, a.onTransactionCreated)
}

func (a *Alerter) onTransactionCreated(ctx context.Context, e event_bus.TransactionCreated) error {
	if e.Type != string(transaction.TypeExpense) || e.CategoryID == "" || len(e.Date) < 7 {
		return nil
	}
	month := e.Date[:7]

	limit, ok, err := a.budget.EffectiveLimit(ctx, month, e.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	spent, err := a.monthlySpending(ctx, month, e.CategoryID)
	if err != nil {
		return err
	}
	if spent > limit {
		log.Warnf("budget exceeded for category %s in %s: spent %.2f of %.2f", e.CategoryID, month, spent, limit)
	}
	return nil
}

func (a *Alerter) monthlySpending(ctx context.Context, month, categoryID string) (float64, error) {
	transactions, err := a.transactions.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, t := range transactions {
		if t.Type == transaction.TypeExpense && t.Category == categoryID && strings.HasPrefix(t.Date, month) {
			total += t.Amount
		}
	}
	return total, nil
}

package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moneypal/moneypal/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// ErrInvalid marks a transaction rejected by validation.
var ErrInvalid = errors.New("invalid transaction")

type Service interface {
	List(ctx context.Context) ([]Transaction, error)
	Create(ctx context.Context, t Transaction) (Transaction, error)
	Update(ctx context.Context, t Transaction) (Transaction, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
}

func NewServiceImpl(repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Transaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Create(ctx context.Context, t Transaction) (Transaction, error) {
	if err := validate(t); err != nil {
		return Transaction{}, err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	if _, err := s.repo.Add(ctx, t); err != nil {
		return Transaction{}, err
	}

	// Subscribers (budget alerts) run synchronously; their failure does not
	// undo the already persisted transaction.
	err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionCreatedEvent, event_bus.TransactionCreated{
		ID:         t.ID,
		Type:       string(t.Type),
		Amount:     t.Amount,
		Date:       t.Date,
		CategoryID: t.Category,
	}))
	if err != nil {
		log.Errorf("failed to publish transaction created event: %v", err)
	}

	return t, nil
}

func (s *ServiceImpl) Update(ctx context.Context, t Transaction) (Transaction, error) {
	if err := validate(t); err != nil {
		return Transaction{}, err
	}
	if t.ID == "" {
		return Transaction{}, fmt.Errorf("%w: missing id", ErrInvalid)
	}
	if _, err := s.repo.Update(ctx, t); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	// A missing id is a successful no-op, not an error.
	_, err := s.repo.Delete(ctx, id)
	return err
}

func (s *ServiceImpl) ClearAll(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func validate(t Transaction) error {
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, t.Type)
	}
	if t.Amount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalid)
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalid)
	}
	return nil
}

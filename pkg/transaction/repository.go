package transaction

import (
	"context"

	"github.com/moneypal/moneypal/internal/kv"
	"github.com/moneypal/moneypal/internal/record"
)

const storageKey = "transactions"

type Repository interface {
	// Load reads the full collection from the durable layer and replaces
	// the in-memory cache. Missing data loads as an empty collection.
	Load(ctx context.Context) ([]Transaction, error)
	GetAll(ctx context.Context) ([]Transaction, error)
	Add(ctx context.Context, t Transaction) ([]Transaction, error)
	Update(ctx context.Context, t Transaction) ([]Transaction, error)
	Delete(ctx context.Context, id string) ([]Transaction, error)
	Clear(ctx context.Context) error
}

type RepositoryImpl struct {
	store  *record.Store[Transaction]
	loaded bool
}

func NewRepository(kvStore kv.Store) *RepositoryImpl {
	return &RepositoryImpl{store: record.NewStore[Transaction](kvStore, storageKey)}
}

func (r *RepositoryImpl) Load(ctx context.Context) ([]Transaction, error) {
	transactions, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	r.loaded = true
	return transactions, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	if !r.loaded {
		return r.Load(ctx)
	}
	return r.store.Items(), nil
}

func (r *RepositoryImpl) Add(ctx context.Context, t Transaction) ([]Transaction, error) {
	return r.store.Add(ctx, t)
}

func (r *RepositoryImpl) Update(ctx context.Context, t Transaction) ([]Transaction, error) {
	return r.store.Update(ctx, t)
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) ([]Transaction, error) {
	return r.store.Delete(ctx, id)
}

func (r *RepositoryImpl) Clear(ctx context.Context) error {
	return r.store.Clear(ctx)
}

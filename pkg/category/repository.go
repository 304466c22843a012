package category

import (
	"context"

	"github.com/moneypal/moneypal/internal/kv"
	"github.com/moneypal/moneypal/internal/record"
)

const storageKey = "custom_categories"

// Repository stores user-defined categories only; the built-in catalog is
// compiled in.
type Repository interface {
	Load(ctx context.Context) ([]Category, error)
	GetAll(ctx context.Context) ([]Category, error)
	Add(ctx context.Context, c Category) ([]Category, error)
	Update(ctx context.Context, c Category) ([]Category, error)
	Delete(ctx context.Context, id string) ([]Category, error)
	Clear(ctx context.Context) error
}

type RepositoryImpl struct {
	store  *record.Store[Category]
	loaded bool
}

func NewRepository(kvStore kv.Store) *RepositoryImpl {
	return &RepositoryImpl{store: record.NewStore[Category](kvStore, storageKey)}
}

func (r *RepositoryImpl) Load(ctx context.Context) ([]Category, error) {
	categories, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	r.loaded = true
	return categories, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Category, error) {
	if !r.loaded {
		return r.Load(ctx)
	}
	return r.store.Items(), nil
}

func (r *RepositoryImpl) Add(ctx context.Context, c Category) ([]Category, error) {
	return r.store.Add(ctx, c)
}

func (r *RepositoryImpl) Update(ctx context.Context, c Category) ([]Category, error) {
	return r.store.Update(ctx, c)
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) ([]Category, error) {
	return r.store.Delete(ctx, id)
}

func (r *RepositoryImpl) Clear(ctx context.Context) error {
	return r.store.Clear(ctx)
}

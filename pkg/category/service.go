package category

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalid marks a category rejected by validation.
var ErrInvalid = errors.New("invalid category")

type Service interface {
	// List returns the merged view: built-in catalog for the type followed
	// by the user categories of the same type.
	List(ctx context.Context, t Type) ([]Category, error)
	ListCustom(ctx context.Context) ([]Category, error)
	CreateCustom(ctx context.Context, c Category) (Category, error)
	UpdateCustom(ctx context.Context, c Category) (Category, error)
	DeleteCustom(ctx context.Context, id string) error
	ClearCustom(ctx context.Context) error
	// ResolveOrFallback resolves the id for the type and substitutes the
	// sentinel category of the type when resolution misses.
	ResolveOrFallback(ctx context.Context, id string, t Type) (Category, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewServiceImpl(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) List(ctx context.Context, t Type) ([]Category, error) {
	custom, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	merged := BuiltIn(t)
	for _, c := range custom {
		if c.Type == t {
			merged = append(merged, c)
		}
	}
	return merged, nil
}

func (s *ServiceImpl) ListCustom(ctx context.Context) ([]Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) CreateCustom(ctx context.Context, c Category) (Category, error) {
	if err := validate(c); err != nil {
		return Category{}, err
	}
	if _, err := s.repo.Add(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *ServiceImpl) UpdateCustom(ctx context.Context, c Category) (Category, error) {
	if err := validate(c); err != nil {
		return Category{}, err
	}
	if _, err := s.repo.Update(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *ServiceImpl) DeleteCustom(ctx context.Context, id string) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}

func (s *ServiceImpl) ClearCustom(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func (s *ServiceImpl) ResolveOrFallback(ctx context.Context, id string, t Type) (Category, error) {
	custom, err := s.repo.GetAll(ctx)
	if err != nil {
		return Category{}, err
	}
	if c, ok := Resolve(id, t, custom); ok {
		return c, nil
	}
	return Fallback(t), nil
}

func validate(c Category) error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalid)
	}
	if c.Type != TypeIncome && c.Type != TypeExpense {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, c.Type)
	}
	return nil
}

package preferences

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moneypal/moneypal/internal/kv"
	log "github.com/sirupsen/logrus"
)

const storageKey = "preferences"

type Repository interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, prefs Preferences) error
}

type RepositoryImpl struct {
	kv kv.Store
}

func NewRepository(kvStore kv.Store) *RepositoryImpl {
	return &RepositoryImpl{kv: kvStore}
}

func (r *RepositoryImpl) Load(ctx context.Context) (Preferences, error) {
	value, found, err := r.kv.Get(ctx, storageKey)
	if err != nil {
		return Preferences{}, fmt.Errorf("could not load preferences: %w", err)
	}
	if !found {
		return Defaults(), nil
	}
	prefs := Defaults()
	if err := json.Unmarshal(value, &prefs); err != nil {
		log.Warnf("preferences document is corrupt, using defaults: %v", err)
		return Defaults(), nil
	}
	return prefs, nil
}

func (r *RepositoryImpl) Save(ctx context.Context, prefs Preferences) error {
	value, err := json.Marshal(prefs)
	if err != nil {
		err := fmt.Errorf("could not encode preferences: %w", err)
		log.Error(err)
		return err
	}
	if err := r.kv.Set(ctx, storageKey, value); err != nil {
		return fmt.Errorf("could not persist preferences: %w", err)
	}
	return nil
}

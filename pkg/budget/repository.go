package budget

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moneypal/moneypal/internal/kv"
	log "github.com/sirupsen/logrus"
)

const storageKey = "budget_data"

type Repository interface {
	// Load reads the document, normalizing missing maps to empty maps. A
	// missing or unreadable blob loads as an empty document.
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
	Clear(ctx context.Context) error
}

type RepositoryImpl struct {
	kv kv.Store
}

func NewRepository(kvStore kv.Store) *RepositoryImpl {
	return &RepositoryImpl{kv: kvStore}
}

func (r *RepositoryImpl) Load(ctx context.Context) (Document, error) {
	value, found, err := r.kv.Get(ctx, storageKey)
	if err != nil {
		return Document{}, fmt.Errorf("could not load budget document: %w", err)
	}
	doc := NewDocument()
	if found {
		if err := json.Unmarshal(value, &doc); err != nil {
			log.Warnf("budget document is corrupt, treating as empty: %v", err)
			doc = NewDocument()
		}
	}
	doc.Normalize()
	return doc, nil
}

func (r *RepositoryImpl) Save(ctx context.Context, doc Document) error {
	doc.Normalize()
	value, err := json.Marshal(doc)
	if err != nil {
		err := fmt.Errorf("could not encode budget document: %w", err)
		log.Error(err)
		return err
	}
	if err := r.kv.Set(ctx, storageKey, value); err != nil {
		return fmt.Errorf("could not persist budget document: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) Clear(ctx context.Context) error {
	return r.Save(ctx, NewDocument())
}

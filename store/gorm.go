package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var knownCollections = map[string]bool{
	CollectionOrders:   true,
	CollectionReceipts: true,
	CollectionProfiles: true,
}

// GormStore backs the document store with Postgres through GORM. Each
// collection maps to the table of its model type.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	if !knownCollections[collection] {
		return "", ErrUnknownCollection
	}
	if doc.Collection() != collection {
		return "", ErrCollectionMismatch
	}
	if doc.DocumentID() == "" {
		doc.SetDocumentID(uuid.NewString())
	}
	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		return "", err
	}
	return doc.DocumentID(), nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string, out Document) error {
	if !knownCollections[collection] {
		return ErrUnknownCollection
	}
	if out.Collection() != collection {
		return ErrCollectionMismatch
	}
	err := s.db.WithContext(ctx).
		Preload(clause.Associations).
		First(out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

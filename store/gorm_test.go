package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailgate/storefront-api/models"
	"github.com/retailgate/storefront-api/store"
)

// These paths fail before any database round trip, so a nil connection is fine.
func TestCreateRejectsUnknownCollection(t *testing.T) {
	s := store.NewGormStore(nil)

	_, err := s.Create(context.Background(), "payments", &models.Order{})
	assert.ErrorIs(t, err, store.ErrUnknownCollection)
}

func TestCreateRejectsCollectionMismatch(t *testing.T) {
	s := store.NewGormStore(nil)

	_, err := s.Create(context.Background(), store.CollectionReceipts, &models.Order{})
	assert.ErrorIs(t, err, store.ErrCollectionMismatch)
}

func TestGetRejectsUnknownCollection(t *testing.T) {
	s := store.NewGormStore(nil)

	err := s.Get(context.Background(), "payments", "id", &models.Order{})
	assert.ErrorIs(t, err, store.ErrUnknownCollection)
}

func TestGetRejectsCollectionMismatch(t *testing.T) {
	s := store.NewGormStore(nil)

	err := s.Get(context.Background(), store.CollectionOrders, "id", &models.Receipt{})
	assert.ErrorIs(t, err, store.ErrCollectionMismatch)
}

func TestDocumentsDeclareTheirCollections(t *testing.T) {
	assert.Equal(t, store.CollectionOrders, (&models.Order{}).Collection())
	assert.Equal(t, store.CollectionReceipts, (&models.Receipt{}).Collection())
	assert.Equal(t, store.CollectionProfiles, (&models.UserProfile{}).Collection())
}

package store

import (
	"context"
	"errors"
)

// Collection names used by the checkout and role-resolution flows. Orders and
// receipts are disjoint collections and are never mixed.
const (
	CollectionOrders   = "orders"
	CollectionReceipts = "receipts"
	CollectionProfiles = "profiles"
)

var (
	ErrNotFound           = errors.New("store: document not found")
	ErrUnknownCollection  = errors.New("store: unknown collection")
	ErrCollectionMismatch = errors.New("store: document does not belong to collection")
)

// Document is anything persistable through a DocumentStore.
type Document interface {
	Collection() string
	DocumentID() string
	SetDocumentID(id string)
}

// DocumentStore is the remote data service boundary. The checkout workflow
// only ever creates documents; the role resolver only ever reads them.
type DocumentStore interface {
	// Create persists doc into the named collection, assigning a generated id
	// when the document carries none, and returns the id.
	Create(ctx context.Context, collection string, doc Document) (string, error)
	// Get loads the document with the given id into out, or ErrNotFound.
	Get(ctx context.Context, collection, id string, out Document) error
}

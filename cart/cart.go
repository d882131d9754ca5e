package cart

import "sync"

// Item is one pending line in a cart. At most one Item per ProductID exists
// within a cart.
type Item struct {
	ProductID   string  `json:"product_id"`
	Barcode     string  `json:"barcode"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Product is the catalog data an item is built from.
type Product struct {
	ID      string
	Barcode string
	Name    string
	Price   float64
}

// Snapshot is a point-in-time copy of a cart plus its derived subtotal.
type Snapshot struct {
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

// AuthSignal is the subset of the auth broker the store needs for its
// lifecycle binding.
type AuthSignal interface {
	Subscribe(fn func(uid string, signedIn bool))
}

// Store holds the in-memory carts, one per signed-in user. Carts live only for
// the session: they are cleared on logout and, for the company role, on
// checkout success.
type Store struct {
	mu    sync.Mutex
	carts map[string][]Item
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]Item)}
}

// Add merges qty into the existing line for p.ID, or appends a new line.
// Quantity is not validated; negative values act as adjustments.
func (s *Store) Add(userID string, p Product, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += qty
			return
		}
	}
	s.carts[userID] = append(items, Item{
		ProductID:   p.ID,
		Barcode:     defaultString(p.Barcode, "N/A"),
		ProductName: defaultString(p.Name, "Unnamed Product"),
		Quantity:    qty,
		Price:       p.Price,
	})
}

// Remove drops the line for productID. Removing an absent product is a no-op.
func (s *Store) Remove(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.carts[userID] = kept
}

// Clear resets the user's cart to an empty sequence.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Get returns the latest snapshot of the user's cart.
func (s *Store) Get(userID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	snap := Snapshot{Items: make([]Item, len(items))}
	copy(snap.Items, items)
	for _, it := range items {
		snap.Subtotal += float64(it.Quantity) * it.Price
	}
	return snap
}

// BindAuth subscribes the store to auth-state transitions so a logout always
// leaves the next reader with an empty cart. Fire and forget: the clear is
// synchronous at dispatch time and cannot fail.
func (s *Store) BindAuth(sig AuthSignal) {
	sig.Subscribe(func(uid string, signedIn bool) {
		if !signedIn {
			s.Clear(uid)
		}
	})
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/retailgate/storefront-api/cart"
	"github.com/retailgate/storefront-api/models"
	"github.com/retailgate/storefront-api/roles"
	"github.com/retailgate/storefront-api/store"
)

var (
	ErrNotAuthenticated = errors.New("checkout: no authenticated user")
	ErrEmptyCart        = errors.New("checkout: cart is empty")
	ErrUnknownRole      = errors.New("checkout: unknown role")
	ErrPersistFailed    = errors.New("checkout: failed to persist record")
)

// User identifies the authenticated account submitting the checkout.
type User struct {
	UID   string
	Email string
}

// CartStore is the slice of the cart store the workflow needs.
type CartStore interface {
	Get(userID string) cart.Snapshot
	Clear(userID string)
}

// RoleResolver resolves the submitting user's access tier.
type RoleResolver interface {
	Resolve(ctx context.Context, uid string) (roles.Resolution, error)
}

// ReceiptView is the post-checkout snapshot kept for staff and superadmin so
// the persisted receipt can be displayed without clearing the cart.
type ReceiptView struct {
	ReceiptID string               `json:"receipt_id"`
	Items     []models.ReceiptItem `json:"items"`
	Total     float64              `json:"total"`
}

// Result reports a successful submission. Cleared is true only for the
// company flow; View is set only for the staff/superadmin flow.
type Result struct {
	Role     roles.Role   `json:"role"`
	RecordID string       `json:"record_id"`
	Total    float64      `json:"total"`
	Cleared  bool         `json:"cart_cleared"`
	View     *ReceiptView `json:"receipt,omitempty"`
}

// Workflow runs a checkout: validate the cart, normalize its lines into an
// immutable record, persist it to the role-dependent collection, and adjust
// cart state. A failed submission leaves the cart untouched; there is no
// retry, the user re-triggers manually.
type Workflow struct {
	carts CartStore
	docs  store.DocumentStore
	roles RoleResolver
	now   func() time.Time

	mu       sync.Mutex
	receipts map[string]*ReceiptView
}

func NewWorkflow(carts CartStore, docs store.DocumentStore, resolver RoleResolver) *Workflow {
	return &Workflow{
		carts:    carts,
		docs:     docs,
		roles:    resolver,
		now:      time.Now,
		receipts: make(map[string]*ReceiptView),
	}
}

// WithClock overrides the timestamp source used for order refs and record
// creation times.
func (w *Workflow) WithClock(now func() time.Time) *Workflow {
	w.now = now
	return w
}

// Submit drives the state machine Idle → Validating → Submitting → result.
func (w *Workflow) Submit(ctx context.Context, user *User) (*Result, error) {
	// Validating.
	if user == nil || user.UID == "" {
		return nil, ErrNotAuthenticated
	}
	snap := w.carts.Get(user.UID)
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	resolution, err := w.roles.Resolve(ctx, user.UID)
	if err != nil {
		log.Printf("checkout: role lookup failed for %s: %v", user.UID, err)
		return nil, fmt.Errorf("checkout: role lookup: %w", err)
	}

	companyName := ""
	if resolution.Profile != nil {
		companyName = resolution.Profile.CompanyName
	}

	// Submitting: the record gets a server-assigned timestamp and is immutable
	// once written.
	createdAt := w.now().UTC()

	switch resolution.Role {
	case roles.RoleCompany:
		order := &models.Order{
			OrderRef:    w.orderRef(),
			UserID:      user.UID,
			UserEmail:   user.Email,
			CompanyName: companyName,
			Items:       normalizeOrderItems(snap.Items),
			Total:       snap.Subtotal,
			CreatedAt:   createdAt,
		}
		id, err := w.docs.Create(ctx, store.CollectionOrders, order)
		if err != nil {
			log.Printf("checkout: order create failed for %s: %v", user.UID, err)
			return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
		}
		w.carts.Clear(user.UID)
		return &Result{Role: roles.RoleCompany, RecordID: id, Total: order.Total, Cleared: true}, nil

	case roles.RoleStaff, roles.RoleSuperadmin:
		receipt := &models.Receipt{
			UserID:      user.UID,
			UserEmail:   user.Email,
			CompanyName: companyName,
			Items:       normalizeReceiptItems(snap.Items),
			Total:       snap.Subtotal,
			CreatedAt:   createdAt,
		}
		id, err := w.docs.Create(ctx, store.CollectionReceipts, receipt)
		if err != nil {
			log.Printf("checkout: receipt create failed for %s: %v", user.UID, err)
			return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
		}
		view := &ReceiptView{ReceiptID: id, Items: receipt.Items, Total: receipt.Total}
		w.mu.Lock()
		w.receipts[user.UID] = view
		w.mu.Unlock()
		return &Result{Role: resolution.Role, RecordID: id, Total: receipt.Total, View: view}, nil

	default:
		return nil, ErrUnknownRole
	}
}

// LastReceipt returns the snapshot retained by the most recent staff or
// superadmin checkout for uid.
func (w *Workflow) LastReceipt(uid string) (*ReceiptView, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	view, ok := w.receipts[uid]
	return view, ok
}

func normalizeOrderItems(items []cart.Item) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.OrderItem{
			ProductID:   it.ProductID,
			Barcode:     defaultString(it.Barcode, "N/A"),
			ProductName: defaultString(it.ProductName, "Unnamed Product"),
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return out
}

func normalizeReceiptItems(items []cart.Item) []models.ReceiptItem {
	out := make([]models.ReceiptItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.ReceiptItem{
			ProductID:   it.ProductID,
			Barcode:     defaultString(it.Barcode, "N/A"),
			ProductName: defaultString(it.ProductName, "Unnamed Product"),
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return out
}

func (w *Workflow) orderRef() string {
	return w.now().UTC().Format("20060102150405") + "-" + uuid.NewString()
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

package models

import "time"

// Receipt is the record persisted by a staff or superadmin checkout. It lives
// in its own table, disjoint from orders, and acts as a point-of-sale style
// confirmation: the cart is kept after the write.
type Receipt struct {
	ID          string        `gorm:"primaryKey" json:"id"`
	UserID      string        `gorm:"not null;index" json:"user_id"`
	UserEmail   string        `json:"user_email"`
	CompanyName string        `json:"company_name"`
	Items       []ReceiptItem `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"items"`
	Total       float64       `json:"total"`
	CreatedAt   time.Time     `json:"created_at"`
}

type ReceiptItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	ReceiptID   string  `gorm:"index" json:"-"`
	ProductID   string  `json:"product_id"`
	Barcode     string  `json:"barcode"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

func (r *Receipt) Collection() string      { return "receipts" }
func (r *Receipt) DocumentID() string      { return r.ID }
func (r *Receipt) SetDocumentID(id string) { r.ID = id }

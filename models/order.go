package models

import "time"

// Order is the record persisted by a company checkout. Orders are written once
// and never updated or deleted by the checkout flow.
type Order struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	OrderRef    string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID      string      `gorm:"not null;index" json:"user_id"`
	UserEmail   string      `json:"user_email"`
	CompanyName string      `json:"company_name"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total       float64     `json:"total"`
	CreatedAt   time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderID     string  `gorm:"index" json:"-"`
	ProductID   string  `json:"product_id"`
	Barcode     string  `json:"barcode"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

func (o *Order) Collection() string      { return "orders" }
func (o *Order) DocumentID() string      { return o.ID }
func (o *Order) SetDocumentID(id string) { o.ID = id }

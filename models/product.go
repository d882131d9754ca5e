package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	Barcode       string         `json:"barcode"`
	EName         string         `gorm:"not null" json:"ename"` // English Name
	ARName        string         `json:"arname"`                // Arabic Name
	EDescription  string         `json:"edescription"`
	ARDescription string         `json:"ardescription"`
	SalePrice     float64        `gorm:"not null" json:"sale_price"`
	RegularPrice  float64        `json:"regular_price"`
	Image         string         `json:"image"`
	Stock         int            `json:"stock"`
	Categories    []Category     `gorm:"many2many:product_categories;" json:"categories"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

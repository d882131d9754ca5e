package models

import "time"

// UserProfile is the stored account document. The Role field is the sole
// authorization source; the cart/checkout flow never mutates it.
type UserProfile struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"type:VARCHAR(20)" json:"role"`
	CompanyName  string    `json:"company_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *UserProfile) Collection() string      { return "profiles" }
func (p *UserProfile) DocumentID() string      { return p.ID }
func (p *UserProfile) SetDocumentID(id string) { p.ID = id }

package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EName    string    `gorm:"unique;not null" json:"ename"`
	ARName   string    `gorm:"unique;not null" json:"arname"`
	Image    string    `json:"image"`
	Products []Product `gorm:"many2many:product_categories" json:"-"`
}

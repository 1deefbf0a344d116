package models

// Order is a confirmed line item converted from a cart row. Rows are never
// updated after insert.
type Order struct {
	ID          uint   `gorm:"primaryKey;column:order_id"`               // Unique order ID
	UserID      uint   `gorm:"not null;index"`                           // Foreign key to users table
	User        User   `gorm:"foreignKey:UserID;references:ID" json:"-"` // Foreign key constraint
	ProductName string `gorm:"not null"`
	Price       int64  `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	Total       int64  `gorm:"not null"`
}

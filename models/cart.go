package models

// CartItem is a pending line item. Values are copied from the catalog at add
// time; repeated adds of the same product create separate rows.
type CartItem struct {
	ID          uint   `gorm:"primaryKey"`                               // Surrogate key used by remove-from-cart
	UserID      uint   `gorm:"not null;index"`                           // Foreign key to users table
	User        User   `gorm:"foreignKey:UserID;references:ID" json:"-"` // Foreign key constraint
	ProductName string `gorm:"not null"`
	Price       int64  `gorm:"not null"` // Integer currency units
	Quantity    int    `gorm:"not null"`
	Total       int64  `gorm:"not null"` // Price*Quantity at creation time
}

func (CartItem) TableName() string { return "cart" }

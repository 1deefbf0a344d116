// cart.go - Per-user cart rows

package services

import (
	"fmt"
	"math"

	"go-food-shop/catalog"
	"go-food-shop/models"

	"gorm.io/gorm"
)

// CartSummary is a user's cart with the sum of its row totals.
type CartSummary struct {
	Items []models.CartItem
	Total int64
}

// AddItem appends a cart row. Rows are never merged, so adding the same
// product twice yields two rows.
func AddItem(db *gorm.DB, userID uint, productName string, price int64, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if price > math.MaxInt64/int64(quantity) {
		return nil, ErrAmountTooLarge
	}
	item := models.CartItem{
		UserID:      userID,
		ProductName: productName,
		Price:       price,
		Quantity:    quantity,
		Total:       price * int64(quantity),
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return &item, nil
}

// CheckCatalogPrice verifies that the product exists and the submitted price
// matches the catalog.
func CheckCatalogPrice(productName string, price int64) error {
	p, ok := catalog.Lookup(productName)
	if !ok {
		return ErrUnknownProduct
	}
	if p.Price != price {
		return ErrPriceMismatch
	}
	return nil
}

// ListItems returns every cart row of the user in insertion order.
func ListItems(db *gorm.DB, userID uint) (CartSummary, error) {
	var summary CartSummary
	if err := db.Where("user_id = ?", userID).Order("id").Find(&summary.Items).Error; err != nil {
		return CartSummary{}, fmt.Errorf("list cart: %w", err)
	}
	for _, item := range summary.Items {
		if item.Total > math.MaxInt64-summary.Total {
			return CartSummary{}, ErrAmountTooLarge
		}
		summary.Total += item.Total
	}
	return summary, nil
}

// RemoveItem deletes one cart row owned by userID. Ids that do not exist or
// belong to someone else are ignored.
func RemoveItem(db *gorm.DB, userID, itemID uint) error {
	err := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

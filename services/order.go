// order.go - Cart to order conversion

package services

import (
	"go-food-shop/models"

	"gorm.io/gorm"
)

// PlaceOrder moves every cart row of the user into the orders table and
// empties the cart, all in one transaction. An empty cart places nothing.
func PlaceOrder(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		orders = make([]models.Order, 0, len(items))
		for _, item := range items {
			orders = append(orders, models.Order{
				UserID:      userID,
				ProductName: item.ProductName,
				Price:       item.Price,
				Quantity:    item.Quantity,
				Total:       item.Total,
			})
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}

		// Clear cart items
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListUserOrders returns a user's orders, oldest first.
func ListUserOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).Order("order_id").Find(&orders).Error
	return orders, err
}

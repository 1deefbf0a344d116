// admin.go - Queries behind the admin pages

package services

import (
	"fmt"

	"go-food-shop/models"

	"gorm.io/gorm"
)

// UserSummary is a user row without the password hash.
type UserSummary struct {
	ID       uint
	Username string
	Role     models.Role
}

// OrderRow is an order joined with the username of whoever placed it.
type OrderRow struct {
	OrderID     uint
	Username    string
	ProductName string
	Price       int64
	Quantity    int
	Total       int64
}

func ListUsers(db *gorm.DB) ([]UserSummary, error) {
	var users []UserSummary
	err := db.Model(&models.User{}).
		Select("user_id AS id, username, role").
		Order("user_id").
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func ListOrders(db *gorm.DB) ([]OrderRow, error) {
	var rows []OrderRow
	err := db.Table("orders").
		Select("orders.order_id, users.username, orders.product_name, orders.price, orders.quantity, orders.total").
		Joins("JOIN users ON orders.user_id = users.user_id").
		Order("orders.order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return rows, nil
}

// ResetPassword overwrites the stored hash of the target user.
func ResetPassword(db *gorm.DB, userID uint, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	res := db.Model(&models.User{}).Where("user_id = ?", userID).Update("password", hash)
	if res.Error != nil {
		return fmt.Errorf("reset password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

package services

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownProduct     = errors.New("product is not in the catalog")
	ErrPriceMismatch      = errors.New("price does not match the catalog")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrAmountTooLarge     = errors.New("amount exceeds the largest storable total")
)

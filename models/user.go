// user.go - Defines the User model for the database

package models

type Role string // Role is the access level attached to an account

const (
	RoleUser  Role = "user"  // Ordinary shopper
	RoleAdmin Role = "admin" // May list users/orders and reset passwords
)

// Administrator is the capability checked by admin-only routes.
type Administrator interface {
	IsAdmin() bool
}

type User struct { // User struct represents a user in the database
	ID       uint   `gorm:"primaryKey;column:user_id"`                // Unique user ID (primary key)
	Username string `gorm:"unique;not null"`                          // Login name (must be unique, cannot be null)
	Password string `gorm:"not null"`                                 // bcrypt hash, never the plaintext
	Role     Role   `gorm:"type:varchar(16);not null;default:'user'"` // User role (user/admin)
}

var _ Administrator = (*User)(nil)

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

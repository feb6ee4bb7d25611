package entity

import (
	"gorm.io/gorm"
)

// User is a back-office account. The public site has no customer accounts;
// orders and reservations carry their own contact fields.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:staff" json:"role"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	FullName string           `json:"fullName"`
	Email    string           `gorm:"uniqueIndex" json:"email"`
	Phone    string           `json:"phone,omitempty"`
	Role     string           `json:"role"`
	Salary   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"salary,omitempty"`
	HireDate time.Time        `json:"hireDate"`
	IsActive bool             `gorm:"default:true" json:"isActive"`
}

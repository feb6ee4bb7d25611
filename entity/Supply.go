package entity

import (
	"time"

	"gorm.io/gorm"
)

type Supply struct {
	gorm.Model
	ItemName      string     `json:"itemName"`
	Category      string     `json:"category"`
	Quantity      int        `json:"quantity"`
	Unit          string     `json:"unit"`
	Supplier      string     `json:"supplier,omitempty"`
	LastOrderedAt *time.Time `json:"lastOrderedAt,omitempty"`
	RestockLevel  int        `json:"restockLevel"`
}

// NeedsRestock is derived, never stored.
func (s Supply) NeedsRestock() bool {
	return s.Quantity < s.RestockLevel
}

package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Amrragab78/the-modern-table-sub000/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(order *entity.Order) error {
	return r.DB.Create(order).Error
}

// List returns the whole table, newest first. The back office filters
// client-side, so no pagination or per-filter queries exist here.
func (r *OrderRepository) List() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(id uint, status entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

// RevenueSince sums totals of non-cancelled orders created at or after the
// cutoff. A single linear pass over the window, no grouping.
func (r *OrderRepository) RevenueSince(cutoff time.Time) (decimal.Decimal, error) {
	var orders []entity.Order
	if err := r.DB.Where("created_at >= ?", cutoff).Find(&orders).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, o := range orders {
		if o.Status == entity.OrderCancelled {
			continue
		}
		total = total.Add(o.TotalAmount)
	}
	return total, nil
}

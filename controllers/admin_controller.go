package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Amrragab78/the-modern-table-sub000/entity"
	"github.com/Amrragab78/the-modern-table-sub000/pkg/resp"
	"github.com/Amrragab78/the-modern-table-sub000/repository"
)

// AdminController serves the back-office read side: dashboard counts and
// whole-table list views. Pages filter and export client-side, so every
// list returns the full table in one query.
type AdminController struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
}

func NewAdminController(db *gorm.DB, orderRepo *repository.OrderRepository) *AdminController {
	return &AdminController{DB: db, OrderRepo: orderRepo}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalOrders, pendingOrders int64
	if err := db.Model(&entity.Order{}).Count(&totalOrders).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	db.Model(&entity.Order{}).Where("status = ?", entity.OrderPending).Count(&pendingOrders)

	var totalReservations, pendingReservations int64
	db.Model(&entity.Reservation{}).Count(&totalReservations)
	db.Model(&entity.Reservation{}).Where("status = ?", entity.ReservationPending).Count(&pendingReservations)

	var newMessages int64
	db.Model(&entity.ContactMessage{}).Where("status = ?", entity.ContactNew).Count(&newMessages)

	var totalEmployees, activeEmployees int64
	db.Model(&entity.Employee{}).Count(&totalEmployees)
	db.Model(&entity.Employee{}).Where("is_active = ?", true).Count(&activeEmployees)

	// Restock need is derived, so it is counted by scanning the table, not
	// by a stored flag.
	var supplies []entity.Supply
	if err := db.Find(&supplies).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	restockNeeded := 0
	for _, s := range supplies {
		if s.NeedsRestock() {
			restockNeeded++
		}
	}

	revenue, err := ac.OrderRepo.RevenueSince(time.Now().AddDate(0, 0, -7))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalOrders":         totalOrders,
		"pendingOrders":       pendingOrders,
		"totalReservations":   totalReservations,
		"pendingReservations": pendingReservations,
		"newMessages":         newMessages,
		"totalEmployees":      totalEmployees,
		"activeEmployees":     activeEmployees,
		"suppliesNeedRestock": restockNeeded,
		"revenueLast7Days":    revenue.StringFixed(2),
	})
}

// GET /admin/orders
func (ac *AdminController) Orders(c *gin.Context) {
	orders, err := ac.OrderRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /admin/reservations
func (ac *AdminController) Reservations(c *gin.Context) {
	var items []entity.Reservation
	if err := ac.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/contacts
func (ac *AdminController) Contacts(c *gin.Context) {
	var items []entity.ContactMessage
	if err := ac.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/employees
func (ac *AdminController) Employees(c *gin.Context) {
	var items []entity.Employee
	if err := ac.DB.Order("full_name").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/supplies
func (ac *AdminController) Supplies(c *gin.Context) {
	var items []entity.Supply
	if err := ac.DB.Order("item_name").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	type supplyRow struct {
		entity.Supply
		NeedsRestock bool `json:"needsRestock"`
	}
	rows := make([]supplyRow, 0, len(items))
	for _, s := range items {
		rows = append(rows, supplyRow{Supply: s, NeedsRestock: s.NeedsRestock()})
	}
	resp.OK(c, gin.H{"items": rows})
}

package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Amrragab78/the-modern-table-sub000/entity"
	"github.com/Amrragab78/the-modern-table-sub000/pkg/resp"
	"github.com/Amrragab78/the-modern-table-sub000/repository"
	"github.com/Amrragab78/the-modern-table-sub000/services"
)

// AdminActionsController holds the one-shot mutation endpoints: each
// accepts an id plus a target value and performs exactly one guarded
// update or delete. Status values are checked against the enum; which
// transition they form is not — any status may replace any other.
type AdminActionsController struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	Notify    services.Notifier
}

func NewAdminActionsController(db *gorm.DB, orderRepo *repository.OrderRepository, notify services.Notifier) *AdminActionsController {
	if notify == nil {
		notify = services.NopNotifier{}
	}
	return &AdminActionsController{DB: db, OrderRepo: orderRepo, Notify: notify}
}

type statusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// POST /admin/update-order-status
func (ac *AdminActionsController) UpdateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, err := entity.ValidateOrderStatus(req.Status)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	affected, err := ac.OrderRepo.UpdateStatus(req.ID, status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.BadRequest(c, "order not found")
		return
	}
	ac.Notify.OrdersChanged("")
	resp.OK(c, gin.H{"success": true})
}

// POST /admin/update-reservation-status
func (ac *AdminActionsController) UpdateReservationStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, err := entity.ValidateReservationStatus(req.Status)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := ac.DB.Model(&entity.Reservation{}).Where("id = ?", req.ID).Update("status", status)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.BadRequest(c, "reservation not found")
		return
	}
	resp.OK(c, gin.H{"success": true})
}

// POST /admin/update-contact-status
func (ac *AdminActionsController) UpdateContactStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, err := entity.ValidateContactStatus(req.Status)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := ac.DB.Model(&entity.ContactMessage{}).Where("id = ?", req.ID).Update("status", status)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.BadRequest(c, "message not found")
		return
	}
	resp.OK(c, gin.H{"success": true})
}

// POST /admin/toggle-employee-status
func (ac *AdminActionsController) ToggleEmployeeStatus(c *gin.Context) {
	var req struct {
		ID       uint  `json:"id" binding:"required"`
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := ac.DB.Model(&entity.Employee{}).Where("id = ?", req.ID).Update("is_active", *req.IsActive)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.BadRequest(c, "employee not found")
		return
	}
	resp.OK(c, gin.H{"success": true})
}

type idRequest struct {
	ID uint `json:"id" binding:"required"`
}

// POST /admin/delete-employee
func (ac *AdminActionsController) DeleteEmployee(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.DB.Delete(&entity.Employee{}, req.ID).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true})
}

// POST /admin/delete-supply
func (ac *AdminActionsController) DeleteSupply(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.DB.Delete(&entity.Supply{}, req.ID).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true})
}

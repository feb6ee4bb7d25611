package controllers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Amrragab78/the-modern-table-sub000/entity"
	"github.com/Amrragab78/the-modern-table-sub000/pkg/resp"
)

type ReservationController struct{ DB *gorm.DB }

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

type reserveRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required,min=1"`
	Notes  string `json:"notes"`
}

// POST /reserve
func (rc *ReservationController) Create(c *gin.Context) {
	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := entity.Reservation{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		PartySize:       req.Guests,
		SpecialRequests: req.Notes,
		Status:          entity.ReservationPending,
	}
	if err := rc.DB.Create(&res).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	log.Printf("reservation request: %s, party of %d on %s %s", req.Name, req.Guests, req.Date, req.Time)

	resp.OK(c, gin.H{
		"success": true,
		"message": "Reservation received! We'll confirm by email shortly.",
	})
}

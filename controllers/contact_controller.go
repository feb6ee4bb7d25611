package controllers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Amrragab78/the-modern-table-sub000/entity"
	"github.com/Amrragab78/the-modern-table-sub000/pkg/resp"
)

type ContactController struct{ DB *gorm.DB }

func NewContactController(db *gorm.DB) *ContactController { return &ContactController{DB: db} }

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// POST /contact
func (ct *ContactController) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg := entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  entity.ContactNew,
	}
	if err := ct.DB.Create(&msg).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	// Notification delivery is a console stub.
	log.Printf("contact message from %s <%s>: %s", req.Name, req.Email, req.Subject)

	resp.OK(c, gin.H{"message": "Thanks for reaching out! We'll get back to you soon."})
}

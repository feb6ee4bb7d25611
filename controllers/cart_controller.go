package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Amrragab78/the-modern-table-sub000/cart"
	"github.com/Amrragab78/the-modern-table-sub000/pkg/resp"
	"github.com/Amrragab78/the-modern-table-sub000/services"
)

const cartCookie = "cart_token"

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// cartToken reads the visitor's cart cookie, minting one on first contact.
func cartToken(c *gin.Context) string {
	if t, err := c.Cookie(cartCookie); err == nil && t != "" {
		return t
	}
	t := uuid.NewString()
	c.SetCookie(cartCookie, t, 60*60*24*30, "/", "", false, true)
	return t
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, h.Svc.Get(cartToken(c)))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Price       string `json:"price" binding:"required"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view := h.Svc.AddItem(cartToken(c), cart.Line{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	})
	resp.OK(c, view)
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Delta int    `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.UpdateQuantity(cartToken(c), req.Name, req.Delta))
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.RemoveItem(cartToken(c), req.Name))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Svc.Clear(cartToken(c))
	resp.OK(c, gin.H{"success": true})
}

package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Amrragab78/the-modern-table-sub000/cart"
	"github.com/Amrragab78/the-modern-table-sub000/pkg/resp"
	"github.com/Amrragab78/the-modern-table-sub000/services"
)

type CheckoutController struct {
	Svc     *services.CheckoutService
	CartSvc *services.CartService
}

func NewCheckoutController(svc *services.CheckoutService, cartSvc *services.CartService) *CheckoutController {
	return &CheckoutController{Svc: svc, CartSvc: cartSvc}
}

type checkoutSessionRequest struct {
	Items        []cart.Line `json:"items"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	PickupTime   string      `json:"pickupTime"`
}

// POST /create-checkout-session
func (h *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	var req checkoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.CreateCheckoutSession(c.Request.Context(), &services.CheckoutIn{
		Items:         req.Items,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		PickupTime:    req.PickupTime,
	})
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			resp.BadRequest(c, ve.Msg)
			return
		}
		resp.ServerError(c, err)
		return
	}

	h.clearSessionCart(c)
	resp.OK(c, gin.H{"url": out.CheckoutURL, "orderId": out.OrderToken})
}

type offlineOrderRequest struct {
	Items        []cart.Line `json:"items"`
	CustomerInfo struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		PickupTime string `json:"pickupTime"`
		Email      string `json:"email"`
	} `json:"customerInfo"`
}

// POST /create-offline-order
func (h *CheckoutController) CreateOfflineOrder(c *gin.Context) {
	var req offlineOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.CreateOfflineOrder(c.Request.Context(), &services.CheckoutIn{
		Items:         req.Items,
		CustomerName:  req.CustomerInfo.Name,
		CustomerEmail: req.CustomerInfo.Email,
		CustomerPhone: req.CustomerInfo.Phone,
		PickupTime:    req.CustomerInfo.PickupTime,
	})
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			resp.BadRequest(c, ve.Msg)
			return
		}
		resp.ServerError(c, err)
		return
	}

	h.clearSessionCart(c)
	resp.OK(c, gin.H{"orderId": out.OrderToken, "customerName": req.CustomerInfo.Name, "success": true})
}

// GET /order/success — payment redirect landing; echoes what the checkout
// attached to the URL so the page can confirm without another query.
func (h *CheckoutController) PaymentSuccess(c *gin.Context) {
	resp.OK(c, gin.H{
		"status":       "success",
		"orderId":      c.Query("orderId"),
		"customerName": c.Query("customerName"),
		"sessionId":    c.Query("session_id"),
	})
}

// GET /order/cancel
func (h *CheckoutController) PaymentCancel(c *gin.Context) {
	resp.OK(c, gin.H{
		"status":       "cancelled",
		"orderId":      c.Query("orderId"),
		"customerName": c.Query("customerName"),
	})
}

// The browser owns the cart, but the server-side session copy is cleared
// alongside it once an order is placed.
func (h *CheckoutController) clearSessionCart(c *gin.Context) {
	if t, err := c.Cookie(cartCookie); err == nil && t != "" {
		h.CartSvc.Clear(t)
	}
}

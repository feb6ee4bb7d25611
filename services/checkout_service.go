package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Amrragab78/the-modern-table-sub000/cart"
	"github.com/Amrragab78/the-modern-table-sub000/entity"
	"github.com/Amrragab78/the-modern-table-sub000/payments"
	"github.com/Amrragab78/the-modern-table-sub000/repository"
	"github.com/Amrragab78/the-modern-table-sub000/utils"
)

// Notifier is told whenever the orders table changes so the back office can
// refetch. The websocket hub implements it; tests use a no-op.
type Notifier interface {
	OrdersChanged(orderToken string)
}

type NopNotifier struct{}

func (NopNotifier) OrdersChanged(string) {}

// ValidationError distinguishes caller mistakes (400) from upstream
// failures (500).
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

type CheckoutService struct {
	Repo     *repository.OrderRepository
	Provider payments.CheckoutProvider
	BaseURL  string
	Notify   Notifier
}

func NewCheckoutService(repo *repository.OrderRepository, provider payments.CheckoutProvider, baseURL string, notify Notifier) *CheckoutService {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &CheckoutService{Repo: repo, Provider: provider, BaseURL: strings.TrimRight(baseURL, "/"), Notify: notify}
}

type CheckoutIn struct {
	Items         []cart.Line
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PickupTime    string
}

type CheckoutOut struct {
	OrderToken  string
	CheckoutURL string // empty for pay-at-pickup
}

// validate runs before any network call. Each failure names its field so
// the form can point at it.
func (s *CheckoutService) validate(in *CheckoutIn) error {
	if len(in.Items) == 0 {
		return &ValidationError{Msg: "your cart is empty"}
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return &ValidationError{Msg: "name is required"}
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return &ValidationError{Msg: "phone is required"}
	}
	if strings.TrimSpace(in.PickupTime) == "" {
		return &ValidationError{Msg: "pickup time is required"}
	}
	return nil
}

// total is computed from the cart itself, never taken from the processor.
// If the processor's line-item math ever diverges (rounding on odd price
// labels), the value stored here is what staff reconcile against.
func orderTotal(items []cart.Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range items {
		total = total.Add(cart.ParsePrice(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func itemsJSON(items []cart.Line) ([]byte, error) {
	lines := make([]entity.OrderLine, 0, len(items))
	for _, l := range items {
		lines = append(lines, entity.OrderLine{
			Name:        l.Name,
			Price:       l.Price,
			Quantity:    l.Quantity,
			Description: l.Description,
			Image:       l.Image,
		})
	}
	return json.Marshal(lines)
}

// CreateCheckoutSession is the online-pay variant: open a hosted checkout
// session, record the pending order tagged with the session id, and hand
// the browser the checkout URL to redirect to.
func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, in *CheckoutIn) (*CheckoutOut, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	token := utils.NewOrderToken()

	lineItems := make([]payments.LineItem, 0, len(in.Items))
	for _, l := range in.Items {
		unit := cart.ParsePrice(l.Price).Mul(decimal.NewFromInt(100)).IntPart()
		lineItems = append(lineItems, payments.LineItem{
			Name:        l.Name,
			Description: l.Description,
			Image:       l.Image,
			UnitAmount:  unit,
			Quantity:    l.Quantity,
		})
	}

	q := url.Values{}
	q.Set("orderId", token)
	q.Set("customerName", in.CustomerName)
	// The processor substitutes its session id into the placeholder.
	successURL := fmt.Sprintf("%s/order/success?%s&session_id={CHECKOUT_SESSION_ID}", s.BaseURL, q.Encode())
	cancelURL := fmt.Sprintf("%s/order/cancel?%s", s.BaseURL, q.Encode())

	session, err := s.Provider.CreateSession(ctx, &payments.SessionRequest{
		LineItems:    lineItems,
		SuccessURL:   successURL,
		CancelURL:    cancelURL,
		CustomerName: in.CustomerName,
		OrderToken:   token,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	items, err := itemsJSON(in.Items)
	if err != nil {
		return nil, err
	}
	order := entity.Order{
		OrderToken:        token,
		CustomerName:      in.CustomerName,
		CustomerEmail:     in.CustomerEmail,
		CustomerPhone:     in.CustomerPhone,
		PickupTime:        in.PickupTime,
		Items:             items,
		TotalAmount:       orderTotal(in.Items),
		Status:            entity.OrderPending,
		PaymentMethod:     entity.PaymentOnline,
		PaymentSessionRef: session.ID,
	}
	if err := s.Repo.Create(&order); err != nil {
		// The session already exists, so the customer still gets sent to
		// pay; the missing row is reconciled by hand against the processor
		// dashboard.
		log.Printf("order %s: record failed after session %s created: %v", token, session.ID, err)
	} else {
		s.Notify.OrdersChanged(token)
	}

	return &CheckoutOut{OrderToken: token, CheckoutURL: session.URL}, nil
}

// CreateOfflineOrder is the pay-at-pickup variant: no checkout session,
// just a pending order row. A processor-side customer record is registered
// for traceability when the provider supports it, best effort.
func (s *CheckoutService) CreateOfflineOrder(ctx context.Context, in *CheckoutIn) (*CheckoutOut, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	token := utils.NewOrderToken()

	if s.Provider != nil {
		if err := s.Provider.RecordCustomer(ctx, in.CustomerName, in.CustomerPhone, token); err != nil {
			log.Printf("order %s: customer record failed: %v", token, err)
		}
	}

	items, err := itemsJSON(in.Items)
	if err != nil {
		return nil, err
	}
	order := entity.Order{
		OrderToken:    token,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		PickupTime:    in.PickupTime,
		Items:         items,
		TotalAmount:   orderTotal(in.Items),
		Status:        entity.OrderPending,
		PaymentMethod: entity.PaymentOffline,
	}
	if err := s.Repo.Create(&order); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}
	s.Notify.OrdersChanged(token)

	return &CheckoutOut{OrderToken: token}, nil
}

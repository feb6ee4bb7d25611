package payments

import "context"

// LineItem is one priced row sent to the processor's hosted checkout.
// UnitAmount is in minor currency units (cents).
type LineItem struct {
	Name        string
	Description string
	Image       string
	UnitAmount  int64
	Quantity    int
}

// SessionRequest describes the hosted checkout session to create. The
// redirect URLs already carry the order token and customer name as query
// parameters; the processor appends its own session id.
type SessionRequest struct {
	LineItems    []LineItem
	SuccessURL   string
	CancelURL    string
	CustomerName string
	OrderToken   string
}

type Session struct {
	ID  string
	URL string
}

// CheckoutProvider is the provider-agnostic surface the checkout flow talks
// to. Swapping processors means implementing this interface.
type CheckoutProvider interface {
	// CreateSession opens a hosted checkout page and returns its id and URL.
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
	// RecordCustomer registers a lightweight customer record carrying order
	// metadata, used for traceability on pay-at-pickup orders only.
	RecordCustomer(ctx context.Context, name, phone, orderToken string) error
}

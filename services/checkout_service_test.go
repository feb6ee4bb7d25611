package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Amrragab78/the-modern-table-sub000/cart"
	"github.com/Amrragab78/the-modern-table-sub000/entity"
	"github.com/Amrragab78/the-modern-table-sub000/payments"
	"github.com/Amrragab78/the-modern-table-sub000/repository"
)

type fakeProvider struct {
	sessions    int
	customers   int
	lastSession *payments.SessionRequest
	failSession bool
}

func (f *fakeProvider) CreateSession(_ context.Context, req *payments.SessionRequest) (*payments.Session, error) {
	f.sessions++
	f.lastSession = req
	if f.failSession {
		return nil, assert.AnError
	}
	return &payments.Session{ID: "sess_123", URL: "https://pay.example/sess_123"}, nil
}

func (f *fakeProvider) RecordCustomer(_ context.Context, _, _, _ string) error {
	f.customers++
	return nil
}

type countingNotifier struct{ changes int }

func (n *countingNotifier) OrdersChanged(string) { n.changes++ }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Order{}))
	return db
}

func newService(t *testing.T) (*CheckoutService, *fakeProvider, *countingNotifier, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	provider := &fakeProvider{}
	notify := &countingNotifier{}
	svc := NewCheckoutService(repository.NewOrderRepository(db), provider, "https://themoderntable.example/", notify)
	return svc, provider, notify, db
}

var orderTokenRe = regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)

func TestCheckoutValidationBlocksBeforeAnyNetworkCall(t *testing.T) {
	svc, provider, _, _ := newService(t)

	cases := []struct {
		name string
		in   CheckoutIn
		msg  string
	}{
		{"empty cart", CheckoutIn{CustomerName: "Ana", CustomerPhone: "555", PickupTime: "18:00"}, "your cart is empty"},
		{"blank name", CheckoutIn{Items: []cart.Line{{Name: "A", Price: "$1", Quantity: 1}}, CustomerPhone: "555", PickupTime: "18:00"}, "name is required"},
		{"blank phone", CheckoutIn{Items: []cart.Line{{Name: "A", Price: "$1", Quantity: 1}}, CustomerName: "Ana", PickupTime: "18:00"}, "phone is required"},
		{"blank pickup", CheckoutIn{Items: []cart.Line{{Name: "A", Price: "$1", Quantity: 1}}, CustomerName: "Ana", CustomerPhone: "555"}, "pickup time is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.in
			_, err := svc.CreateCheckoutSession(context.Background(), &in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.msg, ve.Msg)

			_, err = svc.CreateOfflineOrder(context.Background(), &in)
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.msg, ve.Msg)
		})
	}
	assert.Zero(t, provider.sessions)
	assert.Zero(t, provider.customers)
}

func TestOfflineOrderPersistsPendingRow(t *testing.T) {
	svc, provider, notify, db := newService(t)

	out, err := svc.CreateOfflineOrder(context.Background(), &CheckoutIn{
		Items: []cart.Line{
			{Name: "Braised Short Rib", Price: "$32.00", Quantity: 1},
			{Name: "Lemonade", Price: "$5.00", Quantity: 2},
		},
		CustomerName:  "Ana",
		CustomerPhone: "555-0101",
		PickupTime:    "18:30",
	})
	require.NoError(t, err)
	assert.Regexp(t, orderTokenRe, out.OrderToken)
	assert.Empty(t, out.CheckoutURL)

	var order entity.Order
	require.NoError(t, db.Where("order_token = ?", out.OrderToken).First(&order).Error)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentOffline, order.PaymentMethod)
	assert.Equal(t, "42.00", order.TotalAmount.StringFixed(2))
	assert.Empty(t, order.PaymentSessionRef)

	var lines []entity.OrderLine
	require.NoError(t, json.Unmarshal(order.Items, &lines))
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[1].Quantity)

	assert.Equal(t, 1, provider.customers)
	assert.Zero(t, provider.sessions)
	assert.Equal(t, 1, notify.changes)
}

func TestOnlineCheckoutCreatesSessionAndPendingRow(t *testing.T) {
	svc, provider, notify, db := newService(t)

	out, err := svc.CreateCheckoutSession(context.Background(), &CheckoutIn{
		Items: []cart.Line{
			{Name: "Tiramisu", Price: "$15", Quantity: 2, Description: "classic"},
		},
		CustomerName:  "Ben",
		CustomerPhone: "555-0102",
		PickupTime:    "19:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/sess_123", out.CheckoutURL)
	assert.Regexp(t, orderTokenRe, out.OrderToken)

	require.NotNil(t, provider.lastSession)
	require.Len(t, provider.lastSession.LineItems, 1)
	assert.Equal(t, int64(1500), provider.lastSession.LineItems[0].UnitAmount)
	assert.Equal(t, 2, provider.lastSession.LineItems[0].Quantity)
	assert.Contains(t, provider.lastSession.SuccessURL, "orderId="+out.OrderToken)
	assert.Contains(t, provider.lastSession.SuccessURL, "session_id={CHECKOUT_SESSION_ID}")
	assert.Contains(t, provider.lastSession.CancelURL, "orderId="+out.OrderToken)

	var order entity.Order
	require.NoError(t, db.Where("order_token = ?", out.OrderToken).First(&order).Error)
	assert.Equal(t, entity.PaymentOnline, order.PaymentMethod)
	assert.Equal(t, "sess_123", order.PaymentSessionRef)
	// The persisted total comes from the cart, not the processor.
	assert.Equal(t, "30.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, 1, notify.changes)
}

func TestOnlineCheckoutSurvivesPersistenceFailure(t *testing.T) {
	svc, _, notify, db := newService(t)
	// Make the insert fail after the session is created.
	require.NoError(t, db.Migrator().DropTable(&entity.Order{}))

	out, err := svc.CreateCheckoutSession(context.Background(), &CheckoutIn{
		Items:         []cart.Line{{Name: "Tiramisu", Price: "$15", Quantity: 1}},
		CustomerName:  "Cai",
		CustomerPhone: "555-0103",
		PickupTime:    "20:00",
	})

	// The customer still proceeds to the processor; reconciliation is manual.
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/sess_123", out.CheckoutURL)
	assert.Zero(t, notify.changes)
}

func TestOnlineCheckoutPropagatesProviderError(t *testing.T) {
	svc, provider, _, db := newService(t)
	provider.failSession = true

	_, err := svc.CreateCheckoutSession(context.Background(), &CheckoutIn{
		Items:         []cart.Line{{Name: "Tiramisu", Price: "$15", Quantity: 1}},
		CustomerName:  "Dee",
		CustomerPhone: "555-0104",
		PickupTime:    "20:30",
	})
	require.Error(t, err)
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
}

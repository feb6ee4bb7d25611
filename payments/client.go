package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the processor's REST API. Requests are form-encoded with
// the secret key as a bearer token, per the processor's server-side API.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) CreateSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("metadata[order_token]", req.OrderToken)
	form.Set("metadata[customer_name]", req.CustomerName)
	for i, li := range req.LineItems {
		p := fmt.Sprintf("line_items[%d]", i)
		form.Set(p+"[name]", li.Name)
		if li.Description != "" {
			form.Set(p+"[description]", li.Description)
		}
		if li.Image != "" {
			form.Set(p+"[image]", li.Image)
		}
		form.Set(p+"[unit_amount]", strconv.FormatInt(li.UnitAmount, 10))
		form.Set(p+"[quantity]", strconv.Itoa(li.Quantity))
	}

	var out struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := c.post(ctx, "/v1/checkout/sessions", form, &out); err != nil {
		return nil, err
	}
	return &Session{ID: out.ID, URL: out.URL}, nil
}

func (c *Client) RecordCustomer(ctx context.Context, name, phone, orderToken string) error {
	form := url.Values{}
	form.Set("name", name)
	form.Set("phone", phone)
	form.Set("metadata[order_token]", orderToken)
	return c.post(ctx, "/v1/customers", form, nil)
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// One retry-safe key per logical request; the processor dedupes on it.
	req.Header.Set("Idempotency-Key", uuid.NewString())

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("payments: %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("payments: %s returned %d: %s", path, res.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

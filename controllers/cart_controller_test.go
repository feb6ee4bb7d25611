package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amrragab78/the-modern-table-sub000/services"
)

func cartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := NewCartController(services.NewCartService(nopStore{}))
	r := gin.New()
	r.GET("/cart", ctrl.Get)
	r.POST("/cart/items", ctrl.Add)
	r.PATCH("/cart/items/qty", ctrl.UpdateQuantity)
	r.DELETE("/cart/items", ctrl.RemoveItem)
	r.DELETE("/cart", ctrl.Clear)
	return r
}

func cartRequest(t *testing.T, r *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartFirstContactMintsCookie(t *testing.T) {
	r := cartRouter(t)
	w := cartRequest(t, r, http.MethodGet, "/cart", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := w.Result()
	var found bool
	for _, c := range res.Cookies() {
		if c.Name == "cart_token" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a cart_token cookie on first contact")
}

func TestCartAddUpdateRemoveOverHTTP(t *testing.T) {
	r := cartRouter(t)
	cookie := &http.Cookie{Name: "cart_token", Value: "visitor-a"}

	w := cartRequest(t, r, http.MethodPost, "/cart/items",
		gin.H{"name": "Tiramisu", "price": "$15"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	w = cartRequest(t, r, http.MethodPost, "/cart/items",
		gin.H{"name": "Tiramisu", "price": "$15"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var view services.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 2, view.TotalCount)
	assert.Equal(t, "30.00", view.TotalPrice)

	w = cartRequest(t, r, http.MethodPatch, "/cart/items/qty",
		gin.H{"name": "Tiramisu", "delta": -2}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Empty(t, view.Items)

	// Carts are isolated per visitor token.
	other := cartRequest(t, r, http.MethodGet, "/cart", nil,
		&http.Cookie{Name: "cart_token", Value: "visitor-b"})
	require.NoError(t, json.Unmarshal(other.Body.Bytes(), &view))
	assert.Zero(t, view.TotalCount)
}

func TestCartClear(t *testing.T) {
	r := cartRouter(t)
	cookie := &http.Cookie{Name: "cart_token", Value: "visitor-c"}

	cartRequest(t, r, http.MethodPost, "/cart/items", gin.H{"name": "Espresso", "price": "$4.00"}, cookie)
	w := cartRequest(t, r, http.MethodDelete, "/cart", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var view services.View
	g := cartRequest(t, r, http.MethodGet, "/cart", nil, cookie)
	require.NoError(t, json.Unmarshal(g.Body.Bytes(), &view))
	assert.Empty(t, view.Items)
}

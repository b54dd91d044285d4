package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"grillbay.com/app/internal/modules/payments"
)

func TestCartPutThenGet(t *testing.T) {
	r := setupRouter(&payments.Mock{})

	body, _ := json.Marshal(map[string]any{
		"items": []map[string]any{
			{"id": "p1", "name": "Burger", "price": 10, "quantity": 2},
			{"name": "Fries", "price": 3, "quantity": 1},
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	// read it back through the container surface
	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			ID       string  `json:"id"`
			Name     string  `json:"name"`
			Price    float64 `json:"price"`
			Quantity int     `json:"quantity"`
		} `json:"items"`
		Subtotal string `json:"subtotal"`
		Tax      string `json:"tax"`
		Total    string `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "Burger", resp.Items[0].Name)
	assert.Equal(t, 10.0, resp.Items[0].Price)
	assert.NotEmpty(t, resp.Items[1].ID) // id assigned when omitted
	assert.Equal(t, "$23.00", resp.Subtotal)
	assert.Equal(t, "$1.15", resp.Tax)
	assert.Equal(t, "$24.15", resp.Total)
}

func TestCartPut_InvalidPayload(t *testing.T) {
	r := setupRouter(&payments.Mock{})

	req := httptest.NewRequest(http.MethodPut, "/api/cart", bytes.NewReader([]byte(`{"items":[{"name":"","quantity":0}]}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestCartDelete(t *testing.T) {
	r := setupRouter(&payments.Mock{})

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "gb_cart" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestCartGet_EmptyWithoutCookie(t *testing.T) {
	r := setupRouter(&payments.Mock{})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp["items"])
	assert.Equal(t, "$0.00", resp["total"])
}

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"grillbay.com/app/internal/http/cartcookie"
	"grillbay.com/app/internal/modules/payments"
)

func getPage(t *testing.T, r *gin.Engine, path string, cart *cartcookie.Cart) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cart != nil {
		val, err := testCodec().Encode(cart)
		assert.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "gb_cart", Value: val})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutPage_RendersSummaryAndTotals(t *testing.T) {
	r := setupRouter(&payments.Mock{})
	cart := &cartcookie.Cart{Items: []cartcookie.Item{
		{ID: "p1", Name: "Burger", PriceCents: 1000, Qty: 2},
		{ID: "p2", Name: "Fries", PriceCents: 300, Qty: 1},
	}}

	w := getPage(t, r, "/menu-checkout", cart)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Burger x2")
	assert.Contains(t, body, "$20.00")
	assert.Contains(t, body, "Fries x1")
	assert.Contains(t, body, "$3.00")
	assert.Contains(t, body, "$23.00") // subtotal
	assert.Contains(t, body, "$1.15")  // tax 5%
	assert.Contains(t, body, "$24.15") // total
	assert.Contains(t, body, "Pay Now")
}

func TestCheckoutPage_EmptyCart(t *testing.T) {
	r := setupRouter(&payments.Mock{})

	w := getPage(t, r, "/menu-checkout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Your cart is empty")
	assert.NotContains(t, body, "data-item-id")
	assert.Contains(t, body, "$0.00")
}

func TestCheckoutPage_TamperedCookieReadsAsEmpty(t *testing.T) {
	r := setupRouter(&payments.Mock{})

	req := httptest.NewRequest(http.MethodGet, "/menu-checkout", nil)
	req.AddCookie(&http.Cookie{Name: "gb_cart", Value: "bm9wZQ.forged"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your cart is empty")
}

func TestCheckoutPage_SubmitGuardPresent(t *testing.T) {
	r := setupRouter(&payments.Mock{})
	cart := &cartcookie.Cart{Items: []cartcookie.Item{{ID: "p1", Name: "Burger", PriceCents: 1000, Qty: 1}}}

	w := getPage(t, r, "/menu-checkout", cart)
	body := w.Body.String()

	// the in-flight guard: button disabled + label swap while submitting
	assert.Contains(t, body, "btn.disabled = true")
	assert.Contains(t, body, "Processing...")
	assert.Contains(t, body, "if (submitting) return")
}

func TestConfirmationPage(t *testing.T) {
	r := setupRouter(&payments.Mock{})

	w := getPage(t, r, "/order-confirmation?session_id=cs_test_123", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cs_test_123")
	assert.Contains(t, w.Body.String(), "Thank you")
}

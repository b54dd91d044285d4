package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apphttp "grillbay.com/app/internal/http"
	"grillbay.com/app/internal/http/cartcookie"
	"grillbay.com/app/internal/modules/checkout"
	"grillbay.com/app/internal/modules/payments"
)

// ---- helpers ----

func testCodec() *cartcookie.Codec {
	return cartcookie.New([]byte("test-secret"), "gb_cart", false)
}

func setupRouter(provider payments.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := checkout.NewService(provider, nil, nil, "", "https://shop.example", logger)
	return apphttp.NewRouter(apphttp.Deps{
		Logger:   logger,
		Checkout: svc,
		CartCK:   testCodec(),
	})
}

func postSession(t *testing.T, r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleBody() []byte {
	b, _ := json.Marshal(map[string]any{
		"items": []map[string]any{
			{"name": "Burger", "price": 10, "quantity": 2},
			{"name": "Fries", "price": 3, "quantity": 1},
		},
		"customerInfo": map[string]string{
			"firstName": "Jane", "lastName": "Doe",
			"addressLine1": "1 Sample St", "addressLine2": "",
			"city": "Springfield", "zipcode": "12345",
			"phone": "555-0100", "email": "jane@example.com",
		},
	})
	return b
}

// ---- tests ----

func TestCreateSession_Success(t *testing.T) {
	mock := &payments.Mock{Session: payments.Session{ID: "cs_1", URL: "https://pay.example/cs_1"}}
	r := setupRouter(mock)

	w := postSession(t, r, sampleBody())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// exactly {"url": ...}
	assert.Equal(t, map[string]any{"url": "https://pay.example/cs_1"}, resp)

	// line items reached the processor in cents
	assert.Equal(t, 1, mock.Calls())
	assert.Equal(t, int64(1000), mock.Requests[0].LineItems[0].UnitAmountCents)
	assert.Equal(t, int64(300), mock.Requests[0].LineItems[1].UnitAmountCents)
	assert.Equal(t, int64(2), mock.Requests[0].LineItems[0].Quantity)
	assert.Equal(t, int64(1), mock.Requests[0].LineItems[1].Quantity)
}

func TestCreateSession_ProviderFailure(t *testing.T) {
	mock := &payments.Mock{Err: assert.AnError}
	r := setupRouter(mock)

	w := postSession(t, r, sampleBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// processor message passes through verbatim
	assert.Equal(t, assert.AnError.Error(), resp["error"])

	// no retry, no duplicate outbound call
	assert.Equal(t, 1, mock.Calls())
}

func TestCreateSession_ItemsMissing(t *testing.T) {
	mock := &payments.Mock{}
	r := setupRouter(mock)

	w := postSession(t, r, []byte(`{"customerInfo":{}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.Equal(t, 0, mock.Calls())
}

func TestCreateSession_ItemsNotASequence(t *testing.T) {
	mock := &payments.Mock{}
	r := setupRouter(mock)

	w := postSession(t, r, []byte(`{"items":"Burger"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.Equal(t, 0, mock.Calls())
}

func TestCreateSession_ItemsEmpty(t *testing.T) {
	mock := &payments.Mock{}
	r := setupRouter(mock)

	w := postSession(t, r, []byte(`{"items":[]}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, mock.Calls())
}

func TestCreateSession_MalformedJSON(t *testing.T) {
	mock := &payments.Mock{}
	r := setupRouter(mock)

	w := postSession(t, r, []byte(`not-json`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.Equal(t, 0, mock.Calls())
}

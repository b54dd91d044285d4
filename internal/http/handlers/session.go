package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grillbay.com/app/internal/http/middleware"
	"grillbay.com/app/internal/http/validation"
	"grillbay.com/app/internal/modules/checkout"
	"grillbay.com/app/internal/shared/apperr"
)

// SessionHandler is the session endpoint: it converts a client-held cart
// into a hosted checkout session at the payment processor.
type SessionHandler struct {
	Checkout *checkout.Service
}

func NewSessionHandler(svc *checkout.Service) *SessionHandler {
	return &SessionHandler{Checkout: svc}
}

type sessionItemInput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type sessionCustomerInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	Zipcode      string `json:"zipcode"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

type sessionInput struct {
	Items        []sessionItemInput   `json:"items" binding:"required"`
	CustomerInfo sessionCustomerInput `json:"customerInfo"`
}

// Create handles POST /api/create-checkout-session.
//
// Malformed bodies (bad JSON, items missing/empty/not an array) are rejected
// with 400 before any outbound call. A processor failure surfaces as 500
// with the processor's message passed through. Success responds 200 with
// exactly {"url": <hosted page>}.
func (h *SessionHandler) Create(c *gin.Context) {
	var in sessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Checkout request is missing cart items.", validation.FromBindError(err, &in)))
		return
	}

	items := make([]checkout.CartItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, checkout.CartItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	url, err := h.Checkout.CreateSession(c.Request.Context(), checkout.CreateSessionInput{
		Items:    items,
		Customer: checkout.CustomerInfo(in.CustomerInfo),
	})
	if err != nil {
		var unknown *checkout.UnknownProductError
		switch {
		case errors.Is(err, checkout.ErrNoItems):
			middleware.Fail(c, apperr.InvalidErr("Checkout request is missing cart items.", nil))
		case errors.As(err, &unknown):
			middleware.Fail(c, apperr.InvalidErr("Cart contains an unknown product.", nil))
		default:
			middleware.Fail(c, apperr.UpstreamErr(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

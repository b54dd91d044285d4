package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"grillbay.com/app/internal/http/cartcookie"
	"grillbay.com/app/internal/http/middleware"
	"grillbay.com/app/internal/http/validation"
	"grillbay.com/app/internal/modules/checkout"
	"grillbay.com/app/internal/shared/apperr"
	"grillbay.com/app/pkg/view"
)

// CartHandler is the surface of the cart container: the storefront replaces
// or clears the signed cart cookie through it. Checkout itself never writes
// the cart.
type CartHandler struct {
	CartCK *cartcookie.Codec
}

func NewCartHandler(ck *cartcookie.Codec) *CartHandler {
	return &CartHandler{CartCK: ck}
}

type cartItemInput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

type cartInput struct {
	Items []cartItemInput `json:"items" binding:"required,dive"`
}

// Put handles PUT /api/cart: replace the cart contents.
func (h *CartHandler) Put(c *gin.Context) {
	var in cartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Cart payload is not valid.", validation.FromBindError(err, &in)))
		return
	}

	cart := &cartcookie.Cart{Items: make([]cartcookie.Item, 0, len(in.Items))}
	for _, it := range in.Items {
		id := it.ID
		if id == "" {
			id = uuid.NewString()
		}
		cart.Items = append(cart.Items, cartcookie.Item{
			ID:         id,
			Name:       it.Name,
			PriceCents: checkout.UnitAmountCents(it.Price),
			Qty:        it.Quantity,
		})
	}

	if err := h.CartCK.Set(c, cart); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": len(cart.Items)})
}

// Get handles GET /api/cart: the current cart plus derived totals.
func (h *CartHandler) Get(c *gin.Context) {
	items := readCartItems(c, h.CartCK)
	totals := checkout.ComputeTotals(items)

	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, gin.H{
			"id":       it.ID,
			"name":     it.Name,
			"price":    it.Price,
			"quantity": it.Quantity,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    out,
		"subtotal": view.MoneyFromCents(totals.SubtotalCents, checkout.Currency),
		"tax":      view.MoneyFromCents(totals.TaxCents, checkout.Currency),
		"total":    view.MoneyFromCents(totals.TotalCents, checkout.Currency),
	})
}

// Delete handles DELETE /api/cart.
func (h *CartHandler) Delete(c *gin.Context) {
	h.CartCK.Clear(c)
	c.JSON(http.StatusOK, gin.H{"items": 0})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grillbay.com/app/internal/http/cartcookie"
	"grillbay.com/app/internal/modules/checkout"
	"grillbay.com/app/pkg/view"
)

// CheckoutHandler renders the menu-checkout page and the order-confirmation
// landing page. The cart itself is owned by the cart container; this
// handler only reads it.
type CheckoutHandler struct {
	CartCK *cartcookie.Codec
}

func NewCheckoutHandler(ck *cartcookie.Codec) *CheckoutHandler {
	return &CheckoutHandler{CartCK: ck}
}

// Get handles GET /menu-checkout.
func (h *CheckoutHandler) Get(c *gin.Context) {
	items := readCartItems(c, h.CartCK)
	totals := checkout.ComputeTotals(items)

	page := view.CheckoutPage{
		Lines:    make([]view.SummaryLine, 0, len(items)),
		Subtotal: view.MoneyFromCents(totals.SubtotalCents, checkout.Currency),
		Tax:      view.MoneyFromCents(totals.TaxCents, checkout.Currency),
		Total:    view.MoneyFromCents(totals.TotalCents, checkout.Currency),
		Empty:    len(items) == 0,
	}
	for _, it := range items {
		page.Lines = append(page.Lines, view.SummaryLine{
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			LineTotal: view.MoneyFromCents(checkout.LineTotalCents(it), checkout.Currency),
		})
	}

	c.HTML(http.StatusOK, "checkout.html", page)
}

// Confirmation handles GET /order-confirmation, the processor's success
// redirect target.
func (h *CheckoutHandler) Confirmation(c *gin.Context) {
	c.HTML(http.StatusOK, "confirmation.html", view.ConfirmationPage{
		SessionID: c.Query("session_id"),
	})
}

// readCartItems converts the cookie cart into checkout items. Cookie prices
// are stored in cents; the checkout types carry dollars, matching the wire
// contract of the session endpoint.
func readCartItems(c *gin.Context, ck *cartcookie.Codec) []checkout.CartItem {
	cart, ok := ck.Get(c)
	if !ok || cart == nil {
		return nil
	}
	items := make([]checkout.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.Qty <= 0 {
			continue
		}
		items = append(items, checkout.CartItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    float64(it.PriceCents) / 100,
			Quantity: it.Qty,
		})
	}
	return items
}

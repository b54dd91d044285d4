package view

// SummaryLine is one cart entry on the order summary panel.
type SummaryLine struct {
	ID        string
	Name      string
	Quantity  int
	LineTotal string
}

// CheckoutPage feeds the menu-checkout template. Totals are recomputed from
// the live cart on every render and are never stored.
type CheckoutPage struct {
	Lines    []SummaryLine
	Subtotal string
	Tax      string
	Total    string
	Empty    bool
}

type ConfirmationPage struct {
	SessionID string
}

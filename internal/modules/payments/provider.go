package payments

import "context"

// LineItem is one priced entry submitted to the processor. Amounts are in
// minor currency units (cents for USD).
type LineItem struct {
	Name            string
	UnitAmountCents int64
	Quantity        int64
	Currency        string
}

type SessionRequest struct {
	LineItems  []LineItem
	SuccessURL string // template; the processor substitutes its session id
	CancelURL  string
}

// Session is the processor's hosted checkout workflow instance.
type Session struct {
	ID  string
	URL string // browser-navigable hosted page
}

type Provider interface {
	Name() string
	CreateCheckoutSession(ctx context.Context, req SessionRequest) (Session, error)
}

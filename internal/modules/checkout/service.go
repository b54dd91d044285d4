package checkout

import (
	"context"
	"log/slog"

	"grillbay.com/app/internal/mailer"
	"grillbay.com/app/internal/modules/payments"
)

// PriceSource answers what an item actually costs, in minor units, from a
// source the server trusts. found=false means the catalog has no such item.
type PriceSource interface {
	UnitAmountCents(ctx context.Context, id, name string) (cents int64, found bool, err error)
}

type Service struct {
	provider payments.Provider
	prices   PriceSource     // nil: client prices are forwarded as sent
	mail     mailer.Service  // nil: no receipts
	mailFrom string
	baseURL  string
	logger   *slog.Logger
}

func NewService(provider payments.Provider, prices PriceSource, mail mailer.Service, mailFrom, baseURL string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		prices:   prices,
		mail:     mail,
		mailFrom: mailFrom,
		baseURL:  baseURL,
		logger:   logger,
	}
}

type CreateSessionInput struct {
	Items    []CartItem
	Customer CustomerInfo
}

// CreateSession turns the submitted cart into a hosted checkout session and
// returns the processor's redirect URL. Exactly one provider call is made;
// there is no retry and no partial success. Note: once the call is in
// flight it cannot be aborted, so a lost response can still leave a pending
// session on the processor side.
func (s *Service) CreateSession(ctx context.Context, in CreateSessionInput) (string, error) {
	if len(in.Items) == 0 {
		return "", ErrNoItems
	}

	lineItems, err := s.buildLineItems(ctx, in.Items)
	if err != nil {
		return "", err
	}

	res, err := s.provider.CreateCheckoutSession(ctx, payments.SessionRequest{
		LineItems:  lineItems,
		SuccessURL: s.baseURL + "/order-confirmation?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/menu-checkout",
	})
	if err != nil {
		return "", err
	}

	s.sendReceipt(ctx, in, res.ID)

	return res.URL, nil
}

// buildLineItems converts cart entries to processor line items. With a
// PriceSource wired, the catalog price wins over whatever the browser sent;
// without one the client price is trusted verbatim. Quantity is copied as
// sent (caller-trusted).
func (s *Service) buildLineItems(ctx context.Context, items []CartItem) ([]payments.LineItem, error) {
	out := make([]payments.LineItem, 0, len(items))
	for _, it := range items {
		cents := UnitAmountCents(it.Price)

		if s.prices != nil {
			trusted, found, err := s.prices.UnitAmountCents(ctx, it.ID, it.Name)
			if err != nil {
				return nil, err
			}
			if !found {
				return nil, &UnknownProductError{ID: it.ID, Name: it.Name}
			}
			if trusted != cents {
				s.logger.Warn("client price overridden by catalog",
					"item", it.Name, "client_cents", cents, "catalog_cents", trusted)
			}
			cents = trusted
		}

		out = append(out, payments.LineItem{
			Name:            it.Name,
			UnitAmountCents: cents,
			Quantity:        int64(it.Quantity),
			Currency:        Currency,
		})
	}
	return out, nil
}

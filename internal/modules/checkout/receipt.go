package checkout

import (
	"context"
	"fmt"
	"html"
	"strings"

	"grillbay.com/app/internal/mailer"
	"grillbay.com/app/pkg/view"
)

// sendReceipt mails an "order in progress" note to the address collected by
// the checkout form. Best effort only: a failed send is logged and the
// checkout result is unaffected. Payment completion itself is confirmed by
// the processor's hosted page, not by this mail.
func (s *Service) sendReceipt(ctx context.Context, in CreateSessionInput, sessionID string) {
	if s.mail == nil {
		return
	}
	to := strings.TrimSpace(in.Customer.Email)
	if to == "" {
		return
	}

	totals := ComputeTotals(in.Items)
	subject := "Your grillBAY order is in progress"

	err := s.mail.Send(ctx, mailer.Email{
		FromName: "grillBAY",
		From:     s.mailFrom,
		To:       []string{to},
		Subject:  subject,
		TextBody: receiptText(in, totals, sessionID),
		HTMLBody: receiptHTML(in, totals),
	})
	if err != nil {
		s.logger.Error("receipt mail failed", "to", to, "err", err)
	}
}

func receiptText(in CreateSessionInput, totals Totals, sessionID string) string {
	var sb strings.Builder
	sb.WriteString("grillBAY — order in progress\n")
	sb.WriteString("--------------------------------\n")
	if sessionID != "" {
		sb.WriteString("Checkout session: " + sessionID + "\n")
	}
	if lines := in.Customer.AddressLines(); len(lines) > 0 {
		sb.WriteString("Deliver to:\n")
		for _, line := range lines {
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString("\nItems:\n")
	for _, it := range in.Items {
		sb.WriteString(fmt.Sprintf("- %s x%d: %s\n", it.Name, it.Quantity, view.MoneyFromCents(LineTotalCents(it), Currency)))
	}
	sb.WriteString("\nSubtotal: " + view.MoneyFromCents(totals.SubtotalCents, Currency) + "\n")
	sb.WriteString("Tax (5%): " + view.MoneyFromCents(totals.TaxCents, Currency) + "\n")
	sb.WriteString("Total: " + view.MoneyFromCents(totals.TotalCents, Currency) + "\n")
	sb.WriteString("\nComplete your payment on the secure checkout page to confirm the order.\n")
	return sb.String()
}

func receiptHTML(in CreateSessionInput, totals Totals) string {
	var sb strings.Builder
	sb.WriteString(`<div style="font-family:Arial,sans-serif;max-width:560px;margin:0 auto;">`)
	sb.WriteString(`<h2 style="color:#16a34a;">grillBAY</h2>`)
	sb.WriteString(`<p>Your order is in progress. Complete the payment on the secure checkout page to confirm it.</p>`)
	sb.WriteString(`<table style="width:100%;border-collapse:collapse;font-size:14px;">`)
	for _, it := range in.Items {
		sb.WriteString(`<tr>`)
		sb.WriteString(`<td style="padding:4px 8px;border-bottom:1px solid #e5e7eb;">` + html.EscapeString(it.Name) + fmt.Sprintf(" x%d", it.Quantity) + `</td>`)
		sb.WriteString(`<td style="padding:4px 8px;border-bottom:1px solid #e5e7eb;text-align:right;">` + view.MoneyFromCents(LineTotalCents(it), Currency) + `</td>`)
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</table>`)
	sb.WriteString(`<p style="text-align:right;font-size:14px;">Subtotal ` + view.MoneyFromCents(totals.SubtotalCents, Currency) +
		`<br/>Tax (5%) ` + view.MoneyFromCents(totals.TaxCents, Currency) +
		`<br/><strong>Total ` + view.MoneyFromCents(totals.TotalCents, Currency) + `</strong></p>`)
	if lines := in.Customer.AddressLines(); len(lines) > 0 {
		sb.WriteString(`<p style="font-size:13px;color:#475569;">Deliver to:<br/>` + html.EscapeString(strings.Join(lines, ", ")) + `</p>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

package view

import "fmt"

// MoneyFromCents converts minor units to a display string with exactly two
// decimal places. E.g., 2415 USD -> "$24.15"
func MoneyFromCents(cents int64, currency string) string {
	return fmt.Sprintf("%s%.2f", currencySymbol(currency), float64(cents)/100)
}

func currencySymbol(code string) string {
	switch code {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "CAD":
		return "C$"
	default:
		return code + " "
	}
}

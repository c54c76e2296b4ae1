package costing

import "strings"

// BaseCurrency is the trip home currency; all totals are expressed in it
// after conversion.
const BaseCurrency = "EGP"

// defaultRates is the fixed fallback table applied when an accommodation
// line switches currency. A rate the user typed in the same session is
// never overwritten by these defaults.
var defaultRates = map[string]float64{
	"EGP": 1.0,
	"USD": 50.0,
	"EUR": 54.0,
	"GBP": 62.0,
}

// SupportedCurrencies lists the selectable currency codes, base first.
func SupportedCurrencies() []string {
	return []string{"EGP", "USD", "EUR", "GBP"}
}

// DefaultExchangeRate returns the fallback multiplier to the base
// currency. Unknown codes fall back to 1.0 like the base itself.
func DefaultExchangeRate(code string) float64 {
	if rate, ok := defaultRates[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return rate
	}
	return 1.0
}

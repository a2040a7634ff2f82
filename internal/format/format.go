// Package format holds the display formatting helpers shared by the
// conversation and subscription views.
package format

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chatcart/internal/domain/model"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Price renders an upstream price record as a display string, e.g. "$79.00".
// An unknown currency code falls back to USD.
func Price(p model.Price) string {
	if p.AmountSubunits == 0 && p.CurrencyCode == "" {
		return ""
	}
	unit, err := currency.ParseISO(p.CurrencyCode)
	if err != nil {
		unit = currency.USD
	}
	amount := unit.Amount(float64(p.AmountSubunits) / 100)
	return printer.Sprint(currency.NarrowSymbol(amount))
}

// FrequencyLabel maps a cadence to its display label.
func FrequencyLabel(f model.Frequency) string {
	switch f {
	case model.FrequencyWeekly:
		return "Weekly"
	case model.FrequencyBiweekly:
		return "Bi-weekly"
	case model.FrequencyMonthly:
		return "Monthly"
	case model.FrequencyOneTime:
		return "One-time"
	}
	return string(f)
}

// Date renders a delivery date the way the cards display it, e.g. "Sep 28, 2026".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

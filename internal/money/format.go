// Package money renders amounts as display currency. One Formatter is built
// from the configured (currency code, locale) pair and shared by every
// metric that shows currency, so total revenue and average monetary can
// never drift apart in code or locale.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter parses an ISO 4217 currency code (e.g. "AUD") and a BCP 47
// locale (e.g. "es-CO").
func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency code %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

// Format renders the amount with the currency's ISO code, e.g. "AUD 350.00".
func (f *Formatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Float64()
	return f.printer.Sprint(currency.ISO(f.unit.Amount(v)))
}

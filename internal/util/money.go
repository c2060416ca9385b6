package util

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured or it fails to parse.
const DefaultLocale = "en-US"

// Money formats amounts with a currency symbol and locale digit grouping.
type Money struct {
	symbol  string
	printer *message.Printer
}

// NewMoney creates a formatter for symbol and a BCP 47 locale tag.
func NewMoney(symbol, locale string) (*Money, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Money{symbol: symbol, printer: message.NewPrinter(tag)}, nil
}

// DefaultMoney returns a "$" formatter for DefaultLocale.
func DefaultMoney() *Money {
	return &Money{symbol: "$", printer: message.NewPrinter(language.AmericanEnglish)}
}

// Format renders amount with two decimals, e.g. "$6,550.00".
// Negative amounts keep the sign ahead of the symbol.
func (m *Money) Format(amount float64) string {
	if amount < 0 {
		return "-" + m.symbol + m.printer.Sprintf("%.2f", math.Abs(amount))
	}
	return m.symbol + m.printer.Sprintf("%.2f", amount)
}

// Symbol returns the currency symbol.
func (m *Money) Symbol() string {
	return m.symbol
}

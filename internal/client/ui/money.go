package ui

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultCurrencySymbol = "₹"
	DefaultLocale         = "en"
)

// Money formats prices as symbol followed by the amount with two decimals and
// no grouping separators. Halves round away from zero.
type Money struct {
	symbol  string
	printer *message.Printer
}

// NewMoney builds a formatter for the given currency symbol and BCP 47 locale.
// An unparsable locale falls back to DefaultLocale.
func NewMoney(symbol, locale string) Money {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Make(DefaultLocale)
	}
	return Money{symbol: symbol, printer: message.NewPrinter(tag)}
}

// DefaultMoney is NewMoney(DefaultCurrencySymbol, DefaultLocale).
func DefaultMoney() Money {
	return NewMoney(DefaultCurrencySymbol, DefaultLocale)
}

func (m Money) Format(v float64) string {
	v = math.Round(v*100) / 100
	if m.printer == nil {
		return m.symbol + strconv.FormatFloat(v, 'f', 2, 64)
	}
	return m.symbol + m.printer.Sprint(number.Decimal(v, number.Scale(2), number.NoSeparator()))
}

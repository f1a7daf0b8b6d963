// Package format renders monetary amounts for display. It lives only at
// presentation boundaries: computed values never round-trip through formatted
// strings, which would introduce double rounding.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts with exactly two decimal digits and the grouping
// separators of its locale.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for the given locale.
func New(tag language.Tag) Formatter {
	return Formatter{printer: message.NewPrinter(tag)}
}

// Default returns the Italian-convention formatter: "." for thousands, ","
// for decimals.
func Default() Formatter {
	return New(language.Italian)
}

// ForLocale parses a BCP 47 locale string and returns the matching
// Formatter, falling back to the Italian default when the tag is invalid or
// empty.
func ForLocale(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	return New(tag)
}

// Amount renders v as a fixed two-decimal string, e.g. 1234.5 -> "1.234,50".
func (f Formatter) Amount(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}

// AmountWithSymbol appends an opaque currency symbol after the amount.
func (f Formatter) AmountWithSymbol(v float64, symbol string) string {
	if symbol == "" {
		return f.Amount(v)
	}
	return f.Amount(v) + " " + symbol
}

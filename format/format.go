// Package format renders prices and quantities for terminal display.
package format

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	ngn     = currency.MustParseISO("NGN")
)

// NGN renders an amount in Nigerian naira.
func NGN(v float64) string {
	return amount(ngn, v)
}

// USD renders an amount in US dollars.
func USD(v float64) string {
	return amount(currency.USD, v)
}

func amount(unit currency.Unit, v float64) string {
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(v)))
}

// Number renders a quantity with grouping separators and two decimals.
func Number(v float64) string {
	return printer.Sprintf("%.2f", v)
}

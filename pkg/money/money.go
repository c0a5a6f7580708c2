// Package money formatea montos para mostrar al operador y en comprobantes:
// separador de miles y dos decimales fijos ("12,345.60").
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format retorna el monto redondeado a dos decimales con separador de miles.
func Format(d decimal.Decimal) string {
	return printer.Sprintf("%v", number.Decimal(
		d.Round(2).InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Package pricing implementa la regla de precios de la tienda (servicio de dominio).
package pricing

import "github.com/shopspring/decimal"

// Markup es el multiplicador fijo costo → precio de venta (margen del 200%).
var Markup = decimal.NewFromInt(3)

// SellingPrice deriva el precio de venta desde el costo almacenado.
// PrecioVenta = Costo × 3. Se aplica en toda cifra de cara al cliente;
// los reabastecimientos siempre se valoran a costo.
func SellingPrice(cost decimal.Decimal) decimal.Decimal {
	return cost.Mul(Markup)
}

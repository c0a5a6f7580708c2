package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain/pricing"
)

// Tipos de documento.
const (
	InvoiceKindSale    = "SALE"
	InvoiceKindRestock = "RESTOCK"
)

// SaleLine es una línea cobrada de una venta. Quantity es la cantidad
// cobrada; la promoción nunca la reduce — el descuento solo resta del
// subtotal al facturar.
type SaleLine struct {
	ProductName string
	Brand       string
	Quantity    int
	UnitCost    decimal.Decimal
	FreeEarned  int             // derecho ganado: floor(Quantity/3)
	Discount    decimal.Decimal // descuento en efectivo aplicado a la línea
}

// UnitSellingPrice retorna el precio de venta unitario (markup sobre costo).
func (l SaleLine) UnitSellingPrice() decimal.Decimal {
	return pricing.SellingPrice(l.UnitCost)
}

// Subtotal retorna cantidad × precio de venta, sin restar el descuento.
func (l SaleLine) Subtotal() decimal.Decimal {
	return l.UnitSellingPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// FreeLine es un producto entregado gratis contra el derecho de otra línea.
// No aporta nada al total de la factura; se imprime valorado a costo.
type FreeLine struct {
	ProductName string
	Brand       string
	Quantity    int
	UnitCost    decimal.Decimal
}

// RestockLine es una línea de reabastecimiento; siempre se valora a costo.
type RestockLine struct {
	ProductName string
	Brand       string
	Quantity    int
	UnitCost    decimal.Decimal
}

// Subtotal retorna cantidad × costo unitario.
func (l RestockLine) Subtotal() decimal.Decimal {
	return l.UnitCost.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Invoice es la cabecera de un comprobante. Es un artefacto de solo
// escritura: una vez emitido nunca se vuelve a leer ni a conciliar
// contra el catálogo.
type Invoice struct {
	ID           string // uuid interno
	Kind         string // InvoiceKindSale | InvoiceKindRestock
	Number       string // SALE_/RESTOCK_ + timestamp a segundo
	Date         time.Time
	PartyName    string // cliente (venta) o proveedor (reabastecimiento)
	SaleLines    []SaleLine
	FreeLines    []FreeLine
	RestockLines []RestockLine
}

// NumberFor genera el número de comprobante: prefijo del tipo + timestamp a
// segundo. Dos comprobantes del mismo tipo en el mismo segundo colisionan;
// limitación documentada.
func NumberFor(kind string, t time.Time) string {
	return kind + "_" + t.Format("20060102150405")
}

// Total calcula el total del comprobante.
// Venta: Σ(cantidad × precio de venta − descuento); las líneas gratis suman 0.
// Reabastecimiento: Σ(cantidad × costo).
func (inv *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	if inv.Kind == InvoiceKindRestock {
		for _, l := range inv.RestockLines {
			total = total.Add(l.Subtotal())
		}
		return total
	}
	for _, l := range inv.SaleLines {
		total = total.Add(l.Subtotal().Sub(l.Discount))
	}
	return total
}

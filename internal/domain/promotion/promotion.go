// Package promotion implementa la promoción "compre 3 lleve 1 gratis"
// (servicio de dominio, sin I/O).
package promotion

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/pricing"
)

// ItemsPerFree cantidad comprada que gana una unidad gratis.
const ItemsPerFree = 3

var two = decimal.NewFromInt(2)

// Entitlement calcula el derecho a unidades gratis de una línea de venta:
// floor(cantidad / 3). Cantidades no positivas no ganan nada.
func Entitlement(quantity int) int {
	if quantity < ItemsPerFree {
		return 0
	}
	return quantity / ItemsPerFree
}

// CashDiscount convierte `unredeemed` unidades de derecho no redimidas en
// descuento en efectivo: unidades × precioVenta(costo) × 0.5. La misma
// fórmula aplica al derecho completo (opción descuento directo) y al
// remanente cuando el operador aborta la redención a mitad de camino.
func CashDiscount(unredeemed int, cost decimal.Decimal) decimal.Decimal {
	if unredeemed <= 0 {
		return decimal.Zero
	}
	return pricing.SellingPrice(cost).
		Mul(decimal.NewFromInt(int64(unredeemed))).
		Div(two)
}

// EligibleAsFree indica si candidate puede entregarse gratis contra el
// derecho ganado por base: debe ser otro producto, con precio de venta
// menor o igual al de base (equivale a comparar costos, el markup es
// uniforme) y con stock disponible.
func EligibleAsFree(candidate, base *entity.Product) bool {
	if candidate == nil || base == nil || candidate.ID == base.ID {
		return false
	}
	return candidate.Price.LessThanOrEqual(base.Price) && candidate.Quantity > 0
}

// EligibleFreeItems filtra el catálogo a los productos redimibles contra base,
// en el orden del catálogo.
func EligibleFreeItems(catalog entity.Catalog, base *entity.Product) []*entity.Product {
	var eligible []*entity.Product
	for _, p := range catalog {
		if EligibleAsFree(p, base) {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

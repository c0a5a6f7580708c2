// Package sales implementa el núcleo del flujo de venta: líneas cobradas,
// redención de la promoción y armado del comprobante. Todo opera sobre el
// snapshot de catálogo que posee el flujo; nada persiste aquí.
package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/promotion"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

// MaxLineQuantity tope de unidades por línea de venta.
const MaxLineQuantity = 1000

// UseCase casos de uso de venta. El repositorio solo se usa para cargar el
// snapshot al inicio y guardarlo al final del flujo.
type UseCase struct {
	repo repository.CatalogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CatalogRepository) *UseCase {
	return &UseCase{repo: repo}
}

// LoadCatalog carga el snapshot del catálogo para un flujo de venta.
func (uc *UseCase) LoadCatalog() (entity.Catalog, error) {
	return uc.repo.Load()
}

// SaveCatalog persiste el snapshot completo al cerrar el flujo.
func (uc *UseCase) SaveCatalog(catalog entity.Catalog) error {
	return uc.repo.Save(catalog)
}

// AddLine valida y registra la venta de qty unidades del producto productID:
// descuenta stock del snapshot y retorna la línea con su derecho ganado.
// Ante cualquier error el snapshot queda intacto.
func (uc *UseCase) AddLine(catalog entity.Catalog, productID, qty int) (entity.SaleLine, error) {
	product := catalog.FindByID(productID)
	if product == nil {
		return entity.SaleLine{}, domain.ErrNotFound
	}
	if qty <= 0 || qty > MaxLineQuantity {
		return entity.SaleLine{}, domain.ErrOutOfRange
	}
	if !product.HasStock(qty) {
		return entity.SaleLine{}, domain.ErrInsufficientStock
	}
	product.Quantity -= qty
	return entity.SaleLine{
		ProductName: product.Name,
		Brand:       product.Brand,
		Quantity:    qty,
		UnitCost:    product.Price,
		FreeEarned:  promotion.Entitlement(qty),
		Discount:    decimal.Zero,
	}, nil
}

// RedeemFreeItem entrega qty unidades gratis del producto freeID contra el
// derecho de la línea cuyo producto base es base. Valida elegibilidad
// (otro producto, precio ≤ base, stock) y que qty no exceda el derecho
// restante ni el stock. Descuenta stock del producto regalado; la cantidad
// cobrada de la línea original no cambia.
func (uc *UseCase) RedeemFreeItem(catalog entity.Catalog, base *entity.Product, freeID, qty, remaining int) (entity.FreeLine, error) {
	free := catalog.FindByID(freeID)
	if free == nil {
		return entity.FreeLine{}, domain.ErrNotFound
	}
	if !promotion.EligibleAsFree(free, base) {
		return entity.FreeLine{}, domain.ErrNotEligible
	}
	if qty <= 0 || qty > remaining {
		return entity.FreeLine{}, domain.ErrOutOfRange
	}
	if !free.HasStock(qty) {
		return entity.FreeLine{}, domain.ErrInsufficientStock
	}
	free.Quantity -= qty
	return entity.FreeLine{
		ProductName: free.Name,
		Brand:       free.Brand,
		Quantity:    qty,
		UnitCost:    free.Price,
	}, nil
}

// ApplyDiscount convierte unredeemed unidades de derecho en descuento sobre
// la línea (acumulando sobre descuentos previos de la misma línea) y retorna
// el monto aplicado.
func (uc *UseCase) ApplyDiscount(line *entity.SaleLine, unredeemed int) decimal.Decimal {
	amount := promotion.CashDiscount(unredeemed, line.UnitCost)
	line.Discount = line.Discount.Add(amount)
	return amount
}

// BuildInvoice arma el comprobante de venta con número SALE_<timestamp>.
func (uc *UseCase) BuildInvoice(customer string, lines []entity.SaleLine, freeLines []entity.FreeLine, now time.Time) *entity.Invoice {
	return &entity.Invoice{
		ID:        uuid.New().String(),
		Kind:      entity.InvoiceKindSale,
		Number:    entity.NumberFor(entity.InvoiceKindSale, now),
		Date:      now,
		PartyName: customer,
		SaleLines: lines,
		FreeLines: freeLines,
	}
}

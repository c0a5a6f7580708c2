// Package catalog implementa los casos de uso de catálogo: listado y los dos
// modos de reabastecimiento (existente y producto nuevo).
package catalog

import (
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

// Topes de reabastecimiento.
const MaxRestockQuantity = 10000

// MaxCostPrice tope del costo unitario al crear un producto.
var MaxCostPrice = decimal.NewFromInt(1_000_000)

// NewProductInput datos para dar de alta un producto.
type NewProductInput struct {
	Name     string
	Brand    string
	Quantity int
	Price    decimal.Decimal
	Origin   string
}

// UseCase casos de uso de catálogo.
type UseCase struct {
	repo repository.CatalogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CatalogRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Load carga el snapshot del catálogo.
func (uc *UseCase) Load() (entity.Catalog, error) {
	return uc.repo.Load()
}

// Save persiste el snapshot completo.
func (uc *UseCase) Save(catalog entity.Catalog) error {
	return uc.repo.Save(catalog)
}

// RestockExisting incrementa el stock del producto productID en qty unidades
// y retorna la línea de reabastecimiento valorada a costo.
func (uc *UseCase) RestockExisting(catalog entity.Catalog, productID, qty int) (entity.RestockLine, error) {
	product := catalog.FindByID(productID)
	if product == nil {
		return entity.RestockLine{}, domain.ErrNotFound
	}
	if qty <= 0 || qty > MaxRestockQuantity {
		return entity.RestockLine{}, domain.ErrOutOfRange
	}
	product.Quantity += qty
	return entity.RestockLine{
		ProductName: product.Name,
		Brand:       product.Brand,
		Quantity:    qty,
		UnitCost:    product.Price,
	}, nil
}

// AddProduct valida los datos, asigna el siguiente ID y agrega el producto al
// snapshot sin alterar los IDs existentes. Retorna el catálogo actualizado y
// la línea de reabastecimiento correspondiente.
func (uc *UseCase) AddProduct(catalog entity.Catalog, in NewProductInput) (entity.Catalog, entity.RestockLine, error) {
	if in.Name == "" || in.Brand == "" || in.Origin == "" {
		return catalog, entity.RestockLine{}, domain.ErrInvalidInput
	}
	if ContainsDigit(in.Origin) {
		return catalog, entity.RestockLine{}, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.Quantity > MaxRestockQuantity {
		return catalog, entity.RestockLine{}, domain.ErrOutOfRange
	}
	if !in.Price.GreaterThan(decimal.Zero) || in.Price.GreaterThan(MaxCostPrice) {
		return catalog, entity.RestockLine{}, domain.ErrOutOfRange
	}
	product := &entity.Product{
		ID:       catalog.NextID(),
		Name:     in.Name,
		Brand:    in.Brand,
		Quantity: in.Quantity,
		Price:    in.Price,
		Origin:   in.Origin,
	}
	catalog = append(catalog, product)
	line := entity.RestockLine{
		ProductName: product.Name,
		Brand:       product.Brand,
		Quantity:    product.Quantity,
		UnitCost:    product.Price,
	}
	return catalog, line, nil
}

// BuildRestockInvoice arma el comprobante de reabastecimiento con número
// RESTOCK_<timestamp>; todas las líneas van valoradas a costo.
func (uc *UseCase) BuildRestockInvoice(supplier string, lines []entity.RestockLine, now time.Time) *entity.Invoice {
	return &entity.Invoice{
		ID:           uuid.New().String(),
		Kind:         entity.InvoiceKindRestock,
		Number:       entity.NumberFor(entity.InvoiceKindRestock, now),
		Date:         now,
		PartyName:    supplier,
		RestockLines: lines,
	}
}

// ContainsDigit indica si s contiene algún dígito; nombres de persona y país
// de origen no los admiten.
func ContainsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

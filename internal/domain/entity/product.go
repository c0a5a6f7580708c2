package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la tienda.
// Price es el costo de compra; el precio de venta se deriva (markup 200%),
// nunca se almacena. Quantity es el stock disponible, nunca negativo.
type Product struct {
	ID       int
	Name     string
	Brand    string
	Quantity int
	Price    decimal.Decimal // costo unitario de compra
	Origin   string          // país de origen, texto libre sin dígitos
}

// HasStock indica si hay stock suficiente para cubrir qty unidades.
func (p *Product) HasStock(qty int) bool {
	return qty > 0 && p.Quantity >= qty
}

// Catalog es la colección ordenada de productos; fuente única de verdad,
// cargada completa en memoria al inicio de cada flujo y persistida al final.
type Catalog []*Product

// FindByID busca un producto por ID. Retorna nil si no existe.
func (c Catalog) FindByID(id int) *Product {
	for _, p := range c {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// NextID calcula el ID para un producto nuevo: max(IDs existentes) + 1,
// o 1 si el catálogo está vacío. Los IDs existentes nunca cambian.
func (c Catalog) NextID() int {
	max := 0
	for _, p := range c {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

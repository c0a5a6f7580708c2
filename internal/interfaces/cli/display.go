package cli

import (
	"fmt"
	"io"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/pricing"
	"github.com/jhoicas/inventario-cli/pkg/money"
)

const tableRule = "------------------------------------------------------------------------------------------"

// ProductTable imprime el catálogo en columnas alineadas mostrando el precio
// de venta (con markup), nunca el costo.
func ProductTable(w io.Writer, catalog entity.Catalog, currency string) {
	writeTableHeader(w, currency)
	for _, p := range catalog {
		writeTableRow(w, p)
	}
	fmt.Fprintln(w, tableRule)
}

// EligibleFreeTable imprime solo los productos redimibles como gratis contra
// el derecho de una línea.
func EligibleFreeTable(w io.Writer, eligible []*entity.Product, currency string) {
	fmt.Fprintln(w, "\n=== Eligible Products for Free Selection ===")
	writeTableHeader(w, currency)
	for _, p := range eligible {
		writeTableRow(w, p)
	}
	fmt.Fprintln(w, tableRule)
}

func writeTableHeader(w io.Writer, currency string) {
	fmt.Fprintf(w, "\n%-5s %-30s %-20s %-10s %-12s %-15s\n",
		"ID", "Name", "Brand", "Quantity", "Price ("+currency+")", "Origin")
	fmt.Fprintln(w, tableRule)
}

func writeTableRow(w io.Writer, p *entity.Product) {
	fmt.Fprintf(w, "%-5d %-30s %-20s %-10d %-12s %-15s\n",
		p.ID, p.Name, p.Brand, p.Quantity, money.Format(pricing.SellingPrice(p.Price)), p.Origin)
}

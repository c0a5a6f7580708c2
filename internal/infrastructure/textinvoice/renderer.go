// Package textinvoice genera la representación en texto plano de los
// comprobantes y los escribe como archivos de solo escritura.
//
// Layout (ancho fijo, 60 columnas de regla):
//
//	============================================================
//	                    WECARE BEAUTY
//	                    Sales Invoice
//	============================================================
//	Invoice No: SALE_20250101120000
//	Date: 2025-01-01 12:00:00
//	Customer Name: Sita
//	------------------------------------------------------------
//
//	ITEMS:
//	    Product: ...
//	    ...
//	============================================================
//	Total Amount: NPR 750.00
//	============================================================
package textinvoice

import (
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/pkg/money"
)

const (
	ruleHeavy = "============================================================"
	ruleLight = "------------------------------------------------------------"
	ruleItem  = "----------------------------------------"
	indent    = "    "
	center    = "                    "

	dateLayout = "2006-01-02 15:04:05"
)

// Renderer produce el texto de un comprobante. Es una función pura sobre la
// entidad: mismo comprobante, mismo texto; el I/O vive en Writer.
type Renderer struct {
	shopName string
	currency string
}

// NewRenderer construye el renderer con el nombre de la tienda (ej. "WeCare
// Beauty"; en el encabezado va en mayúsculas) y la etiqueta de moneda de los
// montos (ej. "NPR").
func NewRenderer(shopName, currency string) *Renderer {
	return &Renderer{shopName: shopName, currency: currency}
}

// Render genera el texto completo del comprobante.
func (r *Renderer) Render(inv *entity.Invoice) string {
	if inv.Kind == entity.InvoiceKindRestock {
		return r.renderRestock(inv)
	}
	return r.renderSale(inv)
}

func (r *Renderer) renderSale(inv *entity.Invoice) string {
	var b strings.Builder
	r.writeHeader(&b, inv, "Sales Invoice", "Customer Name")

	for _, line := range inv.SaleLines {
		fmt.Fprintf(&b, "\n%sProduct: %s", indent, line.ProductName)
		fmt.Fprintf(&b, "\n%sBrand: %s", indent, line.Brand)
		fmt.Fprintf(&b, "\n%sQuantity: %d (including %d free items)", indent, line.Quantity, line.FreeEarned)
		fmt.Fprintf(&b, "\n%sUnit Price (%s): %s", indent, r.currency, money.Format(line.UnitSellingPrice()))
		fmt.Fprintf(&b, "\n%sSubtotal: %s %s", indent, r.currency, money.Format(line.Subtotal()))
		fmt.Fprintf(&b, "\n%sDiscount: %s %s", indent, r.currency, money.Format(line.Discount))
		fmt.Fprintf(&b, "\n%s%s", indent, ruleItem)
	}
	for _, free := range inv.FreeLines {
		fmt.Fprintf(&b, "\n%sFree Product: %s", indent, free.ProductName)
		fmt.Fprintf(&b, "\n%sBrand: %s", indent, free.Brand)
		fmt.Fprintf(&b, "\n%sQuantity: %d", indent, free.Quantity)
		fmt.Fprintf(&b, "\n%sUnit Price (%s): %s", indent, r.currency, money.Format(free.UnitCost))
		fmt.Fprintf(&b, "\n%s%s", indent, ruleItem)
	}

	r.writeTotal(&b, inv)
	fmt.Fprintf(&b, "\nThank you for shopping with %s!", r.shopName)
	b.WriteString("\nBuy 3 Get 1 Free on all products!\n")
	return b.String()
}

func (r *Renderer) renderRestock(inv *entity.Invoice) string {
	var b strings.Builder
	r.writeHeader(&b, inv, "Purchase Invoice", "Supplier")

	for _, line := range inv.RestockLines {
		fmt.Fprintf(&b, "\n%sProduct: %s", indent, line.ProductName)
		fmt.Fprintf(&b, "\n%sBrand: %s", indent, line.Brand)
		fmt.Fprintf(&b, "\n%sQuantity: %d", indent, line.Quantity)
		fmt.Fprintf(&b, "\n%sUnit Cost (%s): %s", indent, r.currency, money.Format(line.UnitCost))
		fmt.Fprintf(&b, "\n%sSubtotal: %s %s", indent, r.currency, money.Format(line.Subtotal()))
		fmt.Fprintf(&b, "\n%s%s", indent, ruleItem)
	}

	r.writeTotal(&b, inv)
	return b.String()
}

func (r *Renderer) writeHeader(b *strings.Builder, inv *entity.Invoice, title, partyLabel string) {
	fmt.Fprintf(b, "\n%s\n", ruleHeavy)
	fmt.Fprintf(b, "%s%s\n", center, strings.ToUpper(r.shopName))
	fmt.Fprintf(b, "%s%s\n", center, title)
	fmt.Fprintf(b, "%s\n", ruleHeavy)
	fmt.Fprintf(b, "Invoice No: %s\n", inv.Number)
	fmt.Fprintf(b, "Date: %s\n", inv.Date.Format(dateLayout))
	fmt.Fprintf(b, "%s: %s\n", partyLabel, inv.PartyName)
	fmt.Fprintf(b, "%s\n", ruleLight)
	b.WriteString("\nITEMS:")
}

func (r *Renderer) writeTotal(b *strings.Builder, inv *entity.Invoice) {
	fmt.Fprintf(b, "\n\n%s\n", ruleHeavy)
	fmt.Fprintf(b, "Total Amount: %s %s\n", r.currency, money.Format(inv.Total()))
	fmt.Fprintf(b, "%s\n", ruleHeavy)
}

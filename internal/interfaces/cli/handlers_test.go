package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/inventario-cli/internal/application/catalog"
	"github.com/jhoicas/inventario-cli/internal/application/sales"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/flatfile"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/textinvoice"
	"github.com/jhoicas/inventario-cli/internal/interfaces/cli"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// fixture arma el cableado completo de un flujo sobre un directorio temporal:
// catálogo en archivo plano, comprobantes reales y entrada por guion.
type fixture struct {
	dir    string
	repo   *flatfile.CatalogRepo
	out    *bytes.Buffer
	prompt *cli.Prompter
	writer *textinvoice.Writer
	log    *logger.Logger
}

func newFixture(t *testing.T, script, seed string) *fixture {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "products.txt")
	if seed != "" {
		require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))
	}
	out := &bytes.Buffer{}
	renderer := textinvoice.NewRenderer("WeCare Beauty", "NPR")
	return &fixture{
		dir:    dir,
		repo:   flatfile.NewCatalogRepository(path),
		out:    out,
		prompt: cli.NewPrompter(strings.NewReader(script), out),
		writer: textinvoice.NewWriter(renderer,
			filepath.Join(dir, "Sales Invoice"), filepath.Join(dir, "Restock Invoice")),
		log: logger.New(logger.Config{Env: "production", Level: "error"}),
	}
}

func (f *fixture) catalogFile(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.dir, "products.txt"))
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) singleInvoice(t *testing.T, subdir string) string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(f.dir, subdir))
	require.NoError(t, err)
	require.Len(t, entries, 1, "debe existir exactamente un comprobante")
	data, err := os.ReadFile(filepath.Join(f.dir, subdir, entries[0].Name()))
	require.NoError(t, err)
	return string(data)
}

const seedCatalog = "1,Soap,Dove,10,100,India\n2,Cream,Nivea,4,50,Germany"

func TestSellHandler_VentaConCaminoDeDescuento(t *testing.T) {
	script := strings.Join([]string{
		"Sita", // cliente
		"1",    // producto
		"3",    // cantidad → derecho 1
		"2",    // opción descuento
		"no",   // no comprar más
	}, "\n") + "\n"
	f := newFixture(t, script, seedCatalog)

	h := cli.NewSellHandler(sales.NewUseCase(f.repo), f.writer, f.prompt, f.out, f.log, "NPR")
	require.NoError(t, h.Run())

	assert.Contains(t, f.catalogFile(t), "1,Soap,Dove,7,100,India", "el stock persiste en 7")

	invoice := f.singleInvoice(t, "Sales Invoice")
	assert.Contains(t, invoice, "Customer Name: Sita")
	assert.Contains(t, invoice, "Quantity: 3 (including 1 free items)")
	assert.Contains(t, invoice, "Discount: NPR 150.00")
	assert.Contains(t, invoice, "Total Amount: NPR 750.00")
	assert.Contains(t, f.out.String(), "✓ Sales invoice created successfully:")
}

func TestSellHandler_RedencionParcialYDescuentoDelRestante(t *testing.T) {
	script := strings.Join([]string{
		"Gita", // cliente
		"1",    // producto
		"9",    // cantidad → derecho 3
		"1",    // opción productos gratis
		"2",    // regalo: Cream
		"2",    // dos unidades
		"0",    // aborta: restante 1 → descuento 150
		"no",   // no comprar más
	}, "\n") + "\n"
	f := newFixture(t, script, seedCatalog)

	h := cli.NewSellHandler(sales.NewUseCase(f.repo), f.writer, f.prompt, f.out, f.log, "NPR")
	require.NoError(t, h.Run())

	catalog := f.catalogFile(t)
	assert.Contains(t, catalog, "1,Soap,Dove,1,100,India")
	assert.Contains(t, catalog, "2,Cream,Nivea,2,50,Germany", "el regalo descuenta stock de Cream")

	invoice := f.singleInvoice(t, "Sales Invoice")
	assert.Contains(t, invoice, "Quantity: 9 (including 3 free items)")
	assert.Contains(t, invoice, "Free Product: Cream")
	assert.Contains(t, invoice, "Discount: NPR 150.00")
	// 9 × 300 − 150 = 2550
	assert.Contains(t, invoice, "Total Amount: NPR 2,550.00")
	assert.Contains(t, f.out.String(), "Applying discount of NPR 150.00")
}

func TestSellHandler_EntradaInvalidaReintentaSinMutar(t *testing.T) {
	script := strings.Join([]string{
		"Sita",
		"99",  // id inexistente → reintento
		"1",   // producto válido
		"0",   // cantidad no positiva → reintento en el mismo prompt
		"11",  // excede stock → reintento
		"2",   // cantidad válida, sin derecho
		"no",
	}, "\n") + "\n"
	f := newFixture(t, script, seedCatalog)

	h := cli.NewSellHandler(sales.NewUseCase(f.repo), f.writer, f.prompt, f.out, f.log, "NPR")
	require.NoError(t, h.Run())

	assert.Contains(t, f.out.String(), "Product with ID 99 not found!")
	assert.Contains(t, f.out.String(), "Quantity must be positive!")
	assert.Contains(t, f.out.String(), "Insufficient stock! Available: 10")
	assert.Contains(t, f.catalogFile(t), "1,Soap,Dove,8,100,India")
}

func TestSellHandler_CatalogoVacioAborta(t *testing.T) {
	f := newFixture(t, "Sita\n", "")

	h := cli.NewSellHandler(sales.NewUseCase(f.repo), f.writer, f.prompt, f.out, f.log, "NPR")
	require.NoError(t, h.Run())

	assert.Contains(t, f.out.String(), "No products available for sale!")
	assert.NoDirExists(t, filepath.Join(f.dir, "Sales Invoice"), "sin líneas no hay comprobante")
}

func TestRestockHandler_ExistenteIncrementaStock(t *testing.T) {
	script := strings.Join([]string{
		"Ram", // proveedor
		"yes", // reabastecer existente
		"1",   // producto
		"25",  // cantidad
		"no",  // no más
	}, "\n") + "\n"
	f := newFixture(t, script, seedCatalog)

	h := cli.NewRestockHandler(appcatalog.NewUseCase(f.repo), f.writer, f.prompt, f.out, f.log, "NPR")
	require.NoError(t, h.Run())

	assert.Contains(t, f.out.String(), "Current stock for Soap: 10")
	assert.Contains(t, f.catalogFile(t), "1,Soap,Dove,35,100,India")

	invoice := f.singleInvoice(t, "Restock Invoice")
	assert.Contains(t, invoice, "Supplier: Ram")
	assert.Contains(t, invoice, "Unit Cost (NPR): 100.00")
	// 25 × 100 a costo, nunca a precio de venta
	assert.Contains(t, invoice, "Total Amount: NPR 2,500.00")
}

func TestRestockHandler_AltaSobreCatalogoVacio(t *testing.T) {
	script := strings.Join([]string{
		"Ram",     // proveedor
		"no",      // no existente
		"yes",     // alta de nuevos
		"Shampoo", // nombre
		"X",       // marca
		"50",      // cantidad
		"200",     // costo
		"Nepal",   // origen
		"no",      // no más
	}, "\n") + "\n"
	f := newFixture(t, script, "")

	h := cli.NewRestockHandler(appcatalog.NewUseCase(f.repo), f.writer, f.prompt, f.out, f.log, "NPR")
	require.NoError(t, h.Run())

	assert.Equal(t, "1,Shampoo,X,50,200,Nepal", f.catalogFile(t), "primer ID es 1")

	invoice := f.singleInvoice(t, "Restock Invoice")
	assert.Contains(t, invoice, "Total Amount: NPR 10,000.00")
}

func TestRestockHandler_IDDesconocidoOfreceReintento(t *testing.T) {
	script := strings.Join([]string{
		"Ram",
		"yes",
		"99",  // id inexistente
		"no",  // no intentar otro → sale sin líneas
	}, "\n") + "\n"
	f := newFixture(t, script, seedCatalog)

	h := cli.NewRestockHandler(appcatalog.NewUseCase(f.repo), f.writer, f.prompt, f.out, f.log, "NPR")
	require.NoError(t, h.Run())

	assert.Contains(t, f.out.String(), "Product with ID 99 not found!")
	assert.NoDirExists(t, filepath.Join(f.dir, "Restock Invoice"), "sin líneas no hay comprobante")
	assert.Contains(t, f.catalogFile(t), "1,Soap,Dove,10,100,India", "nada muta")
}

func TestMenu_SalidaConDespedida(t *testing.T) {
	f := newFixture(t, "1\n\n4\n", seedCatalog)

	catalogUC := appcatalog.NewUseCase(f.repo)
	sell := cli.NewSellHandler(sales.NewUseCase(f.repo), f.writer, f.prompt, f.out, f.log, "NPR")
	restock := cli.NewRestockHandler(catalogUC, f.writer, f.prompt, f.out, f.log, "NPR")
	menu := cli.NewMenu(catalogUC, sell, restock, f.prompt, f.out, f.log, "WeCare Beauty", "NPR")

	require.NoError(t, menu.Run())

	assert.Contains(t, f.out.String(), "1. Display Products")
	assert.Contains(t, f.out.String(), "Soap", "la opción 1 lista el catálogo")
	assert.Contains(t, f.out.String(), "300.00", "la tabla muestra precio de venta")
	assert.Contains(t, f.out.String(), "Thank you for using WeCare Beauty Product Management System!")
}

func TestMenu_EOFTerminaLimpio(t *testing.T) {
	f := newFixture(t, "", seedCatalog)
	catalogUC := appcatalog.NewUseCase(f.repo)
	menu := cli.NewMenu(catalogUC, nil, nil, f.prompt, f.out, f.log, "WeCare Beauty", "NPR")
	assert.NoError(t, menu.Run())
}

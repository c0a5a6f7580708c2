package textinvoice

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// Writer escribe cada comprobante como archivo de texto en el directorio de
// su tipo, creándolo si no existe. Nombre: <Number>.txt; dos comprobantes del
// mismo tipo en el mismo segundo colisionan (limitación documentada).
type Writer struct {
	renderer   *Renderer
	salesDir   string
	restockDir string
}

// NewWriter construye el writer.
func NewWriter(renderer *Renderer, salesDir, restockDir string) *Writer {
	return &Writer{renderer: renderer, salesDir: salesDir, restockDir: restockDir}
}

// Write renderiza y escribe el comprobante; retorna la ruta del archivo.
func (w *Writer) Write(inv *entity.Invoice) (string, error) {
	dir := w.salesDir
	if inv.Kind == entity.InvoiceKindRestock {
		dir = w.restockDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}
	path := filepath.Join(dir, inv.Number+".txt")
	if err := os.WriteFile(path, []byte(w.renderer.Render(inv)), 0o644); err != nil {
		return "", fmt.Errorf("write invoice: %w", err)
	}
	return path, nil
}

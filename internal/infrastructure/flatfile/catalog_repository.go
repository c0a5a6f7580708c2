// Package flatfile implementa el puerto CatalogRepository sobre el archivo
// plano de productos: un registro por línea, 6 campos separados por coma
// `id,name,brand,quantity,price,origin`, sin escape de comas embebidas.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

const fieldsPerRecord = 6

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo adaptador de persistencia del catálogo sobre archivo plano.
// Sin locking: acceso de un solo proceso, último escritor gana.
type CatalogRepo struct {
	path string
}

// NewCatalogRepository construye el adaptador para el archivo en path.
func NewCatalogRepository(path string) *CatalogRepo {
	return &CatalogRepo{path: path}
}

// Load lee todos los registros bien formados; las líneas malformadas se
// omiten en silencio. Un archivo ausente produce un catálogo vacío sin error.
func (r *CatalogRepo) Load() (entity.Catalog, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.Catalog{}, nil
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	catalog := entity.Catalog{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if p, ok := parseRecord(sc.Text()); ok {
			catalog = append(catalog, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return catalog, nil
}

// Save sobrescribe el archivo completo con un registro por producto, en el
// orden del catálogo.
func (r *CatalogRepo) Save(catalog entity.Catalog) error {
	var b strings.Builder
	for i, p := range catalog {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatRecord(p))
	}
	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// parseRecord interpreta una línea del archivo. Retorna ok=false ante
// cualquier defecto: cantidad de campos distinta de 6, id o cantidad no
// numéricos o negativos, precio inválido o no positivo.
func parseRecord(line string) (*entity.Product, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldsPerRecord {
		return nil, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil || id <= 0 {
		return nil, false
	}
	qty, err := strconv.Atoi(fields[3])
	if err != nil || qty < 0 {
		return nil, false
	}
	price, err := decimal.NewFromString(fields[4])
	if err != nil || !price.GreaterThan(decimal.Zero) {
		return nil, false
	}
	return &entity.Product{
		ID:       id,
		Name:     fields[1],
		Brand:    fields[2],
		Quantity: qty,
		Price:    price,
		Origin:   fields[5],
	}, true
}

func formatRecord(p *entity.Product) string {
	return fmt.Sprintf("%d,%s,%s,%d,%s,%s",
		p.ID, p.Name, p.Brand, p.Quantity, p.Price.String(), p.Origin)
}

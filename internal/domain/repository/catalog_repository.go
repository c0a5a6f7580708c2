package repository

import "github.com/jhoicas/inventario-cli/internal/domain/entity"

// CatalogRepository define el puerto de persistencia del catálogo (DIP).
// El catálogo se carga completo al inicio de cada flujo y se guarda completo
// al final; no hay persistencia parcial ni rollback.
type CatalogRepository interface {
	// Load lee todos los registros bien formados. Un archivo ausente produce
	// un catálogo vacío, no un error.
	Load() (entity.Catalog, error)
	// Save sobrescribe el archivo completo con un registro por producto.
	Save(catalog entity.Catalog) error
}

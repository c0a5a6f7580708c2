package flatfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/flatfile"
)

func TestLoad_ArchivoAusenteEsCatalogoVacio(t *testing.T) {
	repo := flatfile.NewCatalogRepository(filepath.Join(t.TempDir(), "products.txt"))

	catalog, err := repo.Load()
	require.NoError(t, err, "archivo ausente no es un error")
	assert.Empty(t, catalog)
}

func TestLoad_OmiteLineasMalformadasEnSilencio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	content := "1,Soap,Dove,10,100.0,India\n" +
		"esto no es un registro\n" +
		"2,Cream,Nivea,5\n" + // campos de menos
		"x,Gel,Garnier,5,80,France\n" + // id no numérico
		"3,Gel,Garnier,-5,80,France\n" + // cantidad negativa
		"4,Mask,LOreal,5,0,France\n" + // precio no positivo
		"5,Lotion,Vaseline,12,55.5,India"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := flatfile.NewCatalogRepository(path).Load()
	require.NoError(t, err)

	require.Len(t, catalog, 2, "solo los registros bien formados sobreviven")
	assert.Equal(t, 1, catalog[0].ID)
	assert.Equal(t, 5, catalog[1].ID)
}

func TestLoad_RecortaEspaciosPorCampo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	require.NoError(t, os.WriteFile(path, []byte(" 1 , Soap ,Dove , 10 , 100.0 , India "), 0o644))

	catalog, err := flatfile.NewCatalogRepository(path).Load()
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	p := catalog[0]
	assert.Equal(t, "Soap", p.Name)
	assert.Equal(t, "Dove", p.Brand)
	assert.Equal(t, "India", p.Origin)
	assert.Equal(t, 10, p.Quantity)
}

func TestSaveLoad_IdaYVuelta(t *testing.T) {
	repo := flatfile.NewCatalogRepository(filepath.Join(t.TempDir(), "products.txt"))
	original := entity.Catalog{
		{ID: 1, Name: "Soap", Brand: "Dove", Quantity: 10, Price: decimal.RequireFromString("100"), Origin: "India"},
		{ID: 2, Name: "Shampoo", Brand: "X", Quantity: 50, Price: decimal.RequireFromString("200.5"), Origin: "Nepal"},
	}

	require.NoError(t, repo.Save(original))
	loaded, err := repo.Load()
	require.NoError(t, err)

	require.Len(t, loaded, 2)
	for i := range original {
		assert.Equal(t, original[i].ID, loaded[i].ID)
		assert.Equal(t, original[i].Name, loaded[i].Name)
		assert.Equal(t, original[i].Brand, loaded[i].Brand)
		assert.Equal(t, original[i].Quantity, loaded[i].Quantity)
		assert.True(t, original[i].Price.Equal(loaded[i].Price))
		assert.Equal(t, original[i].Origin, loaded[i].Origin)
	}
}

func TestSave_SobrescribeElArchivoCompleto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	repo := flatfile.NewCatalogRepository(path)

	require.NoError(t, repo.Save(entity.Catalog{
		{ID: 1, Name: "Soap", Brand: "Dove", Quantity: 10, Price: decimal.NewFromInt(100), Origin: "India"},
		{ID: 2, Name: "Cream", Brand: "Nivea", Quantity: 5, Price: decimal.NewFromInt(50), Origin: "Germany"},
	}))
	require.NoError(t, repo.Save(entity.Catalog{
		{ID: 1, Name: "Soap", Brand: "Dove", Quantity: 7, Price: decimal.NewFromInt(100), Origin: "India"},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,Soap,Dove,7,100,India", string(data), "último escritor gana, sin restos del estado previo")
}

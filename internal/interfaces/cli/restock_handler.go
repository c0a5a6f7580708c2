package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	appcatalog "github.com/jhoicas/inventario-cli/internal/application/catalog"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/textinvoice"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// RestockHandler conduce el flujo interactivo de reabastecimiento en sus dos
// modos: sumar stock a productos existentes o dar de alta productos nuevos.
type RestockHandler struct {
	uc       *appcatalog.UseCase
	invoices *textinvoice.Writer
	prompt   *Prompter
	out      io.Writer
	log      *logger.Logger
	currency string
}

// NewRestockHandler construye el handler.
func NewRestockHandler(uc *appcatalog.UseCase, invoices *textinvoice.Writer, prompt *Prompter, out io.Writer, log *logger.Logger, currency string) *RestockHandler {
	return &RestockHandler{uc: uc, invoices: invoices, prompt: prompt, out: out, log: log, currency: currency}
}

// Run ejecuta el flujo completo. Solo retorna error si la entrada se agota.
func (h *RestockHandler) Run() error {
	supplier, err := h.prompt.Line("Enter supplier name: ",
		NotEmpty("Supplier name cannot be empty!"),
		NoDigits("Supplier name should not contain numbers!"),
	)
	if err != nil {
		return err
	}

	catalog, loadErr := h.uc.Load()
	if loadErr != nil {
		h.log.Error().Err(loadErr).Msg("cargar catálogo")
		fmt.Fprintf(h.out, "An error occurred: %v\n", loadErr)
		return nil
	}

	existing, err := h.prompt.YesNo("\nDo you want to restock an existing item? (yes/no): ")
	if err != nil {
		return err
	}

	var lines []entity.RestockLine
	if existing {
		lines, err = h.restockExisting(catalog)
	} else {
		catalog, lines, err = h.addNewProducts(catalog)
	}
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}
	if saveErr := h.uc.Save(catalog); saveErr != nil {
		h.log.Error().Err(saveErr).Msg("guardar catálogo")
		fmt.Fprintf(h.out, "Error saving transaction: %v\n", saveErr)
		return nil
	}
	inv := h.uc.BuildRestockInvoice(supplier, lines, time.Now())
	path, writeErr := h.invoices.Write(inv)
	if writeErr != nil {
		h.log.Error().Err(writeErr).Str("invoice", inv.Number).Msg("escribir comprobante")
		fmt.Fprintf(h.out, "Error saving transaction: %v\n", writeErr)
		return nil
	}
	h.log.Info().Str("invoice", inv.Number).Str("supplier", supplier).
		Str("total", inv.Total().StringFixed(2)).Msg("reabastecimiento registrado")
	fmt.Fprintf(h.out, "\n✓ Restock invoice created successfully: %s\n", path)
	return nil
}

func (h *RestockHandler) restockExisting(catalog entity.Catalog) ([]entity.RestockLine, error) {
	var lines []entity.RestockLine
	for {
		ProductTable(h.out, catalog, h.currency)

		id, err := h.prompt.Int("\nEnter product ID: ", "Product ID", nil)
		if err != nil {
			return nil, err
		}
		product := catalog.FindByID(id)
		if product == nil {
			fmt.Fprintf(h.out, "Product with ID %d not found!\n", id)
			retry, err := h.prompt.YesNo("Would you like to try another ID? (yes/no): ")
			if err != nil {
				return nil, err
			}
			if !retry {
				break
			}
			continue
		}
		fmt.Fprintf(h.out, "Current stock for %s: %d\n", product.Name, product.Quantity)

		qty, err := h.prompt.Int("Enter quantity to restock: ", "Quantity", func(n int) error {
			switch {
			case n <= 0:
				return errors.New("Quantity must be positive!")
			case n > appcatalog.MaxRestockQuantity:
				return errors.New("Quantity exceeds maximum limit of 10,000!")
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		line, restockErr := h.uc.RestockExisting(catalog, id, qty)
		if restockErr != nil {
			fmt.Fprintf(h.out, "An error occurred: %v\n", restockErr)
			continue
		}
		lines = append(lines, line)

		more, err := h.prompt.YesNo("\nWould you like to restock more existing items? (yes/no): ")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	return lines, nil
}

func (h *RestockHandler) addNewProducts(catalog entity.Catalog) (entity.Catalog, []entity.RestockLine, error) {
	addNew, err := h.prompt.YesNo("\nDo you want to add new products? (yes/no): ")
	if err != nil {
		return catalog, nil, err
	}
	if !addNew {
		return catalog, nil, nil
	}

	var lines []entity.RestockLine
	for {
		name, err := h.prompt.Line("\nEnter product name: ", NotEmpty("Product name cannot be empty!"))
		if err != nil {
			return catalog, nil, err
		}
		brand, err := h.prompt.Line("Enter brand: ", NotEmpty("Brand cannot be empty!"))
		if err != nil {
			return catalog, nil, err
		}
		qty, err := h.prompt.Int("Enter quantity: ", "Quantity", func(n int) error {
			switch {
			case n <= 0:
				return errors.New("Quantity must be positive!")
			case n > appcatalog.MaxRestockQuantity:
				return errors.New("Quantity exceeds maximum limit of 10,000!")
			}
			return nil
		})
		if err != nil {
			return catalog, nil, err
		}
		price, err := h.prompt.Decimal("Enter cost price: ", "Price", func(d decimal.Decimal) error {
			switch {
			case !d.GreaterThan(decimal.Zero):
				return errors.New("Price must be positive!")
			case d.GreaterThan(appcatalog.MaxCostPrice):
				return errors.New("Price exceeds maximum limit of 1,000,000!")
			}
			return nil
		})
		if err != nil {
			return catalog, nil, err
		}
		origin, err := h.prompt.Line("Enter origin country: ",
			NotEmpty("Origin cannot be empty!"),
			NoDigits("Origin should not contain numbers!"),
		)
		if err != nil {
			return catalog, nil, err
		}

		updated, line, addErr := h.uc.AddProduct(catalog, appcatalog.NewProductInput{
			Name:     name,
			Brand:    brand,
			Quantity: qty,
			Price:    price,
			Origin:   origin,
		})
		if addErr != nil {
			fmt.Fprintf(h.out, "An error occurred: %v\n", addErr)
			continue
		}
		catalog = updated
		lines = append(lines, line)

		more, err := h.prompt.YesNo("\nWould you like to add more new products? (yes/no): ")
		if err != nil {
			return catalog, nil, err
		}
		if !more {
			break
		}
	}
	return catalog, lines, nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/inventario-cli/internal/application/sales"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/promotion"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/textinvoice"
	"github.com/jhoicas/inventario-cli/pkg/logger"
	"github.com/jhoicas/inventario-cli/pkg/money"
)

// SellHandler conduce el flujo interactivo de venta: cliente → líneas →
// promoción → persistencia → comprobante. Opera sobre un snapshot local del
// catálogo; nada persiste hasta que el flujo completo termina.
type SellHandler struct {
	uc       *sales.UseCase
	invoices *textinvoice.Writer
	prompt   *Prompter
	out      io.Writer
	log      *logger.Logger
	currency string
}

// NewSellHandler construye el handler.
func NewSellHandler(uc *sales.UseCase, invoices *textinvoice.Writer, prompt *Prompter, out io.Writer, log *logger.Logger, currency string) *SellHandler {
	return &SellHandler{uc: uc, invoices: invoices, prompt: prompt, out: out, log: log, currency: currency}
}

// Run ejecuta el flujo completo. Solo retorna error si la entrada se agota.
func (h *SellHandler) Run() error {
	customer, err := h.prompt.Line("Enter customer name: ",
		NotEmpty("Customer name cannot be empty!"),
		NoDigits("Customer name should not contain numbers!"),
	)
	if err != nil {
		return err
	}

	catalog, loadErr := h.uc.LoadCatalog()
	if loadErr != nil {
		h.log.Error().Err(loadErr).Msg("cargar catálogo")
		fmt.Fprintf(h.out, "An error occurred: %v\n", loadErr)
		return nil
	}
	if len(catalog) == 0 {
		fmt.Fprintln(h.out, "No products available for sale!")
		return nil
	}

	var lines []entity.SaleLine
	var freeLines []entity.FreeLine
	for {
		ProductTable(h.out, catalog, h.currency)

		id, err := h.prompt.Int("\nEnter product ID: ", "Product ID", nil)
		if err != nil {
			return err
		}
		product := catalog.FindByID(id)
		if product == nil {
			fmt.Fprintf(h.out, "Product with ID %d not found!\n", id)
			continue
		}

		qty, err := h.prompt.Int("Enter quantity: ", "Quantity", func(n int) error {
			switch {
			case n <= 0:
				return errors.New("Quantity must be positive!")
			case n > sales.MaxLineQuantity:
				return fmt.Errorf("Quantity exceeds maximum limit of %d!", sales.MaxLineQuantity)
			case n > product.Quantity:
				return fmt.Errorf("Insufficient stock! Available: %d", product.Quantity)
			}
			return nil
		})
		if err != nil {
			return err
		}

		line, addErr := h.uc.AddLine(catalog, id, qty)
		if addErr != nil {
			// El validador del prompt ya cubrió los casos conocidos; esto
			// solo puede ser una condición inesperada: reportar y reintentar.
			fmt.Fprintf(h.out, "An error occurred: %v\n", addErr)
			continue
		}
		lines = append(lines, line)

		if line.FreeEarned > 0 {
			extra, err := h.runPromotion(catalog, product, &lines[len(lines)-1])
			if err != nil {
				return err
			}
			freeLines = append(freeLines, extra...)
		}

		more, err := h.prompt.YesNo("\nWould you like to purchase more items? (yes/no): ")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if len(lines) == 0 {
		return nil
	}
	if saveErr := h.uc.SaveCatalog(catalog); saveErr != nil {
		h.log.Error().Err(saveErr).Msg("guardar catálogo")
		fmt.Fprintf(h.out, "Error saving transaction: %v\n", saveErr)
		return nil
	}
	inv := h.uc.BuildInvoice(customer, lines, freeLines, time.Now())
	path, writeErr := h.invoices.Write(inv)
	if writeErr != nil {
		h.log.Error().Err(writeErr).Str("invoice", inv.Number).Msg("escribir comprobante")
		fmt.Fprintf(h.out, "Error saving transaction: %v\n", writeErr)
		return nil
	}
	h.log.Info().Str("invoice", inv.Number).Str("customer", customer).
		Str("total", inv.Total().StringFixed(2)).Msg("venta registrada")
	fmt.Fprintf(h.out, "\n✓ Sales invoice created successfully: %s\n", path)
	return nil
}

// runPromotion resuelve el derecho a gratis de una línea: el operador elige
// productos sustitutos o descuento; puede abortar la redención a mitad de
// camino y el remanente se convierte en descuento. La cantidad cobrada de la
// línea nunca cambia.
func (h *SellHandler) runPromotion(catalog entity.Catalog, base *entity.Product, line *entity.SaleLine) ([]entity.FreeLine, error) {
	label := fmt.Sprintf("\nYou've earned %d free items! Choose an option:\n"+
		"1. Select different products as free items\n"+
		"2. Get discount instead\n"+
		"Enter choice (1/2): ", line.FreeEarned)
	choice, err := h.prompt.Choice(label, "1", "2")
	if err != nil {
		return nil, err
	}
	if choice == "2" {
		h.uc.ApplyDiscount(line, line.FreeEarned)
		return nil, nil
	}

	eligible := promotion.EligibleFreeItems(catalog, base)
	if len(eligible) == 0 {
		fmt.Fprintln(h.out, "No eligible products in stock; converting to discount.")
		amount := h.uc.ApplyDiscount(line, line.FreeEarned)
		fmt.Fprintf(h.out, "Applying discount of %s %s\n", h.currency, money.Format(amount))
		return nil, nil
	}
	EligibleFreeTable(h.out, eligible, h.currency)

	var freeLines []entity.FreeLine
	remaining := line.FreeEarned
	for remaining > 0 {
		id, err := h.prompt.Int(
			fmt.Sprintf("\nEnter product ID for free item (%d remaining) or '0' for discount: ", remaining),
			"Product ID", nil)
		if err != nil {
			return nil, err
		}
		if id == 0 {
			amount := h.uc.ApplyDiscount(line, remaining)
			fmt.Fprintf(h.out, "Applying discount of %s %s\n", h.currency, money.Format(amount))
			break
		}
		free := catalog.FindByID(id)
		if free == nil {
			fmt.Fprintf(h.out, "Product with ID %d not found!\n", id)
			continue
		}
		if free.ID == base.ID {
			fmt.Fprintln(h.out, "Free item must be a different product!")
			continue
		}
		if free.Price.GreaterThan(base.Price) {
			fmt.Fprintln(h.out, "Selected product exceeds price limit for free items!")
			continue
		}

		qty, err := h.prompt.Int(
			fmt.Sprintf("Enter quantity for free item (max %d): ", remaining),
			"Quantity", func(n int) error {
				switch {
				case n <= 0 || n > remaining:
					return fmt.Errorf("Invalid quantity! You can select up to %d free items.", remaining)
				case n > free.Quantity:
					return fmt.Errorf("Insufficient stock for free item! Available: %d", free.Quantity)
				}
				return nil
			})
		if err != nil {
			return nil, err
		}

		freeLine, redeemErr := h.uc.RedeemFreeItem(catalog, base, id, qty, remaining)
		if redeemErr != nil {
			if errors.Is(redeemErr, domain.ErrNotEligible) {
				fmt.Fprintln(h.out, "Selected product exceeds price limit for free items!")
			} else {
				fmt.Fprintf(h.out, "An error occurred: %v\n", redeemErr)
			}
			continue
		}
		freeLines = append(freeLines, freeLine)
		remaining -= qty
	}
	return freeLines, nil
}

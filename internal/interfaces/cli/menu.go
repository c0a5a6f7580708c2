package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	appcatalog "github.com/jhoicas/inventario-cli/internal/application/catalog"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// Menu es la superficie principal: un menú numerado leído de la entrada
// estándar que despacha a los flujos. Nada salvo la opción 4 (o el fin de la
// entrada) termina el proceso.
type Menu struct {
	catalogUC *appcatalog.UseCase
	sell      *SellHandler
	restock   *RestockHandler
	prompt    *Prompter
	out       io.Writer
	log       *logger.Logger
	shopName  string
	currency  string
}

// NewMenu construye el menú.
func NewMenu(catalogUC *appcatalog.UseCase, sell *SellHandler, restock *RestockHandler, prompt *Prompter, out io.Writer, log *logger.Logger, shopName, currency string) *Menu {
	return &Menu{
		catalogUC: catalogUC,
		sell:      sell,
		restock:   restock,
		prompt:    prompt,
		out:       out,
		log:       log,
		shopName:  shopName,
		currency:  currency,
	}
}

// Run ejecuta el ciclo principal hasta que el operador elige salir.
func (m *Menu) Run() error {
	title := m.shopName + " Product Management System"
	rule := strings.Repeat("=", 60)
	for {
		fmt.Fprintf(m.out, "\n%s\n%s\n%s\n", rule, title, rule)
		fmt.Fprintln(m.out, "1. Display Products")
		fmt.Fprintln(m.out, "2. Sell Products")
		fmt.Fprintln(m.out, "3. Restock Products")
		fmt.Fprintln(m.out, "4. Exit")
		fmt.Fprintln(m.out, strings.Repeat("-", 60))

		choice, err := m.prompt.Choice("Enter your choice: ", "1", "2", "3", "4")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			m.displayProducts()
		case "2":
			if err := m.sell.Run(); err != nil {
				return m.eof(err)
			}
		case "3":
			if err := m.restock.Run(); err != nil {
				return m.eof(err)
			}
		case "4":
			fmt.Fprintf(m.out, "Thank you for using %s!\n", title)
			return nil
		}

		m.prompt.Pause("\nPress Enter to continue...")
	}
}

func (m *Menu) displayProducts() {
	catalog, err := m.catalogUC.Load()
	if err != nil {
		m.log.Error().Err(err).Msg("cargar catálogo")
		fmt.Fprintf(m.out, "An error occurred: %v\n", err)
		return
	}
	ProductTable(m.out, catalog, m.currency)
}

// eof normaliza el fin de entrada a salida limpia; cualquier otro error de
// lectura sube al main.
func (m *Menu) eof(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

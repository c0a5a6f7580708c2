package main

import (
	"os"

	appcatalog "github.com/jhoicas/inventario-cli/internal/application/catalog"
	"github.com/jhoicas/inventario-cli/internal/application/sales"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/flatfile"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/textinvoice"
	"github.com/jhoicas/inventario-cli/internal/interfaces/cli"
	"github.com/jhoicas/inventario-cli/pkg/config"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog", cfg.Shop.CatalogPath).
		Msg("iniciando aplicación")

	catalogRepo := flatfile.NewCatalogRepository(cfg.Shop.CatalogPath)
	catalogUC := appcatalog.NewUseCase(catalogRepo)
	salesUC := sales.NewUseCase(catalogRepo)

	renderer := textinvoice.NewRenderer(cfg.Shop.Name, cfg.Shop.Currency)
	invoices := textinvoice.NewWriter(renderer, cfg.Shop.SalesDir, cfg.Shop.RestockDir)

	prompt := cli.NewPrompter(os.Stdin, os.Stdout)
	sellHandler := cli.NewSellHandler(salesUC, invoices, prompt, os.Stdout, log, cfg.Shop.Currency)
	restockHandler := cli.NewRestockHandler(catalogUC, invoices, prompt, os.Stdout, log, cfg.Shop.Currency)
	menu := cli.NewMenu(catalogUC, sellHandler, restockHandler, prompt, os.Stdout, log, cfg.Shop.Name, cfg.Shop.Currency)

	if err := menu.Run(); err != nil {
		log.Fatal().Err(err).Msg("leer entrada estándar")
	}
	log.Info().Msg("aplicación finalizada")
}

package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo). Los valores por defecto reproducen el
// comportamiento de la tienda sin configuración alguna.
type Config struct {
	App  AppConfig
	Shop ShopConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// ShopConfig configuración de la tienda: identidad, moneda y rutas de datos.
type ShopConfig struct {
	Name        string // nombre en encabezados y pie de comprobantes
	Currency    string // etiqueta de moneda de los montos (ej. "NPR")
	CatalogPath string // archivo plano del catálogo
	SalesDir    string // directorio de comprobantes de venta
	RestockDir  string // directorio de comprobantes de reabastecimiento
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env o config.env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-cli"),
			LogLevel: getString(v, "LOG_LEVEL", "warn"),
		},
		Shop: ShopConfig{
			Name:        getString(v, "SHOP_NAME", "WeCare Beauty"),
			Currency:    getString(v, "SHOP_CURRENCY", "NPR"),
			CatalogPath: getString(v, "CATALOG_PATH", "products.txt"),
			SalesDir:    getString(v, "SALES_INVOICE_DIR", "Sales Invoice"),
			RestockDir:  getString(v, "RESTOCK_INVOICE_DIR", "Restock Invoice"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

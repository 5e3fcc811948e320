package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Sale   SaleConfig
	Input  InputConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig configuración del logger. Los logs van a stderr para no mezclarse con el menú.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
	File  string // opcional: ruta de archivo; vacío = stderr
}

// SaleConfig parámetros de la sesión de venta.
type SaleConfig struct {
	Number   int    // número de la venta de esta sesión
	Currency string // código ISO 4217 (ej: "BRL")
	Locale   string // etiqueta BCP 47 para formatear montos (ej: "pt-BR")
}

// InputConfig parámetros de lectura y validación de la consola.
type InputConfig struct {
	DateLayout  string // layout de time.Parse para fechas de nacimiento
	MaxAttempts int    // reintentos ante entrada inválida antes de abortar el flujo
}

// ReportConfig destino del reporte PDF.
type ReportConfig struct {
	Dir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, SALE_NUMBER, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "venta-consola"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", ""),
		},
		Sale: SaleConfig{
			Number:   getInt(v, "SALE_NUMBER", 1),
			Currency: strings.ToUpper(getString(v, "CURRENCY", "BRL")),
			Locale:   getString(v, "LOCALE", "pt-BR"),
		},
		Input: InputConfig{
			DateLayout:  getString(v, "DATE_LAYOUT", "2006-01-02"),
			MaxAttempts: getInt(v, "MAX_INPUT_ATTEMPTS", 3),
		},
		Report: ReportConfig{
			Dir: getString(v, "REPORT_DIR", "."),
		},
	}
	if cfg.Input.MaxAttempts <= 0 {
		cfg.Input.MaxAttempts = 1
	}
	return cfg
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

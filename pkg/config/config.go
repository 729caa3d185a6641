package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	API   APIConfig
	Token TokenConfig
	Mock  MockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig backend REST contra el que opera el cliente.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int // timeout del http.Client; 0 = sin timeout
}

// TokenConfig persistencia local del bearer token.
// Path vacío usa <user config dir>/medsupply-pro/token.
type TokenConfig struct {
	Path string
}

// MockConfig backend de desarrollo (cmd/mockapi).
type MockConfig struct {
	Host       string
	Port       int
	JWTSecret  string
	JWTExpDays int
	Seed       bool // crear datos de ejemplo al arrancar
}

// Addr devuelve la dirección de escucha (host:port).
func (c MockConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, MOCK_JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "medsupply-pro"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:5000"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Token: TokenConfig{
			Path: getString(v, "TOKEN_PATH", ""),
		},
		Mock: MockConfig{
			Host:       getString(v, "MOCK_HOST", "0.0.0.0"),
			Port:       getInt(v, "MOCK_PORT", 5000),
			JWTSecret:  getString(v, "MOCK_JWT_SECRET", "super-secret-change-me"),
			JWTExpDays: getInt(v, "MOCK_JWT_EXP_DAYS", 7),
			Seed:       getBool(v, "MOCK_SEED", true),
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

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backends de almacenamiento de sesión soportados.
const (
	SessionStoreMemory   = "memory"
	SessionStoreFile     = "file"
	SessionStorePostgres = "postgres"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Session SessionConfig
	DB      DBConfig
	CLI     CLIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig backend REST de almacenes.
type BackendConfig struct {
	URL     string
	Timeout time.Duration
	RPS     float64 // 0 = sin límite
	Burst   int
}

// SessionConfig almacenamiento de sesión y cookie de cliente.
type SessionConfig struct {
	Store             string // memory | file | postgres
	File              string
	Cookie            string
	CookieSecure      bool
	AuthRatePerMinute int
}

// DBConfig configuración de PostgreSQL (solo con SESSION_STORE=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// CLIConfig opciones del cliente de terminal.
type CLIConfig struct {
	Profile string // ámbito de la sesión en el archivo local
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			URL:     strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:8080"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
			RPS:     getFloat(v, "BACKEND_RPS", 20),
			Burst:   getInt(v, "BACKEND_BURST", 10),
		},
		Session: SessionConfig{
			Store:             strings.ToLower(getString(v, "SESSION_STORE", SessionStoreMemory)),
			File:              getString(v, "SESSION_FILE", defaultSessionFile()),
			Cookie:            getString(v, "SESSION_COOKIE", "almacen_client"),
			CookieSecure:      getBool(v, "COOKIE_SECURE", false),
			AuthRatePerMinute: getInt(v, "AUTH_RATE_PER_MINUTE", 10),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario_console"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		CLI: CLIConfig{
			Profile: getString(v, "CLI_PROFILE", "default"),
		},
	}

	switch cfg.Session.Store {
	case SessionStoreMemory, SessionStoreFile, SessionStorePostgres:
	default:
		return nil, fmt.Errorf("config: SESSION_STORE inválido %q (memory, file o postgres)", cfg.Session.Store)
	}
	if _, err := url.ParseRequestURI(cfg.Backend.URL); err != nil {
		return nil, fmt.Errorf("config: BACKEND_URL inválido: %w", err)
	}
	return cfg, nil
}

// defaultSessionFile ruta del archivo de sesión en el directorio de configuración del usuario.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".almacen-session.json"
	}
	return filepath.Join(dir, "almacenctl", "session.json")
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

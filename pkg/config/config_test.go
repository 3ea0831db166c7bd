package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_STORE", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Backend.URL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, "almacen_client", cfg.Session.Cookie)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "default", cfg.CLI.Profile)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://almacen.example.com/")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "3")
	t.Setenv("BACKEND_RPS", "2.5")
	t.Setenv("SESSION_STORE", "FILE")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://almacen.example.com", cfg.Backend.URL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.InDelta(t, 2.5, cfg.Backend.RPS, 0.001)
	assert.Equal(t, SessionStoreFile, cfg.Session.Store)
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_SessionStoreInvalido(t *testing.T) {
	t.Setenv("SESSION_STORE", "redis")
	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "console", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/console?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

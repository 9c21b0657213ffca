package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4jURI)
	assert.Equal(t, SourceFile, cfg.CampusSource)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CAMPUS_SOURCE", "neo4j")
	t.Setenv("CORS_ORIGINS", "https://intranet.colegio.pe, http://localhost:4200 ,")
	t.Setenv("ROUTE_MAX_OPEN_SET", "500")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := LoadConfig()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, SourceNeo4j, cfg.CampusSource)
	assert.Equal(t, []string{"https://intranet.colegio.pe", "http://localhost:4200"}, cfg.AllowedOrigins)
	assert.Equal(t, 500, cfg.MaxOpenSet)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigBadIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	assert.Equal(t, 8080, LoadConfig().Port)
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(*Config){
		"source":     func(c *Config) { c.CampusSource = "postgres" },
		"port":       func(c *Config) { c.Port = 70000 },
		"log level":  func(c *Config) { c.LogLevel = "verbose" },
		"open set":   func(c *Config) { c.MaxOpenSet = -1 },
		"neo4j uri":  func(c *Config) { c.CampusSource = SourceNeo4j; c.Neo4jURI = "" },
		"log format": func(c *Config) { c.LogFormat = "xml" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := LoadConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CAMPUS_FILE=/srv/campus.yaml\nLOG_FORMAT=json\n"), 0o644))
	t.Setenv("CAMPUS_FILE", "")
	os.Unsetenv("CAMPUS_FILE")
	t.Setenv("LOG_FORMAT", "")
	os.Unsetenv("LOG_FORMAT")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/campus.yaml", cfg.CampusFile)
	assert.Equal(t, "json", cfg.LogFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

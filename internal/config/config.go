package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// getEnv obtiene una variable de entorno o un valor por defecto
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt obtiene una variable de entorno como entero
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList separa una variable de entorno por comas
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

const (
	SourceFile  = "file"
	SourceNeo4j = "neo4j"
)

type Config struct {
	Port           int    `validate:"min=1,max=65535"`
	Neo4jURI       string `validate:"required_if=CampusSource neo4j"`
	Neo4jUser      string
	Neo4jPassword  string
	Neo4jDatabase  string
	CampusSource   string `validate:"oneof=file neo4j"`
	CampusFile     string
	LogLevel       string   `validate:"oneof=debug info warn error"`
	LogFormat      string   `validate:"oneof=text json"`
	AllowedOrigins []string `validate:"dive,required"`
	MaxOpenSet     int      `validate:"gte=0"`
}

func LoadConfig() *Config {
	return &Config{
		Port:           getEnvAsInt("PORT", 8080),
		Neo4jURI:       getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:      getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:  getEnv("NEO4J_PASSWORD", "12345678"),
		Neo4jDatabase:  getEnv("NEO4J_DATABASE", ""),
		CampusSource:   getEnv("CAMPUS_SOURCE", SourceFile),
		CampusFile:     getEnv("CAMPUS_FILE", ""),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
		AllowedOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
		MaxOpenSet:     getEnvAsInt("ROUTE_MAX_OPEN_SET", 0),
	}
}

// Load lee un archivo .env opcional (envFile vacío busca ".env"), arma la
// configuración desde el entorno y la valida.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
		if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
			envFile = ""
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("could not load env file %s: %w", envFile, err)
		}
	}

	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate verifica rangos y valores permitidos.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

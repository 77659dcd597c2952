package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ProviderCerebras = "cerebras"
	ProviderGemini   = "gemini"

	defaultCerebrasBaseURL = "https://api.cerebras.net/v1"
	defaultCerebrasModel   = "llama3.1-70b"
	defaultGeminiBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultMaxTokens       = 4000
)

type Database struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, "disable")
}

// LLM selects exactly one text generation provider at construction time.
// Call sites never consult the environment for the provider choice.
type LLM struct {
	Provider  string
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
}

type Config struct {
	Port     string
	Database Database
	LLM      LLM
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := &Config{
		Port: getenv("SERVICE_PORT", "8080"),
		Database: Database{
			User:     os.Getenv("DATABASE_USER"),
			Password: os.Getenv("DATABASE_PASSWORD"),
			Host:     os.Getenv("DATABASE_HOST"),
			Port:     os.Getenv("DATABASE_PORT"),
			Name:     os.Getenv("DATABASE_NAME"),
		},
	}

	provider := getenv("LLM_PROVIDER", ProviderCerebras)
	switch provider {
	case ProviderCerebras:
		cfg.LLM = LLM{
			Provider:  provider,
			BaseURL:   getenv("CEREBRAS_BASE_URL", defaultCerebrasBaseURL),
			APIKey:    os.Getenv("CEREBRAS_API_KEY"),
			Model:     getenv("CEREBRAS_MODEL_ID", defaultCerebrasModel),
			MaxTokens: getenvInt("CEREBRAS_MAX_TOKENS", defaultMaxTokens),
		}
	case ProviderGemini:
		cfg.LLM = LLM{
			Provider:  provider,
			BaseURL:   getenv("GEMINI_BASE_URL", defaultGeminiBaseURL),
			APIKey:    os.Getenv("GEMINI_API_KEY"),
			Model:     getenv("GEMINI_MODEL_ID", defaultGeminiModel),
			MaxTokens: getenvInt("GEMINI_MAX_TOKENS", defaultMaxTokens),
		}
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}

	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("%s API key is not set", provider)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s value %q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

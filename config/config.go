package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Prateek-Kumar98217/langraph-test/log"
)

// Supported values of the enumerated settings.
var (
	Providers          = []string{"openai", "anthropic", "ollama", "googleai"}
	EmbeddingProviders = []string{"hash", "llm"}
	VectorBackends     = []string{"memory", "redis", "sqlite", "postgres"}
	LogBackends        = []string{"std", "golog", "zerolog"}
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the environment of the example programs.
type Config struct {
	Provider    string  `envconfig:"LLM_PROVIDER" default:"googleai"`
	Model       string  `envconfig:"LLM_MODEL" default:"gemini-2.0-flash"`
	Temperature float64 `envconfig:"LLM_TEMPERATURE" default:"0.2"`
	APIKey      string  `envconfig:"LLM_API_KEY"`
	BaseURL     string  `envconfig:"LLM_BASE_URL"`

	EmbeddingProvider  string `envconfig:"EMBEDDING_PROVIDER" default:"hash"`
	EmbeddingModel     string `envconfig:"EMBEDDING_MODEL"`
	EmbeddingDimension int    `envconfig:"EMBEDDING_DIMENSION" default:"384"`

	VectorBackend string `envconfig:"VECTOR_BACKEND" default:"memory"`
	RedisURL      string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	RedisKey      string `envconfig:"REDIS_KEY" default:"langraph:memories"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"memories.db"`
	PostgresDSN   string `envconfig:"POSTGRES_DSN"`
	VectorTable   string `envconfig:"VECTOR_TABLE" default:"memories"`

	MemoryTopK int    `envconfig:"MEMORY_TOP_K" default:"3"`
	MemorySeed string `envconfig:"MEMORY_SEED" default:"your name is Yomun, a memory manager"`

	CallTimeout time.Duration `envconfig:"CALL_TIMEOUT" default:"30s"`
	MaxSteps    int           `envconfig:"MAX_STEPS" default:"25"`

	TavilyAPIKey     string `envconfig:"TAVILY_API_KEY"`
	TavilyMaxResults int    `envconfig:"TAVILY_MAX_RESULTS" default:"2"`

	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogBackend string `envconfig:"LOG_BACKEND" default:"std"`
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. Missing files are skipped.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to read %s: %w", p, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.EmbeddingProvider = strings.ToLower(strings.TrimSpace(cfg.EmbeddingProvider))
	cfg.VectorBackend = strings.ToLower(strings.TrimSpace(cfg.VectorBackend))
	cfg.LogBackend = strings.ToLower(strings.TrimSpace(cfg.LogBackend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values and numeric bounds.
func (c *Config) Validate() error {
	var errs []error
	oneOf := func(name, value string, allowed []string) {
		if !slices.Contains(allowed, value) {
			errs = append(errs, fmt.Errorf("%w: %s=%q, want one of %v", ErrInvalidConfig, name, value, allowed))
		}
	}
	oneOf("LLM_PROVIDER", c.Provider, Providers)
	oneOf("EMBEDDING_PROVIDER", c.EmbeddingProvider, EmbeddingProviders)
	oneOf("VECTOR_BACKEND", c.VectorBackend, VectorBackends)
	oneOf("LOG_BACKEND", c.LogBackend, LogBackends)

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidConfig, err))
	}
	if c.MemoryTopK < 1 {
		errs = append(errs, fmt.Errorf("%w: MEMORY_TOP_K must be positive", ErrInvalidConfig))
	}
	if c.EmbeddingDimension < 1 {
		errs = append(errs, fmt.Errorf("%w: EMBEDDING_DIMENSION must be positive", ErrInvalidConfig))
	}
	if c.MaxSteps < 1 {
		errs = append(errs, fmt.Errorf("%w: MAX_STEPS must be positive", ErrInvalidConfig))
	}
	if c.VectorBackend == "postgres" && c.PostgresDSN == "" {
		errs = append(errs, fmt.Errorf("%w: POSTGRES_DSN is required for the postgres backend", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

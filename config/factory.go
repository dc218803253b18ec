package config

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/Prateek-Kumar98217/langraph-test/log"
	"github.com/Prateek-Kumar98217/langraph-test/memory"
	"github.com/Prateek-Kumar98217/langraph-test/prebuilt"
	"github.com/Prateek-Kumar98217/langraph-test/store"
	"github.com/Prateek-Kumar98217/langraph-test/store/inmemory"
	"github.com/Prateek-Kumar98217/langraph-test/store/postgres"
	"github.com/Prateek-Kumar98217/langraph-test/store/redis"
	"github.com/Prateek-Kumar98217/langraph-test/store/sqlite"
	"github.com/Prateek-Kumar98217/langraph-test/tool"
)

// GeminiBaseURL is the OpenAI compatible endpoint used for the googleai provider.
const GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Factory builds collaborators from a Config.
type Factory struct {
	cfg *Config
	out io.Writer
}

// NewFactory returns a factory for cfg. Logs go to stderr.
func NewFactory(cfg *Config) *Factory {
	return &Factory{cfg: cfg, out: os.Stderr}
}

// Config returns the configuration the factory was built with.
func (f *Factory) Config() *Config {
	return f.cfg
}

// Logger builds the configured logger and installs it as the package default.
func (f *Factory) Logger() (log.Logger, error) {
	level, err := log.ParseLevel(f.cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, err := log.New(f.cfg.LogBackend, level, f.out)
	if err != nil {
		return nil, err
	}
	log.SetDefaultLogger(logger)
	return logger, nil
}

func (f *Factory) apiKey() string {
	if f.cfg.APIKey != "" {
		return f.cfg.APIKey
	}
	if f.cfg.Provider == "googleai" {
		return os.Getenv("GOOGLE_API_KEY")
	}
	return ""
}

func (f *Factory) openAI(model string) (*openai.LLM, error) {
	var opts []openai.Option
	if key := f.apiKey(); key != "" {
		opts = append(opts, openai.WithToken(key))
	}
	baseURL := f.cfg.BaseURL
	if baseURL == "" && f.cfg.Provider == "googleai" {
		baseURL = GeminiBaseURL
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if model != "" {
		opts = append(opts, openai.WithModel(model))
	}
	if f.cfg.EmbeddingModel != "" {
		opts = append(opts, openai.WithEmbeddingModel(f.cfg.EmbeddingModel))
	}
	return openai.New(opts...)
}

func (f *Factory) ollama(model string) (*ollama.LLM, error) {
	opts := []ollama.Option{ollama.WithModel(model)}
	if f.cfg.BaseURL != "" {
		opts = append(opts, ollama.WithServerURL(f.cfg.BaseURL))
	}
	return ollama.New(opts...)
}

// Model builds the chat model of the configured provider.
func (f *Factory) Model() (llms.Model, error) {
	switch f.cfg.Provider {
	case "openai", "googleai":
		return f.openAI(f.cfg.Model)
	case "anthropic":
		opts := []anthropic.Option{anthropic.WithModel(f.cfg.Model)}
		if key := f.apiKey(); key != "" {
			opts = append(opts, anthropic.WithToken(key))
		}
		if f.cfg.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(f.cfg.BaseURL))
		}
		return anthropic.New(opts...)
	case "ollama":
		return f.ollama(f.cfg.Model)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, f.cfg.Provider)
	}
}

// Embedder builds the configured embedder. The "llm" provider embeds through
// the chat provider's embedding endpoint; anthropic has none.
func (f *Factory) Embedder() (embeddings.Embedder, error) {
	if f.cfg.EmbeddingProvider == "hash" {
		return memory.NewHashEmbedder(f.cfg.EmbeddingDimension), nil
	}

	var (
		client embeddings.EmbedderClient
		err    error
	)
	switch f.cfg.Provider {
	case "openai", "googleai":
		client, err = f.openAI(f.cfg.Model)
	case "ollama":
		model := f.cfg.EmbeddingModel
		if model == "" {
			model = f.cfg.Model
		}
		client, err = f.ollama(model)
	default:
		return nil, fmt.Errorf("%w: provider %q cannot embed, use EMBEDDING_PROVIDER=hash", ErrInvalidConfig, f.cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return embeddings.NewEmbedder(client)
}

// Index opens the configured vector index. The returned function releases it.
func (f *Factory) Index(ctx context.Context) (store.VectorIndex, func() error, error) {
	switch f.cfg.VectorBackend {
	case "memory":
		return inmemory.New(), func() error { return nil }, nil
	case "redis":
		idx, err := redis.New(redis.Options{URL: f.cfg.RedisURL, Key: f.cfg.RedisKey})
		if err != nil {
			return nil, nil, err
		}
		return idx, idx.Close, nil
	case "sqlite":
		idx, err := sqlite.New(sqlite.Options{Path: f.cfg.SQLitePath, TableName: f.cfg.VectorTable})
		if err != nil {
			return nil, nil, err
		}
		return idx, idx.Close, nil
	case "postgres":
		idx, err := postgres.New(ctx, postgres.Options{ConnString: f.cfg.PostgresDSN, TableName: f.cfg.VectorTable})
		if err != nil {
			return nil, nil, err
		}
		return idx, func() error { idx.Close(); return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown vector backend %q", ErrInvalidConfig, f.cfg.VectorBackend)
	}
}

// Tools builds the registry of the tool agent: the two math tools, the
// calculator and the fallback tool.
func (f *Factory) Tools() (*tool.Registry, error) {
	return tool.NewRegistry(
		tool.NewAddTwoNumbers(),
		tool.NewMultiplyTwoNumbers(),
		tool.NewCalculator(),
		tool.NewFallbackMessage(),
	)
}

// SearchTools builds the registry of the web-search agent.
func (f *Factory) SearchTools() (*tool.Registry, error) {
	search, err := tool.NewTavilySearch(f.cfg.TavilyAPIKey, tool.WithTavilyMaxResults(f.cfg.TavilyMaxResults))
	if err != nil {
		return nil, err
	}
	return tool.NewRegistry(search, tool.NewFallbackMessage())
}

// AgentOptions returns the prebuilt options matching the configuration.
func (f *Factory) AgentOptions(logger log.Logger) []prebuilt.Option {
	return []prebuilt.Option{
		prebuilt.WithCallTimeout(f.cfg.CallTimeout),
		prebuilt.WithToolTimeout(f.cfg.CallTimeout),
		prebuilt.WithMaxSteps(f.cfg.MaxSteps),
		prebuilt.WithCallOptions(llms.WithTemperature(f.cfg.Temperature)),
		prebuilt.WithLogger(logger),
	}
}

// MemoryOptions returns the memory options matching the configuration. The
// seed fact is excluded from recall.
func (f *Factory) MemoryOptions(logger log.Logger) []memory.Option {
	opts := []memory.Option{
		memory.WithTopK(f.cfg.MemoryTopK),
		memory.WithTimeout(f.cfg.CallTimeout),
		memory.WithLogger(logger),
	}
	if f.cfg.MemorySeed != "" {
		opts = append(opts, memory.WithExclude(f.cfg.MemorySeed))
	}
	return opts
}

// SeedMemory inserts the configured seed fact into index.
func (f *Factory) SeedMemory(ctx context.Context, embedder embeddings.Embedder, index store.VectorIndex) error {
	if f.cfg.MemorySeed == "" {
		return nil
	}
	return memory.Seed(ctx, embedder, index, f.cfg.MemorySeed)
}

package di

import (
	"context"
	"fmt"
	"time"

	"github.com/deepmindru-afk/superuzyr/internal/adapter/httpapi"
	"github.com/deepmindru-afk/superuzyr/internal/adapter/step"
	"github.com/deepmindru-afk/superuzyr/internal/application/port/input"
	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/application/service"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/automation/browseruse"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/automation/local"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/automation/mock"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/browser/rod"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/llm"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/llm/anthropic"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/llm/openai"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/logger"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/storage/memory"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/storage/sqlite"
	"github.com/deepmindru-afk/superuzyr/internal/usecase/catalog"
	"github.com/deepmindru-afk/superuzyr/internal/usecase/orchestrator"
	"github.com/deepmindru-afk/superuzyr/internal/usecase/planner"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Container struct {
	Logger    output.LoggerPort
	Storage   output.TaskStorage
	Tasks     input.TaskCatalog
	Runner    input.TaskRunner
	Providers output.ProviderRegistry
	Executors output.ExecutorRegistry
	Server    *httpapi.Server
}

type Config struct {
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GroqAPIKey      string

	RealAutomation  bool
	BrowserHeadless bool
	BrowserBin      string

	BrowserUseAPIKey       string
	BrowserUseBaseURL      string
	BrowserUseSessionURL   string
	BrowserUsePollInterval time.Duration
	MockDelay              time.Duration

	TaskStore  string
	TaskDBPath string
	SkipSeeds  bool

	HTTP httpapi.Config

	LogLevel string
	LogFile  string
	// Logger overrides the zap logger built from LogLevel/LogFile.
	Logger output.LoggerPort
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log := cfg.Logger
	if log == nil {
		zapLog, err := logger.NewLoggerAdapter(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		log = zapLog
	}

	storage, err := openStorage(cfg)
	if err != nil {
		log.Close()
		return nil, err
	}

	repo := catalog.NewRepository(storage, log)
	if !cfg.SkipSeeds {
		added, err := repo.Seed(ctx, catalog.Seeds())
		if err != nil {
			storage.Close()
			log.Close()
			return nil, fmt.Errorf("failed to seed tasks: %w", err)
		}
		log.Info("Task catalog ready", "store", storeName(cfg), "seeded", added)
	}

	providers, err := registerProviders(cfg, log)
	if err != nil {
		storage.Close()
		log.Close()
		return nil, err
	}

	executors := registerExecutors(cfg, log)
	plans := planner.New(providers, log, cfg.RealAutomation)
	runner := orchestrator.New(repo, plans, executors, log, cfg.RealAutomation)

	log.Info("Automation configured",
		"real_automation", cfg.RealAutomation,
		"cloud", cfg.BrowserUseAPIKey != "",
		"planners", providers.Choices(),
	)

	return &Container{
		Logger:    log,
		Storage:   storage,
		Tasks:     repo,
		Runner:    runner,
		Providers: providers,
		Executors: executors,
		Server:    httpapi.NewServer(repo, runner, log, cfg.HTTP),
	}, nil
}

func (c *Container) Close() {
	if c.Storage != nil {
		if err := c.Storage.Close(); err != nil {
			c.Logger.Warn("Failed to close task storage", "error", err)
		}
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func storeName(cfg Config) string {
	if cfg.TaskStore == "" {
		return StoreMemory
	}
	return cfg.TaskStore
}

func openStorage(cfg Config) (output.TaskStorage, error) {
	switch storeName(cfg) {
	case StoreMemory:
		return memory.New(), nil
	case StoreSQLite:
		path := cfg.TaskDBPath
		if path == "" {
			path = "data/tasks.db"
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open task database: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown task store %q", cfg.TaskStore)
	}
}

// registerProviders only registers models whose API key is set, so the
// planner falls back to the heuristic plan for the rest.
func registerProviders(cfg Config, log output.LoggerPort) (*service.ProviderRegistryImpl, error) {
	providers := service.NewProviderRegistry()

	if cfg.OpenAIAPIKey != "" {
		openaiCfg := openai.OpenAIConfig(cfg.OpenAIAPIKey)
		openaiCfg.Logger = log
		providers.Register(entity.LLMGPT4oMini, openai.NewAdapter(openaiCfg))
	}
	if cfg.GroqAPIKey != "" {
		groqCfg := openai.GroqConfig(cfg.GroqAPIKey)
		groqCfg.Logger = log
		providers.Register(entity.LLMLlama31, openai.NewAdapter(groqCfg))
	}
	if cfg.AnthropicAPIKey != "" {
		anthropicCfg := anthropic.DefaultConfig(cfg.AnthropicAPIKey)
		anthropicCfg.Logger = log
		adapter, err := anthropic.NewAdapter(anthropicCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic provider: %w", err)
		}
		providers.Register(entity.LLMClaudeHaiku, adapter)
	}
	return providers, nil
}

// registerExecutors always registers mock and local; the cloud adapters need
// an API key.
func registerExecutors(cfg Config, log output.LoggerPort) *service.ExecutorRegistryImpl {
	executors := service.NewExecutorRegistry()

	mockDelay := cfg.MockDelay
	if mockDelay == 0 {
		mockDelay = mock.DefaultDelay
	}
	executors.Register(mock.NewAdapter(mockDelay, log))

	steps := service.NewStepRegistry()
	step.RegisterAll(steps, log.Named("step"))

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = cfg.BrowserHeadless
	browserCfg.Bin = cfg.BrowserBin
	executors.Register(local.NewAdapter(rod.Factory(browserCfg), steps, log))

	if cfg.BrowserUseAPIKey != "" {
		client := browseruse.NewClient(browseruse.ClientConfig{
			BaseURL:    cfg.BrowserUseBaseURL,
			APIKey:     cfg.BrowserUseAPIKey,
			HTTPClient: llm.NewHTTPClient(log.Named("browseruse.http"), 30*time.Second),
			Logger:     log,
		})
		cloudCfg := browseruse.Config{
			Client:       client,
			PollInterval: cfg.BrowserUsePollInterval,
			LiveViewBase: cfg.BrowserUseSessionURL,
			Logger:       log,
		}
		executors.Register(browseruse.NewSessionAdapter(cloudCfg))
		executors.Register(browseruse.NewStreamingAdapter(cloudCfg))
	}
	return executors
}

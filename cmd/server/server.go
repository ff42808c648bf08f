package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"capper-server/internal/config"
	"capper-server/internal/domain/catalog"
	"capper-server/internal/domain/chat"
	"capper-server/internal/domain/conversation"
	"capper-server/internal/domain/knowledge"
	"capper-server/internal/domain/llm"
	"capper-server/internal/domain/user"
	"capper-server/internal/infrastructure/database"
	"capper-server/internal/infrastructure/llmprovider"
	"capper-server/internal/infrastructure/logger"
	"capper-server/internal/infrastructure/metrics"
	"capper-server/internal/infrastructure/observability"
	catalogrepo "capper-server/internal/infrastructure/repository/catalog"
	conversationrepo "capper-server/internal/infrastructure/repository/conversation"
	knowledgerepo "capper-server/internal/infrastructure/repository/knowledge"
	userrepo "capper-server/internal/infrastructure/repository/user"
	"capper-server/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	userRepository := userrepo.NewPostgresRepository(db)
	productRepository := catalogrepo.NewPostgresRepository(db)
	faqRepository := knowledgerepo.NewFAQRepository(db)
	ruleRepository := knowledgerepo.NewRuleRepository(db)
	messageRepository := conversationrepo.NewPostgresRepository(db)

	capability := newLLMCapability(ctx, cfg, log)

	generator := chat.NewGenerator(capability, chat.DefaultCounter(), chat.GeneratorConfig{
		Persona:      cfg.PersonaTemplate,
		MaxTokens:    cfg.MaxTokenLimit,
		TargetTokens: cfg.TruncationTarget,
	}, log)

	conversationService := conversation.NewService(
		messageRepository,
		userRepository,
		productRepository,
		faqRepository,
		ruleRepository,
		generator,
		log,
	)
	userService := user.NewService(userRepository, log)
	catalogService := catalog.NewService(productRepository, log)
	knowledgeService := knowledge.NewService(faqRepository, ruleRepository, log)

	httpServer := httpserver.New(cfg, log, conversationService, userService, catalogService, knowledgeService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// newLLMCapability builds the provider adapter, or returns nil when no API
// key is configured. A nil capability keeps the service up and answering
// with its configuration-error message instead of crashing at boot.
func newLLMCapability(ctx context.Context, cfg *config.Config, log zerolog.Logger) llm.Capability {
	if cfg.LLMAPIKey == "" {
		log.Warn().Msg("LLM_API_KEY not set, chat replies will report an unconfigured service")
		return nil
	}

	infoClient := llmprovider.NewInfoClient(cfg.LLMBaseURL, cfg.LLMAPIKey)
	if info, err := infoClient.GetModelInfo(ctx, cfg.LLMModel); err != nil {
		log.Warn().Err(err).Str("model", cfg.LLMModel).Msg("model info lookup failed")
	} else if info != nil && info.ContextLength != nil {
		metrics.ModelContextLength.Set(float64(*info.ContextLength))
		log.Info().Str("model", cfg.LLMModel).Int("context_length", *info.ContextLength).Msg("resolved model info")
	}

	return llmprovider.NewClient(llmprovider.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
	})
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}

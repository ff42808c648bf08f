//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"capper-server/internal/config"
	"capper-server/internal/domain/catalog"
	"capper-server/internal/domain/conversation"
	"capper-server/internal/domain/knowledge"
	"capper-server/internal/domain/user"
	"capper-server/internal/infrastructure/database"
	"capper-server/internal/infrastructure/logger"
	catalogrepo "capper-server/internal/infrastructure/repository/catalog"
	conversationrepo "capper-server/internal/infrastructure/repository/conversation"
	knowledgerepo "capper-server/internal/infrastructure/repository/knowledge"
	userrepo "capper-server/internal/infrastructure/repository/user"
	"capper-server/internal/interfaces/httpserver"
)

var repositorySet = wire.NewSet(
	userrepo.NewPostgresRepository,
	wire.Bind(new(user.Repository), new(*userrepo.PostgresRepository)),
	catalogrepo.NewPostgresRepository,
	wire.Bind(new(catalog.Repository), new(*catalogrepo.PostgresRepository)),
	knowledgerepo.NewFAQRepository,
	wire.Bind(new(knowledge.FAQRepository), new(*knowledgerepo.FAQRepository)),
	knowledgerepo.NewRuleRepository,
	wire.Bind(new(knowledge.RuleRepository), new(*knowledgerepo.RuleRepository)),
	conversationrepo.NewPostgresRepository,
	wire.Bind(new(conversation.Repository), new(*conversationrepo.PostgresRepository)),
)

var serviceSet = wire.NewSet(
	user.NewService,
	catalog.NewService,
	knowledge.NewService,
)

// BuildApplication demonstrates how to assemble the service with Wire.
// The production entrypoint wires by hand in main; keep the two in sync.
func BuildApplication(ctx context.Context, conversationService conversation.Service) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		repositorySet,
		serviceSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

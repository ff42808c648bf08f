package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config controls GORM/PostgreSQL connectivity.
type Config struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        gormlogger.LogLevel
}

// Connect opens the GORM connection, creating the target database first if
// it does not exist yet. Local and CI setups start from a bare postgres
// instance, so boot handles the create instead of an out-of-band script.
func Connect(cfg Config) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN is empty")
	}

	if err := createDatabaseIfMissing(cfg.DSN); err != nil {
		return nil, fmt.Errorf("ensure database: %w", err)
	}

	logLevel := cfg.LogLevel
	if logLevel == 0 {
		logLevel = gormlogger.Warn
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("retrieve sql db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// createDatabaseIfMissing connects to the maintenance database and issues a
// CREATE DATABASE when the DSN's database is absent. Non-URL DSNs are left
// alone; connecting will surface any real problem.
func createDatabaseIfMissing(dsn string) error {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return nil
	}

	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" || name == "postgres" {
		return nil
	}

	adminDSN := *parsed
	adminDSN.Path = "/postgres"

	admin, err := sql.Open("postgres", adminDSN.String())
	if err != nil {
		return err
	}
	defer admin.Close()

	var exists bool
	if err := admin.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = admin.Exec("CREATE DATABASE " + quoteIdentifier(name))
	return err
}

func quoteIdentifier(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

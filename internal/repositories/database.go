package repositories

import (
	"gorm.io/gorm/logger"

	"github.com/Jammz-kekw/urob.to/internal/config"
	"github.com/Jammz-kekw/urob.to/internal/database"
)

// NewDatabaseConfig maps application config onto pool settings.
func NewDatabaseConfig(cfg *config.Config) *database.PoolConfig {
	level := logger.Info
	if cfg.IsProduction() {
		level = logger.Warn
	}

	return &database.PoolConfig{
		DSN:             cfg.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        level,
	}
}

// Connect opens the database through the shared pool wrapper. Callers keep
// the wrapper for health checks and shutdown.
func Connect(cfg *config.Config) (*database.DatabasePool, error) {
	return database.NewDatabasePool(NewDatabaseConfig(cfg))
}

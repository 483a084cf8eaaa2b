package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sebuszqo/FinanceTracker/internal/config"
	"github.com/sebuszqo/FinanceTracker/internal/models"
)

// DBService owns the process-wide connection pool shared by every repository.
type DBService struct {
	DB  *gorm.DB
	log *zap.Logger
}

// NewDBService opens the pool described by cfg. The connection itself is
// established lazily, so an unreachable server is reported by Ping rather than
// here.
func NewDBService(cfg config.DBConfig, log *zap.Logger) (*DBService, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing database connection string")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DBService{DB: db, log: log}, nil
}

// NewDBServiceFromGorm wraps an already opened handle.
func NewDBServiceFromGorm(db *gorm.DB, log *zap.Logger) *DBService {
	return &DBService{DB: db, log: log}
}

func (s *DBService) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the tables for every model.
func (s *DBService) Migrate(ctx context.Context) error {
	if err := s.DB.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}
	s.log.Info("schema migrated")
	return nil
}

// Health pings the database and returns a map describing its state.
func (s *DBService) Health(ctx context.Context) map[string]string {
	stats := make(map[string]string)

	if err := s.Ping(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	return stats
}

func (s *DBService) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	s.log.Info("closing database connection")
	return sqlDB.Close()
}

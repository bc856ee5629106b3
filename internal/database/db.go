package database

import (
	"fmt"

	"invoiceflow/internal/config"
	"invoiceflow/internal/kvstore"
	"invoiceflow/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection opens a gorm connection for driver ("postgres" or
// "sqlite") and migrates the key-value table.
func NewConnection(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if err := db.AutoMigrate(&kvstore.Entry{}); err != nil {
		return nil, fmt.Errorf("migrate kv_store: %w", err)
	}
	return db, nil
}

// OpenStore builds the key-value store selected by cfg.StoreDriver.
func OpenStore(cfg *config.Config) (kvstore.Store, error) {
	log := logger.WithComponent("database")

	switch cfg.StoreDriver {
	case config.DriverBadger:
		bcfg := kvstore.DefaultBadgerConfig(cfg.BadgerPath)
		if cfg.BadgerInMemory {
			bcfg = kvstore.InMemoryBadgerConfig()
		}
		bcfg.Logger = &log
		store, err := kvstore.OpenBadger(bcfg)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.BadgerPath).Bool("in_memory", cfg.BadgerInMemory).Msg("opened badger store")
		return store, nil

	case config.DriverSQLite:
		db, err := NewConnection(config.DriverSQLite, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("connected to sqlite")
		return kvstore.NewGormStore(db), nil

	default:
		db, err := NewConnection(config.DriverPostgres, cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		log.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("connected to postgres")
		return kvstore.NewGormStore(db), nil
	}
}

package database

import (
	"fmt"

	"parkside-realty/internal/models"
	"parkside-realty/pkg/config"
	"parkside-realty/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured relational store. TranslateError is on so
// unique-index violations surface as gorm.ErrDuplicatedKey regardless of
// driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
			cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Database.User, cfg.Database.Password, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Name)
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.Name)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	logger.GlobalLogger.Printf("Database connected (%s)", cfg.Database.Driver)
	return db, nil
}

// Migrate creates or updates the schema for the domain entities. The unique
// indexes declared on the models are the enforcement mechanism for every
// uniqueness invariant, so migration must run before the app serves requests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.ClientProfile{},
		&models.RealtorProfile{},
		&models.Property{},
	)
}

// Ping verifies the underlying connection is alive.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.GlobalLogger.Errorf("error getting database handle: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.GlobalLogger.Errorf("error closing database: %v", err)
	} else {
		logger.GlobalLogger.Println("Database connection closed")
	}
}

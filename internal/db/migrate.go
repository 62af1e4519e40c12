package db

import (
	"campushub/internal/config" // Application configuration
	"campushub/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to the configured database. SQLite is the default store
// for single-file deployments; MySQL is used when DB_DRIVER=mysql.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "mysql" {
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.DBName), &gorm.Config{})
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	return db.AutoMigrate(&domain.User{}, &domain.Course{}, &domain.Enrollment{})
}

// MustMigrate is Migrate for entrypoints, exiting on failure.
func MustMigrate(db *gorm.DB) {
	if err := Migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}

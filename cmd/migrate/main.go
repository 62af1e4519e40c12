package main

import (
	"campushub/internal/config" // Application configuration
	"campushub/internal/db"     // Database migrations and seed data
	"flag"                      // Command line flags

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	seed := flag.Bool("seed", false, "load sample users and courses after migrating")
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration

	gormDB, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	db.MustMigrate(gormDB)

	if *seed {
		if err := db.Seed(gormDB); err != nil {
			logrus.Fatalf("seed failed: %v", err)
		}
	}
}

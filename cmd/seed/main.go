// Command seed wipes the configured database and loads the development
// fixture set.
package main

import (
	"go.uber.org/zap"

	"github.com/jgrayburn/nc-news-api/internal/config"
	"github.com/jgrayburn/nc-news-api/internal/database"
	"github.com/jgrayburn/nc-news-api/internal/logger"
)

func main() {
	cfg := config.Load()

	db, err := database.New(cfg)
	if err != nil {
		logger.L.Fatal("failed to connect", zap.Error(err))
	}
	defer db.Close()

	if err := database.Seed(db.DB()); err != nil {
		logger.L.Fatal("seeding failed", zap.Error(err))
	}

	logger.L.Info("database seeded", zap.String("name", cfg.DBName))
}

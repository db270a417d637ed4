package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yutsuc/fsnd-trivia-api/internal/config"
	"github.com/yutsuc/fsnd-trivia-api/internal/database"
	"github.com/yutsuc/fsnd-trivia-api/internal/logger"
	"github.com/yutsuc/fsnd-trivia-api/internal/server"

	_ "github.com/yutsuc/fsnd-trivia-api/docs"

	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     Trivia questions, categories and quizzes.
// @host            localhost:5000
// @BasePath        /

func main() {
	seed := flag.Bool("seed", false, "load the reference fixture into empty tables")
	flag.Parse()

	if err := run(*seed); err != nil {
		log.Printf("trivia: %v", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run(seed bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logger.New(cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.Database, logger)
	if err != nil {
		logger.Error("database", zap.Error(err))
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("database close", zap.Error(err))
		}
	}()

	if err := database.AutoMigrate(db); err != nil {
		logger.Error("database", zap.Error(err))
		return err
	}
	logger.Info("database migrated")

	if cfg.Database.Seed || seed {
		if err := database.Seed(ctx, db); err != nil {
			logger.Error("database", zap.Error(err))
			return err
		}
		logger.Info("database seeded")
	}

	if err := server.New(cfg, db, logger).Run(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}

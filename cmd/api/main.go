package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evandrarf/academiq-be/database"
	"github.com/evandrarf/academiq-be/internal/config"
	"github.com/evandrarf/academiq-be/internal/pkg/validate"
	"gorm.io/gorm"
)

func main() {
	viperConfig := config.NewViper()

	log := config.NewLogger(viperConfig)
	validator := validate.NewValidator()
	api := config.NewAPI(viperConfig, log)

	var db *gorm.DB
	if database.Enabled(viperConfig) {
		var err error
		db, err = database.New(viperConfig)
		if err != nil {
			log.Fatalf("Failed to connect database: %v", err)
		}

		// Run migrations
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Info("Migrations completed successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	defer stop()

	config.Bootstrap(&config.BootstrapConfig{
		Config:    viperConfig,
		Log:       log,
		Api:       api,
		Validator: validator,
		DB:        db,
	})

	listenAddr := viperConfig.GetString("api.listen")

	go func() {
		if err := api.Listen(listenAddr); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("API shutdown error: %v", err)
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

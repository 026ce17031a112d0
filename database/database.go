package database

import (
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Enabled reports whether study history persistence is switched on.
func Enabled(config *viper.Viper) bool {
	return config.GetBool("database.enabled")
}

func DSN(config *viper.Viper) string {
	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		config.GetString("database.host"),
		config.GetString("database.username"),
		config.GetString("database.password"),
		config.GetString("database.dbname"),
		config.GetInt("database.port"),
		sslmode,
		timezone,
	)
}

func New(config *viper.Viper) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(config)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return db, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	config, err := loadViper(".")
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	return config
}

// loadViper reads config.yaml (config.prod.yaml when ENV=production) from
// the given paths. A missing file is not an error: defaults and environment
// variables are enough to boot.
func loadViper(paths ...string) (*viper.Viper, error) {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	for _, p := range paths {
		config.AddConfigPath(p)
	}

	setDefaults(config)

	config.SetEnvPrefix("ACADEMIQ")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	_ = config.BindEnv("llm.gemini.api_key", "ACADEMIQ_LLM_GEMINI_API_KEY", "GOOGLE_API_KEY")

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config, nil
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "academiq")
	config.SetDefault("api.listen", ":8080")
	config.SetDefault("api.prefork", false)
	config.SetDefault("api.cors.origins", "*")

	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")

	config.SetDefault("session.expiration", "24h")

	config.SetDefault("llm.provider", "gemini")
	config.SetDefault("llm.gemini.model", "gemini-2.0-flash-exp")
	config.SetDefault("llm.openai.model", "gpt-4o-mini")
	config.SetDefault("llm.openai.base_url", "https://api.openai.com/v1")

	config.SetDefault("tutor.quiz_count", 5)
	config.SetDefault("tutor.default_age", 15)

	config.SetDefault("database.enabled", false)
	config.SetDefault("database.port", 5432)
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")
}

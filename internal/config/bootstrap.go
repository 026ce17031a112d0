package config

import (
	"context"

	"github.com/evandrarf/academiq-be/internal/delivery/http/handler"
	"github.com/evandrarf/academiq-be/internal/delivery/http/middleware"
	"github.com/evandrarf/academiq-be/internal/delivery/http/repository"
	"github.com/evandrarf/academiq-be/internal/delivery/http/route"
	"github.com/evandrarf/academiq-be/internal/delivery/http/usecase"
	"github.com/evandrarf/academiq-be/internal/pkg/llm"
	"github.com/evandrarf/academiq-be/internal/pkg/prompt"
	"github.com/evandrarf/academiq-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB // nil disables study history
	Log       *logrus.Logger
	Validator *validate.Validator
	LLM       llm.Client // built from config when nil
}

func Bootstrap(config *BootstrapConfig) {
	sessions := middleware.NewSessionStore(config.Config)
	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:      config.Log,
		Config:   config.Config,
		Sessions: sessions,
	})

	client := config.LLM
	if client == nil {
		client = llm.NewClient(context.Background(), config.Config, config.Log)
	}

	prompts := prompt.Templates{
		Concept: config.Config.GetString("tutor.prompts.concept"),
		Diagram: config.Config.GetString("tutor.prompts.diagram"),
		Quiz:    config.Config.GetString("tutor.prompts.quiz"),
		Chat:    config.Config.GetString("tutor.prompts.chat"),
	}
	tutor := usecase.NewPhysicsTutor(client, prompts, config.Config.GetInt("tutor.quiz_count"))

	tutorConfig := usecase.TutorConfig{
		Tutor:      tutor,
		DB:         config.DB,
		Log:        config.Log,
		DefaultAge: config.Config.GetInt("tutor.default_age"),
	}
	if config.DB != nil {
		tutorConfig.Repository = repository.NewStudyHistoryRepository(config.DB)
	} else {
		config.Log.Info("database disabled, study history is off")
	}
	tutorUsecase := usecase.NewTutorUsecase(tutorConfig)
	tutorHandler := handler.NewTutorHandler(config.Validator, config.Log, tutorUsecase, client.ModelID())

	route.Setup(&route.RouteConfig{
		Api:          config.Api,
		Middleware:   mid,
		TutorHandler: tutorHandler,
	})
}

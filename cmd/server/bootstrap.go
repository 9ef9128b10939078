package main

import (
	"github.com/borantia/backend/internal/config"
	"github.com/borantia/backend/internal/handlers"
	"github.com/borantia/backend/internal/models"
	"github.com/borantia/backend/internal/services"
	"github.com/borantia/backend/internal/utils"
	"github.com/borantia/backend/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	imageDir  string
	scheduler *services.SchedulerService

	authHandler       *handlers.AuthHandler
	postingHandler    *handlers.PostingHandler
	applyEntryHandler *handlers.ApplyEntryHandler
	mypageHandler     *handlers.MypageHandler
	profileHandler    *handlers.ProfileHandler
	imageHandler      *handlers.ImageHandler
	searchHandler     *handlers.SearchHandler
	systemLogHandler  *handlers.SystemLogHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	services.InitSystemLogger(db)

	scheduler := services.NewSchedulerService(db, &cfg.Log)
	scheduler.Start()

	return &appServices{
		imageDir:  cfg.Storage.ImageDir,
		scheduler: scheduler,

		authHandler:       handlers.NewAuthHandler(services.NewAuthService(db, &cfg.JWT)),
		postingHandler:    handlers.NewPostingHandler(services.NewPostingService(db)),
		applyEntryHandler: handlers.NewApplyEntryHandler(services.NewApplyEntryService(db)),
		mypageHandler:     handlers.NewMypageHandler(services.NewMypageService(db)),
		profileHandler:    handlers.NewProfileHandler(services.NewProfileService(db)),
		imageHandler:      handlers.NewImageHandler(services.NewImageService(db, &cfg.Storage)),
		searchHandler: handlers.NewSearchHandler(
			services.NewGeocodingService(&cfg.Geocoding),
			services.NewRakutenService(&cfg.Rakuten),
		),
		systemLogHandler: handlers.NewSystemLogHandler(services.NewSystemLogService(db)),
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	s.scheduler.Stop()
	logger.Info().Msg("Scheduler stopped")
}

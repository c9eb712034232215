package app

import (
	"context"

	"hotelsys/config"
	"hotelsys/internal/controllers"
	"hotelsys/internal/database"
	"hotelsys/internal/handlers/middleware"
	"hotelsys/internal/jobs"
	"hotelsys/internal/logger"
	"hotelsys/internal/repositories"
	"hotelsys/internal/services"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Services
	TransactionService *services.TransactionService
	SchedulerService   *services.SchedulerService

	// Repositories and controllers
	Repositories repositories.Repository
	Controllers  controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	service, err := services.New(db, config)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	repos := repositories.New(db)
	middleware := middleware.New(db, config)
	controllers := controllers.New(service, repos, config, db)

	if config.SchedulerEnabled {
		noShowSweepJob := jobs.NewNoShowSweepJob(controllers.Reservation, services.Hourly)
		if err := service.Scheduler.AddJob(noShowSweepJob); err != nil {
			return &App{}, log.Err("failed to register no-show sweep job", err)
		}
		log.Info("Registered no-show sweep job with scheduler")
	}

	app := &App{
		Database:           db,
		Config:             config,
		Middleware:         middleware,
		TransactionService: service.Transaction,
		SchedulerService:   service.Scheduler,
		Repositories:       repos,
		Controllers:        controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.TransactionService,
		a.SchedulerService,
		a.Controllers.Account,
		a.Controllers.User,
		a.Controllers.Room,
		a.Controllers.Reservation,
		a.Controllers.Request,
		a.Controllers.Repair,
		a.Controllers.Shift,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.SchedulerService != nil {
		if closeErr := a.SchedulerService.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}

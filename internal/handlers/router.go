package handlers

import (
	"hotelsys/internal/app"
	"hotelsys/internal/handlers/middleware"
	"hotelsys/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewAccountHandler(*app, api).Register()
	NewUserHandler(*app, api).Register()
	NewRoomHandler(*app, api).Register()
	NewReservationHandler(*app, api).Register()
	NewRequestHandler(*app, api).Register()
	NewRepairHandler(*app, api).Register()
	NewShiftHandler(*app, api).Register()

	return nil
}

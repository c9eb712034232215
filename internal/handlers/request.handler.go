package handlers

import (
	"hotelsys/internal/app"
	"hotelsys/internal/apperror"
	requestController "hotelsys/internal/controllers/request"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RequestHandler struct {
	Handler
	requests requestController.RequestControllerInterface
}

func NewRequestHandler(app app.App, router fiber.Router) *RequestHandler {
	log := logger.New("handlers").File("request_handler")
	return &RequestHandler{
		requests: app.Controllers.Request,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RequestHandler) Register() {
	requests := h.router.Group("/request")

	requests.Get("/", h.getAllRequests)
	requests.Get("/reservation/:id", h.getByReservation)
	requests.Get("/:id", h.getRequestByID)
	requests.Post("/create", h.createRequest)
	requests.Put("/:id/status", h.setStatus)
	requests.Delete("/:id", h.deleteRequest)
}

type setStatusRequest struct {
	Status CompletionStatus `json:"status"`
}

func (h *RequestHandler) getAllRequests(c *fiber.Ctx) error {
	requests, err := h.requests.GetAll(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(requests)
}

func (h *RequestHandler) getRequestByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	request, err := h.requests.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(request)
}

func (h *RequestHandler) getByReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	requests, err := h.requests.GetByReservation(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(requests)
}

func (h *RequestHandler) createRequest(c *fiber.Ctx) error {
	var request Request
	if err := c.BodyParser(&request); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.requests.Create(c.UserContext(), &request)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RequestHandler) setStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	var body setStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	request, err := h.requests.SetStatus(c.UserContext(), id, body.Status)
	if err != nil {
		return err
	}

	return c.JSON(request)
}

func (h *RequestHandler) deleteRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	if err := h.requests.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

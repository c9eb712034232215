package handlers

import (
	"hotelsys/internal/app"
	"hotelsys/internal/apperror"
	repairController "hotelsys/internal/controllers/repair"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RepairHandler struct {
	Handler
	repairs repairController.RepairControllerInterface
}

func NewRepairHandler(app app.App, router fiber.Router) *RepairHandler {
	log := logger.New("handlers").File("repair_handler")
	return &RepairHandler{
		repairs: app.Controllers.Repair,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RepairHandler) Register() {
	repairs := h.router.Group("/repair")

	repairs.Get("/", h.getAllRepairs)
	repairs.Get("/employee/:email", h.getByEmployee)
	repairs.Get("/:id", h.getRepairByID)
	repairs.Post("/create", h.createRepair)
	repairs.Put("/:id/status", h.setStatus)
	repairs.Delete("/:id", h.deleteRepair)
}

func (h *RepairHandler) getAllRepairs(c *fiber.Ctx) error {
	repairs, err := h.repairs.GetAll(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(repairs)
}

func (h *RepairHandler) getRepairByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	repair, err := h.repairs.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(repair)
}

func (h *RepairHandler) getByEmployee(c *fiber.Ctx) error {
	repairs, err := h.repairs.GetByEmployee(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}

	return c.JSON(repairs)
}

func (h *RepairHandler) createRepair(c *fiber.Ctx) error {
	var repair Repair
	if err := c.BodyParser(&repair); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.repairs.Create(c.UserContext(), &repair)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RepairHandler) setStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	var body setStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	repair, err := h.repairs.SetStatus(c.UserContext(), id, body.Status)
	if err != nil {
		return err
	}

	return c.JSON(repair)
}

func (h *RepairHandler) deleteRepair(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	if err := h.repairs.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

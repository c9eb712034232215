package handlers

import (
	"time"

	"hotelsys/internal/app"
	"hotelsys/internal/apperror"
	shiftController "hotelsys/internal/controllers/shift"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	shiftDateLayout = "2006-01-02"
	shiftTimeLayout = "15:04"
)

type ShiftHandler struct {
	Handler
	shifts shiftController.ShiftControllerInterface
}

func NewShiftHandler(app app.App, router fiber.Router) *ShiftHandler {
	log := logger.New("handlers").File("shift_handler")
	return &ShiftHandler{
		shifts: app.Controllers.Shift,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ShiftHandler) Register() {
	shifts := h.router.Group("/shift")

	shifts.Get("/", h.getAllShifts)
	shifts.Get("/employee/:email", h.getByEmployee)
	shifts.Get("/date/:date", h.getByDate)
	shifts.Get("/dateAndTime/:date/:startTime", h.getByDateAndStartTime)
	shifts.Get("/:id", h.getShiftByID)
	shifts.Post("/create", h.createShift)
	shifts.Put("/update", h.updateShift)
	shifts.Delete("/:id", h.deleteShift)
}

func (h *ShiftHandler) getAllShifts(c *fiber.Ctx) error {
	shifts, err := h.shifts.GetAll(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(shifts)
}

func (h *ShiftHandler) getShiftByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("Invalid shift ID.")
	}

	shift, err := h.shifts.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(shift)
}

func (h *ShiftHandler) getByEmployee(c *fiber.Ctx) error {
	shifts, err := h.shifts.GetByEmployee(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}

	return c.JSON(shifts)
}

func (h *ShiftHandler) getByDate(c *fiber.Ctx) error {
	date, err := time.Parse(shiftDateLayout, c.Params("date"))
	if err != nil {
		return apperror.BadRequest("invalid date")
	}

	shifts, err := h.shifts.GetByDate(c.UserContext(), date)
	if err != nil {
		return err
	}

	return c.JSON(shifts)
}

func (h *ShiftHandler) getByDateAndStartTime(c *fiber.Ctx) error {
	date, err := time.Parse(shiftDateLayout, c.Params("date"))
	if err != nil {
		return apperror.BadRequest("invalid date")
	}

	startTime, err := time.Parse(shiftTimeLayout, c.Params("startTime"))
	if err != nil {
		return apperror.BadRequest("invalid start time")
	}

	shifts, err := h.shifts.GetByDateAndStartTime(c.UserContext(), date, startTime)
	if err != nil {
		return err
	}

	return c.JSON(shifts)
}

func (h *ShiftHandler) createShift(c *fiber.Ctx) error {
	var shift Shift
	if err := c.BodyParser(&shift); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.shifts.Create(c.UserContext(), &shift)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ShiftHandler) updateShift(c *fiber.Ctx) error {
	var shift Shift
	if err := c.BodyParser(&shift); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	updated, err := h.shifts.Update(c.UserContext(), &shift)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *ShiftHandler) deleteShift(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("Invalid shift ID.")
	}

	if err := h.shifts.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

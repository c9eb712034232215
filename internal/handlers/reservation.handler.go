package handlers

import (
	"hotelsys/internal/app"
	"hotelsys/internal/apperror"
	reservationController "hotelsys/internal/controllers/reservation"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ReservationHandler struct {
	Handler
	reservations reservationController.ReservationControllerInterface
}

func NewReservationHandler(app app.App, router fiber.Router) *ReservationHandler {
	log := logger.New("handlers").File("reservation_handler")
	return &ReservationHandler{
		reservations: app.Controllers.Reservation,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ReservationHandler) Register() {
	reservations := h.router.Group("/reservation")

	reservations.Get("/", h.getAllReservations)
	reservations.Get("/notPaid", h.getNotPaid)
	reservations.Get("/customer/:email", h.getByCustomer)
	reservations.Get("/:id", h.getReservationByID)
	reservations.Post("/new", h.createReservation)
	reservations.Post("/:id/pay", h.payReservation)
	reservations.Post("/:id/checkIn", h.checkIn)
	reservations.Post("/:id/checkOut", h.checkOut)
	reservations.Post("/:id/noShow", h.noShow)
	reservations.Post("/:id/cancel", h.cancelReservation)
	reservations.Delete("/:id", h.deleteReservation)
}

type createReservationRequest struct {
	Reservation
	RoomNumbers []int `json:"roomNumbers"`
}

type payReservationRequest struct {
	Amount int `json:"amount"`
}

func (h *ReservationHandler) getAllReservations(c *fiber.Ctx) error {
	reservations, err := h.reservations.GetAll(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(reservations)
}

func (h *ReservationHandler) getReservationByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	reservation, err := h.reservations.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(reservation)
}

func (h *ReservationHandler) getByCustomer(c *fiber.Ctx) error {
	reservations, err := h.reservations.GetByCustomer(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}

	return c.JSON(reservations)
}

func (h *ReservationHandler) getNotPaid(c *fiber.Ctx) error {
	reservations, err := h.reservations.GetNotPaid(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(reservations)
}

func (h *ReservationHandler) createReservation(c *fiber.Ctx) error {
	var body createReservationRequest
	if err := c.BodyParser(&body); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.reservations.Create(c.UserContext(), &body.Reservation, body.RoomNumbers)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ReservationHandler) payReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	var body payReservationRequest
	if err := c.BodyParser(&body); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	reservation, err := h.reservations.Pay(c.UserContext(), id, body.Amount)
	if err != nil {
		return err
	}

	return c.JSON(reservation)
}

func (h *ReservationHandler) checkIn(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	reservation, err := h.reservations.CheckIn(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(reservation)
}

func (h *ReservationHandler) checkOut(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	reservation, err := h.reservations.CheckOut(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(reservation)
}

func (h *ReservationHandler) noShow(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	reservation, err := h.reservations.NoShow(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(reservation)
}

func (h *ReservationHandler) cancelReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	if err := h.reservations.Cancel(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReservationHandler) deleteReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	if err := h.reservations.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

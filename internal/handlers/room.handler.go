package handlers

import (
	"time"

	"hotelsys/internal/app"
	"hotelsys/internal/apperror"
	roomController "hotelsys/internal/controllers/room"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

const roomCacheDuration = 5 * time.Minute

type RoomHandler struct {
	Handler
	rooms roomController.RoomControllerInterface
	store *cache.Cache
}

func NewRoomHandler(app app.App, router fiber.Router) *RoomHandler {
	log := logger.New("handlers").File("room_handler")
	return &RoomHandler{
		rooms: app.Controllers.Room,
		store: cache.New(roomCacheDuration, 10*time.Minute),
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RoomHandler) Register() {
	// Room catalog barely changes, serve repeated GETs from memory
	responseCache := h.middleware.ResponseCache(h.store, roomCacheDuration)

	rooms := h.router.Group("/room")
	rooms.Get("/", responseCache, h.getAllRooms)
	rooms.Get("/type/:type", responseCache, h.getRoomByType)
	rooms.Get("/:id", responseCache, h.getRoomByID)
	rooms.Post("/create", h.createRoom)
	rooms.Put("/update", h.updateRoom)

	specificRooms := h.router.Group("/specificRoom")
	specificRooms.Get("/", h.getAllSpecificRooms)
	specificRooms.Get("/open/:roomId", h.getOpenRoomsByType)
	specificRooms.Get("/:number", h.getSpecificRoom)
	specificRooms.Post("/create", h.createSpecificRoom)
	specificRooms.Put("/update", h.updateSpecificRoom)
	specificRooms.Delete("/:number", h.deleteSpecificRoom)
}

func (h *RoomHandler) getAllRooms(c *fiber.Ctx) error {
	rooms, err := h.rooms.GetAllRooms(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(rooms)
}

func (h *RoomHandler) getRoomByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	room, err := h.rooms.GetRoomByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(room)
}

func (h *RoomHandler) getRoomByType(c *fiber.Ctx) error {
	room, err := h.rooms.GetRoomByType(c.UserContext(), RoomType(c.Params("type")))
	if err != nil {
		return err
	}

	return c.JSON(room)
}

func (h *RoomHandler) createRoom(c *fiber.Ctx) error {
	var room Room
	if err := c.BodyParser(&room); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.rooms.CreateRoom(c.UserContext(), &room)
	if err != nil {
		return err
	}

	h.store.Flush()
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RoomHandler) updateRoom(c *fiber.Ctx) error {
	var room Room
	if err := c.BodyParser(&room); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	updated, err := h.rooms.UpdateRoom(c.UserContext(), &room)
	if err != nil {
		return err
	}

	h.store.Flush()
	return c.JSON(updated)
}

func (h *RoomHandler) getAllSpecificRooms(c *fiber.Ctx) error {
	rooms, err := h.rooms.GetAllSpecificRooms(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(rooms)
}

func (h *RoomHandler) getSpecificRoom(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	room, err := h.rooms.GetSpecificRoom(c.UserContext(), number)
	if err != nil {
		return err
	}

	return c.JSON(room)
}

func (h *RoomHandler) getOpenRoomsByType(c *fiber.Ctx) error {
	roomID, err := c.ParamsInt("roomId")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	rooms, err := h.rooms.GetOpenRoomsByType(c.UserContext(), roomID)
	if err != nil {
		return err
	}

	return c.JSON(rooms)
}

func (h *RoomHandler) createSpecificRoom(c *fiber.Ctx) error {
	var room SpecificRoom
	if err := c.BodyParser(&room); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.rooms.CreateSpecificRoom(c.UserContext(), &room)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RoomHandler) updateSpecificRoom(c *fiber.Ctx) error {
	var room SpecificRoom
	if err := c.BodyParser(&room); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	updated, err := h.rooms.UpdateSpecificRoom(c.UserContext(), &room)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *RoomHandler) deleteSpecificRoom(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	if err := h.rooms.DeleteSpecificRoom(c.UserContext(), number); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

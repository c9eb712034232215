package roomController

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"hotelsys/config"
	"hotelsys/internal/apperror"
	"hotelsys/internal/database"
	. "hotelsys/internal/models"
	"hotelsys/internal/repositories"
	"hotelsys/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

func newTestController(t *testing.T) (RoomControllerInterface, database.DB) {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:room_controller_%d?mode=memory&cache=shared",
		testDBCounter.Add(1),
	)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := database.DB{SQL: gormDB}
	require.NoError(t, db.MigrateModels())

	repos := repositories.New(db)
	testServices, err := services.New(db, config.Config{})
	require.NoError(t, err)

	controller := New(repos, testServices, config.Config{}, db)
	return controller, db
}

func assertAppError(t *testing.T, err error, status int, message string) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := err.(*apperror.Error)
	require.True(t, ok, "expected *apperror.Error, got %T", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func suiteRoom() *Room {
	return &Room{
		Type:          RoomTypeSuite,
		PricePerNight: 320,
		Bed:           BedTypeKing,
		Capacity:      4,
	}
}

func TestRoomController_CreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a room type", func(t *testing.T) {
		controller, _ := newTestController(t)

		created, err := controller.CreateRoom(ctx, suiteRoom())
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		fetched, err := controller.GetRoomByType(ctx, RoomTypeSuite)
		require.NoError(t, err)
		assert.Equal(t, 320, fetched.PricePerNight)
	})

	t.Run("non-positive price or capacity is rejected", func(t *testing.T) {
		controller, _ := newTestController(t)

		room := suiteRoom()
		room.PricePerNight = 0
		_, err := controller.CreateRoom(ctx, room)
		assertAppError(t, err, fiber.StatusBadRequest, "invalid integer")

		room = suiteRoom()
		room.Capacity = -1
		_, err = controller.CreateRoom(ctx, room)
		assertAppError(t, err, fiber.StatusBadRequest, "invalid integer")
	})

	t.Run("duplicate type is rejected", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.CreateRoom(ctx, suiteRoom())
		require.NoError(t, err)

		_, err = controller.CreateRoom(ctx, suiteRoom())
		assertAppError(t, err, fiber.StatusConflict, "A room with this type already exists.")
	})

	t.Run("unknown room is not found", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.GetRoomByID(ctx, 404)
		assertAppError(t, err, fiber.StatusNotFound, "Room not found.")
	})
}

func TestRoomController_SpecificRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a specific room under an existing type", func(t *testing.T) {
		controller, _ := newTestController(t)

		room, err := controller.CreateRoom(ctx, suiteRoom())
		require.NoError(t, err)

		created, err := controller.CreateSpecificRoom(ctx, &SpecificRoom{
			Number:     401,
			Floor:      4,
			OpenForUse: true,
			RoomID:     room.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, 401, created.Number)
	})

	t.Run("unknown room type is rejected", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.CreateSpecificRoom(ctx, &SpecificRoom{Number: 401, RoomID: 404})
		assertAppError(t, err, fiber.StatusBadRequest, "Room type does not exist.")
	})

	t.Run("duplicate number is rejected", func(t *testing.T) {
		controller, _ := newTestController(t)

		room, err := controller.CreateRoom(ctx, suiteRoom())
		require.NoError(t, err)

		_, err = controller.CreateSpecificRoom(ctx, &SpecificRoom{
			Number:     401,
			OpenForUse: true,
			RoomID:     room.ID,
		})
		require.NoError(t, err)

		_, err = controller.CreateSpecificRoom(ctx, &SpecificRoom{
			Number:     401,
			OpenForUse: true,
			RoomID:     room.ID,
		})
		assertAppError(t, err, fiber.StatusConflict, "A room with this number already exists.")
	})

	t.Run("open rooms by type skips closed rooms", func(t *testing.T) {
		controller, _ := newTestController(t)

		room, err := controller.CreateRoom(ctx, suiteRoom())
		require.NoError(t, err)

		_, err = controller.CreateSpecificRoom(ctx, &SpecificRoom{
			Number:     401,
			OpenForUse: true,
			RoomID:     room.ID,
		})
		require.NoError(t, err)
		_, err = controller.CreateSpecificRoom(ctx, &SpecificRoom{
			Number:     402,
			OpenForUse: false,
			RoomID:     room.ID,
		})
		require.NoError(t, err)

		open, err := controller.GetOpenRoomsByType(ctx, room.ID)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, 401, open[0].Number)
	})
}

func TestRoomController_DeleteSpecificRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a room nobody holds", func(t *testing.T) {
		controller, _ := newTestController(t)

		room, err := controller.CreateRoom(ctx, suiteRoom())
		require.NoError(t, err)

		_, err = controller.CreateSpecificRoom(ctx, &SpecificRoom{
			Number:     401,
			OpenForUse: true,
			RoomID:     room.ID,
		})
		require.NoError(t, err)

		require.NoError(t, controller.DeleteSpecificRoom(ctx, 401))

		_, err = controller.GetSpecificRoom(ctx, 401)
		assertAppError(t, err, fiber.StatusNotFound, "Room not found.")
	})

	t.Run("room with a live reservation is refused", func(t *testing.T) {
		controller, db := newTestController(t)

		room, err := controller.CreateRoom(ctx, suiteRoom())
		require.NoError(t, err)

		_, err = controller.CreateSpecificRoom(ctx, &SpecificRoom{
			Number:     401,
			OpenForUse: true,
			RoomID:     room.ID,
		})
		require.NoError(t, err)

		reservation := &Reservation{
			NumPeople:     2,
			TotalPrice:    320,
			CheckedIn:     CheckedIn,
			CustomerEmail: "guest@mail.com",
		}
		require.NoError(t, db.SQL.Create(reservation).Error)
		require.NoError(t, db.SQL.Create(&ReservedRoom{
			ReservationID: reservation.ID,
			RoomNumber:    401,
		}).Error)

		err = controller.DeleteSpecificRoom(ctx, 401)
		assertAppError(t, err, fiber.StatusConflict, "Room has active reservations.")
	})

	t.Run("checked-out reservations do not block deletion", func(t *testing.T) {
		controller, db := newTestController(t)

		room, err := controller.CreateRoom(ctx, suiteRoom())
		require.NoError(t, err)

		_, err = controller.CreateSpecificRoom(ctx, &SpecificRoom{
			Number:     401,
			OpenForUse: true,
			RoomID:     room.ID,
		})
		require.NoError(t, err)

		reservation := &Reservation{
			NumPeople:     2,
			TotalPrice:    320,
			CheckedIn:     CheckedOut,
			CustomerEmail: "guest@mail.com",
		}
		require.NoError(t, db.SQL.Create(reservation).Error)
		require.NoError(t, db.SQL.Create(&ReservedRoom{
			ReservationID: reservation.ID,
			RoomNumber:    401,
		}).Error)

		assert.NoError(t, controller.DeleteSpecificRoom(ctx, 401))
	})
}

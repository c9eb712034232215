package requestController

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

func newTestController(t *testing.T) (RequestControllerInterface, database.DB) {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:request_controller_%d?mode=memory&cache=shared",
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

func seedReservation(t *testing.T, db database.DB) *Reservation {
	t.Helper()

	reservation := &Reservation{
		NumPeople:     2,
		TotalPrice:    180,
		CheckedIn:     CheckedIn,
		CustomerEmail: "guest@mail.com",
	}
	require.NoError(t, db.SQL.Create(reservation).Error)
	return reservation
}

func assertAppError(t *testing.T, err error, status int, message string) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := err.(*apperror.Error)
	require.True(t, ok, "expected *apperror.Error, got %T", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func TestRequestController_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a request with the default status", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db)

		created, err := controller.Create(ctx, &Request{
			Description:   "Extra towels",
			ReservationID: reservation.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, created.Status)
	})

	t.Run("empty description is rejected", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db)

		_, err := controller.Create(ctx, &Request{ReservationID: reservation.ID})
		assertAppError(t, err, fiber.StatusBadRequest, "Description cannot be empty.")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db)

		_, err := controller.Create(ctx, &Request{
			Description:   "Extra towels",
			Status:        "Later",
			ReservationID: reservation.ID,
		})
		assertAppError(t, err, fiber.StatusBadRequest, "Invalid status.")
	})

	t.Run("unknown reservation is rejected", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.Create(ctx, &Request{
			Description:   "Extra towels",
			ReservationID: 404,
		})
		assertAppError(t, err, fiber.StatusNotFound, "reservation does not exist")
	})
}

func TestRequestController_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moves a request through any statuses", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db)

		created, err := controller.Create(ctx, &Request{
			Description:   "Extra towels",
			ReservationID: reservation.ID,
		})
		require.NoError(t, err)

		updated, err := controller.SetStatus(ctx, created.ID, StatusDone)
		require.NoError(t, err)
		assert.Equal(t, StatusDone, updated.Status)

		// Transitions are unconstrained, a done request may reopen.
		updated, err = controller.SetStatus(ctx, created.ID, StatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, updated.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.SetStatus(ctx, 1, "Later")
		assertAppError(t, err, fiber.StatusBadRequest, "Invalid status.")
	})

	t.Run("unknown request is not found", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.SetStatus(ctx, 404, StatusDone)
		assertAppError(t, err, fiber.StatusNotFound, "Request not found.")
	})
}

func TestRequestController_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing request", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db)

		created, err := controller.Create(ctx, &Request{
			Description:   "Extra towels",
			ReservationID: reservation.ID,
		})
		require.NoError(t, err)

		require.NoError(t, controller.Delete(ctx, created.ID))

		_, err = controller.GetByID(ctx, created.ID)
		assertAppError(t, err, fiber.StatusNotFound, "Request not found.")
	})

	t.Run("deleting an unknown request is not found", func(t *testing.T) {
		controller, _ := newTestController(t)

		err := controller.Delete(ctx, 404)
		assertAppError(t, err, fiber.StatusNotFound, "Request not found.")
	})
}

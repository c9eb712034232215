package userController

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

func newTestController(t *testing.T) (UserControllerInterface, database.DB) {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:user_controller_%d?mode=memory&cache=shared",
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

func TestUserController_Owner(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the first owner", func(t *testing.T) {
		controller, _ := newTestController(t)

		owner, err := controller.CreateOwner(ctx, &Owner{
			Email: "owner@hotel.com",
			Name:  "Grand Owner",
		})
		require.NoError(t, err)

		fetched, err := controller.GetOwner(ctx, owner.Email)
		require.NoError(t, err)
		assert.Equal(t, "Grand Owner", fetched.Name)
	})

	t.Run("a second owner is rejected", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.CreateOwner(ctx, &Owner{
			Email: "owner@hotel.com",
			Name:  "Grand Owner",
		})
		require.NoError(t, err)

		_, err = controller.CreateOwner(ctx, &Owner{
			Email: "second@hotel.com",
			Name:  "Second Owner",
		})
		assertAppError(t, err, fiber.StatusConflict, "An owner already exists in the system.")
	})

	t.Run("empty store has no owners", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.GetAllOwners(ctx)
		assertAppError(t, err, fiber.StatusNotFound, "There are no owners in the system.")
	})
}

func TestUserController_EmailUniqueAcrossKinds(t *testing.T) {
	ctx := context.Background()

	t.Run("employee email cannot become a customer", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.CreateEmployee(ctx, &Employee{
			Email:  "worker@hotel.com",
			Name:   "Worker",
			Salary: 2400,
		})
		require.NoError(t, err)

		_, err = controller.CreateCustomer(ctx, &Customer{
			Email: "worker@hotel.com",
			Name:  "Impostor",
		})
		assertAppError(t, err, fiber.StatusConflict, "A user with this email already exists.")
	})

	t.Run("customer email cannot become an owner", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.CreateCustomer(ctx, &Customer{
			Email: "guest@mail.com",
			Name:  "Guest",
		})
		require.NoError(t, err)

		_, err = controller.CreateOwner(ctx, &Owner{
			Email: "guest@mail.com",
			Name:  "Guest",
		})
		assertAppError(t, err, fiber.StatusConflict, "A user with this email already exists.")
	})

	t.Run("distinct emails pass", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.CreateEmployee(ctx, &Employee{
			Email:  "worker@hotel.com",
			Name:   "Worker",
			Salary: 2400,
		})
		require.NoError(t, err)

		_, err = controller.CreateCustomer(ctx, &Customer{
			Email: "guest@mail.com",
			Name:  "Guest",
		})
		assert.NoError(t, err)
	})
}

func TestUserController_Employee(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown employee is not found", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.GetEmployee(ctx, "ghost@hotel.com")
		assertAppError(t, err, fiber.StatusNotFound, "Employee does not exist.")
	})

	t.Run("delete removes the employee", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.CreateEmployee(ctx, &Employee{
			Email:  "worker@hotel.com",
			Name:   "Worker",
			Salary: 2400,
		})
		require.NoError(t, err)

		require.NoError(t, controller.DeleteEmployee(ctx, "worker@hotel.com"))

		_, err = controller.GetEmployee(ctx, "worker@hotel.com")
		assertAppError(t, err, fiber.StatusNotFound, "Employee does not exist.")
	})

	t.Run("deleting an unknown employee is not found", func(t *testing.T) {
		controller, _ := newTestController(t)

		err := controller.DeleteEmployee(ctx, "ghost@hotel.com")
		assertAppError(t, err, fiber.StatusNotFound, "Employee does not exist.")
	})
}

func TestUserController_DeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades through the customer's reservations", func(t *testing.T) {
		controller, db := newTestController(t)

		_, err := controller.CreateCustomer(ctx, &Customer{
			Email: "guest@mail.com",
			Name:  "Guest",
		})
		require.NoError(t, err)

		reservation := &Reservation{
			NumPeople:     2,
			TotalPrice:    270,
			CheckedIn:     BeforeCheckIn,
			CustomerEmail: "guest@mail.com",
		}
		require.NoError(t, db.SQL.Create(reservation).Error)
		require.NoError(t, db.SQL.Create(&ReservedRoom{
			ReservationID: reservation.ID,
			RoomNumber:    101,
		}).Error)
		require.NoError(t, db.SQL.Create(&Request{
			Description:   "Late checkout",
			Status:        StatusPending,
			ReservationID: reservation.ID,
		}).Error)

		require.NoError(t, controller.DeleteCustomer(ctx, "guest@mail.com"))

		_, err = controller.GetCustomer(ctx, "guest@mail.com")
		assertAppError(t, err, fiber.StatusNotFound, "Customer does not exist.")

		var reservationCount, roomLinkCount, requestCount int64
		require.NoError(t, db.SQL.Model(&Reservation{}).Count(&reservationCount).Error)
		require.NoError(t, db.SQL.Model(&ReservedRoom{}).Count(&roomLinkCount).Error)
		require.NoError(t, db.SQL.Model(&Request{}).Count(&requestCount).Error)
		assert.Zero(t, reservationCount)
		assert.Zero(t, roomLinkCount)
		assert.Zero(t, requestCount)
	})

	t.Run("deleting an unknown customer is not found", func(t *testing.T) {
		controller, _ := newTestController(t)

		err := controller.DeleteCustomer(ctx, "ghost@mail.com")
		assertAppError(t, err, fiber.StatusNotFound, "Customer does not exist.")
	})
}

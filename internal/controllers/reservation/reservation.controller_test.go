package reservationController

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

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

func newTestDB(t *testing.T) database.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:reservation_controller_%d?mode=memory&cache=shared",
		testDBCounter.Add(1),
	)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the
	// whole test.
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := database.DB{SQL: gormDB}
	require.NoError(t, db.MigrateModels())

	return db
}

func newTestController(t *testing.T) (ReservationControllerInterface, database.DB) {
	t.Helper()

	db := newTestDB(t)
	repos := repositories.New(db)
	testServices, err := services.New(db, config.Config{})
	require.NoError(t, err)

	controller := New(repos, testServices, config.Config{CancelWindowDays: 3}, db)
	return controller, db
}

func seedCustomer(t *testing.T, db database.DB, email string) {
	t.Helper()
	require.NoError(t, db.SQL.Create(&Customer{Email: email, Name: "Test Customer"}).Error)
}

func seedRooms(t *testing.T, db database.DB, numbers ...int) {
	t.Helper()

	room := &Room{Type: RoomTypeRegular, PricePerNight: 90, Bed: BedTypeDouble, Capacity: 2}
	require.NoError(t, db.SQL.Create(room).Error)

	for _, number := range numbers {
		specificRoom := &SpecificRoom{Number: number, Floor: number / 100, RoomID: room.ID}
		require.NoError(t, db.SQL.Create(specificRoom).Error)
	}
}

func seedReservation(t *testing.T, db database.DB, reservation *Reservation) *Reservation {
	t.Helper()

	if reservation.CheckedIn == "" {
		reservation.CheckedIn = BeforeCheckIn
	}
	require.NoError(t, db.SQL.Create(reservation).Error)
	return reservation
}

// date returns midnight UTC offset whole days from today.
func date(offsetDays int) time.Time {
	return today().AddDate(0, 0, offsetDays)
}

func assertAppError(t *testing.T, err error, status int, message string) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := err.(*apperror.Error)
	require.True(t, ok, "expected *apperror.Error, got %T", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func TestValidateReservation(t *testing.T) {
	valid := func() *Reservation {
		return &Reservation{
			NumPeople:     2,
			CheckIn:       time.Date(2023, 10, 20, 0, 0, 0, 0, time.UTC),
			CheckOut:      time.Date(2023, 10, 23, 0, 0, 0, 0, time.UTC),
			TotalPrice:    270,
			CustomerEmail: "guest@mail.com",
		}
	}

	t.Run("valid reservation passes", func(t *testing.T) {
		assert.NoError(t, ValidateReservation(valid()))
	})

	t.Run("checkIn after checkOut is rejected", func(t *testing.T) {
		reservation := valid()
		reservation.CheckIn = time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)

		err := ValidateReservation(reservation)
		assertAppError(t, err, fiber.StatusBadRequest, "invalid checkIn/checkOut dates")
	})

	t.Run("equal checkIn and checkOut passes", func(t *testing.T) {
		reservation := valid()
		reservation.CheckOut = reservation.CheckIn
		assert.NoError(t, ValidateReservation(reservation))
	})

	t.Run("non-positive people count is rejected", func(t *testing.T) {
		reservation := valid()
		reservation.NumPeople = -4

		err := ValidateReservation(reservation)
		assertAppError(t, err, fiber.StatusBadRequest, "invalid integer")
	})

	t.Run("zero people count is rejected", func(t *testing.T) {
		reservation := valid()
		reservation.NumPeople = 0

		err := ValidateReservation(reservation)
		assertAppError(t, err, fiber.StatusBadRequest, "invalid integer")
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		reservation := valid()
		reservation.TotalPrice = -5

		err := ValidateReservation(reservation)
		assertAppError(t, err, fiber.StatusBadRequest, "invalid integer")
	})

	t.Run("free reservation passes", func(t *testing.T) {
		reservation := valid()
		reservation.TotalPrice = 0
		assert.NoError(t, ValidateReservation(reservation))
	})
}

func TestReservationController_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates reservation with room links", func(t *testing.T) {
		controller, db := newTestController(t)
		seedCustomer(t, db, "guest@mail.com")
		seedRooms(t, db, 101, 102)

		reservation := &Reservation{
			NumPeople:     2,
			CheckIn:       date(5),
			CheckOut:      date(8),
			TotalPrice:    270,
			CustomerEmail: "guest@mail.com",
		}

		created, err := controller.Create(ctx, reservation, []int{101, 102})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, BeforeCheckIn, created.CheckedIn)

		var reservedRooms []ReservedRoom
		require.NoError(
			t,
			db.SQL.Find(&reservedRooms, "reservation_id = ?", created.ID).Error,
		)
		assert.Len(t, reservedRooms, 2)
	})

	t.Run("unknown customer is rejected", func(t *testing.T) {
		controller, _ := newTestController(t)

		reservation := &Reservation{
			NumPeople:     1,
			CheckIn:       date(5),
			CheckOut:      date(6),
			TotalPrice:    90,
			CustomerEmail: "stranger@mail.com",
		}

		_, err := controller.Create(ctx, reservation, nil)
		assertAppError(t, err, fiber.StatusBadRequest, "customer does not exist.")
	})

	t.Run("unknown room rolls the whole reservation back", func(t *testing.T) {
		controller, db := newTestController(t)
		seedCustomer(t, db, "guest@mail.com")
		seedRooms(t, db, 101)

		reservation := &Reservation{
			NumPeople:     2,
			CheckIn:       date(5),
			CheckOut:      date(8),
			TotalPrice:    270,
			CustomerEmail: "guest@mail.com",
		}

		_, err := controller.Create(ctx, reservation, []int{101, 999})
		assertAppError(t, err, fiber.StatusBadRequest, "room does not exist.")

		var count int64
		require.NoError(t, db.SQL.Model(&Reservation{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestReservationController_CheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("checks in a pending reservation", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     2,
			CheckIn:       date(0),
			CheckOut:      date(3),
			TotalPrice:    270,
			CustomerEmail: "guest@mail.com",
		})

		updated, err := controller.CheckIn(ctx, reservation.ID)
		require.NoError(t, err)
		assert.Equal(t, CheckedIn, updated.CheckedIn)
	})

	t.Run("second check-in is rejected", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     2,
			CheckIn:       date(0),
			CheckOut:      date(3),
			TotalPrice:    270,
			CustomerEmail: "guest@mail.com",
		})

		_, err := controller.CheckIn(ctx, reservation.ID)
		require.NoError(t, err)

		_, err = controller.CheckIn(ctx, reservation.ID)
		assertAppError(t, err, fiber.StatusBadRequest, "already checked in")
	})

	t.Run("unknown reservation is not found", func(t *testing.T) {
		controller, _ := newTestController(t)

		_, err := controller.CheckIn(ctx, 404)
		assertAppError(t, err, fiber.StatusNotFound, "reservation not in the system.")
	})
}

func TestReservationController_CheckOut(t *testing.T) {
	ctx := context.Background()

	t.Run("checks out a checked-in reservation", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     2,
			CheckIn:       date(0),
			CheckOut:      date(3),
			TotalPrice:    270,
			CustomerEmail: "guest@mail.com",
			CheckedIn:     CheckedIn,
		})

		updated, err := controller.CheckOut(ctx, reservation.ID)
		require.NoError(t, err)
		assert.Equal(t, CheckedOut, updated.CheckedIn)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     2,
			CheckIn:       date(0),
			CheckOut:      date(3),
			TotalPrice:    270,
			CustomerEmail: "guest@mail.com",
		})

		_, err := controller.CheckOut(ctx, reservation.ID)
		assertAppError(t, err, fiber.StatusBadRequest, "pending reservation, not checked in")
	})

	t.Run("second check-out is rejected", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     2,
			CheckIn:       date(0),
			CheckOut:      date(3),
			TotalPrice:    270,
			CustomerEmail: "guest@mail.com",
			CheckedIn:     CheckedOut,
		})

		_, err := controller.CheckOut(ctx, reservation.ID)
		assertAppError(t, err, fiber.StatusBadRequest, "already checked out")
	})
}

func TestReservationController_NoShow(t *testing.T) {
	ctx := context.Background()

	t.Run("marks a pending reservation as no-show", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     1,
			CheckIn:       date(-1),
			CheckOut:      date(1),
			TotalPrice:    90,
			CustomerEmail: "guest@mail.com",
		})

		updated, err := controller.NoShow(ctx, reservation.ID)
		require.NoError(t, err)
		assert.Equal(t, NoShow, updated.CheckedIn)
	})

	t.Run("checked-in reservation cannot be a no-show", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     1,
			CheckIn:       date(-1),
			CheckOut:      date(1),
			TotalPrice:    90,
			CustomerEmail: "guest@mail.com",
			CheckedIn:     CheckedIn,
		})

		_, err := controller.NoShow(ctx, reservation.ID)
		assertAppError(
			t,
			err,
			fiber.StatusBadRequest,
			"customer is checkedIn or already checkedOut",
		)
	})
}

func TestReservationController_Pay(t *testing.T) {
	ctx := context.Background()

	t.Run("full payment settles the reservation", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     1,
			CheckIn:       date(1),
			CheckOut:      date(2),
			TotalPrice:    5,
			CustomerEmail: "guest@mail.com",
		})

		updated, err := controller.Pay(ctx, reservation.ID, 5)
		require.NoError(t, err)
		assert.True(t, updated.Paid)
		assert.Equal(t, 0, updated.TotalPrice)
	})

	t.Run("partial payments settle once the balance crosses zero", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     1,
			CheckIn:       date(1),
			CheckOut:      date(2),
			TotalPrice:    5,
			CustomerEmail: "guest@mail.com",
		})

		updated, err := controller.Pay(ctx, reservation.ID, 3)
		require.NoError(t, err)
		assert.False(t, updated.Paid)
		assert.Equal(t, 2, updated.TotalPrice)

		updated, err = controller.Pay(ctx, reservation.ID, 2)
		require.NoError(t, err)
		assert.True(t, updated.Paid)
		assert.Equal(t, 0, updated.TotalPrice)
	})

	t.Run("overpayment settles and keeps the negative balance", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     1,
			CheckIn:       date(1),
			CheckOut:      date(2),
			TotalPrice:    5,
			CustomerEmail: "guest@mail.com",
		})

		updated, err := controller.Pay(ctx, reservation.ID, 8)
		require.NoError(t, err)
		assert.True(t, updated.Paid)
		assert.Equal(t, -3, updated.TotalPrice)
	})

	t.Run("paying a settled reservation is rejected", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     1,
			CheckIn:       date(1),
			CheckOut:      date(2),
			TotalPrice:    5,
			Paid:          true,
			CustomerEmail: "guest@mail.com",
		})

		_, err := controller.Pay(ctx, reservation.ID, 1)
		assertAppError(t, err, fiber.StatusBadRequest, "already paid")
	})
}

func TestReservationController_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancellation inside the window is rejected", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     2,
			CheckIn:       date(2),
			CheckOut:      date(4),
			TotalPrice:    180,
			CustomerEmail: "guest@mail.com",
		})

		err := controller.Cancel(ctx, reservation.ID)
		assertAppError(
			t,
			err,
			fiber.StatusBadRequest,
			"cannot cancel less than 72 hours before checkIn date",
		)
	})

	t.Run("cancellation removes the reservation and everything it owns", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     2,
			CheckIn:       date(5),
			CheckOut:      date(8),
			TotalPrice:    270,
			CustomerEmail: "guest@mail.com",
		})
		require.NoError(t, db.SQL.Create(&ReservedRoom{
			ReservationID: reservation.ID,
			RoomNumber:    101,
		}).Error)
		require.NoError(t, db.SQL.Create(&Request{
			Description:   "Extra towels",
			Status:        StatusPending,
			ReservationID: reservation.ID,
		}).Error)

		require.NoError(t, controller.Cancel(ctx, reservation.ID))

		_, err := controller.GetByID(ctx, reservation.ID)
		assertAppError(t, err, fiber.StatusNotFound, "reservation not in the system.")

		var reservedRooms []ReservedRoom
		require.NoError(
			t,
			db.SQL.Find(&reservedRooms, "reservation_id = ?", reservation.ID).Error,
		)
		assert.Empty(t, reservedRooms)

		var requests []Request
		require.NoError(
			t,
			db.SQL.Find(&requests, "reservation_id = ?", reservation.ID).Error,
		)
		assert.Empty(t, requests)
	})

	t.Run("cancellation exactly on the window boundary is allowed", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     1,
			CheckIn:       date(3),
			CheckOut:      date(5),
			TotalPrice:    90,
			CustomerEmail: "guest@mail.com",
		})

		assert.NoError(t, controller.Cancel(ctx, reservation.ID))
	})
}

func TestReservationController_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a reservation and its room links", func(t *testing.T) {
		controller, db := newTestController(t)
		reservation := seedReservation(t, db, &Reservation{
			NumPeople:     1,
			CheckIn:       date(1),
			CheckOut:      date(2),
			TotalPrice:    90,
			CustomerEmail: "guest@mail.com",
		})
		require.NoError(t, db.SQL.Create(&ReservedRoom{
			ReservationID: reservation.ID,
			RoomNumber:    101,
		}).Error)

		require.NoError(t, controller.Delete(ctx, reservation.ID))

		var reservedRooms []ReservedRoom
		require.NoError(
			t,
			db.SQL.Find(&reservedRooms, "reservation_id = ?", reservation.ID).Error,
		)
		assert.Empty(t, reservedRooms)
	})

	t.Run("deleting an unknown reservation is not found", func(t *testing.T) {
		controller, _ := newTestController(t)

		err := controller.Delete(ctx, 404)
		assertAppError(t, err, fiber.StatusNotFound, "reservation does not exist")
	})
}

func TestReservationController_MarkOverdueNoShows(t *testing.T) {
	ctx := context.Background()

	controller, db := newTestController(t)

	overdue := seedReservation(t, db, &Reservation{
		NumPeople:     1,
		CheckIn:       date(-5),
		CheckOut:      date(-2),
		TotalPrice:    90,
		CustomerEmail: "late@mail.com",
	})
	stillStaying := seedReservation(t, db, &Reservation{
		NumPeople:     1,
		CheckIn:       date(-1),
		CheckOut:      date(2),
		TotalPrice:    90,
		CustomerEmail: "guest@mail.com",
	})
	checkedIn := seedReservation(t, db, &Reservation{
		NumPeople:     1,
		CheckIn:       date(-5),
		CheckOut:      date(-2),
		TotalPrice:    90,
		CustomerEmail: "present@mail.com",
		CheckedIn:     CheckedIn,
	})

	updated, err := controller.MarkOverdueNoShows(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	fresh, err := controller.GetByID(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, NoShow, fresh.CheckedIn)

	fresh, err = controller.GetByID(ctx, stillStaying.ID)
	require.NoError(t, err)
	assert.Equal(t, BeforeCheckIn, fresh.CheckedIn)

	fresh, err = controller.GetByID(ctx, checkedIn.ID)
	require.NoError(t, err)
	assert.Equal(t, CheckedIn, fresh.CheckedIn)
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, daysUntil(today()))
	assert.Equal(t, 3, daysUntil(date(3)))
	assert.Equal(t, -2, daysUntil(date(-2)))
}

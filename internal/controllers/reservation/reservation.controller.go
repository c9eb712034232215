package reservationController

import (
	"context"
	"errors"
	"time"

	"hotelsys/config"
	"hotelsys/internal/apperror"
	"hotelsys/internal/database"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"
	"hotelsys/internal/repositories"
	"hotelsys/internal/services"

	"gorm.io/gorm"
)

type ReservationController struct {
	reservationRepo  repositories.ReservationRepository
	reservedRoomRepo repositories.ReservedRoomRepository
	requestRepo      repositories.RequestRepository
	customerRepo     repositories.CustomerRepository
	specificRoomRepo repositories.SpecificRoomRepository
	transaction      *services.TransactionService
	db               database.DB
	Config           config.Config
	log              logger.Logger
}

type ReservationControllerInterface interface {
	GetAll(ctx context.Context) ([]*Reservation, error)
	GetByID(ctx context.Context, id int) (*Reservation, error)
	GetByCustomer(ctx context.Context, email string) ([]*Reservation, error)
	GetNotPaid(ctx context.Context) ([]*Reservation, error)
	Create(ctx context.Context, reservation *Reservation, roomNumbers []int) (*Reservation, error)
	CheckIn(ctx context.Context, id int) (*Reservation, error)
	CheckOut(ctx context.Context, id int) (*Reservation, error)
	NoShow(ctx context.Context, id int) (*Reservation, error)
	Pay(ctx context.Context, id int, amount int) (*Reservation, error)
	Cancel(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	MarkOverdueNoShows(ctx context.Context) (int, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) ReservationControllerInterface {
	return &ReservationController{
		reservationRepo:  repos.Reservation,
		reservedRoomRepo: repos.ReservedRoom,
		requestRepo:      repos.Request,
		customerRepo:     repos.Customer,
		specificRoomRepo: repos.SpecificRoom,
		transaction:      services.Transaction,
		db:               db,
		Config:           config,
		log:              logger.New("reservationController"),
	}
}

// ValidateReservation checks a candidate reservation's fields before it is
// persisted. Pure; evaluation stops at the first violated rule.
func ValidateReservation(reservation *Reservation) error {
	if reservation.CheckIn.After(reservation.CheckOut) {
		return apperror.BadRequest("invalid checkIn/checkOut dates")
	}

	if reservation.NumPeople <= 0 || reservation.TotalPrice < 0 {
		return apperror.BadRequest("invalid integer")
	}

	return nil
}

func (rc *ReservationController) GetAll(ctx context.Context) ([]*Reservation, error) {
	return rc.reservationRepo.GetAll(ctx, rc.db.SQL)
}

func (rc *ReservationController) GetByID(ctx context.Context, id int) (*Reservation, error) {
	reservation, err := rc.reservationRepo.GetByID(ctx, rc.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("reservation not in the system.")
		}
		return nil, err
	}

	return reservation, nil
}

func (rc *ReservationController) GetByCustomer(
	ctx context.Context,
	email string,
) ([]*Reservation, error) {
	return rc.reservationRepo.GetByCustomerEmail(ctx, rc.db.SQL, email)
}

func (rc *ReservationController) GetNotPaid(ctx context.Context) ([]*Reservation, error) {
	return rc.reservationRepo.GetNotPaid(ctx, rc.db.SQL)
}

func (rc *ReservationController) Create(
	ctx context.Context,
	reservation *Reservation,
	roomNumbers []int,
) (*Reservation, error) {
	log := rc.log.Function("Create")

	if err := ValidateReservation(reservation); err != nil {
		return nil, err
	}

	if _, err := rc.customerRepo.GetByEmail(ctx, rc.db.SQL, reservation.CustomerEmail); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.BadRequest("customer does not exist.")
		}
		return nil, err
	}

	reservation.CheckedIn = BeforeCheckIn

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.reservationRepo.Create(ctx, tx, reservation); err != nil {
			return err
		}

		for _, number := range roomNumbers {
			if _, err := rc.specificRoomRepo.GetByNumber(ctx, tx, number); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.BadRequest("room does not exist.")
				}
				return err
			}

			reservedRoom := &ReservedRoom{
				ReservationID: reservation.ID,
				RoomNumber:    number,
			}
			if err := rc.reservedRoomRepo.Create(ctx, tx, reservedRoom); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(
		"Reservation created",
		"id",
		reservation.ID,
		"customerEmail",
		reservation.CustomerEmail,
		"rooms",
		len(roomNumbers),
	)

	return reservation, nil
}

func (rc *ReservationController) CheckIn(ctx context.Context, id int) (*Reservation, error) {
	log := rc.log.Function("CheckIn")

	var reservation *Reservation
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		reservation, err = rc.getForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if !reservation.CheckedIn.CanTransition(CheckedIn) {
			if reservation.CheckedIn == CheckedIn {
				return apperror.BadRequest("already checked in")
			}
			return apperror.BadRequest("already checked out")
		}

		reservation.CheckedIn = CheckedIn
		return rc.reservationRepo.Update(ctx, tx, reservation)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Reservation checked in", "id", id)
	return reservation, nil
}

func (rc *ReservationController) CheckOut(ctx context.Context, id int) (*Reservation, error) {
	log := rc.log.Function("CheckOut")

	var reservation *Reservation
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		reservation, err = rc.getForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if !reservation.CheckedIn.CanTransition(CheckedOut) {
			if reservation.CheckedIn == CheckedOut {
				return apperror.BadRequest("already checked out")
			}
			return apperror.BadRequest("pending reservation, not checked in")
		}

		reservation.CheckedIn = CheckedOut
		return rc.reservationRepo.Update(ctx, tx, reservation)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Reservation checked out", "id", id)
	return reservation, nil
}

func (rc *ReservationController) NoShow(ctx context.Context, id int) (*Reservation, error) {
	log := rc.log.Function("NoShow")

	var reservation *Reservation
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		reservation, err = rc.getForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if !reservation.CheckedIn.CanTransition(NoShow) {
			return apperror.BadRequest("customer is checkedIn or already checkedOut")
		}

		reservation.CheckedIn = NoShow
		return rc.reservationRepo.Update(ctx, tx, reservation)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Reservation marked as no-show", "id", id)
	return reservation, nil
}

// Pay applies a partial or full payment. TotalPrice carries the remaining
// balance; settlement happens when it crosses zero, and an overpayment stays
// on the reservation as a negative balance.
func (rc *ReservationController) Pay(
	ctx context.Context,
	id int,
	amount int,
) (*Reservation, error) {
	log := rc.log.Function("Pay")

	var reservation *Reservation
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		reservation, err = rc.getForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if reservation.Paid {
			return apperror.BadRequest("already paid")
		}

		reservation.TotalPrice -= amount
		if reservation.TotalPrice <= 0 {
			reservation.Paid = true
		}

		return rc.reservationRepo.Update(ctx, tx, reservation)
	})
	if err != nil {
		return nil, err
	}

	log.Info(
		"Payment applied",
		"id",
		id,
		"amount",
		amount,
		"remaining",
		reservation.TotalPrice,
		"paid",
		reservation.Paid,
	)

	return reservation, nil
}

func (rc *ReservationController) Cancel(ctx context.Context, id int) error {
	log := rc.log.Function("Cancel")

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		reservation, err := rc.getForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if daysUntil(reservation.CheckIn) < rc.Config.CancelWindowDays {
			return apperror.BadRequest("cannot cancel less than 72 hours before checkIn date")
		}

		return rc.cascadeDelete(ctx, tx, reservation.ID)
	})
	if err != nil {
		return err
	}

	log.Info("Reservation cancelled", "id", id)
	return nil
}

func (rc *ReservationController) Delete(ctx context.Context, id int) error {
	log := rc.log.Function("Delete")

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := rc.reservationRepo.GetByID(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("reservation does not exist")
			}
			return err
		}

		return rc.cascadeDelete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	log.Info("Reservation deleted", "id", id)
	return nil
}

// MarkOverdueNoShows flips every reservation whose stay window has passed
// without a check-in to NoShow. Returns the number of reservations updated.
func (rc *ReservationController) MarkOverdueNoShows(ctx context.Context) (int, error) {
	log := rc.log.Function("MarkOverdueNoShows")

	var updated int
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		overdue, err := rc.reservationRepo.GetOverdueArrivals(ctx, tx, today())
		if err != nil {
			return err
		}

		for _, reservation := range overdue {
			if !reservation.CheckedIn.CanTransition(NoShow) {
				continue
			}

			reservation.CheckedIn = NoShow
			if err := rc.reservationRepo.Update(ctx, tx, reservation); err != nil {
				return err
			}
			updated++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if updated > 0 {
		log.Info("Overdue reservations marked as no-show", "count", updated)
	}

	return updated, nil
}

// cascadeDelete removes the reservation and everything it owns. Room links
// go first, then requests, then the reservation row itself; the order
// satisfies referential constraints in the backing store.
func (rc *ReservationController) cascadeDelete(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) error {
	if err := rc.reservedRoomRepo.DeleteByReservationID(ctx, tx, id); err != nil {
		return err
	}

	if err := rc.requestRepo.DeleteByReservationID(ctx, tx, id); err != nil {
		return err
	}

	return rc.reservationRepo.Delete(ctx, tx, id)
}

func (rc *ReservationController) getForUpdate(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) (*Reservation, error) {
	reservation, err := rc.reservationRepo.GetByID(ctx, tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("reservation not in the system.")
		}
		return nil, err
	}

	return reservation, nil
}

// daysUntil counts whole calendar days from today to the given date,
// negative when the date is in the past.
func daysUntil(date time.Time) int {
	return int(truncateToDay(date).Sub(today()).Hours() / 24)
}

func today() time.Time {
	return truncateToDay(time.Now().UTC())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package repositories

import (
	"context"
	"time"

	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type ReservationRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Reservation, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Reservation, error)
	GetByCustomerEmail(ctx context.Context, tx *gorm.DB, email string) ([]*Reservation, error)
	GetNotPaid(ctx context.Context, tx *gorm.DB) ([]*Reservation, error)
	GetOverdueArrivals(ctx context.Context, tx *gorm.DB, cutoff time.Time) ([]*Reservation, error)
	Create(ctx context.Context, tx *gorm.DB, reservation *Reservation) error
	Update(ctx context.Context, tx *gorm.DB, reservation *Reservation) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type reservationRepository struct {
	log logger.Logger
}

func NewReservationRepository() ReservationRepository {
	return &reservationRepository{
		log: logger.New("reservationRepository"),
	}
}

func (r *reservationRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Reservation, error) {
	log := r.log.Function("GetAll")

	var reservations []*Reservation
	if err := tx.WithContext(ctx).
		Order("check_in ASC").
		Find(&reservations).Error; err != nil {
		return nil, log.Err("failed to get all reservations", err)
	}

	return reservations, nil
}

func (r *reservationRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) (*Reservation, error) {
	log := r.log.Function("GetByID")

	var reservation Reservation
	if err := tx.WithContext(ctx).First(&reservation, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get reservation by ID", err, "id", id)
	}

	return &reservation, nil
}

func (r *reservationRepository) GetByCustomerEmail(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) ([]*Reservation, error) {
	log := r.log.Function("GetByCustomerEmail")

	var reservations []*Reservation
	if err := tx.WithContext(ctx).
		Where("customer_email = ?", email).
		Order("check_in ASC").
		Find(&reservations).Error; err != nil {
		return nil, log.Err("failed to get reservations by customer", err, "email", email)
	}

	return reservations, nil
}

func (r *reservationRepository) GetNotPaid(
	ctx context.Context,
	tx *gorm.DB,
) ([]*Reservation, error) {
	log := r.log.Function("GetNotPaid")

	var reservations []*Reservation
	if err := tx.WithContext(ctx).
		Where("paid = ?", false).
		Order("check_in ASC").
		Find(&reservations).Error; err != nil {
		return nil, log.Err("failed to get unpaid reservations", err)
	}

	return reservations, nil
}

// GetOverdueArrivals returns reservations still awaiting check-in whose
// stay window has fully passed (check-out date before the cutoff).
func (r *reservationRepository) GetOverdueArrivals(
	ctx context.Context,
	tx *gorm.DB,
	cutoff time.Time,
) ([]*Reservation, error) {
	log := r.log.Function("GetOverdueArrivals")

	var reservations []*Reservation
	if err := tx.WithContext(ctx).
		Where("checked_in = ? AND check_out < ?", BeforeCheckIn, cutoff).
		Find(&reservations).Error; err != nil {
		return nil, log.Err("failed to get overdue arrivals", err, "cutoff", cutoff)
	}

	return reservations, nil
}

func (r *reservationRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	reservation *Reservation,
) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(reservation).Error; err != nil {
		return log.Err(
			"failed to create reservation",
			err,
			"customerEmail",
			reservation.CustomerEmail,
		)
	}

	return nil
}

func (r *reservationRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	reservation *Reservation,
) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(reservation).Error; err != nil {
		return log.Err("failed to update reservation", err, "id", reservation.ID)
	}

	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Reservation{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete reservation", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

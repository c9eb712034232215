package repositories

import (
	"context"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type RequestRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Request, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Request, error)
	GetByReservationID(ctx context.Context, tx *gorm.DB, reservationID int) ([]*Request, error)
	Create(ctx context.Context, tx *gorm.DB, request *Request) error
	Update(ctx context.Context, tx *gorm.DB, request *Request) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
	DeleteByReservationID(ctx context.Context, tx *gorm.DB, reservationID int) error
}

type requestRepository struct {
	log logger.Logger
}

func NewRequestRepository() RequestRepository {
	return &requestRepository{
		log: logger.New("requestRepository"),
	}
}

func (r *requestRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Request, error) {
	log := r.log.Function("GetAll")

	var requests []*Request
	if err := tx.WithContext(ctx).Find(&requests).Error; err != nil {
		return nil, log.Err("failed to get all requests", err)
	}

	return requests, nil
}

func (r *requestRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Request, error) {
	log := r.log.Function("GetByID")

	var request Request
	if err := tx.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get request by ID", err, "id", id)
	}

	return &request, nil
}

func (r *requestRepository) GetByReservationID(
	ctx context.Context,
	tx *gorm.DB,
	reservationID int,
) ([]*Request, error) {
	log := r.log.Function("GetByReservationID")

	var requests []*Request
	if err := tx.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Find(&requests).Error; err != nil {
		return nil, log.Err(
			"failed to get requests by reservation",
			err,
			"reservationID",
			reservationID,
		)
	}

	return requests, nil
}

func (r *requestRepository) Create(ctx context.Context, tx *gorm.DB, request *Request) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(request).Error; err != nil {
		return log.Err("failed to create request", err, "reservationID", request.ReservationID)
	}

	return nil
}

func (r *requestRepository) Update(ctx context.Context, tx *gorm.DB, request *Request) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(request).Error; err != nil {
		return log.Err("failed to update request", err, "id", request.ID)
	}

	return nil
}

func (r *requestRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Request{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete request", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *requestRepository) DeleteByReservationID(
	ctx context.Context,
	tx *gorm.DB,
	reservationID int,
) error {
	log := r.log.Function("DeleteByReservationID")

	if err := tx.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Delete(&Request{}).Error; err != nil {
		return log.Err(
			"failed to delete requests by reservation",
			err,
			"reservationID",
			reservationID,
		)
	}

	return nil
}

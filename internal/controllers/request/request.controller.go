package requestController

import (
	"context"
	"errors"

	"hotelsys/config"
	"hotelsys/internal/apperror"
	"hotelsys/internal/database"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"
	"hotelsys/internal/repositories"
	"hotelsys/internal/services"

	"gorm.io/gorm"
)

type RequestController struct {
	requestRepo     repositories.RequestRepository
	reservationRepo repositories.ReservationRepository
	transaction     *services.TransactionService
	db              database.DB
	Config          config.Config
	log             logger.Logger
}

type RequestControllerInterface interface {
	GetAll(ctx context.Context) ([]*Request, error)
	GetByID(ctx context.Context, id int) (*Request, error)
	GetByReservation(ctx context.Context, reservationID int) ([]*Request, error)
	Create(ctx context.Context, request *Request) (*Request, error)
	SetStatus(ctx context.Context, id int, status CompletionStatus) (*Request, error)
	Delete(ctx context.Context, id int) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) RequestControllerInterface {
	return &RequestController{
		requestRepo:     repos.Request,
		reservationRepo: repos.Reservation,
		transaction:     services.Transaction,
		db:              db,
		Config:          config,
		log:             logger.New("requestController"),
	}
}

func (rc *RequestController) GetAll(ctx context.Context) ([]*Request, error) {
	return rc.requestRepo.GetAll(ctx, rc.db.SQL)
}

func (rc *RequestController) GetByID(ctx context.Context, id int) (*Request, error) {
	request, err := rc.requestRepo.GetByID(ctx, rc.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Request not found.")
		}
		return nil, err
	}

	return request, nil
}

func (rc *RequestController) GetByReservation(
	ctx context.Context,
	reservationID int,
) ([]*Request, error) {
	return rc.requestRepo.GetByReservationID(ctx, rc.db.SQL, reservationID)
}

func (rc *RequestController) Create(ctx context.Context, request *Request) (*Request, error) {
	log := rc.log.Function("Create")

	if request.Description == "" {
		return nil, apperror.BadRequest("Description cannot be empty.")
	}

	if request.Status == "" {
		request.Status = StatusPending
	}
	if !request.Status.IsValid() {
		return nil, apperror.BadRequest("Invalid status.")
	}

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := rc.reservationRepo.GetByID(ctx, tx, request.ReservationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("reservation does not exist")
			}
			return err
		}

		return rc.requestRepo.Create(ctx, tx, request)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Request created", "id", request.ID, "reservationID", request.ReservationID)
	return request, nil
}

// SetStatus moves the request to any known status; transitions between
// statuses are deliberately unconstrained.
func (rc *RequestController) SetStatus(
	ctx context.Context,
	id int,
	status CompletionStatus,
) (*Request, error) {
	log := rc.log.Function("SetStatus")

	if !status.IsValid() {
		return nil, apperror.BadRequest("Invalid status.")
	}

	var request *Request
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		request, err = rc.requestRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Request not found.")
			}
			return err
		}

		request.Status = status
		return rc.requestRepo.Update(ctx, tx, request)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Request status updated", "id", id, "status", status)
	return request, nil
}

func (rc *RequestController) Delete(ctx context.Context, id int) error {
	log := rc.log.Function("Delete")

	if err := rc.requestRepo.Delete(ctx, rc.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Request not found.")
		}
		return err
	}

	log.Info("Request deleted", "id", id)
	return nil
}

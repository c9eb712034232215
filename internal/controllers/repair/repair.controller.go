package repairController

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

type RepairController struct {
	repairRepo   repositories.RepairRepository
	employeeRepo repositories.EmployeeRepository
	transaction  *services.TransactionService
	db           database.DB
	Config       config.Config
	log          logger.Logger
}

type RepairControllerInterface interface {
	GetAll(ctx context.Context) ([]*Repair, error)
	GetByID(ctx context.Context, id int) (*Repair, error)
	GetByEmployee(ctx context.Context, email string) ([]*Repair, error)
	Create(ctx context.Context, repair *Repair) (*Repair, error)
	SetStatus(ctx context.Context, id int, status CompletionStatus) (*Repair, error)
	Delete(ctx context.Context, id int) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) RepairControllerInterface {
	return &RepairController{
		repairRepo:   repos.Repair,
		employeeRepo: repos.Employee,
		transaction:  services.Transaction,
		db:           db,
		Config:       config,
		log:          logger.New("repairController"),
	}
}

func (rc *RepairController) GetAll(ctx context.Context) ([]*Repair, error) {
	return rc.repairRepo.GetAll(ctx, rc.db.SQL)
}

func (rc *RepairController) GetByID(ctx context.Context, id int) (*Repair, error) {
	repair, err := rc.repairRepo.GetByID(ctx, rc.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Repair not found.")
		}
		return nil, err
	}

	return repair, nil
}

func (rc *RepairController) GetByEmployee(ctx context.Context, email string) ([]*Repair, error) {
	return rc.repairRepo.GetByEmployeeEmail(ctx, rc.db.SQL, email)
}

func (rc *RepairController) Create(ctx context.Context, repair *Repair) (*Repair, error) {
	log := rc.log.Function("Create")

	if repair.Description == "" {
		return nil, apperror.BadRequest("Description cannot be empty.")
	}

	if repair.Status == "" {
		repair.Status = StatusPending
	}
	if !repair.Status.IsValid() {
		return nil, apperror.BadRequest("Invalid status.")
	}

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		exists, err := rc.employeeRepo.Exists(ctx, tx, repair.EmployeeEmail)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.BadRequest("Employee does not exist.")
		}

		return rc.repairRepo.Create(ctx, tx, repair)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Repair created", "id", repair.ID, "employeeEmail", repair.EmployeeEmail)
	return repair, nil
}

// SetStatus moves the repair to any known status; transitions between
// statuses are deliberately unconstrained.
func (rc *RepairController) SetStatus(
	ctx context.Context,
	id int,
	status CompletionStatus,
) (*Repair, error) {
	log := rc.log.Function("SetStatus")

	if !status.IsValid() {
		return nil, apperror.BadRequest("Invalid status.")
	}

	var repair *Repair
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		repair, err = rc.repairRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Repair not found.")
			}
			return err
		}

		repair.Status = status
		return rc.repairRepo.Update(ctx, tx, repair)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Repair status updated", "id", id, "status", status)
	return repair, nil
}

func (rc *RepairController) Delete(ctx context.Context, id int) error {
	log := rc.log.Function("Delete")

	if err := rc.repairRepo.Delete(ctx, rc.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Repair not found.")
		}
		return err
	}

	log.Info("Repair deleted", "id", id)
	return nil
}

package shiftController

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

type ShiftController struct {
	shiftRepo    repositories.ShiftRepository
	employeeRepo repositories.EmployeeRepository
	transaction  *services.TransactionService
	db           database.DB
	Config       config.Config
	log          logger.Logger
}

type ShiftControllerInterface interface {
	GetAll(ctx context.Context) ([]*Shift, error)
	GetByID(ctx context.Context, id int) (*Shift, error)
	GetByEmployee(ctx context.Context, email string) ([]*Shift, error)
	GetByDate(ctx context.Context, date time.Time) ([]*Shift, error)
	GetByDateAndStartTime(ctx context.Context, date, startTime time.Time) ([]*Shift, error)
	Create(ctx context.Context, shift *Shift) (*Shift, error)
	Update(ctx context.Context, shift *Shift) (*Shift, error)
	Delete(ctx context.Context, id int) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) ShiftControllerInterface {
	return &ShiftController{
		shiftRepo:    repos.Shift,
		employeeRepo: repos.Employee,
		transaction:  services.Transaction,
		db:           db,
		Config:       config,
		log:          logger.New("shiftController"),
	}
}

// ValidateShift checks a candidate shift against its field rules and against
// the other shifts the store already holds. Both candidate lists arrive
// pre-scoped by the store query (same date + start time, same date); scoping
// to the candidate's employee happens here. Pure; first violation wins.
func ValidateShift(
	candidate *Shift,
	sameDateStartTime []*Shift,
	sameDate []*Shift,
) error {
	if candidate.Date.IsZero() || candidate.StartTime.IsZero() || candidate.EndTime.IsZero() {
		return apperror.BadRequest("Empty fields are present.")
	}

	if !candidate.StartTime.Before(candidate.EndTime) {
		return apperror.BadRequest("Invalid start/end times.")
	}

	for _, existing := range sameDateStartTime {
		if existing.ID == candidate.ID {
			continue
		}
		if existing.EmployeeEmail == candidate.EmployeeEmail {
			return apperror.Conflict(
				"A shift with this start date, start time, and employee already exists.",
			)
		}
	}

	for _, existing := range sameDate {
		if existing.ID == candidate.ID {
			continue
		}
		if existing.EmployeeEmail == candidate.EmployeeEmail && existing.Overlaps(candidate) {
			return apperror.Conflict("The employee has an overlapping shift on this date.")
		}
	}

	return nil
}

func (sc *ShiftController) GetAll(ctx context.Context) ([]*Shift, error) {
	shifts, err := sc.shiftRepo.GetAll(ctx, sc.db.SQL)
	if err != nil {
		return nil, err
	}

	if len(shifts) == 0 {
		return nil, apperror.NotFound("There are no shifts in the system.")
	}

	return shifts, nil
}

func (sc *ShiftController) GetByID(ctx context.Context, id int) (*Shift, error) {
	shift, err := sc.shiftRepo.GetByID(ctx, sc.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Shift not found.")
		}
		return nil, err
	}

	return shift, nil
}

func (sc *ShiftController) GetByEmployee(ctx context.Context, email string) ([]*Shift, error) {
	shifts, err := sc.shiftRepo.GetByEmployeeEmail(ctx, sc.db.SQL, email)
	if err != nil {
		return nil, err
	}

	if len(shifts) == 0 {
		return nil, apperror.NotFound("No shifts found for this email.")
	}

	return shifts, nil
}

func (sc *ShiftController) GetByDate(ctx context.Context, date time.Time) ([]*Shift, error) {
	shifts, err := sc.shiftRepo.GetByDate(ctx, sc.db.SQL, date)
	if err != nil {
		return nil, err
	}

	if len(shifts) == 0 {
		return nil, apperror.NotFound("No shifts found for this date.")
	}

	return shifts, nil
}

func (sc *ShiftController) GetByDateAndStartTime(
	ctx context.Context,
	date, startTime time.Time,
) ([]*Shift, error) {
	shifts, err := sc.shiftRepo.GetByDateAndStartTime(ctx, sc.db.SQL, date, startTime)
	if err != nil {
		return nil, err
	}

	if len(shifts) == 0 {
		return nil, apperror.NotFound("No shifts found for this date and start time.")
	}

	return shifts, nil
}

func (sc *ShiftController) Create(ctx context.Context, shift *Shift) (*Shift, error) {
	log := sc.log.Function("Create")

	err := sc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := sc.validateAgainstStore(ctx, tx, shift); err != nil {
			return err
		}

		return sc.shiftRepo.Create(ctx, tx, shift)
	})
	if err != nil {
		return nil, err
	}

	log.Info(
		"Shift created",
		"id",
		shift.ID,
		"employeeEmail",
		shift.EmployeeEmail,
		"date",
		shift.Date,
	)

	return shift, nil
}

func (sc *ShiftController) Update(ctx context.Context, shift *Shift) (*Shift, error) {
	log := sc.log.Function("Update")

	err := sc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := sc.shiftRepo.GetByID(ctx, tx, shift.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Shift does not exist.")
			}
			return err
		}

		if err := sc.validateAgainstStore(ctx, tx, shift); err != nil {
			return err
		}

		return sc.shiftRepo.Update(ctx, tx, shift)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Shift updated", "id", shift.ID)
	return shift, nil
}

func (sc *ShiftController) Delete(ctx context.Context, id int) error {
	log := sc.log.Function("Delete")

	if err := sc.shiftRepo.Delete(ctx, sc.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Shift does not exist.")
		}
		return err
	}

	log.Info("Shift deleted", "id", id)
	return nil
}

// validateAgainstStore runs the employee existence check and the pure field,
// duplicate and overlap validation inside the caller's transaction so a
// conflicting write cannot slip in between the read and the write.
func (sc *ShiftController) validateAgainstStore(
	ctx context.Context,
	tx *gorm.DB,
	shift *Shift,
) error {
	exists, err := sc.employeeRepo.Exists(ctx, tx, shift.EmployeeEmail)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.BadRequest("Employee does not exist.")
	}

	sameDateStartTime, err := sc.shiftRepo.GetByDateAndStartTime(
		ctx,
		tx,
		shift.Date,
		shift.StartTime,
	)
	if err != nil {
		return err
	}

	sameDate, err := sc.shiftRepo.GetByDate(ctx, tx, shift.Date)
	if err != nil {
		return err
	}

	return ValidateShift(shift, sameDateStartTime, sameDate)
}

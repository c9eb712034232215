package repositories

import (
	"context"
	"time"

	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Shift, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Shift, error)
	GetByEmployeeEmail(ctx context.Context, tx *gorm.DB, email string) ([]*Shift, error)
	GetByDate(ctx context.Context, tx *gorm.DB, date time.Time) ([]*Shift, error)
	GetByDateAndStartTime(
		ctx context.Context,
		tx *gorm.DB,
		date time.Time,
		startTime time.Time,
	) ([]*Shift, error)
	GetByEmployeeAndDate(
		ctx context.Context,
		tx *gorm.DB,
		email string,
		date time.Time,
	) ([]*Shift, error)
	Create(ctx context.Context, tx *gorm.DB, shift *Shift) error
	Update(ctx context.Context, tx *gorm.DB, shift *Shift) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type shiftRepository struct {
	log logger.Logger
}

func NewShiftRepository() ShiftRepository {
	return &shiftRepository{
		log: logger.New("shiftRepository"),
	}
}

func (r *shiftRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Shift, error) {
	log := r.log.Function("GetAll")

	var shifts []*Shift
	if err := tx.WithContext(ctx).
		Order("date ASC, start_time ASC").
		Find(&shifts).Error; err != nil {
		return nil, log.Err("failed to get all shifts", err)
	}

	return shifts, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Shift, error) {
	log := r.log.Function("GetByID")

	var shift Shift
	if err := tx.WithContext(ctx).First(&shift, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get shift by ID", err, "id", id)
	}

	return &shift, nil
}

func (r *shiftRepository) GetByEmployeeEmail(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) ([]*Shift, error) {
	log := r.log.Function("GetByEmployeeEmail")

	var shifts []*Shift
	if err := tx.WithContext(ctx).
		Where("employee_email = ?", email).
		Order("date ASC, start_time ASC").
		Find(&shifts).Error; err != nil {
		return nil, log.Err("failed to get shifts by employee", err, "email", email)
	}

	return shifts, nil
}

func (r *shiftRepository) GetByDate(
	ctx context.Context,
	tx *gorm.DB,
	date time.Time,
) ([]*Shift, error) {
	log := r.log.Function("GetByDate")

	var shifts []*Shift
	if err := tx.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&shifts).Error; err != nil {
		return nil, log.Err("failed to get shifts by date", err, "date", date)
	}

	return shifts, nil
}

func (r *shiftRepository) GetByDateAndStartTime(
	ctx context.Context,
	tx *gorm.DB,
	date time.Time,
	startTime time.Time,
) ([]*Shift, error) {
	log := r.log.Function("GetByDateAndStartTime")

	var shifts []*Shift
	if err := tx.WithContext(ctx).
		Where("date = ? AND start_time = ?", date, startTime).
		Find(&shifts).Error; err != nil {
		return nil, log.Err(
			"failed to get shifts by date and start time",
			err,
			"date",
			date,
			"startTime",
			startTime,
		)
	}

	return shifts, nil
}

func (r *shiftRepository) GetByEmployeeAndDate(
	ctx context.Context,
	tx *gorm.DB,
	email string,
	date time.Time,
) ([]*Shift, error) {
	log := r.log.Function("GetByEmployeeAndDate")

	var shifts []*Shift
	if err := tx.WithContext(ctx).
		Where("employee_email = ? AND date = ?", email, date).
		Order("start_time ASC").
		Find(&shifts).Error; err != nil {
		return nil, log.Err(
			"failed to get shifts by employee and date",
			err,
			"email",
			email,
			"date",
			date,
		)
	}

	return shifts, nil
}

func (r *shiftRepository) Create(ctx context.Context, tx *gorm.DB, shift *Shift) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(shift).Error; err != nil {
		return log.Err("failed to create shift", err, "employeeEmail", shift.EmployeeEmail)
	}

	return nil
}

func (r *shiftRepository) Update(ctx context.Context, tx *gorm.DB, shift *Shift) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(shift).Error; err != nil {
		return log.Err("failed to update shift", err, "id", shift.ID)
	}

	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Shift{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete shift", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

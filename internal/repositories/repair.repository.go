package repositories

import (
	"context"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type RepairRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Repair, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Repair, error)
	GetByEmployeeEmail(ctx context.Context, tx *gorm.DB, email string) ([]*Repair, error)
	Create(ctx context.Context, tx *gorm.DB, repair *Repair) error
	Update(ctx context.Context, tx *gorm.DB, repair *Repair) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type repairRepository struct {
	log logger.Logger
}

func NewRepairRepository() RepairRepository {
	return &repairRepository{
		log: logger.New("repairRepository"),
	}
}

func (r *repairRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Repair, error) {
	log := r.log.Function("GetAll")

	var repairs []*Repair
	if err := tx.WithContext(ctx).Find(&repairs).Error; err != nil {
		return nil, log.Err("failed to get all repairs", err)
	}

	return repairs, nil
}

func (r *repairRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Repair, error) {
	log := r.log.Function("GetByID")

	var repair Repair
	if err := tx.WithContext(ctx).First(&repair, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get repair by ID", err, "id", id)
	}

	return &repair, nil
}

func (r *repairRepository) GetByEmployeeEmail(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) ([]*Repair, error) {
	log := r.log.Function("GetByEmployeeEmail")

	var repairs []*Repair
	if err := tx.WithContext(ctx).
		Where("employee_email = ?", email).
		Find(&repairs).Error; err != nil {
		return nil, log.Err("failed to get repairs by employee", err, "email", email)
	}

	return repairs, nil
}

func (r *repairRepository) Create(ctx context.Context, tx *gorm.DB, repair *Repair) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(repair).Error; err != nil {
		return log.Err("failed to create repair", err, "employeeEmail", repair.EmployeeEmail)
	}

	return nil
}

func (r *repairRepository) Update(ctx context.Context, tx *gorm.DB, repair *Repair) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(repair).Error; err != nil {
		return log.Err("failed to update repair", err, "id", repair.ID)
	}

	return nil
}

func (r *repairRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Repair{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete repair", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

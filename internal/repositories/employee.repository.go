package repositories

import (
	"context"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Employee, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*Employee, error)
	Exists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, employee *Employee) error
	Update(ctx context.Context, tx *gorm.DB, employee *Employee) error
	Delete(ctx context.Context, tx *gorm.DB, email string) error
}

type employeeRepository struct {
	log logger.Logger
}

func NewEmployeeRepository() EmployeeRepository {
	return &employeeRepository{
		log: logger.New("employeeRepository"),
	}
}

func (r *employeeRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Employee, error) {
	log := r.log.Function("GetAll")

	var employees []*Employee
	if err := tx.WithContext(ctx).Preload("Account").Find(&employees).Error; err != nil {
		return nil, log.Err("failed to get all employees", err)
	}

	return employees, nil
}

func (r *employeeRepository) GetByEmail(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) (*Employee, error) {
	log := r.log.Function("GetByEmail")

	var employee Employee
	if err := tx.WithContext(ctx).
		Preload("Account").
		First(&employee, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get employee by email", err, "email", email)
	}

	return &employee, nil
}

func (r *employeeRepository) Exists(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) (bool, error) {
	log := r.log.Function("Exists")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, log.Err("failed to check employee existence", err, "email", email)
	}

	return count > 0, nil
}

func (r *employeeRepository) Create(ctx context.Context, tx *gorm.DB, employee *Employee) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(employee).Error; err != nil {
		return log.Err("failed to create employee", err, "email", employee.Email)
	}

	return nil
}

func (r *employeeRepository) Update(ctx context.Context, tx *gorm.DB, employee *Employee) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(employee).Error; err != nil {
		return log.Err("failed to update employee", err, "email", employee.Email)
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, tx *gorm.DB, email string) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Employee{}, "email = ?", email)
	if result.Error != nil {
		return log.Err("failed to delete employee", result.Error, "email", email)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

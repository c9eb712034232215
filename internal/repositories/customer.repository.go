package repositories

import (
	"context"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Customer, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*Customer, error)
	Exists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, customer *Customer) error
	Update(ctx context.Context, tx *gorm.DB, customer *Customer) error
	Delete(ctx context.Context, tx *gorm.DB, email string) error
}

type customerRepository struct {
	log logger.Logger
}

func NewCustomerRepository() CustomerRepository {
	return &customerRepository{
		log: logger.New("customerRepository"),
	}
}

func (r *customerRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Customer, error) {
	log := r.log.Function("GetAll")

	var customers []*Customer
	if err := tx.WithContext(ctx).Preload("Account").Find(&customers).Error; err != nil {
		return nil, log.Err("failed to get all customers", err)
	}

	return customers, nil
}

func (r *customerRepository) GetByEmail(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) (*Customer, error) {
	log := r.log.Function("GetByEmail")

	var customer Customer
	if err := tx.WithContext(ctx).
		Preload("Account").
		First(&customer, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get customer by email", err, "email", email)
	}

	return &customer, nil
}

func (r *customerRepository) Exists(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) (bool, error) {
	log := r.log.Function("Exists")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Customer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, log.Err("failed to check customer existence", err, "email", email)
	}

	return count > 0, nil
}

func (r *customerRepository) Create(ctx context.Context, tx *gorm.DB, customer *Customer) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(customer).Error; err != nil {
		return log.Err("failed to create customer", err, "email", customer.Email)
	}

	return nil
}

func (r *customerRepository) Update(ctx context.Context, tx *gorm.DB, customer *Customer) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(customer).Error; err != nil {
		return log.Err("failed to update customer", err, "email", customer.Email)
	}

	return nil
}

func (r *customerRepository) Delete(ctx context.Context, tx *gorm.DB, email string) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Customer{}, "email = ?", email)
	if result.Error != nil {
		return log.Err("failed to delete customer", result.Error, "email", email)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

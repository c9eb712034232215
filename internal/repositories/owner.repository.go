package repositories

import (
	"context"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type OwnerRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Owner, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*Owner, error)
	Exists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, owner *Owner) error
	Update(ctx context.Context, tx *gorm.DB, owner *Owner) error
	Delete(ctx context.Context, tx *gorm.DB, email string) error
}

type ownerRepository struct {
	log logger.Logger
}

func NewOwnerRepository() OwnerRepository {
	return &ownerRepository{
		log: logger.New("ownerRepository"),
	}
}

func (r *ownerRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Owner, error) {
	log := r.log.Function("GetAll")

	var owners []*Owner
	if err := tx.WithContext(ctx).Preload("Account").Find(&owners).Error; err != nil {
		return nil, log.Err("failed to get all owners", err)
	}

	return owners, nil
}

func (r *ownerRepository) GetByEmail(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) (*Owner, error) {
	log := r.log.Function("GetByEmail")

	var owner Owner
	if err := tx.WithContext(ctx).
		Preload("Account").
		First(&owner, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get owner by email", err, "email", email)
	}

	return &owner, nil
}

func (r *ownerRepository) Exists(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) (bool, error) {
	log := r.log.Function("Exists")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Owner{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, log.Err("failed to check owner existence", err, "email", email)
	}

	return count > 0, nil
}

func (r *ownerRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	log := r.log.Function("Count")

	var count int64
	if err := tx.WithContext(ctx).Model(&Owner{}).Count(&count).Error; err != nil {
		return 0, log.Err("failed to count owners", err)
	}

	return count, nil
}

func (r *ownerRepository) Create(ctx context.Context, tx *gorm.DB, owner *Owner) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(owner).Error; err != nil {
		return log.Err("failed to create owner", err, "email", owner.Email)
	}

	return nil
}

func (r *ownerRepository) Update(ctx context.Context, tx *gorm.DB, owner *Owner) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(owner).Error; err != nil {
		return log.Err("failed to update owner", err, "email", owner.Email)
	}

	return nil
}

func (r *ownerRepository) Delete(ctx context.Context, tx *gorm.DB, email string) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Owner{}, "email = ?", email)
	if result.Error != nil {
		return log.Err("failed to delete owner", result.Error, "email", email)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

package repositories

import (
	"context"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type AccountRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Account, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Account, error)
	Create(ctx context.Context, tx *gorm.DB, account *Account) error
	Update(ctx context.Context, tx *gorm.DB, account *Account) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type accountRepository struct {
	log logger.Logger
}

func NewAccountRepository() AccountRepository {
	return &accountRepository{
		log: logger.New("accountRepository"),
	}
}

func (r *accountRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Account, error) {
	log := r.log.Function("GetAll")

	var accounts []*Account
	if err := tx.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, log.Err("failed to get all accounts", err)
	}

	return accounts, nil
}

func (r *accountRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) (*Account, error) {
	log := r.log.Function("GetByID")

	var account Account
	if err := tx.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get account by ID", err, "id", id)
	}

	return &account, nil
}

func (r *accountRepository) Create(ctx context.Context, tx *gorm.DB, account *Account) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(account).Error; err != nil {
		return log.Err("failed to create account", err)
	}

	return nil
}

func (r *accountRepository) Update(ctx context.Context, tx *gorm.DB, account *Account) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(account).Error; err != nil {
		return log.Err("failed to update account", err, "id", account.ID)
	}

	return nil
}

func (r *accountRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Account{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete account", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

package accountController

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

type AccountController struct {
	accountRepo repositories.AccountRepository
	transaction *services.TransactionService
	db          database.DB
	Config      config.Config
	log         logger.Logger
}

type AccountControllerInterface interface {
	GetAll(ctx context.Context) ([]*Account, error)
	GetByID(ctx context.Context, id int) (*Account, error)
	Create(ctx context.Context, account *Account) (*Account, error)
	Update(ctx context.Context, account *Account) (*Account, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) AccountControllerInterface {
	return &AccountController{
		accountRepo: repos.Account,
		transaction: services.Transaction,
		db:          db,
		Config:      config,
		log:         logger.New("accountController"),
	}
}

func validateAccount(account *Account) error {
	if account.HasEmptyField() {
		return apperror.BadRequest("Empty field in the account")
	}

	if !account.HasValidPassword() {
		return apperror.BadRequest("Invalid Password")
	}

	return nil
}

func (ac *AccountController) GetAll(ctx context.Context) ([]*Account, error) {
	accounts, err := ac.accountRepo.GetAll(ctx, ac.db.SQL)
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, apperror.NotFound("There are no accounts in the system.")
	}

	return accounts, nil
}

func (ac *AccountController) GetByID(ctx context.Context, id int) (*Account, error) {
	account, err := ac.accountRepo.GetByID(ctx, ac.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Account not found.")
		}
		return nil, err
	}

	return account, nil
}

func (ac *AccountController) Create(ctx context.Context, account *Account) (*Account, error) {
	log := ac.log.Function("Create")

	if err := validateAccount(account); err != nil {
		return nil, err
	}

	if err := ac.accountRepo.Create(ctx, ac.db.SQL, account); err != nil {
		return nil, err
	}

	log.Info("Account created", "id", account.ID)
	return account, nil
}

func (ac *AccountController) Update(ctx context.Context, account *Account) (*Account, error) {
	log := ac.log.Function("Update")

	if err := validateAccount(account); err != nil {
		return nil, err
	}

	err := ac.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := ac.accountRepo.GetByID(ctx, tx, account.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Account not found.")
			}
			return err
		}

		return ac.accountRepo.Update(ctx, tx, account)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Account updated", "id", account.ID)
	return account, nil
}

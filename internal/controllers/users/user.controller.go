package userController

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

// UserController covers the three user kinds. One email may belong to at
// most one kind, and the system holds at most one owner.
type UserController struct {
	ownerRepo        repositories.OwnerRepository
	employeeRepo     repositories.EmployeeRepository
	customerRepo     repositories.CustomerRepository
	reservationRepo  repositories.ReservationRepository
	reservedRoomRepo repositories.ReservedRoomRepository
	requestRepo      repositories.RequestRepository
	transaction      *services.TransactionService
	db               database.DB
	Config           config.Config
	log              logger.Logger
}

type UserControllerInterface interface {
	GetAllOwners(ctx context.Context) ([]*Owner, error)
	GetOwner(ctx context.Context, email string) (*Owner, error)
	CreateOwner(ctx context.Context, owner *Owner) (*Owner, error)
	UpdateOwner(ctx context.Context, owner *Owner) (*Owner, error)

	GetAllEmployees(ctx context.Context) ([]*Employee, error)
	GetEmployee(ctx context.Context, email string) (*Employee, error)
	CreateEmployee(ctx context.Context, employee *Employee) (*Employee, error)
	UpdateEmployee(ctx context.Context, employee *Employee) (*Employee, error)
	DeleteEmployee(ctx context.Context, email string) error

	GetAllCustomers(ctx context.Context) ([]*Customer, error)
	GetCustomer(ctx context.Context, email string) (*Customer, error)
	CreateCustomer(ctx context.Context, customer *Customer) (*Customer, error)
	UpdateCustomer(ctx context.Context, customer *Customer) (*Customer, error)
	DeleteCustomer(ctx context.Context, email string) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) UserControllerInterface {
	return &UserController{
		ownerRepo:        repos.Owner,
		employeeRepo:     repos.Employee,
		customerRepo:     repos.Customer,
		reservationRepo:  repos.Reservation,
		reservedRoomRepo: repos.ReservedRoom,
		requestRepo:      repos.Request,
		transaction:      services.Transaction,
		db:               db,
		Config:           config,
		log:              logger.New("userController"),
	}
}

// emailTaken checks all three user kinds for the email.
func (uc *UserController) emailTaken(
	ctx context.Context,
	tx *gorm.DB,
	email string,
) (bool, error) {
	for _, check := range []func(context.Context, *gorm.DB, string) (bool, error){
		uc.ownerRepo.Exists,
		uc.employeeRepo.Exists,
		uc.customerRepo.Exists,
	} {
		taken, err := check(ctx, tx, email)
		if err != nil {
			return false, err
		}
		if taken {
			return true, nil
		}
	}

	return false, nil
}

func (uc *UserController) GetAllOwners(ctx context.Context) ([]*Owner, error) {
	owners, err := uc.ownerRepo.GetAll(ctx, uc.db.SQL)
	if err != nil {
		return nil, err
	}

	if len(owners) == 0 {
		return nil, apperror.NotFound("There are no owners in the system.")
	}

	return owners, nil
}

func (uc *UserController) GetOwner(ctx context.Context, email string) (*Owner, error) {
	owner, err := uc.ownerRepo.GetByEmail(ctx, uc.db.SQL, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Owner not found.")
		}
		return nil, err
	}

	return owner, nil
}

func (uc *UserController) CreateOwner(ctx context.Context, owner *Owner) (*Owner, error) {
	log := uc.log.Function("CreateOwner")

	err := uc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		count, err := uc.ownerRepo.Count(ctx, tx)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict("An owner already exists in the system.")
		}

		taken, err := uc.emailTaken(ctx, tx, owner.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperror.Conflict("A user with this email already exists.")
		}

		return uc.ownerRepo.Create(ctx, tx, owner)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Owner created", "email", owner.Email)
	return owner, nil
}

func (uc *UserController) UpdateOwner(ctx context.Context, owner *Owner) (*Owner, error) {
	log := uc.log.Function("UpdateOwner")

	err := uc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := uc.ownerRepo.GetByEmail(ctx, tx, owner.Email); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Owner not found.")
			}
			return err
		}

		return uc.ownerRepo.Update(ctx, tx, owner)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Owner updated", "email", owner.Email)
	return owner, nil
}

func (uc *UserController) GetAllEmployees(ctx context.Context) ([]*Employee, error) {
	return uc.employeeRepo.GetAll(ctx, uc.db.SQL)
}

func (uc *UserController) GetEmployee(ctx context.Context, email string) (*Employee, error) {
	employee, err := uc.employeeRepo.GetByEmail(ctx, uc.db.SQL, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Employee does not exist.")
		}
		return nil, err
	}

	return employee, nil
}

func (uc *UserController) CreateEmployee(
	ctx context.Context,
	employee *Employee,
) (*Employee, error) {
	log := uc.log.Function("CreateEmployee")

	err := uc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		taken, err := uc.emailTaken(ctx, tx, employee.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperror.Conflict("A user with this email already exists.")
		}

		return uc.employeeRepo.Create(ctx, tx, employee)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Employee created", "email", employee.Email)
	return employee, nil
}

func (uc *UserController) UpdateEmployee(
	ctx context.Context,
	employee *Employee,
) (*Employee, error) {
	log := uc.log.Function("UpdateEmployee")

	err := uc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := uc.employeeRepo.GetByEmail(ctx, tx, employee.Email); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Employee does not exist.")
			}
			return err
		}

		return uc.employeeRepo.Update(ctx, tx, employee)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Employee updated", "email", employee.Email)
	return employee, nil
}

func (uc *UserController) DeleteEmployee(ctx context.Context, email string) error {
	log := uc.log.Function("DeleteEmployee")

	if err := uc.employeeRepo.Delete(ctx, uc.db.SQL, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Employee does not exist.")
		}
		return err
	}

	log.Info("Employee deleted", "email", email)
	return nil
}

func (uc *UserController) GetAllCustomers(ctx context.Context) ([]*Customer, error) {
	return uc.customerRepo.GetAll(ctx, uc.db.SQL)
}

func (uc *UserController) GetCustomer(ctx context.Context, email string) (*Customer, error) {
	customer, err := uc.customerRepo.GetByEmail(ctx, uc.db.SQL, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Customer does not exist.")
		}
		return nil, err
	}

	return customer, nil
}

func (uc *UserController) CreateCustomer(
	ctx context.Context,
	customer *Customer,
) (*Customer, error) {
	log := uc.log.Function("CreateCustomer")

	err := uc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		taken, err := uc.emailTaken(ctx, tx, customer.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperror.Conflict("A user with this email already exists.")
		}

		return uc.customerRepo.Create(ctx, tx, customer)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Customer created", "email", customer.Email)
	return customer, nil
}

func (uc *UserController) UpdateCustomer(
	ctx context.Context,
	customer *Customer,
) (*Customer, error) {
	log := uc.log.Function("UpdateCustomer")

	err := uc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := uc.customerRepo.GetByEmail(ctx, tx, customer.Email); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Customer does not exist.")
			}
			return err
		}

		return uc.customerRepo.Update(ctx, tx, customer)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Customer updated", "email", customer.Email)
	return customer, nil
}

// DeleteCustomer removes the customer together with every reservation they
// hold, cascading each reservation's room links and requests first.
func (uc *UserController) DeleteCustomer(ctx context.Context, email string) error {
	log := uc.log.Function("DeleteCustomer")

	err := uc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := uc.customerRepo.GetByEmail(ctx, tx, email); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Customer does not exist.")
			}
			return err
		}

		reservations, err := uc.reservationRepo.GetByCustomerEmail(ctx, tx, email)
		if err != nil {
			return err
		}

		for _, reservation := range reservations {
			if err := uc.reservedRoomRepo.DeleteByReservationID(ctx, tx, reservation.ID); err != nil {
				return err
			}
			if err := uc.requestRepo.DeleteByReservationID(ctx, tx, reservation.ID); err != nil {
				return err
			}
			if err := uc.reservationRepo.Delete(ctx, tx, reservation.ID); err != nil {
				return err
			}
		}

		return uc.customerRepo.Delete(ctx, tx, email)
	})
	if err != nil {
		return err
	}

	log.Info("Customer deleted", "email", email)
	return nil
}

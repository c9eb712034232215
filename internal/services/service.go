package services

import (
	"hotelsys/config"
	"hotelsys/internal/database"
)

type Service struct {
	Transaction *TransactionService
	Scheduler   *SchedulerService
}

func New(db database.DB, config config.Config) (Service, error) {
	transactionService := NewTransactionService(db)
	schedulerService := NewSchedulerService()

	return Service{
		Transaction: transactionService,
		Scheduler:   schedulerService,
	}, nil
}

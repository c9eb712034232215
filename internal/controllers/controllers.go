package controllers

import (
	"hotelsys/config"
	"hotelsys/internal/database"
	"hotelsys/internal/repositories"
	"hotelsys/internal/services"

	accountController "hotelsys/internal/controllers/account"
	repairController "hotelsys/internal/controllers/repair"
	requestController "hotelsys/internal/controllers/request"
	reservationController "hotelsys/internal/controllers/reservation"
	roomController "hotelsys/internal/controllers/room"
	shiftController "hotelsys/internal/controllers/shift"
	userController "hotelsys/internal/controllers/users"
)

type Controllers struct {
	Account     accountController.AccountControllerInterface
	User        userController.UserControllerInterface
	Room        roomController.RoomControllerInterface
	Reservation reservationController.ReservationControllerInterface
	Request     requestController.RequestControllerInterface
	Repair      repairController.RepairControllerInterface
	Shift       shiftController.ShiftControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) Controllers {
	return Controllers{
		Account:     accountController.New(repos, services, config, db),
		User:        userController.New(repos, services, config, db),
		Room:        roomController.New(repos, services, config, db),
		Reservation: reservationController.New(repos, services, config, db),
		Request:     requestController.New(repos, services, config, db),
		Repair:      repairController.New(repos, services, config, db),
		Shift:       shiftController.New(repos, services, config, db),
	}
}

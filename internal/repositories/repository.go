package repositories

import (
	"hotelsys/internal/database"
)

type Repository struct {
	Account      AccountRepository
	Owner        OwnerRepository
	Employee     EmployeeRepository
	Customer     CustomerRepository
	Room         RoomRepository
	SpecificRoom SpecificRoomRepository
	Reservation  ReservationRepository
	ReservedRoom ReservedRoomRepository
	Request      RequestRepository
	Repair       RepairRepository
	Shift        ShiftRepository
}

func New(db database.DB) Repository {
	return Repository{
		Account:      NewAccountRepository(),
		Owner:        NewOwnerRepository(),
		Employee:     NewEmployeeRepository(),
		Customer:     NewCustomerRepository(),
		Room:         NewRoomRepository(db.Cache.Room), // room catalog is read-heavy, cache it
		SpecificRoom: NewSpecificRoomRepository(),
		Reservation:  NewReservationRepository(),
		ReservedRoom: NewReservedRoomRepository(),
		Request:      NewRequestRepository(),
		Repair:       NewRepairRepository(),
		Shift:        NewShiftRepository(),
	}
}

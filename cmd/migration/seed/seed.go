package seed

import (
	"hotelsys/config"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	if err := seedUsers(db, log); err != nil {
		return err
	}

	if err := seedSpecificRooms(db, log); err != nil {
		return err
	}

	return nil
}

func seedUsers(db *gorm.DB, log logger.Logger) error {
	owner := Owner{Email: "owner@hotel.test", Name: "Hotel Owner"}
	if err := db.FirstOrCreate(&owner, Owner{Email: owner.Email}).Error; err != nil {
		return log.Err("failed to seed owner", err)
	}

	employees := []Employee{
		{Email: "frontdesk@hotel.test", Name: "Front Desk", Salary: 2400},
		{Email: "maintenance@hotel.test", Name: "Maintenance", Salary: 2600},
	}
	for _, employee := range employees {
		if err := db.FirstOrCreate(&employee, Employee{Email: employee.Email}).Error; err != nil {
			return log.Err("failed to seed employee", err, "email", employee.Email)
		}
	}

	customers := []Customer{
		{Email: "guest@example.com", Name: "Test Guest"},
	}
	for _, customer := range customers {
		if err := db.FirstOrCreate(&customer, Customer{Email: customer.Email}).Error; err != nil {
			return log.Err("failed to seed customer", err, "email", customer.Email)
		}
	}

	log.Info("Seeded users", "employees", len(employees), "customers", len(customers))
	return nil
}

func seedSpecificRooms(db *gorm.DB, log logger.Logger) error {
	var rooms []Room
	if err := db.Find(&rooms).Error; err != nil {
		return log.Err("failed to load rooms for seeding", err)
	}

	roomIDsByType := make(map[RoomType]int, len(rooms))
	for _, room := range rooms {
		roomIDsByType[room.Type] = room.ID
	}

	specificRooms := []SpecificRoom{
		{Number: 101, Floor: 1, View: ViewTypeNone, OpenForUse: true, RoomID: roomIDsByType[RoomTypeRegular]},
		{Number: 102, Floor: 1, View: ViewTypeForest, OpenForUse: true, RoomID: roomIDsByType[RoomTypeRegular]},
		{Number: 201, Floor: 2, View: ViewTypeForest, OpenForUse: true, RoomID: roomIDsByType[RoomTypeDeluxe]},
		{Number: 301, Floor: 3, View: ViewTypeMountain, OpenForUse: true, RoomID: roomIDsByType[RoomTypeLuxury]},
		{Number: 401, Floor: 4, View: ViewTypeMountain, OpenForUse: true, RoomID: roomIDsByType[RoomTypeSuite]},
	}

	for _, specificRoom := range specificRooms {
		if specificRoom.RoomID == 0 {
			log.Warn("Skipping specific room, room type not initialized", "number", specificRoom.Number)
			continue
		}
		if err := db.FirstOrCreate(&specificRoom, SpecificRoom{Number: specificRoom.Number}).Error; err != nil {
			return log.Err("failed to seed specific room", err, "number", specificRoom.Number)
		}
	}

	log.Info("Seeded specific rooms", "count", len(specificRooms))
	return nil
}

package initialize

import (
	"hotelsys/config"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func InitializeTables(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data")

	if err := initializeRooms(db, log); err != nil {
		return log.Err("failed to initialize rooms", err)
	}

	log.Info("Table initialization complete")
	return nil
}

// initializeRooms seeds the four room categories the hotel offers. Existing
// rows are left untouched so price edits survive re-runs.
func initializeRooms(db *gorm.DB, log logger.Logger) error {
	log.Info("Initializing room reference data")

	rooms := getRoomsData()

	for _, room := range rooms {
		var existingRoom Room
		if err := db.First(&existingRoom, "type = ?", room.Type).Error; err == nil {
			log.Debug("Room already exists", "type", room.Type)
			continue
		}
		log.Info("Initializing room", "type", room.Type)
		if err := db.Create(&room).Error; err != nil {
			return log.Err("failed to create room", err, "type", room.Type)
		}
	}

	log.Info("Room reference data initialized", "count", len(rooms))
	return nil
}

func getRoomsData() []Room {
	return []Room{
		{
			Type:          RoomTypeSuite,
			PricePerNight: 320,
			Bed:           BedTypeKing,
			Capacity:      4,
			Amenities:     datatypes.JSON(`["wifi","minibar","balcony","jacuzzi"]`),
		},
		{
			Type:          RoomTypeLuxury,
			PricePerNight: 240,
			Bed:           BedTypeKing,
			Capacity:      3,
			Amenities:     datatypes.JSON(`["wifi","minibar","balcony"]`),
		},
		{
			Type:          RoomTypeDeluxe,
			PricePerNight: 160,
			Bed:           BedTypeQueen,
			Capacity:      2,
			Amenities:     datatypes.JSON(`["wifi","minibar"]`),
		},
		{
			Type:          RoomTypeRegular,
			PricePerNight: 90,
			Bed:           BedTypeDouble,
			Capacity:      2,
			Amenities:     datatypes.JSON(`["wifi"]`),
		},
	}
}

package database

import (
	"hotelsys/internal/logger"
	"hotelsys/internal/models"
)

// MigrateModels runs GORM AutoMigrate for all models
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	modelsToMigrate := []interface{}{
		&models.Account{},
		&models.Owner{},
		&models.Employee{},
		&models.Customer{},
		&models.Room{},
		&models.SpecificRoom{},
		&models.Reservation{},
		&models.ReservedRoom{},
		&models.Request{},
		&models.Repair{},
		&models.Shift{},
	}

	for _, model := range modelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			log.Error("Failed to migrate model", "model", model, "error", err)
			return err
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// CreateIndexes creates additional indexes that GORM doesn't create automatically
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_shifts_employee_date ON shifts(employee_email, date)",
		"CREATE INDEX IF NOT EXISTS idx_reservations_customer_status ON reservations(customer_email, checked_in)",
		"CREATE INDEX IF NOT EXISTS idx_reservations_paid ON reservations(paid)",
		"CREATE INDEX IF NOT EXISTS idx_requests_reservation ON requests(reservation_id)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}

	log.Info("Additional database indexes created")
	return nil
}

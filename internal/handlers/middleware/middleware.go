package middleware

import (
	"hotelsys/config"
	"hotelsys/internal/database"

	logger "github.com/Bparsons0904/goLogger"
)

type Middleware struct {
	DB     database.DB
	Config config.Config
	log    logger.Logger
}

func New(db database.DB, config config.Config) Middleware {
	log := logger.New("middleware")

	return Middleware{
		DB:     db,
		Config: config,
		log:    log,
	}
}

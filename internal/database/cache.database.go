package database

import (
	"context"
	"fmt"
	"time"

	"hotelsys/config"
	"hotelsys/internal/logger"

	"github.com/valkey-io/valkey-go"
)

// Valkey database index organization. Each index provides logical separation
// for a cache category.
const (
	// GENERAL_CACHE_INDEX (DB 0) - general purpose caching
	GENERAL_CACHE_INDEX = iota

	// ROOM_CACHE_INDEX (DB 1) - room type and specific room listings
	ROOM_CACHE_INDEX

	// RESERVATION_CACHE_INDEX (DB 2) - reservation lookups
	RESERVATION_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.Error("failed to initialize cache database", "reason", "address or port is empty")
	}

	var cacheDB Cache

	var err error
	cacheDB.General, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    GENERAL_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create general valkey client", err)
	}

	cacheDB.Room, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    ROOM_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create room valkey client", err)
	}

	cacheDB.Reservation, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    RESERVATION_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create reservation valkey client", err)
	}

	s.Cache = cacheDB

	if config.DatabaseCacheReset != -1 {
		go clearCacheDB(config.DatabaseCacheReset, cacheDB)
	}

	return nil
}

func clearCacheDB(index int, cacheDB Cache) {
	log := logger.New("database").File("cache.database").Function("clearCacheDB")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var client CacheClient
	var dbName string

	switch index {
	case GENERAL_CACHE_INDEX:
		client = cacheDB.General
		dbName = "General"
	case ROOM_CACHE_INDEX:
		client = cacheDB.Room
		dbName = "Room"
	case RESERVATION_CACHE_INDEX:
		client = cacheDB.Reservation
		dbName = "Reservation"
	default:
		log.Warn("Invalid cache database index", "index", index)
		return
	}

	if err := client.Do(ctx, client.B().Flushdb().Build()).Error(); err != nil {
		log.Er("Failed to clear cache database", err, "index", index, "dbName", dbName)
		return
	}

	log.Info("Successfully cleared cache database", "index", index, "dbName", dbName)
}

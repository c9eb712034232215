package repositories

import (
	"context"
	"time"

	"hotelsys/internal/database"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

const (
	ROOMS_CACHE_KEY    = "all"
	ROOMS_CACHE_PREFIX = "rooms"
	ROOMS_CACHE_EXPIRY = 1 * time.Hour
)

type RoomRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Room, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Room, error)
	GetByType(ctx context.Context, tx *gorm.DB, roomType RoomType) (*Room, error)
	Create(ctx context.Context, tx *gorm.DB, room *Room) error
	Update(ctx context.Context, tx *gorm.DB, room *Room) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type roomRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewRoomRepository(cache database.CacheClient) RoomRepository {
	return &roomRepository{
		cache: cache,
		log:   logger.New("roomRepository"),
	}
}

func (r *roomRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Room, error) {
	log := r.log.Function("GetAll")

	if r.cache != nil {
		var cached []*Room
		found, err := database.NewCacheBuilder(r.cache, ROOMS_CACHE_KEY).
			WithContext(ctx).
			WithHash(ROOMS_CACHE_PREFIX).
			Get(&cached)
		if err != nil {
			log.Warn("failed to get rooms from cache", "error", err)
		}

		if found {
			return cached, nil
		}
	}

	var rooms []*Room
	if err := tx.WithContext(ctx).Order("price_per_night ASC").Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to get all rooms", err)
	}

	if r.cache != nil {
		err := database.NewCacheBuilder(r.cache, ROOMS_CACHE_KEY).
			WithContext(ctx).
			WithHash(ROOMS_CACHE_PREFIX).
			WithStruct(rooms).
			WithTTL(ROOMS_CACHE_EXPIRY).
			Set()
		if err != nil {
			log.Warn("failed to set rooms in cache", "error", err)
		}
	}

	return rooms, nil
}

func (r *roomRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Room, error) {
	log := r.log.Function("GetByID")

	var room Room
	if err := tx.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get room by ID", err, "id", id)
	}

	return &room, nil
}

func (r *roomRepository) GetByType(
	ctx context.Context,
	tx *gorm.DB,
	roomType RoomType,
) (*Room, error) {
	log := r.log.Function("GetByType")

	var room Room
	if err := tx.WithContext(ctx).First(&room, "type = ?", roomType).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get room by type", err, "type", roomType)
	}

	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, tx *gorm.DB, room *Room) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(room).Error; err != nil {
		return log.Err("failed to create room", err, "type", room.Type)
	}

	r.clearRoomCache(ctx)
	return nil
}

func (r *roomRepository) Update(ctx context.Context, tx *gorm.DB, room *Room) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(room).Error; err != nil {
		return log.Err("failed to update room", err, "id", room.ID)
	}

	r.clearRoomCache(ctx)
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Room{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete room", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.clearRoomCache(ctx)
	return nil
}

func (r *roomRepository) clearRoomCache(ctx context.Context) {
	if r.cache == nil {
		return
	}

	log := r.log.Function("clearRoomCache")

	err := database.NewCacheBuilder(r.cache, ROOMS_CACHE_KEY).
		WithContext(ctx).
		WithHash(ROOMS_CACHE_PREFIX).
		Delete()
	if err != nil {
		log.Warn("failed to clear room cache", "error", err)
	}
}

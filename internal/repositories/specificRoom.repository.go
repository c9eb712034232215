package repositories

import (
	"context"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type SpecificRoomRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*SpecificRoom, error)
	GetByNumber(ctx context.Context, tx *gorm.DB, number int) (*SpecificRoom, error)
	GetByRoomID(ctx context.Context, tx *gorm.DB, roomID int) ([]*SpecificRoom, error)
	GetOpenByRoomID(ctx context.Context, tx *gorm.DB, roomID int) ([]*SpecificRoom, error)
	Create(ctx context.Context, tx *gorm.DB, room *SpecificRoom) error
	Update(ctx context.Context, tx *gorm.DB, room *SpecificRoom) error
	Delete(ctx context.Context, tx *gorm.DB, number int) error
}

type specificRoomRepository struct {
	log logger.Logger
}

func NewSpecificRoomRepository() SpecificRoomRepository {
	return &specificRoomRepository{
		log: logger.New("specificRoomRepository"),
	}
}

func (r *specificRoomRepository) GetAll(
	ctx context.Context,
	tx *gorm.DB,
) ([]*SpecificRoom, error) {
	log := r.log.Function("GetAll")

	var rooms []*SpecificRoom
	if err := tx.WithContext(ctx).
		Preload("Room").
		Order("number ASC").
		Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to get all specific rooms", err)
	}

	return rooms, nil
}

func (r *specificRoomRepository) GetByNumber(
	ctx context.Context,
	tx *gorm.DB,
	number int,
) (*SpecificRoom, error) {
	log := r.log.Function("GetByNumber")

	var room SpecificRoom
	if err := tx.WithContext(ctx).
		Preload("Room").
		First(&room, "number = ?", number).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get specific room by number", err, "number", number)
	}

	return &room, nil
}

func (r *specificRoomRepository) GetByRoomID(
	ctx context.Context,
	tx *gorm.DB,
	roomID int,
) ([]*SpecificRoom, error) {
	log := r.log.Function("GetByRoomID")

	var rooms []*SpecificRoom
	if err := tx.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("number ASC").
		Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to get specific rooms by room ID", err, "roomID", roomID)
	}

	return rooms, nil
}

func (r *specificRoomRepository) GetOpenByRoomID(
	ctx context.Context,
	tx *gorm.DB,
	roomID int,
) ([]*SpecificRoom, error) {
	log := r.log.Function("GetOpenByRoomID")

	var rooms []*SpecificRoom
	if err := tx.WithContext(ctx).
		Where("room_id = ? AND open_for_use = ?", roomID, true).
		Order("number ASC").
		Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to get open specific rooms", err, "roomID", roomID)
	}

	return rooms, nil
}

func (r *specificRoomRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	room *SpecificRoom,
) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(room).Error; err != nil {
		return log.Err("failed to create specific room", err, "number", room.Number)
	}

	return nil
}

func (r *specificRoomRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	room *SpecificRoom,
) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(room).Error; err != nil {
		return log.Err("failed to update specific room", err, "number", room.Number)
	}

	return nil
}

func (r *specificRoomRepository) Delete(ctx context.Context, tx *gorm.DB, number int) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&SpecificRoom{}, "number = ?", number)
	if result.Error != nil {
		return log.Err("failed to delete specific room", result.Error, "number", number)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

package repositories

import (
	"context"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"gorm.io/gorm"
)

type ReservedRoomRepository interface {
	GetByReservationID(ctx context.Context, tx *gorm.DB, reservationID int) ([]*ReservedRoom, error)
	GetActiveByRoomNumber(ctx context.Context, tx *gorm.DB, roomNumber int) ([]*ReservedRoom, error)
	Create(ctx context.Context, tx *gorm.DB, reservedRoom *ReservedRoom) error
	DeleteByReservationID(ctx context.Context, tx *gorm.DB, reservationID int) error
}

type reservedRoomRepository struct {
	log logger.Logger
}

func NewReservedRoomRepository() ReservedRoomRepository {
	return &reservedRoomRepository{
		log: logger.New("reservedRoomRepository"),
	}
}

func (r *reservedRoomRepository) GetByReservationID(
	ctx context.Context,
	tx *gorm.DB,
	reservationID int,
) ([]*ReservedRoom, error) {
	log := r.log.Function("GetByReservationID")

	var reservedRooms []*ReservedRoom
	if err := tx.WithContext(ctx).
		Preload("SpecificRoom").
		Preload("SpecificRoom.Room").
		Where("reservation_id = ?", reservationID).
		Find(&reservedRooms).Error; err != nil {
		return nil, log.Err(
			"failed to get reserved rooms by reservation",
			err,
			"reservationID",
			reservationID,
		)
	}

	return reservedRooms, nil
}

// GetActiveByRoomNumber returns room links whose reservation has not yet
// reached a terminal state, used to decide whether a room is still occupied.
func (r *reservedRoomRepository) GetActiveByRoomNumber(
	ctx context.Context,
	tx *gorm.DB,
	roomNumber int,
) ([]*ReservedRoom, error) {
	log := r.log.Function("GetActiveByRoomNumber")

	var reservedRooms []*ReservedRoom
	if err := tx.WithContext(ctx).
		Joins("JOIN reservations ON reservations.id = reserved_rooms.reservation_id").
		Where("reserved_rooms.room_number = ?", roomNumber).
		Where("reservations.checked_in IN ?", []CheckInStatus{BeforeCheckIn, CheckedIn}).
		Where("reservations.deleted_at IS NULL").
		Find(&reservedRooms).Error; err != nil {
		return nil, log.Err(
			"failed to get active reserved rooms",
			err,
			"roomNumber",
			roomNumber,
		)
	}

	return reservedRooms, nil
}

func (r *reservedRoomRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	reservedRoom *ReservedRoom,
) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(reservedRoom).Error; err != nil {
		return log.Err(
			"failed to create reserved room",
			err,
			"reservationID",
			reservedRoom.ReservationID,
			"roomNumber",
			reservedRoom.RoomNumber,
		)
	}

	return nil
}

func (r *reservedRoomRepository) DeleteByReservationID(
	ctx context.Context,
	tx *gorm.DB,
	reservationID int,
) error {
	log := r.log.Function("DeleteByReservationID")

	if err := tx.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Delete(&ReservedRoom{}).Error; err != nil {
		return log.Err(
			"failed to delete reserved rooms by reservation",
			err,
			"reservationID",
			reservationID,
		)
	}

	return nil
}

package roomController

import (
	"context"
	"errors"

	"hotelsys/config"
	"hotelsys/internal/apperror"
	"hotelsys/internal/database"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"
	"hotelsys/internal/repositories"
	"hotelsys/internal/services"

	"gorm.io/gorm"
)

type RoomController struct {
	roomRepo         repositories.RoomRepository
	specificRoomRepo repositories.SpecificRoomRepository
	reservedRoomRepo repositories.ReservedRoomRepository
	transaction      *services.TransactionService
	db               database.DB
	Config           config.Config
	log              logger.Logger
}

type RoomControllerInterface interface {
	GetAllRooms(ctx context.Context) ([]*Room, error)
	GetRoomByID(ctx context.Context, id int) (*Room, error)
	GetRoomByType(ctx context.Context, roomType RoomType) (*Room, error)
	CreateRoom(ctx context.Context, room *Room) (*Room, error)
	UpdateRoom(ctx context.Context, room *Room) (*Room, error)

	GetAllSpecificRooms(ctx context.Context) ([]*SpecificRoom, error)
	GetSpecificRoom(ctx context.Context, number int) (*SpecificRoom, error)
	GetOpenRoomsByType(ctx context.Context, roomID int) ([]*SpecificRoom, error)
	CreateSpecificRoom(ctx context.Context, room *SpecificRoom) (*SpecificRoom, error)
	UpdateSpecificRoom(ctx context.Context, room *SpecificRoom) (*SpecificRoom, error)
	DeleteSpecificRoom(ctx context.Context, number int) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) RoomControllerInterface {
	return &RoomController{
		roomRepo:         repos.Room,
		specificRoomRepo: repos.SpecificRoom,
		reservedRoomRepo: repos.ReservedRoom,
		transaction:      services.Transaction,
		db:               db,
		Config:           config,
		log:              logger.New("roomController"),
	}
}

func (rc *RoomController) GetAllRooms(ctx context.Context) ([]*Room, error) {
	return rc.roomRepo.GetAll(ctx, rc.db.SQL)
}

func (rc *RoomController) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	room, err := rc.roomRepo.GetByID(ctx, rc.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Room not found.")
		}
		return nil, err
	}

	return room, nil
}

func (rc *RoomController) GetRoomByType(
	ctx context.Context,
	roomType RoomType,
) (*Room, error) {
	room, err := rc.roomRepo.GetByType(ctx, rc.db.SQL, roomType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Room not found.")
		}
		return nil, err
	}

	return room, nil
}

func (rc *RoomController) CreateRoom(ctx context.Context, room *Room) (*Room, error) {
	log := rc.log.Function("CreateRoom")

	if room.PricePerNight <= 0 || room.Capacity <= 0 {
		return nil, apperror.BadRequest("invalid integer")
	}

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := rc.roomRepo.GetByType(ctx, tx, room.Type); err == nil {
			return apperror.Conflict("A room with this type already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return rc.roomRepo.Create(ctx, tx, room)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Room created", "id", room.ID, "type", room.Type)
	return room, nil
}

func (rc *RoomController) UpdateRoom(ctx context.Context, room *Room) (*Room, error) {
	log := rc.log.Function("UpdateRoom")

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := rc.roomRepo.GetByID(ctx, tx, room.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Room not found.")
			}
			return err
		}

		return rc.roomRepo.Update(ctx, tx, room)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Room updated", "id", room.ID)
	return room, nil
}

func (rc *RoomController) GetAllSpecificRooms(ctx context.Context) ([]*SpecificRoom, error) {
	return rc.specificRoomRepo.GetAll(ctx, rc.db.SQL)
}

func (rc *RoomController) GetSpecificRoom(
	ctx context.Context,
	number int,
) (*SpecificRoom, error) {
	room, err := rc.specificRoomRepo.GetByNumber(ctx, rc.db.SQL, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Room not found.")
		}
		return nil, err
	}

	return room, nil
}

// GetOpenRoomsByType lists the physical rooms of one room type that are
// currently open for use.
func (rc *RoomController) GetOpenRoomsByType(
	ctx context.Context,
	roomID int,
) ([]*SpecificRoom, error) {
	if _, err := rc.roomRepo.GetByID(ctx, rc.db.SQL, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Room not found.")
		}
		return nil, err
	}

	return rc.specificRoomRepo.GetOpenByRoomID(ctx, rc.db.SQL, roomID)
}

func (rc *RoomController) CreateSpecificRoom(
	ctx context.Context,
	room *SpecificRoom,
) (*SpecificRoom, error) {
	log := rc.log.Function("CreateSpecificRoom")

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := rc.roomRepo.GetByID(ctx, tx, room.RoomID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.BadRequest("Room type does not exist.")
			}
			return err
		}

		if _, err := rc.specificRoomRepo.GetByNumber(ctx, tx, room.Number); err == nil {
			return apperror.Conflict("A room with this number already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return rc.specificRoomRepo.Create(ctx, tx, room)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Specific room created", "number", room.Number, "roomID", room.RoomID)
	return room, nil
}

func (rc *RoomController) UpdateSpecificRoom(
	ctx context.Context,
	room *SpecificRoom,
) (*SpecificRoom, error) {
	log := rc.log.Function("UpdateSpecificRoom")

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := rc.specificRoomRepo.GetByNumber(ctx, tx, room.Number); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Room not found.")
			}
			return err
		}

		return rc.specificRoomRepo.Update(ctx, tx, room)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Specific room updated", "number", room.Number)
	return room, nil
}

// DeleteSpecificRoom refuses to remove a room that a live reservation still
// points at.
func (rc *RoomController) DeleteSpecificRoom(ctx context.Context, number int) error {
	log := rc.log.Function("DeleteSpecificRoom")

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		active, err := rc.reservedRoomRepo.GetActiveByRoomNumber(ctx, tx, number)
		if err != nil {
			return err
		}
		if len(active) > 0 {
			return apperror.Conflict("Room has active reservations.")
		}

		if err := rc.specificRoomRepo.Delete(ctx, tx, number); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Room not found.")
			}
			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info("Specific room deleted", "number", number)
	return nil
}

package usecases

import (
	"database/sql"
	"errors"
	"net/http"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/repositories"
)

type RoomUsecase interface {
	Create(room entities.RoomRequest) error
	GetAll(roomType, available string) ([]entities.Room, int, error)
	GetByNumber(number int) (entities.Room, error)
	Update(number int, room entities.RoomRequest) error
	Delete(number int) error
}

type roomUsecase struct {
	roomRepo repositories.RoomRepository
}

func NewRoomUsecase(roomRepo repositories.RoomRepository) RoomUsecase {
	return &roomUsecase{roomRepo: roomRepo}
}

func (u *roomUsecase) Create(room entities.RoomRequest) error {
	if room.RoomNumber <= 0 || room.RoomType == "" || room.Rate <= 0 || room.MaxOccupancy <= 0 {
		return &UseCaseError{Code: http.StatusBadRequest, Message: "invalid room data"}
	}

	if _, err := u.roomRepo.GetByNumber(room.RoomNumber); err == nil {
		return &UseCaseError{Code: http.StatusConflict, Message: "room number already exists"}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
	}

	return u.roomRepo.Create(room)
}

func (u *roomUsecase) GetAll(roomType, available string) ([]entities.Room, int, error) {
	return u.roomRepo.GetAll(roomType, available)
}

func (u *roomUsecase) GetByNumber(number int) (entities.Room, error) {
	room, err := u.roomRepo.GetByNumber(number)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Room{}, &UseCaseError{Code: http.StatusNotFound, Message: "room not found"}
	}
	return room, err
}

func (u *roomUsecase) Update(number int, room entities.RoomRequest) error {
	if room.RoomType == "" || room.Rate <= 0 || room.MaxOccupancy <= 0 {
		return &UseCaseError{Code: http.StatusBadRequest, Message: "invalid room data"}
	}

	affected, err := u.roomRepo.Update(number, room)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &UseCaseError{Code: http.StatusNotFound, Message: "room not found"}
	}
	return nil
}

func (u *roomUsecase) Delete(number int) error {
	affected, err := u.roomRepo.Delete(number)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &UseCaseError{Code: http.StatusNotFound, Message: "room not found"}
	}
	return nil
}

package usecases

import (
	"net/http"
	"time"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/repositories"
)

type RateUsecase interface {
	Create(userEmail string, req entities.RateRequest) error
	GetByRoomType(roomType string) ([]entities.Rate, error)
	GetAll() ([]entities.Rate, error)
}

type rateUsecase struct {
	rateRepo repositories.RateRepository
	roomRepo repositories.RoomRepository
	userRepo repositories.UserRepository
}

func NewRateUsecase(rateRepo repositories.RateRepository, roomRepo repositories.RoomRepository, userRepo repositories.UserRepository) RateUsecase {
	return &rateUsecase{rateRepo: rateRepo, roomRepo: roomRepo, userRepo: userRepo}
}

func (u *rateUsecase) Create(userEmail string, req entities.RateRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return &UseCaseError{Code: http.StatusBadRequest, Message: "rating must be between 1 and 5"}
	}

	rooms, err := u.roomRepo.ListRoomsByType(req.RoomType)
	if err != nil {
		return &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
	}
	if len(rooms) == 0 {
		return &UseCaseError{Code: http.StatusNotFound, Message: "room type not found"}
	}

	user, err := u.userRepo.GetByEmail(userEmail)
	if err != nil {
		return &UseCaseError{Code: http.StatusNotFound, Message: "user not found"}
	}

	return u.rateRepo.Create(entities.Rate{
		UserEmail: userEmail,
		UserName:  user.Name,
		RoomType:  req.RoomType,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      time.Now().UTC(),
	})
}

func (u *rateUsecase) GetByRoomType(roomType string) ([]entities.Rate, error) {
	return u.rateRepo.GetByRoomType(roomType)
}

func (u *rateUsecase) GetAll() ([]entities.Rate, error) {
	return u.rateRepo.GetAll()
}

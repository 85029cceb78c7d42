package usecases

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/repositories"
)

// EventPublisher broadcasts reservation lifecycle events. Publishing is
// fire-and-forget: a broker failure never fails the reservation.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

const (
	EventReservationCreated   = "reservation.created"
	EventReservationUpdated   = "reservation.updated"
	EventReservationCancelled = "reservation.cancelled"
)

type ReservationUsecase interface {
	Create(req entities.ReservationRequest) (entities.Reservation, error)
	Update(id string, req entities.ReservationRequest) (entities.Reservation, error)
	GetAll() ([]entities.Reservation, error)
	GetByUserEmail(email string) ([]entities.Reservation, error)
	GetByID(id string) (entities.Reservation, error)
	Cancel(id, requesterEmail, requesterRole string) error
	Delete(id, requesterEmail, requesterRole string) error
}

type reservationUsecase struct {
	engine  *AdmissionEngine
	resRepo repositories.ReservationRepository
	events  EventPublisher

	// Admission is a check-then-act over the free-room set, so two
	// concurrent requests for the same type could both pick the lowest
	// free room. Admit+persist is serialized per room type.
	mu        sync.Mutex
	typeLocks map[string]*sync.Mutex
}

func NewReservationUsecase(engine *AdmissionEngine, resRepo repositories.ReservationRepository, events EventPublisher) ReservationUsecase {
	return &reservationUsecase{
		engine:    engine,
		resRepo:   resRepo,
		events:    events,
		typeLocks: make(map[string]*sync.Mutex),
	}
}

func (u *reservationUsecase) lockRoomType(roomType string) *sync.Mutex {
	u.mu.Lock()
	lock, ok := u.typeLocks[roomType]
	if !ok {
		lock = &sync.Mutex{}
		u.typeLocks[roomType] = lock
	}
	u.mu.Unlock()

	lock.Lock()
	return lock
}

// 1. Create
func (u *reservationUsecase) Create(req entities.ReservationRequest) (entities.Reservation, error) {
	lock := u.lockRoomType(req.RoomType)
	defer lock.Unlock()

	admitted, err := u.engine.Admit(req)
	if err != nil {
		return entities.Reservation{}, err
	}

	admitted.ID = uuid.NewString()
	if err := u.resRepo.Create(*admitted); err != nil {
		return entities.Reservation{}, &UseCaseError{Code: http.StatusInternalServerError, Message: "failed to save reservation"}
	}

	u.publish(EventReservationCreated, admitted)
	return *admitted, nil
}

// 2. Update: re-runs the full admission flow against the edited fields,
// excluding the reservation's own prior booking from overlap checks.
func (u *reservationUsecase) Update(id string, req entities.ReservationRequest) (entities.Reservation, error) {
	existing, err := u.resRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Reservation{}, &UseCaseError{Code: http.StatusNotFound, Message: "reservation not found"}
		}
		return entities.Reservation{}, &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
	}
	if existing.CancellationDate != nil {
		return entities.Reservation{}, &UseCaseError{Code: http.StatusConflict, Message: "cannot update a cancelled reservation"}
	}

	// Identity of the booking never changes on edit.
	req.UserEmail = existing.UserEmail

	lock := u.lockRoomType(req.RoomType)
	defer lock.Unlock()

	admitted, err := u.engine.ReValidate(id, req)
	if err != nil {
		return entities.Reservation{}, err
	}

	admitted.ID = id
	affected, err := u.resRepo.Update(*admitted)
	if err != nil {
		return entities.Reservation{}, &UseCaseError{Code: http.StatusInternalServerError, Message: "failed to update reservation"}
	}
	if affected == 0 {
		return entities.Reservation{}, &UseCaseError{Code: http.StatusNotFound, Message: "reservation not found"}
	}

	u.publish(EventReservationUpdated, admitted)
	return *admitted, nil
}

// 3. Queries
func (u *reservationUsecase) GetAll() ([]entities.Reservation, error) {
	return u.resRepo.GetAll()
}

func (u *reservationUsecase) GetByUserEmail(email string) ([]entities.Reservation, error) {
	return u.resRepo.GetByUserEmail(email)
}

func (u *reservationUsecase) GetByID(id string) (entities.Reservation, error) {
	res, err := u.resRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Reservation{}, &UseCaseError{Code: http.StatusNotFound, Message: "reservation not found"}
	}
	return res, err
}

// 4. Cancel: logical removal via cancellation_date.
func (u *reservationUsecase) Cancel(id, requesterEmail, requesterRole string) error {
	res, err := u.ownedReservation(id, requesterEmail, requesterRole)
	if err != nil {
		return err
	}

	affected, err := u.resRepo.Cancel(res.ID, time.Now().UTC())
	if err != nil {
		return &UseCaseError{Code: http.StatusInternalServerError, Message: "failed to cancel reservation"}
	}
	if affected == 0 {
		return &UseCaseError{Code: http.StatusConflict, Message: "reservation is already cancelled"}
	}

	u.publish(EventReservationCancelled, &res)
	return nil
}

// 5. Delete: hard removal, owner or admin only.
func (u *reservationUsecase) Delete(id, requesterEmail, requesterRole string) error {
	res, err := u.ownedReservation(id, requesterEmail, requesterRole)
	if err != nil {
		return err
	}

	affected, err := u.resRepo.Delete(res.ID)
	if err != nil {
		return &UseCaseError{Code: http.StatusInternalServerError, Message: "failed to delete reservation"}
	}
	if affected == 0 {
		return &UseCaseError{Code: http.StatusNotFound, Message: "reservation not found"}
	}
	return nil
}

func (u *reservationUsecase) ownedReservation(id, requesterEmail, requesterRole string) (entities.Reservation, error) {
	res, err := u.resRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Reservation{}, &UseCaseError{Code: http.StatusNotFound, Message: "reservation not found"}
		}
		return entities.Reservation{}, &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
	}
	if requesterRole != "admin" && requesterEmail != res.UserEmail {
		return entities.Reservation{}, &UseCaseError{Code: http.StatusForbidden, Message: "access forbidden"}
	}
	return res, nil
}

func (u *reservationUsecase) publish(eventType string, res *entities.Reservation) {
	if u.events == nil {
		return
	}
	if err := u.events.Publish(context.Background(), eventType, res); err != nil {
		log.Printf("publish %s for reservation %s: %v", eventType, res.ID, err)
	}
}

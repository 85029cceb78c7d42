package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/usecases"
	"BE-Hotel-Booking/middleware"
)

type ReservationHandler struct {
	reservationUsecase usecases.ReservationUsecase
}

func NewReservationHandler(reservationUsecase usecases.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{reservationUsecase: reservationUsecase}
}

// admissionStatus maps each rejection kind to a transport status. The
// mapping is deterministic: validation failures are client errors,
// missing price keys are host misconfiguration.
func admissionStatus(kind usecases.RejectionKind) int {
	switch kind {
	case usecases.RejectInvalidDateFormat,
		usecases.RejectCheckInTooEarly,
		usecases.RejectCheckOutTooEarly,
		usecases.RejectCheckOutBeforeCheckIn,
		usecases.RejectInvalidOccupancy:
		return http.StatusBadRequest
	case usecases.RejectUnknownRoomType:
		return http.StatusNotFound
	case usecases.RejectNoRoomAvailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *ReservationHandler) respondError(c echo.Context, err error) error {
	if admissionErr := usecases.IsAdmissionError(err); admissionErr != nil {
		if admissionErr.Kind == usecases.RejectConfiguration {
			// host misconfiguration, not a user mistake
			log.Printf("price table misconfiguration: %s", admissionErr.Message)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
		}
		return c.JSON(admissionStatus(admissionErr.Kind), echo.Map{
			"message": admissionErr.Message,
			"reason":  string(admissionErr.Kind),
		})
	}
	if e, ok := err.(*usecases.UseCaseError); ok {
		return c.JSON(e.Code, echo.Map{"message": e.Message})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
}

// CreateReservation godoc
// @Summary Create a new reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body entities.ReservationRequest true "Reservation request body"
// @Success 201 {object} entities.Reservation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req entities.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	req.UserEmail = middleware.EmailFromContext(c)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	created, err := h.reservationUsecase.Create(req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "reservation created successfully",
		"reservation": created,
	})
}

// UpdateReservation godoc
// @Summary Edit a reservation, re-running the full admission flow
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body entities.ReservationRequest true "Edited fields"
// @Success 200 {object} entities.Reservation
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	var req entities.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	updated, err := h.reservationUsecase.Update(c.Param("id"), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "reservation updated successfully",
		"reservation": updated,
	})
}

// GetReservations godoc
// @Summary List all reservations (admin only)
// @Tags Reservation
// @Produce json
// @Success 200 {array} entities.Reservation
// @Router /reservations [get]
func (h *ReservationHandler) GetReservations(c echo.Context) error {
	reservations, err := h.reservationUsecase.GetAll()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// GetReservationsByEmail godoc
// @Summary List a user's reservations (owner or admin)
// @Tags Reservation
// @Produce json
// @Param email path string true "User email"
// @Success 200 {array} entities.Reservation
// @Router /reservations/user/{email} [get]
func (h *ReservationHandler) GetReservationsByEmail(c echo.Context) error {
	email := c.Param("email")
	if middleware.RoleFromContext(c) != "admin" && middleware.EmailFromContext(c) != email {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "access forbidden"})
	}

	reservations, err := h.reservationUsecase.GetByUserEmail(email)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// GetReservationByID godoc
// @Summary Get a reservation (owner or admin)
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} entities.Reservation
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservationByID(c echo.Context) error {
	res, err := h.reservationUsecase.GetByID(c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	if middleware.RoleFromContext(c) != "admin" && middleware.EmailFromContext(c) != res.UserEmail {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "access forbidden"})
	}
	return c.JSON(http.StatusOK, res)
}

// CancelReservation godoc
// @Summary Cancel a reservation (sets cancellation date)
// @Tags Reservation
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	err := h.reservationUsecase.Cancel(c.Param("id"), middleware.EmailFromContext(c), middleware.RoleFromContext(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation cancelled successfully"})
}

// DeleteReservation godoc
// @Summary Delete a reservation (owner or admin)
// @Tags Reservation
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	err := h.reservationUsecase.Delete(c.Param("id"), middleware.EmailFromContext(c), middleware.RoleFromContext(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation deleted successfully"})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/usecases"
)

type RoomHandler struct {
	roomUsecase usecases.RoomUsecase
}

func NewRoomHandler(roomUsecase usecases.RoomUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase}
}

func respondUsecaseError(c echo.Context, err error) error {
	if e, ok := err.(*usecases.UseCaseError); ok {
		return c.JSON(e.Code, echo.Map{"message": e.Message})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
}

// CreateRoom godoc
// @Summary Create a room (admin only)
// @Tags Room
// @Accept json
// @Produce json
// @Param request body entities.RoomRequest true "Room"
// @Success 201 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req entities.RoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := h.roomUsecase.Create(req); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "room created successfully"})
}

// GetRooms godoc
// @Summary List rooms, optionally filtered by type and availability
// @Tags Room
// @Produce json
// @Param type query string false "Room type"
// @Param available query string false "true/false"
// @Success 200 {object} map[string]interface{}
// @Router /rooms [get]
func (h *RoomHandler) GetRooms(c echo.Context) error {
	rooms, total, err := h.roomUsecase.GetAll(c.QueryParam("type"), c.QueryParam("available"))
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rooms, "totalData": total})
}

// GetRoomByNumber godoc
// @Summary Get a room by its number
// @Tags Room
// @Produce json
// @Param number path int true "Room number"
// @Success 200 {object} entities.Room
// @Router /rooms/{number} [get]
func (h *RoomHandler) GetRoomByNumber(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room number"})
	}

	room, err := h.roomUsecase.GetByNumber(number)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// UpdateRoom godoc
// @Summary Update a room (admin only)
// @Tags Room
// @Param number path int true "Room number"
// @Param request body entities.RoomRequest true "Room"
// @Success 200 {object} map[string]string
// @Router /rooms/{number} [put]
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room number"})
	}

	var req entities.RoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	req.RoomNumber = number
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := h.roomUsecase.Update(number, req); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room updated successfully"})
}

// DeleteRoom godoc
// @Summary Delete a room (admin only)
// @Tags Room
// @Param number path int true "Room number"
// @Success 200 {object} map[string]string
// @Router /rooms/{number} [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room number"})
	}

	if err := h.roomUsecase.Delete(number); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room deleted successfully"})
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/usecases"
	"BE-Hotel-Booking/middleware"
)

type RateHandler struct {
	rateUsecase usecases.RateUsecase
}

func NewRateHandler(rateUsecase usecases.RateUsecase) *RateHandler {
	return &RateHandler{rateUsecase: rateUsecase}
}

// CreateRate godoc
// @Summary Review a room type
// @Tags Rate
// @Accept json
// @Produce json
// @Param request body entities.RateRequest true "Review"
// @Success 201 {object} map[string]string
// @Router /rates [post]
func (h *RateHandler) CreateRate(c echo.Context) error {
	var req entities.RateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := h.rateUsecase.Create(middleware.EmailFromContext(c), req); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "review created successfully"})
}

// GetRates godoc
// @Summary List reviews, optionally by room type
// @Tags Rate
// @Produce json
// @Param type query string false "Room type"
// @Success 200 {array} entities.Rate
// @Router /rates [get]
func (h *RateHandler) GetRates(c echo.Context) error {
	roomType := c.QueryParam("type")

	var rates []entities.Rate
	var err error
	if roomType != "" {
		rates, err = h.rateUsecase.GetByRoomType(roomType)
	} else {
		rates, err = h.rateUsecase.GetAll()
	}
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, rates)
}

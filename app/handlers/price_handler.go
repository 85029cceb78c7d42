package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/repositories"
)

type PriceHandler struct {
	priceRepo repositories.PriceRepository
}

func NewPriceHandler(priceRepo repositories.PriceRepository) *PriceHandler {
	return &PriceHandler{priceRepo: priceRepo}
}

// GetPrices godoc
// @Summary Get the price table (room types and extras, minor units per night)
// @Tags Price
// @Produce json
// @Success 200 {object} entities.PriceTable
// @Router /prices [get]
func (h *PriceHandler) GetPrices(c echo.Context) error {
	table, err := h.priceRepo.GetPriceTable()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load prices"})
	}
	return c.JSON(http.StatusOK, table)
}

// UpsertPrice godoc
// @Summary Set the price for a room type or extra (admin only)
// @Tags Price
// @Accept json
// @Param request body entities.PriceEntry true "Price entry"
// @Success 200 {object} map[string]string
// @Router /prices [put]
func (h *PriceHandler) UpsertPrice(c echo.Context) error {
	var entry entities.PriceEntry
	if err := c.Bind(&entry); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&entry); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := h.priceRepo.Upsert(entry); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to save price"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "price saved successfully"})
}

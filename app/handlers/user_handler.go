package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/usecases"
	"BE-Hotel-Booking/middleware"
)

type UserHandler struct {
	userUsecase usecases.UserUsecase
}

func NewUserHandler(userUsecase usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// RegisterUser godoc
// @Summary Register a new user
// @Tags User
// @Accept json
// @Produce json
// @Param request body entities.User true "User"
// @Success 200 {object} map[string]string
// @Router /register [post]
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var newUser entities.User
	if err := c.Bind(&newUser); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Bad Request"})
	}
	if err := c.Validate(&newUser); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Bad Request"})
	}

	// Self-registration never grants elevated roles.
	newUser.Role = "user"

	if err := h.userUsecase.Register(newUser); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User registered successfully"})
}

// Login godoc
// @Summary Log in with username or email
// @Tags User
// @Accept json
// @Produce json
// @Param request body entities.Login true "Credentials"
// @Success 200 {object} map[string]string
// @Router /login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var login entities.Login
	if err := c.Bind(&login); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Bad Request"})
	}
	if err := c.Validate(&login); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Bad Request"})
	}

	accessToken, refreshToken, err := h.userUsecase.Login(login.Username, login.Password)
	if err != nil {
		return respondUsecaseError(c, err)
	}

	c.Response().Header().Set("Refresh-Token", "Bearer "+refreshToken)
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Login successful",
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

// Logout godoc
// @Summary Revoke the presented token
// @Tags User
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	token := middleware.TokenFromContext(c)
	if err := h.userUsecase.Logout(c.Request().Context(), token); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

// GetUserByID godoc
// @Summary Get a user profile
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} entities.GetUser
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	user, err := h.userUsecase.GetProfile(id)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUserByID godoc
// @Summary Update a user profile
// @Tags User
// @Param id path int true "User ID"
// @Param request body entities.UpdateUser true "Fields"
// @Success 200 {object} map[string]string
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUserByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	var input entities.UpdateUser
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Bad Request"})
	}

	if err := h.userUsecase.UpdateUser(id, input); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully"})
}

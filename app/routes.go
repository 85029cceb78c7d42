package app

import (
	"github.com/labstack/echo/v4"

	"BE-Hotel-Booking/app/handlers"
	"BE-Hotel-Booking/middleware"
)

func RegisterRoutes(
	e *echo.Echo,
	userHandler *handlers.UserHandler,
	roomHandler *handlers.RoomHandler,
	reservationHandler *handlers.ReservationHandler,
	rateHandler *handlers.RateHandler,
	priceHandler *handlers.PriceHandler,
	authMiddleware echo.MiddlewareFunc,
) {
	// User routes
	e.POST("/login", userHandler.Login)
	e.POST("/register", userHandler.RegisterUser)

	authGroup := e.Group("")
	authGroup.Use(authMiddleware)

	authGroup.POST("/logout", userHandler.Logout)
	authGroup.GET("/users/:id", userHandler.GetUserByID)
	authGroup.PUT("/users/:id", userHandler.UpdateUserByID)

	// Room routes: reads for everyone, mutations admin only
	authGroup.GET("/rooms", roomHandler.GetRooms)
	authGroup.GET("/rooms/:number", roomHandler.GetRoomByNumber)

	adminOnly := middleware.RequireRoles("admin")
	authGroup.POST("/rooms", roomHandler.CreateRoom, adminOnly)
	authGroup.PUT("/rooms/:number", roomHandler.UpdateRoom, adminOnly)
	authGroup.DELETE("/rooms/:number", roomHandler.DeleteRoom, adminOnly)

	// Reservation routes
	authGroup.GET("/reservations", reservationHandler.GetReservations, adminOnly)
	authGroup.GET("/reservations/user/:email", reservationHandler.GetReservationsByEmail)
	authGroup.GET("/reservations/:id", reservationHandler.GetReservationByID)
	authGroup.POST("/reservations", reservationHandler.CreateReservation)
	authGroup.PATCH("/reservations/:id", reservationHandler.UpdateReservation)
	authGroup.POST("/reservations/:id/cancel", reservationHandler.CancelReservation)
	authGroup.DELETE("/reservations/:id", reservationHandler.DeleteReservation)

	// Rate (review) routes
	authGroup.POST("/rates", rateHandler.CreateRate)
	authGroup.GET("/rates", rateHandler.GetRates)

	// Price table routes
	authGroup.GET("/prices", priceHandler.GetPrices)
	authGroup.PUT("/prices", priceHandler.UpsertPrice, adminOnly)
}

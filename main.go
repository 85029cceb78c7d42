package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"BE-Hotel-Booking/app"
	"BE-Hotel-Booking/app/handlers"
	"BE-Hotel-Booking/app/repositories"
	"BE-Hotel-Booking/app/usecases"
	"BE-Hotel-Booking/config"
	"BE-Hotel-Booking/middleware"
	"BE-Hotel-Booking/pkg/database"
	"BE-Hotel-Booking/pkg/events"
	"BE-Hotel-Booking/pkg/tokenstore"
	"BE-Hotel-Booking/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.NewPostgresDatabase(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	revoked := tokenstore.NewRedisStore(cfg)
	defer revoked.Close()

	var publisher usecases.EventPublisher
	if cfg.Kafka.Enabled {
		kafkaPublisher := events.NewKafkaPublisher(cfg)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db.GetDB())
	roomRepo := repositories.NewRoomRepository(db.GetDB())
	priceRepo := repositories.NewPriceRepository(db.GetDB())
	resRepo := repositories.NewReservationRepository(db.GetDB())
	rateRepo := repositories.NewRateRepository(db.GetDB())

	// Usecases
	engine := usecases.NewAdmissionEngine(roomRepo, resRepo, priceRepo)
	userUsecase := usecases.NewUserUsecase(userRepo, revoked, cfg.JWT.Secret)
	roomUsecase := usecases.NewRoomUsecase(roomRepo)
	reservationUsecase := usecases.NewReservationUsecase(engine, resRepo, publisher)
	rateUsecase := usecases.NewRateUsecase(rateRepo, roomRepo, userRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userUsecase)
	roomHandler := handlers.NewRoomHandler(roomUsecase)
	reservationHandler := handlers.NewReservationHandler(reservationUsecase)
	rateHandler := handlers.NewRateHandler(rateUsecase)
	priceHandler := handlers.NewPriceHandler(priceRepo)

	srv := server.NewEchoServer(cfg)
	app.RegisterRoutes(
		srv.GetEcho(),
		userHandler,
		roomHandler,
		reservationHandler,
		rateHandler,
		priceHandler,
		middleware.JWTAuth(cfg.JWT.Secret, revoked),
	)

	if err := srv.Start(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

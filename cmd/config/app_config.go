package config

import (
	"os"
	"time"

	"SmartServe-Backend/internal/api/handlers"
	"SmartServe-Backend/internal/api/routes"
	"SmartServe-Backend/internal/middleware"
	"SmartServe-Backend/internal/utils"
	"SmartServe-Backend/internal/utils/storage"
	"SmartServe-Backend/pkg/claim"
	"SmartServe-Backend/pkg/delivery"
	"SmartServe-Backend/pkg/donation"
	"SmartServe-Backend/pkg/jwt"
	"SmartServe-Backend/pkg/notification"
	"SmartServe-Backend/pkg/partnership"
	"SmartServe-Backend/pkg/sensor"
	"SmartServe-Backend/pkg/stats"
	"SmartServe-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	claimRepository := claim.NewClaimRepository(db)
	deliveryRepository := delivery.NewDeliveryRepository(db)
	sensorRepository := sensor.NewSensorRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	partnershipRepository := partnership.NewPartnershipRepository(db)
	statsRepository := stats.NewStatsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	donationService := donation.NewDonationService(donationRepository, s3)
	claimService := claim.NewClaimService(claimRepository)
	deliveryService := delivery.NewDeliveryService(deliveryRepository)
	sensorService := sensor.NewSensorService(sensorRepository)
	notificationService := notification.NewNotificationService(notificationRepository)
	partnershipService := partnership.NewPartnershipService(partnershipRepository)
	statsService := stats.NewStatsService(statsRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService, validator)
	sensorHandler := handlers.NewSensorHandler(sensorService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	partnershipHandler := handlers.NewPartnershipHandler(partnershipService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		DonationHandler:     donationHandler,
		ClaimHandler:        claimHandler,
		DeliveryHandler:     deliveryHandler,
		SensorHandler:       sensorHandler,
		NotificationHandler: notificationHandler,
		PartnershipHandler:  partnershipHandler,
		StatsHandler:        statsHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

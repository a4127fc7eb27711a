package routes

import (
	"SmartServe-Backend/internal/api/handlers"
	"SmartServe-Backend/internal/middleware"
	"SmartServe-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	DonationHandler     handlers.DonationHandler
	ClaimHandler        handlers.ClaimHandler
	DeliveryHandler     handlers.DeliveryHandler
	SensorHandler       handlers.SensorHandler
	NotificationHandler handlers.NotificationHandler
	PartnershipHandler  handlers.PartnershipHandler
	StatsHandler        handlers.StatsHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donations()
	c.Claims()
	c.Deliveries()
	c.SensorData()
	c.Notifications()
	c.Partnerships()
	c.Stats()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations")
	{
		donations.Get("", c.DonationHandler.GetDonations)
		donations.Get("/donor/:userId", c.DonationHandler.GetDonorDonations)
		donations.Post("", c.DonationHandler.CreateDonation)
		donations.Put("", c.DonationHandler.UpdateDonation)
		donations.Delete("", c.DonationHandler.DeleteDonation)
		donations.Post("/:id/image", c.DonationHandler.UploadDonationImage)
	}
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/v1/claims")
	{
		claims.Post("", c.ClaimHandler.CreateClaim)
		claims.Get("", c.ClaimHandler.GetClaims)
		claims.Get("/recipient/:userId", c.ClaimHandler.GetRecipientClaims)
		claims.Put("/:id", c.ClaimHandler.UpdateClaim)
		claims.Delete("/:id", c.ClaimHandler.DeleteClaim)
	}
}

func (c *Config) Deliveries() {
	deliveries := c.App.Group("/api/v1/deliveries")
	{
		deliveries.Post("", c.DeliveryHandler.CreateDelivery)
		deliveries.Get("", c.DeliveryHandler.GetDeliveries)
		deliveries.Get("/driver/:userId", c.DeliveryHandler.GetDriverDeliveries)
		deliveries.Get("/:id", c.DeliveryHandler.GetDeliveryByID)
		deliveries.Put("/:id", c.DeliveryHandler.UpdateDelivery)
		deliveries.Delete("/:id", c.DeliveryHandler.DeleteDelivery)
	}
}

func (c *Config) SensorData() {
	sensorData := c.App.Group("/api/v1/sensor-data")
	{
		sensorData.Post("", c.SensorHandler.CreateReading)
		sensorData.Get("", c.SensorHandler.GetReadings)
		sensorData.Get("/delivery/:deliveryId", c.SensorHandler.GetDeliveryReadings)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications")
	{
		notifications.Post("", c.NotificationHandler.CreateNotification)
		notifications.Get("/user/:userId", c.Middleware.AuthMiddleware(c.JWTService), c.NotificationHandler.GetUserNotifications)
		notifications.Put("/:id/read", c.Middleware.AuthMiddleware(c.JWTService), c.NotificationHandler.MarkAsRead)
	}
}

func (c *Config) Partnerships() {
	partnerships := c.App.Group("/api/v1/partnerships")
	{
		partnerships.Post("", c.PartnershipHandler.CreatePartnership)
		partnerships.Get("", c.PartnershipHandler.GetPartnerships)
	}
}

func (c *Config) Stats() {
	stats := c.App.Group("/api/v1/stats")
	{
		stats.Get("/donor/:userId", c.StatsHandler.GetDonorStats)
		stats.Get("/recipient/:userId", c.StatsHandler.GetRecipientStats)
		stats.Get("/logistics/:userId", c.StatsHandler.GetLogisticsStats)
		stats.Get("/global", c.StatsHandler.GetGlobalStats)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

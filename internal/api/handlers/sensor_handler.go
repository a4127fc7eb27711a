package handlers

import (
	"SmartServe-Backend/domain"
	"SmartServe-Backend/internal/api/presenters"
	"SmartServe-Backend/internal/utils"
	"SmartServe-Backend/pkg/sensor"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SensorHandler interface {
		CreateReading(c *fiber.Ctx) error
		GetReadings(c *fiber.Ctx) error
		GetDeliveryReadings(c *fiber.Ctx) error
	}

	sensorHandler struct {
		sensorService sensor.SensorService
		validator     *validator.Validate
	}
)

func NewSensorHandler(sensorService sensor.SensorService, validator *validator.Validate) SensorHandler {
	return &sensorHandler{
		sensorService: sensorService,
		validator:     validator,
	}
}

func (h *sensorHandler) CreateReading(c *fiber.Ctx) error {
	req := new(domain.CreateSensorReadingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body"))
	}
	req.Normalize()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, utils.RequestErrorFromValidation(err))
	}

	created, err := h.sensorService.CreateReading(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated)
}

func (h *sensorHandler) GetReadings(c *fiber.Ctx) error {
	q := domain.SensorListQuery{
		Limit:  utils.ParseLimit(c.Query("limit"), 50),
		Offset: utils.ParseOffset(c.Query("offset")),
	}
	if raw := c.Query("deliveryId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return presenters.ErrorResponse(c, domain.InvalidIntField("deliveryId"))
		}
		q.DeliveryID = int(id)
	}

	readings, err := h.sensorService.ListReadings(c.Context(), q)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, readings, fiber.StatusOK)
}

func (h *sensorHandler) GetDeliveryReadings(c *fiber.Ctx) error {
	deliveryID, err := parseID(c.Params("deliveryId"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.InvalidIntField("deliveryId"))
	}

	readings, err := h.sensorService.ListReadings(c.Context(), domain.SensorListQuery{
		DeliveryID: int(deliveryID),
		Limit:      utils.ParseLimit(c.Query("limit"), 50),
		Offset:     utils.ParseOffset(c.Query("offset")),
	})
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, readings, fiber.StatusOK)
}

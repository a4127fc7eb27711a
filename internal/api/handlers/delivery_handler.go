package handlers

import (
	"encoding/json"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/internal/api/presenters"
	"SmartServe-Backend/internal/utils"
	"SmartServe-Backend/pkg/delivery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DeliveryHandler interface {
		CreateDelivery(c *fiber.Ctx) error
		GetDeliveries(c *fiber.Ctx) error
		GetDeliveryByID(c *fiber.Ctx) error
		GetDriverDeliveries(c *fiber.Ctx) error
		UpdateDelivery(c *fiber.Ctx) error
		DeleteDelivery(c *fiber.Ctx) error
	}

	deliveryHandler struct {
		deliveryService delivery.DeliveryService
		validator       *validator.Validate
	}
)

func NewDeliveryHandler(deliveryService delivery.DeliveryService, validator *validator.Validate) DeliveryHandler {
	return &deliveryHandler{
		deliveryService: deliveryService,
		validator:       validator,
	}
}

func (h *deliveryHandler) CreateDelivery(c *fiber.Ctx) error {
	req := new(domain.CreateDeliveryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body"))
	}
	req.Normalize()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, utils.RequestErrorFromValidation(err))
	}

	created, err := h.deliveryService.CreateDelivery(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated)
}

func (h *deliveryHandler) GetDeliveries(c *fiber.Ctx) error {
	q := domain.DeliveryListQuery{
		Status: c.Query("status"),
		Limit:  utils.ParseLimit(c.Query("limit"), 20),
		Offset: utils.ParseOffset(c.Query("offset")),
	}
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"driverId", &q.DriverID},
		{"donationId", &q.DonationID},
		{"claimId", &q.ClaimID},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		id, err := parseID(raw)
		if err != nil {
			return presenters.ErrorResponse(c, domain.InvalidIntField(p.name))
		}
		*p.dst = int(id)
	}

	deliveries, err := h.deliveryService.ListDeliveries(c.Context(), q)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, deliveries, fiber.StatusOK)
}

func (h *deliveryHandler) GetDeliveryByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	found, err := h.deliveryService.GetDeliveryByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK)
}

func (h *deliveryHandler) GetDriverDeliveries(c *fiber.Ctx) error {
	driverID, err := parseUserID(c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	deliveries, err := h.deliveryService.ListDriverDeliveries(
		c.Context(),
		driverID,
		c.Query("status"),
		utils.ParseLimit(c.Query("limit"), 20),
		utils.ParseOffset(c.Query("offset")),
	)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, deliveries, fiber.StatusOK)
}

func (h *deliveryHandler) UpdateDelivery(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	body := map[string]any{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return presenters.ErrorResponse(c, domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body"))
	}

	updated, err := h.deliveryService.UpdateDelivery(c.Context(), id, body)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK)
}

func (h *deliveryHandler) DeleteDelivery(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	deleted, err := h.deliveryService.DeleteDelivery(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"message":  domain.MessageDeliveryDeleted,
		"delivery": deleted,
	}, fiber.StatusOK)
}

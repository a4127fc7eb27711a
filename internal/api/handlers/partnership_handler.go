package handlers

import (
	"SmartServe-Backend/domain"
	"SmartServe-Backend/internal/api/presenters"
	"SmartServe-Backend/internal/utils"
	"SmartServe-Backend/pkg/partnership"

	"github.com/gofiber/fiber/v2"
)

type (
	PartnershipHandler interface {
		CreatePartnership(c *fiber.Ctx) error
		GetPartnerships(c *fiber.Ctx) error
	}

	partnershipHandler struct {
		partnershipService partnership.PartnershipService
	}
)

func NewPartnershipHandler(partnershipService partnership.PartnershipService) PartnershipHandler {
	return &partnershipHandler{partnershipService: partnershipService}
}

func (h *partnershipHandler) CreatePartnership(c *fiber.Ctx) error {
	req := new(domain.CreatePartnershipRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body"))
	}

	created, err := h.partnershipService.CreatePartnership(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated)
}

func (h *partnershipHandler) GetPartnerships(c *fiber.Ctx) error {
	q := domain.PartnershipListQuery{
		Limit:  utils.ParseLimit(c.Query("limit"), 20),
		Offset: utils.ParseOffset(c.Query("offset")),
	}
	// Unknown status values are ignored rather than rejected.
	if status := c.Query("status"); status != "" {
		for _, s := range domain.PartnershipStatuses {
			if s == status {
				q.Status = status
				break
			}
		}
	}

	partnerships, err := h.partnershipService.ListPartnerships(c.Context(), q)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, partnerships, fiber.StatusOK)
}

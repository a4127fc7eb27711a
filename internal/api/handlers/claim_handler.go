package handlers

import (
	"encoding/json"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/internal/api/presenters"
	"SmartServe-Backend/internal/utils"
	"SmartServe-Backend/pkg/claim"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ClaimHandler interface {
		CreateClaim(c *fiber.Ctx) error
		GetClaims(c *fiber.Ctx) error
		GetRecipientClaims(c *fiber.Ctx) error
		UpdateClaim(c *fiber.Ctx) error
		DeleteClaim(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		validator:    validator,
	}
}

func (h *claimHandler) CreateClaim(c *fiber.Ctx) error {
	req := new(domain.CreateClaimRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, utils.RequestErrorFromValidation(err))
	}

	created, err := h.claimService.CreateClaim(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated)
}

func (h *claimHandler) GetClaims(c *fiber.Ctx) error {
	q := domain.ClaimListQuery{
		Status: c.Query("status"),
		Limit:  utils.ParseLimit(c.Query("limit"), 20),
		Offset: utils.ParseOffset(c.Query("offset")),
	}
	if raw := c.Query("recipientId"); raw != "" {
		recipientID, err := parseID(raw)
		if err != nil {
			return presenters.ErrorResponse(c, domain.InvalidIntField("recipientId"))
		}
		q.RecipientID = int(recipientID)
	}

	claims, err := h.claimService.ListClaims(c.Context(), q)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, claims, fiber.StatusOK)
}

func (h *claimHandler) GetRecipientClaims(c *fiber.Ctx) error {
	recipientID, err := parseUserID(c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	claims, err := h.claimService.ListRecipientClaims(
		c.Context(),
		recipientID,
		c.Query("status"),
		utils.ParseLimit(c.Query("limit"), 20),
		utils.ParseOffset(c.Query("offset")),
	)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, claims, fiber.StatusOK)
}

func (h *claimHandler) UpdateClaim(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	body := map[string]any{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return presenters.ErrorResponse(c, domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body"))
	}

	updated, err := h.claimService.UpdateClaim(c.Context(), id, body)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK)
}

func (h *claimHandler) DeleteClaim(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	deleted, err := h.claimService.DeleteClaim(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"message": domain.MessageClaimDeleted,
		"claim":   deleted,
	}, fiber.StatusOK)
}

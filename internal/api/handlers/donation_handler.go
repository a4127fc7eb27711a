package handlers

import (
	"encoding/json"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/internal/api/presenters"
	"SmartServe-Backend/internal/utils"
	"SmartServe-Backend/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		GetDonations(c *fiber.Ctx) error
		GetDonorDonations(c *fiber.Ctx) error
		CreateDonation(c *fiber.Ctx) error
		UpdateDonation(c *fiber.Ctx) error
		DeleteDonation(c *fiber.Ctx) error
		UploadDonationImage(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

// GetDonations serves both the single fetch (?id=) and the filtered list.
func (h *donationHandler) GetDonations(c *fiber.Ctx) error {
	if raw := c.Query("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return presenters.ErrorResponse(c, err)
		}
		found, err := h.donationService.GetDonationByID(c.Context(), id)
		if err != nil {
			return presenters.ErrorResponse(c, err)
		}
		return presenters.SuccessResponse(c, found, fiber.StatusOK)
	}

	q := domain.DonationListQuery{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		AICategory: c.Query("aiCategory"),
		FoodType:   c.Query("foodType"),
		Sort:       utils.NormalizeSort(c.Query("sort"), domain.DonationSortFields, "createdAt"),
		Order:      utils.NormalizeOrder(c.Query("order")),
		Limit:      utils.ParseLimit(c.Query("limit"), 10),
		Offset:     utils.ParseOffset(c.Query("offset")),
	}
	donations, err := h.donationService.ListDonations(c.Context(), q)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, donations, fiber.StatusOK)
}

func (h *donationHandler) GetDonorDonations(c *fiber.Ctx) error {
	donorID, err := parseUserID(c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	donations, err := h.donationService.ListDonorDonations(
		c.Context(),
		donorID,
		c.Query("status"),
		utils.ParseLimit(c.Query("limit"), 20),
		utils.ParseOffset(c.Query("offset")),
	)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, donations, fiber.StatusOK)
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	req := new(domain.CreateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body"))
	}
	req.Normalize()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, utils.RequestErrorFromValidation(err))
	}

	created, err := h.donationService.CreateDonation(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated)
}

func (h *donationHandler) UpdateDonation(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	body := map[string]any{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return presenters.ErrorResponse(c, domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body"))
	}

	updated, err := h.donationService.UpdateDonation(c.Context(), id, body)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK)
}

func (h *donationHandler) DeleteDonation(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	deleted, err := h.donationService.DeleteDonation(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"message":  domain.MessageDonationDeleted,
		"donation": deleted,
	}, fiber.StatusOK)
}

func (h *donationHandler) UploadDonationImage(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, domain.MissingField("image"))
	}

	updated, err := h.donationService.AttachImage(c.Context(), id, file)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK)
}

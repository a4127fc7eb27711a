package handlers

import (
	"strconv"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/internal/api/presenters"
	"SmartServe-Backend/internal/utils"
	"SmartServe-Backend/pkg/notification"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		CreateNotification(c *fiber.Ctx) error
		GetUserNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) CreateNotification(c *fiber.Ctx) error {
	req := new(domain.CreateNotificationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body"))
	}
	req.Normalize()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, utils.RequestErrorFromValidation(err))
	}

	created, err := h.notificationService.CreateNotification(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated)
}

// GetUserNotifications lists the notifications of :userId; callers may
// only read their own.
func (h *notificationHandler) GetUserNotifications(c *fiber.Ctx) error {
	callerID, ok := c.Locals("user_id").(uint)
	if !ok {
		return presenters.ErrorResponse(c, domain.ErrUnauthorized)
	}
	userID, err := parseUserID(c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	if userID != callerID {
		return presenters.ErrorResponse(c, domain.ErrForbidden)
	}

	q := domain.NotificationListQuery{
		Limit:  utils.ParseLimit(c.Query("limit"), 20),
		Offset: utils.ParseOffset(c.Query("offset")),
	}
	if raw := c.Query("isRead"); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			return presenters.ErrorResponse(c, domain.BadRequest("INVALID_IS_READ", "isRead must be true or false"))
		}
		q.IsRead = &isRead
	}

	notifications, err := h.notificationService.ListUserNotifications(c.Context(), userID, q)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, notifications, fiber.StatusOK)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	callerID, ok := c.Locals("user_id").(uint)
	if !ok {
		return presenters.ErrorResponse(c, domain.ErrUnauthorized)
	}
	id, err := parseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	updated, err := h.notificationService.MarkAsRead(c.Context(), id, callerID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK)
}

package handlers

import (
	"SmartServe-Backend/internal/api/presenters"
	"SmartServe-Backend/pkg/stats"

	"github.com/gofiber/fiber/v2"
)

type (
	StatsHandler interface {
		GetDonorStats(c *fiber.Ctx) error
		GetRecipientStats(c *fiber.Ctx) error
		GetLogisticsStats(c *fiber.Ctx) error
		GetGlobalStats(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
	}
)

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandler{statsService: statsService}
}

func (h *statsHandler) GetDonorStats(c *fiber.Ctx) error {
	userID, err := parseUserID(c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	found, err := h.statsService.GetDonorStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK)
}

func (h *statsHandler) GetRecipientStats(c *fiber.Ctx) error {
	userID, err := parseUserID(c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	found, err := h.statsService.GetRecipientStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK)
}

func (h *statsHandler) GetLogisticsStats(c *fiber.Ctx) error {
	userID, err := parseUserID(c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	found, err := h.statsService.GetLogisticsStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK)
}

func (h *statsHandler) GetGlobalStats(c *fiber.Ctx) error {
	found, err := h.statsService.GetGlobalStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK)
}

package handlers

import (
	"github.com/careloop/selfcare-backend/internal/auth"
	"github.com/careloop/selfcare-backend/internal/dto"
	"github.com/careloop/selfcare-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	routineService *services.RoutineService
}

func NewAnalyticsHandler(routineService *services.RoutineService) *AnalyticsHandler {
	return &AnalyticsHandler{routineService: routineService}
}

func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	days := clampInt(c.QueryInt("days", 30), 1, 365)

	result, err := h.routineService.GetUserAnalytics(userID, days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute analytics",
		})
	}

	return c.JSON(result)
}

func (h *AnalyticsHandler) MoodTrends(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	days := clampInt(c.QueryInt("days", 30), 1, 365)

	trends, err := h.routineService.GetMoodTrends(userID, days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute mood trends",
		})
	}

	return c.JSON(fiber.Map{"mood_trends": trends, "period_days": days})
}

func (h *AnalyticsHandler) CategoryDistribution(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	days := clampInt(c.QueryInt("days", 30), 1, 365)

	dist, err := h.routineService.GetCategoryDistribution(userID, days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute category distribution",
		})
	}

	return c.JSON(fiber.Map{"category_distribution": dist, "period_days": days})
}

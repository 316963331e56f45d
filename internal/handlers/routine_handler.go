package handlers

import (
	"errors"
	"strings"

	"github.com/careloop/selfcare-backend/internal/auth"
	"github.com/careloop/selfcare-backend/internal/dto"
	"github.com/careloop/selfcare-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RoutineHandler struct {
	routineService *services.RoutineService
}

func NewRoutineHandler(routineService *services.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

func (h *RoutineHandler) Generate(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	routine, err := h.routineService.GenerateRoutine(c.Context(), &req, userID)
	if err != nil {
		if strings.Contains(err.Error(), "cannot be empty") ||
			strings.Contains(err.Error(), "duration must be") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to generate routine",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(routine)
}

func (h *RoutineHandler) List(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit := clampInt(c.QueryInt("limit", 20), 1, 100)
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	routines, err := h.routineService.GetUserRoutines(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch routines",
		})
	}

	return c.JSON(routines)
}

func (h *RoutineHandler) Get(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	routineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid routine id",
		})
	}

	routine, err := h.routineService.GetRoutine(routineID, userID)
	if err != nil {
		if errors.Is(err, services.ErrRoutineNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Routine not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch routine",
		})
	}

	return c.JSON(routine)
}

func (h *RoutineHandler) Complete(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	routineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid routine id",
		})
	}

	var req dto.CompleteRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	completion, err := h.routineService.CompleteRoutine(&req, routineID, userID)
	if err != nil {
		if errors.Is(err, services.ErrRoutineNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Routine not found",
			})
		}
		if errors.Is(err, services.ErrInvalidRating) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to complete routine",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(completion)
}

func (h *RoutineHandler) Search(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Query parameter q is required",
		})
	}
	limit := clampInt(c.QueryInt("limit", 20), 1, 100)

	routines, err := h.routineService.SearchRoutines(userID, query, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to search routines",
		})
	}

	return c.JSON(routines)
}

func (h *RoutineHandler) Recommendations(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit := clampInt(c.QueryInt("limit", 5), 1, 20)

	routines, err := h.routineService.GetRecommendations(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch recommendations",
		})
	}

	return c.JSON(routines)
}

func (h *RoutineHandler) Templates(c *fiber.Ctx) error {
	limit := clampInt(c.QueryInt("limit", 20), 1, 100)

	templates, err := h.routineService.GetTemplates(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch templates",
		})
	}

	return c.JSON(templates)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

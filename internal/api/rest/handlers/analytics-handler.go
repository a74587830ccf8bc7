package handlers

import (
	"github.com/campustrack/achievement_service/internal/api/rest/middleware"
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/helper/utils"
	"github.com/campustrack/achievement_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	svc            services.AnalyticsService
	authMiddleware fiber.Handler
}

func NewAnalyticsHandler(svc services.AnalyticsService, authMiddleware fiber.Handler) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, authMiddleware: authMiddleware}
}

func (h *AnalyticsHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	analytics := api.Group("/analytics",
		h.authMiddleware,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleHOD, domain.RoleAdvisor),
	)
	analytics.Get("/", h.Overview)
	analytics.Get("/classwise", h.Classwise)
}

func (h *AnalyticsHandler) Overview(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	q := dto.AnalyticsQuery{
		DepartmentID: queryUint(ctx, "departmentId"),
		ProgramID:    queryUint(ctx, "programId"),
		YearID:       queryUint(ctx, "yearId"),
		DivisionID:   queryUint(ctx, "divisionId"),
		BatchID:      queryUint(ctx, "batchId"),
	}

	overview, err := h.svc.Overview(actor, q)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, overview)
}

func (h *AnalyticsHandler) Classwise(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	report, err := h.svc.ClasswiseReport(actor, queryUint(ctx, "departmentId"), queryUint(ctx, "programId"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, report)
}

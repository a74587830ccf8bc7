package handlers

import (
	"github.com/campustrack/achievement_service/internal/api/rest/middleware"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/helper"
	"github.com/campustrack/achievement_service/internal/helper/utils"
	"github.com/campustrack/achievement_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	users := api.Group("/users",
		middleware.AuthMiddleware(h.auth, h.svc),
		middleware.AdminOnly(),
	)
	users.Get("/", h.List)
	users.Post("/", h.Create)
	users.Get("/:userID", h.Get)
	users.Put("/:userID", h.Update)
	users.Delete("/:userID", h.Deactivate)
}

func (h *UserHandler) List(ctx *fiber.Ctx) error {
	q := dto.UserListQuery{
		Role:         ctx.Query("role"),
		DepartmentID: queryUint(ctx, "departmentId"),
		ProgramID:    queryUint(ctx, "programId"),
		YearID:       queryUint(ctx, "yearId"),
		DivisionID:   queryUint(ctx, "divisionId"),
		BatchID:      queryUint(ctx, "batchId"),
		Search:       ctx.Query("search"),
		Page:         queryInt(ctx, "page", 1),
		Limit:        queryInt(ctx, "limit", 20),
	}

	users, pagination, err := h.svc.ListUsers(q)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponsePage(ctx, fiber.StatusOK, pagination, users)
}

func (h *UserHandler) Get(ctx *fiber.Ctx) error {
	userID, err := paramID(ctx, "userID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.svc.GetUser(userID)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.UserCreate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := helper.ValidateStruct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.svc.CreateUser(requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, user)
}

func (h *UserHandler) Update(ctx *fiber.Ctx) error {
	userID, err := paramID(ctx, "userID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var requestBody dto.UserUpdate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := helper.ValidateStruct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.svc.UpdateUser(userID, requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) Deactivate(ctx *fiber.Ctx) error {
	userID, err := paramID(ctx, "userID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.DeactivateUser(userID); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deactivated": true})
}

package handlers

import (
	"github.com/campustrack/achievement_service/internal/api/rest/middleware"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/helper"
	"github.com/campustrack/achievement_service/internal/helper/utils"
	"github.com/campustrack/achievement_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewAuthHandler(svc services.UserService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Get("/me", middleware.AuthMiddleware(h.auth, h.svc), h.Me)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}
	if err := helper.ValidateStruct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	token, user, err := h.svc.Login(requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LoginResponse{
		Token: token,
		User:  user,
	})
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, actor)
}

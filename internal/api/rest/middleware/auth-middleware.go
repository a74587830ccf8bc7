package middleware

import (
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/helper"
	"github.com/campustrack/achievement_service/internal/helper/utils"
	"github.com/campustrack/achievement_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the access token and loads the full user record
// into ctx.Locals("actor"). Deactivated accounts are rejected even when
// their token is still valid.
func AuthMiddleware(auth helper.Auth, userSvc services.UserService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := auth.VerifyToken(auth.TokenFromRequest(ctx))
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}

		actor, err := userSvc.GetUser(claims.UserID)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}
		if !actor.IsActive {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "account deactivated")
		}

		ctx.Locals("actor", actor)
		return ctx.Next()
	}
}

// Actor returns the authenticated user set by AuthMiddleware.
func Actor(ctx *fiber.Ctx) (*domain.User, bool) {
	actor, ok := ctx.Locals("actor").(*domain.User)
	return actor, ok && actor != nil
}

// RequireRoles gates a route to the listed roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		actor, ok := Actor(ctx)
		if !ok {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}
		for _, role := range roles {
			if actor.Role == role {
				return ctx.Next()
			}
		}
		return utils.ResponseError(ctx, fiber.StatusForbidden, "insufficient role")
	}
}

func AdminOnly() fiber.Handler {
	return RequireRoles(domain.RoleAdmin)
}

func ReviewersOnly() fiber.Handler {
	return RequireRoles(domain.RoleAdvisor, domain.RoleHOD)
}

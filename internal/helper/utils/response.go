package utils

import (
	"log"

	"github.com/campustrack/achievement_service/internal/apperr"
	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func ResponseCount(ctx *fiber.Ctx, status int, count int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func ResponsePage(ctx *fiber.Ctx, status int, p *Pagination, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success":    true,
		"pagination": p,
		"data":       data,
	})
}

// ResponseFromError maps the apperr taxonomy onto status codes. Anything
// not tagged is treated as a server fault: logged, answered generically.
func ResponseFromError(ctx *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case apperr.KindValidation:
		return ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	case apperr.KindForbidden:
		return ResponseError(ctx, fiber.StatusForbidden, err.Error())
	case apperr.KindUnauthorized:
		return ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	default:
		log.Printf("server error on %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ResponseError(ctx, fiber.StatusInternalServerError, "internal server error")
	}
}

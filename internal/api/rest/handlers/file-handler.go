package handlers

import (
	"os"

	"github.com/campustrack/achievement_service/internal/api/rest/middleware"
	"github.com/campustrack/achievement_service/internal/helper/utils"
	"github.com/campustrack/achievement_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	svc            services.FileService
	authMiddleware fiber.Handler
}

func NewFileHandler(svc services.FileService, authMiddleware fiber.Handler) *FileHandler {
	return &FileHandler{svc: svc, authMiddleware: authMiddleware}
}

func (h *FileHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	files := api.Group("/files", h.authMiddleware)
	files.Get("/:fileID", h.Download)
	files.Delete("/:fileID", h.Delete)
}

// Download streams a locally stored blob or redirects to remote storage.
func (h *FileHandler) Download(ctx *fiber.Ctx) error {
	fileID, err := paramID(ctx, "fileID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	file, err := h.svc.Get(fileID)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	if file.Path != "" {
		if _, err := os.Stat(file.Path); err != nil {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "file missing from storage")
		}
		ctx.Set(fiber.HeaderContentType, file.MimeType)
		ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+file.OriginalName+`"`)
		return ctx.SendFile(file.Path)
	}
	if file.URL != "" {
		return ctx.Redirect(file.URL, fiber.StatusTemporaryRedirect)
	}
	return utils.ResponseError(ctx, fiber.StatusNotFound, "file missing from storage")
}

func (h *FileHandler) Delete(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	fileID, err := paramID(ctx, "fileID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.Delete(ctx.UserContext(), actor, fileID); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": true})
}

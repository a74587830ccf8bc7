package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/campustrack/achievement_service/internal/api/rest/middleware"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/helper/utils"
	"github.com/campustrack/achievement_service/internal/services"
	pkgutils "github.com/campustrack/achievement_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const maxFormFileSize = 10 * 1024 * 1024

type AchievementHandler struct {
	svc            services.AchievementService
	authMiddleware fiber.Handler
}

func NewAchievementHandler(svc services.AchievementService, authMiddleware fiber.Handler) *AchievementHandler {
	return &AchievementHandler{svc: svc, authMiddleware: authMiddleware}
}

func (h *AchievementHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	achievements := api.Group("/achievements", h.authMiddleware)
	achievements.Get("/", h.List)
	achievements.Post("/", h.Create)
	achievements.Get("/:achievementID", h.Get)
	achievements.Get("/:achievementID/pdf", h.DownloadPDF)
	achievements.Put("/:achievementID", h.Update)
	achievements.Delete("/:achievementID", h.Delete)

	review := achievements.Group("/", middleware.ReviewersOnly())
	review.Put("/:achievementID/verify", h.Verify)
	review.Put("/:achievementID/reject", h.Reject)
}

func (h *AchievementHandler) List(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	q := dto.AchievementListQuery{
		StudentID:    queryUint(ctx, "studentId"),
		Status:       ctx.Query("status"),
		CategoryID:   queryUint(ctx, "categoryId"),
		DepartmentID: queryUint(ctx, "departmentId"),
		ProgramID:    queryUint(ctx, "programId"),
		YearID:       queryUint(ctx, "yearId"),
		DivisionID:   queryUint(ctx, "divisionId"),
		BatchID:      queryUint(ctx, "batchId"),
		Page:         queryInt(ctx, "page", 1),
		Limit:        queryInt(ctx, "limit", 20),
		Sort:         ctx.Query("sort"),
	}

	achievements, pagination, err := h.svc.List(actor, q)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponsePage(ctx, fiber.StatusOK, pagination, achievements)
}

func (h *AchievementHandler) Get(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	achievementID, err := paramID(ctx, "achievementID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	achievement, err := h.svc.Get(actor, achievementID)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, achievement)
}

func (h *AchievementHandler) Create(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseAchievementForm(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	achievement, err := h.svc.Create(ctx.UserContext(), actor, *input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, achievement)
}

func (h *AchievementHandler) Update(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	achievementID, err := paramID(ctx, "achievementID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	input, err := parseAchievementForm(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	achievement, err := h.svc.Update(ctx.UserContext(), actor, achievementID, *input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, achievement)
}

func (h *AchievementHandler) Verify(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	achievementID, err := paramID(ctx, "achievementID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	achievement, err := h.svc.Verify(actor, achievementID)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, achievement)
}

func (h *AchievementHandler) Reject(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	achievementID, err := paramID(ctx, "achievementID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var requestBody dto.RejectRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "rejectionReason is required")
	}

	achievement, err := h.svc.Reject(actor, achievementID, requestBody.RejectionReason)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, achievement)
}

func (h *AchievementHandler) Delete(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	achievementID, err := paramID(ctx, "achievementID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.Delete(ctx.UserContext(), actor, achievementID); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": true})
}

func (h *AchievementHandler) DownloadPDF(ctx *fiber.Ctx) error {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	achievementID, err := paramID(ctx, "achievementID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	data, err := h.svc.RenderPDF(actor, achievementID)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition,
		"attachment; filename=achievement-"+strconv.FormatUint(uint64(achievementID), 10)+".pdf")
	return ctx.Send(data)
}

/* =========================
   Multipart parsing
========================= */

// parseAchievementForm reads the multipart form into the create/update DTO.
// Scalar fields arrive as form values, files under "certificate", "photo" and
// "participantCertificates", and the participant file mapping as a JSON
// object in "participantCertificateMap" ({"<participantId>": <fileIndex>}).
func parseAchievementForm(ctx *fiber.Ctx) (*dto.AchievementCreate, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "multipart form expected")
	}

	input := dto.AchievementCreate{
		Title:        strings.TrimSpace(ctx.FormValue("title")),
		Description:  strings.TrimSpace(ctx.FormValue("description")),
		AcademicYear: strings.TrimSpace(ctx.FormValue("academicYear")),
	}

	if raw := ctx.FormValue("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid categoryId")
		}
		input.CategoryID = uint(id)
	}
	if raw := ctx.FormValue("semester"); raw != "" {
		semester, err := strconv.Atoi(raw)
		if err != nil || semester < 1 || semester > 8 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid semester")
		}
		input.Semester = &semester
	}
	if raw := ctx.FormValue("date"); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid date, use YYYY-MM-DD")
		}
		input.Date = date
	}
	if raw := ctx.FormValue("participantIds"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.ParticipantIDs); err != nil {
			// also accept a comma separated list
			for _, part := range strings.Split(raw, ",") {
				id, perr := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
				if perr != nil {
					return nil, fiber.NewError(fiber.StatusBadRequest, "invalid participantIds")
				}
				input.ParticipantIDs = append(input.ParticipantIDs, uint(id))
			}
		}
	}

	if input.Certificate, err = formFile(form, "certificate"); err != nil {
		return nil, err
	}
	if input.Photo, err = formFile(form, "photo"); err != nil {
		return nil, err
	}

	for _, header := range form.File["participantCertificates"] {
		upload, err := readUpload(header)
		if err != nil {
			return nil, err
		}
		input.ParticipantFiles = append(input.ParticipantFiles, *upload)
	}

	if raw := ctx.FormValue("participantCertificateMap"); raw != "" {
		mapped := map[string]int{}
		if err := json.Unmarshal([]byte(raw), &mapped); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid participantCertificateMap")
		}
		input.ParticipantFileMap = make(map[uint]int, len(mapped))
		for key, index := range mapped {
			participantID, err := strconv.ParseUint(key, 10, 32)
			if err != nil {
				return nil, fiber.NewError(fiber.StatusBadRequest, "invalid participantCertificateMap key")
			}
			input.ParticipantFileMap[uint(participantID)] = index
		}
	}

	return &input, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func formFile(form *multipart.Form, field string) (*dto.FileUpload, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	return readUpload(headers[0])
}

func readUpload(header *multipart.FileHeader) (*dto.FileUpload, error) {
	if header.Size > maxFormFileSize {
		return nil, fiber.NewError(fiber.StatusBadRequest, "file too large (max 10MB)")
	}

	src, err := header.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	data, err := pkgutils.ReadAllLimit(src, maxFormFileSize)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}

	return &dto.FileUpload{
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     int64(len(data)),
		Bytes:    data,
	}, nil
}

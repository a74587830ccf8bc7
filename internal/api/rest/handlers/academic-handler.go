package handlers

import (
	"github.com/campustrack/achievement_service/internal/api/rest/middleware"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/helper"
	"github.com/campustrack/achievement_service/internal/helper/utils"
	"github.com/campustrack/achievement_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AcademicHandler struct {
	svc            services.AcademicService
	authMiddleware fiber.Handler
}

func NewAcademicHandler(svc services.AcademicService, authMiddleware fiber.Handler) *AcademicHandler {
	return &AcademicHandler{svc: svc, authMiddleware: authMiddleware}
}

// Reads are open to every authenticated user, writes are admin only.
func (h *AcademicHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api", h.authMiddleware)
	admin := middleware.AdminOnly()

	departments := api.Group("/departments")
	departments.Get("/", h.ListDepartments)
	departments.Get("/:id", h.GetDepartment)
	departments.Post("/", admin, h.CreateDepartment)
	departments.Put("/:id", admin, h.UpdateDepartment)
	departments.Delete("/:id", admin, h.DeleteDepartment)

	programs := api.Group("/programs")
	programs.Get("/", h.ListPrograms)
	programs.Get("/:id", h.GetProgram)
	programs.Post("/", admin, h.CreateProgram)
	programs.Put("/:id", admin, h.UpdateProgram)
	programs.Delete("/:id", admin, h.DeleteProgram)

	years := api.Group("/years")
	years.Get("/", h.ListYears)
	years.Get("/:id", h.GetYear)
	years.Post("/", admin, h.CreateYear)
	years.Put("/:id", admin, h.UpdateYear)
	years.Delete("/:id", admin, h.DeleteYear)

	divisions := api.Group("/divisions")
	divisions.Get("/", h.ListDivisions)
	divisions.Get("/:id", h.GetDivision)
	divisions.Post("/", admin, h.CreateDivision)
	divisions.Put("/:id", admin, h.UpdateDivision)
	divisions.Delete("/:id", admin, h.DeleteDivision)

	batches := api.Group("/batches")
	batches.Get("/", h.ListBatches)
	batches.Get("/:id", h.GetBatch)
	batches.Post("/", admin, h.CreateBatch)
	batches.Put("/:id", admin, h.UpdateBatch)
	batches.Delete("/:id", admin, h.DeleteBatch)

	categories := api.Group("/categories")
	categories.Get("/", h.ListCategories)
	categories.Get("/:id", h.GetCategory)
	categories.Post("/", admin, h.CreateCategory)
	categories.Put("/:id", admin, h.UpdateCategory)
	categories.Delete("/:id", admin, h.DeleteCategory)
}

/* =========================
   Departments
========================= */

func (h *AcademicHandler) ListDepartments(ctx *fiber.Ctx) error {
	departments, err := h.svc.ListDepartments()
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseCount(ctx, fiber.StatusOK, len(departments), departments)
}

func (h *AcademicHandler) GetDepartment(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	department, err := h.svc.GetDepartment(id)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, department)
}

func (h *AcademicHandler) CreateDepartment(ctx *fiber.Ctx) error {
	var input dto.DepartmentInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	department, err := h.svc.CreateDepartment(input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, department)
}

func (h *AcademicHandler) UpdateDepartment(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	var input dto.DepartmentInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	department, err := h.svc.UpdateDepartment(id, input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, department)
}

func (h *AcademicHandler) DeleteDepartment(ctx *fiber.Ctx) error {
	return h.delete(ctx, h.svc.DeleteDepartment)
}

/* =========================
   Programs
========================= */

func (h *AcademicHandler) ListPrograms(ctx *fiber.Ctx) error {
	programs, err := h.svc.ListPrograms(queryUint(ctx, "departmentId"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseCount(ctx, fiber.StatusOK, len(programs), programs)
}

func (h *AcademicHandler) GetProgram(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	program, err := h.svc.GetProgram(id)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, program)
}

func (h *AcademicHandler) CreateProgram(ctx *fiber.Ctx) error {
	var input dto.ProgramInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	program, err := h.svc.CreateProgram(input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, program)
}

func (h *AcademicHandler) UpdateProgram(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	var input dto.ProgramInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	program, err := h.svc.UpdateProgram(id, input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, program)
}

func (h *AcademicHandler) DeleteProgram(ctx *fiber.Ctx) error {
	return h.delete(ctx, h.svc.DeleteProgram)
}

/* =========================
   Years
========================= */

func (h *AcademicHandler) ListYears(ctx *fiber.Ctx) error {
	years, err := h.svc.ListYears(queryUint(ctx, "programId"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseCount(ctx, fiber.StatusOK, len(years), years)
}

func (h *AcademicHandler) GetYear(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	year, err := h.svc.GetYear(id)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, year)
}

func (h *AcademicHandler) CreateYear(ctx *fiber.Ctx) error {
	var input dto.YearInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	year, err := h.svc.CreateYear(input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, year)
}

func (h *AcademicHandler) UpdateYear(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	var input dto.YearInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	year, err := h.svc.UpdateYear(id, input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, year)
}

func (h *AcademicHandler) DeleteYear(ctx *fiber.Ctx) error {
	return h.delete(ctx, h.svc.DeleteYear)
}

/* =========================
   Divisions
========================= */

func (h *AcademicHandler) ListDivisions(ctx *fiber.Ctx) error {
	divisions, err := h.svc.ListDivisions(queryUint(ctx, "yearId"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseCount(ctx, fiber.StatusOK, len(divisions), divisions)
}

func (h *AcademicHandler) GetDivision(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	division, err := h.svc.GetDivision(id)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, division)
}

func (h *AcademicHandler) CreateDivision(ctx *fiber.Ctx) error {
	var input dto.DivisionInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	division, err := h.svc.CreateDivision(input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, division)
}

func (h *AcademicHandler) UpdateDivision(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	var input dto.DivisionInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	division, err := h.svc.UpdateDivision(id, input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, division)
}

func (h *AcademicHandler) DeleteDivision(ctx *fiber.Ctx) error {
	return h.delete(ctx, h.svc.DeleteDivision)
}

/* =========================
   Batches
========================= */

func (h *AcademicHandler) ListBatches(ctx *fiber.Ctx) error {
	batches, err := h.svc.ListBatches(queryUint(ctx, "divisionId"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseCount(ctx, fiber.StatusOK, len(batches), batches)
}

func (h *AcademicHandler) GetBatch(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	batch, err := h.svc.GetBatch(id)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, batch)
}

func (h *AcademicHandler) CreateBatch(ctx *fiber.Ctx) error {
	var input dto.BatchInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	batch, err := h.svc.CreateBatch(input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, batch)
}

func (h *AcademicHandler) UpdateBatch(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	var input dto.BatchInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	batch, err := h.svc.UpdateBatch(id, input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, batch)
}

func (h *AcademicHandler) DeleteBatch(ctx *fiber.Ctx) error {
	return h.delete(ctx, h.svc.DeleteBatch)
}

/* =========================
   Categories
========================= */

func (h *AcademicHandler) ListCategories(ctx *fiber.Ctx) error {
	categories, err := h.svc.ListCategories()
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseCount(ctx, fiber.StatusOK, len(categories), categories)
}

func (h *AcademicHandler) GetCategory(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	category, err := h.svc.GetCategory(id)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, category)
}

func (h *AcademicHandler) CreateCategory(ctx *fiber.Ctx) error {
	var input dto.CategoryInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	category, err := h.svc.CreateCategory(input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, category)
}

func (h *AcademicHandler) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	var input dto.CategoryInput
	if err := parseBody(ctx, &input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	category, err := h.svc.UpdateCategory(id, input)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, category)
}

func (h *AcademicHandler) DeleteCategory(ctx *fiber.Ctx) error {
	return h.delete(ctx, h.svc.DeleteCategory)
}

func (h *AcademicHandler) delete(ctx *fiber.Ctx, fn func(uint) error) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	if err := fn(id); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": true})
}

// parseBody decodes and validates a JSON request body.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide valid inputs")
	}
	return helper.ValidateStruct(out)
}

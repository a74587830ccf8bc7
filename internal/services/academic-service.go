package services

import (
	"errors"
	"strings"

	"github.com/campustrack/achievement_service/internal/apperr"
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/helper"
	"github.com/campustrack/achievement_service/internal/repository"
	"gorm.io/gorm"
)

// AcademicService is plain CRUD over the hierarchy tree and categories.
// Deletes deactivate; history stays queryable for snapshots already taken.
type AcademicService interface {
	ListDepartments() ([]domain.Department, error)
	GetDepartment(id uint) (*domain.Department, error)
	CreateDepartment(input dto.DepartmentInput) (*domain.Department, error)
	UpdateDepartment(id uint, input dto.DepartmentInput) (*domain.Department, error)
	DeleteDepartment(id uint) error

	ListPrograms(departmentID *uint) ([]domain.Program, error)
	GetProgram(id uint) (*domain.Program, error)
	CreateProgram(input dto.ProgramInput) (*domain.Program, error)
	UpdateProgram(id uint, input dto.ProgramInput) (*domain.Program, error)
	DeleteProgram(id uint) error

	ListYears(programID *uint) ([]domain.Year, error)
	GetYear(id uint) (*domain.Year, error)
	CreateYear(input dto.YearInput) (*domain.Year, error)
	UpdateYear(id uint, input dto.YearInput) (*domain.Year, error)
	DeleteYear(id uint) error

	ListDivisions(yearID *uint) ([]domain.Division, error)
	GetDivision(id uint) (*domain.Division, error)
	CreateDivision(input dto.DivisionInput) (*domain.Division, error)
	UpdateDivision(id uint, input dto.DivisionInput) (*domain.Division, error)
	DeleteDivision(id uint) error

	ListBatches(divisionID *uint) ([]domain.Batch, error)
	GetBatch(id uint) (*domain.Batch, error)
	CreateBatch(input dto.BatchInput) (*domain.Batch, error)
	UpdateBatch(id uint, input dto.BatchInput) (*domain.Batch, error)
	DeleteBatch(id uint) error

	ListCategories() ([]domain.Category, error)
	GetCategory(id uint) (*domain.Category, error)
	CreateCategory(input dto.CategoryInput) (*domain.Category, error)
	UpdateCategory(id uint, input dto.CategoryInput) (*domain.Category, error)
	DeleteCategory(id uint) error
}

type academicService struct {
	repo repository.AcademicRepository
}

func NewAcademicService(repo repository.AcademicRepository) AcademicService {
	return &academicService{repo: repo}
}

func mapFindErr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s not found", what)
	}
	return apperr.Internal(err)
}

func mapSaveErr(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Validation("A %s with this code already exists in its parent", strings.ToLower(what))
	}
	return apperr.Internal(err)
}

// ----- departments -----

func (s *academicService) ListDepartments() ([]domain.Department, error) {
	out, err := s.repo.ListDepartments()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *academicService) GetDepartment(id uint) (*domain.Department, error) {
	d, err := s.repo.FindDepartment(id)
	if err != nil {
		return nil, mapFindErr(err, "Department")
	}
	return d, nil
}

func (s *academicService) CreateDepartment(input dto.DepartmentInput) (*domain.Department, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	d := &domain.Department{
		Code:        strings.ToUpper(strings.TrimSpace(input.Code)),
		Name:        strings.TrimSpace(input.Name),
		HodID:       input.HodID,
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.repo.SaveDepartment(d); err != nil {
		return nil, mapSaveErr(err, "Department")
	}
	return d, nil
}

func (s *academicService) UpdateDepartment(id uint, input dto.DepartmentInput) (*domain.Department, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	d, err := s.GetDepartment(id)
	if err != nil {
		return nil, err
	}
	d.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	d.Name = strings.TrimSpace(input.Name)
	d.HodID = input.HodID
	d.Description = input.Description
	if err := s.repo.SaveDepartment(d); err != nil {
		return nil, mapSaveErr(err, "Department")
	}
	return d, nil
}

func (s *academicService) DeleteDepartment(id uint) error {
	if _, err := s.GetDepartment(id); err != nil {
		return err
	}
	if err := s.repo.DeactivateDepartment(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ----- programs -----

func (s *academicService) ListPrograms(departmentID *uint) ([]domain.Program, error) {
	out, err := s.repo.ListPrograms(departmentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *academicService) GetProgram(id uint) (*domain.Program, error) {
	p, err := s.repo.FindProgram(id)
	if err != nil {
		return nil, mapFindErr(err, "Program")
	}
	return p, nil
}

func (s *academicService) CreateProgram(input dto.ProgramInput) (*domain.Program, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	if _, err := s.GetDepartment(input.DepartmentID); err != nil {
		return nil, err
	}
	p := &domain.Program{
		Code:         strings.ToLower(strings.TrimSpace(input.Code)),
		Name:         strings.TrimSpace(input.Name),
		DepartmentID: input.DepartmentID,
		Description:  input.Description,
		IsActive:     true,
	}
	if err := s.repo.SaveProgram(p); err != nil {
		return nil, mapSaveErr(err, "Program")
	}
	return p, nil
}

func (s *academicService) UpdateProgram(id uint, input dto.ProgramInput) (*domain.Program, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	p, err := s.GetProgram(id)
	if err != nil {
		return nil, err
	}
	p.Code = strings.ToLower(strings.TrimSpace(input.Code))
	p.Name = strings.TrimSpace(input.Name)
	p.DepartmentID = input.DepartmentID
	p.Description = input.Description
	if err := s.repo.SaveProgram(p); err != nil {
		return nil, mapSaveErr(err, "Program")
	}
	return p, nil
}

func (s *academicService) DeleteProgram(id uint) error {
	if _, err := s.GetProgram(id); err != nil {
		return err
	}
	if err := s.repo.DeactivateProgram(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ----- years -----

func (s *academicService) ListYears(programID *uint) ([]domain.Year, error) {
	out, err := s.repo.ListYears(programID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *academicService) GetYear(id uint) (*domain.Year, error) {
	y, err := s.repo.FindYear(id)
	if err != nil {
		return nil, mapFindErr(err, "Year")
	}
	return y, nil
}

func (s *academicService) CreateYear(input dto.YearInput) (*domain.Year, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	if _, err := s.GetProgram(input.ProgramID); err != nil {
		return nil, err
	}
	y := &domain.Year{
		Code:         strings.ToLower(strings.TrimSpace(input.Code)),
		Name:         strings.TrimSpace(input.Name),
		ProgramID:    input.ProgramID,
		AcademicYear: strings.TrimSpace(input.AcademicYear),
		Semester:     input.Semester,
		IsActive:     true,
	}
	if err := s.repo.SaveYear(y); err != nil {
		return nil, mapSaveErr(err, "Year")
	}
	return y, nil
}

func (s *academicService) UpdateYear(id uint, input dto.YearInput) (*domain.Year, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	y, err := s.GetYear(id)
	if err != nil {
		return nil, err
	}
	y.Code = strings.ToLower(strings.TrimSpace(input.Code))
	y.Name = strings.TrimSpace(input.Name)
	y.ProgramID = input.ProgramID
	y.AcademicYear = strings.TrimSpace(input.AcademicYear)
	y.Semester = input.Semester
	if err := s.repo.SaveYear(y); err != nil {
		return nil, mapSaveErr(err, "Year")
	}
	return y, nil
}

func (s *academicService) DeleteYear(id uint) error {
	if _, err := s.GetYear(id); err != nil {
		return err
	}
	if err := s.repo.DeactivateYear(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ----- divisions -----

func (s *academicService) ListDivisions(yearID *uint) ([]domain.Division, error) {
	out, err := s.repo.ListDivisions(yearID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *academicService) GetDivision(id uint) (*domain.Division, error) {
	d, err := s.repo.FindDivision(id)
	if err != nil {
		return nil, mapFindErr(err, "Division")
	}
	return d, nil
}

func (s *academicService) CreateDivision(input dto.DivisionInput) (*domain.Division, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	if _, err := s.GetYear(input.YearID); err != nil {
		return nil, err
	}
	d := &domain.Division{
		Code:      strings.ToUpper(strings.TrimSpace(input.Code)),
		Name:      strings.TrimSpace(input.Name),
		YearID:    input.YearID,
		AdvisorID: input.AdvisorID,
		IsActive:  true,
	}
	if err := s.repo.SaveDivision(d); err != nil {
		return nil, mapSaveErr(err, "Division")
	}
	return d, nil
}

func (s *academicService) UpdateDivision(id uint, input dto.DivisionInput) (*domain.Division, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	d, err := s.GetDivision(id)
	if err != nil {
		return nil, err
	}
	d.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	d.Name = strings.TrimSpace(input.Name)
	d.YearID = input.YearID
	d.AdvisorID = input.AdvisorID
	if err := s.repo.SaveDivision(d); err != nil {
		return nil, mapSaveErr(err, "Division")
	}
	return d, nil
}

func (s *academicService) DeleteDivision(id uint) error {
	if _, err := s.GetDivision(id); err != nil {
		return err
	}
	if err := s.repo.DeactivateDivision(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ----- batches -----

func (s *academicService) ListBatches(divisionID *uint) ([]domain.Batch, error) {
	out, err := s.repo.ListBatches(divisionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *academicService) GetBatch(id uint) (*domain.Batch, error) {
	b, err := s.repo.FindBatch(id)
	if err != nil {
		return nil, mapFindErr(err, "Batch")
	}
	return b, nil
}

func (s *academicService) CreateBatch(input dto.BatchInput) (*domain.Batch, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	if _, err := s.GetDivision(input.DivisionID); err != nil {
		return nil, err
	}
	b := &domain.Batch{
		Name:       strings.ToUpper(strings.TrimSpace(input.Name)),
		DivisionID: input.DivisionID,
		IsActive:   true,
	}
	if err := s.repo.SaveBatch(b); err != nil {
		return nil, mapSaveErr(err, "Batch")
	}
	return b, nil
}

func (s *academicService) UpdateBatch(id uint, input dto.BatchInput) (*domain.Batch, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	b, err := s.GetBatch(id)
	if err != nil {
		return nil, err
	}
	b.Name = strings.ToUpper(strings.TrimSpace(input.Name))
	b.DivisionID = input.DivisionID
	if err := s.repo.SaveBatch(b); err != nil {
		return nil, mapSaveErr(err, "Batch")
	}
	return b, nil
}

func (s *academicService) DeleteBatch(id uint) error {
	if _, err := s.GetBatch(id); err != nil {
		return err
	}
	if err := s.repo.DeactivateBatch(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ----- categories -----

func (s *academicService) ListCategories() ([]domain.Category, error) {
	out, err := s.repo.ListCategories()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *academicService) GetCategory(id uint) (*domain.Category, error) {
	c, err := s.repo.FindCategory(id)
	if err != nil {
		return nil, mapFindErr(err, "Category")
	}
	return c, nil
}

func (s *academicService) CreateCategory(input dto.CategoryInput) (*domain.Category, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	c := &domain.Category{
		Code:        strings.ToLower(strings.TrimSpace(input.Code)),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.repo.SaveCategory(c); err != nil {
		return nil, mapSaveErr(err, "Category")
	}
	return c, nil
}

func (s *academicService) UpdateCategory(id uint, input dto.CategoryInput) (*domain.Category, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	c, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	c.Code = strings.ToLower(strings.TrimSpace(input.Code))
	c.Name = strings.TrimSpace(input.Name)
	c.Description = input.Description
	if err := s.repo.SaveCategory(c); err != nil {
		return nil, mapSaveErr(err, "Category")
	}
	return c, nil
}

func (s *academicService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	if err := s.repo.DeactivateCategory(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

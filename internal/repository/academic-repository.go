package repository

import (
	"github.com/campustrack/achievement_service/internal/domain"
	"gorm.io/gorm"
)

// AcademicRepository covers the hierarchy tree plus categories. Delete is a
// soft deactivate everywhere; list endpoints only return active rows.
type AcademicRepository interface {
	ListDepartments() ([]domain.Department, error)
	FindDepartment(id uint) (*domain.Department, error)
	SaveDepartment(d *domain.Department) error
	DeactivateDepartment(id uint) error

	ListPrograms(departmentID *uint) ([]domain.Program, error)
	FindProgram(id uint) (*domain.Program, error)
	SaveProgram(p *domain.Program) error
	DeactivateProgram(id uint) error
	ProgramIDsByDepartment(departmentID uint) ([]uint, error)

	ListYears(programID *uint) ([]domain.Year, error)
	ListYearsByPrograms(programIDs []uint) ([]domain.Year, error)
	FindYear(id uint) (*domain.Year, error)
	SaveYear(y *domain.Year) error
	DeactivateYear(id uint) error

	ListDivisions(yearID *uint) ([]domain.Division, error)
	FindDivision(id uint) (*domain.Division, error)
	SaveDivision(d *domain.Division) error
	DeactivateDivision(id uint) error

	ListBatches(divisionID *uint) ([]domain.Batch, error)
	FindBatch(id uint) (*domain.Batch, error)
	SaveBatch(b *domain.Batch) error
	DeactivateBatch(id uint) error

	ListCategories() ([]domain.Category, error)
	FindCategory(id uint) (*domain.Category, error)
	SaveCategory(c *domain.Category) error
	DeactivateCategory(id uint) error
}

type academicRepository struct {
	db *gorm.DB
}

func NewAcademicRepository(db *gorm.DB) AcademicRepository {
	return &academicRepository{db: db}
}

func (r *academicRepository) active() *gorm.DB {
	return r.db.Where("is_active = ?", true)
}

func (r *academicRepository) deactivate(model any, id uint) error {
	return r.db.Model(model).Where("id = ?", id).Update("is_active", false).Error
}

// ----- departments -----

func (r *academicRepository) ListDepartments() ([]domain.Department, error) {
	var out []domain.Department
	if err := r.active().Order("code ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *academicRepository) FindDepartment(id uint) (*domain.Department, error) {
	d := &domain.Department{}
	if err := r.db.First(d, id).Error; err != nil {
		return nil, err
	}
	return d, nil
}

func (r *academicRepository) SaveDepartment(d *domain.Department) error {
	return r.db.Save(d).Error
}

func (r *academicRepository) DeactivateDepartment(id uint) error {
	return r.deactivate(&domain.Department{}, id)
}

// ----- programs -----

func (r *academicRepository) ListPrograms(departmentID *uint) ([]domain.Program, error) {
	tx := r.active().Preload("Department")
	if departmentID != nil {
		tx = tx.Where("department_id = ?", *departmentID)
	}
	var out []domain.Program
	if err := tx.Order("code ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *academicRepository) FindProgram(id uint) (*domain.Program, error) {
	p := &domain.Program{}
	if err := r.db.Preload("Department").First(p, id).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *academicRepository) SaveProgram(p *domain.Program) error {
	return r.db.Omit("Department").Save(p).Error
}

func (r *academicRepository) DeactivateProgram(id uint) error {
	return r.deactivate(&domain.Program{}, id)
}

func (r *academicRepository) ProgramIDsByDepartment(departmentID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&domain.Program{}).
		Where("department_id = ? AND is_active = ?", departmentID, true).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ----- years -----

func (r *academicRepository) ListYears(programID *uint) ([]domain.Year, error) {
	tx := r.active().Preload("Program")
	if programID != nil {
		tx = tx.Where("program_id = ?", *programID)
	}
	var out []domain.Year
	if err := tx.Order("code ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *academicRepository) ListYearsByPrograms(programIDs []uint) ([]domain.Year, error) {
	var out []domain.Year
	err := r.active().
		Where("program_id IN ?", programIDs).
		Order("code ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *academicRepository) FindYear(id uint) (*domain.Year, error) {
	y := &domain.Year{}
	if err := r.db.Preload("Program").First(y, id).Error; err != nil {
		return nil, err
	}
	return y, nil
}

func (r *academicRepository) SaveYear(y *domain.Year) error {
	return r.db.Omit("Program").Save(y).Error
}

func (r *academicRepository) DeactivateYear(id uint) error {
	return r.deactivate(&domain.Year{}, id)
}

// ----- divisions -----

func (r *academicRepository) ListDivisions(yearID *uint) ([]domain.Division, error) {
	tx := r.active().Preload("Year")
	if yearID != nil {
		tx = tx.Where("year_id = ?", *yearID)
	}
	var out []domain.Division
	if err := tx.Order("code ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *academicRepository) FindDivision(id uint) (*domain.Division, error) {
	d := &domain.Division{}
	if err := r.db.Preload("Year").First(d, id).Error; err != nil {
		return nil, err
	}
	return d, nil
}

func (r *academicRepository) SaveDivision(d *domain.Division) error {
	return r.db.Omit("Year").Save(d).Error
}

func (r *academicRepository) DeactivateDivision(id uint) error {
	return r.deactivate(&domain.Division{}, id)
}

// ----- batches -----

func (r *academicRepository) ListBatches(divisionID *uint) ([]domain.Batch, error) {
	tx := r.active().Preload("Division")
	if divisionID != nil {
		tx = tx.Where("division_id = ?", *divisionID)
	}
	var out []domain.Batch
	if err := tx.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *academicRepository) FindBatch(id uint) (*domain.Batch, error) {
	b := &domain.Batch{}
	if err := r.db.Preload("Division").First(b, id).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (r *academicRepository) SaveBatch(b *domain.Batch) error {
	return r.db.Omit("Division").Save(b).Error
}

func (r *academicRepository) DeactivateBatch(id uint) error {
	return r.deactivate(&domain.Batch{}, id)
}

// ----- categories -----

func (r *academicRepository) ListCategories() ([]domain.Category, error) {
	var out []domain.Category
	if err := r.active().Order("code ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *academicRepository) FindCategory(id uint) (*domain.Category, error) {
	c := &domain.Category{}
	if err := r.db.First(c, id).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *academicRepository) SaveCategory(c *domain.Category) error {
	return r.db.Save(c).Error
}

func (r *academicRepository) DeactivateCategory(id uint) error {
	return r.deactivate(&domain.Category{}, id)
}

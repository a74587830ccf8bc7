package services

import (
	"testing"

	"github.com/campustrack/achievement_service/internal/apperr"
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memAcademicRepo keeps every entity in maps keyed by id.
type memAcademicRepo struct {
	nextID      uint
	departments map[uint]*domain.Department
	programs    map[uint]*domain.Program
	years       map[uint]*domain.Year
	divisions   map[uint]*domain.Division
	batches     map[uint]*domain.Batch
	categories  map[uint]*domain.Category
}

func newMemAcademicRepo() *memAcademicRepo {
	return &memAcademicRepo{
		nextID:      1,
		departments: map[uint]*domain.Department{},
		programs:    map[uint]*domain.Program{},
		years:       map[uint]*domain.Year{},
		divisions:   map[uint]*domain.Division{},
		batches:     map[uint]*domain.Batch{},
		categories:  map[uint]*domain.Category{},
	}
}

func (r *memAcademicRepo) id(current uint) uint {
	if current != 0 {
		return current
	}
	id := r.nextID
	r.nextID++
	return id
}

func (r *memAcademicRepo) ListDepartments() ([]domain.Department, error) {
	var out []domain.Department
	for _, d := range r.departments {
		if d.IsActive {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *memAcademicRepo) FindDepartment(id uint) (*domain.Department, error) {
	d, ok := r.departments[id]
	if !ok || !d.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *memAcademicRepo) SaveDepartment(d *domain.Department) error {
	d.ID = r.id(d.ID)
	cp := *d
	r.departments[d.ID] = &cp
	return nil
}

func (r *memAcademicRepo) DeactivateDepartment(id uint) error {
	r.departments[id].IsActive = false
	return nil
}

func (r *memAcademicRepo) ListPrograms(departmentID *uint) ([]domain.Program, error) {
	var out []domain.Program
	for _, p := range r.programs {
		if !p.IsActive {
			continue
		}
		if departmentID != nil && p.DepartmentID != *departmentID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *memAcademicRepo) FindProgram(id uint) (*domain.Program, error) {
	p, ok := r.programs[id]
	if !ok || !p.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memAcademicRepo) SaveProgram(p *domain.Program) error {
	p.ID = r.id(p.ID)
	cp := *p
	r.programs[p.ID] = &cp
	return nil
}

func (r *memAcademicRepo) DeactivateProgram(id uint) error {
	r.programs[id].IsActive = false
	return nil
}

func (r *memAcademicRepo) ProgramIDsByDepartment(departmentID uint) ([]uint, error) {
	var out []uint
	for _, p := range r.programs {
		if p.IsActive && p.DepartmentID == departmentID {
			out = append(out, p.ID)
		}
	}
	return out, nil
}

func (r *memAcademicRepo) ListYears(programID *uint) ([]domain.Year, error) {
	var out []domain.Year
	for _, y := range r.years {
		if !y.IsActive {
			continue
		}
		if programID != nil && y.ProgramID != *programID {
			continue
		}
		out = append(out, *y)
	}
	return out, nil
}

func (r *memAcademicRepo) ListYearsByPrograms(programIDs []uint) ([]domain.Year, error) {
	var out []domain.Year
	for _, y := range r.years {
		if !y.IsActive {
			continue
		}
		for _, id := range programIDs {
			if y.ProgramID == id {
				out = append(out, *y)
				break
			}
		}
	}
	return out, nil
}

func (r *memAcademicRepo) FindYear(id uint) (*domain.Year, error) {
	y, ok := r.years[id]
	if !ok || !y.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *y
	return &cp, nil
}

func (r *memAcademicRepo) SaveYear(y *domain.Year) error {
	y.ID = r.id(y.ID)
	cp := *y
	r.years[y.ID] = &cp
	return nil
}

func (r *memAcademicRepo) DeactivateYear(id uint) error {
	r.years[id].IsActive = false
	return nil
}

func (r *memAcademicRepo) ListDivisions(yearID *uint) ([]domain.Division, error) {
	var out []domain.Division
	for _, d := range r.divisions {
		if !d.IsActive {
			continue
		}
		if yearID != nil && d.YearID != *yearID {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *memAcademicRepo) FindDivision(id uint) (*domain.Division, error) {
	d, ok := r.divisions[id]
	if !ok || !d.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *memAcademicRepo) SaveDivision(d *domain.Division) error {
	d.ID = r.id(d.ID)
	cp := *d
	r.divisions[d.ID] = &cp
	return nil
}

func (r *memAcademicRepo) DeactivateDivision(id uint) error {
	r.divisions[id].IsActive = false
	return nil
}

func (r *memAcademicRepo) ListBatches(divisionID *uint) ([]domain.Batch, error) {
	var out []domain.Batch
	for _, b := range r.batches {
		if !b.IsActive {
			continue
		}
		if divisionID != nil && b.DivisionID != *divisionID {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memAcademicRepo) FindBatch(id uint) (*domain.Batch, error) {
	b, ok := r.batches[id]
	if !ok || !b.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memAcademicRepo) SaveBatch(b *domain.Batch) error {
	b.ID = r.id(b.ID)
	cp := *b
	r.batches[b.ID] = &cp
	return nil
}

func (r *memAcademicRepo) DeactivateBatch(id uint) error {
	r.batches[id].IsActive = false
	return nil
}

func (r *memAcademicRepo) ListCategories() ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.categories {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memAcademicRepo) FindCategory(id uint) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok || !c.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memAcademicRepo) SaveCategory(c *domain.Category) error {
	c.ID = r.id(c.ID)
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memAcademicRepo) DeactivateCategory(id uint) error {
	r.categories[id].IsActive = false
	return nil
}

func TestHierarchyParentChecks(t *testing.T) {
	svc := NewAcademicService(newMemAcademicRepo())

	// a program needs an existing department
	_, err := svc.CreateProgram(dto.ProgramInput{Code: "ug", Name: "Undergraduate", DepartmentID: 99})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	dept, err := svc.CreateDepartment(dto.DepartmentInput{Code: "cs", Name: "Computer Science"})
	require.NoError(t, err)
	assert.Equal(t, "CS", dept.Code)

	program, err := svc.CreateProgram(dto.ProgramInput{Code: "UG", Name: "Undergraduate", DepartmentID: dept.ID})
	require.NoError(t, err)
	assert.Equal(t, "ug", program.Code)

	year, err := svc.CreateYear(dto.YearInput{Code: "FY", Name: "First Year", ProgramID: program.ID, AcademicYear: "2026-2027"})
	require.NoError(t, err)
	assert.Equal(t, "fy", year.Code)

	division, err := svc.CreateDivision(dto.DivisionInput{Code: "a", Name: "Division A", YearID: year.ID})
	require.NoError(t, err)
	assert.Equal(t, "A", division.Code)

	batch, err := svc.CreateBatch(dto.BatchInput{Name: "a1", DivisionID: division.ID})
	require.NoError(t, err)
	assert.Equal(t, "A1", batch.Name)
}

func TestDeleteDeactivatesInsteadOfRemoving(t *testing.T) {
	repo := newMemAcademicRepo()
	svc := NewAcademicService(repo)

	dept, err := svc.CreateDepartment(dto.DepartmentInput{Code: "cs", Name: "Computer Science"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDepartment(dept.ID))

	// hidden from the API
	_, err = svc.GetDepartment(dept.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	// but the row is still there for snapshots already taken
	assert.Contains(t, repo.departments, dept.ID)
}

func TestCategoryValidation(t *testing.T) {
	svc := NewAcademicService(newMemAcademicRepo())

	_, err := svc.CreateCategory(dto.CategoryInput{Code: "", Name: "Sports"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	c, err := svc.CreateCategory(dto.CategoryInput{Code: " SPORTS ", Name: " Sports "})
	require.NoError(t, err)
	assert.Equal(t, "sports", c.Code)
	assert.Equal(t, "Sports", c.Name)

	err = svc.DeleteCategory(999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

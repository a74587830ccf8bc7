package repository

import (
	"errors"
	"strings"

	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"gorm.io/gorm"
)

// StudentFilter narrows the student set for visibility scoping and analytics.
// Nil fields are ignored; DivisionIDs (advisor scope) matches any of the ids.
type StudentFilter struct {
	DepartmentID *uint
	ProgramID    *uint
	YearID       *uint
	DivisionID   *uint
	BatchID      *uint
	DivisionIDs  []uint
}

type UserRepository interface {
	Create(user *domain.User) error
	Save(user *domain.User) error
	FindByID(userID uint) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindByIDs(ids []uint) ([]domain.User, error)
	List(q dto.UserListQuery) ([]domain.User, int64, error)
	StudentIDs(f StudentFilter) ([]uint, error)
	CountStudents(f StudentFilter) (int64, error)
	ReplaceAssignedDivisions(user *domain.User, divisionIDs []uint) error
	Deactivate(userID uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.db.Omit("AssignedDivisions").Create(user).Error
}

func (r *userRepository) Save(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.db.Omit("AssignedDivisions", "Department", "Program", "Year", "Division", "Batch").
		Save(user).Error
}

func (r *userRepository) FindByID(userID uint) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.
		Preload("Department").
		Preload("Program").
		Preload("Year").
		Preload("Division").
		Preload("Batch").
		Preload("AssignedDivisions").
		First(user, userID).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.
		Preload("AssignedDivisions").
		First(user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindByIDs(ids []uint) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []domain.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) List(q dto.UserListQuery) ([]domain.User, int64, error) {
	tx := r.db.Model(&domain.User{}).Where("is_active = ?", true)

	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}
	if q.DepartmentID != nil {
		tx = tx.Where("department_id = ?", *q.DepartmentID)
	}
	if q.ProgramID != nil {
		tx = tx.Where("program_id = ?", *q.ProgramID)
	}
	if q.YearID != nil {
		tx = tx.Where("year_id = ?", *q.YearID)
	}
	if q.DivisionID != nil {
		tx = tx.Where("division_id = ?", *q.DivisionID)
	}
	if q.BatchID != nil {
		tx = tx.Where("batch_id = ?", *q.BatchID)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	err := tx.
		Preload("Department").
		Preload("Program").
		Preload("Year").
		Preload("Division").
		Preload("Batch").
		Preload("AssignedDivisions").
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) studentQuery(f StudentFilter) *gorm.DB {
	tx := r.db.Model(&domain.User{}).
		Where("role = ? AND is_active = ?", domain.RoleStudent, true)

	if f.DepartmentID != nil {
		tx = tx.Where("department_id = ?", *f.DepartmentID)
	}
	if f.ProgramID != nil {
		tx = tx.Where("program_id = ?", *f.ProgramID)
	}
	if f.YearID != nil {
		tx = tx.Where("year_id = ?", *f.YearID)
	}
	if f.DivisionID != nil {
		tx = tx.Where("division_id = ?", *f.DivisionID)
	}
	if f.BatchID != nil {
		tx = tx.Where("batch_id = ?", *f.BatchID)
	}
	if f.DivisionIDs != nil {
		tx = tx.Where("division_id IN ?", f.DivisionIDs)
	}
	return tx
}

func (r *userRepository) StudentIDs(f StudentFilter) ([]uint, error) {
	var ids []uint
	if err := r.studentQuery(f).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userRepository) CountStudents(f StudentFilter) (int64, error) {
	var n int64
	if err := r.studentQuery(f).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *userRepository) ReplaceAssignedDivisions(user *domain.User, divisionIDs []uint) error {
	divisions := make([]domain.Division, 0, len(divisionIDs))
	for _, id := range divisionIDs {
		divisions = append(divisions, domain.Division{ID: id})
	}
	return r.db.Model(user).Association("AssignedDivisions").Replace(divisions)
}

func (r *userRepository) Deactivate(userID uint) error {
	return r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Update("is_active", false).Error
}

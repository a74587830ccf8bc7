package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleHOD     = "hod"
	RoleAdvisor = "advisor"
	RoleStudent = "student"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;index" json:"role"`
	RollNo       *string `gorm:"uniqueIndex" json:"roll_no,omitempty"`

	// Student placement (strict tree: department -> program -> year -> division -> batch)
	DepartmentID *uint       `gorm:"index" json:"department_id,omitempty"`
	Department   *Department `json:"department,omitempty"`
	ProgramID    *uint       `gorm:"index" json:"program_id,omitempty"`
	Program      *Program    `json:"program,omitempty"`
	YearID       *uint       `gorm:"index" json:"year_id,omitempty"`
	Year         *Year       `json:"year,omitempty"`
	DivisionID   *uint       `gorm:"index" json:"division_id,omitempty"`
	Division     *Division   `json:"division,omitempty"`
	BatchID      *uint       `gorm:"index" json:"batch_id,omitempty"`
	Batch        *Batch      `json:"batch,omitempty"`

	// Advisor scope
	AssignedDivisions []Division `gorm:"many2many:user_assigned_divisions" json:"assigned_divisions,omitempty"`

	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	gorm.Model
}

func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// HasDivision reports whether the advisor is assigned the given division.
func (u *User) HasDivision(divisionID uint) bool {
	for _, d := range u.AssignedDivisions {
		if d.ID == divisionID {
			return true
		}
	}
	return false
}

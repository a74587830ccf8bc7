package domain

import "gorm.io/gorm"

// Academic hierarchy. Each level keeps a code/name pair and a soft
// isActive flag; delete endpoints deactivate instead of removing rows.

type Department struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	HodID       *uint   `json:"hod_id,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`
	gorm.Model
}

type Program struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Code         string      `gorm:"type:varchar(20);not null;uniqueIndex:uidx_programs_code_department" json:"code"` // ug | pg
	Name         string      `gorm:"type:varchar(255);not null" json:"name"`
	DepartmentID uint        `gorm:"not null;uniqueIndex:uidx_programs_code_department" json:"department_id"`
	Department   *Department `json:"department,omitempty"`
	Description  *string     `json:"description,omitempty"`
	IsActive     bool        `gorm:"not null;default:true" json:"is_active"`
	gorm.Model
}

type Year struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Code         string   `gorm:"type:varchar(20);not null;uniqueIndex:uidx_years_code_program" json:"code"`
	Name         string   `gorm:"type:varchar(255);not null" json:"name"`
	ProgramID    uint     `gorm:"not null;uniqueIndex:uidx_years_code_program" json:"program_id"`
	Program      *Program `json:"program,omitempty"`
	AcademicYear string   `gorm:"type:varchar(20)" json:"academic_year"` // e.g. "2024-2025"
	Semester     *int     `json:"semester,omitempty"`
	IsActive     bool     `gorm:"not null;default:true" json:"is_active"`
	gorm.Model
}

type Division struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Code      string `gorm:"type:varchar(20);not null;uniqueIndex:uidx_divisions_code_year" json:"code"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	YearID    uint   `gorm:"not null;uniqueIndex:uidx_divisions_code_year" json:"year_id"`
	Year      *Year  `json:"year,omitempty"`
	AdvisorID *uint  `json:"advisor_id,omitempty"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
	gorm.Model
}

type Batch struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(50);not null;uniqueIndex:uidx_batches_name_division" json:"name"`
	DivisionID uint      `gorm:"not null;uniqueIndex:uidx_batches_name_division" json:"division_id"`
	Division   *Division `json:"division,omitempty"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	gorm.Model
}

type Category struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"type:varchar(30);uniqueIndex;not null" json:"code"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`
	gorm.Model
}

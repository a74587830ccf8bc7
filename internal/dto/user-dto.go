package dto

type UserCreate struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role" validate:"required,oneof=admin hod advisor student"`
	RollNo   *string `json:"roll_no,omitempty"`

	DepartmentID *uint `json:"department_id,omitempty"`
	ProgramID    *uint `json:"program_id,omitempty"`
	YearID       *uint `json:"year_id,omitempty"`
	DivisionID   *uint `json:"division_id,omitempty"`
	BatchID      *uint `json:"batch_id,omitempty"`

	AssignedDivisionIDs []uint `json:"assigned_division_ids,omitempty"`
}

type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin hod advisor student"`
	RollNo   *string `json:"roll_no,omitempty"`

	DepartmentID *uint `json:"department_id,omitempty"`
	ProgramID    *uint `json:"program_id,omitempty"`
	YearID       *uint `json:"year_id,omitempty"`
	DivisionID   *uint `json:"division_id,omitempty"`
	BatchID      *uint `json:"batch_id,omitempty"`

	AssignedDivisionIDs *[]uint `json:"assigned_division_ids,omitempty"`
	IsActive            *bool   `json:"is_active,omitempty"`
}

type UserListQuery struct {
	Role         string
	DepartmentID *uint
	ProgramID    *uint
	YearID       *uint
	DivisionID   *uint
	BatchID      *uint
	Search       string
	Page         int
	Limit        int
}

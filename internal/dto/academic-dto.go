package dto

type DepartmentInput struct {
	Code        string  `json:"code" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	HodID       *uint   `json:"hod_id,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ProgramInput struct {
	Code         string  `json:"code" validate:"required,oneof=ug pg"`
	Name         string  `json:"name" validate:"required"`
	DepartmentID uint    `json:"department_id" validate:"required"`
	Description  *string `json:"description,omitempty"`
}

type YearInput struct {
	Code         string `json:"code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	ProgramID    uint   `json:"program_id" validate:"required"`
	AcademicYear string `json:"academic_year"`
	Semester     *int   `json:"semester,omitempty" validate:"omitempty,min=1,max=8"`
}

type DivisionInput struct {
	Code      string `json:"code" validate:"required"`
	Name      string `json:"name" validate:"required"`
	YearID    uint   `json:"year_id" validate:"required"`
	AdvisorID *uint  `json:"advisor_id,omitempty"`
}

type BatchInput struct {
	Name       string `json:"name" validate:"required"`
	DivisionID uint   `json:"division_id" validate:"required"`
}

type CategoryInput struct {
	Code        string  `json:"code" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

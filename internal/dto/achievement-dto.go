package dto

import "time"

// FileUpload carries the bytes of one multipart file into the service layer.
type FileUpload struct {
	Filename string
	MimeType string
	Size     int64
	Bytes    []byte
}

type AchievementCreate struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"required,min=20"`
	CategoryID   uint      `json:"category_id" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	AcademicYear string    `json:"academic_year"`
	Semester     *int      `json:"semester,omitempty" validate:"omitempty,min=1,max=8"`

	// Group members excluding the creator.
	ParticipantIDs []uint `json:"participant_ids,omitempty"`

	Certificate *FileUpload `json:"-"`
	Photo       *FileUpload `json:"-"`

	// Per-participant certificates: ParticipantFileMap maps a participant id
	// to an index into ParticipantFiles. Files left unmapped are skipped.
	ParticipantFiles   []FileUpload `json:"-"`
	ParticipantFileMap map[uint]int `json:"-"`
}

// AchievementUpdate replaces the editable fields wholesale, matching the
// create payload shape.
type AchievementUpdate = AchievementCreate

type RejectRequest struct {
	RejectionReason string `json:"rejectionReason" validate:"required"`
}

type AchievementListQuery struct {
	StudentID    *uint
	Status       string
	CategoryID   *uint
	DepartmentID *uint
	ProgramID    *uint
	YearID       *uint
	DivisionID   *uint
	BatchID      *uint
	Page         int
	Limit        int
	Sort         string
}

package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AchievementPending  = "pending"
	AchievementVerified = "verified"
	AchievementRejected = "rejected"
)

const (
	AchievementSolo  = "solo"
	AchievementGroup = "group"
)

// MaxTeamSize caps owner + participants on a group achievement.
const MaxTeamSize = 5

type Achievement struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	StudentID uint  `gorm:"not null;index:idx_achievements_student_status;index:idx_achievements_student_title_date" json:"student_id"`
	Student   *User `json:"student,omitempty"`

	Title        string    `gorm:"type:varchar(255);not null;index:idx_achievements_student_title_date" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	CategoryID   uint      `gorm:"not null;index" json:"category_id"`
	Category     *Category `json:"category,omitempty"`
	Date         time.Time `gorm:"not null;index:idx_achievements_student_title_date" json:"date"`
	AcademicYear string    `gorm:"type:varchar(20)" json:"academic_year"`
	Semester     *int      `json:"semester,omitempty"`

	Type   string `gorm:"type:varchar(10);not null;default:solo" json:"type"`
	Status string `gorm:"type:varchar(20);not null;default:pending;index:idx_achievements_student_status" json:"status"`

	CertificateID *uint `json:"certificate_id,omitempty"`
	Certificate   *File `json:"certificate,omitempty"`
	PhotoID       *uint `json:"photo_id,omitempty"`
	Photo         *File `json:"photo,omitempty"`

	// Group members, creator excluded (the creator is always the owner).
	Participants            []User                   `gorm:"many2many:achievement_participants" json:"participants,omitempty"`
	ParticipantCertificates []ParticipantCertificate `json:"participant_certificates,omitempty"`

	VerifiedByID    *uint      `json:"verified_by_id,omitempty"`
	VerifiedBy      *User      `json:"verified_by,omitempty"`
	VerifiedDate    *time.Time `json:"verified_date,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	// Immutable once written: the owner's (and participants') academic placement
	// at the verification instant.
	StudentSnapshot      datatypes.JSON `json:"student_snapshot,omitempty"`
	ParticipantSnapshots datatypes.JSON `json:"participant_snapshots,omitempty"`

	gorm.Model
}

type ParticipantCertificate struct {
	ID            uint  `gorm:"primaryKey" json:"id"`
	AchievementID uint  `gorm:"index;not null" json:"achievement_id"`
	ParticipantID uint  `gorm:"not null" json:"participant_id"`
	Participant   *User `json:"participant,omitempty"`
	FileID        uint  `gorm:"not null" json:"file_id"`
	File          *File `json:"file,omitempty"`
	gorm.Model
}

// SnapshotRef is one level of the academic tree inside a snapshot.
type SnapshotRef struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code,omitempty"`
	AcademicYear string `json:"academic_year,omitempty"`
	Semester     *int   `json:"semester,omitempty"`
}

// AcademicSnapshot is the owner's placement copied at verification time.
type AcademicSnapshot struct {
	Department *SnapshotRef `json:"department,omitempty"`
	Program    *SnapshotRef `json:"program,omitempty"`
	Year       *SnapshotRef `json:"year,omitempty"`
	Division   *SnapshotRef `json:"division,omitempty"`
	Batch      *SnapshotRef `json:"batch,omitempty"`
}

type ParticipantSnapshot struct {
	StudentID uint             `json:"student_id"`
	Name      string           `json:"name"`
	RollNo    string           `json:"roll_no,omitempty"`
	Placement AcademicSnapshot `json:"placement"`
}

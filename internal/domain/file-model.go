package domain

import "gorm.io/gorm"

const (
	FileTypeCertificate            = "certificate"
	FileTypePhoto                  = "photo"
	FileTypeParticipantCertificate = "participant_certificate"
)

type File struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Filename     string `gorm:"not null" json:"filename"`
	OriginalName string `gorm:"not null" json:"original_name"`
	MimeType     string `gorm:"type:varchar(100);not null" json:"mime_type"`
	Size         int64  `gorm:"not null" json:"size"`
	// Path is set for local storage, URL/PublicID for remote storage.
	Path         string `json:"-"`
	URL          string `json:"url,omitempty"`
	PublicID     string `json:"-"`
	UploadedByID uint   `gorm:"index;not null" json:"uploaded_by"`
	FileType     string `gorm:"type:varchar(30);not null" json:"file_type"`
	gorm.Model
}

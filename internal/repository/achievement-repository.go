package repository

import (
	"errors"
	"time"

	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementScope is the output of the visibility filter builder: either
// unrestricted (admin, hod without department) or an explicit owner id set,
// optionally widened by "appears as participant" for the student role.
type AchievementScope struct {
	Restrict      bool
	StudentIDs    []uint
	ParticipantID *uint
}

type AchievementListFilter struct {
	Scope      AchievementScope
	Status     string
	CategoryID *uint
	Sort       string
	Page       int
	Limit      int
}

type AchievementRepository interface {
	Create(a *domain.Achievement) error
	Update(a *domain.Achievement) error
	FindByID(id uint) (*domain.Achievement, error)
	List(f AchievementListFilter) ([]domain.Achievement, int64, error)
	HasDuplicate(studentID uint, title string, date time.Time, excludeID uint) (bool, error)
	ReplaceParticipants(a *domain.Achievement, participants []domain.User) error
	ReplaceParticipantCertificates(achievementID uint, pcs []domain.ParticipantCertificate) error
	Verify(id, reviewerID uint, studentSnapshot, participantSnapshots []byte) error
	Reject(id, reviewerID uint, reason string) error
	Delete(id uint) error

	CountInScope(scope AchievementScope, status string) (int64, error)
	DistinctStudentsInScope(scope AchievementScope) (int64, error)
	TopCategoriesInScope(scope AchievementScope, limit int) ([]dto.CategoryCount, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(a *domain.Achievement) error {
	if a == nil {
		return errors.New("nil achievement")
	}
	return r.db.Omit(clause.Associations).Create(a).Error
}

func (r *achievementRepository) Update(a *domain.Achievement) error {
	if a == nil {
		return errors.New("nil achievement")
	}
	return r.db.Omit(clause.Associations).Save(a).Error
}

func (r *achievementRepository) FindByID(id uint) (*domain.Achievement, error) {
	a := &domain.Achievement{}
	err := r.db.
		Preload("Student").
		Preload("Category").
		Preload("VerifiedBy").
		Preload("Certificate").
		Preload("Photo").
		Preload("Participants").
		Preload("ParticipantCertificates").
		Preload("ParticipantCertificates.Participant").
		Preload("ParticipantCertificates.File").
		First(a, id).Error
	if err != nil {
		return nil, err
	}
	return a, nil
}

// scoped applies the visibility scope to an achievements query.
func (r *achievementRepository) scoped(tx *gorm.DB, s AchievementScope) *gorm.DB {
	if !s.Restrict {
		return tx
	}
	if s.ParticipantID != nil {
		return tx.Where(
			"student_id IN ? OR id IN (?)",
			s.StudentIDs,
			r.db.Table("achievement_participants").
				Select("achievement_id").
				Where("user_id = ?", *s.ParticipantID),
		)
	}
	return tx.Where("student_id IN ?", s.StudentIDs)
}

var listSortColumns = map[string]string{
	"createdAt":  "created_at ASC",
	"-createdAt": "created_at DESC",
	"date":       "date ASC",
	"-date":      "date DESC",
	"title":      "title ASC",
	"-title":     "title DESC",
}

func (r *achievementRepository) List(f AchievementListFilter) ([]domain.Achievement, int64, error) {
	tx := r.scoped(r.db.Model(&domain.Achievement{}), f.Scope)

	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.CategoryID != nil {
		tx = tx.Where("category_id = ?", *f.CategoryID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := listSortColumns[f.Sort]
	if !ok {
		order = "created_at DESC"
	}

	var out []domain.Achievement
	err := tx.
		Preload("Student").
		Preload("Category").
		Preload("VerifiedBy").
		Preload("Certificate").
		Preload("Photo").
		Preload("Participants").
		Order(order).
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *achievementRepository) HasDuplicate(studentID uint, title string, date time.Time, excludeID uint) (bool, error) {
	tx := r.db.Model(&domain.Achievement{}).
		Where("student_id = ? AND title = ? AND date = ?", studentID, title, date)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}

	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *achievementRepository) ReplaceParticipants(a *domain.Achievement, participants []domain.User) error {
	return r.db.Model(a).Association("Participants").Replace(participants)
}

func (r *achievementRepository) ReplaceParticipantCertificates(achievementID uint, pcs []domain.ParticipantCertificate) error {
	err := r.db.Where("achievement_id = ?", achievementID).
		Delete(&domain.ParticipantCertificate{}).Error
	if err != nil {
		return err
	}
	if len(pcs) == 0 {
		return nil
	}
	for i := range pcs {
		pcs[i].AchievementID = achievementID
	}
	return r.db.Create(&pcs).Error
}

func (r *achievementRepository) Verify(id, reviewerID uint, studentSnapshot, participantSnapshots []byte) error {
	return r.db.Model(&domain.Achievement{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":                domain.AchievementVerified,
			"verified_by_id":        reviewerID,
			"verified_date":         time.Now(),
			"rejection_reason":      nil,
			"student_snapshot":      studentSnapshot,
			"participant_snapshots": participantSnapshots,
		}).Error
}

func (r *achievementRepository) Reject(id, reviewerID uint, reason string) error {
	return r.db.Model(&domain.Achievement{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           domain.AchievementRejected,
			"verified_by_id":   reviewerID,
			"verified_date":    time.Now(),
			"rejection_reason": reason,
		}).Error
}

func (r *achievementRepository) Delete(id uint) error {
	err := r.db.Where("achievement_id = ?", id).
		Delete(&domain.ParticipantCertificate{}).Error
	if err != nil {
		return err
	}
	return r.db.Delete(&domain.Achievement{}, id).Error
}

func (r *achievementRepository) CountInScope(scope AchievementScope, status string) (int64, error) {
	tx := r.scoped(r.db.Model(&domain.Achievement{}), scope)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *achievementRepository) DistinctStudentsInScope(scope AchievementScope) (int64, error) {
	tx := r.scoped(r.db.Model(&domain.Achievement{}), scope)
	var n int64
	if err := tx.Distinct("student_id").Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *achievementRepository) TopCategoriesInScope(scope AchievementScope, limit int) ([]dto.CategoryCount, error) {
	tx := r.scoped(r.db.Model(&domain.Achievement{}), scope)

	var out []dto.CategoryCount
	err := tx.
		Select("achievements.category_id AS category_id, categories.name AS category, COUNT(*) AS count").
		Joins("JOIN categories ON categories.id = achievements.category_id").
		Group("achievements.category_id, categories.name").
		Order("count DESC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/campustrack/achievement_service/internal/apperr"
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/helper"
	"github.com/campustrack/achievement_service/internal/helper/utils"
	"github.com/campustrack/achievement_service/internal/interfaces"
	"github.com/campustrack/achievement_service/internal/metrics"
	"github.com/campustrack/achievement_service/internal/pdf"
	"github.com/campustrack/achievement_service/internal/repository"
	"github.com/campustrack/achievement_service/pkg/imageutil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

const (
	photoMaxWidth = 1600
	photoQuality  = 85
)

// swapped out in tests
var normalizePhoto = func(b []byte) ([]byte, error) {
	return imageutil.NormalizeToJPG(b, photoMaxWidth, photoQuality)
}

type AchievementService interface {
	List(actor *domain.User, q dto.AchievementListQuery) ([]domain.Achievement, *utils.Pagination, error)
	Get(actor *domain.User, id uint) (*domain.Achievement, error)
	Create(ctx context.Context, actor *domain.User, input dto.AchievementCreate) (*domain.Achievement, error)
	Update(ctx context.Context, actor *domain.User, id uint, input dto.AchievementUpdate) (*domain.Achievement, error)
	Verify(actor *domain.User, id uint) (*domain.Achievement, error)
	Reject(actor *domain.User, id uint, reason string) (*domain.Achievement, error)
	Delete(ctx context.Context, actor *domain.User, id uint) error
	RenderPDF(actor *domain.User, id uint) ([]byte, error)
}

type achievementService struct {
	repo     repository.AchievementRepository
	userRepo repository.UserRepository
	fileRepo repository.FileRepository
	academic repository.AcademicRepository
	storage  interfaces.FileStorage
	producer interfaces.ProducerHandler
}

func NewAchievementService(
	repo repository.AchievementRepository,
	userRepo repository.UserRepository,
	fileRepo repository.FileRepository,
	academic repository.AcademicRepository,
	storage interfaces.FileStorage,
	producer interfaces.ProducerHandler,
) AchievementService {
	return &achievementService{
		repo:     repo,
		userRepo: userRepo,
		fileRepo: fileRepo,
		academic: academic,
		storage:  storage,
		producer: producer,
	}
}

/* =========================
   Visibility filter builder
========================= */

// buildScope maps (actor role, actor identity, explicit filters) to the set
// of achievement owners the actor may see. Precedence: role scope first,
// explicit filters intersect afterwards. An empty set is a valid scope and
// yields an empty page, never an error.
func (s *achievementService) buildScope(actor *domain.User, q dto.AchievementListQuery) (repository.AchievementScope, error) {
	scope := repository.AchievementScope{}

	switch actor.Role {
	case domain.RoleStudent:
		self := actor.ID
		scope.Restrict = true
		scope.StudentIDs = []uint{self}
		scope.ParticipantID = &self
	case domain.RoleAdvisor:
		divisionIDs := make([]uint, 0, len(actor.AssignedDivisions))
		for _, d := range actor.AssignedDivisions {
			divisionIDs = append(divisionIDs, d.ID)
		}
		ids, err := s.userRepo.StudentIDs(repository.StudentFilter{DivisionIDs: divisionIDs})
		if err != nil {
			return scope, apperr.Internal(err)
		}
		scope.Restrict = true
		scope.StudentIDs = ids
	case domain.RoleHOD:
		if actor.DepartmentID != nil {
			ids, err := s.userRepo.StudentIDs(repository.StudentFilter{DepartmentID: actor.DepartmentID})
			if err != nil {
				return scope, apperr.Internal(err)
			}
			scope.Restrict = true
			scope.StudentIDs = ids
		}
	case domain.RoleAdmin:
		// unrestricted
	default:
		scope.Restrict = true
		scope.StudentIDs = nil
	}

	// Intersect with the explicit organizational filters.
	orgFilter := repository.StudentFilter{
		DepartmentID: q.DepartmentID,
		ProgramID:    q.ProgramID,
		YearID:       q.YearID,
		DivisionID:   q.DivisionID,
		BatchID:      q.BatchID,
	}
	hasOrgFilter := q.DepartmentID != nil || q.ProgramID != nil || q.YearID != nil ||
		q.DivisionID != nil || q.BatchID != nil

	if hasOrgFilter {
		ids, err := s.userRepo.StudentIDs(orgFilter)
		if err != nil {
			return scope, apperr.Internal(err)
		}
		scope = intersectScope(scope, ids)
	}

	if q.StudentID != nil {
		scope = intersectScope(scope, []uint{*q.StudentID})
	}

	return scope, nil
}

func intersectScope(scope repository.AchievementScope, ids []uint) repository.AchievementScope {
	if !scope.Restrict {
		scope.Restrict = true
		scope.StudentIDs = ids
		return scope
	}
	allowed := make(map[uint]struct{}, len(scope.StudentIDs))
	for _, id := range scope.StudentIDs {
		allowed[id] = struct{}{}
	}
	var out []uint
	for _, id := range ids {
		if _, ok := allowed[id]; ok {
			out = append(out, id)
		}
	}
	scope.StudentIDs = out
	return scope
}

func (s *achievementService) List(actor *domain.User, q dto.AchievementListQuery) ([]domain.Achievement, *utils.Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	scope, err := s.buildScope(actor, q)
	if err != nil {
		return nil, nil, err
	}

	out, total, err := s.repo.List(repository.AchievementListFilter{
		Scope:      scope,
		Status:     q.Status,
		CategoryID: q.CategoryID,
		Sort:       q.Sort,
		Page:       q.Page,
		Limit:      q.Limit,
	})
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	return out, utils.NewPagination(q.Page, q.Limit, total), nil
}

func (s *achievementService) Get(actor *domain.User, id uint) (*domain.Achievement, error) {
	a, err := s.findAchievement(id)
	if err != nil {
		return nil, err
	}
	if err := s.canView(actor, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *achievementService) findAchievement(id uint) (*domain.Achievement, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Achievement not found")
		}
		return nil, apperr.Internal(err)
	}
	return a, nil
}

func (s *achievementService) canView(actor *domain.User, a *domain.Achievement) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleStudent:
		if a.StudentID == actor.ID {
			return nil
		}
		for _, p := range a.Participants {
			if p.ID == actor.ID {
				return nil
			}
		}
	case domain.RoleAdvisor:
		owner, err := s.findOwner(a.StudentID)
		if err != nil {
			return err
		}
		if owner.DivisionID != nil && actor.HasDivision(*owner.DivisionID) {
			return nil
		}
	case domain.RoleHOD:
		if actor.DepartmentID == nil {
			return nil
		}
		owner, err := s.findOwner(a.StudentID)
		if err != nil {
			return err
		}
		if owner.DepartmentID != nil && *owner.DepartmentID == *actor.DepartmentID {
			return nil
		}
	}
	return apperr.Forbidden("Not authorized to view this achievement")
}

func (s *achievementService) findOwner(studentID uint) (*domain.User, error) {
	owner, err := s.userRepo.FindByID(studentID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("resolve achievement owner %d: %w", studentID, err))
	}
	return owner, nil
}

/* =========================
   Lifecycle transitions
========================= */

func (s *achievementService) Create(ctx context.Context, actor *domain.User, input dto.AchievementCreate) (*domain.Achievement, error) {
	if actor.Role != domain.RoleStudent {
		return nil, apperr.Forbidden("Only students can submit achievements")
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}

	if _, err := s.academic.FindCategory(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, apperr.Internal(err)
	}

	participants, err := s.resolveParticipants(actor.ID, input.ParticipantIDs)
	if err != nil {
		return nil, err
	}

	dup, err := s.repo.HasDuplicate(actor.ID, input.Title, input.Date, 0)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if dup {
		return nil, apperr.Validation("An achievement with the same title and date already exists")
	}

	a := &domain.Achievement{
		StudentID:    actor.ID,
		Title:        input.Title,
		Description:  input.Description,
		CategoryID:   input.CategoryID,
		Date:         input.Date,
		AcademicYear: input.AcademicYear,
		Semester:     input.Semester,
		Status:       domain.AchievementPending,
		Type:         domain.AchievementSolo,
	}
	if len(participants) > 0 {
		a.Type = domain.AchievementGroup
	}

	if input.Certificate != nil {
		f, err := s.saveUpload(ctx, actor.ID, domain.FileTypeCertificate, *input.Certificate)
		if err != nil {
			return nil, err
		}
		a.CertificateID = &f.ID
	}
	if input.Photo != nil {
		f, err := s.saveUpload(ctx, actor.ID, domain.FileTypePhoto, *input.Photo)
		if err != nil {
			return nil, err
		}
		a.PhotoID = &f.ID
	}

	pcs, err := s.saveParticipantCertificates(ctx, actor.ID, participants, input.ParticipantFiles, input.ParticipantFileMap)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(a); err != nil {
		return nil, apperr.Internal(err)
	}
	if len(participants) > 0 {
		if err := s.repo.ReplaceParticipants(a, participants); err != nil {
			return nil, apperr.Internal(err)
		}
	}
	if len(pcs) > 0 {
		if err := s.repo.ReplaceParticipantCertificates(a.ID, pcs); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	metrics.AchievementsSubmitted.Inc()
	s.publishEvent("achievement.submitted", a, 0)

	return s.findAchievement(a.ID)
}

func (s *achievementService) Update(ctx context.Context, actor *domain.User, id uint, input dto.AchievementUpdate) (*domain.Achievement, error) {
	a, err := s.findAchievement(id)
	if err != nil {
		return nil, err
	}

	if actor.Role != domain.RoleStudent || a.StudentID != actor.ID {
		return nil, apperr.Forbidden("Not authorized to update this achievement")
	}
	if a.Status != domain.AchievementPending && a.Status != domain.AchievementRejected {
		return nil, apperr.Validation("Can only update pending or rejected achievements")
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}

	if _, err := s.academic.FindCategory(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, apperr.Internal(err)
	}

	participants, err := s.resolveParticipants(actor.ID, input.ParticipantIDs)
	if err != nil {
		return nil, err
	}

	dup, err := s.repo.HasDuplicate(actor.ID, input.Title, input.Date, a.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if dup {
		return nil, apperr.Validation("An achievement with the same title and date already exists")
	}

	a.Title = input.Title
	a.Description = input.Description
	a.CategoryID = input.CategoryID
	a.Date = input.Date
	a.AcademicYear = input.AcademicYear
	a.Semester = input.Semester
	a.Type = domain.AchievementSolo
	if len(participants) > 0 {
		a.Type = domain.AchievementGroup
	}

	if input.Certificate != nil {
		s.removeFileByID(ctx, a.CertificateID)
		f, err := s.saveUpload(ctx, actor.ID, domain.FileTypeCertificate, *input.Certificate)
		if err != nil {
			return nil, err
		}
		a.CertificateID = &f.ID
	}
	if input.Photo != nil {
		s.removeFileByID(ctx, a.PhotoID)
		f, err := s.saveUpload(ctx, actor.ID, domain.FileTypePhoto, *input.Photo)
		if err != nil {
			return nil, err
		}
		a.PhotoID = &f.ID
	}

	// A rejected record goes back to review once the owner edits it.
	if a.Status == domain.AchievementRejected {
		a.Status = domain.AchievementPending
		a.VerifiedByID = nil
		a.VerifiedBy = nil
		a.VerifiedDate = nil
		a.RejectionReason = nil
	}

	if err := s.repo.Update(a); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.repo.ReplaceParticipants(a, participants); err != nil {
		return nil, apperr.Internal(err)
	}

	if len(input.ParticipantFiles) > 0 {
		for _, pc := range a.ParticipantCertificates {
			s.removeFileByID(ctx, &pc.FileID)
		}
		pcs, err := s.saveParticipantCertificates(ctx, actor.ID, participants, input.ParticipantFiles, input.ParticipantFileMap)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceParticipantCertificates(a.ID, pcs); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	return s.findAchievement(a.ID)
}

// reviewGuard enforces who may verify/reject: an advisor assigned the
// owner's division, or any HOD.
func (s *achievementService) reviewGuard(actor *domain.User, a *domain.Achievement) error {
	switch actor.Role {
	case domain.RoleHOD:
		return nil
	case domain.RoleAdvisor:
		owner, err := s.findOwner(a.StudentID)
		if err != nil {
			return err
		}
		if owner.DivisionID != nil && actor.HasDivision(*owner.DivisionID) {
			return nil
		}
		return apperr.Forbidden("Not authorized to review this achievement")
	default:
		return apperr.Forbidden("Only advisors and HODs can review achievements")
	}
}

func (s *achievementService) Verify(actor *domain.User, id uint) (*domain.Achievement, error) {
	a, err := s.findAchievement(id)
	if err != nil {
		return nil, err
	}
	if err := s.reviewGuard(actor, a); err != nil {
		return nil, err
	}

	studentSnap, participantSnaps, err := s.captureSnapshots(a)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Verify(a.ID, actor.ID, studentSnap, participantSnaps); err != nil {
		return nil, apperr.Internal(err)
	}

	metrics.AchievementsVerified.Inc()
	s.publishEvent("achievement.verified", a, actor.ID)

	return s.findAchievement(a.ID)
}

func (s *achievementService) Reject(actor *domain.User, id uint, reason string) (*domain.Achievement, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperr.Validation("Rejection reason is required")
	}

	a, err := s.findAchievement(id)
	if err != nil {
		return nil, err
	}
	if err := s.reviewGuard(actor, a); err != nil {
		return nil, err
	}

	if err := s.repo.Reject(a.ID, actor.ID, reason); err != nil {
		return nil, apperr.Internal(err)
	}

	metrics.AchievementsRejected.Inc()
	s.publishEvent("achievement.rejected", a, actor.ID)

	return s.findAchievement(a.ID)
}

func (s *achievementService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	a, err := s.findAchievement(id)
	if err != nil {
		return err
	}

	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleStudent:
		if a.StudentID != actor.ID {
			return apperr.Forbidden("Not authorized to delete this achievement")
		}
		if a.Status != domain.AchievementPending {
			return apperr.Validation("Can only delete pending achievements")
		}
	case domain.RoleHOD:
		owner, err := s.findOwner(a.StudentID)
		if err != nil {
			return err
		}
		if actor.DepartmentID == nil || owner.DepartmentID == nil || *owner.DepartmentID != *actor.DepartmentID {
			return apperr.Forbidden("Not authorized to delete this achievement")
		}
	default:
		return apperr.Forbidden("Not authorized to delete achievements")
	}

	// File cleanup is best-effort: a missing blob or storage fault must not
	// keep the record around.
	s.removeFileByID(ctx, a.CertificateID)
	s.removeFileByID(ctx, a.PhotoID)
	for _, pc := range a.ParticipantCertificates {
		fileID := pc.FileID
		s.removeFileByID(ctx, &fileID)
	}

	if err := s.repo.Delete(a.ID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

/* =========================
   Snapshot capture
========================= */

func snapshotRef(id uint, name, code string) *domain.SnapshotRef {
	return &domain.SnapshotRef{ID: id, Name: name, Code: code}
}

func placementSnapshot(u *domain.User) domain.AcademicSnapshot {
	snap := domain.AcademicSnapshot{}
	if u.Department != nil {
		snap.Department = snapshotRef(u.Department.ID, u.Department.Name, u.Department.Code)
	}
	if u.Program != nil {
		snap.Program = snapshotRef(u.Program.ID, u.Program.Name, u.Program.Code)
	}
	if u.Year != nil {
		ref := snapshotRef(u.Year.ID, u.Year.Name, u.Year.Code)
		ref.AcademicYear = u.Year.AcademicYear
		ref.Semester = u.Year.Semester
		snap.Year = ref
	}
	if u.Division != nil {
		snap.Division = snapshotRef(u.Division.ID, u.Division.Name, u.Division.Code)
	}
	if u.Batch != nil {
		snap.Batch = snapshotRef(u.Batch.ID, u.Batch.Name, "")
	}
	return snap
}

// captureSnapshots reads the owner's (and each participant's) placement as
// of now. The owner lookup failing aborts the whole save.
func (s *achievementService) captureSnapshots(a *domain.Achievement) ([]byte, []byte, error) {
	owner, err := s.userRepo.FindByID(a.StudentID)
	if err != nil {
		return nil, nil, apperr.Internal(fmt.Errorf("resolve achievement owner %d: %w", a.StudentID, err))
	}

	studentSnap, err := json.Marshal(placementSnapshot(owner))
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}

	participantSnaps := make([]domain.ParticipantSnapshot, 0, len(a.Participants))
	for _, p := range a.Participants {
		full, err := s.userRepo.FindByID(p.ID)
		if err != nil {
			log.Printf("snapshot: skip participant %d: %v", p.ID, err)
			continue
		}
		ps := domain.ParticipantSnapshot{
			StudentID: full.ID,
			Name:      full.Name,
			Placement: placementSnapshot(full),
		}
		if full.RollNo != nil {
			ps.RollNo = *full.RollNo
		}
		participantSnaps = append(participantSnaps, ps)
	}

	var participantJSON []byte
	if len(participantSnaps) > 0 {
		participantJSON, err = json.Marshal(participantSnaps)
		if err != nil {
			return nil, nil, apperr.Internal(err)
		}
	}
	return studentSnap, participantJSON, nil
}

/* =========================
   Group fan-out and files
========================= */

// resolveParticipants dedupes the submitted member ids, drops the creator
// (always derivable as the owner) and enforces the team cap. Every member
// must be a student account.
func (s *achievementService) resolveParticipants(creatorID uint, ids []uint) ([]domain.User, error) {
	seen := map[uint]struct{}{creatorID: {}}
	distinct := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	if len(distinct)+1 > domain.MaxTeamSize {
		return nil, apperr.Validation("Team size cannot exceed %d members", domain.MaxTeamSize)
	}
	if len(distinct) == 0 {
		return nil, nil
	}

	users, err := s.userRepo.FindByIDs(distinct)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(users) != len(distinct) {
		return nil, apperr.NotFound("One or more participants not found")
	}
	for _, u := range users {
		if u.Role != domain.RoleStudent {
			return nil, apperr.Validation("Participants must be students")
		}
	}
	return users, nil
}

// saveParticipantCertificates pairs uploaded files with participants via the
// submitted participant->index map. Files nobody claimed are skipped.
func (s *achievementService) saveParticipantCertificates(
	ctx context.Context,
	uploaderID uint,
	participants []domain.User,
	files []dto.FileUpload,
	fileMap map[uint]int,
) ([]domain.ParticipantCertificate, error) {
	if len(files) == 0 || len(fileMap) == 0 {
		return nil, nil
	}

	inTeam := make(map[uint]struct{}, len(participants))
	for _, p := range participants {
		inTeam[p.ID] = struct{}{}
	}

	var out []domain.ParticipantCertificate
	for participantID, idx := range fileMap {
		if idx < 0 || idx >= len(files) {
			continue
		}
		if _, ok := inTeam[participantID]; !ok {
			continue
		}
		f, err := s.saveUpload(ctx, uploaderID, domain.FileTypeParticipantCertificate, files[idx])
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ParticipantCertificate{
			ParticipantID: participantID,
			FileID:        f.ID,
		})
	}
	return out, nil
}

func (s *achievementService) saveUpload(ctx context.Context, uploaderID uint, fileType string, up dto.FileUpload) (*domain.File, error) {
	if len(up.Bytes) == 0 {
		return nil, apperr.Validation("%s file is empty", fileType)
	}
	if int64(len(up.Bytes)) > maxUploadSize {
		return nil, apperr.Validation("%s file is too large (max 10MB)", fileType)
	}

	b := up.Bytes
	mimeType := up.MimeType
	ext := strings.ToLower(filepath.Ext(up.Filename))

	if fileType == domain.FileTypePhoto {
		normalized, err := normalizePhoto(b)
		if err != nil {
			return nil, apperr.Validation("photo must be a jpeg/png/webp image")
		}
		b = normalized
		mimeType = "image/jpeg"
		ext = ".jpg"
	}

	filename := uuid.NewString() + ext
	folder := "achievements/" + fileType + "s"

	obj, err := s.storage.Save(ctx, folder, filename, b)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("store %s: %w", fileType, err))
	}

	file := &domain.File{
		Filename:     filename,
		OriginalName: up.Filename,
		MimeType:     mimeType,
		Size:         int64(len(b)),
		Path:         obj.Path,
		URL:          obj.URL,
		PublicID:     obj.PublicID,
		UploadedByID: uploaderID,
		FileType:     fileType,
	}
	if err := s.fileRepo.Create(file); err != nil {
		return nil, apperr.Internal(err)
	}

	metrics.FilesStored.Inc()
	return file, nil
}

// removeFileByID drops the blob and its record. Failures are logged only:
// the caller's write must proceed regardless.
func (s *achievementService) removeFileByID(ctx context.Context, id *uint) {
	if id == nil {
		return
	}
	file, err := s.fileRepo.FindByID(*id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("file cleanup: lookup %d: %v", *id, err)
		}
		return
	}

	obj := interfaces.StoredObject{Path: file.Path, URL: file.URL, PublicID: file.PublicID}
	if err := s.storage.Remove(ctx, obj); err != nil {
		log.Printf("file cleanup: remove blob for file %d: %v", file.ID, err)
	}
	if err := s.fileRepo.Delete(file.ID); err != nil {
		log.Printf("file cleanup: delete record %d: %v", file.ID, err)
	}
}

/* =========================
   PDF and events
========================= */

func (s *achievementService) RenderPDF(actor *domain.User, id uint) ([]byte, error) {
	a, err := s.Get(actor, id)
	if err != nil {
		return nil, err
	}

	b, err := pdf.RenderAchievement(a)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return b, nil
}

func (s *achievementService) publishEvent(event string, a *domain.Achievement, reviewerID uint) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(dto.LifecycleEvent{
		Event:         event,
		AchievementID: a.ID,
		StudentID:     a.StudentID,
		ReviewerID:    reviewerID,
		Title:         a.Title,
		At:            time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	key := []byte(strconv.FormatUint(uint64(a.ID), 10))
	if err := s.producer.PublishMessage(key, payload); err != nil {
		log.Printf("publish %s for achievement %d: %v", event, a.ID, err)
	}
}

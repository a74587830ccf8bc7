package services

import (
	"context"
	"errors"
	"log"

	"github.com/campustrack/achievement_service/internal/apperr"
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/interfaces"
	"github.com/campustrack/achievement_service/internal/repository"
	"gorm.io/gorm"
)

type FileService interface {
	Get(id uint) (*domain.File, error)
	Delete(ctx context.Context, actor *domain.User, id uint) error
}

type fileService struct {
	repo    repository.FileRepository
	storage interfaces.FileStorage
}

func NewFileService(repo repository.FileRepository, storage interfaces.FileStorage) FileService {
	return &fileService{repo: repo, storage: storage}
}

func (s *fileService) Get(id uint) (*domain.File, error) {
	file, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("file not found")
		}
		return nil, apperr.Internal(err)
	}
	return file, nil
}

// Delete removes the record and, best effort, the stored blob.
// Only the uploader or an admin may delete a file.
func (s *fileService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	file, err := s.Get(id)
	if err != nil {
		return err
	}

	if actor.Role != domain.RoleAdmin && actor.ID != file.UploadedByID {
		return apperr.Forbidden("not allowed to delete this file")
	}

	obj := interfaces.StoredObject{Path: file.Path, URL: file.URL, PublicID: file.PublicID}
	if err := s.storage.Remove(ctx, obj); err != nil {
		log.Printf("file %d: blob removal failed: %v", file.ID, err)
	}

	if err := s.repo.Delete(file.ID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

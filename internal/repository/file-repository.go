package repository

import (
	"errors"

	"github.com/campustrack/achievement_service/internal/domain"
	"gorm.io/gorm"
)

type FileRepository interface {
	Create(file *domain.File) error
	FindByID(id uint) (*domain.File, error)
	Delete(id uint) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *domain.File) error {
	if file == nil {
		return errors.New("nil file")
	}
	return r.db.Create(file).Error
}

func (r *fileRepository) FindByID(id uint) (*domain.File, error) {
	file := &domain.File{}
	if err := r.db.First(file, id).Error; err != nil {
		return nil, err
	}
	return file, nil
}

func (r *fileRepository) Delete(id uint) error {
	return r.db.Delete(&domain.File{}, id).Error
}

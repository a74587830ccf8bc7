package services

import (
	"errors"
	"strings"
	"time"

	"github.com/campustrack/achievement_service/internal/apperr"
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/helper"
	"github.com/campustrack/achievement_service/internal/helper/utils"
	"github.com/campustrack/achievement_service/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	Login(input dto.LoginRequest) (string, *domain.User, error)
	GetUser(userID uint) (*domain.User, error)
	ListUsers(q dto.UserListQuery) ([]domain.User, *utils.Pagination, error)
	CreateUser(input dto.UserCreate) (*domain.User, error)
	UpdateUser(userID uint, input dto.UserUpdate) (*domain.User, error)
	DeactivateUser(userID uint) error
}

type userService struct {
	repo repository.UserRepository
	auth helper.Auth
}

func NewUserService(repo repository.UserRepository, auth helper.Auth) UserService {
	return &userService{repo: repo, auth: auth}
}

func (s *userService) Login(input dto.LoginRequest) (string, *domain.User, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return "", nil, apperr.Validation("%s", err.Error())
	}

	user, err := s.repo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.Unauthorized("Invalid email or password")
		}
		return "", nil, apperr.Internal(err)
	}
	if !user.IsActive {
		return "", nil, apperr.Unauthorized("Account is deactivated")
	}
	if err := s.auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.repo.Save(user); err != nil {
		return "", nil, apperr.Internal(err)
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return token, user, nil
}

func (s *userService) GetUser(userID uint) (*domain.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *userService) ListUsers(q dto.UserListQuery) ([]domain.User, *utils.Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	users, total, err := s.repo.List(q)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	return users, utils.NewPagination(q.Page, q.Limit, total), nil
}

func (s *userService) CreateUser(input dto.UserCreate) (*domain.User, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         input.Role,
		RollNo:       input.RollNo,
		DepartmentID: input.DepartmentID,
		ProgramID:    input.ProgramID,
		YearID:       input.YearID,
		DivisionID:   input.DivisionID,
		BatchID:      input.BatchID,
		IsActive:     true,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("A user with this email or roll number already exists")
		}
		return nil, apperr.Internal(err)
	}

	if len(input.AssignedDivisionIDs) > 0 {
		if err := s.repo.ReplaceAssignedDivisions(user, input.AssignedDivisionIDs); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	return s.GetUser(user.ID)
}

func (s *userService) UpdateUser(userID uint, input dto.UserUpdate) (*domain.User, error) {
	if err := helper.ValidateStruct(input); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}

	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Password != nil {
		hash, err := s.auth.HashPassword(*input.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		user.PasswordHash = hash
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.RollNo != nil {
		user.RollNo = input.RollNo
	}
	if input.DepartmentID != nil {
		user.DepartmentID = input.DepartmentID
	}
	if input.ProgramID != nil {
		user.ProgramID = input.ProgramID
	}
	if input.YearID != nil {
		user.YearID = input.YearID
	}
	if input.DivisionID != nil {
		user.DivisionID = input.DivisionID
	}
	if input.BatchID != nil {
		user.BatchID = input.BatchID
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Save(user); err != nil {
		return nil, apperr.Internal(err)
	}

	if input.AssignedDivisionIDs != nil {
		if err := s.repo.ReplaceAssignedDivisions(user, *input.AssignedDivisionIDs); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	return s.GetUser(user.ID)
}

func (s *userService) DeactivateUser(userID uint) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}
	if err := s.repo.Deactivate(userID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

package services

import (
	"testing"

	"github.com/campustrack/achievement_service/internal/apperr"
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (r *fakeUserRepo) Create(user *domain.User) error {
	var max uint
	for id := range r.users {
		if id > max {
			max = id
		}
	}
	user.ID = max + 1
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Save(user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ReplaceAssignedDivisions(user *domain.User, divisionIDs []uint) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	divisions := make([]domain.Division, 0, len(divisionIDs))
	for _, id := range divisionIDs {
		divisions = append(divisions, domain.Division{ID: id})
	}
	stored.AssignedDivisions = divisions
	return nil
}

func (r *fakeUserRepo) Deactivate(userID uint) error {
	u, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsActive = false
	return nil
}

func userFixture(t *testing.T) (UserService, *fakeUserRepo, helper.Auth) {
	t.Helper()
	auth := helper.SetupAuth("test-secret")
	repo := newFakeUserRepo()

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	repo.users[1] = &domain.User{
		ID: 1, Name: "Asha Rao", Email: "asha@campus.edu",
		PasswordHash: hash, Role: domain.RoleStudent, IsActive: true,
	}
	return NewUserService(repo, auth), repo, auth
}

func TestLogin(t *testing.T) {
	svc, repo, auth := userFixture(t)

	token, user, err := svc.Login(dto.LoginRequest{Email: "asha@campus.edu", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotNil(t, repo.users[1].LastLogin)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleStudent, claims.Role)
}

func TestLoginFailures(t *testing.T) {
	svc, repo, _ := userFixture(t)

	_, _, err := svc.Login(dto.LoginRequest{Email: "asha@campus.edu", Password: "wrong"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, _, err = svc.Login(dto.LoginRequest{Email: "nobody@campus.edu", Password: "correct-horse"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	repo.users[1].IsActive = false
	_, _, err = svc.Login(dto.LoginRequest{Email: "asha@campus.edu", Password: "correct-horse"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestCreateUser(t *testing.T) {
	svc, repo, auth := userFixture(t)

	created, err := svc.CreateUser(dto.UserCreate{
		Name:                "Priya Menon",
		Email:               "  Priya@Campus.edu ",
		Password:            "advisor-pass",
		Role:                domain.RoleAdvisor,
		AssignedDivisionIDs: []uint{10, 11},
	})
	require.NoError(t, err)

	assert.Equal(t, "priya@campus.edu", created.Email)
	assert.NoError(t, auth.VerifyPassword("advisor-pass", repo.users[created.ID].PasswordHash))
	assert.Len(t, created.AssignedDivisions, 2)
	assert.True(t, created.IsActive)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _, _ := userFixture(t)

	_, err := svc.CreateUser(dto.UserCreate{
		Name: "Dup", Email: "asha@campus.edu", Password: "whatever1", Role: domain.RoleStudent,
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc, _, _ := userFixture(t)

	_, err := svc.CreateUser(dto.UserCreate{
		Name: "X", Email: "x@campus.edu", Password: "whatever1", Role: "superuser",
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateUserMergesOnlyGivenFields(t *testing.T) {
	svc, repo, _ := userFixture(t)

	name := "Asha R."
	dept := uint(3)
	updated, err := svc.UpdateUser(1, dto.UserUpdate{Name: &name, DepartmentID: &dept})
	require.NoError(t, err)

	assert.Equal(t, "Asha R.", updated.Name)
	require.NotNil(t, updated.DepartmentID)
	assert.EqualValues(t, 3, *updated.DepartmentID)
	// untouched fields survive
	assert.Equal(t, "asha@campus.edu", updated.Email)
	assert.Equal(t, domain.RoleStudent, repo.users[1].Role)
}

func TestDeactivateUser(t *testing.T) {
	svc, repo, _ := userFixture(t)

	require.NoError(t, svc.DeactivateUser(1))
	assert.False(t, repo.users[1].IsActive)

	err := svc.DeactivateUser(99)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

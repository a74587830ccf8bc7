package services

import (
	"testing"

	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsAcademic struct {
	repository.AcademicRepository
	years        []domain.Year
	divisions    map[uint][]domain.Division
	deptPrograms map[uint][]uint
}

func (r *fakeAnalyticsAcademic) ListYears(programID *uint) ([]domain.Year, error) {
	if programID == nil {
		return r.years, nil
	}
	var out []domain.Year
	for _, y := range r.years {
		if y.ProgramID == *programID {
			out = append(out, y)
		}
	}
	return out, nil
}

func (r *fakeAnalyticsAcademic) ListYearsByPrograms(programIDs []uint) ([]domain.Year, error) {
	var out []domain.Year
	for _, y := range r.years {
		for _, id := range programIDs {
			if y.ProgramID == id {
				out = append(out, y)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeAnalyticsAcademic) ProgramIDsByDepartment(departmentID uint) ([]uint, error) {
	return r.deptPrograms[departmentID], nil
}

func (r *fakeAnalyticsAcademic) ListDivisions(yearID *uint) ([]domain.Division, error) {
	if yearID == nil {
		var out []domain.Division
		for _, ds := range r.divisions {
			out = append(out, ds...)
		}
		return out, nil
	}
	return r.divisions[*yearID], nil
}

func analyticsFixture() (AnalyticsService, *fakeAchievementRepo, *fakeUserRepo) {
	yearID := uint(100)
	csStudent := &domain.User{
		ID: 1, Name: "Asha", Email: "asha@campus.edu", Role: domain.RoleStudent,
		DepartmentID: uintPtr(1), DivisionID: uintPtr(10), YearID: &yearID, IsActive: true,
	}
	csStudentTwo := &domain.User{
		ID: 2, Name: "Vikram", Email: "vikram@campus.edu", Role: domain.RoleStudent,
		DepartmentID: uintPtr(1), DivisionID: uintPtr(11), YearID: &yearID, IsActive: true,
	}
	eceStudent := &domain.User{
		ID: 3, Name: "Neha", Email: "neha@campus.edu", Role: domain.RoleStudent,
		DepartmentID: uintPtr(2), DivisionID: uintPtr(20), IsActive: true,
	}
	users := newFakeUserRepo(csStudent, csStudentTwo, eceStudent)

	achievements := newFakeAchievementRepo()
	seed := []*domain.Achievement{
		{StudentID: 1, Title: "A", CategoryID: 7, Status: domain.AchievementVerified},
		{StudentID: 1, Title: "B", CategoryID: 7, Status: domain.AchievementPending},
		{StudentID: 2, Title: "C", CategoryID: 8, Status: domain.AchievementVerified},
		{StudentID: 3, Title: "D", CategoryID: 7, Status: domain.AchievementPending},
	}
	for _, a := range seed {
		_ = achievements.Create(a)
	}

	academic := &fakeAnalyticsAcademic{
		years: []domain.Year{{ID: 100, Code: "fy", Name: "First Year", ProgramID: 50}},
		divisions: map[uint][]domain.Division{
			100: {{ID: 10, Code: "A", Name: "Division A", YearID: 100}},
		},
		deptPrograms: map[uint][]uint{1: {50}},
	}

	return NewAnalyticsService(achievements, users, academic), achievements, users
}

// CountStudents piggybacks on StudentIDs for the in-memory fake.
func (r *fakeUserRepo) CountStudents(f repository.StudentFilter) (int64, error) {
	ids, err := r.StudentIDs(f)
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func TestOverviewScopesByRole(t *testing.T) {
	svc, _, _ := analyticsFixture()

	admin := &domain.User{ID: 50, Role: domain.RoleAdmin}
	hod := &domain.User{ID: 51, Role: domain.RoleHOD, DepartmentID: uintPtr(1)}
	advisor := &domain.User{ID: 52, Role: domain.RoleAdvisor, AssignedDivisions: []domain.Division{{ID: 10}}}

	tests := []struct {
		name          string
		actor         *domain.User
		wantStudents  int64
		wantTotal     int64
		wantVerified  int64
		wantPending   int64
		wantAchievers int64
	}{
		{"admin sees all departments", admin, 3, 4, 2, 2, 3},
		{"hod pinned to own department", hod, 2, 3, 2, 1, 2},
		{"advisor pinned to assigned divisions", advisor, 1, 2, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Overview(tt.actor, dto.AnalyticsQuery{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStudents, got.TotalStudents)
			assert.Equal(t, tt.wantTotal, got.TotalAchievements)
			assert.Equal(t, tt.wantVerified, got.VerifiedAchievements)
			assert.Equal(t, tt.wantPending, got.PendingAchievements)
			assert.Equal(t, tt.wantAchievers, got.StudentsWithAchievements)
		})
	}
}

func TestOverviewHodIgnoresForeignDepartmentFilter(t *testing.T) {
	svc, _, _ := analyticsFixture()
	hod := &domain.User{ID: 51, Role: domain.RoleHOD, DepartmentID: uintPtr(1)}

	// asking for department 2 still returns department 1 numbers
	got, err := svc.Overview(hod, dto.AnalyticsQuery{DepartmentID: uintPtr(2)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.TotalStudents)
	assert.EqualValues(t, 3, got.TotalAchievements)
}

func TestClasswiseReport(t *testing.T) {
	svc, _, _ := analyticsFixture()
	admin := &domain.User{ID: 50, Role: domain.RoleAdmin}

	report, err := svc.ClasswiseReport(admin, uintPtr(1), nil)
	require.NoError(t, err)
	require.Contains(t, report, "fy")

	fy := report["fy"]
	assert.EqualValues(t, 2, fy.TotalStudents)
	assert.EqualValues(t, 3, fy.TotalAchievements)
	assert.EqualValues(t, 2, fy.VerifiedAchievements)

	require.Len(t, fy.Divisions, 1)
	divA := fy.Divisions[0]
	assert.Equal(t, "A", divA.Code)
	assert.EqualValues(t, 1, divA.Students)
	assert.EqualValues(t, 2, divA.Achievements)
	assert.EqualValues(t, 1, divA.Verified)
}

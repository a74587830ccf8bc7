package services

import (
	"github.com/campustrack/achievement_service/internal/apperr"
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/dto"
	"github.com/campustrack/achievement_service/internal/repository"
)

type AnalyticsService interface {
	Overview(actor *domain.User, q dto.AnalyticsQuery) (*dto.AnalyticsOverview, error)
	ClasswiseReport(actor *domain.User, departmentID, programID *uint) (map[string]dto.ClasswiseYear, error)
}

type analyticsService struct {
	achievements repository.AchievementRepository
	users        repository.UserRepository
	academic     repository.AcademicRepository
}

func NewAnalyticsService(
	achievements repository.AchievementRepository,
	users repository.UserRepository,
	academic repository.AcademicRepository,
) AnalyticsService {
	return &analyticsService{
		achievements: achievements,
		users:        users,
		academic:     academic,
	}
}

// studentFilter overlays the actor's own scope on the explicit filters:
// an HOD is pinned to their department, an advisor to their divisions.
func (s *analyticsService) studentFilter(actor *domain.User, q dto.AnalyticsQuery) repository.StudentFilter {
	f := repository.StudentFilter{
		DepartmentID: q.DepartmentID,
		ProgramID:    q.ProgramID,
		YearID:       q.YearID,
		DivisionID:   q.DivisionID,
		BatchID:      q.BatchID,
	}

	switch actor.Role {
	case domain.RoleHOD:
		if actor.DepartmentID != nil {
			f.DepartmentID = actor.DepartmentID
		}
	case domain.RoleAdvisor:
		divisionIDs := make([]uint, 0, len(actor.AssignedDivisions))
		for _, d := range actor.AssignedDivisions {
			divisionIDs = append(divisionIDs, d.ID)
		}
		f.DivisionIDs = divisionIDs
	}
	return f
}

func (s *analyticsService) Overview(actor *domain.User, q dto.AnalyticsQuery) (*dto.AnalyticsOverview, error) {
	f := s.studentFilter(actor, q)

	totalStudents, err := s.users.CountStudents(f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	studentIDs, err := s.users.StudentIDs(f)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	scope := repository.AchievementScope{Restrict: true, StudentIDs: studentIDs}

	total, err := s.achievements.CountInScope(scope, "")
	if err != nil {
		return nil, apperr.Internal(err)
	}
	verified, err := s.achievements.CountInScope(scope, domain.AchievementVerified)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	pending, err := s.achievements.CountInScope(scope, domain.AchievementPending)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	withAchievements, err := s.achievements.DistinctStudentsInScope(scope)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	topCategories, err := s.achievements.TopCategoriesInScope(scope, 5)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &dto.AnalyticsOverview{
		TotalStudents:            totalStudents,
		TotalAchievements:        total,
		VerifiedAchievements:     verified,
		PendingAchievements:      pending,
		StudentsWithAchievements: withAchievements,
		TopCategories:            topCategories,
	}, nil
}

func (s *analyticsService) ClasswiseReport(actor *domain.User, departmentID, programID *uint) (map[string]dto.ClasswiseYear, error) {
	// Pin an HOD to their own department.
	if actor.Role == domain.RoleHOD && actor.DepartmentID != nil {
		departmentID = actor.DepartmentID
	}

	var years []domain.Year
	var err error
	switch {
	case programID != nil:
		years, err = s.academic.ListYears(programID)
	case departmentID != nil:
		programIDs, perr := s.academic.ProgramIDsByDepartment(*departmentID)
		if perr != nil {
			return nil, apperr.Internal(perr)
		}
		years, err = s.academic.ListYearsByPrograms(programIDs)
	default:
		years, err = s.academic.ListYears(nil)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	report := make(map[string]dto.ClasswiseYear, len(years))
	for _, year := range years {
		yearID := year.ID
		baseFilter := repository.StudentFilter{
			DepartmentID: departmentID,
			ProgramID:    programID,
			YearID:       &yearID,
		}

		students, err := s.users.CountStudents(baseFilter)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		studentIDs, err := s.users.StudentIDs(baseFilter)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		scope := repository.AchievementScope{Restrict: true, StudentIDs: studentIDs}

		total, err := s.achievements.CountInScope(scope, "")
		if err != nil {
			return nil, apperr.Internal(err)
		}
		verified, err := s.achievements.CountInScope(scope, domain.AchievementVerified)
		if err != nil {
			return nil, apperr.Internal(err)
		}

		divisions, err := s.academic.ListDivisions(&yearID)
		if err != nil {
			return nil, apperr.Internal(err)
		}

		divisionData := make([]dto.ClasswiseDivision, 0, len(divisions))
		for _, division := range divisions {
			divisionID := division.ID
			divFilter := baseFilter
			divFilter.DivisionID = &divisionID

			divStudents, err := s.users.CountStudents(divFilter)
			if err != nil {
				return nil, apperr.Internal(err)
			}
			divStudentIDs, err := s.users.StudentIDs(divFilter)
			if err != nil {
				return nil, apperr.Internal(err)
			}
			divScope := repository.AchievementScope{Restrict: true, StudentIDs: divStudentIDs}

			divTotal, err := s.achievements.CountInScope(divScope, "")
			if err != nil {
				return nil, apperr.Internal(err)
			}
			divVerified, err := s.achievements.CountInScope(divScope, domain.AchievementVerified)
			if err != nil {
				return nil, apperr.Internal(err)
			}

			divisionData = append(divisionData, dto.ClasswiseDivision{
				ID:           division.ID,
				Name:         division.Name,
				Code:         division.Code,
				Students:     divStudents,
				Achievements: divTotal,
				Verified:     divVerified,
			})
		}

		report[year.Code] = dto.ClasswiseYear{
			ID:                   year.ID,
			Name:                 year.Name,
			Code:                 year.Code,
			TotalStudents:        students,
			TotalAchievements:    total,
			VerifiedAchievements: verified,
			Divisions:            divisionData,
		}
	}
	return report, nil
}

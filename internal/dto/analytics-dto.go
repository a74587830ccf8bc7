package dto

type AnalyticsQuery struct {
	DepartmentID *uint
	ProgramID    *uint
	YearID       *uint
	DivisionID   *uint
	BatchID      *uint
}

type CategoryCount struct {
	CategoryID uint   `json:"category_id"`
	Category   string `json:"category"`
	Count      int64  `json:"count"`
}

type AnalyticsOverview struct {
	TotalStudents            int64           `json:"total_students"`
	TotalAchievements        int64           `json:"total_achievements"`
	VerifiedAchievements     int64           `json:"verified_achievements"`
	PendingAchievements      int64           `json:"pending_achievements"`
	StudentsWithAchievements int64           `json:"students_with_achievements"`
	TopCategories            []CategoryCount `json:"top_categories"`
}

type ClasswiseDivision struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Students     int64  `json:"students"`
	Achievements int64  `json:"achievements"`
	Verified     int64  `json:"verified"`
}

type ClasswiseYear struct {
	ID                   uint                `json:"id"`
	Name                 string              `json:"name"`
	Code                 string              `json:"code"`
	TotalStudents        int64               `json:"totalStudents"`
	TotalAchievements    int64               `json:"totalAchievements"`
	VerifiedAchievements int64               `json:"verifiedAchievements"`
	Divisions            []ClasswiseDivision `json:"divisions"`
}

type LifecycleEvent struct {
	Event         string `json:"event"`
	AchievementID uint   `json:"achievement_id"`
	StudentID     uint   `json:"student_id"`
	ReviewerID    uint   `json:"reviewer_id,omitempty"`
	Title         string `json:"title"`
	At            string `json:"at"`
}

package dto

// UpdateUserRequest - обновление пользователя (сам или админ)
type UpdateUserRequest struct {
	Name       *string  `json:"name,omitempty"`
	SkillTags  *string  `json:"skill_tags,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	Role       *string  `json:"role,omitempty" validate:"omitempty,is-user-role"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

// ListUsersQuery - фильтры списка пользователей
type ListUsersQuery struct {
	Role     string `form:"role" validate:"omitempty,is-user-role"`
	IsActive *bool  `form:"is_active"`
	Skip     int    `form:"skip" validate:"gte=0"`
	Limit    int    `form:"limit" validate:"gte=0,lte=500"`
}

// UserStatsResponse - персональная статистика фрилансера
type UserStatsResponse struct {
	TotalEarnings        float64 `json:"total_earnings"`
	CompletedJobs        int     `json:"completed_jobs"`
	ActiveJobs           int64   `json:"active_jobs"`
	TotalApplications    int64   `json:"total_applications"`
	AcceptedApplications int64   `json:"accepted_applications"`
	Rating               float64 `json:"rating"`
}

package models

type User struct {
	BaseModel
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	Name          string   `json:"name"`
	PasswordHash  string   `gorm:"not null" json:"-"`
	Role          UserRole `gorm:"type:varchar(20);not null;default:'freelancer'" json:"role"`
	IsActive      bool     `gorm:"default:true" json:"is_active"`
	SkillTags     string   `json:"skill_tags"` // comma-separated
	HourlyRate    float64  `gorm:"default:0" json:"hourly_rate"`
	TotalEarnings float64  `gorm:"default:0" json:"total_earnings"`
	Rating        float64  `gorm:"default:0" json:"rating"`
	CompletedJobs int      `gorm:"default:0" json:"completed_jobs"`

	// Relations
	Jobs          []Job            `gorm:"foreignKey:UserID" json:"-"`
	Applications  []JobApplication `gorm:"foreignKey:UserID" json:"-"`
	BotAccounts   []BotAccount     `gorm:"foreignKey:OwnerID" json:"-"`
	Notifications []Notification   `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

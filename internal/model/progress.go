package model

import "time"

// ProgressRecord 按分类累计的学习进度，仅在会话完成后由 ProgressService 更新
// swagger:model ProgressRecord
type ProgressRecord struct {
	BaseModel
	UserID        uint       `gorm:"uniqueIndex:idx_user_category;not null" json:"userId"`
	CategoryKey   string     `gorm:"size:50;uniqueIndex:idx_user_category;not null" json:"categoryKey"`
	Attempted     int        `gorm:"default:0" json:"attempted"`
	Correct       int        `gorm:"default:0" json:"correct"`
	StreakDays    int        `gorm:"default:0" json:"streakDays"`
	SkillLevel    float64    `gorm:"default:1" json:"skillLevel"`
	LastStudiedAt *time.Time `json:"lastStudiedAt,omitempty"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}

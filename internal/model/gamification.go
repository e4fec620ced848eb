package model

import "time"

// UserStats 游戏化聚合统计，每个用户一条，仅在会话完成后更新
// swagger:model UserStats
type UserStats struct {
	BaseModel
	UserID              uint       `gorm:"uniqueIndex;not null" json:"userId"`
	TotalXP             int        `gorm:"default:0" json:"totalXp"`
	Level               int        `gorm:"default:1" json:"level"`
	TotalSessions       int        `gorm:"default:0" json:"totalSessions"`
	TotalAttempted      int        `gorm:"default:0" json:"totalAttempted"`
	TotalCorrect        int        `gorm:"default:0" json:"totalCorrect"`
	CurrentStreak       int        `gorm:"default:0" json:"currentStreak"`
	LongestStreak       int        `gorm:"default:0" json:"longestStreak"`
	PerfectSessions     int        `gorm:"default:0" json:"perfectSessions"`
	NightSessions       int        `gorm:"default:0" json:"nightSessions"`
	EarlySessions       int        `gorm:"default:0" json:"earlySessions"`
	TotalStudyTimeMs    int64      `gorm:"default:0" json:"totalStudyTimeMs"`
	TotalResponseTimeMs int64      `gorm:"default:0" json:"totalResponseTimeMs"`
	LastStudyDate       *time.Time `json:"lastStudyDate,omitempty"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

// BadgeUnlock 已解锁徽章，(UserID, BadgeID) 唯一保证解锁幂等
type BadgeUnlock struct {
	BaseModel
	UserID     uint      `gorm:"uniqueIndex:idx_user_badge;not null" json:"userId"`
	BadgeID    string    `gorm:"size:50;uniqueIndex:idx_user_badge;not null" json:"badgeId"`
	UnlockedAt time.Time `gorm:"not null" json:"unlockedAt"`
}

func (BadgeUnlock) TableName() string {
	return "badge_unlocks"
}

// AchievementEventType 成就事件类型
type AchievementEventType string

const (
	EventLevelUp     AchievementEventType = "level_up"
	EventBadgeUnlock AchievementEventType = "badge_unlock"
	EventXPGain      AchievementEventType = "xp_gain"
)

// AchievementEvent 成就通知流（升级、徽章解锁等）
// swagger:model AchievementEvent
type AchievementEvent struct {
	BaseModel
	UserID  uint                 `gorm:"index;not null" json:"userId"`
	Type    AchievementEventType `gorm:"size:20;not null" json:"type"`
	BadgeID string               `gorm:"size:50" json:"badgeId,omitempty"`
	Level   int                  `json:"level,omitempty"`
	XP      int                  `json:"xp,omitempty"`
	Message string               `gorm:"size:255" json:"message"`
	Read    bool                 `gorm:"default:false" json:"read"`
}

func (AchievementEvent) TableName() string {
	return "achievement_events"
}

package model

import "time"

// StudySession 一次定时学习会话。每个用户同一时刻最多一条 IsActive 记录。
// swagger:model StudySession
type StudySession struct {
	UUIDBase
	UserID      uint   `gorm:"index;not null" json:"userId"`
	CategoryKey string `gorm:"size:50;not null" json:"categoryKey"`
	// 会话开始时固定的题目顺序（题目 ItemKey 列表）
	Queue          []string   `gorm:"serializer:json;type:json" json:"queue"`
	Cursor         int        `gorm:"default:0" json:"cursor"`
	CorrectCount   int        `gorm:"default:0" json:"correctCount"`
	TotalAnswered  int        `gorm:"default:0" json:"totalAnswered"`
	IsActive       bool       `gorm:"index;default:true" json:"isActive"`
	StartedAt      time.Time  `gorm:"not null" json:"startedAt"`
	LastActivityAt time.Time  `json:"lastActivityAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	AbandonedAt    *time.Time `json:"abandonedAt,omitempty"`

	Responses []SessionResponse `gorm:"foreignKey:SessionID" json:"responses,omitempty"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}

// IsComplete 队列是否已答完
func (s *StudySession) IsComplete() bool {
	return s.Cursor >= len(s.Queue)
}

// SessionResponse 会话内的单次作答记录
// swagger:model SessionResponse
type SessionResponse struct {
	BaseModel
	SessionID      string    `gorm:"index;type:varchar(36);not null" json:"sessionId"`
	ItemKey        string    `gorm:"size:50;not null" json:"itemKey"`
	Submitted      string    `gorm:"type:text" json:"submitted"`
	IsCorrect      bool      `json:"isCorrect"`
	ResponseTimeMs int64     `json:"responseTimeMs"`
	AnsweredAt     time.Time `json:"answeredAt"`
}

func (SessionResponse) TableName() string {
	return "session_responses"
}

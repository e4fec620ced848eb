package model

import "time"

// PlanTier 订阅档位
type PlanTier string

const (
	PlanFree    PlanTier = "free"
	PlanMonthly PlanTier = "monthly"
	PlanYearly  PlanTier = "yearly"
)

// Subscription 用户订阅状态，每个用户一条
// swagger:model Subscription
type Subscription struct {
	BaseModel
	UserID       uint       `gorm:"uniqueIndex;not null" json:"userId"`
	Plan         PlanTier   `gorm:"size:20;default:free" json:"plan"`
	SubscribedAt *time.Time `json:"subscribedAt,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// EffectivePlan 过期的付费订阅按免费档处理
func (s *Subscription) EffectivePlan(now time.Time) PlanTier {
	if s.Plan == PlanFree {
		return PlanFree
	}
	if s.ExpiresAt != nil && s.ExpiresAt.Before(now) {
		return PlanFree
	}
	return s.Plan
}

// IsPremium 当前是否处于有效的付费订阅期
func (s *Subscription) IsPremium(now time.Time) bool {
	return s.EffectivePlan(now) != PlanFree
}

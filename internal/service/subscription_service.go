package service

import (
	"time"

	"studymo_backend/internal/model"
	"studymo_backend/internal/repository"
	"studymo_backend/internal/util"
)

// QuotaStore 每日会话用量计数，day 为 2006-01-02 格式的日历日
type QuotaStore interface {
	Used(userID uint, day string) (int, error)
	Incr(userID uint, day string) error
}

// SubscriptionService 订阅与每日配额门
type SubscriptionService struct {
	SubscriptionRepo *repository.SubscriptionRepository
	Quota            QuotaStore

	Now func() time.Time
}

func NewSubscriptionService(subscriptionRepo *repository.SubscriptionRepository, quota QuotaStore) *SubscriptionService {
	return &SubscriptionService{
		SubscriptionRepo: subscriptionRepo,
		Quota:            quota,
		Now:              time.Now,
	}
}

// SubscriptionState 对外暴露的订阅视图
type SubscriptionState struct {
	Plan              model.PlanTier `json:"plan"`
	IsPremium         bool           `json:"isPremium"`
	DailySessionsUsed int            `json:"dailySessionsUsed"`
	// 免费档为 1，付费档无限制（-1 表示无上限）
	DailyQuota   int        `json:"dailyQuota"`
	SubscribedAt *time.Time `json:"subscribedAt,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}

func (s *SubscriptionService) day(now time.Time) string {
	return now.Format(util.DateFormat)
}

// GetState 返回用户当前的订阅状态与当日用量
func (s *SubscriptionService) GetState(userID uint) (*SubscriptionState, error) {
	sub, err := s.SubscriptionRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	used, err := s.Quota.Used(userID, s.day(now))
	if err != nil {
		return nil, err
	}

	state := &SubscriptionState{
		Plan:              sub.EffectivePlan(now),
		IsPremium:         sub.IsPremium(now),
		DailySessionsUsed: used,
		DailyQuota:        util.FreeDailyQuota,
		SubscribedAt:      sub.SubscribedAt,
		ExpiresAt:         sub.ExpiresAt,
	}
	if state.IsPremium {
		state.DailyQuota = -1
	}
	return state, nil
}

// CanStartSession 付费档永远放行，免费档受每日配额约束
func (s *SubscriptionService) CanStartSession(userID uint) (bool, error) {
	sub, err := s.SubscriptionRepo.FindByUser(userID)
	if err != nil {
		return false, err
	}

	now := s.Now()
	if sub.IsPremium(now) {
		return true, nil
	}

	used, err := s.Quota.Used(userID, s.day(now))
	if err != nil {
		return false, err
	}
	return used < util.FreeDailyQuota, nil
}

// ConsumeSession 授权通过后消耗一次配额，付费档为空操作
func (s *SubscriptionService) ConsumeSession(userID uint) error {
	sub, err := s.SubscriptionRepo.FindByUser(userID)
	if err != nil {
		return err
	}

	now := s.Now()
	if sub.IsPremium(now) {
		return nil
	}
	return s.Quota.Incr(userID, s.day(now))
}

// RemainingSessions 当日剩余可用会话数，-1 表示无上限
func (s *SubscriptionService) RemainingSessions(userID uint) (int, error) {
	state, err := s.GetState(userID)
	if err != nil {
		return 0, err
	}
	if state.DailyQuota < 0 {
		return -1, nil
	}
	remaining := state.DailyQuota - state.DailySessionsUsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Upgrade 升级到付费档，月付一个月、年付十二个月
func (s *SubscriptionService) Upgrade(userID uint, plan model.PlanTier) (*model.Subscription, error) {
	if plan != model.PlanMonthly && plan != model.PlanYearly {
		return nil, util.ErrUnknownPlan
	}

	sub, err := s.SubscriptionRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	months := 1
	if plan == model.PlanYearly {
		months = 12
	}
	expiry := now.AddDate(0, months, 0)

	sub.Plan = plan
	sub.SubscribedAt = &now
	sub.ExpiresAt = &expiry

	if err := s.SubscriptionRepo.Save(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Cancel 取消订阅，回到免费档
func (s *SubscriptionService) Cancel(userID uint) (*model.Subscription, error) {
	sub, err := s.SubscriptionRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	sub.Plan = model.PlanFree
	sub.SubscribedAt = nil
	sub.ExpiresAt = nil

	if err := s.SubscriptionRepo.Save(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// PlanDetail 套餐展示信息
type PlanDetail struct {
	Plan          model.PlanTier `json:"plan"`
	Name          string         `json:"name"`
	Price         string         `json:"price"`
	OriginalPrice string         `json:"originalPrice,omitempty"`
	Discount      string         `json:"discount,omitempty"`
	Features      []string       `json:"features"`
	Limitations   []string       `json:"limitations,omitempty"`
}

// ListPlans 返回全部套餐信息（付费墙展示用）
func (s *SubscriptionService) ListPlans() []PlanDetail {
	return []PlanDetail{
		{
			Plan: model.PlanFree, Name: "無料プラン", Price: "¥0",
			Features:    []string{"1日1セッション", "基本的な学習カテゴリー", "基本統計", "広告表示あり"},
			Limitations: []string{"1日1セッション制限", "限定的な学習カテゴリー", "広告表示"},
		},
		{
			Plan: model.PlanMonthly, Name: "プレミアム（月額）", Price: "¥680",
			Features: []string{"無制限セッション", "すべての学習カテゴリー", "詳細分析レポート", "広告非表示"},
		},
		{
			Plan: model.PlanYearly, Name: "プレミアム（年額）", Price: "¥6,800",
			OriginalPrice: "¥8,160", Discount: "17%オフ",
			Features: []string{"無制限セッション", "すべての学習カテゴリー", "詳細分析レポート", "広告非表示", "優先サポート"},
		},
	}
}

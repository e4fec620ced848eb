package service

import (
	"testing"
	"time"

	"studymo_backend/internal/model"
	"studymo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserDefaultsToFreePlan(t *testing.T) {
	h := newHarness(t)

	state, err := h.subscription.GetState(1)
	require.NoError(t, err)
	assert.Equal(t, model.PlanFree, state.Plan)
	assert.False(t, state.IsPremium)
	assert.Equal(t, util.FreeDailyQuota, state.DailyQuota)
	assert.Zero(t, state.DailySessionsUsed)
}

func TestFreePlanDailyQuota(t *testing.T) {
	h := newHarness(t)

	ok, err := h.subscription.CanStartSession(1)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, h.subscription.ConsumeSession(1))

	ok, err = h.subscription.CanStartSession(1)
	require.NoError(t, err)
	assert.False(t, ok)

	remaining, err := h.subscription.RemainingSessions(1)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	// 翌日重置
	h.advance(24 * time.Hour)
	ok, err = h.subscription.CanStartSession(1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPremiumUnlimitedSessions(t *testing.T) {
	h := newHarness(t)
	h.upgradePremium(t, 1)

	for i := 0; i < 5; i++ {
		ok, err := h.subscription.CanStartSession(1)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, h.subscription.ConsumeSession(1))
	}

	// プレミアムは配額を消費しない
	used, err := h.quota.Used(1, h.clock.Format(util.DateFormat))
	require.NoError(t, err)
	assert.Zero(t, used)

	remaining, err := h.subscription.RemainingSessions(1)
	require.NoError(t, err)
	assert.Equal(t, -1, remaining)

	state, err := h.subscription.GetState(1)
	require.NoError(t, err)
	assert.True(t, state.IsPremium)
	assert.Equal(t, -1, state.DailyQuota)
}

func TestUpgradeSetsExpiry(t *testing.T) {
	h := newHarness(t)

	sub, err := h.subscription.Upgrade(1, model.PlanMonthly)
	require.NoError(t, err)
	require.NotNil(t, sub.ExpiresAt)
	assert.Equal(t, h.clock.AddDate(0, 1, 0), *sub.ExpiresAt)

	sub, err = h.subscription.Upgrade(1, model.PlanYearly)
	require.NoError(t, err)
	require.NotNil(t, sub.ExpiresAt)
	assert.Equal(t, h.clock.AddDate(1, 0, 0), *sub.ExpiresAt)
}

func TestUpgradeUnknownPlan(t *testing.T) {
	h := newHarness(t)

	_, err := h.subscription.Upgrade(1, model.PlanTier("lifetime"))
	assert.ErrorIs(t, err, util.ErrUnknownPlan)

	_, err = h.subscription.Upgrade(1, model.PlanFree)
	assert.ErrorIs(t, err, util.ErrUnknownPlan)
}

func TestExpiredSubscriptionFallsBackToFree(t *testing.T) {
	h := newHarness(t)
	h.upgradePremium(t, 1)

	h.advance(32 * 24 * time.Hour)

	state, err := h.subscription.GetState(1)
	require.NoError(t, err)
	assert.Equal(t, model.PlanFree, state.Plan)
	assert.False(t, state.IsPremium)
	assert.Equal(t, util.FreeDailyQuota, state.DailyQuota)

	// 失効後は無料枠の制約に戻る
	require.NoError(t, h.subscription.ConsumeSession(1))
	ok, err := h.subscription.CanStartSession(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCancelResetsToFree(t *testing.T) {
	h := newHarness(t)
	h.upgradePremium(t, 1)

	sub, err := h.subscription.Cancel(1)
	require.NoError(t, err)
	assert.Equal(t, model.PlanFree, sub.Plan)
	assert.Nil(t, sub.SubscribedAt)
	assert.Nil(t, sub.ExpiresAt)

	state, err := h.subscription.GetState(1)
	require.NoError(t, err)
	assert.False(t, state.IsPremium)
}

func TestQuotaIsolatedPerUser(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.subscription.ConsumeSession(1))

	ok, err := h.subscription.CanStartSession(2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestListPlans(t *testing.T) {
	h := newHarness(t)

	plans := h.subscription.ListPlans()
	require.Len(t, plans, 3)
	assert.Equal(t, model.PlanFree, plans[0].Plan)
	assert.Equal(t, model.PlanMonthly, plans[1].Plan)
	assert.Equal(t, model.PlanYearly, plans[2].Plan)
	assert.Equal(t, "¥680", plans[1].Price)
	assert.Equal(t, "¥6,800", plans[2].Price)
	assert.NotEmpty(t, plans[2].Discount)
}

func TestEffectivePlanBoundary(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(time.Minute)
	sub := &model.Subscription{Plan: model.PlanMonthly, ExpiresAt: &expiry}

	assert.Equal(t, model.PlanMonthly, sub.EffectivePlan(now))
	assert.Equal(t, model.PlanFree, sub.EffectivePlan(now.Add(2*time.Minute)))
}

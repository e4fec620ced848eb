package service

import (
	"testing"
	"time"

	"studymo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyResultAccumulates(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)

	first := &SessionResult{CategoryKey: "quiz", TotalItems: 5, CorrectAnswers: 3, CompletedAt: *h.clock}
	require.NoError(t, h.progress.ApplyResult(1, first))

	h.advance(time.Hour)
	second := &SessionResult{CategoryKey: "quiz", TotalItems: 5, CorrectAnswers: 5, CompletedAt: *h.clock}
	require.NoError(t, h.progress.ApplyResult(1, second))

	record, err := h.progress.GetProgress(1, "quiz")
	require.NoError(t, err)
	assert.Equal(t, 10, record.Attempted)
	assert.Equal(t, 8, record.Correct)
	assert.Equal(t, 1, record.StreakDays, "same day should not advance the streak")
	assert.InDelta(t, 1.2, record.SkillLevel, 0.0001)
	assert.NotNil(t, record.LastStudiedAt)
}

func TestApplyResultStreakAdvancesNextDay(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)

	result := &SessionResult{CategoryKey: "quiz", TotalItems: 5, CorrectAnswers: 3, CompletedAt: *h.clock}
	require.NoError(t, h.progress.ApplyResult(1, result))

	h.advance(24 * time.Hour)
	require.NoError(t, h.progress.ApplyResult(1, result))

	record, err := h.progress.GetProgress(1, "quiz")
	require.NoError(t, err)
	assert.Equal(t, 2, record.StreakDays)

	// 中断三天后重置
	h.advance(72 * time.Hour)
	require.NoError(t, h.progress.ApplyResult(1, result))

	record, err = h.progress.GetProgress(1, "quiz")
	require.NoError(t, err)
	assert.Equal(t, 1, record.StreakDays)
}

func TestApplyResultSkillLevelCapped(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)

	result := &SessionResult{CategoryKey: "quiz", TotalItems: 1, CorrectAnswers: 1, CompletedAt: *h.clock}
	for i := 0; i < 100; i++ {
		require.NoError(t, h.progress.ApplyResult(1, result))
	}

	record, err := h.progress.GetProgress(1, "quiz")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, record.SkillLevel, 0.0001)
}

func TestApplyResultUnknownCategory(t *testing.T) {
	h := newHarness(t)

	result := &SessionResult{CategoryKey: "nope", TotalItems: 5, CorrectAnswers: 3, CompletedAt: *h.clock}
	assert.ErrorIs(t, h.progress.ApplyResult(1, result), util.ErrCategoryNotFound)
}

func TestGetProgressNeverStudied(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)

	record, err := h.progress.GetProgress(1, "quiz")
	require.NoError(t, err)
	assert.Zero(t, record.Attempted)
	assert.Zero(t, record.Correct)
	assert.Zero(t, record.StreakDays)
	assert.InDelta(t, 1.0, record.SkillLevel, 0.0001)
	assert.Nil(t, record.LastStudiedAt)
}

func TestGetProgressUnknownCategory(t *testing.T) {
	h := newHarness(t)
	_, err := h.progress.GetProgress(1, "nope")
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}

func TestListProgressIsolatedPerUser(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz_a", 5)
	seedTestCategory(t, h.db, "quiz_b", 5)

	require.NoError(t, h.progress.ApplyResult(1, &SessionResult{CategoryKey: "quiz_a", TotalItems: 5, CorrectAnswers: 3, CompletedAt: *h.clock}))
	require.NoError(t, h.progress.ApplyResult(1, &SessionResult{CategoryKey: "quiz_b", TotalItems: 5, CorrectAnswers: 4, CompletedAt: *h.clock}))
	require.NoError(t, h.progress.ApplyResult(2, &SessionResult{CategoryKey: "quiz_a", TotalItems: 5, CorrectAnswers: 5, CompletedAt: *h.clock}))

	records, err := h.progress.ListProgress(1)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = h.progress.ListProgress(2)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "quiz_a", records[0].CategoryKey)
	assert.Equal(t, 5, records[0].Correct)
}

package service

import (
	"strconv"
	"testing"
	"time"

	"studymo_backend/internal/model"
	"studymo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAnswer(t *testing.T) {
	choice := &model.QuestionItem{
		Kind:          model.MultipleChoice,
		Options:       []string{"東京", "大阪", "京都"},
		CorrectOption: 2,
	}
	text := &model.QuestionItem{
		Kind:            model.FreeText,
		AcceptedAnswers: []string{"hello", "こんにちは"},
	}

	tests := []struct {
		name      string
		item      *model.QuestionItem
		submitted string
		want      bool
	}{
		{"choice correct index", choice, "2", true},
		{"choice wrong index", choice, "0", false},
		{"choice index with whitespace", choice, " 2 ", true},
		{"choice option text rejected", choice, "京都", false},
		{"choice empty", choice, "", false},
		{"text exact", text, "hello", true},
		{"text case insensitive", text, "Hello", true},
		{"text surrounding whitespace", text, "  hello  ", true},
		{"text second accepted answer", text, "こんにちは", true},
		{"text wrong", text, "goodbye", false},
		{"text empty", text, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckAnswer(tt.item, tt.submitted))
		})
	}
}

func TestAccuracyPercent(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{3, 5, 60},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AccuracyPercent(tt.correct, tt.total),
			"AccuracyPercent(%d, %d)", tt.correct, tt.total)
	}
}

func TestStartSessionClampsToAvailableItems(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz_small", 5)
	h.upgradePremium(t, 1)

	session, err := h.session.StartSession(1, "quiz_small", 20)
	require.NoError(t, err)
	assert.Len(t, session.Queue, 5)
	assert.Equal(t, 0, session.Cursor)
	assert.True(t, session.IsActive)
}

func TestStartSessionUsesDefaultItemCount(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz_big", 15)
	h.upgradePremium(t, 1)

	session, err := h.session.StartSession(1, "quiz_big", 0)
	require.NoError(t, err)
	assert.Len(t, session.Queue, 10)
}

func TestStartSessionRejectsSecondActiveSession(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)
	h.upgradePremium(t, 1)

	_, err := h.session.StartSession(1, "quiz", 5)
	require.NoError(t, err)

	_, err = h.session.StartSession(1, "quiz", 5)
	assert.ErrorIs(t, err, util.ErrSessionAlreadyActive)
}

func TestStartSessionEmptyCategory(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz_empty", 0)
	h.upgradePremium(t, 1)

	_, err := h.session.StartSession(1, "quiz_empty", 5)
	assert.ErrorIs(t, err, util.ErrNoContentAvailable)
}

func TestStartSessionQuotaDeniedLeavesNoState(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)

	// 免费档：第一回成功并消耗配额
	session, err := h.session.StartSession(1, "quiz", 5)
	require.NoError(t, err)
	require.NoError(t, h.session.AbandonSession(1))

	used, err := h.quota.Used(1, h.clock.Format(util.DateFormat))
	require.NoError(t, err)
	assert.Equal(t, 1, used)

	// 第二回当日被拒，且不产生任何状态变更
	_, err = h.session.StartSession(1, "quiz", 5)
	assert.ErrorIs(t, err, util.ErrQuotaExceeded)

	used, err = h.quota.Used(1, h.clock.Format(util.DateFormat))
	require.NoError(t, err)
	assert.Equal(t, 1, used)

	var count int64
	require.NoError(t, h.db.Model(&model.StudySession{}).Where("user_id = ? AND id <> ?", 1, session.ID).Count(&count).Error)
	assert.Zero(t, count)

	// 翌日配额重置
	h.advance(24 * time.Hour)
	_, err = h.session.StartSession(1, "quiz", 5)
	assert.NoError(t, err)
}

func TestSessionLifecycle(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)
	h.upgradePremium(t, 1)

	session, err := h.session.StartSession(1, "quiz", 5)
	require.NoError(t, err)
	require.Len(t, session.Queue, 5)

	// 3問正解、2問不正解
	answers := []string{"1", "1", "0", "1", "0"}
	for i, answer := range answers {
		h.advance(2 * time.Second)
		updated, resp, err := h.session.RecordResponse(1, answer)
		require.NoError(t, err)
		assert.Equal(t, answer == "1", resp.IsCorrect)
		assert.Equal(t, int64(2000), resp.ResponseTimeMs)

		// 游标与作答数恒等式
		assert.Equal(t, i+1, updated.Cursor)
		assert.Equal(t, i+1, updated.TotalAnswered)
		count, err := h.session.SessionRepo.CountResponses(updated.ID)
		require.NoError(t, err)
		assert.EqualValues(t, updated.TotalAnswered, count)
	}

	// 队列答完后继续作答被拒
	_, _, err = h.session.RecordResponse(1, "1")
	assert.ErrorIs(t, err, util.ErrSessionComplete)

	result, outcome, err := h.session.CompleteSession(1)
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.Equal(t, 5, result.TotalItems)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.Equal(t, 60, result.AccuracyPercent)
	assert.Equal(t, "quiz", result.CategoryKey)
	assert.Equal(t, int64(10000), result.TotalTimeMs)

	// 会话已关闭
	_, err = h.session.GetCurrentSession(1)
	assert.ErrorIs(t, err, util.ErrNoActiveSession)

	// 进度已并入
	record, err := h.progress.GetProgress(1, "quiz")
	require.NoError(t, err)
	assert.Equal(t, 5, record.Attempted)
	assert.Equal(t, 3, record.Correct)
	assert.Equal(t, 1, record.StreakDays)
	assert.InDelta(t, 1.1, record.SkillLevel, 0.0001)
}

func TestCompleteSessionEarlyCountsOnlyAnswered(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)
	h.upgradePremium(t, 1)

	_, err := h.session.StartSession(1, "quiz", 5)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, _, err := h.session.RecordResponse(1, "1")
		require.NoError(t, err)
	}

	result, _, err := h.session.CompleteSession(1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalItems)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Equal(t, 100, result.AccuracyPercent)
}

func TestCompleteSessionWithoutAnswers(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)
	h.upgradePremium(t, 1)

	_, err := h.session.StartSession(1, "quiz", 5)
	require.NoError(t, err)

	result, _, err := h.session.CompleteSession(1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalItems)
	assert.Equal(t, 0, result.AccuracyPercent)
}

func TestAbandonSessionHasNoSideEffects(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 5)
	h.upgradePremium(t, 1)

	_, err := h.session.StartSession(1, "quiz", 5)
	require.NoError(t, err)

	_, _, err = h.session.RecordResponse(1, "1")
	require.NoError(t, err)

	require.NoError(t, h.session.AbandonSession(1))

	// 聚合统计不受影响
	record, err := h.progress.GetProgress(1, "quiz")
	require.NoError(t, err)
	assert.Zero(t, record.Attempted)

	overview, err := h.gamification.GetOverview(1)
	require.NoError(t, err)
	assert.Zero(t, overview.Stats.TotalSessions)
	assert.Zero(t, overview.Stats.TotalXP)

	// 放弃后可立即开始新会话
	_, err = h.session.StartSession(1, "quiz", 5)
	assert.NoError(t, err)
}

func TestAbandonWithoutActiveSession(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.session.AbandonSession(1), util.ErrNoActiveSession)
}

func TestRecordResponseWithoutActiveSession(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.session.RecordResponse(1, "1")
	assert.ErrorIs(t, err, util.ErrNoActiveSession)
}

func TestCurrentItemAdvancesWithCursor(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 3)
	h.upgradePremium(t, 1)

	session, err := h.session.StartSession(1, "quiz", 3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		item, err := h.session.CurrentItem(session)
		require.NoError(t, err)
		assert.Equal(t, session.Queue[i], item.ItemKey)

		session, _, err = h.session.RecordResponse(1, strconv.Itoa(i))
		require.NoError(t, err)
	}

	_, err = h.session.CurrentItem(session)
	assert.ErrorIs(t, err, util.ErrSessionComplete)
}

func TestSessionQueueHasNoDuplicates(t *testing.T) {
	h := newHarness(t)
	seedTestCategory(t, h.db, "quiz", 20)
	h.upgradePremium(t, 1)

	session, err := h.session.StartSession(1, "quiz", 10)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, key := range session.Queue {
		assert.False(t, seen[key], "duplicate item %s", key)
		seen[key] = true
	}
}

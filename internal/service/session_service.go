package service

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"studymo_backend/internal/config"
	"studymo_backend/internal/model"
	"studymo_backend/internal/repository"
	"studymo_backend/internal/util"
	"studymo_backend/pkg/monitoring"
)

// SessionResult 会话完成后的不可变结果，是传给进度与游戏化模块的唯一交接物
type SessionResult struct {
	SessionID       string    `json:"sessionId"`
	CategoryKey     string    `json:"categoryKey"`
	TotalItems      int       `json:"totalItems"`
	CorrectAnswers  int       `json:"correctAnswers"`
	AccuracyPercent int       `json:"accuracyPercent"`
	TotalTimeMs     int64     `json:"totalTimeMs"`
	CompletedAt     time.Time `json:"completedAt"`
}

// SessionService 管理定时学习会话的完整生命周期
type SessionService struct {
	CatalogRepo  *repository.CatalogRepository
	SessionRepo  *repository.SessionRepository
	Subscription *SubscriptionService
	Progress     *ProgressService
	Gamification *GamificationService
	Config       *config.Config

	// 可注入的洗牌函数与时钟，测试时替换为确定性实现
	Shuffle func(n int, swap func(i, j int))
	Now     func() time.Time
}

func NewSessionService(
	catalogRepo *repository.CatalogRepository,
	sessionRepo *repository.SessionRepository,
	subscription *SubscriptionService,
	progress *ProgressService,
	gamification *GamificationService,
	cfg *config.Config,
) *SessionService {
	return &SessionService{
		CatalogRepo:  catalogRepo,
		SessionRepo:  sessionRepo,
		Subscription: subscription,
		Progress:     progress,
		Gamification: gamification,
		Config:       cfg,
		Shuffle:      rand.Shuffle,
		Now:          time.Now,
	}
}

// StartSession 开始一次会话。顺序：活跃会话检查 → 配额检查 → 题库检查 →
// 生成题目队列。配额只在会话成功创建后消耗，被拒绝时不产生任何状态变更。
func (s *SessionService) StartSession(userID uint, categoryKey string, itemCount int) (*model.StudySession, error) {
	active, err := s.SessionRepo.FindActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, util.ErrSessionAlreadyActive
	}

	ok, err := s.Subscription.CanStartSession(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		monitoring.SessionsDeniedQuota.Inc()
		return nil, util.ErrQuotaExceeded
	}

	items, err := s.CatalogRepo.FindItemsByCategoryKey(categoryKey)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, util.ErrNoContentAvailable
	}

	if itemCount <= 0 {
		itemCount = s.Config.Session.DefaultItemCount
	}
	if itemCount > s.Config.Session.MaxItemCount {
		itemCount = s.Config.Session.MaxItemCount
	}

	queue := make([]string, len(items))
	for i, item := range items {
		queue[i] = item.ItemKey
	}
	s.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	if itemCount < len(queue) {
		queue = queue[:itemCount]
	}

	now := s.Now()
	session := &model.StudySession{
		UserID:         userID,
		CategoryKey:    categoryKey,
		Queue:          queue,
		Cursor:         0,
		IsActive:       true,
		StartedAt:      now,
		LastActivityAt: now,
	}

	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}

	if err := s.Subscription.ConsumeSession(userID); err != nil {
		return nil, err
	}

	monitoring.SessionsStarted.WithLabelValues(categoryKey).Inc()
	return session, nil
}

// RecordResponse 记录一次作答并推进游标。会话完成前不触碰任何聚合统计。
func (s *SessionService) RecordResponse(userID uint, submitted string) (*model.StudySession, *model.SessionResponse, error) {
	session, err := s.SessionRepo.FindActiveByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, util.ErrNoActiveSession
	}
	if session.IsComplete() {
		return nil, nil, util.ErrSessionComplete
	}

	itemKey := session.Queue[session.Cursor]
	item, err := s.CatalogRepo.FindItemByKey(itemKey)
	if err != nil {
		return nil, nil, err
	}

	now := s.Now()
	correct := CheckAnswer(item, submitted)

	response := &model.SessionResponse{
		SessionID:      session.ID,
		ItemKey:        itemKey,
		Submitted:      submitted,
		IsCorrect:      correct,
		ResponseTimeMs: now.Sub(session.LastActivityAt).Milliseconds(),
		AnsweredAt:     now,
	}
	if err := s.SessionRepo.CreateResponse(response); err != nil {
		return nil, nil, err
	}

	session.TotalAnswered++
	if correct {
		session.CorrectCount++
	}
	session.Cursor++
	session.LastActivityAt = now

	if err := s.SessionRepo.Update(session); err != nil {
		return nil, nil, err
	}

	return session, response, nil
}

// CompleteSession 结束会话并产出结果。允许在答完队列前提前结束，
// 结果只统计已作答的题目。完成标记写入后才通知进度与游戏化模块，
// 保证每个会话的结果只被聚合一次。
func (s *SessionService) CompleteSession(userID uint) (*SessionResult, *SessionOutcome, error) {
	session, err := s.SessionRepo.FindActiveByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, util.ErrNoActiveSession
	}

	now := s.Now()
	result := &SessionResult{
		SessionID:      session.ID,
		CategoryKey:    session.CategoryKey,
		TotalItems:     session.TotalAnswered,
		CorrectAnswers: session.CorrectCount,
		TotalTimeMs:    now.Sub(session.StartedAt).Milliseconds(),
		CompletedAt:    now,
	}
	result.AccuracyPercent = AccuracyPercent(session.CorrectCount, session.TotalAnswered)

	session.IsActive = false
	session.CompletedAt = &now
	if err := s.SessionRepo.Update(session); err != nil {
		return nil, nil, err
	}

	if err := s.Progress.ApplyResult(userID, result); err != nil {
		return nil, nil, err
	}

	outcome, err := s.Gamification.OnSessionCompleted(userID, result)
	if err != nil {
		return nil, nil, err
	}

	monitoring.SessionsCompleted.WithLabelValues(session.CategoryKey).Inc()
	return result, outcome, nil
}

// AbandonSession 放弃当前会话，不产生任何聚合副作用
func (s *SessionService) AbandonSession(userID uint) error {
	session, err := s.SessionRepo.FindActiveByUser(userID)
	if err != nil {
		return err
	}
	if session == nil {
		return util.ErrNoActiveSession
	}

	now := s.Now()
	session.IsActive = false
	session.AbandonedAt = &now
	return s.SessionRepo.Update(session)
}

// GetCurrentSession 返回当前活跃会话，不存在时返回 ErrNoActiveSession
func (s *SessionService) GetCurrentSession(userID uint) (*model.StudySession, error) {
	session, err := s.SessionRepo.FindActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, util.ErrNoActiveSession
	}
	return session, nil
}

// CurrentItem 返回当前待答题目（选择题不含正确答案下标）
func (s *SessionService) CurrentItem(session *model.StudySession) (*model.QuestionItem, error) {
	if session.IsComplete() {
		return nil, util.ErrSessionComplete
	}
	return s.CatalogRepo.FindItemByKey(session.Queue[session.Cursor])
}

// CheckAnswer 判定作答是否正确。
// 选择题：提交的是选项的规范下标，按下标比较，与选项文案无关；
// 记述题：去首尾空白后忽略大小写，与可接受答案集合逐一比对。
func CheckAnswer(item *model.QuestionItem, submitted string) bool {
	switch item.Kind {
	case model.MultipleChoice:
		idx, err := strconv.Atoi(strings.TrimSpace(submitted))
		if err != nil {
			return false
		}
		return idx == item.CorrectOption
	case model.FreeText:
		trimmed := strings.TrimSpace(submitted)
		for _, answer := range item.AcceptedAnswers {
			if strings.EqualFold(trimmed, answer) {
				return true
			}
		}
		return false
	}
	return false
}

// AccuracyPercent 四舍五入的正答率百分比，total 为 0 时定义为 0
func AccuracyPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

package service

import (
	"fmt"
	"math"
	"time"

	"studymo_backend/internal/model"
	"studymo_backend/internal/repository"
	"studymo_backend/pkg/monitoring"
)

// XP 计算规则
const (
	xpPerCorrect       = 10
	xpAccuracyBonus    = 5
	xpPerfectBonus     = 50
	nightSessionHour   = 22
	earlySessionHour   = 6
	recentEventsAmount = 20
)

// GamificationService 从会话结果派生 XP、等级与徽章
type GamificationService struct {
	GamificationRepo *repository.GamificationRepository
	ProgressRepo     *repository.ProgressRepository

	Now func() time.Time
}

func NewGamificationService(gamificationRepo *repository.GamificationRepository, progressRepo *repository.ProgressRepository) *GamificationService {
	return &GamificationService{
		GamificationRepo: gamificationRepo,
		ProgressRepo:     progressRepo,
		Now:              time.Now,
	}
}

// SessionOutcome 会话完成后的游戏化结算
type SessionOutcome struct {
	XPAwarded      int     `json:"xpAwarded"`
	TotalXP        int     `json:"totalXp"`
	Level          int     `json:"level"`
	LeveledUp      bool    `json:"leveledUp"`
	UnlockedBadges []Badge `json:"unlockedBadges"`
}

// CalculateLevel 等级公式：floor(sqrt(xp/100)) + 1
func CalculateLevel(xp int) int {
	if xp < 0 {
		return 1
	}
	return int(math.Sqrt(float64(xp)/100)) + 1
}

// XPForLevel 达到某等级所需的累计 XP
func XPForLevel(level int) int {
	if level < 1 {
		return 0
	}
	return level * level * 100
}

// SessionXP 单次会话的 XP：正答数*10 + floor(正答率/10)*5 + 全对加成50
func SessionXP(result *SessionResult) int {
	xp := result.CorrectAnswers * xpPerCorrect
	xp += result.AccuracyPercent / 10 * xpAccuracyBonus
	if result.AccuracyPercent == 100 && result.TotalItems > 0 {
		xp += xpPerfectBonus
	}
	return xp
}

// OnSessionCompleted 会话完成的内部事件处理：更新聚合统计、发放 XP、
// 判定升级并做一轮徽章扫描。每个 SessionResult 只允许传入一次。
func (s *GamificationService) OnSessionCompleted(userID uint, result *SessionResult) (*SessionOutcome, error) {
	stats, err := s.GamificationRepo.FindOrCreateStats(userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	hour := result.CompletedAt.Hour()

	stats.TotalSessions++
	stats.TotalAttempted += result.TotalItems
	stats.TotalCorrect += result.CorrectAnswers
	stats.TotalStudyTimeMs += result.TotalTimeMs
	stats.TotalResponseTimeMs += result.TotalTimeMs
	if hour >= nightSessionHour {
		stats.NightSessions++
	}
	if hour < earlySessionHour {
		stats.EarlySessions++
	}
	if result.AccuracyPercent == 100 && result.TotalItems > 0 {
		stats.PerfectSessions++
	}

	stats.CurrentStreak = advanceStreak(stats.CurrentStreak, stats.LastStudyDate, now)
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.LastStudyDate = &now

	outcome := &SessionOutcome{}

	if err := s.gainXP(stats, SessionXP(result), outcome); err != nil {
		return nil, err
	}

	unlocked, err := s.sweepBadges(stats, outcome)
	if err != nil {
		return nil, err
	}
	outcome.UnlockedBadges = unlocked

	if err := s.GamificationRepo.SaveStats(stats); err != nil {
		return nil, err
	}

	outcome.TotalXP = stats.TotalXP
	outcome.Level = stats.Level
	return outcome, nil
}

// gainXP 累加 XP 并处理升级事件
func (s *GamificationService) gainXP(stats *model.UserStats, amount int, outcome *SessionOutcome) error {
	if amount <= 0 {
		return nil
	}

	stats.TotalXP += amount
	outcome.XPAwarded += amount
	monitoring.XPAwarded.Add(float64(amount))

	newLevel := CalculateLevel(stats.TotalXP)
	if newLevel > stats.Level {
		stats.Level = newLevel
		outcome.LeveledUp = true

		event := &model.AchievementEvent{
			UserID:  stats.UserID,
			Type:    model.EventLevelUp,
			Level:   newLevel,
			Message: fmt.Sprintf("レベル %d に到達！", newLevel),
		}
		if err := s.GamificationRepo.CreateEvent(event); err != nil {
			return err
		}
	}
	return nil
}

// sweepBadges 对全部徽章做一轮判定。已解锁集合先查出来，
// 保证重复扫描不会重复发奖。
func (s *GamificationService) sweepBadges(stats *model.UserStats, outcome *SessionOutcome) ([]Badge, error) {
	unlockedIDs, err := s.GamificationRepo.ListUnlockedBadgeIDs(stats.UserID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(stats)
	if err != nil {
		return nil, err
	}

	var unlocked []Badge
	for _, badge := range Badges {
		if unlockedIDs[badge.ID] {
			continue
		}
		if !badge.Condition(snapshot) {
			continue
		}

		now := s.Now()
		if err := s.GamificationRepo.CreateBadgeUnlock(&model.BadgeUnlock{
			UserID:     stats.UserID,
			BadgeID:    badge.ID,
			UnlockedAt: now,
		}); err != nil {
			return nil, err
		}

		event := &model.AchievementEvent{
			UserID:  stats.UserID,
			Type:    model.EventBadgeUnlock,
			BadgeID: badge.ID,
			XP:      badge.BonusXP(),
			Message: fmt.Sprintf("バッジ「%s」を獲得！", badge.Name),
		}
		if err := s.GamificationRepo.CreateEvent(event); err != nil {
			return nil, err
		}

		if err := s.gainXP(stats, badge.BonusXP(), outcome); err != nil {
			return nil, err
		}

		monitoring.BadgesUnlocked.WithLabelValues(badge.ID).Inc()
		unlocked = append(unlocked, badge)
	}

	return unlocked, nil
}

// snapshot 生成徽章判定用的统计快照
func (s *GamificationService) snapshot(stats *model.UserStats) (StatsSnapshot, error) {
	categories, err := s.ProgressRepo.CountCategoriesStudied(stats.UserID)
	if err != nil {
		return StatsSnapshot{}, err
	}

	snap := StatsSnapshot{
		TotalSessions:     stats.TotalSessions,
		CurrentStreak:     stats.CurrentStreak,
		LongestStreak:     stats.LongestStreak,
		TotalStudyTimeMs:  stats.TotalStudyTimeMs,
		PerfectSessions:   stats.PerfectSessions,
		NightSessions:     stats.NightSessions,
		EarlySessions:     stats.EarlySessions,
		CategoriesStudied: int(categories),
	}
	if stats.TotalAttempted > 0 {
		snap.OverallAccuracy = float64(stats.TotalCorrect) / float64(stats.TotalAttempted) * 100
		snap.AverageResponseTimeMs = stats.TotalResponseTimeMs / int64(stats.TotalAttempted)
	}
	return snap, nil
}

// ProgressInfo 等级进度条信息
type ProgressInfo struct {
	CurrentLevel       int     `json:"currentLevel"`
	CurrentXP          int     `json:"currentXp"`
	XPProgress         int     `json:"xpProgress"`
	XPNeeded           int     `json:"xpNeeded"`
	ProgressPercentage float64 `json:"progressPercentage"`
	XPForNextLevel     int     `json:"xpForNextLevel"`
}

// BadgeInfo 徽章解锁情况
type BadgeInfo struct {
	Unlocked      []Badge `json:"unlocked"`
	Locked        []Badge `json:"locked"`
	Total         int     `json:"total"`
	UnlockedCount int     `json:"unlockedCount"`
}

// Overview 游戏化总览
type Overview struct {
	Stats    *model.UserStats `json:"stats"`
	Progress ProgressInfo     `json:"progress"`
	Pet      PetState         `json:"pet"`
}

// GetOverview 返回统计、等级进度与宠物状态
func (s *GamificationService) GetOverview(userID uint) (*Overview, error) {
	stats, err := s.GamificationRepo.FindOrCreateStats(userID)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Stats:    stats,
		Progress: progressInfo(stats),
		Pet:      PetForLevel(stats.Level),
	}, nil
}

func progressInfo(stats *model.UserStats) ProgressInfo {
	level := stats.Level
	xpForCurrent := XPForLevel(level - 1)
	xpForNext := XPForLevel(level)
	progress := stats.TotalXP - xpForCurrent
	needed := xpForNext - xpForCurrent

	pct := 0.0
	if needed > 0 {
		pct = float64(progress) / float64(needed) * 100
		if pct > 100 {
			pct = 100
		}
	}

	return ProgressInfo{
		CurrentLevel:       level,
		CurrentXP:          stats.TotalXP,
		XPProgress:         progress,
		XPNeeded:           needed,
		ProgressPercentage: pct,
		XPForNextLevel:     xpForNext,
	}
}

// GetBadgeInfo 返回用户的徽章解锁情况
func (s *GamificationService) GetBadgeInfo(userID uint) (*BadgeInfo, error) {
	unlockedIDs, err := s.GamificationRepo.ListUnlockedBadgeIDs(userID)
	if err != nil {
		return nil, err
	}

	info := &BadgeInfo{Total: len(Badges)}
	for _, badge := range Badges {
		if unlockedIDs[badge.ID] {
			info.Unlocked = append(info.Unlocked, badge)
		} else {
			info.Locked = append(info.Locked, badge)
		}
	}
	info.UnlockedCount = len(info.Unlocked)
	return info, nil
}

// GetRecentAchievements 返回最近的成就事件
func (s *GamificationService) GetRecentAchievements(userID uint) ([]model.AchievementEvent, error) {
	return s.GamificationRepo.ListRecentEvents(userID, recentEventsAmount)
}

// MarkAchievementsRead 将成就事件标记为已读
func (s *GamificationService) MarkAchievementsRead(userID uint) error {
	return s.GamificationRepo.MarkEventsRead(userID)
}

package service

import (
	"time"

	"studymo_backend/internal/model"
	"studymo_backend/internal/repository"
	"studymo_backend/pkg/logger"

	"go.uber.org/zap"
)

// 技能值增量与上限
const (
	skillLevelStep = 0.1
	skillLevelCap  = 10.0
)

// ProgressService 维护按分类累计的学习进度，只消费已完成会话的结果
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	CatalogRepo  *repository.CatalogRepository

	Now func() time.Time
}

func NewProgressService(progressRepo *repository.ProgressRepository, catalogRepo *repository.CatalogRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		CatalogRepo:  catalogRepo,
		Now:          time.Now,
	}
}

// ApplyResult 将一次会话结果并入分类进度。调用方保证每个结果只传入一次。
// 未知分类说明上游校验被绕过，记错误日志但不向用户暴露。
func (s *ProgressService) ApplyResult(userID uint, result *SessionResult) error {
	if _, err := s.CatalogRepo.FindCategoryByKey(result.CategoryKey); err != nil {
		logger.Log.Error("applyResult called with unknown category",
			zap.String("category", result.CategoryKey),
			zap.Uint("userId", userID))
		return err
	}

	record, err := s.ProgressRepo.FindByUserAndCategory(userID, result.CategoryKey)
	if err != nil {
		return err
	}
	if record == nil {
		record = &model.ProgressRecord{
			UserID:      userID,
			CategoryKey: result.CategoryKey,
			SkillLevel:  1,
		}
	}

	now := s.Now()

	record.Attempted += result.TotalItems
	record.Correct += result.CorrectAnswers
	record.StreakDays = advanceStreak(record.StreakDays, record.LastStudiedAt, now)

	record.SkillLevel += skillLevelStep
	if record.SkillLevel > skillLevelCap {
		record.SkillLevel = skillLevelCap
	}

	record.LastStudiedAt = &now

	return s.ProgressRepo.Save(record)
}

// GetProgress 返回用户某分类的进度，从未学习过时返回零值记录
func (s *ProgressService) GetProgress(userID uint, categoryKey string) (*model.ProgressRecord, error) {
	if _, err := s.CatalogRepo.FindCategoryByKey(categoryKey); err != nil {
		return nil, err
	}

	record, err := s.ProgressRepo.FindByUserAndCategory(userID, categoryKey)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &model.ProgressRecord{
			UserID:      userID,
			CategoryKey: categoryKey,
			SkillLevel:  1,
		}, nil
	}
	return record, nil
}

// ListProgress 返回用户全部分类的进度
func (s *ProgressService) ListProgress(userID uint) ([]model.ProgressRecord, error) {
	return s.ProgressRepo.FindAllByUser(userID)
}

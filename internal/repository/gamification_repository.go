package repository

import (
	"errors"

	"studymo_backend/internal/model"

	"gorm.io/gorm"
)

type GamificationRepository struct {
	DB *gorm.DB
}

func NewGamificationRepository(db *gorm.DB) *GamificationRepository {
	return &GamificationRepository{DB: db}
}

// FindOrCreateStats 查找用户统计，不存在时创建初始记录
func (r *GamificationRepository) FindOrCreateStats(userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.DB.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats = model.UserStats{UserID: userID, Level: 1}
		if err := r.DB.Create(&stats).Error; err != nil {
			return nil, err
		}
		return &stats, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *GamificationRepository) SaveStats(stats *model.UserStats) error {
	return r.DB.Save(stats).Error
}

// ListUnlockedBadgeIDs 返回用户已解锁的徽章 ID 集合
func (r *GamificationRepository) ListUnlockedBadgeIDs(userID uint) (map[string]bool, error) {
	var unlocks []model.BadgeUnlock
	err := r.DB.Where("user_id = ?", userID).Find(&unlocks).Error
	if err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		ids[u.BadgeID] = true
	}
	return ids, nil
}

func (r *GamificationRepository) CreateBadgeUnlock(unlock *model.BadgeUnlock) error {
	return r.DB.Create(unlock).Error
}

func (r *GamificationRepository) CreateEvent(event *model.AchievementEvent) error {
	return r.DB.Create(event).Error
}

// ListRecentEvents 返回用户最近的成就事件（未读在前）
func (r *GamificationRepository) ListRecentEvents(userID uint, limit int) ([]model.AchievementEvent, error) {
	var events []model.AchievementEvent
	err := r.DB.Where("user_id = ?", userID).
		Order("`read` ASC, id DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// MarkEventsRead 将用户全部成就事件标记为已读
func (r *GamificationRepository) MarkEventsRead(userID uint) error {
	return r.DB.Model(&model.AchievementEvent{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Update("read", true).Error
}

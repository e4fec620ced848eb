package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studymo_backend/internal/model"
	"studymo_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

// FindByUser 查找用户订阅，不存在时创建免费档默认记录
func (r *SubscriptionRepository) FindByUser(userID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = model.Subscription{UserID: userID, Plan: model.PlanFree}
		if err := r.DB.Create(&sub).Error; err != nil {
			return nil, err
		}
		return &sub, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Save(sub *model.Subscription) error {
	return r.DB.Save(sub).Error
}

// QuotaCounter 每日会话配额计数器。键中带日期，跨天自然从 0 重新计数。
type QuotaCounter struct {
	Redis *redis.Client
	ctx   context.Context
}

func NewQuotaCounter(rdb *redis.Client) *QuotaCounter {
	return &QuotaCounter{Redis: rdb, ctx: context.Background()}
}

func quotaKey(userID uint, day string) string {
	return fmt.Sprintf("%s:%d:%s", util.QuotaKeyPrefix, userID, day)
}

// Used 返回用户当日已使用的会话数
func (q *QuotaCounter) Used(userID uint, day string) (int, error) {
	val, err := q.Redis.Get(q.ctx, quotaKey(userID, day)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// Incr 当日计数加一，过期时间兜底 48 小时
func (q *QuotaCounter) Incr(userID uint, day string) error {
	key := quotaKey(userID, day)
	if err := q.Redis.Incr(q.ctx, key).Err(); err != nil {
		return err
	}
	return q.Redis.Expire(q.ctx, key, 48*time.Hour).Err()
}

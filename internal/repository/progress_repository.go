package repository

import (
	"errors"

	"studymo_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindByUserAndCategory 查找用户某分类的进度，不存在时返回 (nil, nil)
func (r *ProgressRepository) FindByUserAndCategory(userID uint, categoryKey string) (*model.ProgressRecord, error) {
	var record model.ProgressRecord
	err := r.DB.Where("user_id = ? AND category_key = ?", userID, categoryKey).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *ProgressRepository) FindAllByUser(userID uint) ([]model.ProgressRecord, error) {
	var records []model.ProgressRecord
	err := r.DB.Where("user_id = ?", userID).Order("category_key").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ProgressRepository) Save(record *model.ProgressRecord) error {
	return r.DB.Save(record).Error
}

// CountCategoriesStudied 统计用户学习过的分类数
func (r *ProgressRepository) CountCategoriesStudied(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ProgressRecord{}).
		Where("user_id = ? AND attempted > 0", userID).Count(&count).Error
	return count, err
}

package repository

import (
	"errors"

	"studymo_backend/internal/model"
	"studymo_backend/internal/util"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ListCategories 返回全部分类（不含题目）
func (r *CatalogRepository) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// FindCategoryByKey 按分类键查找，未找到返回 ErrCategoryNotFound
func (r *CatalogRepository) FindCategoryByKey(key string) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("`key` = ?", key).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindItemsByCategoryKey 返回分类下的全部题目
func (r *CatalogRepository) FindItemsByCategoryKey(key string) ([]model.QuestionItem, error) {
	category, err := r.FindCategoryByKey(key)
	if err != nil {
		return nil, err
	}

	var items []model.QuestionItem
	err = r.DB.Where("category_id = ?", category.ID).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindItemsByKeys 按 ItemKey 批量查找题目
func (r *CatalogRepository) FindItemsByKeys(keys []string) ([]model.QuestionItem, error) {
	var items []model.QuestionItem
	err := r.DB.Where("item_key IN ?", keys).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindItemByKey 按 ItemKey 查找单个题目
func (r *CatalogRepository) FindItemByKey(key string) (*model.QuestionItem, error) {
	var item model.QuestionItem
	err := r.DB.Where("item_key = ?", key).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CountItems 统计全库题目数
func (r *CatalogRepository) CountItems() (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuestionItem{}).Count(&count).Error
	return count, err
}

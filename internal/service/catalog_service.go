package service

import (
	"studymo_backend/internal/model"
	"studymo_backend/internal/repository"
)

// CatalogService 只读的学习内容目录
type CatalogService struct {
	CatalogRepo *repository.CatalogRepository
}

func NewCatalogService(catalogRepo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{CatalogRepo: catalogRepo}
}

// CategorySummary 分类列表项
type CategorySummary struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	ItemCount int    `json:"itemCount"`
}

// ListCategories 返回全部分类及题目数
func (s *CatalogService) ListCategories() ([]CategorySummary, error) {
	categories, err := s.CatalogRepo.ListCategories()
	if err != nil {
		return nil, err
	}

	summaries := make([]CategorySummary, len(categories))
	for i, c := range categories {
		items, err := s.CatalogRepo.FindItemsByCategoryKey(c.Key)
		if err != nil {
			return nil, err
		}
		summaries[i] = CategorySummary{
			Key:       c.Key,
			Name:      c.Name,
			Icon:      c.Icon,
			Color:     c.Color,
			ItemCount: len(items),
		}
	}
	return summaries, nil
}

// GetCategoryItems 返回分类下的题目（不含答案字段，见 model 的 json 标签）
func (s *CatalogService) GetCategoryItems(key string) ([]model.QuestionItem, error) {
	return s.CatalogRepo.FindItemsByCategoryKey(key)
}

// ContentStats 题库统计
type ContentStats struct {
	TotalCategories         int `json:"totalCategories"`
	TotalItems              int `json:"totalItems"`
	AverageItemsPerCategory int `json:"averageItemsPerCategory"`
}

// GetContentStats 返回题库规模统计
func (s *CatalogService) GetContentStats() (*ContentStats, error) {
	categories, err := s.CatalogRepo.ListCategories()
	if err != nil {
		return nil, err
	}

	total, err := s.CatalogRepo.CountItems()
	if err != nil {
		return nil, err
	}

	stats := &ContentStats{
		TotalCategories: len(categories),
		TotalItems:      int(total),
	}
	if len(categories) > 0 {
		stats.AverageItemsPerCategory = stats.TotalItems / len(categories)
	}
	return stats, nil
}

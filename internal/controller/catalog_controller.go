package controller

import (
	"errors"

	"studymo_backend/internal/service"
	"studymo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// @Summary 获取分类列表
// @Description 获取全部学习分类及题目数
// @Tags 内容目录
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.CatalogService.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// @Summary 获取分类题目
// @Description 获取某分类下的全部题目（不含答案）
// @Tags 内容目录
// @Produce json
// @Param key path string true "分类键"
// @Success 200 {object} util.Response
// @Router /api/categories/{key}/items [get]
func (c *CatalogController) GetCategoryItems(ctx *gin.Context) {
	key := ctx.Param("key")

	items, err := c.CatalogService.GetCategoryItems(key)
	if errors.Is(err, util.ErrCategoryNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary 题库统计
// @Description 获取题库分类数、题目总数等统计
// @Tags 内容目录
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/content/stats [get]
func (c *CatalogController) GetContentStats(ctx *gin.Context) {
	stats, err := c.CatalogService.GetContentStats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

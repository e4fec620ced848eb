package controller

import (
	"studymo_backend/internal/service"
	"studymo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

// @Summary 游戏化总览
// @Description 获取当前用户的经验值、等级、连续天数、徽章与学习伙伴
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/gamification [get]
func (c *GamificationController) GetOverview(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.GamificationService.GetOverview(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// @Summary 学习伙伴
// @Description 获取当前用户等级对应的学习伙伴（ペット）状态
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/gamification/pet [get]
func (c *GamificationController) GetPet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.GamificationService.GetOverview(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview.Pet)
}

// @Summary 徽章列表
// @Description 获取全部徽章定义及当前用户的解锁状态
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/gamification/badges [get]
func (c *GamificationController) GetBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	info, err := c.GamificationService.GetBadgeInfo(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, info)
}

// @Summary 最近成就
// @Description 获取当前用户最近的升级与徽章解锁事件
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/gamification/achievements [get]
func (c *GamificationController) GetRecentAchievements(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	events, err := c.GamificationService.GetRecentAchievements(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, events)
}

// @Summary 标记成就已读
// @Description 将当前用户的未读成就事件全部标记为已读
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/gamification/achievements/read [post]
func (c *GamificationController) MarkAchievementsRead(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.GamificationService.MarkAchievementsRead(user.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

package controller

import (
	"errors"

	"studymo_backend/internal/model"
	"studymo_backend/internal/service"
	"studymo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	SubscriptionService *service.SubscriptionService
}

func NewSubscriptionController(subscriptionService *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{SubscriptionService: subscriptionService}
}

type UpgradeRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// @Summary 订阅状态
// @Description 获取当前用户的订阅计划与今日剩余额度
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/subscription [get]
func (c *SubscriptionController) GetState(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	state, err := c.SubscriptionService.GetState(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, state)
}

// @Summary 升级订阅
// @Description 将当前用户升级到指定付费计划
// @Tags 订阅
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpgradeRequest true "目标计划"
// @Success 200 {object} util.Response
// @Router /api/subscription/upgrade [post]
func (c *SubscriptionController) Upgrade(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpgradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.SubscriptionService.Upgrade(user.UserID, model.PlanTier(req.Plan))
	if err != nil {
		if errors.Is(err, util.ErrUnknownPlan) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sub)
}

// @Summary 取消订阅
// @Description 取消付费计划，回落到免费计划
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/subscription/cancel [post]
func (c *SubscriptionController) Cancel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.SubscriptionService.Cancel(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sub)
}

// @Summary 今日剩余额度
// @Description 获取当前用户今日剩余会话次数，-1表示不限
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/subscription/remaining [get]
func (c *SubscriptionController) RemainingSessions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	remaining, err := c.SubscriptionService.RemainingSessions(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"remaining": remaining})
}

// @Summary 订阅计划列表
// @Description 获取全部可选订阅计划与定价
// @Tags 订阅
// @Produce json
// @Success 200 {object} util.Response
// @Router /plans [get]
func (c *SubscriptionController) ListPlans(ctx *gin.Context) {
	util.Success(ctx, c.SubscriptionService.ListPlans())
}

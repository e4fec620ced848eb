package controller

import (
	"errors"
	"net/http"

	"studymo_backend/internal/service"
	"studymo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

type StartSessionRequest struct {
	CategoryKey string `json:"categoryKey" binding:"required"`
	ItemCount   int    `json:"itemCount"`
}

type RecordResponseRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// sessionError 将会话错误映射为HTTP状态码。配额超限返回403，
// 由前端据此弹出付费墙。
func sessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCategoryNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrNoContentAvailable):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrQuotaExceeded):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrSessionAlreadyActive),
		errors.Is(err, util.ErrNoActiveSession),
		errors.Is(err, util.ErrSessionComplete):
		util.Error(ctx, http.StatusConflict, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 开始学习会话
// @Description 为指定分类开始一次定时学习会话
// @Tags 学习会话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StartSessionRequest true "会话参数"
// @Success 201 {object} util.Response
// @Router /api/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.StartSession(user.UserID, req.CategoryKey, req.ItemCount)
	if err != nil {
		sessionError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary 提交作答
// @Description 提交当前题目的作答并推进到下一题
// @Tags 学习会话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RecordResponseRequest true "作答内容"
// @Success 200 {object} util.Response
// @Router /api/sessions/respond [post]
func (c *SessionController) RecordResponse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RecordResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, response, err := c.SessionService.RecordResponse(user.UserID, req.Answer)
	if err != nil {
		sessionError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"session":  session,
		"response": response,
	})
}

// @Summary 结束会话
// @Description 结束当前会话并返回结果与游戏化结算
// @Tags 学习会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/sessions/complete [post]
func (c *SessionController) CompleteSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, outcome, err := c.SessionService.CompleteSession(user.UserID)
	if err != nil {
		sessionError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"result":  result,
		"outcome": outcome,
	})
}

// @Summary 放弃会话
// @Description 放弃当前会话，不计入任何统计
// @Tags 学习会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/sessions/abandon [post]
func (c *SessionController) AbandonSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.SessionService.AbandonSession(user.UserID); err != nil {
		sessionError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 当前会话
// @Description 获取当前活跃会话及待答题目
// @Tags 学习会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/sessions/current [get]
func (c *SessionController) GetCurrentSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.SessionService.GetCurrentSession(user.UserID)
	if err != nil {
		sessionError(ctx, err)
		return
	}

	payload := gin.H{"session": session}
	if !session.IsComplete() {
		item, err := c.SessionService.CurrentItem(session)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		payload["currentItem"] = item
	}

	util.Success(ctx, payload)
}

package app

import (
	"studymo_backend/internal/config"
	"studymo_backend/internal/middleware"

	"studymo_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerLearnerRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 内容目录对游客开放，便于注册前预览
		public.GET("/categories", c.catalog.ListCategories)
		public.GET("/categories/:key/items", c.catalog.GetCategoryItems)
		public.GET("/content/stats", c.catalog.GetContentStats)
		public.GET("/plans", c.subscription.ListPlans)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	// 学习会话
	rg.POST("/sessions", c.session.StartSession)
	rg.GET("/sessions/current", c.session.GetCurrentSession)
	rg.POST("/sessions/respond", c.session.RecordResponse)
	rg.POST("/sessions/complete", c.session.CompleteSession)
	rg.POST("/sessions/abandon", c.session.AbandonSession)

	// 学习进度
	rg.GET("/progress", c.progress.ListProgress)
	rg.GET("/progress/:key", c.progress.GetProgress)

	// 订阅
	rg.GET("/subscription", c.subscription.GetState)
	rg.GET("/subscription/remaining", c.subscription.RemainingSessions)
	rg.POST("/subscription/upgrade", c.subscription.Upgrade)
	rg.POST("/subscription/cancel", c.subscription.Cancel)

	// 游戏化
	rg.GET("/gamification", c.gamification.GetOverview)
	rg.GET("/gamification/pet", c.gamification.GetPet)
	rg.GET("/gamification/badges", c.gamification.GetBadges)
	rg.GET("/gamification/achievements", c.gamification.GetRecentAchievements)
	rg.POST("/gamification/achievements/read", c.gamification.MarkAchievementsRead)
}

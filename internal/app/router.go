package app

import (
	"path/filepath"

	"oecd_explorer/docs"
	"oecd_explorer/internal/config"
	"oecd_explorer/internal/middleware"
	"oecd_explorer/internal/util"
	"oecd_explorer/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由（无需身份）
	a.registerPublicRoutes(router, c)

	// 2. 需要完成入门的路由
	learner := router.Group("/api")
	learner.Use(middleware.RequireIdentity(a.services.store))
	{
		a.registerModuleRoutes(learner, c)
		a.registerReportRoutes(learner, c)
	}

	if a.services.storage.Backend() == util.StorageLocal {
		router.Static("/exports", filepath.Join(cfg.Storage.LocalPath, "exports"))
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/onboard", c.onboarding.Onboard)

		public.GET("/settings", c.onboarding.GetSettings)
		public.PUT("/settings", c.onboarding.UpdateSettings)

		public.GET("/export", c.transfer.Export)
		public.POST("/export/archive", c.transfer.ExportArchive)
		public.POST("/import", c.transfer.Import)
	}
}

func (a *App) registerModuleRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/modules", c.modules.ListModules)

	modules := group.Group("/modules/:id")
	{
		modules.POST("/enter", c.modules.Enter)
		modules.GET("/session", c.modules.Session)
		modules.POST("/assignment", c.modules.AcceptAssignment)
		modules.POST("/learn", c.modules.CompleteLearning)
		modules.GET("/quiz", c.modules.GetQuiz)
		modules.POST("/quiz", c.modules.SubmitQuiz)
		modules.POST("/quiz/continue", c.modules.ContinueQuiz)
		modules.POST("/investigate", c.modules.CompleteInvestigation)
		modules.PUT("/draft", c.modules.SaveDraft)
		modules.POST("/infographic", c.modules.UploadInfographic)
		modules.POST("/package", c.modules.SubmitPackage)
		modules.POST("/publish", c.modules.Publish)
		modules.POST("/previous", c.modules.Previous)
		modules.POST("/leave", c.modules.Leave)
		modules.POST("/complete", c.modules.CompleteIntro)
	}
}

func (a *App) registerReportRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/portfolio", c.reports.Portfolio)
	group.GET("/certificate", c.reports.Certificate)

	admin := group.Group("/admin")
	{
		admin.GET("/submissions", c.reports.AdminSubmissions)
	}
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khoahotran/cvos/pkg/auth"
	"github.com/khoahotran/cvos/pkg/logger"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Auth    *AuthHandler
	Wizard  *WizardHandler
	Checker *CheckerHandler
	Locale  *LocaleHandler
	Pages   *PageHandler
}

func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), MetricsMiddleware(), ErrorMiddleware(log))

	authMiddleware := AuthMiddleware(jwtSvc, log)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.POST("/auth/login", h.Auth.Login)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/locale", h.Locale.Get)
			private.PUT("/locale", h.Locale.Put)

			private.POST("/checker/analyze", h.Checker.Analyze)

			wizard := private.Group("/wizard")
			{
				wizard.GET("", h.Wizard.GetState)
				wizard.PUT("/fields", h.Wizard.UpdateField)
				wizard.POST("/navigation", h.Wizard.Navigate)
				wizard.GET("/preview", h.Wizard.Preview)
				wizard.POST("/export", h.Wizard.RequestExport)
				wizard.GET("/export", h.Wizard.GetExport)
				wizard.POST("/:collection", h.Wizard.AddEntry)
				wizard.PUT("/:collection/:id", h.Wizard.UpdateEntry)
				wizard.DELETE("/:collection/:id", h.Wizard.RemoveEntry)
			}
		}
	}

	pages := router.Group("/")
	pages.Use(OptionalAuthMiddleware(jwtSvc))
	{
		pages.GET("/", h.Pages.Home)
		pages.GET("/pricing", h.Pages.Pricing)
		pages.GET("/login", h.Pages.Login)
		pages.POST("/login", h.Pages.LoginSubmit)

		session := pages.Group("/")
		session.Use(RequireSessionPage())
		{
			session.GET("/checker", h.Pages.Checker)
			session.POST("/checker", h.Pages.CheckerSubmit)
			session.GET("/dashboard", h.Pages.Dashboard)
			session.GET("/dashboard/preview", h.Pages.DashboardPreview)
		}
	}

	return router
}

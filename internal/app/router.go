package app

import (
	"aptitude_portal_backend/docs"
	"aptitude_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		users := api.Group("/users")
		{
			users.GET("/check-active-session", c.session.CheckActiveSession)
			users.POST("/start-test", c.session.StartTest)
			users.POST("/submit-test", c.session.SubmitTest)
			users.GET("/search", c.session.Search)
			users.PUT("/session-progress", c.session.SaveProgress)
			users.GET("/session-progress", c.session.GetProgress)

			// Admin overrides on candidate sessions
			users.POST("/admin-clear-session", c.session.AdminClearSession)
			users.POST("/reset-test", c.session.ResetTest)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", c.question.ListQuestions)
			questions.POST("/add", c.question.AddQuestion)
			questions.DELETE("/:id", c.question.DeleteQuestion)
			questions.GET("/comprehension", c.question.ListPassages)
			questions.POST("/comprehension", c.question.AddPassage)
			questions.GET("/department/:department", c.question.DepartmentPreview)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/current-code", c.admin.CurrentCode)
			admin.POST("/update-code", c.admin.UpdateCode)
			admin.GET("/results", c.admin.ListResults)
		}

		feedback := api.Group("/feedback")
		{
			feedback.POST("", c.feedback.Submit)
			feedback.GET("", c.feedback.List)
		}
	}
}

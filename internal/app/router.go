package app

import (
	"exam_admin_backend/docs"
	"exam_admin_backend/internal/config"
	"exam_admin_backend/internal/middleware"
	"exam_admin_backend/internal/model"
	"exam_admin_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	a.registerPublicRoutes(router, c)
	a.registerAdminRoutes(router, c, cfg)
}

// registerPublicRoutes wires the candidate-facing surface. Exam clients
// authenticate by registration number, not by account, so these endpoints
// carry no token middleware.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	api := router.Group("/api")
	{
		// answer ingestion
		api.POST("/save-answer", c.answer.SaveAnswer)
		api.POST("/save-all-answers", c.answer.SaveAllAnswers)
		api.POST("/timeout-save-answers", c.answer.TimeoutSaveAnswers)
		api.POST("/complete-exam", c.answer.CompleteExam)
		api.GET("/candidate-answers/:registrationId", c.answer.CandidateAnswers)

		// scoring and results
		api.GET("/today-exam-results", c.result.TodayExamResults)
		api.GET("/all-exam-results", c.result.AllExamResults)
		api.GET("/results/:registrationId", c.result.CandidateResult)

		// exams and sessions
		api.GET("/exams", c.exam.List)
		api.GET("/exams/today", c.exam.Today)
		api.GET("/exams/:title", c.exam.Get)
		api.POST("/register-candidate", c.candidate.Register)
		api.POST("/start-exam/:registrationId", c.candidate.StartSession)
		api.GET("/candidates/:registrationId", c.candidate.Get)

		// notifications and materials
		api.GET("/notifications", c.notification.ListActive)
		api.GET("/materials/:title", c.material.ListForCandidate)

		// payments
		api.POST("/payments/order", c.payment.CreateOrder)
		api.POST("/payments/verify", c.payment.Verify)
		api.GET("/payments/:registrationId", c.payment.ListByRegistration)

		// auth
		api.POST("/auth/register", c.auth.Register)
		api.POST("/auth/login", c.auth.Login)
	}

	router.GET("/ws/schedule", c.schedule.Subscribe)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin, model.Examiner))
	{
		admin.POST("/exams", c.exam.Upsert)
		admin.GET("/exams/:title/questions", c.question.ListByExam)
		admin.POST("/exams/:title/questions", c.question.Create)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)
		admin.GET("/exams/:title/candidates", c.candidate.ListByExam)

		admin.GET("/notifications", c.notification.ListAll)
		admin.POST("/notifications", c.notification.Create)
		admin.POST("/notifications/:id/deactivate", c.notification.Deactivate)
		admin.DELETE("/notifications/:id", c.notification.Delete)

		admin.GET("/materials", c.material.ListAll)
		admin.POST("/materials", c.material.Upload)
		admin.DELETE("/materials/:id", c.material.Delete)
	}

	authed := router.Group("/api/auth")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/me", c.auth.Me)
	}
}

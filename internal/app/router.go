package app

import (
	"swift_elearning_backend/docs"
	"swift_elearning_backend/internal/config"
	"swift_elearning_backend/internal/middleware"
	"swift_elearning_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Rute publik, tanpa token.
	router.GET("/health", c.health.HealthCheck)
	router.POST("/pelajar/registrasi", c.auth.RegisterPelajar)
	router.POST("/mentor/registrasi", c.auth.RegisterMentor)
	router.POST("/user/login", c.auth.Login)
	router.GET("/user/aktivasi", c.auth.Activate)
	router.POST("/user/lupa-password", c.auth.RequestPasswordReset)
	router.POST("/user/ganti-password", c.auth.ChangePassword)
	router.POST("/admin/login", c.admin.Login)

	// Rute pelajar/mentor; token didekode dinamis, varian diperiksa
	// per-endpoint.
	user := router.Group("/")
	user.Use(middleware.AuthMiddleware(cfg), middleware.UserMiddleware())
	{
		user.GET("/pelajar/mydata", c.user.PelajarMyData)
		user.GET("/mentor/mydata", c.user.MentorMyData)

		user.POST("/materi", c.materi.Create)
		user.GET("/materi", c.materi.List)
		user.GET("/materi/:id", c.materi.Get)
		user.GET("/materi/:id/video", c.video.ListByMateri)

		user.POST("/video", c.video.Upload)
		user.GET("/video/:id", c.video.Get)
		user.GET("/video/:id/watch", c.video.Watch)
		user.DELETE("/video/:id", c.video.Delete)

		user.POST("/video/:id/tugas", c.tugas.Create)
		user.GET("/video/:id/tugas", c.tugas.GetForPelajar)
		user.GET("/video/:id/tugas/kunci", c.tugas.GetForMentor)
		user.DELETE("/tugas/:id", c.tugas.Delete)
		user.POST("/tugas/attempt", c.tugas.SubmitAttempt)
		user.GET("/tugas/:id/attempt", c.tugas.ListAttempts)
	}

	// Rute admin; principal wajib bertipe string dan tercatat di tabel.
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware(s.authz))
	{
		admin.POST("/registrasi", c.admin.Register)
		admin.GET("/mydata", c.admin.MyData)
		admin.POST("/pelajar/membership", c.admin.ToggleMember)
	}
}

package router

import (
	"time"

	"github.com/bhulekh-dev/bhulekh/internal/handlers"
	"github.com/bhulekh-dev/bhulekh/internal/middleware"
	"github.com/bhulekh-dev/bhulekh/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/:project_id", middleware.AuthMiddleware(), handlers.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/signup", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.PATCH("/me", middleware.AuthMiddleware(), handlers.UpdateUser)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware())
		{
			projects.POST("", handlers.CreateProject)
			projects.GET("", handlers.ListProjects)
			projects.PUT("/:project_id", handlers.RenameProject)
			projects.DELETE("/:project_id", handlers.DeleteProject)

			projects.GET("/:project_id/export", handlers.ExportProject)
			projects.POST("/:project_id/import", handlers.ImportRecords)
			projects.GET("/:project_id/stats", handlers.ProjectStats)

			projects.POST("/:project_id/raiyat", handlers.AddRaiyat)
			projects.DELETE("/:project_id/raiyat/:raiyat_id", handlers.DeleteRaiyat)

			projects.POST("/:project_id/records", handlers.CreateRecord)
			projects.PUT("/:project_id/records/:record_id", handlers.UpdateRecord)
			projects.DELETE("/:project_id/records/:record_id", handlers.DeleteRecord)
		}
	}

	return r
}

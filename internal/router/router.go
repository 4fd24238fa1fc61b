package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/grapevine-dev/grapevine/internal/handlers"
	"github.com/grapevine-dev/grapevine/internal/middleware"
	"github.com/grapevine-dev/grapevine/internal/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/metrics", gin.WrapH(promhttp.Handler()))

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		projects := api.Group("/projects")
		{
			projects.GET("/open-seats", handlers.ListOpenSeats)

			authed := projects.Group("", middleware.AuthMiddleware())
			{
				authed.POST("", handlers.CreateProject)
				authed.DELETE("/:project_id", handlers.DeleteProject)
				authed.POST("/:project_id/complete", handlers.CompleteProject)
				authed.POST("/:project_id/interest", handlers.ExpressInterest)
				authed.POST("/:project_id/respond", handlers.RespondInterest)
			}
		}

		users := api.Group("/users")
		{
			users.GET("/:username/stats", handlers.UserStats)

			authed := users.Group("", middleware.AuthMiddleware())
			{
				authed.POST("/skills", handlers.AddSkill)
				authed.DELETE("/skills/:language", handlers.RemoveSkill)
				authed.POST("/reset-password", handlers.ResetPassword)
			}
		}
	}

	return r
}

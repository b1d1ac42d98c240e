package routes

import (
	"recruitment-agency-api/controllers"
	"recruitment-agency-api/middleware"
	"recruitment-agency-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Recruitment Agency API is running",
				})
			})

			// Public candidate gallery
			public.GET("/gallery", controllers.GetGallery)
			public.GET("/gallery/:id", controllers.GetGalleryCV)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Candidate records
			cvs := protected.Group("/cvs")
			{
				cvs.GET("", controllers.GetCVs)
				cvs.GET("/:id", controllers.GetCV)
				cvs.POST("", controllers.CreateCV)
				cvs.PUT("/:id", controllers.UpdateCV)
				cvs.PUT("/:id/status", controllers.ChangeCVStatus)
				cvs.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteCV)
			}

			// Smart import
			importGroup := protected.Group("/import")
			{
				importGroup.POST("/analyze", controllers.AnalyzeImport)
				importGroup.POST("/execute", controllers.ExecuteImport)
				importGroup.GET("/runs", controllers.GetImportRuns)
			}
			protected.GET("/templates/import", controllers.DownloadImportTemplate)

			// Bookings and contracts
			protected.GET("/bookings", controllers.GetBookings)
			protected.POST("/bookings", controllers.CreateBooking)
			protected.DELETE("/bookings/:id", controllers.DeleteBooking)

			protected.GET("/contracts", controllers.GetContracts)
			protected.POST("/contracts", controllers.CreateContract)
			protected.PUT("/contracts/:id/terminate", controllers.TerminateContract)

			// Notifications and audit trail
			protected.GET("/notifications", controllers.GetNotifications)
			protected.PUT("/notifications/:id/read", controllers.MarkNotificationRead)
			protected.GET("/activity", controllers.GetActivityLog)
		}
	}

	// 404 catch-all
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Endpoint not found"})
	})
}

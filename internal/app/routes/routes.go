package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arnav/teamforge/internal/app/controllers"
	"github.com/arnav/teamforge/internal/app/models/dto"
	"github.com/arnav/teamforge/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
) {
	// --- Student routes (JWT protected) ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/me", studentController.GetProfile)
		authenticated.GET("/students", studentController.GetStudents)

		team := authenticated.Group("/team")
		{
			team.POST("/selection", studentController.SaveSelection)
			team.GET("/status", studentController.GetTeamStatus)
		}
	}

	// --- Admin routes (shared-secret protected) ---
	admin := router.Group("/admin")
	admin.Use(adminMiddleware.RequireAdminKey())
	{
		admin.POST("/finalize", adminController.Finalize)

		selection := admin.Group("/selection")
		{
			selection.POST("/open", adminController.OpenSelection)
			selection.POST("/close", adminController.CloseSelection)
			selection.GET("/status", adminController.SelectionStatus)
		}

		teams := admin.Group("/teams")
		{
			teams.POST("", adminController.CreateTeam)
			teams.DELETE("/:id", adminController.DissolveTeam)
		}

		admin.GET("/export/teams", adminController.ExportTeams)
		admin.GET("/dashboard", adminController.Dashboard)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}

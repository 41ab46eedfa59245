package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tanvir/intakeform/internal/app/controllers"
	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	submissionController *controllers.SubmissionController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	catalogController *controllers.CatalogController,
	complaintController *controllers.ComplaintController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes, used by the intake form itself ---
	submissions := v1.Group("/submissions")
	{
		submissions.POST("", submissionController.Submit)
		submissions.GET("/check/:studentId", submissionController.CheckDuplicate)
		submissions.GET("/alias-available", submissionController.AliasAvailable)
	}

	v1.GET("/catalog", catalogController.Get)
	v1.POST("/complaints", complaintController.Create)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh-token", authController.Refresh)
	}

	// --- Admin routes, any authenticated back-office account ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	{
		admin.GET("/submissions", submissionController.List)
		admin.GET("/submissions/export", submissionController.Export)
		admin.GET("/submissions/:studentId", submissionController.Get)
		admin.PUT("/submissions/:studentId", submissionController.Update)
		admin.DELETE("/submissions/:studentId", submissionController.Delete)

		admin.GET("/stats", submissionController.Stats)
		admin.PUT("/catalog", catalogController.Update)

		admin.GET("/complaints", complaintController.List)
		admin.GET("/complaints/:id", complaintController.Get)
		admin.PUT("/complaints/:id/status", complaintController.SetStatus)
		admin.POST("/complaints/:id/reply", complaintController.Reply)
		admin.DELETE("/complaints/:id", complaintController.Delete)

		// --- Superadmin-only account management ---
		users := admin.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleSuperadmin))
		{
			users.GET("", userController.List)
			users.POST("", userController.Create)
			users.GET("/generate-password", userController.GeneratePassword)
			users.PUT("/:email", userController.Update)
			users.DELETE("/:email", userController.Delete)
		}
	}

	// Logout needs a valid access token but no role.
	logout := v1.Group("/auth")
	logout.Use(authMiddleware.JWTAuth())
	{
		logout.POST("/logout", authController.Logout)
	}
}

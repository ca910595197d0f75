package routes

import (
	"github.com/SBP359/MyNutriMate/controllers"
	"github.com/SBP359/MyNutriMate/middlewares"
	"github.com/SBP359/MyNutriMate/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	analysis *controllers.AnalysisController,
	history *controllers.HistoryController,
	insight *controllers.InsightController,
	device *controllers.DeviceController,
	realtime *controllers.RealtimeController,
) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.RegisterPatient)
		auth.POST("/register/doctor", controllers.RegisterDoctor)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/goals", controllers.GetDailyGoals)
		user.GET("/progress", controllers.GetProgress)
		user.GET("/body-mass", controllers.GetBodyMass)
		user.GET("/insight", insight.GetInsight)
		user.GET("/alerts", controllers.ListAlerts)
		user.POST("/devices", device.RegisterDevice)
	}

	// Photo and label analysis plus the intake log
	intake := r.Group("/intake")
	intake.Use(middlewares.AuthMiddleware())
	{
		intake.POST("/analyze/food", analysis.AnalyzeFood)
		intake.POST("/analyze/label", analysis.AnalyzeLabel)
		intake.POST("/commit", analysis.CommitIntake)
		intake.GET("/history", history.ListHistory)
		intake.GET("/day", history.ListDay)
		intake.DELETE("/:id", history.DeleteRecord)
	}

	// Patient side of the care connection
	connections := r.Group("/connections")
	connections.Use(middlewares.AuthMiddleware())
	{
		connections.POST("", controllers.ConnectToDoctor)
		connections.GET("", controllers.ListMyDoctors)
	}

	// Grocery list
	grocery := r.Group("/grocery")
	grocery.Use(middlewares.AuthMiddleware())
	{
		grocery.GET("", controllers.ListGroceryItems)
		grocery.POST("", controllers.AddGroceryItem)
		grocery.PUT("/:id/purchased", controllers.SetGroceryItemPurchased)
		grocery.DELETE("/:id", controllers.DeleteGroceryItem)
	}

	// Medical documents
	files := r.Group("/files")
	files.Use(middlewares.AuthMiddleware())
	{
		files.POST("", controllers.UploadMedicalFile)
		files.GET("", controllers.ListMedicalFiles)
		files.DELETE("/:id", controllers.DeleteMedicalFile)
	}

	// Doctor console
	doctor := r.Group("/doctor")
	doctor.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleDoctor))
	{
		doctor.GET("/profile", controllers.GetDoctorProfile)
		doctor.GET("/patients", controllers.ListPatients)
		doctor.GET("/patients/export", controllers.ExportPatients)
		doctor.POST("/safe-foods", controllers.AddSafeFood)
		doctor.DELETE("/safe-foods/:id", controllers.DeleteSafeFood)
		doctor.POST("/restricted-foods", controllers.AddRestrictedFood)
		doctor.DELETE("/restricted-foods/:id", controllers.DeleteRestrictedFood)
	}

	// Realtime event stream
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", realtime.EventsWS)
	}

	return r
}

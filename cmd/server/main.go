package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-clinic-backend/internal/ai"
	"ai-clinic-backend/internal/config"
	"ai-clinic-backend/internal/database"
	"ai-clinic-backend/internal/handler"
	"ai-clinic-backend/internal/middleware"
	"ai-clinic-backend/internal/models"
	"ai-clinic-backend/internal/repository"
	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	receptionistRepo := repository.NewReceptionistRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	prescriptionRepo := repository.NewPrescriptionRepo(db)
	diagnosisRepo := repository.NewDiagnosisRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	activityRepo := repository.NewActivityRepo(db)

	// 5. Initialize services
	registrationService := service.NewRegistrationService(userRepo, patientRepo, doctorRepo, receptionistRepo)
	authService := service.NewAuthService(userRepo, registrationService, activityRepo)
	activityService := service.NewActivityService(activityRepo)
	adminService := service.NewAdminService(
		userRepo,
		patientRepo,
		doctorRepo,
		receptionistRepo,
		appointmentRepo,
		prescriptionRepo,
		diagnosisRepo,
		registrationService,
		activityRepo,
	)
	receptionistService := service.NewReceptionistService(
		userRepo,
		patientRepo,
		appointmentRepo,
		notificationRepo,
		registrationService,
		activityRepo,
	)
	doctorService := service.NewDoctorService(
		doctorRepo,
		patientRepo,
		appointmentRepo,
		prescriptionRepo,
		diagnosisRepo,
		notificationRepo,
	)
	patientService := service.NewPatientService(patientRepo, appointmentRepo, prescriptionRepo)
	billingService := service.NewBillingService(invoiceRepo, userRepo, activityRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	aiService := service.NewAIService(ai.NewGeminiClient(cfg.Gemini))

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService, activityService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	receptionistHandler := handler.NewReceptionistHandler(receptionistService)
	patientHandler := handler.NewPatientHandler(patientService)
	billingHandler := handler.NewBillingHandler(billingService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	aiHandler := handler.NewAIHandler(aiService, patientService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "ai-clinic-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", adminHandler.GetUsers)
		admin.POST("/users", adminHandler.CreateUser)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.GET("/analytics", adminHandler.GetAnalytics)
		admin.GET("/logs", adminHandler.GetActivityLogs)
	}

	// Doctor routes
	doctor := r.Group("/api/doctor")
	doctor.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleDoctor))
	{
		doctor.GET("/profile", doctorHandler.GetProfile)
		doctor.GET("/appointments", doctorHandler.GetAppointments)
		doctor.GET("/patients/:id/history", doctorHandler.GetPatientHistory)
		doctor.POST("/patients/:id/diagnosis", doctorHandler.AddDiagnosis)
		doctor.POST("/patients/:id/prescriptions", doctorHandler.CreatePrescription)
		doctor.GET("/analytics", doctorHandler.GetAnalytics)
	}

	// Receptionist routes
	reception := r.Group("/api/receptionist")
	reception.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleReceptionist))
	{
		reception.POST("/patients", receptionistHandler.RegisterPatient)
		reception.GET("/patients", receptionistHandler.GetPatients)
		reception.PUT("/patients/:id", receptionistHandler.UpdatePatient)
		reception.POST("/appointments", receptionistHandler.BookAppointment)
		reception.PUT("/appointments/:id/status", receptionistHandler.UpdateAppointmentStatus)
		reception.DELETE("/appointments/:id", receptionistHandler.CancelAppointment)
		reception.GET("/appointments/schedule", receptionistHandler.GetDailySchedule)
	}

	// Patient routes
	patient := r.Group("/api/patient")
	patient.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RolePatient))
	{
		patient.GET("/profile", patientHandler.GetProfile)
		patient.PUT("/profile", patientHandler.UpdateProfile)
		patient.GET("/appointments", patientHandler.GetAppointments)
		patient.GET("/prescriptions", patientHandler.GetPrescriptions)
		patient.GET("/prescriptions/:id/download", patientHandler.DownloadPrescription)
	}

	// Billing routes (receptionist desk)
	billing := r.Group("/api/billing")
	billing.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleReceptionist))
	{
		billing.GET("/invoices", billingHandler.GetInvoices)
		billing.POST("/invoices", billingHandler.CreateInvoice)
		billing.PUT("/invoices/:id/pay", billingHandler.CollectPayment)
	}

	// Notification routes (any authenticated role)
	notifications := r.Group("/api/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", notificationHandler.GetNotifications)
		notifications.PUT("/read", notificationHandler.MarkAllRead)
	}

	// AI routes
	aiRoutes := r.Group("/api/ai")
	aiRoutes.Use(middleware.AuthMiddleware())
	{
		aiRoutes.POST("/diagnose", middleware.RequireRole(models.RoleDoctor), aiHandler.Diagnose)
		aiRoutes.GET("/prescriptions/:id/explain", middleware.RequireRole(models.RolePatient), aiHandler.ExplainPrescription)
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}

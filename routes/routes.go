package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/guardian-watch/web-go/config"
	"github.com/guardian-watch/web-go/controllers"
	"github.com/guardian-watch/web-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	store := cookie.NewStore(cfg.SecretKey)
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 86400 * 7})

	r.Use(middleware.RequestID())
	r.Use(cors.Default())
	r.Use(sessions.Sessions("session", store))

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	guardianController := controllers.NewGuardianController(db)
	contactController := controllers.NewContactController(db)
	reportController := controllers.NewReportController(db)
	pageController := controllers.NewPageController(db)

	r.Use(gin.CustomRecovery(pageController.InternalError))

	// Public routes
	r.GET("/", authController.Index)
	r.GET("/register", authController.ShowRegister)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)

	api := r.Group("/api")
	{
		api.POST("/join", guardianController.Join)
		api.POST("/contact", contactController.Submit)
		api.POST("/report", reportController.Submit)
	}

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.RequireLogin())
	{
		protected.GET("/logout", authController.Logout)
		protected.GET("/protected", authController.Protected)
		protected.GET("/dashboard", pageController.Dashboard)
		protected.GET("/community", pageController.Community)
		protected.GET("/reporting", pageController.Reporting)
		protected.GET("/ai-validation", pageController.AIValidation)
		protected.GET("/leaderboard", pageController.Leaderboard)
		protected.GET("/contact", pageController.Contact)
	}

	r.NoRoute(pageController.NotFound)
}

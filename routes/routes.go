package routes

import (
	"net/http"

	"salonledger-backend/config"
	"salonledger-backend/controllers"
	"salonledger-backend/services"
	"salonledger-backend/tenant"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Salon MVP Backend!"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authn := tenant.NewAuthenticator(cfg, db)
	authController := &controllers.AuthController{Cfg: cfg, Auth: authn}
	notifier := services.NewClosingNotifier(cfg, db, config.GetLogger())
	closingController := &controllers.ClosingController{
		Svc: services.NewClosingService(db, notifier, config.GetLogger()),
	}

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/sync-profile", authController.SyncProfile)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)

		auth.GET("/me", authn.Middleware(), authController.Me)
	}

	protected := api.Group("")
	protected.Use(authn.Middleware())
	{
		salon := protected.Group("/salon")
		{
			salon.GET("", controllers.GetSalon)
			salon.PUT("", tenant.RequireOwner(), controllers.UpdateSalon)
		}

		svc := protected.Group("/services")
		{
			svc.GET("", controllers.GetServices)
			svc.POST("", controllers.CreateService)
			svc.PUT("/:id", controllers.UpdateService)
			svc.DELETE("/:id", controllers.DeleteService)
		}

		logs := protected.Group("/logs")
		{
			logs.POST("", controllers.CreateLog)
			logs.GET("", controllers.GetLogs)
			logs.GET("/today", controllers.GetLogsToday)
		}

		summary := protected.Group("/summary")
		{
			summary.GET("", controllers.GetSummary)
			summary.GET("/breakdown", controllers.GetBreakdown)
			summary.GET("/staff-performance", tenant.RequireOwner(), controllers.GetStaffPerformance)
		}

		analytics := protected.Group("/analytics")
		analytics.Use(tenant.RequireOwner())
		{
			analytics.GET("/monthly", controllers.GetMonthlyAnalytics)
			analytics.GET("/yearly", controllers.GetYearlyAnalytics)
		}

		closing := protected.Group("/daily-closing")
		{
			closing.POST("", closingController.CreateDailyClosing)
			closing.GET("", closingController.GetDailyClosing)
		}

		staff := protected.Group("/staff")
		{
			staff.GET("", controllers.GetStaff)
			staff.POST("", tenant.RequireOwner(), controllers.AddStaff)
			staff.DELETE("/:id", tenant.RequireOwner(), controllers.DeactivateStaff)
		}
	}

	return r
}

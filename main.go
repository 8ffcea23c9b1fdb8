package main

import (
	"fmt"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/routes"
	"salonledger-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var cfg *config.Config

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		config.GetLogger().Info("No .env file found")
	}
	cfg = config.Load()

	// Monetary fields go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	config.ConnectDB(cfg.DBURL)

	config.DB.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.Staff{},
		&models.Service{},
		&models.ServiceLog{},
		&models.DailyClosing{},
	)
}

func main() {
	if cfg.AutoClose {
		notifier := services.NewClosingNotifier(cfg, config.DB, config.GetLogger())
		services.NewClosingService(config.DB, notifier, config.GetLogger()).StartScheduler()
	}

	r := routes.SetupRouter(cfg, config.DB)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

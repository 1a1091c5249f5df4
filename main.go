package main

import (
	"github.com/gin-gonic/gin"

	"github.com/delishdine/restaurant-app/config"
	"github.com/delishdine/restaurant-app/database"
	"github.com/delishdine/restaurant-app/router"
	"github.com/delishdine/restaurant-app/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.Load()
	utils.InitJWT(cfg.JWTSecret)

	db, err := database.Open(cfg.DB)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	if err := database.SeedMenu(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed menu: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db)

	utils.InfoLogger.Printf("Delish Dine listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

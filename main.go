package main

import (
	"context"
	"log"
	_ "time/tzdata"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/config"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/database"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/router"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.InitLogger()
	if err := utils.ConfigureLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		utils.ErrorLogger.Fatalf("Invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}
	if err := utils.SetDisplayLocation(cfg.TimeZone); err != nil {
		utils.ErrorLogger.Fatalf("Invalid TIME_ZONE %q: %v", cfg.TimeZone, err)
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	if cfg.SeedData {
		if err := database.Seed(context.Background(), db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed data: %v", err)
		}
	}

	r := router.SetupRouter(db, cfg)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

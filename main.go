package main

import (
	"fmt"
	"strconv"

	"floodwatch/config"
	"floodwatch/database"
	"floodwatch/handlers"
	"floodwatch/uploads"
	"floodwatch/utils"
	"floodwatch/version"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	EndPointHealth        = "/health"
	EndPointVersion       = "/version"
	EndPointFloodReports  = "/flood_reports"
	EndPointHelpRequests  = "/help_requests"
	EndPointDamageReports = "/damage_reports"
)

func main() {
	// Optional .env for local development.
	if err := godotenv.Load(); err == nil {
		log.Info("Loaded environment from .env")
	}

	// Load configuration
	cfg := config.Load()

	log.Info("Starting the floodwatch service...")

	// Connect to database
	db, err := utils.DBConnect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize database schema
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	// Initialize upload storage
	files, err := uploads.NewFileStore(cfg.UploadDir, cfg.UploadPublicPath)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Initialize services
	floodService := database.NewFloodService(db)
	helpService := database.NewHelpService(db)
	damageService := database.NewDamageService(db)

	// Initialize handlers
	floodHandler := handlers.NewFloodHandler(floodService, files)
	helpHandler := handlers.NewHelpHandler(helpService)
	damageHandler := handlers.NewDamageHandler(damageService)

	// Setup router
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET(EndPointVersion, func(c *gin.Context) {
		c.JSON(200, version.Get("floodwatch"))
	})
	router.GET(EndPointHealth, handlers.HealthCheck)

	// Serve uploaded images back from their public path.
	router.Static(cfg.UploadPublicPath, files.Dir())

	apiV3 := router.Group("/api/v3")
	{
		apiV3.GET(EndPointFloodReports, floodHandler.List)
		apiV3.POST(EndPointFloodReports, floodHandler.Create)
		apiV3.PUT(EndPointFloodReports, floodHandler.Update)
		apiV3.DELETE(EndPointFloodReports, floodHandler.Delete)

		apiV3.GET(EndPointHelpRequests, helpHandler.List)
		apiV3.POST(EndPointHelpRequests, helpHandler.Create)
		apiV3.PUT(EndPointHelpRequests, helpHandler.Update)
		apiV3.DELETE(EndPointHelpRequests, helpHandler.Delete)

		apiV3.GET(EndPointDamageReports, damageHandler.List)
		apiV3.POST(EndPointDamageReports, damageHandler.Create)
		apiV3.PUT(EndPointDamageReports, damageHandler.Update)
		apiV3.DELETE(EndPointDamageReports, damageHandler.Delete)
	}

	// Get server port from config
	serverPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		log.Fatalf("Invalid PORT configuration: %v", err)
	}

	// Start server
	log.Infof("Floodwatch service starting on port %d", serverPort)
	if err := router.Run(fmt.Sprintf(":%d", serverPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

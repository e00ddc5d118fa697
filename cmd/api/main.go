package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/store"
	"backend/internal/websocket"
	"backend/pkg/whatsapp"
)

func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	// DATABASE_URL selects postgres; otherwise an on-disk sqlite file is used
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = os.Getenv("GOLD_DB_PATH")
	}
	if dsn == "" {
		dsn = "data/goldshop.db"
	}

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to database successfully.")

	if middleware.InitOwnerAuth() {
		log.Println("Owner passcode configured; API requires authentication.")
	} else {
		log.Println("No OWNER_PASSCODE set; API is open.")
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Store -> Repository -> Service -> Handler)
	kv := store.NewGormStore(db)
	repo := repository.NewLedgerRepository(kv)
	notifier := service.NewNotifier(repo, wsHub)
	links := whatsapp.New(os.Getenv("WHATSAPP_COUNTRY_CODE"))

	entryService := service.NewEntryService(repo, notifier)
	inventoryService := service.NewInventoryService(repo, notifier)
	debtService := service.NewDebtService(repo, links, notifier)
	scrapService := service.NewScrapService(repo, notifier)
	reportService := service.NewReportService(repo)
	pricingService := service.NewPricingService(repo, entryService)
	backupService := service.NewBackupService(kv, notifier)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler()
	salesHandler := handler.NewSalesHandler(entryService)
	purchaseHandler := handler.NewPurchaseHandler(entryService)
	expenseHandler := handler.NewExpenseHandler(entryService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	debtHandler := handler.NewDebtHandler(debtService)
	scrapHandler := handler.NewScrapHandler(scrapService)
	reportHandler := handler.NewReportHandler(reportService)
	pricingHandler := handler.NewPricingHandler(pricingService)
	settingsHandler := handler.NewSettingsHandler(backupService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", middleware.RequireOwnerQueryToken(), func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Login stays outside the protected group
	authHandler.RegisterRoutes(router.Group(""))

	// Register API Routes
	protected := router.Group("", middleware.RequireOwner())
	salesHandler.RegisterRoutes(protected)
	purchaseHandler.RegisterRoutes(protected)
	expenseHandler.RegisterRoutes(protected)
	inventoryHandler.RegisterRoutes(protected)
	debtHandler.RegisterRoutes(protected)
	scrapHandler.RegisterRoutes(protected)
	reportHandler.RegisterRoutes(protected)
	pricingHandler.RegisterRoutes(protected)
	settingsHandler.RegisterRoutes(protected)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-stock-tracker/internal/config"
	"go-stock-tracker/internal/handler"
	"go-stock-tracker/internal/middleware"
	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/repository"
	"go-stock-tracker/internal/service"
	"go-stock-tracker/internal/ws"
	"go-stock-tracker/pkg/database"
	"go-stock-tracker/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env (.env opsional, konfigurasi bisa langsung dari environment)
	_ = godotenv.Load()

	log := logger.Must(logger.New())
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	// 2. Pilih mode persistence sekali di sini. Tanpa DATABASE_URL yang
	// valid, state hidup di memori proses (mode lokal) — bukan error.
	store := buildStore(cfg, log)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	invService := service.NewInventoryService(store, wsHub, log)
	dashService := service.NewDashboardService(store)
	reportService := service.NewReportService(store)
	authService, err := service.NewAuthService(cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword, []byte(cfg.JWTSecret))
	if err != nil {
		log.Fatal("failed to init auth", zap.Error(err))
	}

	invHandler := handler.NewInventoryHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock Tracker v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(authService))

	// Item Routes
	protected.Get("/items", invHandler.GetItems)
	protected.Post("/items", invHandler.CreateItem)
	protected.Get("/items/:id", invHandler.GetItem)
	protected.Put("/items/:id", invHandler.UpdateItem)
	protected.Delete("/items/:id", invHandler.DeleteItem)

	// Transaction Routes (log append-only: tidak ada PUT/DELETE)
	protected.Get("/transactions", reportHandler.GetTransactions)
	protected.Get("/transactions/:id", invHandler.GetTransaction)
	protected.Post("/transactions", invHandler.CreateTransaction)

	// Dashboard Routes
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/daily-activity", dashHandler.GetDailyActivity)
	protected.Get("/dashboard/weekly-trend", dashHandler.GetWeeklyTrend)

	// Report Routes
	protected.Get("/reports/summary", reportHandler.GetSummary)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// buildStore selects remote or local persistence once for the session.
func buildStore(cfg *config.Config, log *zap.Logger) repository.Store {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, running in local in-memory mode")
		return repository.NewMemoryStore()
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Warn("database unreachable, falling back to local in-memory mode", zap.Error(err))
		return repository.NewMemoryStore()
	}

	if err := db.AutoMigrate(&model.InventoryItem{}, &model.StockTransaction{}); err != nil {
		log.Warn("auto-migrate failed, falling back to local in-memory mode", zap.Error(err))
		return repository.NewMemoryStore()
	}

	log.Info("database connection established, running in remote mode")
	return repository.NewCachedStore(repository.NewPostgresStore(db))
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus-lostfound/internal/adapters/http/middleware"
	"campus-lostfound/internal/adapters/http/routes"
	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/adapters/persistence/repositories"
	"campus-lostfound/internal/config"
	"campus-lostfound/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed category/location master data
	if err := config.SeedMasterData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed master data: %v", err)
	}

	// Demo accounts in dev mode only
	if cfg.IsDev() {
		if err := config.SeedDemoAccounts(db); err != nil {
			log.Printf("⚠️ Warning: Failed to seed demo accounts: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Campus Lost & Found API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Scheduled cleanup of expired refresh tokens
	maintenance := services.NewMaintenanceService(repositories.NewRefreshTokenRepository(db))
	maintenance.Start()
	defer maintenance.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}

package routes

import (
	"campus-lostfound/internal/adapters/http/handlers"
	"campus-lostfound/internal/adapters/http/middleware"
	"campus-lostfound/internal/adapters/persistence/repositories"
	"campus-lostfound/internal/config"
	"campus-lostfound/internal/core/services"
	"campus-lostfound/internal/pkg/cloudinary"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	studentRepo := repositories.NewStudentRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	lookupRepo := repositories.NewLookupRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	claimRepo := repositories.NewClaimRepository(db)

	// Initialize services
	authService := services.NewAuthService(studentRepo, adminRepo, refreshTokenRepo, cfg)
	itemService := services.NewItemService(itemRepo, lookupRepo)
	claimService := services.NewClaimService(claimRepo, itemRepo)
	statsService := services.NewStatsService(itemRepo, claimRepo)

	// Cloudinary client (nil when not configured; /upload answers 503)
	var cdnClient *cloudinary.Client
	if cfg.Cloudinary.Configured() {
		cdnClient = cloudinary.New(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
			cfg.Cloudinary.Folder,
		)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	lookupHandler := handlers.NewLookupHandler(lookupRepo)
	itemHandler := handlers.NewItemHandler(itemService)
	claimHandler := handlers.NewClaimHandler(claimService)
	adminHandler := handlers.NewAdminHandler(claimService, statsService)
	uploadHandler := handlers.NewUploadHandler(cdnClient)

	authRequired := middleware.AuthRequired(cfg)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Auth
	app.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	app.Post("/refresh", authHandler.RefreshToken)
	app.Post("/logout", authHandler.Logout)
	app.Post("/logout-all", authRequired, authHandler.LogoutAll)
	app.Get("/me", authRequired, authHandler.Me)

	// Lookup data (public, read-only)
	app.Get("/categories", lookupHandler.ListCategories)
	app.Get("/locations", lookupHandler.ListLocations)

	// Item catalog
	app.Get("/items", itemHandler.List)
	app.Post("/items", authRequired, itemHandler.Report)
	app.Delete("/items/:item_id", authRequired, middleware.AdminOnly(), itemHandler.Delete)

	// Image upload
	app.Post("/upload", authRequired, uploadHandler.Upload)

	// Claims
	app.Post("/claims", authRequired, middleware.StudentOnly(), claimHandler.Submit)
	app.Delete("/claims/:claim_id", authRequired, claimHandler.Delete)
	app.Get("/students/:student_id/claims", authRequired, claimHandler.ListByStudent)

	// Admin verification & dashboard
	admin := app.Group("/admin", authRequired, middleware.AdminOnly())
	admin.Get("/claims", adminHandler.ListPendingClaims)
	admin.Get("/claims/history", adminHandler.ListClaimHistory)
	admin.Put("/claims", adminHandler.ProcessClaim)
	admin.Get("/stats", adminHandler.GetStats)
}

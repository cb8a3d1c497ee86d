package services

import (
	"context"
	"log"

	"campus-lostfound/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// MaintenanceService runs scheduled background jobs
type MaintenanceService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(refreshTokenRepo repositories.RefreshTokenRepository) *MaintenanceService {
	return &MaintenanceService{
		refreshTokenRepo: refreshTokenRepo,
		cron:             cron.New(),
	}
}

// Start schedules all background jobs
func (s *MaintenanceService) Start() {
	// Expired refresh tokens: sweep every 12 hours
	if _, err := s.cron.AddFunc("@every 12h", s.sweepExpiredTokens); err != nil {
		log.Printf("❌ Failed to schedule token sweep: %v", err)
		return
	}

	s.cron.Start()
	log.Println("🚀 MaintenanceService started")
}

// Stop gracefully stops the scheduler
func (s *MaintenanceService) Stop() {
	s.cron.Stop()
	log.Println("🛑 MaintenanceService stopped")
}

func (s *MaintenanceService) sweepExpiredTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("❌ Token sweep error: %v", err)
		return
	}
	log.Println("🗑️ Expired refresh tokens swept")
}

package services

import (
	"context"

	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/adapters/persistence/repositories"
)

// StatsService handles the admin dashboard counters
type StatsService struct {
	itemRepo  repositories.ItemRepository
	claimRepo repositories.ClaimRepository
}

// NewStatsService creates a new stats service
func NewStatsService(itemRepo repositories.ItemRepository, claimRepo repositories.ClaimRepository) *StatsService {
	return &StatsService{
		itemRepo:  itemRepo,
		claimRepo: claimRepo,
	}
}

// StatsData represents the admin dashboard counters
type StatsData struct {
	TotalItems    int64 `json:"total_items"`
	TotalClaimed  int64 `json:"total_claimed"`
	PendingClaims int64 `json:"pending_claims"`
}

// GetStats returns the three dashboard counters.
//
// Each counter is a separate aggregate query read at its own instant, so the
// three values may be mutually inconsistent under concurrent writes.
func (s *StatsService) GetStats(ctx context.Context) (*StatsData, error) {
	data := &StatsData{}
	var err error

	if data.TotalItems, err = s.itemRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if data.TotalClaimed, err = s.itemRepo.CountByStatus(ctx, models.ItemStatusClaimed); err != nil {
		return nil, err
	}
	if data.PendingClaims, err = s.claimRepo.CountByStatus(ctx, models.ClaimStatusPending); err != nil {
		return nil, err
	}

	return data, nil
}

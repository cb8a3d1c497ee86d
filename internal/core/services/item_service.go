package services

import (
	"context"
	"errors"
	"log"
	"time"

	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Item errors
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrLocationNotFound = errors.New("location not found")
)

// ItemService handles item catalog business logic
type ItemService struct {
	itemRepo   repositories.ItemRepository
	lookupRepo repositories.LookupRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repositories.ItemRepository, lookupRepo repositories.LookupRepository) *ItemService {
	return &ItemService{
		itemRepo:   itemRepo,
		lookupRepo: lookupRepo,
	}
}

// ReportInput represents a found-item report
type ReportInput struct {
	ItemName    string    `json:"item_name"`
	Description string    `json:"description"`
	CategoryID  uint      `json:"category_id"`
	LocationID  uint      `json:"location_id"`
	DateFound   time.Time `json:"date_found"`
	ReportedBy  string    `json:"-"`
	ImageURL    string    `json:"image_url"`
}

// List lists Found items matching the optional filters, newest report first
func (s *ItemService) List(ctx context.Context, filter repositories.ItemFilter) ([]models.ItemView, error) {
	return s.itemRepo.ListFound(ctx, filter)
}

// Get gets a single item by id
func (s *ItemService) Get(ctx context.Context, itemID uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Report records a found item. Status is forced to Found regardless of input.
func (s *ItemService) Report(ctx context.Context, input *ReportInput) (*models.Item, error) {
	ok, err := s.lookupRepo.CategoryExists(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}

	ok, err = s.lookupRepo.LocationExists(ctx, input.LocationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLocationNotFound
	}

	item := &models.Item{
		ItemName:    input.ItemName,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
		DateFound:   input.DateFound,
		ReportedBy:  input.ReportedBy,
		Status:      models.ItemStatusFound,
		ImageURL:    input.ImageURL,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	log.Printf("✅ Item reported: #%d %s (by %s)", item.ItemID, item.ItemName, item.ReportedBy)
	return item, nil
}

// Delete removes an item and its dependent claims atomically
func (s *ItemService) Delete(ctx context.Context, itemID uint) error {
	if _, err := s.Get(ctx, itemID); err != nil {
		return err
	}

	if err := s.itemRepo.DeleteWithClaims(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	log.Printf("🗑️ Item deleted: #%d (claims cascaded)", itemID)
	return nil
}

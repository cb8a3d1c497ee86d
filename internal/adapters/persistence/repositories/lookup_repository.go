package repositories

import (
	"context"

	"campus-lostfound/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// lookupRepository implements LookupRepository interface
type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository creates a new lookup repository
func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

// ListCategories lists all categories
func (r *lookupRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

// ListLocations lists all locations
func (r *lookupRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.WithContext(ctx).Find(&locations).Error
	return locations, err
}

// CategoryExists checks if a category id exists
func (r *lookupRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("category_id = ?", id).Count(&count).Error
	return count > 0, err
}

// LocationExists checks if a location id exists
func (r *lookupRepository) LocationExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Location{}).Where("location_id = ?", id).Count(&count).Error
	return count > 0, err
}

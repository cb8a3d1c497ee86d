package repositories

import (
	"context"

	"campus-lostfound/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// itemRepository implements ItemRepository interface
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create creates a new item
func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID gets an item by ID
func (r *itemRepository) GetByID(ctx context.Context, itemID uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListFound lists Found items joined with their category/location names,
// newest report first. Filters compose as parameterized Where clauses.
// LOWER(..) LIKE is used instead of ILIKE so the query also runs on the
// SQLite test driver.
func (r *itemRepository) ListFound(ctx context.Context, filter ItemFilter) ([]models.ItemView, error) {
	query := r.db.WithContext(ctx).
		Table("items i").
		Select(`i.item_id, i.item_name, i.description, i.status,
			i.category_id, c.name AS category_name,
			i.location_id, l.name AS location_name,
			i.date_found, i.date_reported, i.reported_by, i.image_url`).
		Joins("JOIN categories c ON i.category_id = c.category_id").
		Joins("JOIN locations l ON i.location_id = l.location_id").
		Where("i.status = ?", models.ItemStatusFound)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(i.item_name) LIKE LOWER(?) OR LOWER(i.description) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("i.category_id = ?", *filter.CategoryID)
	}
	if filter.ItemID != nil {
		query = query.Where("i.item_id = ?", *filter.ItemID)
	}

	var items []models.ItemView
	err := query.Order("i.date_reported DESC").Scan(&items).Error
	return items, err
}

// DeleteWithClaims deletes an item's claims and then the item in one transaction
func (r *itemRepository) DeleteWithClaims(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("claimed_item_id = ?", itemID).Delete(&models.Claim{}).Error; err != nil {
			return err
		}
		res := tx.Where("item_id = ?", itemID).Delete(&models.Item{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CountAll counts all items
func (r *itemRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Count(&count).Error
	return count, err
}

// CountByStatus counts items in the given status
func (r *itemRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

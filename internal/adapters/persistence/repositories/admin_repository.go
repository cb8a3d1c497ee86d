package repositories

import (
	"context"

	"campus-lostfound/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// adminRepository implements AdminRepository interface
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// GetByID gets an admin by admin id
func (r *adminRepository) GetByID(ctx context.Context, adminID string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Exists checks if an admin id exists
func (r *adminRepository) Exists(ctx context.Context, adminID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Admin{}).Where("admin_id = ?", adminID).Count(&count).Error
	return count > 0, err
}

package repositories

import (
	"context"
	"errors"

	"campus-lostfound/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// claimRepository implements ClaimRepository interface
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

// Create creates a new claim
func (r *claimRepository) Create(ctx context.Context, claim *models.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

// GetByID gets a claim by ID
func (r *claimRepository) GetByID(ctx context.Context, claimID uint) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).Where("claim_id = ?", claimID).First(&claim).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// GetByItemAndClaimant gets a student's claim on an item, any status
func (r *claimRepository) GetByItemAndClaimant(ctx context.Context, itemID uint, claimantID string) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).
		Where("claimed_item_id = ? AND claimant_id = ?", itemID, claimantID).
		First(&claim).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// ListPending lists all Pending claims with item and claimant display data,
// newest claim first
func (r *claimRepository) ListPending(ctx context.Context) ([]models.PendingClaimView, error) {
	var claims []models.PendingClaimView
	err := r.db.WithContext(ctx).
		Table("claims c").
		Select(`c.claim_id, c.claimed_item_id, i.item_name, i.image_url,
			c.claimant_id, s.full_name AS claimant_name,
			c.proof_of_ownership, c.claim_status, c.date_claimed`).
		Joins("JOIN items i ON c.claimed_item_id = i.item_id").
		Joins("JOIN students s ON c.claimant_id = s.student_id").
		Where("c.claim_status = ?", models.ClaimStatusPending).
		Order("c.date_claimed DESC").
		Scan(&claims).Error
	return claims, err
}

// ListProcessed lists resolved (Approved/Rejected) claims with the deciding
// admin's display name, newest first, paginated
func (r *claimRepository) ListProcessed(ctx context.Context, offset, limit int) ([]models.ClaimHistoryView, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Claim{}).
		Where("claim_status <> ?", models.ClaimStatusPending).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var claims []models.ClaimHistoryView
	err = r.db.WithContext(ctx).
		Table("claims c").
		Select(`c.claim_id, c.claimed_item_id, i.item_name,
			c.claimant_id, s.full_name AS claimant_name,
			c.proof_of_ownership, c.claim_status, c.date_claimed,
			c.processed_by, COALESCE(a.full_name, '') AS processed_by_name, c.rationale`).
		Joins("JOIN items i ON c.claimed_item_id = i.item_id").
		Joins("JOIN students s ON c.claimant_id = s.student_id").
		Joins("LEFT JOIN admins a ON c.processed_by = a.admin_id").
		Where("c.claim_status <> ?", models.ClaimStatusPending).
		Order("c.date_claimed DESC").
		Offset(offset).
		Limit(limit).
		Scan(&claims).Error
	return claims, total, err
}

// ListByClaimant lists a student's claims with item detail and, once
// processed, the deciding admin's name and rationale, newest first
func (r *claimRepository) ListByClaimant(ctx context.Context, claimantID string) ([]models.StudentClaimView, error) {
	var claims []models.StudentClaimView
	err := r.db.WithContext(ctx).
		Table("claims c").
		Select(`c.claim_id, c.claimed_item_id, i.item_name,
			i.description AS item_description, i.status AS item_status, i.image_url,
			c.proof_of_ownership, c.claim_status, c.date_claimed,
			COALESCE(a.full_name, '') AS processed_by_name, c.rationale`).
		Joins("JOIN items i ON c.claimed_item_id = i.item_id").
		Joins("LEFT JOIN admins a ON c.processed_by = a.admin_id").
		Where("c.claimant_id = ?", claimantID).
		Order("c.date_claimed DESC").
		Scan(&claims).Error
	return claims, err
}

// Delete deletes a claim by ID. The delete is conditional on the claim not
// being Approved, so a claim approved between the caller's read and this
// statement survives.
func (r *claimRepository) Delete(ctx context.Context, claimID uint) error {
	res := r.db.WithContext(ctx).
		Where("claim_id = ? AND claim_status <> ?", claimID, models.ClaimStatusApproved).
		Delete(&models.Claim{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&models.Claim{}).
			Where("claim_id = ?", claimID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrClaimApproved
		}
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus counts claims in the given status
func (r *claimRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Claim{}).Where("claim_status = ?", status).Count(&count).Error
	return count, err
}

// Adjudicate resolves a Pending claim inside one transaction.
//
// The claim update is conditional on claim_status = 'Pending', so a claim can
// only be processed once even under concurrent requests. On approval the item
// flip is conditional on status = 'Found' for the same reason; if the item was
// already claimed the transaction rolls back, keeping the at-most-one-approved
// invariant.
func (r *claimRepository) Adjudicate(ctx context.Context, claimID uint, adminID, status, rationale string) (uint, error) {
	var itemID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var claim models.Claim
		if err := tx.Where("claim_id = ?", claimID).First(&claim).Error; err != nil {
			return err
		}
		itemID = claim.ClaimedItemID

		res := tx.Model(&models.Claim{}).
			Where("claim_id = ? AND claim_status = ?", claimID, models.ClaimStatusPending).
			Updates(map[string]interface{}{
				"claim_status": status,
				"processed_by": adminID,
				"rationale":    rationale,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrClaimAlreadyProcessed
		}

		if status != models.ClaimStatusApproved {
			return nil
		}

		res = tx.Model(&models.Item{}).
			Where("item_id = ? AND status = ?", itemID, models.ItemStatusFound).
			Update("status", models.ItemStatusClaimed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrItemAlreadyClaimed
		}

		// Cascade: reject every competing Pending claim on the same item
		return tx.Model(&models.Claim{}).
			Where("claimed_item_id = ? AND claim_id <> ? AND claim_status = ?",
				itemID, claimID, models.ClaimStatusPending).
			Update("claim_status", models.ClaimStatusRejected).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, gorm.ErrRecordNotFound
		}
		return 0, err
	}
	return itemID, nil
}

package repositories

import (
	"context"
	"errors"

	"campus-lostfound/internal/adapters/persistence/models"
)

// ErrClaimAlreadyProcessed is returned by Adjudicate when the target claim
// exists but is no longer Pending (already approved or rejected, possibly by
// a concurrent request).
var ErrClaimAlreadyProcessed = errors.New("claim has already been processed")

// ErrItemAlreadyClaimed is returned by Adjudicate when approving a claim
// whose item is no longer in Found status. The whole adjudication rolls back.
var ErrItemAlreadyClaimed = errors.New("item has already been claimed")

// ErrClaimApproved is returned by Delete when the target claim exists but has
// been approved (possibly by a concurrent adjudication after the caller's
// read). Approved claims are never deleted directly.
var ErrClaimApproved = errors.New("approved claims cannot be deleted")

// StudentRepository defines student identity lookups
type StudentRepository interface {
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	Exists(ctx context.Context, studentID string) (bool, error)
}

// AdminRepository defines admin identity lookups
type AdminRepository interface {
	GetByID(ctx context.Context, adminID string) (*models.Admin, error)
	Exists(ctx context.Context, adminID string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUser(ctx context.Context, userID, role string) error
	DeleteExpired(ctx context.Context) error
}

// LookupRepository gives read-only access to the seeded master tables
type LookupRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
	LocationExists(ctx context.Context, id uint) (bool, error)
}

// ItemFilter holds the optional predicates for listing Found items.
// Every predicate is bound as a query parameter, never concatenated.
type ItemFilter struct {
	Search     string
	CategoryID *uint
	ItemID     *uint
}

// ItemRepository defines item repository interface
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, itemID uint) (*models.Item, error)
	ListFound(ctx context.Context, filter ItemFilter) ([]models.ItemView, error)
	// DeleteWithClaims removes the item's claims and then the item itself
	// inside one transaction.
	DeleteWithClaims(ctx context.Context, itemID uint) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// ClaimRepository defines claim repository interface
type ClaimRepository interface {
	Create(ctx context.Context, claim *models.Claim) error
	GetByID(ctx context.Context, claimID uint) (*models.Claim, error)
	GetByItemAndClaimant(ctx context.Context, itemID uint, claimantID string) (*models.Claim, error)
	ListPending(ctx context.Context) ([]models.PendingClaimView, error)
	ListProcessed(ctx context.Context, offset, limit int) ([]models.ClaimHistoryView, int64, error)
	ListByClaimant(ctx context.Context, claimantID string) ([]models.StudentClaimView, error)
	Delete(ctx context.Context, claimID uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	// Adjudicate moves a Pending claim to Approved or Rejected and, on
	// approval, marks the item Claimed and rejects every other Pending claim
	// on it. All statements run in one transaction; any failure rolls back
	// the lot. Returns the affected item id.
	Adjudicate(ctx context.Context, claimID uint, adminID, status, rationale string) (uint, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Claim errors
var (
	ErrClaimNotFound         = errors.New("claim not found")
	ErrItemNotAvailable      = errors.New("item is not available for claim")
	ErrSelfClaim             = errors.New("you cannot claim an item you reported")
	ErrClaimApproved         = errors.New("approved claims cannot be deleted")
	ErrNotClaimOwner         = errors.New("claim belongs to another student")
	ErrClaimAlreadyProcessed = errors.New("claim has already been processed")
	ErrInvalidClaimStatus    = errors.New("status must be Approved or Rejected")
)

// DuplicateClaimError reports a repeated claim by the same student on the
// same item, carrying the prior claim's status for the error message.
type DuplicateClaimError struct {
	PriorStatus string
}

func (e *DuplicateClaimError) Error() string {
	return fmt.Sprintf("you already have a %s claim on this item", strings.ToLower(e.PriorStatus))
}

// ClaimService handles claim submission and adjudication business logic
type ClaimService struct {
	claimRepo repositories.ClaimRepository
	itemRepo  repositories.ItemRepository
}

// NewClaimService creates a new claim service
func NewClaimService(claimRepo repositories.ClaimRepository, itemRepo repositories.ItemRepository) *ClaimService {
	return &ClaimService{
		claimRepo: claimRepo,
		itemRepo:  itemRepo,
	}
}

// SubmitInput represents a claim submission
type SubmitInput struct {
	ItemID           uint   `json:"item_id"`
	ClaimantID       string `json:"-"`
	ProofOfOwnership string `json:"proof_of_ownership"`
}

// AdjudicateInput represents an admin decision on a claim
type AdjudicateInput struct {
	ClaimID   uint   `json:"claim_id"`
	AdminID   string `json:"-"`
	Status    string `json:"status"`
	Rationale string `json:"rationale"`
}

// Submit records a new Pending claim.
//
// Checks run in order: item exists, item still Found, claimant is not the
// reporter, no prior claim by this claimant. The (item, claimant) unique
// index backs the duplicate check at the store level, so a concurrent
// duplicate loses on insert rather than slipping through.
func (s *ClaimService) Submit(ctx context.Context, input *SubmitInput) (*models.Claim, error) {
	item, err := s.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.Status != models.ItemStatusFound {
		return nil, ErrItemNotAvailable
	}

	if item.ReportedBy == input.ClaimantID {
		return nil, ErrSelfClaim
	}

	prior, err := s.claimRepo.GetByItemAndClaimant(ctx, input.ItemID, input.ClaimantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if prior != nil {
		return nil, &DuplicateClaimError{PriorStatus: prior.ClaimStatus}
	}

	claim := &models.Claim{
		ClaimedItemID:    input.ItemID,
		ClaimantID:       input.ClaimantID,
		ProofOfOwnership: input.ProofOfOwnership,
		ClaimStatus:      models.ClaimStatusPending,
	}

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		return nil, err
	}

	log.Printf("✅ Claim submitted: #%d on item #%d by %s", claim.ClaimID, input.ItemID, input.ClaimantID)
	return claim, nil
}

// Adjudicate moves a Pending claim to Approved or Rejected. Approval also
// marks the item Claimed and rejects all competing Pending claims; the
// repository runs the whole transition in one transaction.
func (s *ClaimService) Adjudicate(ctx context.Context, input *AdjudicateInput) error {
	if input.Status != models.ClaimStatusApproved && input.Status != models.ClaimStatusRejected {
		return ErrInvalidClaimStatus
	}

	itemID, err := s.claimRepo.Adjudicate(ctx, input.ClaimID, input.AdminID, input.Status, input.Rationale)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrClaimNotFound
		case errors.Is(err, repositories.ErrClaimAlreadyProcessed):
			return ErrClaimAlreadyProcessed
		case errors.Is(err, repositories.ErrItemAlreadyClaimed):
			return ErrItemNotAvailable
		}
		return err
	}

	log.Printf("✅ Claim #%d %s by %s (item #%d)", input.ClaimID, input.Status, input.AdminID, itemID)
	return nil
}

// Delete removes a non-Approved claim. Students may only delete their own
// claims; admins may delete any.
func (s *ClaimService) Delete(ctx context.Context, claimID uint, callerID, callerRole string) error {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClaimNotFound
		}
		return err
	}

	if claim.ClaimStatus == models.ClaimStatusApproved {
		return ErrClaimApproved
	}

	if callerRole != models.RoleAdmin && claim.ClaimantID != callerID {
		return ErrNotClaimOwner
	}

	if err := s.claimRepo.Delete(ctx, claimID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrClaimNotFound
		case errors.Is(err, repositories.ErrClaimApproved):
			// Approved by a concurrent adjudication after the read above
			return ErrClaimApproved
		}
		return err
	}

	log.Printf("🗑️ Claim deleted: #%d (by %s)", claimID, callerID)
	return nil
}

// ListPending lists the admin verification queue
func (s *ClaimService) ListPending(ctx context.Context) ([]models.PendingClaimView, error) {
	return s.claimRepo.ListPending(ctx)
}

// ListHistory lists resolved claims, newest first, paginated
func (s *ClaimService) ListHistory(ctx context.Context, offset, limit int) ([]models.ClaimHistoryView, int64, error) {
	return s.claimRepo.ListProcessed(ctx, offset, limit)
}

// ListByStudent lists a student's claims with item detail and decision data
func (s *ClaimService) ListByStudent(ctx context.Context, studentID string) ([]models.StudentClaimView, error) {
	return s.claimRepo.ListByClaimant(ctx, studentID)
}

package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-lostfound/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedItem(t *testing.T, db *gorm.DB, categoryID, locationID uint, reporter, status string) models.Item {
	t.Helper()
	item := models.Item{
		ItemName:    "Backpack",
		Description: "red, two pockets",
		CategoryID:  categoryID,
		LocationID:  locationID,
		ReportedBy:  reporter,
		Status:      status,
		ImageURL:    "http://img/backpack",
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestClaimRepository_Adjudicate_ApproveCascades(t *testing.T) {
	db := newTestDB(t)
	categoryID, locationID := seedLookup(t, db)
	seedStudent(t, db, "S1", "Alice")
	seedStudent(t, db, "S2", "Bob")
	seedStudent(t, db, "S3", "Cara")
	seedAdmin(t, db, "A1", "Office")

	repo := NewClaimRepository(db)
	ctx := context.Background()

	item := seedItem(t, db, categoryID, locationID, "S1", models.ItemStatusFound)

	winner := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S2", ProofOfOwnership: "receipt", ClaimStatus: models.ClaimStatusPending}
	loser := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S3", ProofOfOwnership: "photo", ClaimStatus: models.ClaimStatusPending}
	require.NoError(t, db.Create(&winner).Error)
	require.NoError(t, db.Create(&loser).Error)

	itemID, err := repo.Adjudicate(ctx, winner.ClaimID, "A1", models.ClaimStatusApproved, "receipt matches serial")
	require.NoError(t, err)
	assert.Equal(t, item.ItemID, itemID)

	// Winner carries the admin reference and rationale
	var got models.Claim
	require.NoError(t, db.First(&got, winner.ClaimID).Error)
	assert.Equal(t, models.ClaimStatusApproved, got.ClaimStatus)
	require.NotNil(t, got.ProcessedBy)
	assert.Equal(t, "A1", *got.ProcessedBy)
	assert.Equal(t, "receipt matches serial", got.Rationale)

	// Item flipped to Claimed
	var gotItem models.Item
	require.NoError(t, db.First(&gotItem, item.ItemID).Error)
	assert.Equal(t, models.ItemStatusClaimed, gotItem.Status)

	// Competing pending claim cascaded to Rejected
	var gotLoser models.Claim
	require.NoError(t, db.First(&gotLoser, loser.ClaimID).Error)
	assert.Equal(t, models.ClaimStatusRejected, gotLoser.ClaimStatus)
}

func TestClaimRepository_Adjudicate_RejectLeavesItemAlone(t *testing.T) {
	db := newTestDB(t)
	categoryID, locationID := seedLookup(t, db)
	seedStudent(t, db, "S1", "Alice")
	seedStudent(t, db, "S2", "Bob")
	seedAdmin(t, db, "A1", "Office")

	repo := NewClaimRepository(db)
	ctx := context.Background()

	item := seedItem(t, db, categoryID, locationID, "S1", models.ItemStatusFound)
	claim := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S2", ProofOfOwnership: "guess", ClaimStatus: models.ClaimStatusPending}
	require.NoError(t, db.Create(&claim).Error)

	_, err := repo.Adjudicate(ctx, claim.ClaimID, "A1", models.ClaimStatusRejected, "no proof")
	require.NoError(t, err)

	var gotItem models.Item
	require.NoError(t, db.First(&gotItem, item.ItemID).Error)
	assert.Equal(t, models.ItemStatusFound, gotItem.Status)

	// Admin reference and rationale are set on rejection too
	var got models.Claim
	require.NoError(t, db.First(&got, claim.ClaimID).Error)
	require.NotNil(t, got.ProcessedBy)
	assert.Equal(t, "A1", *got.ProcessedBy)
	assert.Equal(t, "no proof", got.Rationale)
}

func TestClaimRepository_Adjudicate_Guards(t *testing.T) {
	db := newTestDB(t)
	categoryID, locationID := seedLookup(t, db)
	seedStudent(t, db, "S1", "Alice")
	seedStudent(t, db, "S2", "Bob")
	seedAdmin(t, db, "A1", "Office")

	repo := NewClaimRepository(db)
	ctx := context.Background()

	t.Run("unknown claim", func(t *testing.T) {
		_, err := repo.Adjudicate(ctx, 9999, "A1", models.ClaimStatusApproved, "")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("already processed claim", func(t *testing.T) {
		item := seedItem(t, db, categoryID, locationID, "S1", models.ItemStatusFound)
		claim := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S2", ProofOfOwnership: "p", ClaimStatus: models.ClaimStatusPending}
		require.NoError(t, db.Create(&claim).Error)

		_, err := repo.Adjudicate(ctx, claim.ClaimID, "A1", models.ClaimStatusRejected, "")
		require.NoError(t, err)

		_, err = repo.Adjudicate(ctx, claim.ClaimID, "A1", models.ClaimStatusApproved, "")
		assert.True(t, errors.Is(err, ErrClaimAlreadyProcessed))
	})

	t.Run("approving onto an already claimed item rolls back", func(t *testing.T) {
		item := seedItem(t, db, categoryID, locationID, "S1", models.ItemStatusClaimed)
		claim := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S2", ProofOfOwnership: "p", ClaimStatus: models.ClaimStatusPending}
		require.NoError(t, db.Create(&claim).Error)

		_, err := repo.Adjudicate(ctx, claim.ClaimID, "A1", models.ClaimStatusApproved, "")
		assert.True(t, errors.Is(err, ErrItemAlreadyClaimed))

		// Rollback: the claim is still Pending
		var got models.Claim
		require.NoError(t, db.First(&got, claim.ClaimID).Error)
		assert.Equal(t, models.ClaimStatusPending, got.ClaimStatus)
		assert.Nil(t, got.ProcessedBy)
	})
}

func TestClaimRepository_Views(t *testing.T) {
	db := newTestDB(t)
	categoryID, locationID := seedLookup(t, db)
	seedStudent(t, db, "S1", "Alice")
	seedStudent(t, db, "S2", "Bob")
	seedAdmin(t, db, "A1", "Office")

	repo := NewClaimRepository(db)
	ctx := context.Background()

	item := seedItem(t, db, categoryID, locationID, "S1", models.ItemStatusFound)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	pending := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S2", ProofOfOwnership: "receipt",
		ClaimStatus: models.ClaimStatusPending, DateClaimed: base.Add(time.Hour)}
	require.NoError(t, db.Create(&pending).Error)

	adminID := "A1"
	processed := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S1", ProofOfOwnership: "old photo",
		ClaimStatus: models.ClaimStatusRejected, DateClaimed: base, ProcessedBy: &adminID, Rationale: "photo inconclusive"}
	require.NoError(t, db.Create(&processed).Error)

	t.Run("pending view", func(t *testing.T) {
		got, err := repo.ListPending(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, pending.ClaimID, got[0].ClaimID)
		assert.Equal(t, "Backpack", got[0].ItemName)
		assert.Equal(t, "Bob", got[0].ClaimantName)
	})

	t.Run("history view", func(t *testing.T) {
		got, total, err := repo.ListProcessed(ctx, 0, 50)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, processed.ClaimID, got[0].ClaimID)
		assert.Equal(t, "Office", got[0].ProcessedByName)
		assert.Equal(t, "photo inconclusive", got[0].Rationale)
	})

	t.Run("student view includes decision data", func(t *testing.T) {
		got, err := repo.ListByClaimant(ctx, "S1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Office", got[0].ProcessedByName)
		assert.Equal(t, "http://img/backpack", got[0].ImageURL)
	})

	t.Run("unprocessed claim has empty admin name", func(t *testing.T) {
		got, err := repo.ListByClaimant(ctx, "S2")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].ProcessedByName)
	})
}

func TestClaimRepository_DuplicateClaimIndex(t *testing.T) {
	db := newTestDB(t)
	categoryID, locationID := seedLookup(t, db)
	seedStudent(t, db, "S1", "Alice")
	seedStudent(t, db, "S2", "Bob")

	repo := NewClaimRepository(db)
	ctx := context.Background()

	item := seedItem(t, db, categoryID, locationID, "S1", models.ItemStatusFound)

	first := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S2", ProofOfOwnership: "a", ClaimStatus: models.ClaimStatusPending}
	require.NoError(t, repo.Create(ctx, &first))

	// The unique (item, claimant) index rejects the duplicate at the store
	// level, independent of the service's read-first check
	dup := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S2", ProofOfOwnership: "b", ClaimStatus: models.ClaimStatusPending}
	assert.Error(t, repo.Create(ctx, &dup))
}

func TestClaimRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	categoryID, locationID := seedLookup(t, db)
	seedStudent(t, db, "S1", "Alice")
	seedStudent(t, db, "S2", "Bob")
	seedAdmin(t, db, "A1", "Dana")

	repo := NewClaimRepository(db)
	ctx := context.Background()

	item := seedItem(t, db, categoryID, locationID, "S1", models.ItemStatusFound)

	t.Run("pending claim deletes", func(t *testing.T) {
		claim := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S2", ProofOfOwnership: "a", ClaimStatus: models.ClaimStatusPending}
		require.NoError(t, repo.Create(ctx, &claim))

		require.NoError(t, repo.Delete(ctx, claim.ClaimID))

		err := repo.Delete(ctx, claim.ClaimID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("claim approved after the caller's read survives", func(t *testing.T) {
		claim := models.Claim{ClaimedItemID: item.ItemID, ClaimantID: "S2", ProofOfOwnership: "a", ClaimStatus: models.ClaimStatusPending}
		require.NoError(t, repo.Create(ctx, &claim))

		// Concurrent adjudication lands between a read and the delete
		_, err := repo.Adjudicate(ctx, claim.ClaimID, "A1", models.ClaimStatusApproved, "receipt matches")
		require.NoError(t, err)

		err = repo.Delete(ctx, claim.ClaimID)
		assert.ErrorIs(t, err, ErrClaimApproved)

		var count int64
		require.NoError(t, db.Model(&models.Claim{}).Where("claim_id = ?", claim.ClaimID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

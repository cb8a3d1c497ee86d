package services

import (
	"testing"
	"time"

	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_SweepExpiredTokens(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "S1001", "Alice Johnson", "pw")

	expired := models.RefreshToken{
		UserID: "S1001", Role: models.RoleStudent,
		TokenHash: "hash-expired", ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)
	valid := models.RefreshToken{
		UserID: "S1001", Role: models.RoleStudent,
		TokenHash: "hash-valid", ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(&valid).Error)

	svc := NewMaintenanceService(repositories.NewRefreshTokenRepository(db))
	svc.sweepExpiredTokens()

	var hashes []string
	require.NoError(t, db.Model(&models.RefreshToken{}).Pluck("token_hash", &hashes).Error)
	assert.Equal(t, []string{"hash-valid"}, hashes)
}

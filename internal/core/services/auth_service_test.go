package services

import (
	"context"
	"testing"

	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/pkg/jwt"
	"campus-lostfound/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "S1001", "Alice Johnson", "password123")
	seedAdmin(t, db, "A2001", "Dana Admin", "adminpass")
	svc := newAuthService(db)
	ctx := context.Background()

	t.Run("student login", func(t *testing.T) {
		resp, err := svc.Login(ctx, &LoginInput{StudentID: "S1001", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "S1001", resp.User.UserID)
		assert.Equal(t, models.RoleStudent, resp.User.Role)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)

		claims, err := jwt.ValidateAccessToken(resp.AccessToken, testConfig().JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, "S1001", claims.UserID)
		assert.Equal(t, models.RoleStudent, claims.Role)
	})

	t.Run("admin login", func(t *testing.T) {
		resp, err := svc.Login(ctx, &LoginInput{AdminID: "A2001", Password: "adminpass"})
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, resp.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginInput{StudentID: "S1001", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginInput{StudentID: "S9999", Password: "password123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("both ids supplied", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginInput{StudentID: "S1001", AdminID: "A2001", Password: "password123"})
		assert.ErrorIs(t, err, ErrAmbiguousIdentity)
	})

	t.Run("neither id supplied", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginInput{Password: "password123"})
		assert.ErrorIs(t, err, ErrAmbiguousIdentity)
	})
}

func TestAuthService_Login_IdentityCollision(t *testing.T) {
	db := newTestDB(t)
	// Same id seeded in both identity spaces; login must refuse it even
	// with the correct password.
	seedStudent(t, db, "X5000", "Alice Johnson", "password123")
	seedAdmin(t, db, "X5000", "Dana Admin", "password123")
	svc := newAuthService(db)

	_, err := svc.Login(context.Background(), &LoginInput{StudentID: "X5000", Password: "password123"})
	assert.ErrorIs(t, err, ErrIdentityCollision)

	_, err = svc.Login(context.Background(), &LoginInput{AdminID: "X5000", Password: "password123"})
	assert.ErrorIs(t, err, ErrIdentityCollision)
}

func TestAuthService_RefreshRotation(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "S1001", "Alice Johnson", "password123")
	svc := newAuthService(db)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &LoginInput{StudentID: "S1001", Password: "password123"})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "S1001", rotated.User.UserID)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	t.Run("presented token is single-use", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, resp.RefreshToken)
		assert.ErrorIs(t, err, ErrTokenRevoked)
	})

	t.Run("rotated token still works", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, rotated.RefreshToken)
		assert.NoError(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown but well-formed token", func(t *testing.T) {
		// Signed with the right secret but never stored
		stray, err := jwt.GenerateRefreshToken("S1001", models.RoleStudent, "stray-jti", testConfig().JWT.RefreshSecret, 7)
		require.NoError(t, err)

		_, err = svc.RefreshToken(ctx, stray)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "S1001", "Alice Johnson", "password123")
	svc := newAuthService(db)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &LoginInput{StudentID: "S1001", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.RefreshToken))

	_, err = svc.RefreshToken(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	var stored models.RefreshToken
	tokenHash := password.HashToken(resp.RefreshToken)
	require.NoError(t, db.Where("token_hash = ?", tokenHash).First(&stored).Error)
	assert.True(t, stored.IsRevoked())
}

func TestAuthService_LogoutAll(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "S1001", "Alice Johnson", "password123")
	svc := newAuthService(db)
	ctx := context.Background()

	// Two concurrent sessions
	first, err := svc.Login(ctx, &LoginInput{StudentID: "S1001", Password: "password123"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, &LoginInput{StudentID: "S1001", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(ctx, "S1001", models.RoleStudent))

	_, err = svc.RefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	_, err = svc.RefreshToken(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthService_GetPrincipal(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "S1001", "Alice Johnson", "password123")
	svc := newAuthService(db)
	ctx := context.Background()

	p, err := svc.GetPrincipal(ctx, "S1001", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", p.FullName)
	assert.Equal(t, "S1001-user", p.Username)

	_, err = svc.GetPrincipal(ctx, "S9999", models.RoleStudent)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

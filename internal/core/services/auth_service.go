package services

import (
	"context"
	"errors"
	"log"

	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/adapters/persistence/repositories"
	"campus-lostfound/internal/config"
	"campus-lostfound/internal/pkg/jwt"
	"campus-lostfound/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityCollision  = errors.New("id exists in both identity spaces")
	ErrAmbiguousIdentity  = errors.New("exactly one of student_id or admin_id must be provided")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
)

// AuthService handles authentication business logic
type AuthService struct {
	studentRepo      repositories.StudentRepository
	adminRepo        repositories.AdminRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	studentRepo repositories.StudentRepository,
	adminRepo repositories.AdminRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		studentRepo:      studentRepo,
		adminRepo:        adminRepo,
		refreshTokenRepo: refreshTokenRepo,
		cfg:              cfg,
	}
}

// LoginInput represents login input. Exactly one of StudentID / AdminID must
// be set; the two identity spaces never overlap.
type LoginInput struct {
	StudentID string `json:"student_id"`
	AdminID   string `json:"admin_id"`
	Password  string `json:"password"`
}

// Principal is the authenticated identity returned to the client
type Principal struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *Principal `json:"user"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
}

// Login authenticates a student or an admin.
//
// The supplied id is looked up in its own identity table first; on a password
// match the other table is checked as well, and a hit there fails the login
// outright (identity-space collision guard).
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if (input.StudentID == "") == (input.AdminID == "") {
		return nil, ErrAmbiguousIdentity
	}

	var principal *Principal
	var hash string

	if input.StudentID != "" {
		student, err := s.studentRepo.GetByID(ctx, input.StudentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		hash = student.PasswordHash
		principal = &Principal{
			UserID:   student.StudentID,
			Username: student.Username,
			FullName: student.FullName,
			Email:    student.Email,
			Role:     models.RoleStudent,
		}
	} else {
		admin, err := s.adminRepo.GetByID(ctx, input.AdminID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		hash = admin.PasswordHash
		principal = &Principal{
			UserID:   admin.AdminID,
			Username: admin.Username,
			FullName: admin.FullName,
			Email:    admin.Email,
			Role:     models.RoleAdmin,
		}
	}

	if !password.Verify(input.Password, hash) {
		return nil, ErrInvalidCredentials
	}

	// Same id must not exist in the other identity space, even with a
	// correct password
	var collision bool
	var err error
	if principal.Role == models.RoleStudent {
		collision, err = s.adminRepo.Exists(ctx, principal.UserID)
	} else {
		collision, err = s.studentRepo.Exists(ctx, principal.UserID)
	}
	if err != nil {
		return nil, err
	}
	if collision {
		return nil, ErrIdentityCollision
	}

	tokens, err := s.issueTokens(ctx, principal)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ %s logged in: %s", principal.Role, principal.UserID)

	return &AuthResponse{
		User:         principal,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken rotates the token pair using a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	tokenHash := password.HashToken(refreshToken)

	storedToken, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if storedToken.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if storedToken.IsExpired() {
		return nil, ErrTokenExpired
	}

	principal, err := s.GetPrincipal(ctx, claims.UserID, claims.Role)
	if err != nil {
		return nil, err
	}

	// Token rotation: the presented refresh token is single-use
	if err := s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, principal)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         principal,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)
	return s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash)
}

// LogoutAll revokes every active refresh token of the caller, ending the
// sessions on all devices at once
func (s *AuthService) LogoutAll(ctx context.Context, userID, role string) error {
	if err := s.refreshTokenRepo.RevokeAllByUser(ctx, userID, role); err != nil {
		return err
	}
	log.Printf("✅ All sessions revoked for %s %s", role, userID)
	return nil
}

// GetPrincipal loads the display profile for an authenticated id/role pair
func (s *AuthService) GetPrincipal(ctx context.Context, userID, role string) (*Principal, error) {
	switch role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return &Principal{
			UserID:   student.StudentID,
			Username: student.Username,
			FullName: student.FullName,
			Email:    student.Email,
			Role:     models.RoleStudent,
		}, nil
	case models.RoleAdmin:
		admin, err := s.adminRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return &Principal{
			UserID:   admin.AdminID,
			Username: admin.Username,
			FullName: admin.FullName,
			Email:    admin.Email,
			Role:     models.RoleAdmin,
		}, nil
	default:
		return nil, ErrUserNotFound
	}
}

// tokenPair groups the two signed tokens
type tokenPair struct {
	AccessToken  string
	RefreshToken string
}

// issueTokens generates a signed token pair and stores the refresh token hash
func (s *AuthService) issueTokens(ctx context.Context, p *Principal) (*tokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		p.UserID, p.Username, p.Role,
		s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()
	refreshToken, err := jwt.GenerateRefreshToken(
		p.UserID, p.Role, tokenID,
		s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	stored := &models.RefreshToken{
		UserID:    p.UserID,
		Role:      p.Role,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	if err := s.refreshTokenRepo.Create(ctx, stored); err != nil {
		return nil, err
	}

	return &tokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

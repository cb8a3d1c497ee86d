package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Identity Tables
// ============================================================

// Roles embedded in access tokens
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Student represents the students table.
// Student ids and admin ids are disjoint identity spaces; login
// enforces this explicitly (see AuthService.Login).
type Student struct {
	StudentID    string    `gorm:"column:student_id;primaryKey;size:20" json:"student_id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	FullName     string    `gorm:"size:100" json:"full_name"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Student) TableName() string {
	return "students"
}

// Admin represents the admins table
type Admin struct {
	AdminID      string    `gorm:"column:admin_id;primaryKey;size:20" json:"admin_id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	FullName     string    `gorm:"size:100" json:"full_name"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}

// RefreshToken represents refresh_tokens table.
// UserID holds either a student id or an admin id; Role records which.
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"size:20;index;not null" json:"user_id"`
	Role      string     `gorm:"size:10;not null" json:"role"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Master Tables (seeded, read-only via the API)
// ============================================================

// Category ประเภทสิ่งของ (Master)
type Category struct {
	CategoryID uint   `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name       string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// Location สถานที่พบ (Master)
type Location struct {
	LocationID uint   `gorm:"column:location_id;primaryKey" json:"location_id"`
	Name       string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Location) TableName() string {
	return "locations"
}

// ============================================================
// Items & Claims
// ============================================================

// Item statuses
const (
	ItemStatusFound   = "Found"
	ItemStatusClaimed = "Claimed"
)

// Claim statuses
const (
	ClaimStatusPending  = "Pending"
	ClaimStatusApproved = "Approved"
	ClaimStatusRejected = "Rejected"
)

// Item represents the items table.
// Status only ever moves Found -> Claimed, and only through claim approval.
type Item struct {
	ItemID       uint      `gorm:"column:item_id;primaryKey" json:"item_id"`
	ItemName     string    `gorm:"size:100;not null" json:"item_name"`
	Description  string    `gorm:"type:text" json:"description"`
	CategoryID   uint      `gorm:"not null;index" json:"category_id"`
	LocationID   uint      `gorm:"not null;index" json:"location_id"`
	DateFound    time.Time `gorm:"type:date" json:"date_found"`
	DateReported time.Time `gorm:"autoCreateTime;index" json:"date_reported"`
	ReportedBy   string    `gorm:"size:20;not null;index" json:"reported_by"`
	Status       string    `gorm:"size:20;not null;default:'Found';index" json:"status"`
	ImageURL     string    `gorm:"size:500;not null" json:"image_url"`
}

func (Item) TableName() string {
	return "items"
}

// Claim represents the claims table.
// The (claimed_item_id, claimant_id) unique index backs the duplicate-claim
// check at the store level; the service still reads first so it can report
// the prior claim's status in the error message.
type Claim struct {
	ClaimID          uint      `gorm:"column:claim_id;primaryKey" json:"claim_id"`
	ClaimedItemID    uint      `gorm:"not null;index;uniqueIndex:idx_item_claimant" json:"claimed_item_id"`
	ClaimantID       string    `gorm:"size:20;not null;index;uniqueIndex:idx_item_claimant" json:"claimant_id"`
	ProofOfOwnership string    `gorm:"type:text;not null" json:"proof_of_ownership"`
	ClaimStatus      string    `gorm:"size:20;not null;default:'Pending';index" json:"claim_status"`
	DateClaimed      time.Time `gorm:"autoCreateTime;index" json:"date_claimed"`
	ProcessedBy      *string   `gorm:"size:20" json:"processed_by"`
	Rationale        string    `gorm:"type:text" json:"rationale"`
}

func (Claim) TableName() string {
	return "claims"
}

func (c *Claim) IsProcessed() bool {
	return c.ClaimStatus != ClaimStatusPending
}

// ============================================================
// Read DTOs (joined rows)
// ============================================================

// ItemView is an item row joined with its category/location display names
type ItemView struct {
	ItemID       uint      `json:"item_id"`
	ItemName     string    `json:"item_name"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name"`
	LocationID   uint      `json:"location_id"`
	LocationName string    `json:"location_name"`
	DateFound    time.Time `json:"date_found"`
	DateReported time.Time `json:"date_reported"`
	ReportedBy   string    `json:"reported_by"`
	ImageURL     string    `json:"image_url"`
}

// PendingClaimView is the admin verification-queue row
type PendingClaimView struct {
	ClaimID          uint      `json:"claim_id"`
	ClaimedItemID    uint      `json:"item_id"`
	ItemName         string    `json:"item_name"`
	ImageURL         string    `json:"image_url"`
	ClaimantID       string    `json:"claimant_id"`
	ClaimantName     string    `json:"claimant_name"`
	ProofOfOwnership string    `json:"proof_of_ownership"`
	ClaimStatus      string    `json:"claim_status"`
	DateClaimed      time.Time `json:"date_claimed"`
}

// ClaimHistoryView is a resolved claim joined with item and both parties
type ClaimHistoryView struct {
	ClaimID          uint      `json:"claim_id"`
	ClaimedItemID    uint      `json:"item_id"`
	ItemName         string    `json:"item_name"`
	ClaimantID       string    `json:"claimant_id"`
	ClaimantName     string    `json:"claimant_name"`
	ProofOfOwnership string    `json:"proof_of_ownership"`
	ClaimStatus      string    `json:"claim_status"`
	DateClaimed      time.Time `json:"date_claimed"`
	ProcessedBy      *string   `json:"processed_by"`
	ProcessedByName  string    `json:"processed_by_name"`
	Rationale        string    `json:"rationale"`
}

// StudentClaimView is the "my claims" row: the claim with item detail and,
// once processed, the deciding admin's display name and rationale
type StudentClaimView struct {
	ClaimID          uint      `json:"claim_id"`
	ClaimedItemID    uint      `json:"item_id"`
	ItemName         string    `json:"item_name"`
	ItemDescription  string    `json:"item_description"`
	ItemStatus       string    `json:"item_status"`
	ImageURL         string    `json:"image_url"`
	ProofOfOwnership string    `json:"proof_of_ownership"`
	ClaimStatus      string    `json:"claim_status"`
	DateClaimed      time.Time `json:"date_claimed"`
	ProcessedByName  string    `json:"processed_by_name"`
	Rationale        string    `json:"rationale"`
}

// AutoMigrate migrates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Student{},
		&Admin{},
		&RefreshToken{},
		&Category{},
		&Location{},
		&Item{},
		&Claim{},
	)
}

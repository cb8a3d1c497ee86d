package services

import (
	"fmt"
	"testing"

	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/adapters/persistence/repositories"
	"campus-lostfound/internal/config"
	"campus-lostfound/internal/pkg/password"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite database (modernc.org/sqlite, cgo-free)
// and migrates the full schema. Each test gets its own named database so
// state never leaks between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func seedLookup(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	category := models.Category{Name: "Electronics"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	location := models.Location{Name: "Library"}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("failed to seed location: %v", err)
	}
	return category.CategoryID, location.LocationID
}

func seedStudent(t *testing.T, db *gorm.DB, id, name, plainPassword string) {
	t.Helper()
	hash, err := password.Hash(plainPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	student := models.Student{
		StudentID:    id,
		Username:     id + "-user",
		FullName:     name,
		Email:        id + "@campus.edu",
		PasswordHash: hash,
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to seed student %s: %v", id, err)
	}
}

func seedAdmin(t *testing.T, db *gorm.DB, id, name, plainPassword string) {
	t.Helper()
	hash, err := password.Hash(plainPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	admin := models.Admin{
		AdminID:      id,
		Username:     id + "-user",
		FullName:     name,
		Email:        id + "@campus.edu",
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to seed admin %s: %v", id, err)
	}
}

func seedItem(t *testing.T, db *gorm.DB, categoryID, locationID uint, reporter, status string) uint {
	t.Helper()
	item := models.Item{
		ItemName:   "Black Umbrella",
		CategoryID: categoryID,
		LocationID: locationID,
		ReportedBy: reporter,
		Status:     status,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return item.ItemID
}

func newItemService(db *gorm.DB) *ItemService {
	return NewItemService(repositories.NewItemRepository(db), repositories.NewLookupRepository(db))
}

func newClaimService(db *gorm.DB) *ClaimService {
	return NewClaimService(repositories.NewClaimRepository(db), repositories.NewItemRepository(db))
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repositories.NewStudentRepository(db),
		repositories.NewAdminRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)
}

package repositories

import (
	"fmt"
	"testing"

	"campus-lostfound/internal/adapters/persistence/models"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite database (modernc.org/sqlite, cgo-free)
// and migrates the full schema. Each test gets its own named database so
// state never leaks between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
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

// seedLookup inserts one category and one location and returns their ids
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

// seedStudent inserts a student row
func seedStudent(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	student := models.Student{
		StudentID:    id,
		Username:     id + "-user",
		FullName:     name,
		Email:        id + "@campus.edu",
		PasswordHash: "x",
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to seed student %s: %v", id, err)
	}
}

// seedAdmin inserts an admin row
func seedAdmin(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	admin := models.Admin{
		AdminID:      id,
		Username:     id + "-user",
		FullName:     name,
		Email:        id + "@campus.edu",
		PasswordHash: "x",
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to seed admin %s: %v", id, err)
	}
}

package config

import (
	"log"

	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedMasterData seeds the category and location lookup tables
func SeedMasterData(db *gorm.DB) error {
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedLocations(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Electronics"},
		{Name: "Clothing"},
		{Name: "Books & Stationery"},
		{Name: "Accessories"},
		{Name: "ID Cards & Documents"},
		{Name: "Sports Equipment"},
		{Name: "Other"},
	}

	for _, category := range categories {
		if err := db.Where("name = ?", category.Name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedLocations(db *gorm.DB) error {
	locations := []models.Location{
		{Name: "Library"},
		{Name: "Cafeteria"},
		{Name: "Gymnasium"},
		{Name: "Lecture Hall A"},
		{Name: "Lecture Hall B"},
		{Name: "Student Center"},
		{Name: "Parking Lot"},
		{Name: "Dormitory"},
	}

	for _, location := range locations {
		if err := db.Where("name = ?", location.Name).FirstOrCreate(&location).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoAccounts seeds demo identities for dev mode only.
// Passwords are bcrypt-hashed like every other credential.
func SeedDemoAccounts(db *gorm.DB) error {
	hash, err := password.Hash("password123")
	if err != nil {
		return err
	}

	students := []models.Student{
		{StudentID: "S1001", Username: "alice", FullName: "Alice Tan", Email: "alice@campus.edu", PasswordHash: hash},
		{StudentID: "S1002", Username: "bob", FullName: "Bob Lim", Email: "bob@campus.edu", PasswordHash: hash},
	}
	for _, student := range students {
		if err := db.Where("student_id = ?", student.StudentID).FirstOrCreate(&student).Error; err != nil {
			return err
		}
	}

	admin := models.Admin{
		AdminID:      "A2001",
		Username:     "admin",
		FullName:     "Lost & Found Office",
		Email:        "lostfound@campus.edu",
		PasswordHash: hash,
	}
	if err := db.Where("admin_id = ?", admin.AdminID).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	log.Println("✅ Demo accounts seeded (dev mode)")
	return nil
}

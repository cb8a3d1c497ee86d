package repositories

import (
	"context"

	"campus-lostfound/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// studentRepository implements StudentRepository interface
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// GetByID gets a student by student id
func (r *studentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Exists checks if a student id exists
func (r *studentRepository) Exists(ctx context.Context, studentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Where("student_id = ?", studentID).Count(&count).Error
	return count > 0, err
}

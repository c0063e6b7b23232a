package repositories

import (
	"context"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/core/rbac"

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

// Create creates a new student
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// GetByID gets a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// List lists students visible under the given scope. Teachers see the
// students enrolled in courses they teach.
func (r *studentRepository) List(ctx context.Context, scope rbac.Scope) ([]*models.Student, error) {
	students := []*models.Student{}

	q := r.db.WithContext(ctx).Model(&models.Student{})
	switch scope.Kind {
	case rbac.ScopeAll:
		// unrestricted
	case rbac.ScopeTeacher:
		q = q.Distinct("student.*").
			Joins("JOIN enrollment e ON e.studentId = student.id").
			Joins("JOIN course_teacher ct ON ct.courseId = e.courseId").
			Where("ct.teacherId = ?", scope.ReferenceID)
	default:
		return students, nil
	}

	if err := q.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// Update updates a student
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

// Delete deletes a student
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Student{}, id).Error
}

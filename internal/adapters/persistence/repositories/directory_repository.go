package repositories

import (
	"context"

	"schoolhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// teacherRepository implements TeacherRepository interface
type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

// Create creates a new teacher
func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

// List lists all teachers
func (r *teacherRepository) List(ctx context.Context) ([]*models.Teacher, error) {
	teachers := []*models.Teacher{}
	if err := r.db.WithContext(ctx).Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

// parentRepository implements ParentRepository interface
type parentRepository struct {
	db *gorm.DB
}

// NewParentRepository creates a new parent repository
func NewParentRepository(db *gorm.DB) ParentRepository {
	return &parentRepository{db: db}
}

// Create creates a new parent/guardian
func (r *parentRepository) Create(ctx context.Context, parent *models.ParentGuardian) error {
	return r.db.WithContext(ctx).Create(parent).Error
}

// List lists all parents/guardians
func (r *parentRepository) List(ctx context.Context) ([]*models.ParentGuardian, error) {
	parents := []*models.ParentGuardian{}
	if err := r.db.WithContext(ctx).Find(&parents).Error; err != nil {
		return nil, err
	}
	return parents, nil
}

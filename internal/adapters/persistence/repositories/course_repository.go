package repositories

import (
	"context"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/core/rbac"

	"gorm.io/gorm"
)

// courseRepository implements CourseRepository interface
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create creates a new course
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// List lists courses visible under the given scope
func (r *courseRepository) List(ctx context.Context, scope rbac.Scope) ([]*models.Course, error) {
	courses := []*models.Course{}

	q := r.db.WithContext(ctx).Model(&models.Course{})
	switch scope.Kind {
	case rbac.ScopeAll:
		// unrestricted
	case rbac.ScopeTeacher:
		q = q.Joins("JOIN course_teacher ct ON ct.courseId = course.id").
			Where("ct.teacherId = ?", scope.ReferenceID)
	case rbac.ScopeStudent:
		q = q.Joins("JOIN enrollment e ON e.courseId = course.id").
			Where("e.studentId = ?", scope.ReferenceID)
	default:
		return courses, nil
	}

	if err := q.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

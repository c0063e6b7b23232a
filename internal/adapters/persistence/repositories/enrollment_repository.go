package repositories

import (
	"context"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/core/rbac"

	"gorm.io/gorm"
)

// enrollmentRepository implements EnrollmentRepository interface
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Create creates a new enrollment
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

// List lists enrollments visible under the given scope, joined with
// student and course names
func (r *enrollmentRepository) List(ctx context.Context, scope rbac.Scope) ([]*models.EnrollmentRow, error) {
	rows := []*models.EnrollmentRow{}

	q := r.db.WithContext(ctx).Table("enrollment e").
		Select("e.id, e.studentId AS student_id, e.courseId AS course_id, e.enrollmentDate AS enrollment_date, " +
			"s.firstName AS student_first_name, s.lastName AS student_last_name, c.courseName AS course_name").
		Joins("JOIN student s ON e.studentId = s.id").
		Joins("JOIN course c ON e.courseId = c.id")

	switch scope.Kind {
	case rbac.ScopeAll:
		// unrestricted
	case rbac.ScopeTeacher:
		q = q.Joins("JOIN course_teacher ct ON ct.courseId = e.courseId").
			Where("ct.teacherId = ?", scope.ReferenceID)
	default:
		return rows, nil
	}

	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

package repositories

import (
	"context"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/core/rbac"

	"gorm.io/gorm"
)

// gradeRepository implements GradeRepository interface
type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

// Create creates a new grade
func (r *gradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

// List lists grades visible under the given scope, joined with student
// and course names. Parent visibility goes through parent_student.
func (r *gradeRepository) List(ctx context.Context, scope rbac.Scope) ([]*models.GradeRow, error) {
	rows := []*models.GradeRow{}

	q := r.db.WithContext(ctx).Table("grade g").
		Select("g.id, g.enrollmentId AS enrollment_id, g.gradeValue AS grade_value, " +
			"s.firstName AS student_first_name, s.lastName AS student_last_name, c.courseName AS course_name").
		Joins("JOIN enrollment e ON g.enrollmentId = e.id").
		Joins("JOIN student s ON e.studentId = s.id").
		Joins("JOIN course c ON e.courseId = c.id")

	switch scope.Kind {
	case rbac.ScopeAll:
		// unrestricted
	case rbac.ScopeTeacher:
		q = q.Joins("JOIN course_teacher ct ON ct.courseId = e.courseId").
			Where("ct.teacherId = ?", scope.ReferenceID)
	case rbac.ScopeStudent:
		q = q.Where("e.studentId = ?", scope.ReferenceID)
	case rbac.ScopeParent:
		q = q.Joins("JOIN parent_student ps ON ps.studentId = e.studentId").
			Where("ps.parentId = ?", scope.ReferenceID)
	default:
		return rows, nil
	}

	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

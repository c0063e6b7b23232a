package repositories

import (
	"context"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/core/rbac"

	"gorm.io/gorm"
)

// attendanceRepository implements AttendanceRepository interface
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create creates a new attendance record
func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

// List lists attendance records visible under the given scope, joined
// with student and course names
func (r *attendanceRepository) List(ctx context.Context, scope rbac.Scope) ([]*models.AttendanceRow, error) {
	rows := []*models.AttendanceRow{}

	q := r.db.WithContext(ctx).Table("attendance a").
		Select("a.id, a.enrollmentId AS enrollment_id, a.date, a.status, " +
			"s.firstName AS student_first_name, s.lastName AS student_last_name, c.courseName AS course_name").
		Joins("JOIN enrollment e ON a.enrollmentId = e.id").
		Joins("JOIN student s ON e.studentId = s.id").
		Joins("JOIN course c ON e.courseId = c.id")

	switch scope.Kind {
	case rbac.ScopeAll:
		// unrestricted
	case rbac.ScopeTeacher:
		q = q.Joins("JOIN course_teacher ct ON ct.courseId = e.courseId").
			Where("ct.teacherId = ?", scope.ReferenceID)
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

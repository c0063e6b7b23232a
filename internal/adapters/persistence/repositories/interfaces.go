package repositories

import (
	"context"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/core/rbac"
)

// UserRepository handles identity persistence
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CourseRepository handles course persistence
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context, scope rbac.Scope) ([]*models.Course, error)
}

// StudentRepository handles student persistence
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	List(ctx context.Context, scope rbac.Scope) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
}

// TeacherRepository handles teacher persistence
type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	List(ctx context.Context) ([]*models.Teacher, error)
}

// ParentRepository handles parent/guardian persistence
type ParentRepository interface {
	Create(ctx context.Context, parent *models.ParentGuardian) error
	List(ctx context.Context) ([]*models.ParentGuardian, error)
}

// EnrollmentRepository handles enrollment persistence
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	List(ctx context.Context, scope rbac.Scope) ([]*models.EnrollmentRow, error)
}

// GradeRepository handles grade persistence
type GradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) error
	List(ctx context.Context, scope rbac.Scope) ([]*models.GradeRow, error)
}

// AttendanceRepository handles attendance persistence
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	List(ctx context.Context, scope rbac.Scope) ([]*models.AttendanceRow, error)
}

// CourseTeacherRepository manages the course_teacher join table
type CourseTeacherRepository interface {
	Assign(ctx context.Context, link *models.CourseTeacher) error
	TeachersByCourse(ctx context.Context, courseID uint) ([]*models.Teacher, error)
}

// CourseExamBoardRepository manages the course_exam_board join table
type CourseExamBoardRepository interface {
	Assign(ctx context.Context, link *models.CourseExamBoard) error
	BoardsByCourse(ctx context.Context, courseID uint) ([]*models.ExamBoard, error)
}

// ParentStudentRepository manages the parent_student join table
type ParentStudentRepository interface {
	Link(ctx context.Context, link *models.ParentStudent) error
	StudentsByParent(ctx context.Context, parentID uint) ([]*models.Student, error)
}

// StaffRepository handles supporting staff persistence
type StaffRepository interface {
	Create(ctx context.Context, staff *models.SupportingStaff) error
	List(ctx context.Context) ([]*models.SupportingStaff, error)
}

// InvestorRepository handles investor persistence
type InvestorRepository interface {
	Create(ctx context.Context, investor *models.Investor) error
	List(ctx context.Context) ([]*models.Investor, error)
}

// ExamBoardRepository handles exam board persistence
type ExamBoardRepository interface {
	Create(ctx context.Context, board *models.ExamBoard) error
	List(ctx context.Context) ([]*models.ExamBoard, error)
}

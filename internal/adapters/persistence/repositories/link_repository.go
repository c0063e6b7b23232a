package repositories

import (
	"context"

	"schoolhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// courseTeacherRepository implements CourseTeacherRepository interface
type courseTeacherRepository struct {
	db *gorm.DB
}

// NewCourseTeacherRepository creates a new course-teacher repository
func NewCourseTeacherRepository(db *gorm.DB) CourseTeacherRepository {
	return &courseTeacherRepository{db: db}
}

// Assign assigns a teacher to a course
func (r *courseTeacherRepository) Assign(ctx context.Context, link *models.CourseTeacher) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// TeachersByCourse lists the teachers assigned to a course
func (r *courseTeacherRepository) TeachersByCourse(ctx context.Context, courseID uint) ([]*models.Teacher, error) {
	teachers := []*models.Teacher{}
	err := r.db.WithContext(ctx).Model(&models.Teacher{}).
		Joins("JOIN course_teacher ct ON ct.teacherId = teachers.id").
		Where("ct.courseId = ?", courseID).
		Find(&teachers).Error
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

// courseExamBoardRepository implements CourseExamBoardRepository interface
type courseExamBoardRepository struct {
	db *gorm.DB
}

// NewCourseExamBoardRepository creates a new course-exam-board repository
func NewCourseExamBoardRepository(db *gorm.DB) CourseExamBoardRepository {
	return &courseExamBoardRepository{db: db}
}

// Assign assigns an exam board to a course
func (r *courseExamBoardRepository) Assign(ctx context.Context, link *models.CourseExamBoard) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// BoardsByCourse lists the exam boards assigned to a course
func (r *courseExamBoardRepository) BoardsByCourse(ctx context.Context, courseID uint) ([]*models.ExamBoard, error) {
	boards := []*models.ExamBoard{}
	err := r.db.WithContext(ctx).Model(&models.ExamBoard{}).
		Joins("JOIN course_exam_board ceb ON ceb.examBoardId = exam_board.id").
		Where("ceb.courseId = ?", courseID).
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// parentStudentRepository implements ParentStudentRepository interface
type parentStudentRepository struct {
	db *gorm.DB
}

// NewParentStudentRepository creates a new parent-student repository
func NewParentStudentRepository(db *gorm.DB) ParentStudentRepository {
	return &parentStudentRepository{db: db}
}

// Link links a parent/guardian to a student
func (r *parentStudentRepository) Link(ctx context.Context, link *models.ParentStudent) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// StudentsByParent lists the students linked to a parent/guardian
func (r *parentStudentRepository) StudentsByParent(ctx context.Context, parentID uint) ([]*models.Student, error) {
	students := []*models.Student{}
	err := r.db.WithContext(ctx).Model(&models.Student{}).
		Joins("JOIN parent_student ps ON ps.studentId = student.id").
		Where("ps.parentId = ?", parentID).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

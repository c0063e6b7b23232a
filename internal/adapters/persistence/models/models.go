package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth Tables
// ============================================================

// User represents users table. ReferenceID points at the role-specific
// profile row (teachers/student/parent_guardian); it is a weak reference
// and is interpreted per role by the scope filter.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	Role        string    `gorm:"size:20;not null" json:"role"`
	ReferenceID *uint     `gorm:"column:reference_id" json:"reference_id,omitempty"`
	Email       string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Email:    u.Email,
	}
}

// Role represents roles table. The permission column is seed data kept
// for the external schema contract; enforcement uses the static table
// in the rbac package.
type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RoleName    string `gorm:"column:role_name;uniqueIndex;size:20;not null" json:"role_name"`
	Permissions string `gorm:"size:255;not null" json:"permissions"`
}

func (Role) TableName() string {
	return "roles"
}

// ============================================================
// Domain Tables
// ============================================================

// Course represents course table
type Course struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	CourseName        string `gorm:"column:courseName;size:100;not null" json:"courseName"`
	CourseDescription string `gorm:"column:courseDescription;type:text;not null" json:"courseDescription"`
	Credits           int    `gorm:"not null" json:"credits"`
}

func (Course) TableName() string {
	return "course"
}

// Teacher represents teachers table
type Teacher struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FirstName   string `gorm:"column:firstName;size:50;not null" json:"firstName"`
	LastName    string `gorm:"column:lastName;size:50;not null" json:"lastName"`
	Email       string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PhoneNumber int64  `gorm:"column:phoneNumber;uniqueIndex;not null" json:"phoneNumber"`
	Department  string `gorm:"size:100;not null" json:"department"`
}

func (Teacher) TableName() string {
	return "teachers"
}

// Student represents student table
type Student struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FirstName   string `gorm:"column:firstName;size:50;not null" json:"firstName"`
	LastName    string `gorm:"column:lastName;size:50;not null" json:"lastName"`
	Email       string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	DateOfBirth string `gorm:"column:dateOfBirth;size:20;not null" json:"dateOfBirth"`
	Address     string `gorm:"size:255;not null" json:"address"`
	PhoneNumber int64  `gorm:"column:phoneNumber;uniqueIndex;not null" json:"phoneNumber"`
}

func (Student) TableName() string {
	return "student"
}

// ParentGuardian represents parent_guardian table
type ParentGuardian struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	FirstName         string `gorm:"column:firstName;size:50;not null" json:"firstName"`
	LastName          string `gorm:"column:lastName;size:50;not null" json:"lastName"`
	Email             string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PhoneNumber       int64  `gorm:"column:phoneNumber;uniqueIndex;not null" json:"phoneNumber"`
	RelationToStudent string `gorm:"column:relationToStudent;size:50;not null" json:"relationToStudent"`
}

func (ParentGuardian) TableName() string {
	return "parent_guardian"
}

// Enrollment represents enrollment table
type Enrollment struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	StudentID      uint   `gorm:"column:studentId;not null;index" json:"studentId"`
	CourseID       uint   `gorm:"column:courseId;not null;index" json:"courseId"`
	EnrollmentDate string `gorm:"column:enrollmentDate;type:date;not null" json:"enrollmentDate"`
}

func (Enrollment) TableName() string {
	return "enrollment"
}

// Grade represents grade table
type Grade struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	EnrollmentID uint   `gorm:"column:enrollmentId;not null;index" json:"enrollmentId"`
	GradeValue   string `gorm:"column:gradeValue;size:10;not null" json:"gradeValue"`
}

func (Grade) TableName() string {
	return "grade"
}

// Attendance represents attendance table
type Attendance struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	EnrollmentID uint   `gorm:"column:enrollmentId;not null;index" json:"enrollmentId"`
	Date         string `gorm:"type:date;not null" json:"date"`
	Status       string `gorm:"size:20;not null" json:"status"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// SupportingStaff represents supporting_staff table
type SupportingStaff struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FirstName  string `gorm:"column:firstName;size:50;not null" json:"firstName"`
	LastName   string `gorm:"column:lastName;size:50;not null" json:"lastName"`
	Role       string `gorm:"size:50;not null" json:"role"`
	Department string `gorm:"size:100;not null" json:"department"`
	Email      string `gorm:"uniqueIndex;size:100;not null" json:"email"`
}

func (SupportingStaff) TableName() string {
	return "supporting_staff"
}

// Investor represents investor table
type Investor struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	FirstName         string `gorm:"column:firstName;size:50;not null" json:"firstName"`
	LastName          string `gorm:"column:lastName;size:50;not null" json:"lastName"`
	Email             string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PhoneNumber       int64  `gorm:"column:phoneNumber;uniqueIndex;not null" json:"phoneNumber"`
	InvestmentDetails string `gorm:"column:investmentDetails;type:text;not null" json:"investmentDetails"`
}

func (Investor) TableName() string {
	return "investor"
}

// ExamBoard represents exam_board table
type ExamBoard struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	BoardName      string `gorm:"column:boardName;size:100;not null" json:"boardName"`
	ContactDetails string `gorm:"column:contactDetails;type:text;not null" json:"contactDetails"`
}

func (ExamBoard) TableName() string {
	return "exam_board"
}

// ============================================================
// Join Tables
// ============================================================

// CourseTeacher represents course_teacher table
type CourseTeacher struct {
	CourseID  uint `gorm:"column:courseId;primaryKey" json:"courseId"`
	TeacherID uint `gorm:"column:teacherId;primaryKey" json:"teacherId"`
}

func (CourseTeacher) TableName() string {
	return "course_teacher"
}

// CourseExamBoard represents course_exam_board table
type CourseExamBoard struct {
	CourseID    uint `gorm:"column:courseId;primaryKey" json:"courseId"`
	ExamBoardID uint `gorm:"column:examBoardId;primaryKey" json:"examBoardId"`
}

func (CourseExamBoard) TableName() string {
	return "course_exam_board"
}

// ParentStudent represents parent_student table: the explicit
// parent→student linkage that parent row scoping joins through.
type ParentStudent struct {
	ParentID  uint `gorm:"column:parentId;primaryKey" json:"parentId"`
	StudentID uint `gorm:"column:studentId;primaryKey" json:"studentId"`
}

func (ParentStudent) TableName() string {
	return "parent_student"
}

// ============================================================
// Joined Row DTOs
// ============================================================

// EnrollmentRow is an enrollment row with joined student and course names
type EnrollmentRow struct {
	ID               uint   `json:"id"`
	StudentID        uint   `json:"studentId"`
	CourseID         uint   `json:"courseId"`
	EnrollmentDate   string `json:"enrollmentDate"`
	StudentFirstName string `json:"studentFirstName"`
	StudentLastName  string `json:"studentLastName"`
	CourseName       string `json:"courseName"`
}

// GradeRow is a grade row with joined student and course names
type GradeRow struct {
	ID               uint   `json:"id"`
	EnrollmentID     uint   `json:"enrollmentId"`
	GradeValue       string `json:"gradeValue"`
	StudentFirstName string `json:"studentFirstName"`
	StudentLastName  string `json:"studentLastName"`
	CourseName       string `json:"courseName"`
}

// AttendanceRow is an attendance row with joined student and course names
type AttendanceRow struct {
	ID               uint   `json:"id"`
	EnrollmentID     uint   `json:"enrollmentId"`
	Date             string `json:"date"`
	Status           string `json:"status"`
	StudentFirstName string `json:"studentFirstName"`
	StudentLastName  string `json:"studentLastName"`
	CourseName       string `json:"courseName"`
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Role{},
		&Course{},
		&Teacher{},
		&Student{},
		&ParentGuardian{},
		&Enrollment{},
		&Grade{},
		&Attendance{},
		&SupportingStaff{},
		&Investor{},
		&ExamBoard{},
		&CourseTeacher{},
		&CourseExamBoard{},
		&ParentStudent{},
	)
}

package rbac

import (
	"schoolhub/internal/core/domain"
)

// Roles known to the system. The roles table carries the same names as
// seed data; enforcement happens against the static table below.
const (
	RoleAdmin    = "admin"
	RoleTeacher  = "teacher"
	RoleStudent  = "student"
	RoleParent   = "parent"
	RoleStaff    = "staff"
	RoleInvestor = "investor"
)

// IsValidRole reports whether role is one of the known role names.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent, RoleStaff, RoleInvestor:
		return true
	}
	return false
}

// Action is what a request wants to do with a resource.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Resource names match the API surface.
type Resource string

const (
	ResourceCourses          Resource = "courses"
	ResourceStudents         Resource = "students"
	ResourceTeachers         Resource = "teachers"
	ResourceParents          Resource = "parents"
	ResourceEnrollments      Resource = "enrollments"
	ResourceGrades           Resource = "grades"
	ResourceAttendance       Resource = "attendance"
	ResourceCourseTeachers   Resource = "course-teachers"
	ResourceCourseExamBoards Resource = "course-exam-boards"
	ResourceParentStudents   Resource = "parent-students"
	ResourceSupportingStaff  Resource = "supporting-staff"
	ResourceInvestors        Resource = "investors"
	ResourceExamBoards       Resource = "exam-boards"
)

// permissions is the static resource × action → allowed roles table.
// Anything not listed here is denied.
var permissions = map[Resource]map[Action][]string{
	ResourceCourses: {
		ActionRead:  {RoleAdmin, RoleTeacher, RoleStudent},
		ActionWrite: {RoleAdmin},
	},
	ResourceStudents: {
		ActionRead:  {RoleAdmin, RoleTeacher},
		ActionWrite: {RoleAdmin},
	},
	ResourceTeachers: {
		ActionRead:  {RoleAdmin},
		ActionWrite: {RoleAdmin},
	},
	ResourceParents: {
		ActionRead:  {RoleAdmin},
		ActionWrite: {RoleAdmin},
	},
	ResourceEnrollments: {
		ActionRead:  {RoleAdmin, RoleTeacher},
		ActionWrite: {RoleAdmin},
	},
	ResourceGrades: {
		ActionRead:  {RoleAdmin, RoleTeacher, RoleStudent, RoleParent},
		ActionWrite: {RoleAdmin, RoleTeacher},
	},
	ResourceAttendance: {
		ActionRead:  {RoleAdmin, RoleTeacher, RoleParent},
		ActionWrite: {RoleAdmin, RoleTeacher},
	},
	ResourceCourseTeachers: {
		ActionRead:  {RoleAdmin},
		ActionWrite: {RoleAdmin},
	},
	ResourceCourseExamBoards: {
		ActionRead:  {RoleAdmin},
		ActionWrite: {RoleAdmin},
	},
	ResourceParentStudents: {
		ActionRead:  {RoleAdmin},
		ActionWrite: {RoleAdmin},
	},
	ResourceSupportingStaff: {
		ActionRead:  {RoleAdmin},
		ActionWrite: {RoleAdmin},
	},
	ResourceInvestors: {
		ActionRead:  {RoleAdmin},
		ActionWrite: {RoleAdmin},
	},
	ResourceExamBoards: {
		ActionRead:  {RoleAdmin},
		ActionWrite: {RoleAdmin},
	},
}

// Authorize checks whether role may perform action on resource.
// Unknown resource or action pairs are denied.
func Authorize(role string, resource Resource, action Action) error {
	actions, ok := permissions[resource]
	if !ok {
		return domain.ErrPermissionDenied
	}
	allowed, ok := actions[action]
	if !ok {
		return domain.ErrPermissionDenied
	}
	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return domain.ErrPermissionDenied
}

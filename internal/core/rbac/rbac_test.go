package rbac

import (
	"testing"

	"schoolhub/internal/core/domain"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		resource Resource
		action   Action
		allowed  bool
	}{
		{"admin reads courses", RoleAdmin, ResourceCourses, ActionRead, true},
		{"admin writes courses", RoleAdmin, ResourceCourses, ActionWrite, true},
		{"teacher reads courses", RoleTeacher, ResourceCourses, ActionRead, true},
		{"teacher cannot write courses", RoleTeacher, ResourceCourses, ActionWrite, false},
		{"student reads courses", RoleStudent, ResourceCourses, ActionRead, true},
		{"student cannot write courses", RoleStudent, ResourceCourses, ActionWrite, false},
		{"parent cannot read courses", RoleParent, ResourceCourses, ActionRead, false},

		{"teacher reads students", RoleTeacher, ResourceStudents, ActionRead, true},
		{"student cannot read students", RoleStudent, ResourceStudents, ActionRead, false},
		{"teacher cannot write students", RoleTeacher, ResourceStudents, ActionWrite, false},

		{"parent reads grades", RoleParent, ResourceGrades, ActionRead, true},
		{"teacher writes grades", RoleTeacher, ResourceGrades, ActionWrite, true},
		{"student cannot write grades", RoleStudent, ResourceGrades, ActionWrite, false},

		{"parent reads attendance", RoleParent, ResourceAttendance, ActionRead, true},
		{"student cannot read attendance", RoleStudent, ResourceAttendance, ActionRead, false},

		{"teacher cannot read teachers", RoleTeacher, ResourceTeachers, ActionRead, false},
		{"only admin reads enrollments besides teacher", RoleParent, ResourceEnrollments, ActionRead, false},
		{"teacher reads enrollments", RoleTeacher, ResourceEnrollments, ActionRead, true},

		{"investor denied everywhere", RoleInvestor, ResourceGrades, ActionRead, false},
		{"staff denied on admin tables", RoleStaff, ResourceInvestors, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.role, tt.resource, tt.action)
			if tt.allowed && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tt.allowed && err != domain.ErrPermissionDenied {
				t.Errorf("expected ErrPermissionDenied, got %v", err)
			}
		})
	}
}

func TestAuthorizeFailsClosed(t *testing.T) {
	if err := Authorize(RoleAdmin, Resource("unknown"), ActionRead); err != domain.ErrPermissionDenied {
		t.Errorf("unknown resource: expected ErrPermissionDenied, got %v", err)
	}
	if err := Authorize(RoleAdmin, ResourceCourses, Action("delete")); err != domain.ErrPermissionDenied {
		t.Errorf("unknown action: expected ErrPermissionDenied, got %v", err)
	}
	if err := Authorize("superuser", ResourceCourses, ActionRead); err != domain.ErrPermissionDenied {
		t.Errorf("unknown role: expected ErrPermissionDenied, got %v", err)
	}
	if err := Authorize("", ResourceCourses, ActionRead); err != domain.ErrPermissionDenied {
		t.Errorf("empty role: expected ErrPermissionDenied, got %v", err)
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleTeacher, RoleStudent, RoleParent, RoleStaff, RoleInvestor} {
		if !IsValidRole(role) {
			t.Errorf("expected %q to be valid", role)
		}
	}
	for _, role := range []string{"", "Admin", "ADMIN", "superuser"} {
		if IsValidRole(role) {
			t.Errorf("expected %q to be invalid", role)
		}
	}
}

func TestScopeFor(t *testing.T) {
	ref := uint(7)

	if s := ScopeFor(RoleAdmin, nil); s.Kind != ScopeAll {
		t.Errorf("admin: expected ScopeAll, got %v", s.Kind)
	}

	if s := ScopeFor(RoleTeacher, &ref); s.Kind != ScopeTeacher || s.ReferenceID != 7 {
		t.Errorf("teacher: expected ScopeTeacher ref 7, got %+v", s)
	}
	if s := ScopeFor(RoleStudent, &ref); s.Kind != ScopeStudent || s.ReferenceID != 7 {
		t.Errorf("student: expected ScopeStudent ref 7, got %+v", s)
	}
	if s := ScopeFor(RoleParent, &ref); s.Kind != ScopeParent || s.ReferenceID != 7 {
		t.Errorf("parent: expected ScopeParent ref 7, got %+v", s)
	}

	// A scoped role without a profile reference must see nothing
	for _, role := range []string{RoleTeacher, RoleStudent, RoleParent} {
		if s := ScopeFor(role, nil); s.Kind != ScopeNone {
			t.Errorf("%s with nil reference: expected ScopeNone, got %v", role, s.Kind)
		}
	}

	// Roles with no row scope of their own
	if s := ScopeFor(RoleStaff, &ref); s.Kind != ScopeNone {
		t.Errorf("staff: expected ScopeNone, got %v", s.Kind)
	}
	if s := ScopeFor(RoleInvestor, &ref); s.Kind != ScopeNone {
		t.Errorf("investor: expected ScopeNone, got %v", s.Kind)
	}
	if s := ScopeFor("unknown", &ref); s.Kind != ScopeNone {
		t.Errorf("unknown role: expected ScopeNone, got %v", s.Kind)
	}
}

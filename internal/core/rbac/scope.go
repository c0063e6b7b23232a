package rbac

// ScopeKind selects how repositories restrict row visibility.
type ScopeKind int

const (
	ScopeNone    ScopeKind = iota // matches nothing
	ScopeAll                      // unrestricted
	ScopeTeacher                  // rows joined through course_teacher
	ScopeStudent                  // rows joined through enrollment
	ScopeParent                   // rows joined through parent_student
)

// Scope is the row-level predicate computed for a request. Repositories
// translate it into joins against the reference tables.
type Scope struct {
	Kind        ScopeKind
	ReferenceID uint
}

// ScopeFor derives the row scope for a role and its profile reference.
// A scoped role with no reference id gets ScopeNone: a dangling or
// missing reference must never widen visibility.
func ScopeFor(role string, referenceID *uint) Scope {
	switch role {
	case RoleAdmin:
		return Scope{Kind: ScopeAll}
	case RoleTeacher:
		if referenceID == nil {
			return Scope{Kind: ScopeNone}
		}
		return Scope{Kind: ScopeTeacher, ReferenceID: *referenceID}
	case RoleStudent:
		if referenceID == nil {
			return Scope{Kind: ScopeNone}
		}
		return Scope{Kind: ScopeStudent, ReferenceID: *referenceID}
	case RoleParent:
		if referenceID == nil {
			return Scope{Kind: ScopeNone}
		}
		return Scope{Kind: ScopeParent, ReferenceID: *referenceID}
	}
	return Scope{Kind: ScopeNone}
}

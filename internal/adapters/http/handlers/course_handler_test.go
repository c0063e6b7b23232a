package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"schoolhub/internal/adapters/persistence/models"
)

func authedRequest(method, target, token string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeCourses(t *testing.T, resp *http.Response) []models.Course {
	t.Helper()
	var courses []models.Course
	if err := json.NewDecoder(resp.Body).Decode(&courses); err != nil {
		t.Fatalf("failed to decode course list: %v", err)
	}
	return courses
}

func TestCourseListRequiresToken(t *testing.T) {
	app := newTestApp(newFakeUserRepo(), newFakeCourseRepo(), newFakeGradeRepo())

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/courses", "", ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestCourseListRejectsGarbageToken(t *testing.T) {
	app := newTestApp(newFakeUserRepo(), newFakeCourseRepo(), newFakeGradeRepo())

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/courses", "not-a-token", ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAdminSeesAllCourses(t *testing.T) {
	users := newFakeUserRepo()
	courses := newFakeCourseRepo()
	app := newTestApp(users, courses, newFakeGradeRepo())

	courses.courses = []*models.Course{
		{ID: 1, CourseName: "Mathematics", CourseDescription: "Algebra and calculus", Credits: 4},
		{ID: 2, CourseName: "History", CourseDescription: "World history", Credits: 3},
	}
	courses.nextID = 3

	_, adminToken := seedUser(users, "admin1", "admin", nil)

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/courses", adminToken, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := decodeCourses(t, resp); len(got) != 2 {
		t.Errorf("expected 2 courses, got %d", len(got))
	}
}

func TestTeacherSeesOnlyAssignedCourses(t *testing.T) {
	users := newFakeUserRepo()
	courses := newFakeCourseRepo()
	app := newTestApp(users, courses, newFakeGradeRepo())

	courses.courses = []*models.Course{
		{ID: 1, CourseName: "Mathematics", CourseDescription: "Algebra and calculus", Credits: 4},
		{ID: 2, CourseName: "History", CourseDescription: "World history", Credits: 3},
	}
	courses.nextID = 3
	courses.teacherCourses[7] = []uint{2}

	teacherRef := uint(7)
	_, teacherToken := seedUser(users, "somchai", "teacher", &teacherRef)

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/courses", teacherToken, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	got := decodeCourses(t, resp)
	if len(got) != 1 || got[0].CourseName != "History" {
		t.Errorf("expected only the assigned History course, got %+v", got)
	}
}

// A scoped role without a profile reference must get an empty list,
// never everything
func TestTeacherWithoutReferenceSeesNothing(t *testing.T) {
	users := newFakeUserRepo()
	courses := newFakeCourseRepo()
	app := newTestApp(users, courses, newFakeGradeRepo())

	courses.courses = []*models.Course{
		{ID: 1, CourseName: "Mathematics", CourseDescription: "Algebra and calculus", Credits: 4},
	}
	courses.nextID = 2

	_, teacherToken := seedUser(users, "somchai", "teacher", nil)

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/courses", teacherToken, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := decodeCourses(t, resp); len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}
}

func TestStudentCannotCreateCourse(t *testing.T) {
	users := newFakeUserRepo()
	app := newTestApp(users, newFakeCourseRepo(), newFakeGradeRepo())

	studentRef := uint(1)
	_, studentToken := seedUser(users, "malee", "student", &studentRef)

	body := `{"courseName":"Physics","courseDescription":"Mechanics","credits":3}`
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/courses", studentToken, body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", resp.StatusCode)
	}
}

func TestAdminCreatesCourse(t *testing.T) {
	users := newFakeUserRepo()
	courses := newFakeCourseRepo()
	app := newTestApp(users, courses, newFakeGradeRepo())

	_, adminToken := seedUser(users, "admin1", "admin", nil)

	body := `{"courseName":"Physics","courseDescription":"Mechanics","credits":3}`
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/courses", adminToken, body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created models.Course
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode created course: %v", err)
	}
	if created.ID == 0 || created.CourseName != "Physics" {
		t.Errorf("unexpected created course: %+v", created)
	}
	if len(courses.courses) != 1 {
		t.Errorf("expected course to be persisted, have %d", len(courses.courses))
	}
}

func TestCreateCourseValidation(t *testing.T) {
	users := newFakeUserRepo()
	app := newTestApp(users, newFakeCourseRepo(), newFakeGradeRepo())

	_, adminToken := seedUser(users, "admin1", "admin", nil)

	resp, err := app.Test(authedRequest(http.MethodPost, "/api/courses", adminToken, `{"credits":3}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

// A role change must take effect on the next request even though the
// old token is still cryptographically valid
func TestRoleChangeTakesEffectImmediately(t *testing.T) {
	users := newFakeUserRepo()
	courses := newFakeCourseRepo()
	app := newTestApp(users, courses, newFakeGradeRepo())

	teacherRef := uint(7)
	user, teacherToken := seedUser(users, "somchai", "teacher", &teacherRef)

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/courses", teacherToken, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 before role change, got %d", resp.StatusCode)
	}

	// Demote the stored identity; the token still says teacher
	users.users[user.ID].Role = "investor"

	resp, err = app.Test(authedRequest(http.MethodGet, "/api/courses", teacherToken, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 after role change, got %d", resp.StatusCode)
	}
}

func TestDeletedUserTokenRejected(t *testing.T) {
	users := newFakeUserRepo()
	app := newTestApp(users, newFakeCourseRepo(), newFakeGradeRepo())

	user, userToken := seedUser(users, "somchai", "admin", nil)
	delete(users.users, user.ID)

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/courses", userToken, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for deleted identity, got %d", resp.StatusCode)
	}
}

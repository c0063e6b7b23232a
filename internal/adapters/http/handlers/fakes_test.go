package handlers

import (
	"context"

	"schoolhub/internal/adapters/http/middleware"
	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/config"
	"schoolhub/internal/core/rbac"
	"schoolhub/internal/core/services"
	"schoolhub/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: testSecret},
	}
}

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeCourseRepo is an in-memory CourseRepository. Teacher and student
// visibility is driven by the assignment maps, mirroring the join-based
// filters of the real repository.
type fakeCourseRepo struct {
	courses        []*models.Course
	teacherCourses map[uint][]uint // teacherID -> courseIDs
	studentCourses map[uint][]uint // studentID -> courseIDs
	nextID         uint
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		teacherCourses: make(map[uint][]uint),
		studentCourses: make(map[uint][]uint),
		nextID:         1,
	}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = r.nextID
	r.nextID++
	r.courses = append(r.courses, course)
	return nil
}

func (r *fakeCourseRepo) List(_ context.Context, scope rbac.Scope) ([]*models.Course, error) {
	switch scope.Kind {
	case rbac.ScopeAll:
		return r.courses, nil
	case rbac.ScopeTeacher:
		return r.filter(r.teacherCourses[scope.ReferenceID]), nil
	case rbac.ScopeStudent:
		return r.filter(r.studentCourses[scope.ReferenceID]), nil
	}
	return []*models.Course{}, nil
}

func (r *fakeCourseRepo) filter(ids []uint) []*models.Course {
	visible := []*models.Course{}
	for _, course := range r.courses {
		for _, id := range ids {
			if course.ID == id {
				visible = append(visible, course)
			}
		}
	}
	return visible
}

// fakeGradeRepo is an in-memory GradeRepository with pre-computed
// visibility per scope
type fakeGradeRepo struct {
	all    []*models.GradeRow
	scoped map[rbac.ScopeKind]map[uint][]*models.GradeRow
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{
		scoped: map[rbac.ScopeKind]map[uint][]*models.GradeRow{
			rbac.ScopeTeacher: {},
			rbac.ScopeStudent: {},
			rbac.ScopeParent:  {},
		},
	}
}

func (r *fakeGradeRepo) Create(_ context.Context, grade *models.Grade) error {
	grade.ID = uint(len(r.all) + 1)
	return nil
}

func (r *fakeGradeRepo) List(_ context.Context, scope rbac.Scope) ([]*models.GradeRow, error) {
	switch scope.Kind {
	case rbac.ScopeAll:
		return r.all, nil
	case rbac.ScopeTeacher, rbac.ScopeStudent, rbac.ScopeParent:
		if rows, ok := r.scoped[scope.Kind][scope.ReferenceID]; ok {
			return rows, nil
		}
	}
	return []*models.GradeRow{}, nil
}

// seedUser stores an identity and returns it with a valid session token
func seedUser(users *fakeUserRepo, username, role string, referenceID *uint) (*models.User, string) {
	user := &models.User{
		Username:    username,
		Password:    "irrelevant-for-token-auth",
		Role:        role,
		ReferenceID: referenceID,
		Email:       username + "@school.local",
	}
	_ = users.Create(context.Background(), user)
	signed, err := token.Issue(user.ID, username, role, testSecret)
	if err != nil {
		panic(err)
	}
	return user, signed
}

// newTestApp wires the auth pipeline and a subset of routes against
// fake repositories
func newTestApp(users *fakeUserRepo, courses *fakeCourseRepo, grades *fakeGradeRepo) *fiber.App {
	cfg := testConfig()
	app := fiber.New()

	authService := services.NewAuthService(users, cfg)
	authHandler := NewAuthHandler(authService)
	courseHandler := NewCourseHandler(courses)
	gradeHandler := NewGradeHandler(grades)

	api := app.Group("/api")
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/me", middleware.AuthMiddleware(cfg, users), authHandler.Me)

	protected := api.Group("", middleware.AuthMiddleware(cfg, users))
	protected.Get("/courses",
		middleware.RequireResource(rbac.ResourceCourses, rbac.ActionRead), courseHandler.List)
	protected.Post("/courses",
		middleware.RequireResource(rbac.ResourceCourses, rbac.ActionWrite), courseHandler.Create)
	protected.Get("/grades",
		middleware.RequireResource(rbac.ResourceGrades, rbac.ActionRead), gradeHandler.List)

	return app
}

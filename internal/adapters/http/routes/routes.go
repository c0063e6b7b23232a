package routes

import (
	"schoolhub/internal/adapters/http/handlers"
	"schoolhub/internal/adapters/http/middleware"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/config"
	"schoolhub/internal/core/rbac"
	"schoolhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	teacherRepo := repositories.NewTeacherRepository(db)
	parentRepo := repositories.NewParentRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)
	gradeRepo := repositories.NewGradeRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	courseTeacherRepo := repositories.NewCourseTeacherRepository(db)
	courseExamBoardRepo := repositories.NewCourseExamBoardRepository(db)
	parentStudentRepo := repositories.NewParentStudentRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	investorRepo := repositories.NewInvestorRepository(db)
	examBoardRepo := repositories.NewExamBoardRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	authHandler := handlers.NewAuthHandler(authService)
	courseHandler := handlers.NewCourseHandler(courseRepo)
	studentHandler := handlers.NewStudentHandler(studentRepo)
	directoryHandler := handlers.NewDirectoryHandler(teacherRepo, parentRepo)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentRepo)
	gradeHandler := handlers.NewGradeHandler(gradeRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo)
	linkHandler := handlers.NewLinkHandler(courseTeacherRepo, courseExamBoardRepo, parentStudentRepo)
	masterHandler := handlers.NewMasterHandler(staffRepo, investorRepo, examBoardRepo)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")

	// Auth routes (public, stricter rate limit)
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg, userRepo), authHandler.Me)

	// Protected routes: token verification + identity resolution, then
	// per-route authorization and scoping
	protected := api.Group("", middleware.AuthMiddleware(cfg, userRepo))

	protected.Get("/courses",
		middleware.RequireResource(rbac.ResourceCourses, rbac.ActionRead), courseHandler.List)
	protected.Post("/courses",
		middleware.RequireResource(rbac.ResourceCourses, rbac.ActionWrite), courseHandler.Create)

	protected.Get("/students",
		middleware.RequireResource(rbac.ResourceStudents, rbac.ActionRead), studentHandler.List)
	protected.Post("/students",
		middleware.RequireResource(rbac.ResourceStudents, rbac.ActionWrite), studentHandler.Create)
	protected.Put("/students/:id",
		middleware.RequireResource(rbac.ResourceStudents, rbac.ActionWrite), studentHandler.Update)
	protected.Delete("/students/:id",
		middleware.RequireResource(rbac.ResourceStudents, rbac.ActionWrite), studentHandler.Delete)

	protected.Get("/teachers",
		middleware.RequireResource(rbac.ResourceTeachers, rbac.ActionRead), directoryHandler.ListTeachers)
	protected.Post("/teachers",
		middleware.RequireResource(rbac.ResourceTeachers, rbac.ActionWrite), directoryHandler.CreateTeacher)

	protected.Get("/parents",
		middleware.RequireResource(rbac.ResourceParents, rbac.ActionRead), directoryHandler.ListParents)
	protected.Post("/parents",
		middleware.RequireResource(rbac.ResourceParents, rbac.ActionWrite), directoryHandler.CreateParent)

	protected.Get("/enrollments",
		middleware.RequireResource(rbac.ResourceEnrollments, rbac.ActionRead), enrollmentHandler.List)
	protected.Post("/enrollments",
		middleware.RequireResource(rbac.ResourceEnrollments, rbac.ActionWrite), enrollmentHandler.Create)

	protected.Get("/grades",
		middleware.RequireResource(rbac.ResourceGrades, rbac.ActionRead), gradeHandler.List)
	protected.Post("/grades",
		middleware.RequireResource(rbac.ResourceGrades, rbac.ActionWrite), gradeHandler.Create)

	protected.Get("/attendance",
		middleware.RequireResource(rbac.ResourceAttendance, rbac.ActionRead), attendanceHandler.List)
	protected.Post("/attendance",
		middleware.RequireResource(rbac.ResourceAttendance, rbac.ActionWrite), attendanceHandler.Create)

	protected.Get("/course-teachers/:courseId",
		middleware.RequireResource(rbac.ResourceCourseTeachers, rbac.ActionRead), linkHandler.TeachersByCourse)
	protected.Post("/course-teachers",
		middleware.RequireResource(rbac.ResourceCourseTeachers, rbac.ActionWrite), linkHandler.AssignTeacher)

	protected.Get("/course-exam-boards/:courseId",
		middleware.RequireResource(rbac.ResourceCourseExamBoards, rbac.ActionRead), linkHandler.BoardsByCourse)
	protected.Post("/course-exam-boards",
		middleware.RequireResource(rbac.ResourceCourseExamBoards, rbac.ActionWrite), linkHandler.AssignExamBoard)

	protected.Get("/parent-students/:parentId",
		middleware.RequireResource(rbac.ResourceParentStudents, rbac.ActionRead), linkHandler.StudentsByParent)
	protected.Post("/parent-students",
		middleware.RequireResource(rbac.ResourceParentStudents, rbac.ActionWrite), linkHandler.LinkParentStudent)

	protected.Get("/supporting-staff",
		middleware.RequireResource(rbac.ResourceSupportingStaff, rbac.ActionRead), masterHandler.ListStaff)
	protected.Post("/supporting-staff",
		middleware.RequireResource(rbac.ResourceSupportingStaff, rbac.ActionWrite), masterHandler.CreateStaff)

	protected.Get("/investors",
		middleware.RequireResource(rbac.ResourceInvestors, rbac.ActionRead), masterHandler.ListInvestors)
	protected.Post("/investors",
		middleware.RequireResource(rbac.ResourceInvestors, rbac.ActionWrite), masterHandler.CreateInvestor)

	protected.Get("/exam-boards",
		middleware.RequireResource(rbac.ResourceExamBoards, rbac.ActionRead), masterHandler.ListExamBoards)
	protected.Post("/exam-boards",
		middleware.RequireResource(rbac.ResourceExamBoards, rbac.ActionWrite), masterHandler.CreateExamBoard)
}

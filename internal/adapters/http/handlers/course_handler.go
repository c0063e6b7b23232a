package handlers

import (
	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler handles course endpoints
type CourseHandler struct {
	courseRepo repositories.CourseRepository
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseRepo repositories.CourseRepository) *CourseHandler {
	return &CourseHandler{courseRepo: courseRepo}
}

// List lists the courses visible to the caller
// @Summary List courses
// @Description Admin sees all courses; teachers and students see only their own
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /courses [get]
func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.courseRepo.List(c.Context(), currentScope(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list courses")
	}
	return response.OK(c, courses)
}

// CreateCourseRequest represents create course request
type CreateCourseRequest struct {
	CourseName        string `json:"courseName"`
	CourseDescription string `json:"courseDescription"`
	Credits           int    `json:"credits"`
}

// Create creates a new course
// @Summary Create course
// @Description Create a new course (Admin only)
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCourseRequest true "Course data"
// @Success 201 {object} models.Course
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /courses [post]
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CourseName == "" || req.CourseDescription == "" {
		return response.BadRequest(c, "Course name and description are required")
	}

	course := &models.Course{
		CourseName:        req.CourseName,
		CourseDescription: req.CourseDescription,
		Credits:           req.Credits,
	}

	if err := h.courseRepo.Create(c.Context(), course); err != nil {
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, course)
}

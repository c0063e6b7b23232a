package handlers

import (
	"time"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentHandler handles enrollment endpoints
type EnrollmentHandler struct {
	enrollmentRepo repositories.EnrollmentRepository
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(enrollmentRepo repositories.EnrollmentRepository) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentRepo: enrollmentRepo}
}

// List lists the enrollments visible to the caller
// @Summary List enrollments
// @Description Admin sees all enrollments; teachers see enrollments in their courses
// @Tags Enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.EnrollmentRow
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	rows, err := h.enrollmentRepo.List(c.Context(), currentScope(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list enrollments")
	}
	return response.OK(c, rows)
}

// CreateEnrollmentRequest represents create enrollment request
type CreateEnrollmentRequest struct {
	StudentID uint `json:"studentId"`
	CourseID  uint `json:"courseId"`
}

// Create creates a new enrollment. The enrollment date is set
// server-side to today.
// @Summary Create enrollment
// @Description Enroll a student in a course (Admin only)
// @Tags Enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEnrollmentRequest true "Enrollment data"
// @Success 201 {object} models.Enrollment
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	var req CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.StudentID == 0 || req.CourseID == 0 {
		return response.BadRequest(c, "Student ID and course ID are required")
	}

	enrollment := &models.Enrollment{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		EnrollmentDate: time.Now().Format("2006-01-02"),
	}

	if err := h.enrollmentRepo.Create(c.Context(), enrollment); err != nil {
		return response.InternalServerError(c, "Failed to create enrollment")
	}

	return response.Created(c, enrollment)
}

package handlers

import (
	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GradeHandler handles grade endpoints
type GradeHandler struct {
	gradeRepo repositories.GradeRepository
}

// NewGradeHandler creates a new grade handler
func NewGradeHandler(gradeRepo repositories.GradeRepository) *GradeHandler {
	return &GradeHandler{gradeRepo: gradeRepo}
}

// List lists the grades visible to the caller
// @Summary List grades
// @Description Grades scoped by role: teachers via their courses, students via their enrollments, parents via linked students
// @Tags Grades
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.GradeRow
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /grades [get]
func (h *GradeHandler) List(c *fiber.Ctx) error {
	rows, err := h.gradeRepo.List(c.Context(), currentScope(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list grades")
	}
	return response.OK(c, rows)
}

// CreateGradeRequest represents create grade request
type CreateGradeRequest struct {
	EnrollmentID uint   `json:"enrollmentId"`
	GradeValue   string `json:"gradeValue"`
}

// Create creates a new grade
// @Summary Create grade
// @Description Record a grade for an enrollment (Admin/Teacher)
// @Tags Grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateGradeRequest true "Grade data"
// @Success 201 {object} models.Grade
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /grades [post]
func (h *GradeHandler) Create(c *fiber.Ctx) error {
	var req CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.EnrollmentID == 0 || req.GradeValue == "" {
		return response.BadRequest(c, "Enrollment ID and grade value are required")
	}

	grade := &models.Grade{
		EnrollmentID: req.EnrollmentID,
		GradeValue:   req.GradeValue,
	}

	if err := h.gradeRepo.Create(c.Context(), grade); err != nil {
		return response.InternalServerError(c, "Failed to create grade")
	}

	return response.Created(c, grade)
}

package handlers

import (
	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DirectoryHandler handles teacher and parent/guardian endpoints
type DirectoryHandler struct {
	teacherRepo repositories.TeacherRepository
	parentRepo  repositories.ParentRepository
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(
	teacherRepo repositories.TeacherRepository,
	parentRepo repositories.ParentRepository,
) *DirectoryHandler {
	return &DirectoryHandler{
		teacherRepo: teacherRepo,
		parentRepo:  parentRepo,
	}
}

// TeacherRequest represents create teacher request
type TeacherRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber int64  `json:"phoneNumber"`
	Department  string `json:"department"`
}

// ListTeachers lists all teachers
// @Summary List teachers
// @Description Get all teachers (Admin only)
// @Tags Teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Teacher
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /teachers [get]
func (h *DirectoryHandler) ListTeachers(c *fiber.Ctx) error {
	teachers, err := h.teacherRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list teachers")
	}
	return response.OK(c, teachers)
}

// CreateTeacher creates a new teacher
// @Summary Create teacher
// @Description Create a new teacher (Admin only)
// @Tags Teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TeacherRequest true "Teacher data"
// @Success 201 {object} models.Teacher
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /teachers [post]
func (h *DirectoryHandler) CreateTeacher(c *fiber.Ctx) error {
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return response.BadRequest(c, "First name, last name and email are required")
	}

	teacher := &models.Teacher{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
	}

	if err := h.teacherRepo.Create(c.Context(), teacher); err != nil {
		return response.InternalServerError(c, "Failed to create teacher")
	}

	return response.Created(c, teacher)
}

// ParentRequest represents create parent request
type ParentRequest struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	PhoneNumber       int64  `json:"phoneNumber"`
	RelationToStudent string `json:"relationToStudent"`
}

// ListParents lists all parents/guardians
// @Summary List parents
// @Description Get all parents/guardians (Admin only)
// @Tags Parents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ParentGuardian
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /parents [get]
func (h *DirectoryHandler) ListParents(c *fiber.Ctx) error {
	parents, err := h.parentRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list parents")
	}
	return response.OK(c, parents)
}

// CreateParent creates a new parent/guardian
// @Summary Create parent
// @Description Create a new parent/guardian (Admin only)
// @Tags Parents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ParentRequest true "Parent data"
// @Success 201 {object} models.ParentGuardian
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /parents [post]
func (h *DirectoryHandler) CreateParent(c *fiber.Ctx) error {
	var req ParentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return response.BadRequest(c, "First name, last name and email are required")
	}

	parent := &models.ParentGuardian{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		RelationToStudent: req.RelationToStudent,
	}

	if err := h.parentRepo.Create(c.Context(), parent); err != nil {
		return response.InternalServerError(c, "Failed to create parent")
	}

	return response.Created(c, parent)
}

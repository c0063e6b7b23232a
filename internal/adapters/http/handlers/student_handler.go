package handlers

import (
	"errors"
	"strconv"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentHandler handles student endpoints
type StudentHandler struct {
	studentRepo repositories.StudentRepository
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentRepo repositories.StudentRepository) *StudentHandler {
	return &StudentHandler{studentRepo: studentRepo}
}

// StudentRequest represents create/update student request
type StudentRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	PhoneNumber int64  `json:"phoneNumber"`
}

// List lists the students visible to the caller
// @Summary List students
// @Description Admin sees all students; teachers see students enrolled in their courses
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Student
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /students [get]
func (h *StudentHandler) List(c *fiber.Ctx) error {
	students, err := h.studentRepo.List(c.Context(), currentScope(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list students")
	}
	return response.OK(c, students)
}

// Create creates a new student
// @Summary Create student
// @Description Create a new student (Admin only)
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StudentRequest true "Student data"
// @Success 201 {object} models.Student
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /students [post]
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return response.BadRequest(c, "First name, last name and email are required")
	}

	student := &models.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}

	if err := h.studentRepo.Create(c.Context(), student); err != nil {
		return response.InternalServerError(c, "Failed to create student")
	}

	return response.Created(c, student)
}

// Update updates a student
// @Summary Update student
// @Description Update a student (Admin only)
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param body body StudentRequest true "Student data"
// @Success 200 {object} models.Student
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	student, err := h.studentRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to update student")
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.DateOfBirth = req.DateOfBirth
	student.Address = req.Address
	student.PhoneNumber = req.PhoneNumber

	if err := h.studentRepo.Update(c.Context(), student); err != nil {
		return response.InternalServerError(c, "Failed to update student")
	}

	return response.OK(c, student)
}

// Delete deletes a student
// @Summary Delete student
// @Description Delete a student (Admin only)
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.studentRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete student")
	}

	return response.OK(c, response.Message{Message: "Student deleted successfully"})
}

package handlers

import (
	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendanceRepo repositories.AttendanceRepository
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceRepo repositories.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{attendanceRepo: attendanceRepo}
}

// List lists the attendance records visible to the caller
// @Summary List attendance
// @Description Attendance scoped by role: teachers via their courses, parents via linked students
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AttendanceRow
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	rows, err := h.attendanceRepo.List(c.Context(), currentScope(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list attendance")
	}
	return response.OK(c, rows)
}

// CreateAttendanceRequest represents create attendance request
type CreateAttendanceRequest struct {
	EnrollmentID uint   `json:"enrollmentId"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

// Create creates a new attendance record
// @Summary Create attendance
// @Description Record attendance for an enrollment (Admin/Teacher)
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAttendanceRequest true "Attendance data"
// @Success 201 {object} models.Attendance
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /attendance [post]
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var req CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.EnrollmentID == 0 || req.Date == "" || req.Status == "" {
		return response.BadRequest(c, "Enrollment ID, date and status are required")
	}

	attendance := &models.Attendance{
		EnrollmentID: req.EnrollmentID,
		Date:         req.Date,
		Status:       req.Status,
	}

	if err := h.attendanceRepo.Create(c.Context(), attendance); err != nil {
		return response.InternalServerError(c, "Failed to create attendance")
	}

	return response.Created(c, attendance)
}

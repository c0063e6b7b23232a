package handlers

import (
	"strconv"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LinkHandler handles join-table management endpoints
type LinkHandler struct {
	courseTeacherRepo   repositories.CourseTeacherRepository
	courseExamBoardRepo repositories.CourseExamBoardRepository
	parentStudentRepo   repositories.ParentStudentRepository
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(
	courseTeacherRepo repositories.CourseTeacherRepository,
	courseExamBoardRepo repositories.CourseExamBoardRepository,
	parentStudentRepo repositories.ParentStudentRepository,
) *LinkHandler {
	return &LinkHandler{
		courseTeacherRepo:   courseTeacherRepo,
		courseExamBoardRepo: courseExamBoardRepo,
		parentStudentRepo:   parentStudentRepo,
	}
}

// AssignTeacherRequest represents a course-teacher assignment
type AssignTeacherRequest struct {
	CourseID  uint `json:"courseId"`
	TeacherID uint `json:"teacherId"`
}

// AssignTeacher assigns a teacher to a course
// @Summary Assign teacher to course
// @Description Create a course-teacher assignment (Admin only)
// @Tags CourseTeachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AssignTeacherRequest true "Assignment data"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /course-teachers [post]
func (h *LinkHandler) AssignTeacher(c *fiber.Ctx) error {
	var req AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CourseID == 0 || req.TeacherID == 0 {
		return response.BadRequest(c, "Course ID and teacher ID are required")
	}

	link := &models.CourseTeacher{CourseID: req.CourseID, TeacherID: req.TeacherID}
	if err := h.courseTeacherRepo.Assign(c.Context(), link); err != nil {
		return response.InternalServerError(c, "Failed to assign teacher to course")
	}

	return response.CreatedMessage(c, "Teacher assigned to course successfully")
}

// TeachersByCourse lists the teachers assigned to a course
// @Summary List course teachers
// @Description Get the teachers assigned to a course (Admin only)
// @Tags CourseTeachers
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {array} models.Teacher
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /course-teachers/{courseId} [get]
func (h *LinkHandler) TeachersByCourse(c *fiber.Ctx) error {
	courseID, err := strconv.ParseUint(c.Params("courseId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid course ID")
	}

	teachers, err := h.courseTeacherRepo.TeachersByCourse(c.Context(), uint(courseID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list course teachers")
	}

	return response.OK(c, teachers)
}

// AssignExamBoardRequest represents a course-exam-board assignment
type AssignExamBoardRequest struct {
	CourseID    uint `json:"courseId"`
	ExamBoardID uint `json:"examBoardId"`
}

// AssignExamBoard assigns an exam board to a course
// @Summary Assign exam board to course
// @Description Create a course-exam-board assignment (Admin only)
// @Tags CourseExamBoards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AssignExamBoardRequest true "Assignment data"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Message
// @Router /course-exam-boards [post]
func (h *LinkHandler) AssignExamBoard(c *fiber.Ctx) error {
	var req AssignExamBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CourseID == 0 || req.ExamBoardID == 0 {
		return response.BadRequest(c, "Course ID and exam board ID are required")
	}

	link := &models.CourseExamBoard{CourseID: req.CourseID, ExamBoardID: req.ExamBoardID}
	if err := h.courseExamBoardRepo.Assign(c.Context(), link); err != nil {
		return response.InternalServerError(c, "Failed to assign exam board to course")
	}

	return response.CreatedMessage(c, "Exam board assigned to course successfully")
}

// BoardsByCourse lists the exam boards assigned to a course
// @Summary List course exam boards
// @Description Get the exam boards assigned to a course (Admin only)
// @Tags CourseExamBoards
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {array} models.ExamBoard
// @Failure 400 {object} response.Message
// @Router /course-exam-boards/{courseId} [get]
func (h *LinkHandler) BoardsByCourse(c *fiber.Ctx) error {
	courseID, err := strconv.ParseUint(c.Params("courseId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid course ID")
	}

	boards, err := h.courseExamBoardRepo.BoardsByCourse(c.Context(), uint(courseID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list course exam boards")
	}

	return response.OK(c, boards)
}

// LinkParentStudentRequest represents a parent-student link
type LinkParentStudentRequest struct {
	ParentID  uint `json:"parentId"`
	StudentID uint `json:"studentId"`
}

// LinkParentStudent links a parent/guardian to a student. Parent row
// scoping joins through this table.
// @Summary Link parent to student
// @Description Create a parent-student link (Admin only)
// @Tags ParentStudents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LinkParentStudentRequest true "Link data"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Message
// @Router /parent-students [post]
func (h *LinkHandler) LinkParentStudent(c *fiber.Ctx) error {
	var req LinkParentStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ParentID == 0 || req.StudentID == 0 {
		return response.BadRequest(c, "Parent ID and student ID are required")
	}

	link := &models.ParentStudent{ParentID: req.ParentID, StudentID: req.StudentID}
	if err := h.parentStudentRepo.Link(c.Context(), link); err != nil {
		return response.InternalServerError(c, "Failed to link parent to student")
	}

	return response.CreatedMessage(c, "Parent linked to student successfully")
}

// StudentsByParent lists the students linked to a parent/guardian
// @Summary List parent's students
// @Description Get the students linked to a parent/guardian (Admin only)
// @Tags ParentStudents
// @Produce json
// @Security BearerAuth
// @Param parentId path int true "Parent ID"
// @Success 200 {array} models.Student
// @Failure 400 {object} response.Message
// @Router /parent-students/{parentId} [get]
func (h *LinkHandler) StudentsByParent(c *fiber.Ctx) error {
	parentID, err := strconv.ParseUint(c.Params("parentId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid parent ID")
	}

	students, err := h.parentStudentRepo.StudentsByParent(c.Context(), uint(parentID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list linked students")
	}

	return response.OK(c, students)
}

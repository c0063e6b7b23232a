package handlers

import (
	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MasterHandler handles supporting staff, investor and exam board
// endpoints (Admin only)
type MasterHandler struct {
	staffRepo     repositories.StaffRepository
	investorRepo  repositories.InvestorRepository
	examBoardRepo repositories.ExamBoardRepository
}

// NewMasterHandler creates a new master handler
func NewMasterHandler(
	staffRepo repositories.StaffRepository,
	investorRepo repositories.InvestorRepository,
	examBoardRepo repositories.ExamBoardRepository,
) *MasterHandler {
	return &MasterHandler{
		staffRepo:     staffRepo,
		investorRepo:  investorRepo,
		examBoardRepo: examBoardRepo,
	}
}

// ============================================================
// Supporting Staff
// ============================================================

// StaffRequest represents create staff request
type StaffRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// ListStaff lists all supporting staff
// @Summary List supporting staff
// @Description Get all supporting staff (Admin only)
// @Tags SupportingStaff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SupportingStaff
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /supporting-staff [get]
func (h *MasterHandler) ListStaff(c *fiber.Ctx) error {
	staff, err := h.staffRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list supporting staff")
	}
	return response.OK(c, staff)
}

// CreateStaff creates a new supporting staff record
// @Summary Create supporting staff
// @Description Create a supporting staff record (Admin only)
// @Tags SupportingStaff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StaffRequest true "Staff data"
// @Success 201 {object} models.SupportingStaff
// @Failure 400 {object} response.Message
// @Router /supporting-staff [post]
func (h *MasterHandler) CreateStaff(c *fiber.Ctx) error {
	var req StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return response.BadRequest(c, "First name, last name and email are required")
	}

	staff := &models.SupportingStaff{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       req.Role,
		Department: req.Department,
		Email:      req.Email,
	}

	if err := h.staffRepo.Create(c.Context(), staff); err != nil {
		return response.InternalServerError(c, "Failed to create supporting staff")
	}

	return response.Created(c, staff)
}

// ============================================================
// Investors
// ============================================================

// InvestorRequest represents create investor request
type InvestorRequest struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	PhoneNumber       int64  `json:"phoneNumber"`
	InvestmentDetails string `json:"investmentDetails"`
}

// ListInvestors lists all investors
// @Summary List investors
// @Description Get all investors (Admin only)
// @Tags Investors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Investor
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /investors [get]
func (h *MasterHandler) ListInvestors(c *fiber.Ctx) error {
	investors, err := h.investorRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list investors")
	}
	return response.OK(c, investors)
}

// CreateInvestor creates a new investor
// @Summary Create investor
// @Description Create an investor record (Admin only)
// @Tags Investors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body InvestorRequest true "Investor data"
// @Success 201 {object} models.Investor
// @Failure 400 {object} response.Message
// @Router /investors [post]
func (h *MasterHandler) CreateInvestor(c *fiber.Ctx) error {
	var req InvestorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return response.BadRequest(c, "First name, last name and email are required")
	}

	investor := &models.Investor{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		InvestmentDetails: req.InvestmentDetails,
	}

	if err := h.investorRepo.Create(c.Context(), investor); err != nil {
		return response.InternalServerError(c, "Failed to create investor")
	}

	return response.Created(c, investor)
}

// ============================================================
// Exam Boards
// ============================================================

// ExamBoardRequest represents create exam board request
type ExamBoardRequest struct {
	BoardName      string `json:"boardName"`
	ContactDetails string `json:"contactDetails"`
}

// ListExamBoards lists all exam boards
// @Summary List exam boards
// @Description Get all exam boards (Admin only)
// @Tags ExamBoards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ExamBoard
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /exam-boards [get]
func (h *MasterHandler) ListExamBoards(c *fiber.Ctx) error {
	boards, err := h.examBoardRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list exam boards")
	}
	return response.OK(c, boards)
}

// CreateExamBoard creates a new exam board
// @Summary Create exam board
// @Description Create an exam board (Admin only)
// @Tags ExamBoards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ExamBoardRequest true "Exam board data"
// @Success 201 {object} models.ExamBoard
// @Failure 400 {object} response.Message
// @Router /exam-boards [post]
func (h *MasterHandler) CreateExamBoard(c *fiber.Ctx) error {
	var req ExamBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.BoardName == "" {
		return response.BadRequest(c, "Board name is required")
	}

	board := &models.ExamBoard{
		BoardName:      req.BoardName,
		ContactDetails: req.ContactDetails,
	}

	if err := h.examBoardRepo.Create(c.Context(), board); err != nil {
		return response.InternalServerError(c, "Failed to create exam board")
	}

	return response.Created(c, board)
}

package repositories

import (
	"context"

	"schoolhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// staffRepository implements StaffRepository interface
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new supporting staff repository
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

// Create creates a new supporting staff record
func (r *staffRepository) Create(ctx context.Context, staff *models.SupportingStaff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

// List lists all supporting staff
func (r *staffRepository) List(ctx context.Context) ([]*models.SupportingStaff, error) {
	staff := []*models.SupportingStaff{}
	if err := r.db.WithContext(ctx).Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// investorRepository implements InvestorRepository interface
type investorRepository struct {
	db *gorm.DB
}

// NewInvestorRepository creates a new investor repository
func NewInvestorRepository(db *gorm.DB) InvestorRepository {
	return &investorRepository{db: db}
}

// Create creates a new investor
func (r *investorRepository) Create(ctx context.Context, investor *models.Investor) error {
	return r.db.WithContext(ctx).Create(investor).Error
}

// List lists all investors
func (r *investorRepository) List(ctx context.Context) ([]*models.Investor, error) {
	investors := []*models.Investor{}
	if err := r.db.WithContext(ctx).Find(&investors).Error; err != nil {
		return nil, err
	}
	return investors, nil
}

// examBoardRepository implements ExamBoardRepository interface
type examBoardRepository struct {
	db *gorm.DB
}

// NewExamBoardRepository creates a new exam board repository
func NewExamBoardRepository(db *gorm.DB) ExamBoardRepository {
	return &examBoardRepository{db: db}
}

// Create creates a new exam board
func (r *examBoardRepository) Create(ctx context.Context, board *models.ExamBoard) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// List lists all exam boards
func (r *examBoardRepository) List(ctx context.Context) ([]*models.ExamBoard, error) {
	boards := []*models.ExamBoard{}
	if err := r.db.WithContext(ctx).Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

package repository

import (
	"errors"
	"time"

	plandomain "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SummaryRepository defines persistence operations for the append-only
// executive summary history. There is no update or delete: regeneration
// appends a new row and the newest row wins.
type SummaryRepository interface {
	Create(summary *plandomain.PlanSummary) error
	FindLatestByPlan(planID string) (*plandomain.PlanSummary, error)
}

// summaryRepository implements SummaryRepository interface
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new instance of summaryRepository
func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

func (r *summaryRepository) Create(summary *plandomain.PlanSummary) error {
	summary.ID = uuid.New().String()
	summary.CreatedAt = time.Now()
	return r.db.Create(summary).Error
}

func (r *summaryRepository) FindLatestByPlan(planID string) (*plandomain.PlanSummary, error) {
	var summary plandomain.PlanSummary
	err := r.db.Where("plan_id = ?", planID).Order("created_at DESC").First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

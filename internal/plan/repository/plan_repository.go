package repository

import (
	"errors"
	"time"

	plandomain "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanRepository defines persistence operations for plans. Every lookup is
// scoped by the owning user; a plan another user owns is indistinguishable
// from one that does not exist.
type PlanRepository interface {
	Create(plan *plandomain.Plan) error
	FindByUser(userID string) ([]*plandomain.Plan, error)
	FindByIDAndUser(id, userID string) (*plandomain.Plan, error)
	FindDetail(id, userID string) (*plandomain.Plan, error)
	Update(plan *plandomain.Plan) error
	Delete(id string) error
}

// planRepository implements PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new instance of planRepository
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{
		db: db,
	}
}

func (r *planRepository) Create(plan *plandomain.Plan) error {
	plan.ID = uuid.New().String()
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()
	return r.db.Create(plan).Error
}

func (r *planRepository) FindByUser(userID string) ([]*plandomain.Plan, error) {
	var plans []*plandomain.Plan
	err := r.db.Where("user_id = ?", userID).Find(&plans).Error
	return plans, err
}

func (r *planRepository) FindByIDAndUser(id, userID string) (*plandomain.Plan, error) {
	var plan plandomain.Plan
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// FindDetail loads the plan together with its sections.
func (r *planRepository) FindDetail(id, userID string) (*plandomain.Plan, error) {
	var plan plandomain.Plan
	err := r.db.Preload("Sections").Where("id = ? AND user_id = ?", id, userID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if plan.Sections == nil {
		plan.Sections = []plandomain.PlanSection{}
	}
	return &plan, nil
}

func (r *planRepository) Update(plan *plandomain.Plan) error {
	plan.UpdatedAt = time.Now()
	return r.db.Save(plan).Error
}

// Delete removes the plan; sections, reminders and summaries go with it via
// the FK cascade, not application code.
func (r *planRepository) Delete(id string) error {
	return r.db.Delete(&plandomain.Plan{}, "id = ?", id).Error
}

package repository

import (
	"errors"
	"time"

	plandomain "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionRepository defines persistence operations for plan sections.
type SectionRepository interface {
	CreateBatch(sections []*plandomain.PlanSection) error
	FindByPlan(planID string) ([]*plandomain.PlanSection, error)
	FindByIDAndPlan(id, planID string) (*plandomain.PlanSection, error)
	Update(section *plandomain.PlanSection) error
}

// sectionRepository implements SectionRepository interface
type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new instance of sectionRepository
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{
		db: db,
	}
}

// CreateBatch inserts all sections inside one transaction so a mid-batch
// failure never leaves a plan with a partial set.
func (r *sectionRepository) CreateBatch(sections []*plandomain.PlanSection) error {
	now := time.Now()
	for _, section := range sections {
		section.ID = uuid.New().String()
		section.CreatedAt = now
		section.UpdatedAt = now
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, section := range sections {
			if err := tx.Create(section).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sectionRepository) FindByPlan(planID string) ([]*plandomain.PlanSection, error) {
	var sections []*plandomain.PlanSection
	err := r.db.Where("plan_id = ?", planID).Find(&sections).Error
	return sections, err
}

func (r *sectionRepository) FindByIDAndPlan(id, planID string) (*plandomain.PlanSection, error) {
	var section plandomain.PlanSection
	err := r.db.Where("id = ? AND plan_id = ?", id, planID).First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) Update(section *plandomain.PlanSection) error {
	section.UpdatedAt = time.Now()
	return r.db.Save(section).Error
}

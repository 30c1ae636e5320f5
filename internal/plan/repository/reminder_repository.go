package repository

import (
	"errors"
	"time"

	plandomain "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderRepository defines persistence operations for plan reminders.
// Reminders are addressed by id alone on the API surface, so ownership is
// resolved by joining through the reminder's plan.
type ReminderRepository interface {
	Create(reminder *plandomain.PlanReminder) error
	FindByPlan(planID string) ([]*plandomain.PlanReminder, error)
	FindByIDAndUser(id, userID string) (*plandomain.PlanReminder, error)
	Update(reminder *plandomain.PlanReminder) error
	Delete(id string) error
}

// reminderRepository implements ReminderRepository interface
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of reminderRepository
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

func (r *reminderRepository) Create(reminder *plandomain.PlanReminder) error {
	reminder.ID = uuid.New().String()
	reminder.CreatedAt = time.Now()
	reminder.UpdatedAt = time.Now()
	return r.db.Create(reminder).Error
}

func (r *reminderRepository) FindByPlan(planID string) ([]*plandomain.PlanReminder, error) {
	var reminders []*plandomain.PlanReminder
	err := r.db.Where("plan_id = ?", planID).Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) FindByIDAndUser(id, userID string) (*plandomain.PlanReminder, error) {
	var reminder plandomain.PlanReminder
	err := r.db.
		Joins("JOIN plans ON plans.id = plan_reminders.plan_id").
		Where("plan_reminders.id = ? AND plans.user_id = ?", id, userID).
		First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) Update(reminder *plandomain.PlanReminder) error {
	reminder.UpdatedAt = time.Now()
	return r.db.Save(reminder).Error
}

func (r *reminderRepository) Delete(id string) error {
	return r.db.Delete(&plandomain.PlanReminder{}, "id = ?", id).Error
}

package domain

import (
	"time"

	"gorm.io/datatypes"
)

// PlanStatus represents the lifecycle state of a plan.
type PlanStatus string

const (
	PlanStatusDraft PlanStatus = "draft"
)

// SectionStatus tracks whether a section still holds its generated content
// or has been revised via an adjustment comment.
type SectionStatus string

const (
	SectionStatusGenerated SectionStatus = "generated"
	SectionStatusAdjusted  SectionStatus = "adjusted"
)

// SectionTypes is the fixed vocabulary the generator asks the model to cover.
// The model may also name sections freely; stored section_type is whatever
// the reply carried.
var SectionTypes = []string{
	"Profesional",
	"Entrenamiento",
	"Hobbies",
	"Nutrición",
	"Bienestar",
}

// Plan is a user's top-level lifestyle document.
type Plan struct {
	ID         string            `json:"id" gorm:"primaryKey"`
	UserID     string            `json:"user_id" gorm:"index;not null"`
	Title      string            `json:"title"`
	Parameters datatypes.JSONMap `json:"parameters" gorm:"type:jsonb"`
	Status     PlanStatus        `json:"status" gorm:"default:draft"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Sections  []PlanSection  `json:"sections,omitempty" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Reminders []PlanReminder `json:"-" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Summaries []PlanSummary  `json:"-" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// PlanSection is one thematic subdivision of a plan.
type PlanSection struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	PlanID      string        `json:"plan_id" gorm:"index;not null"`
	SectionType string        `json:"section_type"`
	Content     string        `json:"content"`
	Status      SectionStatus `json:"status" gorm:"default:generated"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// PlanReminder is a recurrence rule attached to a plan.
type PlanReminder struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PlanID    string    `json:"plan_id" gorm:"index;not null"`
	Rule      string    `json:"rule"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlanSummary is one entry of the append-only executive summary history.
// The current summary is the most recently created row.
type PlanSummary struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	PlanID           string    `json:"plan_id" gorm:"index;not null"`
	Title            string    `json:"title"`
	ExecutiveSummary string    `json:"executive_summary"`
	CreatedAt        time.Time `json:"created_at"`
}

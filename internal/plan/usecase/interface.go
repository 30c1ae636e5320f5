package usecase

import (
	"context"
	"errors"

	plandomain "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/domain"
	plandto "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/dto"
)

// ErrPlanNotFound covers both a missing plan and one owned by another user;
// ownership is invisible to non-owners.
var ErrPlanNotFound = errors.New("plan no encontrado")

// ErrSectionNotFound is returned when the section does not belong to the plan.
var ErrSectionNotFound = errors.New("sección no encontrada")

// ErrReminderNotFound is returned when the reminder does not belong to the caller.
var ErrReminderNotFound = errors.New("recordatorio no encontrado")

// ErrNothingToUpdate is returned for a patch with no fields, before any store access.
var ErrNothingToUpdate = errors.New("nada para actualizar")

// ErrCommentRequired is returned when an adjustment carries no comment.
var ErrCommentRequired = errors.New("comentario requerido")

// ErrInvalidAIReply is returned when the extracted substring is not valid
// JSON of the requested shape.
var ErrInvalidAIReply = errors.New("respuesta IA con JSON inválido")

// PlanUsecase defines all operations over plans and their children.
// Context is threaded only through the AI-backed operations; plain store
// round-trips follow the repository signatures.
type PlanUsecase interface {
	ListPlans(userID string) ([]*plandomain.Plan, error)
	CreatePlan(userID string, req *plandto.CreatePlanRequest) (*plandomain.Plan, error)
	GetPlanDetail(userID, planID string) (*plandomain.Plan, error)
	UpdatePlan(userID, planID string, patch plandto.PlanPatch) (*plandomain.Plan, error)
	DeletePlan(userID, planID string) error

	GenerateSections(ctx context.Context, userID, planID string) ([]*plandomain.PlanSection, error)
	AdjustSection(ctx context.Context, userID, planID, sectionID, comment string) (*plandomain.PlanSection, error)
	GenerateSummary(ctx context.Context, userID, planID string) (*plandto.SummaryResponse, error)

	ExportPlan(userID, planID string) ([]byte, error)

	CreateReminder(userID, planID string, req *plandto.CreateReminderRequest) (*plandomain.PlanReminder, error)
	ListReminders(userID, planID string) ([]*plandomain.PlanReminder, error)
	UpdateReminder(userID, reminderID string, patch plandto.ReminderPatch) (*plandomain.PlanReminder, error)
	DeleteReminder(userID, reminderID string) error
}

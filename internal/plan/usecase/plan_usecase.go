package usecase

import (
	plandomain "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/domain"
	plandto "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/dto"
	"github.com/DanielValenz21/LifeStyleIABACK/internal/plan/repository"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/ai"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/pdf"

	"gorm.io/datatypes"
)

// planUsecase implements PlanUsecase interface
type planUsecase struct {
	planRepo     repository.PlanRepository
	sectionRepo  repository.SectionRepository
	reminderRepo repository.ReminderRepository
	summaryRepo  repository.SummaryRepository
	aiClient     ai.ChatClient
}

// NewPlanUsecase creates a new instance of planUsecase
func NewPlanUsecase(
	planRepo repository.PlanRepository,
	sectionRepo repository.SectionRepository,
	reminderRepo repository.ReminderRepository,
	summaryRepo repository.SummaryRepository,
	aiClient ai.ChatClient,
) PlanUsecase {
	return &planUsecase{
		planRepo:     planRepo,
		sectionRepo:  sectionRepo,
		reminderRepo: reminderRepo,
		summaryRepo:  summaryRepo,
		aiClient:     aiClient,
	}
}

func (u *planUsecase) ListPlans(userID string) ([]*plandomain.Plan, error) {
	return u.planRepo.FindByUser(userID)
}

func (u *planUsecase) CreatePlan(userID string, req *plandto.CreatePlanRequest) (*plandomain.Plan, error) {
	params := datatypes.JSONMap{}
	for k, v := range req.Parameters {
		params[k] = v
	}

	plan := &plandomain.Plan{
		UserID:     userID,
		Title:      req.Title,
		Parameters: params,
		Status:     plandomain.PlanStatusDraft,
	}

	if err := u.planRepo.Create(plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (u *planUsecase) GetPlanDetail(userID, planID string) (*plandomain.Plan, error) {
	plan, err := u.planRepo.FindDetail(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (u *planUsecase) UpdatePlan(userID, planID string, patch plandto.PlanPatch) (*plandomain.Plan, error) {
	if patch.Empty() {
		return nil, ErrNothingToUpdate
	}

	plan, err := u.planRepo.FindByIDAndUser(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	if patch.Title != nil {
		plan.Title = *patch.Title
	}
	if patch.Parameters != nil {
		params := datatypes.JSONMap{}
		for k, v := range *patch.Parameters {
			params[k] = v
		}
		plan.Parameters = params
	}

	if err := u.planRepo.Update(plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (u *planUsecase) DeletePlan(userID, planID string) error {
	plan, err := u.planRepo.FindByIDAndUser(planID, userID)
	if err != nil {
		return err
	}
	if plan == nil {
		return ErrPlanNotFound
	}
	return u.planRepo.Delete(plan.ID)
}

// ExportPlan renders the plan as a PDF: title page with the latest executive
// summary, then one page per section. A plan with no sections and no summary
// still yields a valid document.
func (u *planUsecase) ExportPlan(userID, planID string) ([]byte, error) {
	plan, err := u.planRepo.FindByIDAndUser(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	sections, err := u.sectionRepo.FindByPlan(plan.ID)
	if err != nil {
		return nil, err
	}

	executiveSummary := ""
	summary, err := u.summaryRepo.FindLatestByPlan(plan.ID)
	if err != nil {
		return nil, err
	}
	if summary != nil {
		executiveSummary = summary.ExecutiveSummary
	}

	doc := pdf.PlanDocument{
		Title:            plan.Title,
		ExecutiveSummary: executiveSummary,
	}
	for _, section := range sections {
		doc.Sections = append(doc.Sections, pdf.SectionContent{
			Type:    section.SectionType,
			Content: section.Content,
		})
	}

	return pdf.RenderPlan(doc)
}

func (u *planUsecase) CreateReminder(userID, planID string, req *plandto.CreateReminderRequest) (*plandomain.PlanReminder, error) {
	plan, err := u.planRepo.FindByIDAndUser(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	reminder := &plandomain.PlanReminder{
		PlanID:   plan.ID,
		Rule:     req.Rule,
		IsActive: isActive,
	}

	if err := u.reminderRepo.Create(reminder); err != nil {
		return nil, err
	}

	return reminder, nil
}

func (u *planUsecase) ListReminders(userID, planID string) ([]*plandomain.PlanReminder, error) {
	plan, err := u.planRepo.FindByIDAndUser(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return u.reminderRepo.FindByPlan(plan.ID)
}

func (u *planUsecase) UpdateReminder(userID, reminderID string, patch plandto.ReminderPatch) (*plandomain.PlanReminder, error) {
	if patch.Empty() {
		return nil, ErrNothingToUpdate
	}

	reminder, err := u.reminderRepo.FindByIDAndUser(reminderID, userID)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}

	if patch.Rule != nil {
		reminder.Rule = *patch.Rule
	}
	if patch.IsActive != nil {
		reminder.IsActive = *patch.IsActive
	}

	if err := u.reminderRepo.Update(reminder); err != nil {
		return nil, err
	}

	return reminder, nil
}

func (u *planUsecase) DeleteReminder(userID, reminderID string) error {
	reminder, err := u.reminderRepo.FindByIDAndUser(reminderID, userID)
	if err != nil {
		return err
	}
	if reminder == nil {
		return ErrReminderNotFound
	}
	return u.reminderRepo.Delete(reminder.ID)
}

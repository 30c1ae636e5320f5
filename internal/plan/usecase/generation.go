package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	plandomain "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/domain"
	plandto "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/dto"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/ai"
)

// GenerateSections asks the model for one JSON array covering the fixed
// section vocabulary, extracts the first bracketed substring from the reply
// and stores one row per element. The whole batch is inserted in a single
// transaction.
func (u *planUsecase) GenerateSections(ctx context.Context, userID, planID string) ([]*plandomain.PlanSection, error) {
	plan, err := u.planRepo.FindByIDAndUser(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	prompt := buildSectionsPrompt(plan)

	reply, err := u.aiClient.Chat(ctx, []ai.Message{
		{Role: "system", Content: sectionsSystemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	fragment, err := ai.ExtractArray(reply)
	if err != nil {
		return nil, err
	}

	var items []struct {
		SectionType string `json:"section_type"`
		Content     string `json:"content"`
	}
	if err := json.Unmarshal([]byte(fragment), &items); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAIReply, ai.Excerpt(reply))
	}

	sections := make([]*plandomain.PlanSection, 0, len(items))
	for _, item := range items {
		if item.SectionType == "" || item.Content == "" {
			return nil, fmt.Errorf("%w: elemento sin section_type o content", ErrInvalidAIReply)
		}
		sections = append(sections, &plandomain.PlanSection{
			PlanID:      plan.ID,
			SectionType: item.SectionType,
			Content:     item.Content,
			Status:      plandomain.SectionStatusGenerated,
		})
	}

	if err := u.sectionRepo.CreateBatch(sections); err != nil {
		return nil, err
	}

	return u.sectionRepo.FindByPlan(plan.ID)
}

// AdjustSection sends the section's current content plus the user's comment
// and takes the trimmed raw reply as the new content. No JSON wrapping is
// requested here.
func (u *planUsecase) AdjustSection(ctx context.Context, userID, planID, sectionID, comment string) (*plandomain.PlanSection, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, ErrCommentRequired
	}

	plan, err := u.planRepo.FindByIDAndUser(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	section, err := u.sectionRepo.FindByIDAndPlan(sectionID, plan.ID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}

	prompt := buildAdjustPrompt(section, comment)

	reply, err := u.aiClient.Chat(ctx, []ai.Message{
		{Role: "system", Content: adjustSystemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	section.Content = strings.TrimSpace(reply)
	section.Status = plandomain.SectionStatusAdjusted

	if err := u.sectionRepo.Update(section); err != nil {
		return nil, err
	}

	return section, nil
}

// GenerateSummary asks the model for one JSON object {title, executive_summary},
// appends it to the summary history and returns the pair. Prior summaries are
// never touched.
func (u *planUsecase) GenerateSummary(ctx context.Context, userID, planID string) (*plandto.SummaryResponse, error) {
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

	prompt := buildSummaryPrompt(plan, sections)

	reply, err := u.aiClient.Chat(ctx, []ai.Message{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	fragment, err := ai.ExtractObject(reply)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Title            string `json:"title"`
		ExecutiveSummary string `json:"executive_summary"`
	}
	if err := json.Unmarshal([]byte(fragment), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAIReply, ai.Excerpt(reply))
	}

	summary := &plandomain.PlanSummary{
		PlanID:           plan.ID,
		Title:            parsed.Title,
		ExecutiveSummary: parsed.ExecutiveSummary,
	}
	if err := u.summaryRepo.Create(summary); err != nil {
		return nil, err
	}

	return &plandto.SummaryResponse{
		Title:            parsed.Title,
		ExecutiveSummary: parsed.ExecutiveSummary,
	}, nil
}

const sectionsSystemPrompt = "Eres un asistente experto en diseñar planes de estilo de vida personalizados. Respondes únicamente en el formato solicitado."

const adjustSystemPrompt = "Eres un asistente que revisa secciones de un plan de estilo de vida. Devuelves únicamente el texto revisado, sin explicaciones."

const summarySystemPrompt = "Eres un asistente que redacta resúmenes ejecutivos de planes de estilo de vida. Respondes únicamente en el formato solicitado."

func buildSectionsPrompt(plan *plandomain.Plan) string {
	var b strings.Builder
	b.WriteString("Genera el contenido de un plan de estilo de vida con los siguientes parámetros del usuario:\n\n")
	b.WriteString(formatParameters(plan))
	b.WriteString("\nLas secciones a cubrir son: ")
	b.WriteString(strings.Join(plandomain.SectionTypes, ", "))
	b.WriteString(".\n\n")
	b.WriteString("Devuelve ÚNICAMENTE un array JSON, sin texto adicional, con un elemento por sección y esta forma exacta:\n")
	b.WriteString(`[{"section_type": "...", "content": "..."}]`)
	return b.String()
}

func buildAdjustPrompt(section *plandomain.PlanSection, comment string) string {
	return fmt.Sprintf(`Revisa la sección "%s" de un plan de estilo de vida.

CONTENIDO ACTUAL:
%s

COMENTARIO DEL USUARIO:
%s

Devuelve ÚNICAMENTE el texto revisado de la sección, sin JSON ni comentarios adicionales.`, section.SectionType, section.Content, comment)
}

func buildSummaryPrompt(plan *plandomain.Plan, sections []*plandomain.PlanSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Redacta un resumen ejecutivo del plan de estilo de vida titulado %q.\n\n", plan.Title)
	b.WriteString("Parámetros del usuario:\n")
	b.WriteString(formatParameters(plan))
	b.WriteString("\nSecciones del plan:\n")
	for _, section := range sections {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", section.SectionType, section.Content)
	}
	b.WriteString("Devuelve ÚNICAMENTE un objeto JSON con esta forma exacta:\n")
	b.WriteString(`{"title": "...", "executive_summary": "..."}`)
	return b.String()
}

// formatParameters renders the opaque parameter map as "- key: value" lines
// in a stable order.
func formatParameters(plan *plandomain.Plan) string {
	if len(plan.Parameters) == 0 {
		return "- (sin parámetros)\n"
	}
	keys := make([]string, 0, len(plan.Parameters))
	for k := range plan.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %v\n", k, plan.Parameters[k])
	}
	return b.String()
}

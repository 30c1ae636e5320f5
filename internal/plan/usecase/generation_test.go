package usecase_test

import (
	"context"
	"testing"
	"time"

	plandomain "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/domain"
	plandto "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/dto"
	"github.com/DanielValenz21/LifeStyleIABACK/internal/plan/usecase"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSections_StoresOneRowPerElement(t *testing.T) {
	reply := "Aquí tienes el plan solicitado:\n" +
		`[{"section_type":"Profesional","content":"Crecer a líder técnico."},` +
		`{"section_type":"Entrenamiento","content":"Correr tres veces por semana."},` +
		`{"section_type":"Nutrición","content":"Más verduras, menos azúcar."}]`
	uc, _ := newPlanUsecase(t, &fakeChat{reply: reply})

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{
		Title:      "Mi plan",
		Parameters: map[string]interface{}{"edad": "30"},
	})
	require.NoError(t, err)

	sections, err := uc.GenerateSections(context.Background(), "user-1", plan.ID)
	require.NoError(t, err)
	require.Len(t, sections, 3)
	for _, section := range sections {
		assert.Equal(t, plandomain.SectionStatusGenerated, section.Status)
		assert.Equal(t, plan.ID, section.PlanID)
		assert.NotEmpty(t, section.Content)
	}
}

func TestGenerateSections_PlanNotOwned(t *testing.T) {
	uc, _ := newPlanUsecase(t, &fakeChat{reply: "[]"})

	plan, err := uc.CreatePlan("owner", &plandto.CreatePlanRequest{Title: "ajeno"})
	require.NoError(t, err)

	_, err = uc.GenerateSections(context.Background(), "intruso", plan.ID)
	assert.ErrorIs(t, err, usecase.ErrPlanNotFound)
}

func TestGenerateSections_ReplyWithoutJSON(t *testing.T) {
	uc, db := newPlanUsecase(t, &fakeChat{reply: "Lo siento, no puedo ayudarte con eso."})

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "sin suerte"})
	require.NoError(t, err)

	_, err = uc.GenerateSections(context.Background(), "user-1", plan.ID)

	var extractErr *ai.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, extractErr.Excerpt, "Lo siento")

	var count int64
	require.NoError(t, db.Model(&plandomain.PlanSection{}).Where("plan_id = ?", plan.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerateSections_InvalidShape(t *testing.T) {
	// Parses as JSON but an element is missing content; nothing may persist.
	uc, db := newPlanUsecase(t, &fakeChat{reply: `[{"section_type":"Hobbies"}]`})

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "a medias"})
	require.NoError(t, err)

	_, err = uc.GenerateSections(context.Background(), "user-1", plan.ID)
	assert.ErrorIs(t, err, usecase.ErrInvalidAIReply)

	var count int64
	require.NoError(t, db.Model(&plandomain.PlanSection{}).Where("plan_id = ?", plan.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerateSections_UnparseableFragment(t *testing.T) {
	uc, _ := newPlanUsecase(t, &fakeChat{reply: "[esto no es JSON]"})

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "roto"})
	require.NoError(t, err)

	_, err = uc.GenerateSections(context.Background(), "user-1", plan.ID)
	assert.ErrorIs(t, err, usecase.ErrInvalidAIReply)
}

func TestAdjustSection_EmptyComment(t *testing.T) {
	uc, _ := newPlanUsecase(t, &fakeChat{
		reply: `[{"section_type":"Entrenamiento","content":"Correr dos veces por semana."}]`,
	})

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "ajustable"})
	require.NoError(t, err)
	sections, err := uc.GenerateSections(context.Background(), "user-1", plan.ID)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	_, err = uc.AdjustSection(context.Background(), "user-1", plan.ID, sections[0].ID, "   ")
	assert.ErrorIs(t, err, usecase.ErrCommentRequired)
}

func TestAdjustSection_RevisesContent(t *testing.T) {
	chat := &fakeChat{
		reply: `[{"section_type":"Entrenamiento","content":"Correr dos veces por semana."}]`,
	}
	uc, _ := newPlanUsecase(t, chat)

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "ajustable"})
	require.NoError(t, err)
	sections, err := uc.GenerateSections(context.Background(), "user-1", plan.ID)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	chat.reply = "  Correr cuatro veces por semana, con un día de descanso activo.  \n"
	adjusted, err := uc.AdjustSection(context.Background(), "user-1", plan.ID, sections[0].ID, "quiero entrenar más")
	require.NoError(t, err)
	assert.Equal(t, "Correr cuatro veces por semana, con un día de descanso activo.", adjusted.Content)
	assert.Equal(t, plandomain.SectionStatusAdjusted, adjusted.Status)
}

func TestAdjustSection_SectionFromAnotherPlan(t *testing.T) {
	chat := &fakeChat{
		reply: `[{"section_type":"Hobbies","content":"Pintura los domingos."}]`,
	}
	uc, _ := newPlanUsecase(t, chat)

	planA, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "A"})
	require.NoError(t, err)
	sections, err := uc.GenerateSections(context.Background(), "user-1", planA.ID)
	require.NoError(t, err)

	planB, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "B"})
	require.NoError(t, err)

	// The section exists but does not belong to plan B.
	_, err = uc.AdjustSection(context.Background(), "user-1", planB.ID, sections[0].ID, "cámbialo")
	assert.ErrorIs(t, err, usecase.ErrSectionNotFound)
}

func TestGenerateSummary_AppendOnly(t *testing.T) {
	chat := &fakeChat{reply: `{"title":"Plan 2026","executive_summary":"Primera versión."}`}
	uc, db := newPlanUsecase(t, chat)

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "Plan 2026"})
	require.NoError(t, err)

	first, err := uc.GenerateSummary(context.Background(), "user-1", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Primera versión.", first.ExecutiveSummary)

	// Created-at ordering decides the current summary.
	time.Sleep(10 * time.Millisecond)

	chat.reply = `{"title":"Plan 2026","executive_summary":"Segunda versión."}`
	second, err := uc.GenerateSummary(context.Background(), "user-1", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Segunda versión.", second.ExecutiveSummary)

	var count int64
	require.NoError(t, db.Model(&plandomain.PlanSummary{}).Where("plan_id = ?", plan.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGenerateSummary_ReplyWithoutJSON(t *testing.T) {
	uc, _ := newPlanUsecase(t, &fakeChat{reply: "sin objeto"})

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "x"})
	require.NoError(t, err)

	_, err = uc.GenerateSummary(context.Background(), "user-1", plan.ID)

	var extractErr *ai.ExtractionError
	assert.ErrorAs(t, err, &extractErr)
}

func TestExportPlan(t *testing.T) {
	chat := &fakeChat{
		reply: `[{"section_type":"Bienestar","content":"Dormir ocho horas."}]`,
	}
	uc, _ := newPlanUsecase(t, chat)

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "exportable"})
	require.NoError(t, err)
	_, err = uc.GenerateSections(context.Background(), "user-1", plan.ID)
	require.NoError(t, err)

	out, err := uc.ExportPlan("user-1", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestExportPlan_EmptyPlanStillRenders(t *testing.T) {
	uc, _ := newPlanUsecase(t, &fakeChat{})

	plan, err := uc.CreatePlan("user-1", &plandto.CreatePlanRequest{Title: "vacío"})
	require.NoError(t, err)

	out, err := uc.ExportPlan("user-1", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestExportPlan_NonOwner(t *testing.T) {
	uc, _ := newPlanUsecase(t, &fakeChat{})

	plan, err := uc.CreatePlan("owner", &plandto.CreatePlanRequest{Title: "privado"})
	require.NoError(t, err)

	_, err = uc.ExportPlan("intruso", plan.ID)
	assert.ErrorIs(t, err, usecase.ErrPlanNotFound)
}

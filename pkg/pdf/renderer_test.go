package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlan(t *testing.T) {
	doc := PlanDocument{
		Title:            "Plan de vida 2026",
		ExecutiveSummary: "Un año de equilibrio entre carrera y bienestar.",
		Sections: []SectionContent{
			{Type: "Profesional", Content: "Certificarse en arquitectura cloud."},
			{Type: "Nutrición", Content: "Comidas caseras cinco días a la semana."},
		},
	}

	out, err := RenderPlan(doc)
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderPlan_EmptyPlan(t *testing.T) {
	// A plan with zero sections and no summary still yields a valid document
	// containing the title page.
	out, err := RenderPlan(PlanDocument{Title: "Plan vacío"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

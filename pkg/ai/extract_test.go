package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractArray(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "bare array",
			reply: `[{"section_type":"Profesional","content":"x"}]`,
			want:  `[{"section_type":"Profesional","content":"x"}]`,
		},
		{
			name:  "array wrapped in prose",
			reply: "Claro, aquí tienes el plan:\n[{\"section_type\":\"Hobbies\",\"content\":\"y\"}]\nEspero que te sirva.",
			want:  `[{"section_type":"Hobbies","content":"y"}]`,
		},
		{
			name:  "array inside markdown fence",
			reply: "```json\n[1, 2, 3]\n```",
			want:  "[1, 2, 3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractArray(tt.reply)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractArray_NoJSON(t *testing.T) {
	_, err := ExtractArray("Lo siento, no puedo generar ese contenido.")

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "Lo siento, no puedo generar ese contenido.", extractErr.Excerpt)
}

func TestExtractArray_ExcerptTruncated(t *testing.T) {
	long := strings.Repeat("a", 500)
	_, err := ExtractArray(long)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Len(t, extractErr.Excerpt, 203) // 200 chars + "..."
	assert.True(t, strings.HasSuffix(extractErr.Excerpt, "..."))
}

func TestExtractObject(t *testing.T) {
	reply := "Aquí está el resumen:\n{\"title\":\"Mi plan\",\"executive_summary\":\"Breve.\"}"
	got, err := ExtractObject(reply)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Mi plan","executive_summary":"Breve."}`, got)
}

func TestExtractObject_NoJSON(t *testing.T) {
	_, err := ExtractObject("sin objeto aquí")

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
}

func TestExtractObject_UnbalancedDelimiters(t *testing.T) {
	// Closing brace before the opening one is not a usable fragment.
	_, err := ExtractObject("} texto {")
	require.Error(t, err)
}

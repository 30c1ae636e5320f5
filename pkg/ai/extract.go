package ai

import "strings"

const excerptLen = 200

// ExtractionError reports model output that contains no recognizable JSON
// fragment. Excerpt carries a truncated slice of the raw reply for diagnosis.
type ExtractionError struct {
	Excerpt string
}

func (e *ExtractionError) Error() string {
	return "respuesta IA no contiene JSON"
}

// ExtractArray returns the first "[...]"-delimited substring of the reply.
// Models wrap JSON in prose or markdown fences more often than not, so this
// is a heuristic, not a contract.
func ExtractArray(reply string) (string, error) {
	return extract(reply, "[", "]")
}

// ExtractObject returns the first "{...}"-delimited substring of the reply.
func ExtractObject(reply string) (string, error) {
	return extract(reply, "{", "}")
}

func extract(reply, opening, closing string) (string, error) {
	text := stripFences(reply)
	start := strings.Index(text, opening)
	end := strings.LastIndex(text, closing)
	if start == -1 || end == -1 || end <= start {
		return "", &ExtractionError{Excerpt: Excerpt(reply)}
	}
	return text[start : end+1], nil
}

// Excerpt truncates raw model output for error payloads and logs.
func Excerpt(reply string) string {
	reply = strings.TrimSpace(reply)
	if len(reply) > excerptLen {
		return reply[:excerptLen] + "..."
	}
	return reply
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

package dto

// CreatePlanRequest accepts an optional title and an opaque parameter map.
type CreatePlanRequest struct {
	Title      string                 `json:"title"`
	Parameters map[string]interface{} `json:"parameters"`
}

// PlanPatch is a partial update; nil fields are left untouched.
type PlanPatch struct {
	Title      *string                 `json:"title"`
	Parameters *map[string]interface{} `json:"parameters"`
}

// Empty reports whether the patch carries no fields at all.
func (p PlanPatch) Empty() bool {
	return p.Title == nil && p.Parameters == nil
}

// AdjustSectionRequest carries the user's revision comment.
type AdjustSectionRequest struct {
	Comment string `json:"comment"`
}

// CreateReminderRequest creates a reminder under a plan. IsActive defaults
// to true when omitted.
type CreateReminderRequest struct {
	Rule     string `json:"rule" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// ReminderPatch is a partial update; nil fields are left untouched.
type ReminderPatch struct {
	Rule     *string `json:"rule"`
	IsActive *bool   `json:"is_active"`
}

func (p ReminderPatch) Empty() bool {
	return p.Rule == nil && p.IsActive == nil
}

// SummaryResponse echoes the generated executive summary.
type SummaryResponse struct {
	Title            string `json:"title"`
	ExecutiveSummary string `json:"executive_summary"`
}

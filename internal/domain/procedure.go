package domain

type FollowUp struct {
	ProcedureID string `json:"procedure_id"`
	Label       string `json:"label"`
}

// Procedure is immutable reference data. Duration is in minutes.
// RequiredSpecs lists every specialization the treating team must cover;
// when RequiresAnesthetist is set, one of those specializations is
// "anesthesiology" and is covered by a second doctor rather than the primary.
type Procedure struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Duration             int       `json:"duration"`
	RequiredSpecs        []string  `json:"required_specs"`
	RequiredCapabilities []string  `json:"required_capabilities"`
	Color                string    `json:"color"`
	Description          string    `json:"description"`
	Note                 string    `json:"note,omitempty"`
	Priority             string    `json:"priority,omitempty"`
	FollowUp             *FollowUp `json:"follow_up"`
	RequiresAnesthetist  bool      `json:"requires_anesthetist"`
}

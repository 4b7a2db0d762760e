package types

// ExperienceHistory represents experience.json.
type ExperienceHistory struct {
	Entries []Experience `json:"experience"`
}

// Experience is a single role at a company.
type Experience struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date,omitempty"`
	Location   string   `json:"location,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

package types

// EducationHistory represents education.json.
type EducationHistory struct {
	Entries []Education `json:"education"`
}

// Education is a single degree or certification.
type Education struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

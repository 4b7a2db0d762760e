package types

// SkillSet represents skills.json.
type SkillSet struct {
	Skills []Skill `json:"skills"`
}

// Skill is a single skill with a 0-100 proficiency used by the progress
// bars on the index page.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category,omitempty"`
}

package types

// LanguageSet represents languages.json.
type LanguageSet struct {
	Languages []Language `json:"languages"`
}

// Language is a single spoken language.
type Language struct {
	Name        string `json:"name"`
	Level       string `json:"level"`                 // e.g. "Native", "C1"
	Proficiency int    `json:"proficiency,omitempty"` // 0-100, for the bar
}

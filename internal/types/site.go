// Package types provides type definitions for the JSON resource documents
// that drive the portfolio site.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Site represents the site-wide document (site.json): titles, navigation
// and footer content shared by every page variant.
type Site struct {
	Title       string     `json:"title"`
	Tagline     string     `json:"tagline,omitempty"`
	Description string     `json:"description,omitempty"`
	Navigation  Navigation `json:"navigation"`
	Footer      Footer     `json:"footer"`
}

// Navigation holds the two shared menu lists. The index and printable CV
// pages use MainMenu; every detail page uses DetailsMenu.
type Navigation struct {
	MainMenu    []MenuItem `json:"main_menu"`
	DetailsMenu []MenuItem `json:"details_menu"`
}

// MenuItem is a single navigation entry.
type MenuItem struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Footer holds the two independently rendered footer regions.
type Footer struct {
	Text      string `json:"text,omitempty"`
	Copyright string `json:"copyright,omitempty"`
	Credits   string `json:"credits,omitempty"`
}

package types

// ProjectList represents projects.json.
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// Project is a single portfolio project.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack,omitempty"`
	RepoURL     string   `json:"repo_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
	Image       string   `json:"image,omitempty"`
	Year        int      `json:"year,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

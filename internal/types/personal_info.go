package types

// PersonalInfo represents personal_info.json: identity, contact details and
// the hero/about copy.
type PersonalInfo struct {
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	TypedRoles []string        `json:"typed_roles,omitempty"` // rotated by the typing effect
	About      []string        `json:"about,omitempty"`       // one paragraph per entry
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Location   string          `json:"location,omitempty"`
	Avatar     string          `json:"avatar,omitempty"`
	Profiles   []SocialProfile `json:"profiles,omitempty"`
}

// SocialProfile is a single external profile link.
type SocialProfile struct {
	Network string `json:"network"`
	URL     string `json:"url"`
	Icon    string `json:"icon,omitempty"`
}

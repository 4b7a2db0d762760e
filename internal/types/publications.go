package types

// PublicationList represents publications.json.
type PublicationList struct {
	Publications []Publication `json:"publications"`
}

// Publication is a single published paper or article.
type Publication struct {
	Title   string   `json:"title"`
	Venue   string   `json:"venue,omitempty"`
	Year    int      `json:"year,omitempty"`
	Authors []string `json:"authors,omitempty"`
	URL     string   `json:"url,omitempty"`
}

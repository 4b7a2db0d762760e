package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/portfolio-site/internal/data"
	"github.com/jonathan/portfolio-site/internal/types"
)

// Section binds one slice of the loaded store to one region of a page
// shell. Sections must be safe to call on any shell: a missing anchor or
// missing/malformed data is a silent no-op, and no section failure may
// affect the rest of the render sequence. The dispatcher never inspects
// a section's outcome.
type Section func(doc *goquery.Document, store *data.Store)

// Header renders the site brand region. Rendered on every variant.
func Header(doc *goquery.Document, store *data.Store) {
	renderResource[types.Site](doc, store, "site", AnchorHeader, sectionTemplate("header"), nil)
}

// Footer renders the main footer region. Rendered on every variant.
func Footer(doc *goquery.Document, store *data.Store) {
	renderResource[types.Site](doc, store, "site", AnchorFooter, sectionTemplate("footer-main"), nil)
}

// FooterBottom renders the copyright bar. Rendered on every variant.
func FooterBottom(doc *goquery.Document, store *data.Store) {
	renderResource[types.Site](doc, store, "site", AnchorFooterBottom, sectionTemplate("footer-bottom"), nil)
}

// Nav renders the navigation list selected by the dispatcher. An empty menu
// renders an empty list; that is not an error.
func Nav(doc *goquery.Document, menu []types.MenuItem) {
	writeSection(doc, AnchorNav, sectionTemplate("nav"), menu)
}

// Hero renders the landing banner from personal_info. Index variant only.
func Hero(doc *goquery.Document, store *data.Store) {
	renderResource[types.PersonalInfo](doc, store, "personal_info", AnchorHero, sectionTemplate("hero"), nil)
}

// About renders the about section from personal_info.
func About(doc *goquery.Document, store *data.Store) {
	renderResource[types.PersonalInfo](doc, store, "personal_info", AnchorAbout, sectionTemplate("about"), nil)
}

// Metrics renders the animated counters.
func Metrics(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "metrics", AnchorMetrics, sectionTemplate("metrics"),
		func(m types.MetricSet) bool { return m.Metrics != nil })
}

// Education renders the education timeline.
func Education(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "education", AnchorEducation, sectionTemplate("education"),
		func(h types.EducationHistory) bool { return h.Entries != nil })
}

// EducationDetails renders the expanded education list for the detail page.
func EducationDetails(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "education", AnchorEducationDetails, sectionTemplate("education-details"),
		func(h types.EducationHistory) bool { return h.Entries != nil })
}

// Experience renders the work experience timeline.
func Experience(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "experience", AnchorExperience, sectionTemplate("experience"),
		func(h types.ExperienceHistory) bool { return h.Entries != nil })
}

// ExperienceDetails renders the expanded experience list for the detail page.
func ExperienceDetails(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "experience", AnchorExperienceDetails, sectionTemplate("experience-details"),
		func(h types.ExperienceHistory) bool { return h.Entries != nil })
}

// Skills renders the skill progress bars.
func Skills(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "skills", AnchorSkills, sectionTemplate("skills"),
		func(s types.SkillSet) bool { return s.Skills != nil })
}

// SkillsDetails renders the expanded skill list for the detail page.
func SkillsDetails(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "skills", AnchorSkillsDetails, sectionTemplate("skills-details"),
		func(s types.SkillSet) bool { return s.Skills != nil })
}

// Languages renders the spoken languages list.
func Languages(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "languages", AnchorLanguages, sectionTemplate("languages"),
		func(l types.LanguageSet) bool { return l.Languages != nil })
}

// LanguagesDetails renders the expanded language list for the detail page.
func LanguagesDetails(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "languages", AnchorLanguagesDetails, sectionTemplate("languages-details"),
		func(l types.LanguageSet) bool { return l.Languages != nil })
}

// Projects renders the project cards.
func Projects(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "projects", AnchorProjects, sectionTemplate("projects"),
		func(p types.ProjectList) bool { return p.Projects != nil })
}

// ProjectsDetails renders the expanded project list for the detail page.
func ProjectsDetails(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "projects", AnchorProjectsDetails, sectionTemplate("projects-details"),
		func(p types.ProjectList) bool { return p.Projects != nil })
}

// Publications renders the publications list.
func Publications(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "publications", AnchorPublications, sectionTemplate("publications"),
		func(p types.PublicationList) bool { return p.Publications != nil })
}

// PublicationsDetails renders the expanded publication list for the detail page.
func PublicationsDetails(doc *goquery.Document, store *data.Store) {
	renderResource(doc, store, "publications", AnchorPublicationsDetails, sectionTemplate("publications-details"),
		func(p types.PublicationList) bool { return p.Publications != nil })
}

// ErrorPage produces a standalone document shown in place of every page
// when the resource load fails. Nothing from the store is rendered.
func ErrorPage(loadErr error) (string, error) {
	var buf strings.Builder
	if err := sectionTemplate("error-page").Execute(&buf, loadErr.Error()); err != nil {
		return "", &TemplateError{
			Message: "failed to execute error page template",
			Cause:   err,
		}
	}
	return buf.String(), nil
}

package site

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/jonathan/portfolio-site/internal/data"
	"github.com/jonathan/portfolio-site/internal/rendering"
	"github.com/jonathan/portfolio-site/internal/types"
)

// indexSections is the fixed render order for the full-site variant.
var indexSections = []rendering.Section{
	rendering.Hero,
	rendering.About,
	rendering.Metrics,
	rendering.Education,
	rendering.Experience,
	rendering.Skills,
	rendering.Languages,
	rendering.Projects,
	rendering.Publications,
}

// cvSections is the index sequence without the hero; the CV shell has none.
var cvSections = indexSections[1:]

// detailSections maps each detail category to its single render call.
var detailSections = map[Category]rendering.Section{
	CategoryEducation:    rendering.EducationDetails,
	CategoryExperience:   rendering.ExperienceDetails,
	CategorySkills:       rendering.SkillsDetails,
	CategoryLanguages:    rendering.LanguagesDetails,
	CategoryProjects:     rendering.ProjectsDetails,
	CategoryPublications: rendering.PublicationsDetails,
}

// Dispatcher runs the render sequence for classified pages against one
// loaded store. The store is read-only here; dispatching the same page
// twice against an unchanged store and shell produces identical output.
type Dispatcher struct {
	store  *data.Store
	hooks  *HookSet
	logger *log.Logger
}

// NewDispatcher creates a dispatcher over a loaded store. A nil hook set
// means no hooks are registered; a nil logger falls back to the default.
func NewDispatcher(store *data.Store, hooks *HookSet, logger *log.Logger) *Dispatcher {
	if hooks == nil {
		hooks = NewHookSet()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		store:  store,
		hooks:  hooks,
		logger: logger,
	}
}

// Render mutates doc in place: the shared regions first (header, the two
// footer regions, navigation — in that order, on every variant), then the
// variant's section sequence, then the post-render hooks. Sections are
// independently guarded, so one missing anchor or malformed resource never
// stops the sequence.
func (d *Dispatcher) Render(doc *goquery.Document, page Page) {
	rendering.Header(doc, d.store)
	rendering.Footer(doc, d.store)
	rendering.FooterBottom(doc, d.store)
	d.renderNav(doc, page)

	for _, section := range d.sections(page) {
		section(doc, d.store)
	}

	d.applyHooks(doc)
}

// renderNav selects the menu variant for the page and renders it. Without a
// well-formed site resource there is no menu to select, so navigation is
// skipped like any other guarded section.
func (d *Dispatcher) renderNav(doc *goquery.Document, page Page) {
	var siteDoc types.Site
	if err := d.store.Decode("site", &siteDoc); err != nil {
		d.logger.Debug("navigation skipped", "page", page.Name, "err", err)
		return
	}
	rendering.Nav(doc, MenuFor(page, siteDoc.Navigation))
}

func (d *Dispatcher) sections(page Page) []rendering.Section {
	switch page.Kind {
	case KindCV:
		return cvSections
	case KindDetail:
		if section, ok := detailSections[page.Category]; ok {
			return []rendering.Section{section}
		}
		return nil
	default:
		return indexSections
	}
}

// applyHooks invokes the known hooks in order. A missing hook is logged,
// not an error.
func (d *Dispatcher) applyHooks(doc *goquery.Document) {
	for _, name := range hookNames {
		hook, ok := d.hooks.Lookup(name)
		if !ok {
			d.logger.Debug("post-render hook not registered", "hook", name)
			continue
		}
		hook(doc)
	}
}

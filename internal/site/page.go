// Package site classifies page shells and drives the render sequence for
// each page variant.
package site

import "strings"

// PageKind identifies which rendering variant a shell gets.
type PageKind int

const (
	// KindIndex is the default full-site variant, including the fallback
	// for unrecognized and empty names.
	KindIndex PageKind = iota
	// KindCV is the printable CV variant.
	KindCV
	// KindDetail is a per-category detail page.
	KindDetail
)

func (k PageKind) String() string {
	switch k {
	case KindCV:
		return "cv"
	case KindDetail:
		return "detail"
	default:
		return "index"
	}
}

// Category identifies the content category of a detail page.
type Category string

// Detail page categories, one per list-shaped resource.
const (
	CategoryEducation    Category = "education"
	CategoryExperience   Category = "experience"
	CategorySkills       Category = "skills"
	CategoryLanguages    Category = "languages"
	CategoryProjects     Category = "projects"
	CategoryPublications Category = "publications"
)

// Shell file names with dedicated variants.
const (
	IndexFileName = "index.html"
	CVFileName    = "printable_cv.html"
)

// detailPages is the closed routing table from shell file name to detail
// category. Everything absent from it (and not the CV) is the index
// variant.
var detailPages = map[string]Category{
	"education-details.html":    CategoryEducation,
	"experience-details.html":   CategoryExperience,
	"skills-details.html":       CategorySkills,
	"languages-details.html":    CategoryLanguages,
	"projects-details.html":     CategoryProjects,
	"publications-details.html": CategoryPublications,
}

// Page is the classification of one shell.
type Page struct {
	Name     string
	Kind     PageKind
	Category Category // set only for KindDetail
}

// Classify determines the page variant from the final path segment of a
// document location. Classification is a pure function of that segment:
// the CV name wins first, then the detail table, and anything else —
// including the empty path and the root index — falls back to the index
// variant.
func Classify(location string) Page {
	name := location
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	if name == CVFileName {
		return Page{Name: name, Kind: KindCV}
	}
	if category, ok := detailPages[name]; ok {
		return Page{Name: name, Kind: KindDetail, Category: category}
	}
	return Page{Name: name, Kind: KindIndex}
}

package rendering

import (
	"html/template"
	"strings"
)

// Section anchors: the id selectors the renderers write into. The same
// render sequence runs against every shell; a shell that omits an anchor
// simply opts out of that section.
const (
	AnchorHeader       = "#header"
	AnchorNav          = "#nav-menu"
	AnchorFooter       = "#footer-main"
	AnchorFooterBottom = "#footer-bottom"

	AnchorHero         = "#hero"
	AnchorAbout        = "#about"
	AnchorMetrics      = "#metrics"
	AnchorEducation    = "#education"
	AnchorExperience   = "#experience"
	AnchorSkills       = "#skills"
	AnchorLanguages    = "#languages"
	AnchorProjects     = "#projects"
	AnchorPublications = "#publications"

	AnchorEducationDetails    = "#education-details"
	AnchorExperienceDetails   = "#experience-details"
	AnchorSkillsDetails       = "#skills-details"
	AnchorLanguagesDetails    = "#languages-details"
	AnchorProjectsDetails     = "#projects-details"
	AnchorPublicationsDetails = "#publications-details"
)

// templates holds every section fragment, parsed once. Fragments are
// HTML-escaped by html/template; resource data is never trusted markup.
var templates = template.Must(template.New("sections").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(sectionTemplates))

// sectionTemplate returns a named fragment template. Unknown names are a
// programmer error.
func sectionTemplate(name string) *template.Template {
	t := templates.Lookup(name)
	if t == nil {
		panic("rendering: unknown section template: " + name)
	}
	return t
}

const sectionTemplates = `
{{define "header"}}
<a class="brand" href="index.html">{{.Title}}</a>
{{if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{end}}
{{end}}

{{define "nav"}}
<ul class="nav-menu">
{{range .}}<li><a href="{{.Target}}">{{.Label}}</a></li>
{{end}}</ul>
{{end}}

{{define "footer-main"}}
{{if .Footer.Text}}<p class="footer-text">{{.Footer.Text}}</p>{{end}}
{{end}}

{{define "footer-bottom"}}
{{if .Footer.Copyright}}<span class="copyright">{{.Footer.Copyright}}</span>{{end}}
{{if .Footer.Credits}}<span class="credits">{{.Footer.Credits}}</span>{{end}}
{{end}}

{{define "hero"}}
<h1>{{.Name}}</h1>
<p class="lead">{{if .TypedRoles}}<span class="typed" data-typed-items="{{join .TypedRoles ","}}">{{.Role}}</span>{{else}}{{.Role}}{{end}}</p>
{{end}}

{{define "about"}}
{{if .Avatar}}<img class="avatar" src="{{.Avatar}}" alt="{{.Name}}">{{end}}
<h2>{{.Name}}</h2>
<h3>{{.Role}}</h3>
{{range .About}}<p>{{.}}</p>
{{end}}
<ul class="contact">
{{if .Email}}<li class="email"><a href="mailto:{{.Email}}">{{.Email}}</a></li>{{end}}
{{if .Phone}}<li class="phone">{{.Phone}}</li>{{end}}
{{if .Location}}<li class="location">{{.Location}}</li>{{end}}
</ul>
{{if .Profiles}}<ul class="profiles">
{{range .Profiles}}<li><a href="{{.URL}}" title="{{.Network}}">{{if .Icon}}<i class="{{.Icon}}"></i>{{else}}{{.Network}}{{end}}</a></li>
{{end}}</ul>{{end}}
{{end}}

{{define "metrics"}}
<div class="metrics-grid">
{{range .Metrics}}<div class="metric">
{{if .Icon}}<i class="{{.Icon}}"></i>{{end}}
<span class="counter" data-target="{{.Value}}">{{.Value}}</span>{{if .Suffix}}<span class="suffix">{{.Suffix}}</span>{{end}}
<p>{{.Label}}</p>
</div>
{{end}}</div>
{{end}}

{{define "education"}}
<h2>Education</h2>
<div class="timeline">
{{range .Entries}}<div class="timeline-item">
<h4>{{.Degree}}</h4>
<h5>{{.Institution}}</h5>
<span class="dates">{{.StartDate}}{{if .EndDate}} - {{.EndDate}}{{end}}</span>
{{if .Summary}}<p>{{.Summary}}</p>{{end}}
</div>
{{end}}</div>
{{end}}

{{define "education-details"}}
<h2>Education</h2>
{{range .Entries}}<article class="detail-entry">
<h3>{{.Degree}}</h3>
<h4>{{.Institution}}{{if .Location}} &middot; {{.Location}}{{end}}</h4>
<span class="dates">{{.StartDate}}{{if .EndDate}} - {{.EndDate}}{{end}}</span>
{{if .Summary}}<p>{{.Summary}}</p>{{end}}
{{if .Highlights}}<ul class="highlights">
{{range .Highlights}}<li>{{.}}</li>
{{end}}</ul>{{end}}
</article>
{{end}}
{{end}}

{{define "experience"}}
<h2>Experience</h2>
<div class="timeline">
{{range .Entries}}<div class="timeline-item">
<h4>{{.Role}}</h4>
<h5>{{.Company}}</h5>
<span class="dates">{{.StartDate}} - {{if .EndDate}}{{.EndDate}}{{else}}Present{{end}}</span>
{{if .Highlights}}<ul class="highlights">
{{range .Highlights}}<li>{{.}}</li>
{{end}}</ul>{{end}}
</div>
{{end}}</div>
{{end}}

{{define "experience-details"}}
<h2>Experience</h2>
{{range .Entries}}<article class="detail-entry">
<h3>{{.Role}}</h3>
<h4>{{.Company}}{{if .Location}} &middot; {{.Location}}{{end}}</h4>
<span class="dates">{{.StartDate}} - {{if .EndDate}}{{.EndDate}}{{else}}Present{{end}}</span>
{{if .Summary}}<p>{{.Summary}}</p>{{end}}
{{if .Highlights}}<ul class="highlights">
{{range .Highlights}}<li>{{.}}</li>
{{end}}</ul>{{end}}
</article>
{{end}}
{{end}}

{{define "skills"}}
<h2>Skills</h2>
<div class="skills-grid">
{{range .Skills}}<div class="skill">
<span class="skill-name">{{.Name}}</span>
<div class="progress"><div class="progress-bar" data-level="{{.Level}}" style="width: {{.Level}}%"></div></div>
</div>
{{end}}</div>
{{end}}

{{define "skills-details"}}
<h2>Skills</h2>
{{range .Skills}}<div class="detail-entry skill">
<span class="skill-name">{{.Name}}</span>{{if .Category}}<span class="skill-category">{{.Category}}</span>{{end}}
<div class="progress"><div class="progress-bar" data-level="{{.Level}}" style="width: {{.Level}}%"></div></div>
</div>
{{end}}
{{end}}

{{define "languages"}}
<h2>Languages</h2>
<ul class="languages">
{{range .Languages}}<li><span class="language-name">{{.Name}}</span> <span class="language-level">{{.Level}}</span></li>
{{end}}</ul>
{{end}}

{{define "languages-details"}}
<h2>Languages</h2>
{{range .Languages}}<div class="detail-entry language">
<span class="language-name">{{.Name}}</span> <span class="language-level">{{.Level}}</span>
{{if .Proficiency}}<div class="progress"><div class="progress-bar" data-level="{{.Proficiency}}" style="width: {{.Proficiency}}%"></div></div>{{end}}
</div>
{{end}}
{{end}}

{{define "projects"}}
<h2>Projects</h2>
<div class="projects-grid">
{{range .Projects}}<div class="project{{if .Featured}} featured{{end}}">
{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
<h4>{{.Title}}</h4>
<p>{{.Description}}</p>
{{if .TechStack}}<span class="tech">{{join .TechStack ", "}}</span>{{end}}
</div>
{{end}}</div>
{{end}}

{{define "projects-details"}}
<h2>Projects</h2>
{{range .Projects}}<article class="detail-entry project{{if .Featured}} featured{{end}}">
{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
<h3>{{.Title}}{{if .Year}} <span class="year">({{.Year}})</span>{{end}}</h3>
<p>{{.Description}}</p>
{{if .TechStack}}<span class="tech">{{join .TechStack ", "}}</span>{{end}}
<ul class="links">
{{if .RepoURL}}<li><a href="{{.RepoURL}}">Source</a></li>{{end}}
{{if .LiveURL}}<li><a href="{{.LiveURL}}">Live</a></li>{{end}}
</ul>
</article>
{{end}}
{{end}}

{{define "publications"}}
<h2>Publications</h2>
<ul class="publications">
{{range .Publications}}<li>
{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}<span class="pub-title">{{.Title}}</span>{{end}}
{{if .Venue}}<span class="venue">{{.Venue}}</span>{{end}}{{if .Year}}<span class="year">{{.Year}}</span>{{end}}
</li>
{{end}}</ul>
{{end}}

{{define "publications-details"}}
<h2>Publications</h2>
{{range .Publications}}<article class="detail-entry publication">
{{if .URL}}<a href="{{.URL}}"><h3>{{.Title}}</h3></a>{{else}}<h3>{{.Title}}</h3>{{end}}
{{if .Authors}}<p class="authors">{{join .Authors ", "}}</p>{{end}}
{{if .Venue}}<span class="venue">{{.Venue}}</span>{{end}}{{if .Year}}<span class="year">{{.Year}}</span>{{end}}
</article>
{{end}}
{{end}}

{{define "error-page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Something went wrong</title>
</head>
<body>
<main class="load-error">
<h1>Something went wrong</h1>
<p>The site data could not be loaded. Please try again later.</p>
<p class="error-detail">{{.}}</p>
</main>
</body>
</html>
{{end}}
`

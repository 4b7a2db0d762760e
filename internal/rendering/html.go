package rendering

import (
	"html/template"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/portfolio-site/internal/data"
)

// ParseDocument parses an HTML page shell.
func ParseDocument(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &RenderError{
			Message: "failed to parse page shell",
			Cause:   err,
		}
	}
	return doc, nil
}

// ParseDocumentString parses an HTML page shell held in memory.
func ParseDocumentString(html string) (*goquery.Document, error) {
	return ParseDocument(strings.NewReader(html))
}

// Serialize returns the full HTML of a rendered document, doctype included.
func Serialize(doc *goquery.Document) (string, error) {
	html, err := doc.Html()
	if err != nil {
		return "", &RenderError{
			Message: "failed to serialize document",
			Cause:   err,
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(html), "<!DOCTYPE") {
		html = "<!DOCTYPE html>\n" + html
	}
	return html, nil
}

// writeSection executes tmpl with tmplData and writes the result inside the
// first node matching selector. It reports whether anything was written;
// a missing anchor or a template failure leaves the shell untouched.
func writeSection(doc *goquery.Document, selector string, tmpl *template.Template, tmplData any) bool {
	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return false
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, tmplData); err != nil {
		return false
	}

	sel.First().SetHtml(buf.String())
	return true
}

// renderResource is the one templating pattern every section repeats:
// decode one resource out of the store, check its shape, execute the
// section template and write the fragment into the section anchor. Missing
// or malformed data is a silent no-op so that the same render sequence can
// run against shells that do not carry every section's markup.
func renderResource[T any](doc *goquery.Document, store *data.Store, key, selector string, tmpl *template.Template, valid func(T) bool) {
	var v T
	if err := store.Decode(key, &v); err != nil {
		return
	}
	if valid != nil && !valid(v) {
		return
	}
	writeSection(doc, selector, tmpl, v)
}

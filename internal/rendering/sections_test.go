package rendering

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-site/internal/data"
	"github.com/jonathan/portfolio-site/internal/types"
)

func storeFrom(t *testing.T, docs map[string]string) *data.Store {
	t.Helper()

	dir := t.TempDir()
	ids := make([]string, 0, len(docs))
	for id, body := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), []byte(body), 0o644))
		ids = append(ids, id)
	}

	store, err := data.NewLoader(data.NewFileSource(dir), ids).Load(context.Background())
	require.NoError(t, err)
	return store
}

func shell(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := ParseDocumentString(html)
	require.NoError(t, err)
	return doc
}

func TestHeader_RendersBrand(t *testing.T) {
	store := storeFrom(t, map[string]string{
		"site": `{"title": "Ada Lovelace", "tagline": "Engineer & writer"}`,
	})
	doc := shell(t, `<body><header id="header"></header></body>`)

	Header(doc, store)

	assert.Equal(t, "Ada Lovelace", doc.Find("#header a.brand").Text())
	assert.Equal(t, "Engineer & writer", doc.Find("#header .tagline").Text())
}

func TestHeader_OmitsEmptyTagline(t *testing.T) {
	store := storeFrom(t, map[string]string{"site": `{"title": "Ada"}`})
	doc := shell(t, `<body><header id="header"></header></body>`)

	Header(doc, store)

	assert.Equal(t, 0, doc.Find("#header .tagline").Length())
}

func TestFooterRegions_RenderIndependently(t *testing.T) {
	store := storeFrom(t, map[string]string{
		"site": `{"title": "A", "footer": {"text": "Thanks", "copyright": "© Ada", "credits": "Template by X"}}`,
	})
	doc := shell(t, `<body><footer id="footer-main"></footer><div id="footer-bottom"></div></body>`)

	Footer(doc, store)
	FooterBottom(doc, store)

	assert.Equal(t, "Thanks", doc.Find("#footer-main .footer-text").Text())
	assert.Equal(t, "© Ada", doc.Find("#footer-bottom .copyright").Text())
	assert.Equal(t, "Template by X", doc.Find("#footer-bottom .credits").Text())
}

func TestNav_RendersMenuEntries(t *testing.T) {
	doc := shell(t, `<body><nav id="nav-menu"></nav></body>`)

	Nav(doc, []types.MenuItem{
		{Label: "Home", Target: "#hero"},
		{Label: "About", Target: "#about"},
	})

	links := doc.Find("#nav-menu li a")
	require.Equal(t, 2, links.Length())
	assert.Equal(t, "Home", links.First().Text())
	href, _ := links.First().Attr("href")
	assert.Equal(t, "#hero", href)
}

func TestNav_EmptyMenuRendersEmptyList(t *testing.T) {
	doc := shell(t, `<body><nav id="nav-menu"></nav></body>`)

	Nav(doc, nil)

	assert.Equal(t, 1, doc.Find("#nav-menu ul.nav-menu").Length())
	assert.Equal(t, 0, doc.Find("#nav-menu li").Length())
}

func TestHero_RendersTypedSpanOnlyWithRotationItems(t *testing.T) {
	store := storeFrom(t, map[string]string{
		"personal_info": `{"name": "Ada", "role": "Engineer", "typed_roles": ["Engineer", "Writer"]}`,
	})
	doc := shell(t, `<body><section id="hero"></section></body>`)

	Hero(doc, store)

	assert.Equal(t, "Ada", doc.Find("#hero h1").Text())
	items, ok := doc.Find("#hero span.typed").Attr("data-typed-items")
	require.True(t, ok)
	assert.Equal(t, "Engineer,Writer", items)
}

func TestHero_PlainRoleWithoutRotationItems(t *testing.T) {
	store := storeFrom(t, map[string]string{
		"personal_info": `{"name": "Ada", "role": "Engineer"}`,
	})
	doc := shell(t, `<body><section id="hero"></section></body>`)

	Hero(doc, store)

	assert.Equal(t, 0, doc.Find("#hero span.typed").Length())
	assert.Contains(t, doc.Find("#hero .lead").Text(), "Engineer")
}

func TestAbout_RendersParagraphsAndContact(t *testing.T) {
	store := storeFrom(t, map[string]string{
		"personal_info": `{
			"name": "Ada", "role": "Engineer",
			"about": ["First.", "Second."],
			"email": "ada@example.com",
			"profiles": [{"network": "GitHub", "url": "https://github.com/ada"}]
		}`,
	})
	doc := shell(t, `<body><section id="about"></section></body>`)

	About(doc, store)

	assert.Equal(t, 2, doc.Find("#about p").Length())
	href, _ := doc.Find("#about .contact .email a").Attr("href")
	assert.Equal(t, "mailto:ada@example.com", href)
	assert.Equal(t, "GitHub", doc.Find("#about .profiles li a").Text())
}

func TestMetrics_RendersCountersWithTargets(t *testing.T) {
	store := storeFrom(t, map[string]string{
		"metrics": `{"metrics": [{"label": "Projects", "value": 12, "suffix": "+"}]}`,
	})
	doc := shell(t, `<body><section id="metrics"></section></body>`)

	Metrics(doc, store)

	counter := doc.Find("#metrics span.counter")
	require.Equal(t, 1, counter.Length())
	target, _ := counter.Attr("data-target")
	assert.Equal(t, "12", target)
	assert.Equal(t, "+", doc.Find("#metrics .suffix").Text())
}

func TestSection_MissingAnchorIsNoOp(t *testing.T) {
	store := storeFrom(t, map[string]string{
		"personal_info": `{"name": "Ada", "role": "Engineer"}`,
	})
	doc := shell(t, `<body><section id="about"></section></body>`)

	Hero(doc, store) // no #hero anchor in this shell

	html, err := Serialize(doc)
	require.NoError(t, err)
	assert.NotContains(t, html, "Ada")
}

func TestSection_MissingResourceIsNoOp(t *testing.T) {
	store := storeFrom(t, map[string]string{"site": `{"title": "A"}`})
	doc := shell(t, `<body><section id="metrics">placeholder</section></body>`)

	Metrics(doc, store)

	assert.Equal(t, "placeholder", doc.Find("#metrics").Text())
}

func TestSection_MalformedResourceIsNoOp(t *testing.T) {
	store := storeFrom(t, map[string]string{
		"education": `{"education": "not an array"}`,
	})
	doc := shell(t, `<body><section id="education">placeholder</section></body>`)

	Education(doc, store)

	assert.Equal(t, "placeholder", doc.Find("#education").Text())
}

func TestSection_EmptyListStillRenders(t *testing.T) {
	// An empty-but-present list passes the shape guard; only a missing or
	// wrongly shaped list is skipped.
	store := storeFrom(t, map[string]string{"skills": `{"skills": []}`})
	doc := shell(t, `<body><section id="skills">placeholder</section></body>`)

	Skills(doc, store)

	assert.Equal(t, "Skills", doc.Find("#skills h2").Text())
}

func TestRenderResource_EscapesResourceText(t *testing.T) {
	store := storeFrom(t, map[string]string{
		"personal_info": `{"name": "<script>alert(1)</script>", "role": "Engineer"}`,
	})
	doc := shell(t, `<body><section id="hero"></section></body>`)

	Hero(doc, store)

	assert.Equal(t, 0, doc.Find("#hero script").Length())
	assert.Contains(t, doc.Find("#hero h1").Text(), "<script>")
}

func TestWriteSection_ReportsWhetherAnchorMatched(t *testing.T) {
	doc := shell(t, `<body><div id="present"></div></body>`)
	tmpl := sectionTemplate("nav")

	assert.True(t, writeSection(doc, "#present", tmpl, nil))
	assert.False(t, writeSection(doc, "#absent", tmpl, nil))
}

func TestErrorPage_IncludesFailureDetail(t *testing.T) {
	html, err := ErrorPage(errors.New("fetching resource site: boom"))
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Something went wrong")
	assert.Contains(t, html, "fetching resource site: boom")
}

func TestSerialize_PrependsDoctype(t *testing.T) {
	doc := shell(t, `<html><body><p>hi</p></body></html>`)

	html, err := Serialize(doc)
	require.NoError(t, err)

	assert.True(t, len(html) > 0)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<p>hi</p>")
}

func TestSectionTemplate_UnknownNamePanics(t *testing.T) {
	assert.Panics(t, func() { sectionTemplate("no-such-fragment") })
}

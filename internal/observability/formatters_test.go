package observability

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-site/internal/data"
)

func loadedStore(t *testing.T) *data.Store {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.json"), []byte(`{"title":"A"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metrics.json"), []byte(`{"metrics":[]}`), 0o644))

	store, err := data.NewLoader(data.NewFileSource(dir), []string{"site", "metrics"}).Load(context.Background())
	require.NoError(t, err)
	return store
}

func TestPrintStoreSummary(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintStoreSummary(loadedStore(t))

	out := buf.String()
	assert.Contains(t, out, "LOADED STORE (2 resources)")
	assert.Contains(t, out, "site")
	assert.Contains(t, out, "metrics")
	assert.Contains(t, out, "bytes")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintStoreSummary_NilAndEmptyStore(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintStoreSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintPageSummary(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintPageSummary("index.html", "index", 2048)

	out := buf.String()
	assert.Contains(t, out, "PAGE index.html")
	assert.Contains(t, out, "Variant: index")
	assert.Contains(t, out, "2048 bytes")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
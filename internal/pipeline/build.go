// Package pipeline orchestrates a full site build: load every resource in
// the Resource Set, then classify and render each HTML shell into the
// output directory.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jonathan/portfolio-site/internal/data"
	"github.com/jonathan/portfolio-site/internal/observability"
	"github.com/jonathan/portfolio-site/internal/rendering"
	"github.com/jonathan/portfolio-site/internal/site"
)

// Build step names used in progress events.
const (
	StepLoad   = "load"
	StepRender = "render"
	StepWrite  = "write"
	StepError  = "error"
)

// ProgressEvent represents a progress update during a build.
type ProgressEvent struct {
	Step    string `json:"step"`
	Page    string `json:"page,omitempty"`
	Message string `json:"message"`
}

// ProgressCallback is called when build progress occurs.
type ProgressCallback func(event ProgressEvent)

// BuildOptions holds configuration for running a build.
type BuildOptions struct {
	DataURL    string // base URL serving <id>.json documents
	DataDir    string // alternative: local directory of documents
	PagesDir   string // directory of HTML shells
	OutputDir  string
	Resources  []string // empty means data.DefaultResources
	CacheDir   string
	CacheTTL   time.Duration
	UseCache   bool // cache applies to the HTTP source only
	Verbose    bool
	Logger     *log.Logger
	Hooks      *site.HookSet // nil means site.DefaultHooks()
	OnProgress ProgressCallback
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *BuildOptions, step, page, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Page:    page,
			Message: message,
		})
	}
}

// RunBuild loads the Resource Set and renders every shell in the pages
// directory. The load is all-or-nothing: on any fetch or parse failure no
// section is rendered — every output page is replaced by the error notice
// and the load error is returned.
func RunBuild(ctx context.Context, opts BuildOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	hooks := opts.Hooks
	if hooks == nil {
		hooks = site.DefaultHooks()
	}

	source, err := buildSource(&opts)
	if err != nil {
		return err
	}

	shells, err := listShells(opts.PagesDir)
	if err != nil {
		return err
	}
	if len(shells) == 0 {
		return fmt.Errorf("no HTML shells found in %s", opts.PagesDir)
	}

	loader := data.NewLoader(source, opts.Resources)
	logger.Info("loading resources", "count", len(loader.Resources()))

	store, err := loader.Load(ctx)
	if err != nil {
		emitProgress(&opts, StepError, "", err.Error())
		logger.Error("resource load failed", "err", err)
		if werr := writeErrorPages(&opts, shells, err); werr != nil {
			logger.Error("failed to write error pages", "err", werr)
		}
		return fmt.Errorf("resource load failed: %w", err)
	}
	emitProgress(&opts, StepLoad, "", fmt.Sprintf("loaded %d resources", store.Len()))

	printer := observability.NewPrinter(os.Stdout)
	if opts.Verbose {
		printer.PrintStoreSummary(store)
	}

	dispatcher := site.NewDispatcher(store, hooks, logger)

	for _, name := range shells {
		page := site.Classify(name)

		rendered, err := renderShell(opts.PagesDir, name, dispatcher, page)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		emitProgress(&opts, StepRender, name, fmt.Sprintf("rendered %s variant", page.Kind))

		if err := writePage(opts.OutputDir, name, rendered); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		emitProgress(&opts, StepWrite, name, "written")

		logger.Info("page built", "page", name, "variant", page.Kind.String())
		if opts.Verbose {
			printer.PrintPageSummary(name, page.Kind.String(), len(rendered))
		}
	}

	return nil
}

// buildSource constructs the resource source from the options: exactly one
// of DataURL and DataDir must be set. The cache wraps the HTTP source only;
// local files are already on disk.
func buildSource(opts *BuildOptions) (data.Source, error) {
	switch {
	case opts.DataURL != "" && opts.DataDir != "":
		return nil, fmt.Errorf("data URL and data directory are mutually exclusive")
	case opts.DataURL != "":
		source, err := data.NewHTTPSource(opts.DataURL, nil)
		if err != nil {
			return nil, err
		}
		if opts.UseCache {
			return data.NewCachedSource(source, &data.CachedSourceConfig{
				Dir: opts.CacheDir,
				TTL: opts.CacheTTL,
			}), nil
		}
		return source, nil
	case opts.DataDir != "":
		return data.NewFileSource(opts.DataDir), nil
	default:
		return nil, fmt.Errorf("either a data URL or a data directory is required")
	}
}

// listShells returns the sorted *.html file names directly under dir.
func listShells(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory %s: %w", dir, err)
	}

	var shells []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		shells = append(shells, entry.Name())
	}
	sort.Strings(shells)
	return shells, nil
}

// renderShell parses one shell, dispatches the page render and returns the
// serialized document.
func renderShell(pagesDir, name string, dispatcher *site.Dispatcher, page site.Page) (string, error) {
	f, err := os.Open(filepath.Join(pagesDir, name))
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	doc, err := rendering.ParseDocument(f)
	if err != nil {
		return "", err
	}

	dispatcher.Render(doc, page)

	return rendering.Serialize(doc)
}

// writeErrorPages replaces every output page with the load error notice.
func writeErrorPages(opts *BuildOptions, shells []string, loadErr error) error {
	notice, err := rendering.ErrorPage(loadErr)
	if err != nil {
		return err
	}
	for _, name := range shells {
		if err := writePage(opts.OutputDir, name, notice); err != nil {
			return err
		}
	}
	return nil
}

func writePage(outputDir, name, content string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, name), []byte(content), 0o644)
}

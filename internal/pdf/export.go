// Package pdf exports the printable CV page to PDF through a headless
// browser. Requires Chrome/Chromium to be installed on the system.
package pdf

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds the whole navigate-and-print run.
const DefaultTimeout = 60 * time.Second

// Options configures the PDF export.
type Options struct {
	Timeout         time.Duration
	Landscape       bool
	PrintBackground bool
}

// DefaultOptions returns sensible defaults for a printable CV.
func DefaultOptions() *Options {
	return &Options{
		Timeout:         DefaultTimeout,
		PrintBackground: true,
	}
}

// Export renders the page at pageURL (http://, https:// or file://) in a
// headless browser and writes the printed PDF to outPath.
func Export(ctx context.Context, pageURL, outPath string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(opts.PrintBackground).
				WithLandscape(opts.Landscape).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = buf
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("browser rendering failed: %w", err)
	}

	if err := os.WriteFile(outPath, pdfData, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// PageURL normalizes a page argument: URLs pass through, local paths become
// file:// URLs the browser can navigate to.
func PageURL(arg string) (string, error) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") || strings.HasPrefix(arg, "file://") {
		return arg, nil
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve page path: %w", err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// Package data implements retrieval of the site's JSON resource documents
// and the in-memory store the page renderers read from.
package data

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; PortfolioSite/1.0)"

// Error represents a failure to retrieve or parse one resource document.
type Error struct {
	Resource string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resource error for %s: %s: %v", e.Resource, e.Message, e.Cause)
	}
	return fmt.Sprintf("resource error for %s: %s", e.Resource, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Source retrieves the raw bytes of one named resource document.
// Implementations must be safe for concurrent use; the loader fans out one
// Get per resource.
type Source interface {
	Get(ctx context.Context, id string) ([]byte, error)
}

// HTTPSource retrieves resources at <base_url>/<id>.json.
type HTTPSource struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

// HTTPOptions configures an HTTPSource.
type HTTPOptions struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultHTTPOptions returns sensible defaults for fetching.
func DefaultHTTPOptions() *HTTPOptions {
	return &HTTPOptions{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// NewHTTPSource creates an HTTPSource for the given base URL.
func NewHTTPSource(baseURL string, opts *HTTPOptions) (*HTTPSource, error) {
	if opts == nil {
		opts = DefaultHTTPOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{
			Resource: baseURL,
			Message:  "invalid base URL",
			Cause:    err,
		}
	}

	return &HTTPSource{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
	}, nil
}

// Get retrieves one resource document over HTTP. A non-200 status is an
// error; the body is returned unparsed.
func (s *HTTPSource) Get(ctx context.Context, id string) ([]byte, error) {
	target := s.baseURL + "/" + resourceFile(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{
			Resource: id,
			Message:  "failed to create request",
			Cause:    err,
		}
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &Error{
			Resource: id,
			Message:  "HTTP request failed",
			Cause:    err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Resource: id,
			Message:  "failed to read response body",
			Cause:    err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Resource: id,
			Message:  fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return body, nil
}

// FileSource retrieves resources from <dir>/<id>.json on the local
// filesystem. Used when the data directory is checked out next to the
// shells rather than served over HTTP.
type FileSource struct {
	dir string
}

// NewFileSource creates a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Get reads one resource document from disk.
func (s *FileSource) Get(_ context.Context, id string) ([]byte, error) {
	body, err := os.ReadFile(filepath.Join(s.dir, resourceFile(id)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{
				Resource: id,
				Message:  "resource file not found",
				Cause:    err,
			}
		}
		return nil, &Error{
			Resource: id,
			Message:  "failed to read resource file",
			Cause:    err,
		}
	}
	return body, nil
}

// resourceFile maps an identifier to its document file name. Identifiers
// are usually bare ("site"); an identifier that already carries an
// extension is used as-is.
func resourceFile(id string) string {
	if filepath.Ext(id) != "" {
		return id
	}
	return id + ".json"
}

// resourceKey strips any file extension from an identifier, producing the
// key the document is stored under.
func resourceKey(id string) string {
	return strings.TrimSuffix(id, filepath.Ext(id))
}

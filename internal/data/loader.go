package data

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"
)

// DefaultResources is the ordered Resource Set: one identifier per JSON
// document the site is rendered from.
var DefaultResources = []string{
	"site",
	"personal_info",
	"metrics",
	"education",
	"experience",
	"skills",
	"languages",
	"projects",
	"publications",
}

// Loader retrieves every resource in a Resource Set and assembles the
// Store. The batch is all-or-nothing: one failed retrieval or one document
// that is not valid JSON fails the whole load and no Store is produced.
type Loader struct {
	source    Source
	resources []string
}

// NewLoader creates a Loader over the given source. A nil or empty resource
// list loads DefaultResources.
func NewLoader(source Source, resources []string) *Loader {
	if len(resources) == 0 {
		resources = DefaultResources
	}
	return &Loader{
		source:    source,
		resources: resources,
	}
}

// Resources returns the identifiers this loader retrieves, in order.
func (l *Loader) Resources() []string {
	out := make([]string, len(l.resources))
	copy(out, l.resources)
	return out
}

// Load retrieves all resources concurrently and returns the populated
// Store. The first failure cancels the remaining retrievals and Load
// returns that error with no Store; rendering must not proceed.
func (l *Loader) Load(ctx context.Context) (*Store, error) {
	docs := make([]json.RawMessage, len(l.resources))

	g, gCtx := errgroup.WithContext(ctx)
	for i, id := range l.resources {
		g.Go(func() error {
			body, err := l.source.Get(gCtx, id)
			if err != nil {
				return err
			}
			if !json.Valid(body) {
				return &Error{
					Resource: id,
					Message:  "document is not valid JSON",
				}
			}
			docs[i] = json.RawMessage(body)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resources := make(map[string]json.RawMessage, len(l.resources))
	for i, id := range l.resources {
		resources[resourceKey(id)] = docs[i]
	}
	return &Store{resources: resources}, nil
}

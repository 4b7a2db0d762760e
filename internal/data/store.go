package data

import (
	"encoding/json"
	"sort"
)

// Store is the loaded mapping from resource identifier to its parsed JSON
// document. It is populated once by a Loader and read-only afterwards;
// renderers address it directly via Decode.
type Store struct {
	resources map[string]json.RawMessage
}

// Len returns the number of loaded resources.
func (s *Store) Len() int {
	return len(s.resources)
}

// Has reports whether a resource was loaded under the given key.
func (s *Store) Has(key string) bool {
	_, ok := s.resources[key]
	return ok
}

// Keys returns the loaded resource keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.resources))
	for k := range s.resources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Raw returns the raw JSON document for a key.
func (s *Store) Raw(key string) (json.RawMessage, bool) {
	raw, ok := s.resources[key]
	return raw, ok
}

// Decode unmarshals the document stored under key into v. A missing key or
// a document that does not fit v's shape is an error; section renderers
// treat either as a signal to skip the section.
func (s *Store) Decode(key string, v any) error {
	raw, ok := s.resources[key]
	if !ok {
		return &Error{
			Resource: key,
			Message:  "resource not loaded",
		}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &Error{
			Resource: key,
			Message:  "resource does not match expected shape",
			Cause:    err,
		}
	}
	return nil
}

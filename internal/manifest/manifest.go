// Package manifest loads the flat listing of named motion clips and filters
// it into per-variant views.
//
// A manifest is a record sequence of {name, path} pairs. The name is the
// logical clip name the motion graph binds against (e.g. "walk_side"); the
// path locates the authored clip and embeds the variant tag as a delimited
// path segment (e.g. "clips/B/walk_side.anim").
package manifest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrMalformed is wrapped by loaders when the manifest text cannot be
// trusted at all. It is fatal; the run stops.
var ErrMalformed = errors.New("malformed manifest")

// Entry is one motion clip record. Names need not be unique across the
// whole manifest; uniqueness is only enforced within one variant's view.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Loader reads a manifest document from a path into its entry sequence,
// preserving declaration order.
type Loader interface {
	Load(ctx context.Context, path string) ([]Entry, error)
}

// LoaderFor picks the loader matching the file extension. YAML manifests
// are recognised by extension; everything else is treated as JSON.
func LoaderFor(path string) Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return &YAMLLoader{}
	default:
		return &JSONLoader{}
	}
}

// validate rejects entries a later stage could not act on. An empty name
// can never be bound by the graph, so it poisons the whole manifest.
func validate(entries []Entry) error {
	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("entry %d has an empty name (path %q): %w", i, e.Path, ErrMalformed)
		}
	}
	return nil
}

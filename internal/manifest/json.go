package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
)

// document is the canonical wrapped manifest shape.
type document struct {
	Animations []Entry `json:"animations" yaml:"animations"`
}

// JSONLoader reads a JSON manifest. The canonical shape is a named
// container, {"animations": [...]}; a bare array is tolerated by re-wrapping
// the raw content and parsing once more. Callers see a single parse step
// with one fallback, not two formats.
type JSONLoader struct{}

// Load implements Loader.
func (l *JSONLoader) Load(ctx context.Context, path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}
	entries, err := ParseJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Manifest loaded.", "path", path, "entries", len(entries))
	return entries, nil
}

// ParseJSON decodes manifest entries from raw JSON text.
func ParseJSON(raw []byte) ([]Entry, error) {
	var doc document
	wrappedErr := json.Unmarshal(raw, &doc)
	if wrappedErr != nil {
		// Fallback: the author omitted the container and exported the raw
		// array. Re-wrap and parse a second time.
		rewrapped := make([]byte, 0, len(raw)+len(`{"animations":}`))
		rewrapped = append(rewrapped, `{"animations":`...)
		rewrapped = append(rewrapped, raw...)
		rewrapped = append(rewrapped, '}')
		if err := json.Unmarshal(rewrapped, &doc); err != nil {
			return nil, fmt.Errorf("neither wrapped (%v) nor bare-array form parsed: %w", wrappedErr, ErrMalformed)
		}
	}
	if err := validate(doc.Animations); err != nil {
		return nil, err
	}
	return doc.Animations, nil
}

package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
)

// YAMLLoader reads a YAML manifest with the same semantics as JSONLoader:
// a wrapped "animations" sequence, or a bare sequence as the fallback.
type YAMLLoader struct{}

// Load implements Loader.
func (l *YAMLLoader) Load(ctx context.Context, path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}
	entries, err := ParseYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Manifest loaded.", "path", path, "entries", len(entries))
	return entries, nil
}

// ParseYAML decodes manifest entries from raw YAML text.
func ParseYAML(raw []byte) ([]Entry, error) {
	var doc document
	wrappedErr := yaml.Unmarshal(raw, &doc)
	if wrappedErr == nil {
		if err := validate(doc.Animations); err != nil {
			return nil, err
		}
		return doc.Animations, nil
	}

	// Fallback for a bare sequence export.
	var entries []Entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("neither wrapped (%v) nor bare-sequence form parsed: %w", wrappedErr, ErrMalformed)
	}
	if err := validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

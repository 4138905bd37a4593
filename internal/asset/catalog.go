package asset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
)

// catalogDocument is the on-disk catalog shape, a sidecar the clip export
// pipeline writes next to the manifest.
type catalogDocument struct {
	Clips []Clip `json:"clips" yaml:"clips"`
}

// LoadCatalog reads a clip catalog document. YAML is recognised by file
// extension; everything else parses as JSON. Later records win on a
// duplicate path, matching the export pipeline's append-and-rewrite habit.
func LoadCatalog(ctx context.Context, path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading clip catalog %q: %w", path, err)
	}

	var doc catalogDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &doc)
	default:
		err = json.Unmarshal(raw, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing clip catalog %q: %w", path, err)
	}

	cat := make(MapCatalog, len(doc.Clips))
	for i := range doc.Clips {
		c := doc.Clips[i]
		if c.Path == "" {
			return nil, fmt.Errorf("clip catalog %q: record %d has an empty path", path, i)
		}
		cat[c.Path] = &c
	}
	ctxlog.FromContext(ctx).Debug("Clip catalog loaded.", "path", path, "clips", len(cat))
	return cat, nil
}

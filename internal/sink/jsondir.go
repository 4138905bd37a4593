package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/motion"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/patch"
)

// JSONDir writes compilation output as indented JSON files under one
// directory: graph.json, then patch_<variant>.json per variant. Output is
// deterministic (struct field order plus encoding/json's sorted map keys),
// so downstream tooling can diff artifacts across builds.
type JSONDir struct {
	Dir string
}

// NewJSONDir creates the output directory if needed and returns the sink.
func NewJSONDir(dir string) (*JSONDir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %q: %w", dir, err)
	}
	return &JSONDir{Dir: dir}, nil
}

// WriteGraph implements Sink.
func (s *JSONDir) WriteGraph(ctx context.Context, g *motion.Graph) error {
	path := filepath.Join(s.Dir, "graph.json")
	if err := s.write(path, g); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Graph written.", "path", path, "states", len(g.States))
	return nil
}

// WritePatch implements Sink.
func (s *JSONDir) WritePatch(ctx context.Context, p *patch.Patch) error {
	path := filepath.Join(s.Dir, "patch_"+p.Variant+".json")
	if err := s.write(path, p); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Patch written.", "path", path, "variant", p.Variant, "substitutions", len(p.Substitutions))
	return nil
}

func (s *JSONDir) write(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

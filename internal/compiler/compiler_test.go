package compiler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/asset"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/config"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/diag"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/manifest"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/motion"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/sink"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return ctxlog.WithLogger(context.Background(), logger)
}

// writeFixtures lays out a manifest and clip catalog in a temp dir:
// a full variant A, a variant B overriding walk_side and slide_side, and
// a B entry for run_down that has no catalog record.
func writeFixtures(t *testing.T) (manifestPath, catalogPath string) {
	t.Helper()
	dir := t.TempDir()

	var entries []manifest.Entry
	var clips []asset.Clip
	for _, s := range motion.Catalog() {
		for _, suffix := range []string{"down", "up", "side"} {
			name := motion.SubName(s, suffix)
			path := fmt.Sprintf("clips/A/%s.anim", name)
			entries = append(entries, manifest.Entry{Name: name, Path: path})
			clip := asset.Clip{Path: path, Duration: 0.5}
			if name == "slide_side" {
				clip.Markers = []asset.Marker{{Name: "OnSlideAnimationEnd", Time: 0.5}}
			}
			clips = append(clips, clip)
		}
	}
	entries = append(entries,
		manifest.Entry{Name: "walk_side", Path: "clips/B/walk_side.anim"},
		manifest.Entry{Name: "slide_side", Path: "clips/B/slide_side.anim"},
		manifest.Entry{Name: "run_down", Path: "clips/B/run_down.anim"},
	)
	clips = append(clips,
		asset.Clip{Path: "clips/B/walk_side.anim", Duration: 0.6},
		asset.Clip{Path: "clips/B/slide_side.anim", Duration: 1.1},
	)

	manifestPath = filepath.Join(dir, "manifest.json")
	rawManifest, err := json.Marshal(map[string]any{"animations": entries})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(manifestPath, rawManifest, 0o600))

	catalogPath = filepath.Join(dir, "clips.json")
	rawCatalog, err := json.Marshal(map[string]any{"clips": clips})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(catalogPath, rawCatalog, 0o600))
	return manifestPath, catalogPath
}

func TestRun_FullCompilation(t *testing.T) {
	manifestPath, catalogPath := writeFixtures(t)
	cfg := &config.Config{
		ManifestPath: manifestPath,
		CatalogPath:  catalogPath,
		OutputDir:    t.TempDir(),
		BaseVariant:  "A",
		Variants:     []string{"B", "E"},
	}
	out := &sink.Memory{}

	result, diags, err := Run(testContext(t), cfg, out)
	require.NoError(t, err)
	require.NotNil(t, result.Graph)
	assert.Equal(t, motion.Idle, result.Graph.Entry)

	require.Len(t, result.Patches, 2)

	b := result.Patches[0]
	assert.Equal(t, "B", b.Variant)
	require.Len(t, b.Substitutions, 2)
	assert.Equal(t, "walk_side", b.Substitutions[0].Name)
	assert.Equal(t, "slide_side", b.Substitutions[1].Name)
	require.Len(t, b.Markers["clips/B/slide_side.anim"], 1)
	assert.Equal(t, 1.1, b.Markers["clips/B/slide_side.anim"][0].Time)

	// run_down's substitute is not in the catalog: dropped, diagnosed.
	assert.Len(t, diags.ByCode(diag.CodeUnresolvedOverride), 1)

	// Variant E matches nothing: empty patch plus one warning, no error.
	e := result.Patches[1]
	assert.True(t, e.Empty())
	assert.Len(t, diags.ByCode(diag.CodeEmptyVariantFilter), 1)
	assert.False(t, diags.HasErrors())

	// Everything went through the sink: graph first, then both patches.
	assert.NotNil(t, out.Graph)
	assert.Len(t, out.Patches, 2)
}

func TestRun_SkipEmptyPatches(t *testing.T) {
	manifestPath, catalogPath := writeFixtures(t)
	cfg := &config.Config{
		ManifestPath:     manifestPath,
		CatalogPath:      catalogPath,
		OutputDir:        t.TempDir(),
		BaseVariant:      "A",
		Variants:         []string{"E", "B"},
		SkipEmptyPatches: true,
	}
	out := &sink.Memory{}

	result, _, err := Run(testContext(t), cfg, out)
	require.NoError(t, err)
	// Both patches are computed and reported...
	require.Len(t, result.Patches, 2)
	// ...but only the non-empty one reaches the sink.
	require.Len(t, out.Patches, 1)
	assert.Equal(t, "B", out.Patches[0].Variant)
}

func TestRun_MalformedManifestIsFatal(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "manifest.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte("not json"), 0o600))

	cfg := &config.Config{
		ManifestPath: manifestPath,
		OutputDir:    dir,
		BaseVariant:  "A",
	}

	_, diags, err := Run(testContext(t), cfg, &sink.Memory{})
	require.Error(t, err)
	assert.ErrorIs(t, err, manifest.ErrMalformed)
	assert.True(t, diags.HasErrors())
	assert.Len(t, diags.ByCode(diag.CodeMalformedManifest), 1)
}

func TestRun_MissingBaseAnimationsIsFatal(t *testing.T) {
	manifestPath, catalogPath := writeFixtures(t)
	cfg := &config.Config{
		ManifestPath: manifestPath,
		CatalogPath:  catalogPath,
		OutputDir:    t.TempDir(),
		BaseVariant:  "Z",
	}

	_, diags, err := Run(testContext(t), cfg, &sink.Memory{})
	require.Error(t, err)
	assert.ErrorIs(t, err, motion.ErrMissingBaseAnimations)
	assert.Len(t, diags.ByCode(diag.CodeMissingBaseAnimations), 1)
}

func TestRun_GraphOnly(t *testing.T) {
	manifestPath, _ := writeFixtures(t)
	cfg := &config.Config{
		ManifestPath: manifestPath,
		OutputDir:    t.TempDir(),
		BaseVariant:  "A",
	}
	out := &sink.Memory{}

	result, diags, err := Run(testContext(t), cfg, out)
	require.NoError(t, err)
	assert.NotNil(t, result.Graph)
	assert.Empty(t, result.Patches)
	assert.False(t, diags.HasErrors())
}

func TestRun_PatchOrderFollowsConfig(t *testing.T) {
	manifestPath, catalogPath := writeFixtures(t)
	out := &sink.Memory{}
	cfg := &config.Config{
		ManifestPath: manifestPath,
		CatalogPath:  catalogPath,
		OutputDir:    t.TempDir(),
		BaseVariant:  "A",
		Variants:     []string{"E", "B", "A"},
	}

	result, _, err := Run(testContext(t), cfg, out)
	require.NoError(t, err)
	require.Len(t, result.Patches, 3)
	assert.Equal(t, "E", result.Patches[0].Variant)
	assert.Equal(t, "B", result.Patches[1].Variant)
	// The base against itself is a valid request and comes out empty.
	assert.Equal(t, "A", result.Patches[2].Variant)
	assert.True(t, result.Patches[2].Empty())
}

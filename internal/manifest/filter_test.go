package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/diag"
)

func TestFilter_VariantSegmentMatching(t *testing.T) {
	entries := []Entry{
		{Name: "idle_down", Path: "clips/A/idle_down.anim"},
		{Name: "idle_down", Path: "clips/B/idle_down.anim"},
		{Name: "walk_side", Path: "export/raw/B/walk_side.anim"},
		{Name: "oddball", Path: "clips/AB/oddball.anim"}, // "B" is not a delimited segment here
	}

	view, diags := Filter(entries, "B")
	assert.Empty(t, diags)
	assert.Equal(t, "B", view.Variant())
	require.Equal(t, 2, view.Len())

	p, ok := view.Path("idle_down")
	require.True(t, ok)
	assert.Equal(t, "clips/B/idle_down.anim", p)

	p, ok = view.Path("walk_side")
	require.True(t, ok)
	assert.Equal(t, "export/raw/B/walk_side.anim", p)

	_, ok = view.Path("oddball")
	assert.False(t, ok)
}

func TestFilter_FirstOccurrenceWins(t *testing.T) {
	entries := []Entry{
		{Name: "walk_side", Path: "clips/A/walk_side_v1.anim"},
		{Name: "walk_up", Path: "clips/A/walk_up.anim"},
		{Name: "walk_side", Path: "clips/A/walk_side_v2.anim"},
		{Name: "walk_side", Path: "clips/A/walk_side_v3.anim"},
	}

	view, diags := Filter(entries, "A")
	require.Equal(t, 2, view.Len())

	p, ok := view.Path("walk_side")
	require.True(t, ok)
	assert.Equal(t, "clips/A/walk_side_v1.anim", p)

	// Every losing duplicate is recorded, never silently dropped.
	collisions := diags.ByCode(diag.CodeDuplicateNameCollision)
	require.Len(t, collisions, 2)
	assert.Contains(t, collisions[0].Detail, "walk_side_v2")
	assert.Contains(t, collisions[1].Detail, "walk_side_v3")
	assert.False(t, diags.HasErrors())
}

func TestFilter_DeclarationOrderPreserved(t *testing.T) {
	entries := []Entry{
		{Name: "zeta", Path: "clips/A/zeta.anim"},
		{Name: "alpha", Path: "clips/A/alpha.anim"},
		{Name: "mid", Path: "clips/A/mid.anim"},
	}

	view, _ := Filter(entries, "A")
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, view.Names())
}

func TestFilter_Deterministic(t *testing.T) {
	entries := []Entry{
		{Name: "a", Path: "clips/A/a.anim"},
		{Name: "b", Path: "clips/C/b.anim"},
		{Name: "c", Path: "clips/A/c.anim"},
		{Name: "a", Path: "clips/A/a_dup.anim"},
	}

	first, _ := Filter(entries, "A")
	second, _ := Filter(entries, "A")
	assert.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		p1, _ := first.Path(name)
		p2, _ := second.Path(name)
		assert.Equal(t, p1, p2)
	}
}

func TestFilter_NoMatchesIsEmptyNotFatal(t *testing.T) {
	entries := []Entry{
		{Name: "idle_down", Path: "clips/A/idle_down.anim"},
	}

	view, diags := Filter(entries, "E")
	assert.Zero(t, view.Len())
	assert.Empty(t, view.Names())
	assert.Empty(t, diags)
}

package manifest

import (
	"fmt"
	"strings"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/diag"
)

// View is a manifest restricted to one variant: a read-only name→path
// lookup that remembers manifest declaration order. It is owned by the
// compilation stage that created it and never shared across variants.
type View struct {
	variant string
	names   []string
	paths   map[string]string
}

// Variant returns the tag this view was filtered for.
func (v *View) Variant() string { return v.variant }

// Len returns the number of clips in the view.
func (v *View) Len() int { return len(v.names) }

// Names returns the clip names in manifest declaration order. The slice is
// shared; callers must not mutate it.
func (v *View) Names() []string { return v.names }

// Path looks up the clip path bound to a logical name.
func (v *View) Path(name string) (string, bool) {
	p, ok := v.paths[name]
	return p, ok
}

// segment returns the delimited form a path must contain to belong to a
// variant. Matching is substring containment, not path-component equality,
// so "clips/B/walk.anim" and "export/raw/B/walk.anim" both match "B".
func segment(variant string) string {
	return "/" + variant + "/"
}

// Filter builds the view of one variant. Iteration follows manifest
// declaration order, which is what makes first-occurrence-wins meaningful:
// the first entry under a name keeps it, and every later duplicate is
// dropped with a DuplicateNameCollision diagnostic. An empty view is a
// valid result; the caller decides whether that is fatal.
func Filter(entries []Entry, variant string) (*View, diag.Diagnostics) {
	var diags diag.Diagnostics
	view := &View{
		variant: variant,
		paths:   make(map[string]string),
	}
	seg := segment(variant)
	for _, e := range entries {
		if !strings.Contains(e.Path, seg) {
			continue
		}
		if winner, exists := view.paths[e.Name]; exists {
			diags = diags.Append(&diag.Diagnostic{
				Severity: diag.Warning,
				Code:     diag.CodeDuplicateNameCollision,
				Summary:  fmt.Sprintf("duplicate clip name %q in variant %q", e.Name, variant),
				Detail:   fmt.Sprintf("%q lost to earlier entry %q", e.Path, winner),
			})
			continue
		}
		view.names = append(view.names, e.Name)
		view.paths[e.Name] = e.Path
	}
	return view, diags
}

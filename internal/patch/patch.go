// Package patch computes per-variant override patches: sparse substitution
// tables that swap clip bindings under the shared motion graph without
// touching its topology.
package patch

import (
	"fmt"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/asset"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/diag"
)

// Substitution is one override pair: the canonical clip a graph binding
// resolves to, and the variant clip that replaces it.
type Substitution struct {
	Name       string `json:"name"`
	Canonical  string `json:"canonical"`
	Substitute string `json:"substitute"`
}

// Patch is the full override result for one variant. It is computed in one
// pass and never mutated afterwards.
//
// Substitutions follow the graph's canonical binding order and stay sparse:
// a binding with no override in the variant simply does not appear. Markers
// records, per substitute clip, the end-of-clip markers propagated from the
// canonical clip.
type Patch struct {
	Variant       string                    `json:"variant"`
	Substitutions []Substitution            `json:"substitutions"`
	Markers       map[string][]asset.Marker `json:"markers,omitempty"`
}

// Empty reports whether the patch substitutes nothing.
func (p *Patch) Empty() bool { return len(p.Substitutions) == 0 }

// hasRecordedMarker reports whether the patch already carries an
// equivalent marker for the clip, deduplicated by name and near-equal time.
func (p *Patch) hasRecordedMarker(clipPath, name string, time float64) bool {
	for _, m := range p.Markers[clipPath] {
		if m.Name == name && asset.SameTime(m.Time, time) {
			return true
		}
	}
	return false
}

// recordMarker appends a propagated marker unless an equivalent one is
// already recorded. Safe to call any number of times with the same input.
func (p *Patch) recordMarker(clipPath string, m asset.Marker) {
	if p.hasRecordedMarker(clipPath, m.Name, m.Time) {
		return
	}
	if p.Markers == nil {
		p.Markers = make(map[string][]asset.Marker)
	}
	p.Markers[clipPath] = append(p.Markers[clipPath], m)
}

func unresolvedDiag(variant, name, path string) *diag.Diagnostic {
	return &diag.Diagnostic{
		Severity: diag.Warning,
		Code:     diag.CodeUnresolvedOverride,
		Summary:  fmt.Sprintf("variant %q overrides %q with an unresolvable clip", variant, name),
		Detail:   fmt.Sprintf("%q is not in the clip catalog; the canonical binding is kept", path),
	}
}

func emptyFilterDiag(variant string) *diag.Diagnostic {
	return &diag.Diagnostic{
		Severity: diag.Warning,
		Code:     diag.CodeEmptyVariantFilter,
		Summary:  fmt.Sprintf("variant %q matched no manifest entries", variant),
		Detail:   "the patch is empty; the caller decides whether to persist it",
	}
}

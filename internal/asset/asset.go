// Package asset gives the compiler its offline view of motion clip
// metadata: durations and authored event markers, keyed by clip path.
//
// The interactive tooling this compiler grew out of read these values off
// live engine assets. Here they are an explicit input document so a
// compilation run stays a pure function of its inputs.
package asset

import "math"

// TimeTolerance is the window within which two marker times are considered
// the same instant. Clip durations survive export with float noise, so
// end-of-clip comparisons cannot use exact equality.
const TimeTolerance = 1e-3

// Marker is a named timestamp on a clip, used to signal gameplay-visible
// moments (in practice, end-of-clip completion events).
type Marker struct {
	Name string  `json:"name" yaml:"name"`
	Time float64 `json:"time" yaml:"time"`
}

// Clip is the compiler's metadata record for one motion clip.
type Clip struct {
	Path     string   `json:"path" yaml:"path"`
	Duration float64  `json:"duration" yaml:"duration"`
	Markers  []Marker `json:"markers,omitempty" yaml:"markers,omitempty"`
}

// SameTime reports whether two marker times fall within TimeTolerance.
func SameTime(a, b float64) bool {
	return math.Abs(a-b) <= TimeTolerance
}

// EndMarkers returns the clip's markers sitting at its own duration, in
// authored order.
func (c *Clip) EndMarkers() []Marker {
	var out []Marker
	for _, m := range c.Markers {
		if SameTime(m.Time, c.Duration) {
			out = append(out, m)
		}
	}
	return out
}

// HasMarkerNear reports whether the clip already carries a marker with the
// given name at (within tolerance of) the given time.
func (c *Clip) HasMarkerNear(name string, time float64) bool {
	for _, m := range c.Markers {
		if m.Name == name && SameTime(m.Time, time) {
			return true
		}
	}
	return false
}

// Catalog resolves a clip path to its metadata. A path missing from the
// catalog is an unresolvable clip; the patcher reports it and moves on.
type Catalog interface {
	Lookup(path string) (*Clip, bool)
}

// MapCatalog is an in-memory Catalog, used by tests and by callers that
// assemble clip metadata programmatically.
type MapCatalog map[string]*Clip

// Lookup implements Catalog.
func (m MapCatalog) Lookup(path string) (*Clip, bool) {
	c, ok := m[path]
	return c, ok
}

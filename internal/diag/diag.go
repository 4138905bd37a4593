// Package diag defines the structured diagnostics channel of the compiler.
//
// The shape deliberately mirrors hcl.Diagnostics (severity, summary, detail,
// an accumulating slice with HasErrors), with one addition: every diagnostic
// carries a Code from the compiler's error taxonomy so callers can react to
// specific conditions without string matching.
package diag

import (
	"fmt"
	"strings"
)

// Severity classifies how a diagnostic affects the run.
type Severity int

const (
	// Error marks a fatal condition; the run stops.
	Error Severity = iota
	// Warning marks a recovered condition; the run continues.
	Warning
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Code identifies one entry of the compiler's error taxonomy.
type Code string

const (
	// CodeMalformedManifest means the manifest text did not parse into the
	// expected shape. Fatal.
	CodeMalformedManifest Code = "MalformedManifest"
	// CodeMissingBaseAnimations means the base variant matched nothing in
	// the manifest, so no graph can be built. Fatal.
	CodeMissingBaseAnimations Code = "MissingBaseAnimations"
	// CodeUnresolvedOverride means a variant names a substitute clip the
	// catalog cannot resolve. The substitution pair is dropped.
	CodeUnresolvedOverride Code = "UnresolvedOverride"
	// CodeEmptyVariantFilter means a requested variant matched no manifest
	// entries. The variant's patch comes out empty.
	CodeEmptyVariantFilter Code = "EmptyVariantFilter"
	// CodeDuplicateNameCollision records a manifest entry that lost a
	// first-occurrence-wins duplicate resolution within one variant.
	CodeDuplicateNameCollision Code = "DuplicateNameCollision"
)

// Diagnostic is one structured warning or error surfaced to the caller.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Summary  string
	Detail   string
}

// Error implements the error interface so a fatal Diagnostic can travel as
// an ordinary Go error.
func (d *Diagnostic) Error() string {
	if d.Detail != "" {
		return fmt.Sprintf("%s: %s; %s", d.Code, d.Summary, d.Detail)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Summary)
}

// Diagnostics accumulates diagnostics across a compilation run. The zero
// value is ready to use.
type Diagnostics []*Diagnostic

// Append adds a diagnostic and returns the extended collection.
func (ds Diagnostics) Append(d *Diagnostic) Diagnostics {
	return append(ds, d)
}

// Extend concatenates another collection onto this one.
func (ds Diagnostics) Extend(other Diagnostics) Diagnostics {
	return append(ds, other...)
}

// HasErrors reports whether any accumulated diagnostic is fatal.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// ByCode returns the subset of diagnostics carrying the given code.
func (ds Diagnostics) ByCode(code Code) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// Error implements the error interface for the whole collection.
func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "no diagnostics"
	case 1:
		return ds[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d diagnostics:", len(ds))
	for _, d := range ds {
		b.WriteString("\n  - ")
		b.WriteString(d.Error())
	}
	return b.String()
}

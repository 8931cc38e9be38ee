package diagnostic

import (
	"fmt"
	"sort"
	"strings"

	"fixdict-generator/internal/common"
)

// Diagnostics holds the non-fatal findings of one compilation.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Location names the dictionary element this relates to (if any).
	Location string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// Warning codes.
const (
	WarnUnusedComponent  = "UnusedComponent"
	WarnUnusedField      = "UnusedField"
	WarnRequiredInferred = "RequiredUnspecified"
	WarnEnumRenamed      = "EnumRenamed"
)

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, location, format string, args ...any) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, location, format string, args ...any) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Empty reports whether nothing was recorded.
func (d *Diagnostics) Empty() bool {
	return len(d.Warnings) == 0 && len(d.Infos) == 0
}

// Sort orders warnings and infos by location, then code.
func (d *Diagnostics) Sort() {
	less := func(list []Diagnostic) func(i, j int) bool {
		return func(i, j int) bool {
			if list[i].Location != list[j].Location {
				return list[i].Location < list[j].Location
			}

			return list[i].Code < list[j].Code
		}
	}

	sort.SliceStable(d.Warnings, less(d.Warnings))
	sort.SliceStable(d.Infos, less(d.Infos))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Location != "" {
		return strings.Join([]string{d.Location, msg}, ": ")
	}

	return msg
}

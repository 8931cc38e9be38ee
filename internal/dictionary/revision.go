package dictionary

import (
	"fmt"
	"strconv"
	"strings"

	"fixdict-generator/internal/diagnostic"
)

// Revision identifies the protocol revision of a dictionary.
type Revision struct {
	Type        string
	Major       int
	Minor       int
	ServicePack int
}

// BeginString is the protocol identifier, e.g. "FIX.4.2".
func (r Revision) BeginString() string {
	return fmt.Sprintf("%s.%d.%d", r.Type, r.Major, r.Minor)
}

// Version is BeginString plus the service pack, e.g. "FIX.5.0SP2".
func (r Revision) Version() string {
	if r.ServicePack > 0 {
		return fmt.Sprintf("%sSP%d", r.BeginString(), r.ServicePack)
	}

	return r.BeginString()
}

// PackageName is the Go package generated for the revision, e.g. "fix50sp2".
func (r Revision) PackageName() string {
	name := fmt.Sprintf("%s%d%d", strings.ToLower(r.Type), r.Major, r.Minor)
	if r.ServicePack > 0 {
		name += fmt.Sprintf("sp%d", r.ServicePack)
	}

	return name
}

// HandlerPrefix prefixes handler method names, e.g. "OnFix42".
func (r Revision) HandlerPrefix() string {
	prefix := "On" + title(r.Type) + strconv.Itoa(r.Major) + strconv.Itoa(r.Minor)
	if r.ServicePack > 0 {
		prefix += "SP" + strconv.Itoa(r.ServicePack)
	}

	return prefix
}

func (r Revision) String() string {
	return r.Version()
}

func parseRevision(root *Node) (Revision, error) {
	rev := Revision{Type: "FIX"}
	if t, ok := root.Attr("type"); ok && t != "" {
		rev.Type = t
	}

	var err error
	if rev.Major, err = intAttr(root, "major", true); err != nil {
		return Revision{}, err
	}

	if rev.Minor, err = intAttr(root, "minor", true); err != nil {
		return Revision{}, err
	}

	if rev.ServicePack, err = intAttr(root, "servicepack", false); err != nil {
		return Revision{}, err
	}

	return rev, nil
}

// intAttr reads a non-negative integer attribute. An absent optional
// attribute is zero.
func intAttr(n *Node, name string, required bool) (int, error) {
	if raw, _ := n.Attr(name); raw == "" && !required {
		return 0, nil
	}

	raw, err := n.RequireAttr(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, n.Describe(),
			"attribute %q must be a non-negative integer, got %q", name, raw).AtLine(n.Line)
	}

	return v, nil
}

func title(s string) string {
	l := strings.ToLower(s)
	if l == "" {
		return l
	}

	return strings.ToUpper(l[:1]) + l[1:]
}

package gen

import (
	"strings"

	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/plan"
)

// recordMethods are declared on every message record; groupMethods on
// every group entry record.
var (
	recordMethods = []string{"MsgType", "Decode", "Encode", "ToMessage"}
	groupMethods  = []string{"Decode", "Encode"}
)

// packageAPI names the declarations of the aggregate file.
var packageAPI = []string{"BeginString", "Version", "Registry", "Decode", "Crack"}

// nameSet tracks the identifiers declared in one generated package.
type nameSet struct {
	pkg   string
	owner map[string]string
}

func newNameSet(pkg string, reserved ...string) *nameSet {
	s := &nameSet{pkg: pkg, owner: make(map[string]string)}
	for _, name := range reserved {
		s.owner[name] = "the package API"
	}

	return s
}

// declare records ident for owner, failing when it is already taken.
func (s *nameSet) declare(ident, owner string) error {
	if prev, ok := s.owner[ident]; ok {
		return diagnostic.Errorf(diagnostic.CodeNameCollision, owner,
			"Go identifier %s.%s is already declared for %s", s.pkg, ident, prev)
	}

	s.owner[ident] = owner

	return nil
}

// classTypeName joins the exported segments of a class path with '_'.
func classTypeName(classPath string) string {
	segments := strings.Split(classPath, ".")
	for i, seg := range segments {
		segments[i] = plan.ExportedIdent(seg)
	}

	return strings.Join(segments, "_")
}

// messageFilename is the file a message record is written to.
func messageFilename(typeName string) string {
	return strings.ToLower(typeName) + ".go"
}

// checkFields fails when a record field would shadow one of its methods or
// when two dictionary names map onto the same Go field name.
func checkFields(c *classData, methods []string, location string) error {
	seen := make(map[string]string, len(c.Fields))
	for _, m := range methods {
		seen[m] = "method " + m
	}

	for _, f := range c.Fields {
		if prev, ok := seen[f.GoName]; ok {
			return diagnostic.Errorf(diagnostic.CodeNameCollision, location,
				"field %s maps to Go name %s, already used by %s", f.Name, f.GoName, prev)
		}

		seen[f.GoName] = "field " + f.Name
	}

	return nil
}

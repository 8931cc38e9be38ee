package plan

import (
	"sort"

	"fixdict-generator/internal/analyze"
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/dictionary"
)

// Schema is the fully expanded model of one dictionary.
type Schema struct {
	Revision   dictionary.Revision
	Fields     *analyze.FieldRegistry
	Components *analyze.ComponentRegistry
	// Messages are ordered by name.
	Messages []*ClassDef
	// Classes lists every message followed by its group classes, depth first.
	Classes []*ClassDef
	// Enums are ordered by type name.
	Enums []*EnumType
	// Diagnostics contains the non-fatal findings of resolution.
	Diagnostics diagnostic.Diagnostics

	byPath  map[string]*ClassDef
	byField map[string]*EnumType
}

// Class finds a class by its dotted path, e.g. "NewOrderSingle.NoAllocs".
func (s *Schema) Class(path string) (*ClassDef, bool) {
	c, ok := s.byPath[path]
	return c, ok
}

// MessageByType finds a message class by MsgType.
func (s *Schema) MessageByType(msgType string) (*ClassDef, bool) {
	for _, m := range s.Messages {
		if m.MsgType == msgType {
			return m, true
		}
	}

	return nil, false
}

// EnumFor returns the enum type materialized for a field, if any.
func (s *Schema) EnumFor(field *analyze.FieldDef) (*EnumType, bool) {
	e, ok := s.byField[field.Name]
	return e, ok
}

func (s *Schema) index() {
	sort.Slice(s.Messages, func(i, j int) bool { return s.Messages[i].Name < s.Messages[j].Name })

	s.Classes = s.Classes[:0]
	s.byPath = make(map[string]*ClassDef)

	for _, m := range s.Messages {
		s.Classes = append(s.Classes, m)
		s.Classes = append(s.Classes, m.Descendants()...)
	}

	for _, c := range s.Classes {
		s.byPath[c.Path] = c
	}

	s.byField = make(map[string]*EnumType, len(s.Enums))
	for _, e := range s.Enums {
		s.byField[e.Field.Name] = e
	}
}

// ClassItem is a field or group slot of a class after component inlining.
type ClassItem struct {
	Name string
	// Kind is ItemKindField or ItemKindGroup.
	Kind analyze.ItemKind
	// Required is the effective requiredness: the item's own marker and
	// every enclosing component reference are all required.
	Required bool
	// Field is the field definition, or the count field of a group.
	Field *analyze.FieldDef
	// Group is the class of the group entries.
	Group *ClassDef
	Line  int
}

func (i ClassItem) IsGroup() bool {
	return i.Kind == analyze.ItemKindGroup
}

// ClassDef is a message or a repeating group entry.
type ClassDef struct {
	// Path is the dotted class path rooted at the message name.
	Path string
	Name string
	// Parent is the path of the enclosing class, empty for messages.
	Parent      string
	MsgType     string
	MsgCategory string
	Items       []ClassItem
	Line        int
}

func (c *ClassDef) IsMessage() bool {
	return c.Parent == ""
}

// Location names the class for diagnostics.
func (c *ClassDef) Location() string {
	if c.IsMessage() {
		return "message " + c.Path
	}

	return "group " + c.Path
}

// RequiredFields returns the required scalar items in declared order.
func (c *ClassDef) RequiredFields() []ClassItem {
	return c.filter(func(i ClassItem) bool { return !i.IsGroup() && i.Required })
}

// OptionalFields returns the optional scalar items in declared order.
func (c *ClassDef) OptionalFields() []ClassItem {
	return c.filter(func(i ClassItem) bool { return !i.IsGroup() && !i.Required })
}

// Scalars returns every non-group item in declared order.
func (c *ClassDef) Scalars() []ClassItem {
	return c.filter(func(i ClassItem) bool { return !i.IsGroup() })
}

// Groups returns the group items in declared order.
func (c *ClassDef) Groups() []ClassItem {
	return c.filter(ClassItem.IsGroup)
}

func (c *ClassDef) filter(keep func(ClassItem) bool) []ClassItem {
	var out []ClassItem

	for _, i := range c.Items {
		if keep(i) {
			out = append(out, i)
		}
	}

	return out
}

// Descendants returns every group class below c, depth first in item order.
func (c *ClassDef) Descendants() []*ClassDef {
	var out []*ClassDef

	for _, g := range c.Groups() {
		out = append(out, g.Group)
		out = append(out, g.Group.Descendants()...)
	}

	return out
}

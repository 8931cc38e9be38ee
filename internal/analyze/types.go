package analyze

import (
	"fixdict-generator/internal/common"
	"fixdict-generator/primitive"
)

// Required is the tri-state required marker of a dictionary item.
type Required int

const (
	RequiredUnspecified Required = iota
	RequiredYes
	RequiredNo
)

// String returns a human-readable representation of the Required marker.
func (r Required) String() string {
	switch r {
	case RequiredUnspecified:
		return "unspecified"
	case RequiredYes:
		return "Y"
	case RequiredNo:
		return "N"
	default:
		return common.UnknownStr
	}
}

// IsYes reports whether the item is explicitly required.
func (r Required) IsYes() bool {
	return r == RequiredYes
}

// ItemKind tells what an item of a message, component or group refers to.
type ItemKind int

const (
	ItemKindUnknown ItemKind = iota
	ItemKindField
	ItemKindGroup
	ItemKindComponent
)

// String returns the dictionary tag of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemKindField:
		return "field"
	case ItemKindGroup:
		return "group"
	case ItemKindComponent:
		return "component"
	default:
		return common.UnknownStr
	}
}

// Item is one entry in an item list.
type Item struct {
	Name     string
	Kind     ItemKind
	Required Required
	Line     int
}

// EnumValue is one declared enum member of a field.
type EnumValue struct {
	// Wire is the literal from the dictionary.
	Wire string
	// Description is the symbolic name the member is generated from.
	Description string
	// Value is Wire converted by the field's primitive kind.
	Value any
}

// FieldDef is a field definition from the <fields> section.
type FieldDef struct {
	Number  int
	Name    string
	RawType string
	Kind    primitive.KindEnum
	Enums   []EnumValue
	Line    int
}

// HasEnums reports whether the field declares enum members.
func (f *FieldDef) HasEnums() bool {
	return len(f.Enums) > 0
}

// ComponentKey identifies a component or group definition. Top-level
// components have an empty namespace; a group inside definition D has the
// namespace D.Key.String().
type ComponentKey struct {
	Namespace string
	Name      string
}

// String returns the namespace path of the definition, e.g. "Parties.NoPartyIDs".
func (k ComponentKey) String() string {
	if k.Namespace == "" {
		return k.Name
	}

	return k.Namespace + "." + k.Name
}

// ComponentDef is the ordered item list of a component, a group body or
// a message.
type ComponentDef struct {
	Key       ComponentKey
	IsGroup   bool
	IsMessage bool
	Items     []Item
	Line      int
}

// Location names the definition for diagnostics.
func (d *ComponentDef) Location() string {
	switch {
	case d.IsGroup:
		return "group " + d.Key.String()
	case d.IsMessage:
		return "message " + d.Key.String()
	}

	return "component " + d.Key.String()
}

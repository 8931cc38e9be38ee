package analyze

import (
	"fmt"
	"strconv"

	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/dictionary"
	"fixdict-generator/internal/match"
	"fixdict-generator/primitive"
)

const maxSuggestions = 3

// FieldRegistry holds every field definition of a dictionary.
type FieldRegistry struct {
	byName   map[string]*FieldDef
	byNumber map[int]*FieldDef
	order    []*FieldDef
}

// BuildFieldRegistry reads the <fields> section. It fails on duplicate names
// or numbers, unknown types and enum literals that do not convert.
func BuildFieldRegistry(section *dictionary.Node) (*FieldRegistry, error) {
	r := &FieldRegistry{
		byName:   make(map[string]*FieldDef, len(section.Children)),
		byNumber: make(map[int]*FieldDef, len(section.Children)),
	}

	for _, node := range section.Children {
		if node.Tag != "field" {
			return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, node.Describe(),
				"unexpected <%s> in <fields>", node.Tag).AtLine(node.Line)
		}

		def, err := parseField(node)
		if err != nil {
			return nil, err
		}

		if prev, ok := r.byName[def.Name]; ok {
			return nil, diagnostic.Errorf(diagnostic.CodeDuplicateField, "field "+def.Name,
				"name already defined on line %d", prev.Line).AtLine(def.Line)
		}

		if prev, ok := r.byNumber[def.Number]; ok {
			return nil, diagnostic.Errorf(diagnostic.CodeDuplicateField, "field "+def.Name,
				"number %d already used by %s", def.Number, prev.Name).AtLine(def.Line)
		}

		r.byName[def.Name] = def
		r.byNumber[def.Number] = def
		r.order = append(r.order, def)
	}

	return r, nil
}

func parseField(node *dictionary.Node) (*FieldDef, error) {
	name, err := node.RequireAttr("name")
	if err != nil {
		return nil, err
	}

	rawNumber, err := node.RequireAttr("number")
	if err != nil {
		return nil, err
	}

	number, err := strconv.Atoi(rawNumber)
	if err != nil || number <= 0 {
		return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, "field "+name,
			"number must be a positive integer, got %q", rawNumber).AtLine(node.Line)
	}

	rawType, err := node.RequireAttr("type")
	if err != nil {
		return nil, err
	}

	kind, ok := primitive.Lookup(rawType)
	if !ok {
		return nil, diagnostic.Errorf(diagnostic.CodeUnknownType, "field "+name,
			"unknown type %q", rawType).
			AtLine(node.Line).
			Suggest(match.Suggest(rawType, primitive.DictionaryTypes(), maxSuggestions)...)
	}

	def := &FieldDef{
		Number:  number,
		Name:    name,
		RawType: rawType,
		Kind:    kind,
		Line:    node.Line,
	}

	for _, child := range node.Children {
		if child.Tag != "value" {
			return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, "field "+name,
				"unexpected <%s> in field", child.Tag).AtLine(child.Line)
		}

		wire, ok := child.Attr("enum")
		if !ok {
			return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, "field "+name,
				"<value> has no enum attribute").AtLine(child.Line)
		}

		desc, _ := child.Attr("description")

		value, err := primitive.ConvertEnum(kind, wire)
		if err != nil {
			return nil, diagnostic.Errorf(diagnostic.CodeInvalidEnumLiteral, "field "+name,
				"enum literal %q is not a valid %s: %v", wire, rawType, err).AtLine(child.Line)
		}

		def.Enums = append(def.Enums, EnumValue{Wire: wire, Description: desc, Value: value})
	}

	return def, nil
}

// Lookup finds a field by name.
func (r *FieldRegistry) Lookup(name string) (*FieldDef, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// ByNumber finds a field by tag number.
func (r *FieldRegistry) ByNumber(number int) (*FieldDef, bool) {
	def, ok := r.byNumber[number]
	return def, ok
}

// All returns the fields in dictionary order.
func (r *FieldRegistry) All() []*FieldDef {
	return r.order
}

// Names returns the field names in dictionary order.
func (r *FieldRegistry) Names() []string {
	names := make([]string, len(r.order))
	for i, def := range r.order {
		names[i] = def.Name
	}

	return names
}

func (r *FieldRegistry) Len() int {
	return len(r.order)
}

// unknownField reports an item naming a field that is not defined.
func (r *FieldRegistry) unknownField(location string, item Item) error {
	return diagnostic.Errorf(diagnostic.CodeUnknownField, location,
		"%s %q does not name a defined field", item.Kind, item.Name).
		AtLine(item.Line).
		Suggest(match.Suggest(item.Name, r.Names(), maxSuggestions)...)
}

func (d *FieldDef) String() string {
	return fmt.Sprintf("%s(%d)", d.Name, d.Number)
}

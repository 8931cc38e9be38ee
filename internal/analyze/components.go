package analyze

import (
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/dictionary"
	"fixdict-generator/internal/match"
)

// Scope resolves definitions by key.
type Scope interface {
	Lookup(key ComponentKey) (*ComponentDef, bool)
}

// ComponentRegistry holds component and group definitions keyed by
// namespace path.
type ComponentRegistry struct {
	defs  map[ComponentKey]*ComponentDef
	order []*ComponentDef
}

var _ Scope = (*ComponentRegistry)(nil)

// NewComponentRegistry indexes defs, failing on a repeated key.
func NewComponentRegistry(defs ...*ComponentDef) (*ComponentRegistry, error) {
	r := &ComponentRegistry{defs: make(map[ComponentKey]*ComponentDef, len(defs))}

	for _, def := range defs {
		if prev, ok := r.defs[def.Key]; ok {
			return nil, diagnostic.Errorf(diagnostic.CodeDuplicateComponent, def.Location(),
				"already defined on line %d", prev.Line).AtLine(def.Line)
		}

		r.defs[def.Key] = def
		r.order = append(r.order, def)
	}

	return r, nil
}

// BuildComponentRegistry reads the <components> section. Groups nested in
// a component are registered under the component's namespace path.
// Component references are checked lazily, during expansion.
func BuildComponentRegistry(section *dictionary.Node, fields *FieldRegistry) (*ComponentRegistry, error) {
	var defs []*ComponentDef

	for _, node := range section.Children {
		if node.Tag != "component" {
			return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, node.Describe(),
				"unexpected <%s> in <components>", node.Tag).AtLine(node.Line)
		}

		name, err := node.RequireAttr("name")
		if err != nil {
			return nil, err
		}

		parsed, err := ParseDefinition(node, ComponentKey{Name: name}, false, fields)
		if err != nil {
			return nil, err
		}

		defs = append(defs, parsed...)
	}

	return NewComponentRegistry(defs...)
}

// ParseDefinition reads the item list of node as the definition key. The
// returned slice starts with that definition and continues with every group
// nested in it, depth first. Field and group references must name defined
// fields, and no item name may appear twice.
func ParseDefinition(node *dictionary.Node, key ComponentKey, isGroup bool, fields *FieldRegistry) ([]*ComponentDef, error) {
	def := &ComponentDef{Key: key, IsGroup: isGroup, Line: node.Line}
	defs := []*ComponentDef{def}
	seen := make(map[string]Item, len(node.Children))

	for _, child := range node.Children {
		item, err := ParseItem(child)
		if err != nil {
			return nil, err
		}

		if prev, ok := seen[item.Name]; ok {
			return nil, diagnostic.Errorf(diagnostic.CodeNameCollision, def.Location(),
				"%s %q already listed on line %d", item.Kind, item.Name, prev.Line).AtLine(item.Line)
		}

		seen[item.Name] = item

		switch item.Kind {
		case ItemKindField:
			if _, ok := fields.Lookup(item.Name); !ok {
				return nil, fields.unknownField(def.Location(), item)
			}
		case ItemKindGroup:
			if _, ok := fields.Lookup(item.Name); !ok {
				return nil, fields.unknownField(def.Location(), item)
			}

			nested, err := ParseDefinition(child, ComponentKey{Namespace: key.String(), Name: item.Name}, true, fields)
			if err != nil {
				return nil, err
			}

			defs = append(defs, nested...)
		}

		def.Items = append(def.Items, item)
	}

	if isGroup && len(def.Items) == 0 {
		return nil, diagnostic.Errorf(diagnostic.CodeEmptyGroup, def.Location(),
			"group has no items").AtLine(def.Line)
	}

	return defs, nil
}

// ParseItem reads a <field>, <group> or <component> reference.
func ParseItem(node *dictionary.Node) (Item, error) {
	var kind ItemKind

	switch node.Tag {
	case "field":
		kind = ItemKindField
	case "group":
		kind = ItemKindGroup
	case "component":
		kind = ItemKindComponent
	default:
		return Item{}, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, node.Describe(),
			"unexpected <%s> in item list", node.Tag).AtLine(node.Line)
	}

	name, err := node.RequireAttr("name")
	if err != nil {
		return Item{}, err
	}

	item := Item{Name: name, Kind: kind, Line: node.Line}

	raw, ok := node.Attr("required")
	switch {
	case !ok:
		item.Required = RequiredUnspecified
	case raw == "Y" || raw == "y":
		item.Required = RequiredYes
	case raw == "N" || raw == "n":
		item.Required = RequiredNo
	default:
		return Item{}, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, node.Describe(),
			"required must be Y or N, got %q", raw).AtLine(node.Line)
	}

	return item, nil
}

// Lookup finds a definition by key.
func (r *ComponentRegistry) Lookup(key ComponentKey) (*ComponentDef, bool) {
	def, ok := r.defs[key]
	return def, ok
}

// Component finds a top-level component by name.
func (r *ComponentRegistry) Component(name string) (*ComponentDef, bool) {
	return r.Lookup(ComponentKey{Name: name})
}

// All returns every definition in registration order.
func (r *ComponentRegistry) All() []*ComponentDef {
	return r.order
}

// Names returns the names of top-level components in registration order.
func (r *ComponentRegistry) Names() []string {
	var names []string

	for _, def := range r.order {
		if def.Key.Namespace == "" {
			names = append(names, def.Key.Name)
		}
	}

	return names
}

func (r *ComponentRegistry) Len() int {
	return len(r.order)
}

// Unresolved reports a reference to an undefined component.
func (r *ComponentRegistry) Unresolved(location string, item Item) error {
	return diagnostic.Errorf(diagnostic.CodeUnresolvedComponentReference, location,
		"component %q is not defined", item.Name).
		AtLine(item.Line).
		Suggest(match.Suggest(item.Name, r.Names(), maxSuggestions)...)
}

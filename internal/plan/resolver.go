package plan

import (
	"fmt"
	"slices"
	"strings"

	"fixdict-generator/internal/analyze"
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/dictionary"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// EnumPrefix is prepended to enum symbols that are not valid identifiers
	// or that collide with an earlier member of the same type.
	EnumPrefix string
	// MaxEnumRetries bounds how often a colliding symbol is re-prefixed.
	MaxEnumRetries int
	// ReservedNames may not be used as message names.
	ReservedNames []string
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		EnumPrefix:     "V",
		MaxEnumRetries: 3,
		ReservedNames:  []string{"BeginString", "Version", "Registry", "Route", "Decode", "Crack"},
	}
}

// Resolver expands one dictionary. A Resolver is single-use.
type Resolver struct {
	doc        *dictionary.Document
	config     ResolutionConfig
	fields     *analyze.FieldRegistry
	components *analyze.ComponentRegistry
	diags      diagnostic.Diagnostics
	// usedComponents and usedFields record what expansion reached.
	usedComponents map[string]struct{}
	usedFields     map[string]struct{}
}

// NewResolver creates a new Resolver.
func NewResolver(doc *dictionary.Document, config ResolutionConfig) *Resolver {
	return &Resolver{
		doc:            doc,
		config:         config,
		usedComponents: make(map[string]struct{}),
		usedFields:     make(map[string]struct{}),
	}
}

// Resolve expands doc with the default configuration.
func Resolve(doc *dictionary.Document) (*Schema, error) {
	return NewResolver(doc, DefaultConfig()).Resolve()
}

// Resolve runs the full resolution pipeline and returns the Schema.
func (r *Resolver) Resolve() (*Schema, error) {
	var err error

	if r.fields, err = analyze.BuildFieldRegistry(r.doc.Section(dictionary.TagFields)); err != nil {
		return nil, err
	}

	if r.components, err = analyze.BuildComponentRegistry(r.doc.Section(dictionary.TagComponents), r.fields); err != nil {
		return nil, err
	}

	enums, err := materializeEnums(r.fields, r.config, &r.diags)
	if err != nil {
		return nil, err
	}

	schema := &Schema{
		Revision:   r.doc.Revision,
		Fields:     r.fields,
		Components: r.components,
		Enums:      enums,
	}

	names := make(map[string]*ClassDef)
	msgTypes := make(map[string]*ClassDef)

	for _, node := range r.doc.Section(dictionary.TagMessages).Children {
		msg, err := r.expandMessage(node)
		if err != nil {
			return nil, err
		}

		if prev, ok := names[msg.Name]; ok {
			return nil, diagnostic.Errorf(diagnostic.CodeDuplicateClass, msg.Location(),
				"message already defined on line %d", prev.Line).AtLine(msg.Line)
		}

		if prev, ok := msgTypes[msg.MsgType]; ok {
			return nil, diagnostic.Errorf(diagnostic.CodeDuplicateMsgType, msg.Location(),
				"MsgType %q already used by %s", msg.MsgType, prev.Name).AtLine(msg.Line)
		}

		names[msg.Name] = msg
		msgTypes[msg.MsgType] = msg
		schema.Messages = append(schema.Messages, msg)
	}

	r.markSectionUsed(r.doc.Section(dictionary.TagHeader))
	r.markSectionUsed(r.doc.Section(dictionary.TagTrailer))
	r.reportUnused()
	r.diags.Sort()

	schema.Diagnostics = r.diags
	schema.index()

	return schema, nil
}

func (r *Resolver) expandMessage(node *dictionary.Node) (*ClassDef, error) {
	if node.Tag != "message" {
		return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, node.Describe(),
			"unexpected <%s> in <messages>", node.Tag).AtLine(node.Line)
	}

	name, err := node.RequireAttr("name")
	if err != nil {
		return nil, err
	}

	msgType, err := node.RequireAttr("msgtype")
	if err != nil {
		return nil, err
	}

	if slices.Contains(r.config.ReservedNames, name) {
		return nil, diagnostic.Errorf(diagnostic.CodeNameCollision, "message "+name,
			"%q is reserved for the generated package API", name).AtLine(node.Line)
	}

	// message bodies are parsed like components into a scope of their own
	defs, err := analyze.ParseDefinition(node, analyze.ComponentKey{Name: name}, false, r.fields)
	if err != nil {
		return nil, err
	}

	defs[0].IsMessage = true

	local, err := analyze.NewComponentRegistry(defs...)
	if err != nil {
		return nil, err
	}

	msg, err := r.expandClass(name, "", defs[0], local, nil)
	if err != nil {
		return nil, err
	}

	msg.MsgType = msgType
	msg.MsgCategory, _ = node.Attr("msgcat")

	return msg, nil
}

// expandClass builds the class at path from def. Group bodies are looked up
// in scope under def's namespace path. stack carries the components being
// inlined around this class so cycles through groups are caught too.
func (r *Resolver) expandClass(path, parent string, def *analyze.ComponentDef, scope analyze.Scope, stack []string) (*ClassDef, error) {
	class := &ClassDef{
		Path:   path,
		Name:   def.Key.Name,
		Parent: parent,
		Line:   def.Line,
	}

	if err := r.splice(class, def, scope, true, stack); err != nil {
		return nil, err
	}

	if !class.IsMessage() && len(class.Items) == 0 {
		return nil, diagnostic.Errorf(diagnostic.CodeEmptyGroup, class.Location(),
			"group expands to no items").AtLine(class.Line)
	}

	return class, nil
}

// splice appends the items of def to class. required is false once any
// enclosing component reference is optional; stack holds the components
// being inlined, outermost first.
func (r *Resolver) splice(class *ClassDef, def *analyze.ComponentDef, scope analyze.Scope, required bool, stack []string) error {
	for _, item := range def.Items {
		switch item.Kind {
		case analyze.ItemKindField:
			field, _ := r.fields.Lookup(item.Name)
			r.usedFields[field.Name] = struct{}{}

			if err := r.addItem(class, ClassItem{
				Name:     item.Name,
				Kind:     analyze.ItemKindField,
				Required: required && item.Required.IsYes(),
				Field:    field,
				Line:     item.Line,
			}); err != nil {
				return err
			}
		case analyze.ItemKindGroup:
			count, _ := r.fields.Lookup(item.Name)
			r.usedFields[count.Name] = struct{}{}

			body, ok := scope.Lookup(analyze.ComponentKey{Namespace: def.Key.String(), Name: item.Name})
			if !ok {
				return diagnostic.Errorf(diagnostic.CodeMalformedDictionary, def.Location(),
					"group %q has no definition", item.Name).AtLine(item.Line)
			}

			group, err := r.expandClass(class.Path+"."+item.Name, class.Path, body, scope, stack)
			if err != nil {
				return err
			}

			if err := r.addItem(class, ClassItem{
				Name:     item.Name,
				Kind:     analyze.ItemKindGroup,
				Required: required && item.Required.IsYes(),
				Field:    count,
				Group:    group,
				Line:     item.Line,
			}); err != nil {
				return err
			}
		case analyze.ItemKindComponent:
			comp, ok := r.components.Component(item.Name)
			if !ok {
				return r.components.Unresolved(def.Location(), item)
			}

			if slices.Contains(stack, item.Name) {
				cycle := append(slices.Clone(stack), item.Name)
				return diagnostic.Errorf(diagnostic.CodeComponentCycle, class.Location(),
					"component cycle %s", strings.Join(cycle, " -> ")).AtLine(item.Line)
			}

			r.usedComponents[item.Name] = struct{}{}

			if item.Required == analyze.RequiredUnspecified {
				r.diags.AddInfo(diagnostic.WarnRequiredInferred, def.Location(),
					"reference to component %s has no required marker, treated as optional", item.Name)
			}

			err := r.splice(class, comp, r.components, required && item.Required.IsYes(), append(slices.Clone(stack), item.Name))
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Resolver) addItem(class *ClassDef, item ClassItem) error {
	for _, existing := range class.Items {
		if existing.Name == item.Name {
			return diagnostic.Errorf(diagnostic.CodeNameCollision, class.Location(),
				"%s %q appears twice after component expansion (lines %d and %d)",
				item.Kind, item.Name, existing.Line, item.Line).AtLine(item.Line)
		}
	}

	class.Items = append(class.Items, item)

	return nil
}

// markSectionUsed records the fields and components the header or trailer
// names. Those sections are owned by the session layer and not expanded.
func (r *Resolver) markSectionUsed(section *dictionary.Node) {
	for _, node := range section.Children {
		name, ok := node.Attr("name")
		if !ok {
			continue
		}

		switch node.Tag {
		case "component":
			r.usedComponents[name] = struct{}{}
		case "group":
			r.usedFields[name] = struct{}{}
			r.markSectionUsed(node)
		default:
			r.usedFields[name] = struct{}{}
		}
	}
}

func (r *Resolver) reportUnused() {
	for _, name := range r.components.Names() {
		if _, ok := r.usedComponents[name]; !ok {
			r.diags.AddWarning(diagnostic.WarnUnusedComponent, "component "+name,
				"component is never referenced by a message")
		}
	}

	unused := 0
	for _, field := range r.fields.All() {
		if _, ok := r.usedFields[field.Name]; !ok {
			unused++
		}
	}

	if unused > 0 {
		r.diags.AddInfo(diagnostic.WarnUnusedField, "fields",
			"%s not referenced by any message", plural(unused, "field is", "fields are"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}

	return fmt.Sprintf("%d %s", n, many)
}

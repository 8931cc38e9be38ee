package plan

import (
	"sort"

	"fixdict-generator/internal/analyze"
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/primitive"
)

// EnumMember is one generated constant of an enum type.
type EnumMember struct {
	// Const is the Go constant name, <Type>_<Symbol>.
	Const string
	// Symbol is the sanitized member name.
	Symbol string
	// Wire is the literal from the dictionary.
	Wire string
	// Value is Wire converted by the field's primitive kind.
	Value any
	// Literal is Value as a Go constant literal.
	Literal string
}

// EnumType is the generated Go type for a field with declared values.
type EnumType struct {
	Name    string
	Field   *analyze.FieldDef
	Members []EnumMember
	// Distinct holds the first member declared for each distinct value.
	Distinct []EnumMember
}

// Kind is the primitive kind of the underlying field.
func (e *EnumType) Kind() primitive.KindEnum {
	return e.Field.Kind
}

// materializeEnums builds an enum type for every field that declares values.
// Member symbols come from the value descriptions, falling back to the wire
// literal. A symbol that is already taken within its type gets prefixed
// again, up to MaxEnumRetries times.
func materializeEnums(fields *analyze.FieldRegistry, cfg ResolutionConfig, diags *diagnostic.Diagnostics) ([]*EnumType, error) {
	var enums []*EnumType

	for _, field := range fields.All() {
		if !field.HasEnums() {
			continue
		}

		e := &EnumType{Name: ExportedIdent(field.Name), Field: field}
		taken := make(map[string]struct{}, len(field.Enums))
		seen := make(map[string]struct{}, len(field.Enums))

		for _, v := range field.Enums {
			source := v.Description
			if source == "" {
				source = v.Wire
			}

			symbol := SanitizeIdent(source, cfg.EnumPrefix)
			original := symbol

			for attempt := 0; ; attempt++ {
				if _, ok := taken[symbol]; !ok {
					break
				}

				if attempt == cfg.MaxEnumRetries {
					return nil, diagnostic.Errorf(diagnostic.CodeEnumNameCollision, "field "+field.Name,
						"enum member %q (value %q) still collides after %d renames", original, v.Wire, cfg.MaxEnumRetries).
						AtLine(field.Line)
				}

				symbol = cfg.EnumPrefix + symbol
			}

			if symbol != original {
				diags.AddWarning(diagnostic.WarnEnumRenamed, "field "+field.Name,
					"enum member %q (value %q) renamed to %q", original, v.Wire, symbol)
			}

			taken[symbol] = struct{}{}

			member := EnumMember{
				Const:   e.Name + "_" + symbol,
				Symbol:  symbol,
				Wire:    v.Wire,
				Value:   v.Value,
				Literal: primitive.GoLiteral(field.Kind, v.Value),
			}
			e.Members = append(e.Members, member)

			canonical := primitive.FormatEnum(field.Kind, v.Value)
			if _, dup := seen[canonical]; !dup {
				seen[canonical] = struct{}{}
				e.Distinct = append(e.Distinct, member)
			}
		}

		enums = append(enums, e)
	}

	sort.Slice(enums, func(i, j int) bool { return enums[i].Name < enums[j].Name })

	return enums, nil
}

package plan

import (
	"gopkg.in/yaml.v3"
)

// SchemaExport is the reviewable YAML form of a Schema.
type SchemaExport struct {
	Revision string          `yaml:"revision"`
	Package  string          `yaml:"package"`
	Messages []MessageExport `yaml:"messages"`
	Enums    []EnumExport    `yaml:"enums,omitempty"`
}

type MessageExport struct {
	Name     string       `yaml:"name"`
	MsgType  string       `yaml:"msgtype"`
	Category string       `yaml:"msgcat,omitempty"`
	Items    []ItemExport `yaml:"items,omitempty"`
}

type ItemExport struct {
	Name     string       `yaml:"name"`
	Tag      int          `yaml:"tag"`
	Type     string       `yaml:"type,omitempty"`
	Required bool         `yaml:"required"`
	Enum     string       `yaml:"enum,omitempty"`
	Group    string       `yaml:"group,omitempty"`
	Items    []ItemExport `yaml:"items,omitempty"`
}

type EnumExport struct {
	Name   string            `yaml:"name"`
	Field  int               `yaml:"field"`
	Values map[string]string `yaml:"values"`
}

// Export builds the reviewable form of s.
func Export(s *Schema) *SchemaExport {
	out := &SchemaExport{
		Revision: s.Revision.Version(),
		Package:  s.Revision.PackageName(),
	}

	for _, m := range s.Messages {
		out.Messages = append(out.Messages, MessageExport{
			Name:     m.Name,
			MsgType:  m.MsgType,
			Category: m.MsgCategory,
			Items:    exportItems(s, m),
		})
	}

	for _, e := range s.Enums {
		values := make(map[string]string, len(e.Members))
		for _, member := range e.Members {
			values[member.Symbol] = member.Wire
		}

		out.Enums = append(out.Enums, EnumExport{
			Name:   e.Name,
			Field:  e.Field.Number,
			Values: values,
		})
	}

	return out
}

func exportItems(s *Schema, c *ClassDef) []ItemExport {
	items := make([]ItemExport, 0, len(c.Items))

	for _, i := range c.Items {
		item := ItemExport{
			Name:     i.Name,
			Tag:      i.Field.Number,
			Required: i.Required,
		}

		if i.IsGroup() {
			item.Group = i.Group.Path
			item.Items = exportItems(s, i.Group)
		} else {
			item.Type = i.Field.RawType
			if e, ok := s.EnumFor(i.Field); ok {
				item.Enum = e.Name
			}
		}

		items = append(items, item)
	}

	return items
}

// ExportYAML renders s as YAML. yaml.v3 sorts map keys, so the output is stable.
func ExportYAML(s *Schema) ([]byte, error) {
	return yaml.Marshal(Export(s))
}

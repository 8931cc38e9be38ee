package tagvalue

import (
	"fmt"
	"strconv"
	"strings"
)

type field struct {
	tag   Tag
	value string
}

// FieldMap is an ordered in-memory View. Fields keep their insertion
// order; repeating group entries are rendered right after their count field.
// The zero value is ready to use.
type FieldMap struct {
	fields []field
	groups map[Tag][]*FieldMap
}

var _ View = (*FieldMap)(nil)

func NewFieldMap() *FieldMap {
	return &FieldMap{}
}

func (m *FieldMap) Field(tag Tag) (string, bool) {
	for _, f := range m.fields {
		if f.tag == tag {
			return f.value, true
		}
	}

	return "", false
}

func (m *FieldMap) SetField(tag Tag, value string) {
	for i := range m.fields {
		if m.fields[i].tag == tag {
			m.fields[i].value = value
			return
		}
	}

	m.fields = append(m.fields, field{tag: tag, value: value})
}

func (m *FieldMap) Has(tag Tag) bool {
	_, ok := m.Field(tag)
	return ok
}

// Tags returns the field tags in insertion order.
func (m *FieldMap) Tags() []Tag {
	tags := make([]Tag, len(m.fields))
	for i, f := range m.fields {
		tags[i] = f.tag
	}

	return tags
}

func (m *FieldMap) Len() int {
	return len(m.fields)
}

func (m *FieldMap) Group(countTag Tag, n int) (View, error) {
	entries := m.groups[countTag]
	if n < 0 || n >= len(entries) {
		return nil, fmt.Errorf("%w: group %d entry %d of %d", ErrGroupIndexOutOfRange, countTag, n, len(entries))
	}

	return entries[n], nil
}

func (m *FieldMap) NewGroup(Tag) View {
	return NewFieldMap()
}

// AddGroup panics when entry was not created by NewGroup of a FieldMap.
func (m *FieldMap) AddGroup(countTag Tag, entry View) {
	fm, ok := entry.(*FieldMap)
	if !ok {
		panic(fmt.Sprintf("tagvalue: group entry of type %T is not a *FieldMap", entry))
	}

	if m.groups == nil {
		m.groups = make(map[Tag][]*FieldMap)
	}

	m.groups[countTag] = append(m.groups[countTag], fm)
	m.SetField(countTag, strconv.Itoa(len(m.groups[countTag])))
}

// GroupLen returns the number of entries stored for countTag.
func (m *FieldMap) GroupLen(countTag Tag) int {
	return len(m.groups[countTag])
}

// String renders the fields as tag=value pairs terminated by '|'.
func (m *FieldMap) String() string {
	var sb strings.Builder
	m.write(&sb, '|')

	return sb.String()
}

func (m *FieldMap) write(sb *strings.Builder, sep byte) {
	for _, f := range m.fields {
		sb.WriteString(strconv.Itoa(int(f.tag)))
		sb.WriteByte('=')
		sb.WriteString(f.value)
		sb.WriteByte(sep)

		for _, entry := range m.groups[f.tag] {
			entry.write(sb, sep)
		}
	}
}

package dictionary

import (
	"fmt"

	"fixdict-generator/internal/diagnostic"
)

// Attr is one element attribute. Attributes keep their document order.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of the dictionary tree.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	// Line is the 1-based line the element starts on.
	Line int
}

// Attr returns the value of attribute name and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// RequireAttr returns a non-empty attribute or a MalformedDictionary error.
func (n *Node) RequireAttr(name string) (string, error) {
	v, ok := n.Attr(name)
	if !ok || v == "" {
		return "", diagnostic.Errorf(diagnostic.CodeMalformedDictionary, n.Describe(),
			"missing %q attribute", name).AtLine(n.Line)
	}

	return v, nil
}

// Child returns the first child with tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}

	return nil
}

// Describe names the element for error locations, e.g. `field "Side"`.
func (n *Node) Describe() string {
	if name, ok := n.Attr("name"); ok {
		return fmt.Sprintf("%s %q", n.Tag, name)
	}

	return "<" + n.Tag + ">"
}

package dictionary

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"fixdict-generator/internal/diagnostic"
)

// Section tags of a dictionary.
const (
	TagRoot       = "fix"
	TagHeader     = "header"
	TagTrailer    = "trailer"
	TagMessages   = "messages"
	TagComponents = "components"
	TagFields     = "fields"
)

// Document is a parsed dictionary.
type Document struct {
	// Path is the file the document was loaded from, empty for in-memory input.
	Path     string
	Root     *Node
	Revision Revision
}

// Section returns the named top-level section. A missing section yields an
// empty node so callers can range over its children.
func (d *Document) Section(tag string) *Node {
	if n := d.Root.Child(tag); n != nil {
		return n
	}

	return &Node{Tag: tag, Line: d.Root.Line}
}

// LoadFile reads and parses a dictionary file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc.Path = path

	return doc, nil
}

// Parse parses dictionary XML.
func Parse(data []byte) (*Document, error) {
	root, err := parseTree(data)
	if err != nil {
		return nil, err
	}

	if root.Tag != TagRoot {
		return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, "",
			"root element is <%s>, want <%s>", root.Tag, TagRoot).AtLine(root.Line)
	}

	if root.Child(TagFields) == nil {
		return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, "",
			"dictionary has no <%s> section", TagFields).AtLine(root.Line)
	}

	if root.Child(TagMessages) == nil {
		return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, "",
			"dictionary has no <%s> section", TagMessages).AtLine(root.Line)
	}

	rev, err := parseRevision(root)
	if err != nil {
		return nil, err
	}

	return &Document{Root: root, Revision: rev}, nil
}

func parseTree(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *Node
		stack []*Node
	)

	for {
		line, _ := dec.InputPos()

		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, diagnostic.Wrap(diagnostic.CodeMalformedDictionary, "", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local, Line: line}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, "",
						"more than one root element").AtLine(line)
				}

				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}

			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, diagnostic.Errorf(diagnostic.CodeMalformedDictionary, "", "document is empty")
	}

	return root, nil
}

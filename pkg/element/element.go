package element

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// Position selects where AddChild inserts a node.
type Position int

const (
	// Last appends the child.
	Last Position = iota
	// First prepends the child.
	First
)

// Element is a generic tag with attributes, classes and ordered children.
type Element struct {
	tag      string
	attrs    *Attributes
	children []Node
	hidden   bool
}

// New creates an element for tag. Pairs of name/value strings may be supplied
// to seed attributes; a trailing name without value is ignored.
func New(tag string, attributes ...string) *Element {
	el := &Element{
		tag:   strings.ToLower(strings.TrimSpace(tag)),
		attrs: NewAttributes(),
	}
	for i := 0; i+1 < len(attributes); i += 2 {
		el.attrs.Set(attributes[i], attributes[i+1])
	}
	return el
}

// NewWithAttributes creates an element for tag seeded with a copy of attrs.
func NewWithAttributes(tag string, attrs *Attributes) *Element {
	el := New(tag)
	el.attrs = attrs.Clone()
	return el
}

// Tag returns the lower-cased tag name.
func (e *Element) Tag() string {
	return e.tag
}

// ID returns the id attribute.
func (e *Element) ID() string {
	id, _ := e.attrs.Get("id")
	return id
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) *Element {
	e.attrs.Set("id", id)
	return e
}

// Attributes exposes the underlying attribute set.
func (e *Element) Attributes() *Attributes {
	return e.attrs
}

// AddClass adds classes; existing names are kept once.
func (e *Element) AddClass(names ...string) *Element {
	e.attrs.AddClass(names...)
	return e
}

// RemoveClass drops classes.
func (e *Element) RemoveClass(names ...string) *Element {
	e.attrs.RemoveClass(names...)
	return e
}

// HasClass reports whether the class is present.
func (e *Element) HasClass(name string) bool {
	return e.attrs.HasClass(name)
}

// Classes returns the class names in insertion order.
func (e *Element) Classes() []string {
	return e.attrs.Classes()
}

// SetAttribute stores an attribute value.
func (e *Element) SetAttribute(name, value string) *Element {
	e.attrs.Set(name, value)
	return e
}

// SetFlag toggles a boolean attribute.
func (e *Element) SetFlag(name string, on bool) *Element {
	e.attrs.SetFlag(name, on)
	return e
}

// Attribute returns the attribute value or "" when absent.
func (e *Element) Attribute(name string) string {
	value, _ := e.attrs.Get(name)
	return value
}

// HasAttribute reports whether the attribute is set.
func (e *Element) HasAttribute(name string) bool {
	return e.attrs.Has(name)
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(name string) *Element {
	e.attrs.Remove(name)
	return e
}

// AddChild inserts node at the requested position. Nil nodes are ignored.
func (e *Element) AddChild(node Node, position ...Position) *Element {
	if node == nil {
		return e
	}
	if len(position) > 0 && position[0] == First {
		e.children = append([]Node{node}, e.children...)
		return e
	}
	e.children = append(e.children, node)
	return e
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// Clone copies the element with its attributes. Children are shared.
func (e *Element) Clone() *Element {
	return &Element{
		tag:      e.tag,
		attrs:    e.attrs.Clone(),
		children: e.Children(),
		hidden:   e.hidden,
	}
}

// Hide suppresses the element's output while keeping it in the tree.
func (e *Element) Hide() *Element {
	e.hidden = true
	return e
}

// Show reverts Hide.
func (e *Element) Show() *Element {
	e.hidden = false
	return e
}

// Hidden reports whether the element is hidden.
func (e *Element) Hidden() bool {
	return e.hidden
}

// HTML implements Node.
func (e *Element) HTML() ([]*xhtml.Node, error) {
	if e == nil || e.hidden {
		return nil, nil
	}
	node := &xhtml.Node{
		Type: xhtml.ElementNode,
		Data: e.tag,
		Attr: e.attrs.htmlAttributes(),
	}
	if err := appendChildren(node, e.children); err != nil {
		return nil, err
	}
	return []*xhtml.Node{node}, nil
}

// Describe implements Inspectable.
func (e *Element) Describe() string {
	var builder strings.Builder
	builder.WriteString("<")
	builder.WriteString(e.tag)
	if id := e.ID(); id != "" {
		builder.WriteString("#")
		builder.WriteString(id)
	}
	for _, name := range e.Classes() {
		builder.WriteString(".")
		builder.WriteString(name)
	}
	builder.WriteString(">")
	if e.hidden {
		builder.WriteString(" (hidden)")
	}
	return builder.String()
}

// Inspect implements Inspectable.
func (e *Element) Inspect() []Node {
	return e.Children()
}

func appendChildren(parent *xhtml.Node, children []Node) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		nodes, err := child.HTML()
		if err != nil {
			return err
		}
		for _, n := range nodes {
			parent.AppendChild(n)
		}
	}
	return nil
}

package view

import (
	xhtml "golang.org/x/net/html"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
)

// Well-known container child names.
const (
	ChildErrors      = "errors"
	ChildRepeat      = "repeat"
	ChildRepeatLabel = "repeatLabel"
	ChildSubmit      = "submit"
	ChildQuestion    = "question"
	ChildUpload      = "upload"
)

// Wrapper decorates the container's primary element, for example an input
// group.
type Wrapper interface {
	element.Node
	SetElement(node element.Node)
	Element() element.Node
}

// Container owns the primary element of a widget, its named auxiliary
// children and at most one wrapper.
type Container struct {
	element         element.Node
	children        *element.NamedChildren
	wrapper         Wrapper
	renderContainer bool
	attrs           *element.Attributes
}

// NewContainer creates a container around primary, which may be nil.
func NewContainer(primary element.Node) *Container {
	return &Container{
		element:  primary,
		children: element.NewNamedChildren(),
		attrs:    element.NewAttributes(),
	}
}

// Element returns the primary element.
func (c *Container) Element() element.Node {
	return c.element
}

// SetElement replaces the primary element.
func (c *Container) SetElement(node element.Node) {
	c.element = node
}

// Wrapper returns the installed wrapper or nil.
func (c *Container) Wrapper() Wrapper {
	return c.wrapper
}

// SetWrapper installs w, discarding any previous wrapper. A wrapper without
// an element receives the container's primary element.
func (c *Container) SetWrapper(w Wrapper) {
	if w != nil && w.Element() == nil {
		w.SetElement(c.element)
	}
	c.wrapper = w
}

// AddChild stores node under name; an existing name is replaced in place.
func (c *Container) AddChild(name string, node element.Node) {
	c.children.Add(name, node)
}

// HasChild reports whether name is present.
func (c *Container) HasChild(name string) bool {
	return c.children.Has(name)
}

// GetChild returns the child stored under name.
func (c *Container) GetChild(name string) (element.Node, bool) {
	return c.children.Get(name)
}

// RemoveChild detaches the child stored under name. It returns
// element.ErrNotFound when the name is absent; check HasChild first.
func (c *Container) RemoveChild(name string) (element.Node, error) {
	return c.children.Remove(name)
}

// ChildNames lists child names in insertion order.
func (c *Container) ChildNames() []string {
	return c.children.Names()
}

// SetRenderContainer toggles the wrapping div.
func (c *Container) SetRenderContainer(on bool) {
	c.renderContainer = on
}

// RenderContainer reports whether the container renders its own div.
func (c *Container) RenderContainer() bool {
	return c.renderContainer
}

// AddClass adds classes to the container div.
func (c *Container) AddClass(names ...string) *Container {
	c.attrs.AddClass(names...)
	return c
}

// HasClass reports whether the container div carries name.
func (c *Container) HasClass(name string) bool {
	return c.attrs.HasClass(name)
}

// Classes lists the container classes.
func (c *Container) Classes() []string {
	return c.attrs.Classes()
}

// HTML implements element.Node. The wrapper, when present, renders in place
// of the primary element, followed by the children in order.
func (c *Container) HTML() ([]*xhtml.Node, error) {
	content := element.Group{c.main()}
	content = append(content, c.children.Nodes()...)
	if !c.renderContainer {
		return content.HTML()
	}
	div := element.NewWithAttributes("div", c.attrs)
	for _, node := range content {
		div.AddChild(node)
	}
	return div.HTML()
}

// Describe implements element.Inspectable.
func (c *Container) Describe() string {
	if c.renderContainer {
		return element.NewWithAttributes("div", c.attrs).Describe() + " container"
	}
	return "container"
}

// Inspect implements element.Inspectable.
func (c *Container) Inspect() []element.Node {
	var nodes []element.Node
	if main := c.main(); main != nil {
		name := "element"
		if c.wrapper != nil {
			name = "wrapper"
		}
		nodes = append(nodes, element.Named{Name: name, Node: main})
	}
	return append(nodes, c.children.Named()...)
}

func (c *Container) main() element.Node {
	if c.wrapper != nil {
		return c.wrapper
	}
	return c.element
}

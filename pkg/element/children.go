package element

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	xhtml "golang.org/x/net/html"
)

// NamedChildren keeps keyed child nodes in insertion order. Adding an existing
// name replaces the node in place.
type NamedChildren struct {
	nodes *orderedmap.OrderedMap[string, Node]
}

// NewNamedChildren returns an empty collection.
func NewNamedChildren() *NamedChildren {
	return &NamedChildren{nodes: orderedmap.New[string, Node]()}
}

// Add stores node under name.
func (c *NamedChildren) Add(name string, node Node) {
	if node == nil || name == "" {
		return
	}
	c.ensure()
	c.nodes.Set(name, node)
}

// Has reports whether name is present.
func (c *NamedChildren) Has(name string) bool {
	if c == nil || c.nodes == nil {
		return false
	}
	_, ok := c.nodes.Get(name)
	return ok
}

// Get returns the node stored under name.
func (c *NamedChildren) Get(name string) (Node, bool) {
	if c == nil || c.nodes == nil {
		return nil, false
	}
	return c.nodes.Get(name)
}

// Remove detaches and returns the node stored under name. A missing name
// yields a *NotFoundError.
func (c *NamedChildren) Remove(name string) (Node, error) {
	if c == nil || c.nodes == nil {
		return nil, &NotFoundError{Name: name}
	}
	node, ok := c.nodes.Delete(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return node, nil
}

// Names lists child names in order.
func (c *NamedChildren) Names() []string {
	if c == nil || c.nodes == nil {
		return nil
	}
	names := make([]string, 0, c.nodes.Len())
	for pair := c.nodes.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Nodes lists child nodes in order.
func (c *NamedChildren) Nodes() []Node {
	if c == nil || c.nodes == nil {
		return nil
	}
	nodes := make([]Node, 0, c.nodes.Len())
	for pair := c.nodes.Oldest(); pair != nil; pair = pair.Next() {
		nodes = append(nodes, pair.Value)
	}
	return nodes
}

// Named returns the children wrapped with their names for inspection.
func (c *NamedChildren) Named() []Node {
	if c == nil || c.nodes == nil {
		return nil
	}
	nodes := make([]Node, 0, c.nodes.Len())
	for pair := c.nodes.Oldest(); pair != nil; pair = pair.Next() {
		nodes = append(nodes, Named{Name: pair.Key, Node: pair.Value})
	}
	return nodes
}

// Len returns the number of children.
func (c *NamedChildren) Len() int {
	if c == nil || c.nodes == nil {
		return 0
	}
	return c.nodes.Len()
}

func (c *NamedChildren) ensure() {
	if c.nodes == nil {
		c.nodes = orderedmap.New[string, Node]()
	}
}

// Named labels a node for Dump output; it renders exactly like the wrapped
// node.
type Named struct {
	Name string
	Node Node
}

// HTML implements Node.
func (n Named) HTML() ([]*xhtml.Node, error) {
	if n.Node == nil {
		return nil, nil
	}
	return n.Node.HTML()
}

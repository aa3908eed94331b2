// Package inputgroup composes Bootstrap input groups: a primary control with
// ordered addons and buttons on either side.
package inputgroup

import (
	"fmt"

	xhtml "golang.org/x/net/html"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
)

// Kind selects how a decoration is wrapped.
type Kind int

const (
	// Plain decorations render inside span.input-group-addon.
	Plain Kind = iota
	// Button decorations render inside span.input-group-btn; adjacent buttons
	// share one cluster.
	Button
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Button:
		return "button"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Side identifies the left or right decoration list.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Decoration is one node attached to a side.
type Decoration struct {
	Node element.Node
	Kind Kind
}

// InputGroup wraps a primary element with decorations. Sides keep insertion
// order.
type InputGroup struct {
	primary element.Node
	left    []Decoration
	right   []Decoration
	attrs   *element.Attributes
}

// New returns an empty input group.
func New() *InputGroup {
	attrs := element.NewAttributes()
	attrs.AddClass("input-group")
	return &InputGroup{attrs: attrs}
}

// SetElement installs the primary element.
func (g *InputGroup) SetElement(node element.Node) {
	g.primary = node
}

// Element returns the primary element.
func (g *InputGroup) Element() element.Node {
	return g.primary
}

// Attributes exposes the wrapper div attributes.
func (g *InputGroup) Attributes() *element.Attributes {
	return g.attrs
}

// AddLeft appends a decoration to the left side.
func (g *InputGroup) AddLeft(node element.Node, kind Kind) *InputGroup {
	if node != nil {
		g.left = append(g.left, Decoration{Node: node, Kind: kind})
	}
	return g
}

// AddRight appends a decoration to the right side.
func (g *InputGroup) AddRight(node element.Node, kind Kind) *InputGroup {
	if node != nil {
		g.right = append(g.right, Decoration{Node: node, Kind: kind})
	}
	return g
}

// Add appends to side; any side other than Left is the right side.
func (g *InputGroup) Add(side Side, node element.Node, kind Kind) *InputGroup {
	if side == Left {
		return g.AddLeft(node, kind)
	}
	return g.AddRight(node, kind)
}

// Left returns a copy of the left decorations.
func (g *InputGroup) Left() []Decoration {
	return append([]Decoration(nil), g.left...)
}

// Right returns a copy of the right decorations.
func (g *InputGroup) Right() []Decoration {
	return append([]Decoration(nil), g.right...)
}

// HTML implements element.Node.
func (g *InputGroup) HTML() ([]*xhtml.Node, error) {
	root := element.NewWithAttributes("div", g.attrs)

	for _, node := range side(g.left) {
		root.AddChild(node)
	}
	root.AddChild(g.primary)
	for _, node := range side(g.right) {
		root.AddChild(node)
	}
	return root.HTML()
}

// Describe implements element.Inspectable.
func (g *InputGroup) Describe() string {
	return fmt.Sprintf("input-group (left %d, right %d)", len(g.left), len(g.right))
}

// Inspect implements element.Inspectable.
func (g *InputGroup) Inspect() []element.Node {
	var nodes []element.Node
	for _, decoration := range g.left {
		nodes = append(nodes, element.Named{Name: "left " + decoration.Kind.String(), Node: decoration.Node})
	}
	if g.primary != nil {
		nodes = append(nodes, element.Named{Name: "element", Node: g.primary})
	}
	for _, decoration := range g.right {
		nodes = append(nodes, element.Named{Name: "right " + decoration.Kind.String(), Node: decoration.Node})
	}
	return nodes
}

// side wraps decorations; runs of adjacent buttons collapse into one cluster.
func side(decorations []Decoration) []element.Node {
	var (
		out     []element.Node
		cluster *element.Element
	)
	for _, decoration := range decorations {
		if decoration.Kind == Button {
			if cluster == nil {
				cluster = element.New("span").AddClass("input-group-btn")
				out = append(out, cluster)
			}
			cluster.AddChild(decoration.Node)
			continue
		}
		cluster = nil
		out = append(out, element.New("span").AddClass("input-group-addon").AddChild(decoration.Node))
	}
	return out
}

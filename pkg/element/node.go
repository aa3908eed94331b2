package element

import (
	"fmt"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is anything that can take part in the markup tree.
type Node interface {
	// HTML converts the node into detached html nodes. Hidden nodes return
	// nil.
	HTML() ([]*xhtml.Node, error)
}

// Classable is implemented by nodes that expose a class set.
type Classable interface {
	AddClass(names ...string) *Element
}

// Text is escaped character data.
type Text string

// HTML implements Node.
func (t Text) HTML() ([]*xhtml.Node, error) {
	if t == "" {
		return nil, nil
	}
	return []*xhtml.Node{{Type: xhtml.TextNode, Data: string(t)}}, nil
}

// StaticHTML is trusted markup inserted verbatim after fragment parsing.
// Callers are responsible for sanitising untrusted input first.
type StaticHTML string

// HTML implements Node.
func (s StaticHTML) HTML() ([]*xhtml.Node, error) {
	if s == "" {
		return nil, nil
	}
	context := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(string(s)), context)
	if err != nil {
		return nil, fmt.Errorf("element: parse static html: %w", err)
	}
	return nodes, nil
}

// Group renders its members back to back without a wrapping tag.
type Group []Node

// HTML implements Node.
func (g Group) HTML() ([]*xhtml.Node, error) {
	var out []*xhtml.Node
	for _, member := range g {
		if member == nil {
			continue
		}
		nodes, err := member.HTML()
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

package element

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Inspectable nodes describe themselves and their children for Dump.
type Inspectable interface {
	Describe() string
	Inspect() []Node
}

// Dump renders an indented outline of the tree rooted at node.
func Dump(node Node) string {
	tree := treeprint.New()
	dumpNode(tree, node)
	return tree.String()
}

func dumpNode(tree treeprint.Tree, node Node) {
	if node == nil {
		return
	}
	label := describe(node)
	inspectable, ok := unwrap(node).(Inspectable)
	if !ok {
		tree.AddNode(label)
		return
	}
	children := inspectable.Inspect()
	if len(children) == 0 {
		tree.AddNode(label)
		return
	}
	branch := tree.AddBranch(label)
	for _, child := range children {
		dumpNode(branch, child)
	}
}

func describe(node Node) string {
	switch n := node.(type) {
	case Named:
		return n.Name + ": " + describe(n.Node)
	case Text:
		return fmt.Sprintf("%q", string(n))
	case StaticHTML:
		return "html " + fmt.Sprintf("%q", strings.TrimSpace(string(n)))
	case Inspectable:
		return n.Describe()
	default:
		return fmt.Sprintf("%T", node)
	}
}

func unwrap(node Node) Node {
	if named, ok := node.(Named); ok {
		return unwrap(named.Node)
	}
	return node
}

// Describe implements Inspectable.
func (g Group) Describe() string {
	return "group"
}

// Inspect implements Inspectable.
func (g Group) Inspect() []Node {
	return []Node(g)
}

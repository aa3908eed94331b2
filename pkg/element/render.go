package element

import (
	"bytes"
	"fmt"
	"io"

	xhtml "golang.org/x/net/html"
)

// Render writes the markup for node to w.
func Render(w io.Writer, node Node) error {
	if node == nil {
		return nil
	}
	nodes, err := node.HTML()
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if err := xhtml.Render(w, n); err != nil {
			return fmt.Errorf("element: render: %w", err)
		}
	}
	return nil
}

// RenderString renders node into a string.
func RenderString(node Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

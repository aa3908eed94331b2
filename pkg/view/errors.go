package view

import (
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
)

// Errors is the validation message partial. It renders nothing until it holds
// at least one message.
type Errors struct {
	*element.Element
	messages []string
}

// NewErrors creates an errors partial holding messages.
func NewErrors(messages ...string) *Errors {
	errs := &Errors{Element: element.New("p")}
	errs.SetMessages(messages...)
	return errs
}

// SetMessages replaces the messages, dropping blanks and duplicates.
func (e *Errors) SetMessages(messages ...string) {
	e.messages = normalizeMessages(messages)
}

// Messages returns a copy of the messages.
func (e *Errors) Messages() []string {
	return append([]string(nil), e.messages...)
}

// HTML implements element.Node.
func (e *Errors) HTML() ([]*xhtml.Node, error) {
	if e == nil || e.Element == nil || e.Hidden() || len(e.messages) == 0 {
		return nil, nil
	}
	out := e.Element.Clone()
	for idx, message := range e.messages {
		if idx > 0 {
			out.AddChild(element.New("br"))
		}
		out.AddChild(element.Text(message))
	}
	return out.HTML()
}

// Inspect implements element.Inspectable.
func (e *Errors) Inspect() []element.Node {
	nodes := make([]element.Node, 0, len(e.messages))
	for _, message := range e.messages {
		nodes = append(nodes, element.Text(message))
	}
	return nodes
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

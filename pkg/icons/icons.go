// Package icons renders icon markup from the configured icons.template and
// sanitises the result before it is inserted into the element tree.
package icons

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
)

// DefaultTemplate is the Bootstrap 3 glyphicon markup.
const DefaultTemplate = `<span class="glyphicon glyphicon-%s"></span>`

// Generator builds icon markup from a template holding one %s placeholder for
// the icon name.
type Generator struct {
	template string
}

// NewGenerator creates a Generator; an empty template means DefaultTemplate.
func NewGenerator(template string) *Generator {
	if strings.TrimSpace(template) == "" {
		template = DefaultTemplate
	}
	return &Generator{template: template}
}

// Template returns the markup template.
func (g *Generator) Template() string {
	if g == nil {
		return DefaultTemplate
	}
	return g.template
}

// Markup returns sanitised markup for name, or "" for a blank name.
func (g *Generator) Markup(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return Sanitize(strings.ReplaceAll(g.Template(), "%s", name))
}

// Generate returns the icon for name as a node.
func (g *Generator) Generate(name string) element.StaticHTML {
	return element.StaticHTML(g.Markup(name))
}

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// Sanitize strips everything but icon elements (span, i, inline svg) and
// their presentational attributes.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(policy().Sanitize(trimmed))
}

func policy() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements("span", "i")
		p.AllowAttrs("class", "aria-hidden", "title").OnElements("span", "i")

		shapes := []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"}
		p.AllowElements(append([]string{"svg", "g", "title", "desc", "defs", "use"}, shapes...)...)
		p.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "aria-hidden", "role", "focusable", "class",
		).OnElements("svg")
		p.AllowAttrs("href", "xlink:href").OnElements("use")
		p.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
			"points", "rx", "ry", "fill", "stroke", "stroke-width", "class",
		).OnElements(shapes...)
		p.AllowAttrs("id").OnElements("g", "defs")

		iconPolicy = p
	})
	return iconPolicy
}

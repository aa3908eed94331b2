package view

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
	"github.com/goliatone/go-bootstrap-form/pkg/render/template"
	"github.com/goliatone/go-bootstrap-form/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var layoutFiles embed.FS

// Layouts returns the embedded layout templates.
func Layouts() fs.FS {
	sub, err := fs.Sub(layoutFiles, "templates")
	if err != nil {
		panic(fmt.Sprintf("view: embedded layouts: %v", err))
	}
	return sub
}

// RendererOption customises a Renderer.
type RendererOption func(*Renderer)

// WithTemplateRenderer replaces the embedded pongo2 layouts.
func WithTemplateRenderer(engine template.TemplateRenderer) RendererOption {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// Renderer lays out a widget event through its view's layout template.
type Renderer struct {
	engine template.TemplateRenderer
}

// NewRenderer creates a Renderer backed by the embedded layouts unless
// WithTemplateRenderer is supplied.
func NewRenderer(options ...RendererOption) (*Renderer, error) {
	r := &Renderer{}
	for _, option := range options {
		if option != nil {
			option(r)
		}
	}
	if r.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(Layouts()))
		if err != nil {
			return nil, fmt.Errorf("view: create template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Render returns the markup for event.
func (r *Renderer) Render(event *Event) (string, error) {
	if event == nil || event.Container == nil {
		return "", errors.New("view: render: event with container required")
	}
	label, err := element.RenderString(nodeOrNil(event.Label))
	if err != nil {
		return "", fmt.Errorf("view: render label: %w", err)
	}
	field, err := element.RenderString(event.Container)
	if err != nil {
		return "", fmt.Errorf("view: render container: %w", err)
	}

	layout := LayoutDefault
	attributes := ""
	if event.View != nil {
		layout = event.View.Layout()
		attributes = event.View.Attributes().String()
	}

	data := map[string]any{
		"layout":     layout,
		"label":      label,
		"field":      field,
		"attributes": attributes,
	}
	if event.Widget != nil {
		data["widget"] = map[string]any{
			"id":   event.Widget.ID,
			"name": event.Widget.Name,
			"type": event.Widget.Type,
		}
	}

	out, err := r.engine.RenderTemplate(layout, data)
	if err != nil {
		return "", fmt.Errorf("view: layout %q: %w", layout, err)
	}
	return strings.TrimSpace(out), nil
}

func nodeOrNil(label *element.Element) element.Node {
	if label == nil {
		return nil
	}
	return label
}

// Package bootstrapform styles form widgets for Bootstrap. It re-exports the
// engine constructor and the event types so simple callers need a single
// import.
package bootstrapform

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-bootstrap-form/pkg/config"
	"github.com/goliatone/go-bootstrap-form/pkg/styler"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
	"github.com/goliatone/go-bootstrap-form/pkg/widgets"
)

// ErrNoEngine is returned by Style without an engine.
var ErrNoEngine = errors.New("bootstrapform: engine required")

// Event aliases view.Event, the objects of one widget's view.
type Event = view.Event

// FormContext aliases view.FormContext.
type FormContext = view.FormContext

// Widget aliases widgets.Widget.
type Widget = widgets.Widget

// Engine aliases styler.Engine.
type Engine = styler.Engine

// Option aliases styler.Option.
type Option = styler.Option

// NewEngine exposes the styling engine constructor from the top-level module.
func NewEngine(options ...Option) (*Engine, error) {
	return styler.New(options...)
}

// LoadGlobal builds the global configuration from the embedded defaults and
// the layers selected by options.
func LoadGlobal(options ...config.LoadOption) (*config.Config, error) {
	return config.LoadGlobal(options...)
}

// Style runs the full event sequence for one widget: layout selection, the
// rule pipeline and data attribute pass-through.
func Style(engine *Engine, event *Event) error {
	if engine == nil {
		return ErrNoEngine
	}
	subscriber := engine.Subscriber()
	if err := subscriber.DispatchCreateView(event); err != nil {
		return err
	}
	if err := subscriber.DispatchGenerateView(event); err != nil {
		return err
	}
	engine.DataAttributes(event)
	return nil
}

// RenderEvents styles every event with Style and lays it out with renderer,
// returning one markup fragment per event.
func RenderEvents(engine *Engine, renderer *view.Renderer, events []*Event) ([]string, error) {
	if renderer == nil {
		created, err := view.NewRenderer()
		if err != nil {
			return nil, err
		}
		renderer = created
	}
	out := make([]string, 0, len(events))
	for i, event := range events {
		if err := Style(engine, event); err != nil {
			return nil, fmt.Errorf("bootstrapform: style widget %d: %w", i, err)
		}
		html, err := renderer.Render(event)
		if err != nil {
			return nil, fmt.Errorf("bootstrapform: render widget %d: %w", i, err)
		}
		out = append(out, html)
	}
	return out, nil
}

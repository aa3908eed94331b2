package view

import (
	"github.com/goliatone/go-bootstrap-form/pkg/element"
	"github.com/goliatone/go-bootstrap-form/pkg/widgets"
)

// Layout names understood by Renderer.
const (
	LayoutDefault   = "default"
	LayoutBootstrap = "bootstrap"
)

// View is the outer wrapper of a widget: the chosen layout and the attribute
// set of the surrounding element.
type View struct {
	layout string
	attrs  *element.Attributes
}

// NewView creates a view using layout; an empty layout means LayoutDefault.
func NewView(layout string) *View {
	if layout == "" {
		layout = LayoutDefault
	}
	return &View{layout: layout, attrs: element.NewAttributes()}
}

// Layout returns the layout name.
func (v *View) Layout() string {
	return v.layout
}

// SetLayout changes the layout name.
func (v *View) SetLayout(layout string) {
	v.layout = layout
}

// Attributes returns the view attribute set.
func (v *View) Attributes() *element.Attributes {
	return v.attrs
}

// FormContext identifies the form a widget belongs to. A nil *FormContext
// marks a standalone field.
type FormContext struct {
	ID          string   `json:"id" yaml:"id"`
	OverrideIDs []string `json:"overrides" yaml:"overrides"`
}

// Event carries the objects of one widget's view. Handlers mutate them in
// place and never replace them.
type Event struct {
	Container *Container
	Widget    *widgets.Widget
	Label     *element.Element
	Errors    *Errors
	Form      *FormContext
	View      *View
}

// Element returns the container's primary element.
func (e *Event) Element() element.Node {
	if e == nil || e.Container == nil {
		return nil
	}
	return e.Container.Element()
}

// NewLabel creates a label partial for the control identified by controlID.
func NewLabel(text, controlID string) *element.Element {
	label := element.New("label")
	if controlID != "" {
		label.SetAttribute("for", controlID)
	}
	if text != "" {
		label.AddChild(element.Text(text))
	}
	return label
}

// NewEvent assembles an event for w around primary with a fresh label,
// errors partial and default view.
func NewEvent(w *widgets.Widget, primary element.Node, form *FormContext) *Event {
	var (
		labelText string
		controlID string
		messages  []string
	)
	if w != nil {
		labelText = w.Label
		controlID = w.ID
		messages = w.Errors
	}
	return &Event{
		Container: NewContainer(primary),
		Widget:    w,
		Label:     NewLabel(labelText, controlID),
		Errors:    NewErrors(messages...),
		Form:      form,
		View:      NewView(LayoutDefault),
	}
}

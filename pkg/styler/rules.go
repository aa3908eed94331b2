package styler

import (
	"github.com/goliatone/go-bootstrap-form/pkg/config"
	"github.com/goliatone/go-bootstrap-form/pkg/element"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
	"github.com/goliatone/go-bootstrap-form/pkg/widgets"
)

// Rule names accepted by form.disabled-rules, in pipeline order.
const (
	RuleLabelErrors  = "label-errors"
	RuleColumnLayout = "column-layout"
	RuleFormControl  = "form-control"
	RuleInlineStyle  = "inline-style"
	RuleStyledSelect = "styled-select"
	RuleStyledUpload = "styled-upload"
	RuleInputGroup   = "input-group"
	RuleErrorsChild  = "errors-child"
	RuleErrorState   = "error-state"
)

type rule struct {
	name  string
	apply func(*Engine, *state) bool
}

func pipeline() []rule {
	return []rule{
		{name: RuleLabelErrors, apply: applyLabelErrors},
		{name: RuleColumnLayout, apply: applyColumnLayout},
		{name: RuleFormControl, apply: applyFormControl},
		{name: RuleInlineStyle, apply: applyInlineStyle},
		{name: RuleStyledSelect, apply: applyStyledSelect},
		{name: RuleStyledUpload, apply: applyStyledUpload},
		{name: RuleInputGroup, apply: applyInputGroup},
		{name: RuleErrorsChild, apply: applyErrorsChild},
		{name: RuleErrorState, apply: applyErrorState},
	}
}

// state is the per-event view shared by the rules.
type state struct {
	event      *view.Event
	container  *view.Container
	widget     *widgets.Widget
	widgetType string
	config     *config.Config
}

func (e *Engine) newState(event *view.Event) *state {
	w := event.Widget
	if w == nil {
		w = &widgets.Widget{}
	}
	widgetType := w.Type
	if widgetType == "" {
		widgetType, _ = e.widgets.Resolve(*w)
	}
	return &state{
		event:      event,
		container:  event.Container,
		widget:     w,
		widgetType: widgetType,
		config:     e.Config(event.Form),
	}
}

func (s *state) formID() string {
	if s.event.Form == nil {
		return ""
	}
	return s.event.Form.ID
}

// element returns the primary element when it is a plain element.
func (s *state) element() (*element.Element, bool) {
	el, ok := s.container.Element().(*element.Element)
	return el, ok && el != nil
}

func (s *state) flag(name string, def bool) bool {
	return s.config.Widget(s.widgetType, name, def)
}

// labelVisible reports whether the label renders: the widget has one and the
// widget type does not switch labels off.
func (s *state) labelVisible() bool {
	return s.widget.HasLabel() && s.flag("label", true)
}

func applyLabelErrors(_ *Engine, s *state) bool {
	if label := s.event.Label; label != nil {
		label.AddClass("control-label")
		if !s.labelVisible() {
			label.Hide()
		}
	}
	if errs := s.event.Errors; errs != nil && errs.Element != nil {
		errs.AddClass("help-block")
	}
	return true
}

func applyColumnLayout(_ *Engine, s *state) bool {
	horizontal := s.event.Form != nil && !s.widget.Tableless
	if s.event.Form == nil {
		horizontal = s.config.Bool("form.default-horizontal", false)
	}
	if !horizontal {
		return false
	}

	s.container.SetRenderContainer(true)
	s.container.AddClass(s.config.String("form.horizontal.control", ""))
	if s.labelVisible() {
		if s.event.Label != nil {
			s.event.Label.AddClass(s.config.String("form.horizontal.label", ""))
		}
	} else {
		s.container.AddClass(s.config.String("form.horizontal.offset", ""))
	}

	if child, ok := s.container.GetChild(view.ChildRepeatLabel); ok {
		if label, ok := child.(element.Classable); ok {
			label.AddClass("control-label")
			if s.flag("label", true) {
				label.AddClass(s.config.String("form.horizontal.label", ""))
			}
		}
	}
	return true
}

func applyFormControl(_ *Engine, s *state) bool {
	el, ok := s.element()
	if !ok || !s.flag("form-control", true) {
		return false
	}
	el.AddClass("form-control")
	if child, ok := s.container.GetChild(view.ChildRepeat); ok {
		if repeat, ok := child.(element.Classable); ok {
			repeat.AddClass("form-control")
		}
	}
	return true
}

func applyInlineStyle(_ *Engine, s *state) bool {
	el, ok := s.element()
	if !ok || !s.flag("inline-style-option", false) || !s.widget.InlineStyle {
		return false
	}
	el.AddClass("inline")
	return true
}

func applyErrorsChild(_ *Engine, s *state) bool {
	if s.event.Errors == nil {
		return false
	}
	s.container.AddChild(view.ChildErrors, s.event.Errors)
	return true
}

func applyErrorState(_ *Engine, s *state) bool {
	if !s.widget.HasErrors() || s.event.View == nil {
		return false
	}
	s.event.View.Attributes().AddClass("has-feedback", "has-error")
	return true
}

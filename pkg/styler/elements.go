package styler

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
	"github.com/goliatone/go-bootstrap-form/pkg/inputgroup"
	"github.com/goliatone/go-bootstrap-form/pkg/locale"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
	"github.com/goliatone/go-bootstrap-form/pkg/widgets"
)

func applyStyledSelect(e *Engine, s *state) bool {
	el, ok := s.element()
	if !ok || !s.config.Bool("form.styled-select.enabled", false) || !s.flag("styled-select", false) {
		return false
	}
	el.AddClass(s.config.String("form.styled-select.class", ""))
	el.SetAttribute("data-style", s.config.String("form.styled-select.style", ""))
	e.registerSelectAssets(s)

	for _, class := range s.widget.DeclaredClasses() {
		if strings.HasPrefix(class, "btn-") {
			el.RemoveClass(class)
			el.SetAttribute("data-style", class)
			break
		}
	}
	return true
}

func (e *Engine) registerSelectAssets(s *state) {
	scripts := s.config.Strings("form.styled-select.javascript")
	if name, ok := locale.SelectLocale(e.language); ok {
		if tpl := s.config.String("form.styled-select.i18n", ""); tpl != "" {
			scripts = append(scripts, fmt.Sprintf(tpl, name))
		}
	}
	stylesheets := s.config.Strings("form.styled-select.stylesheet")
	if e.registerOnce(StyledSelectGroup, scripts, stylesheets) {
		e.logger.WithFields(map[string]any{"group": StyledSelectGroup, "scripts": len(scripts)}).Debug("assets registered")
	}
}

func applyStyledUpload(e *Engine, s *state) bool {
	el, ok := s.element()
	if !ok || s.widgetType != widgets.TypeUpload || !s.config.Bool("form.styled-upload.enabled", false) {
		return false
	}
	id := el.ID()

	el.AddClass("sr-only")
	if tpl := s.config.String("form.styled-upload.onchange", ""); tpl != "" {
		el.SetAttribute("onchange", fmt.Sprintf(tpl, id))
	}

	input := element.New("input", "type", "text").
		SetID(id+"_value").
		AddClass("form-control").
		SetFlag("disabled", true).
		SetAttribute("name", el.Attribute("name")+"_value")
	if el.HasAttribute("placeholder") {
		input.SetAttribute("placeholder", el.Attribute("placeholder"))
	} else if s.widget.Placeholder != "" {
		input.SetAttribute("placeholder", s.widget.Placeholder)
	}

	label := locale.Translate(
		e.translator,
		e.language,
		s.config.String("form.styled-upload.label-key", ""),
		s.config.String("form.styled-upload.label", ""),
	)
	button := element.New("button", "type", "submit").
		AddChild(element.Text(label)).
		AddClass(s.config.String("form.styled-upload.class", ""))
	if tpl := s.config.String("form.styled-upload.onclick", ""); tpl != "" {
		button.SetAttribute("onclick", fmt.Sprintf(tpl, id))
	}

	group := inputgroup.New()
	group.SetElement(input)
	if s.config.String("form.styled-upload.position", widgets.PositionRight) == widgets.PositionLeft {
		group.AddLeft(button, inputgroup.Button)
	} else {
		group.AddRight(button, inputgroup.Button)
	}
	s.container.AddChild(view.ChildUpload, group)
	return true
}

func applyInputGroup(e *Engine, s *state) bool {
	if !s.flag("input-group", false) {
		return false
	}
	w := s.widget
	captcha := s.widgetType == widgets.TypeCaptcha
	if !w.AddIcon && !w.AddUnit && !s.container.HasChild(view.ChildSubmit) && !captcha {
		return false
	}
	primary := s.container.Element()
	if primary == nil {
		return false
	}

	group, ok := s.container.Wrapper().(*inputgroup.InputGroup)
	if !ok || group == nil {
		group = inputgroup.New()
		group.SetElement(primary)
		s.container.SetWrapper(group)
	}

	generator := e.iconGenerator(s.config)
	if w.AddIcon {
		group.Add(side(w.IconPosition), generator.Generate(w.Icon), inputgroup.Plain)
	}
	if w.AddUnit {
		group.Add(side(w.UnitPosition), element.Text(w.Unit), inputgroup.Plain)
	}
	if submit := e.submitButton(s); submit != nil {
		group.AddRight(submit, inputgroup.Button)
	}
	if captcha && s.container.HasChild(view.ChildQuestion) {
		if question, err := s.container.RemoveChild(view.ChildQuestion); err == nil {
			group.AddRight(question, inputgroup.Plain)
		}
	}
	return true
}

// submitButton detaches the submit child and returns it as a styled button,
// or nil when the container has none.
func (e *Engine) submitButton(s *state) *element.Element {
	if !s.container.HasChild(view.ChildSubmit) {
		return nil
	}
	child, err := s.container.RemoveChild(view.ChildSubmit)
	if err != nil {
		return nil
	}
	submit, ok := child.(*element.Element)
	if !ok || submit == nil || submit.Tag() != "button" {
		submit = element.New("button", "type", "submit").AddChild(element.Text(s.widget.SubmitLabel))
	}

	submit.AddClass("btn")
	if s.widget.SubmitClass != "" {
		submit.AddClass(s.widget.SubmitClass)
	} else {
		submit.AddClass(s.config.String("form.default-submit-btn", ""))
	}

	if markup := e.iconGenerator(s.config).Markup(s.widget.SubmitIcon); markup != "" {
		if s.widget.SubmitIconPosition == widgets.PositionLeft {
			submit.AddChild(element.StaticHTML(markup+" "), element.First)
		} else {
			submit.AddChild(element.StaticHTML(" "+markup))
		}
	}
	return submit
}

func side(position string) inputgroup.Side {
	if position == widgets.PositionRight {
		return inputgroup.Right
	}
	return inputgroup.Left
}

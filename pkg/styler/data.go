package styler

import (
	"sort"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
)

// PassThroughDataAttributes copies the widget's data-* attributes listed in
// allowed (names without the prefix) onto the primary element and returns
// how many were copied.
func PassThroughDataAttributes(event *view.Event, allowed []string) int {
	if event == nil || event.Container == nil || event.Widget == nil {
		return 0
	}
	el, ok := event.Container.Element().(*element.Element)
	if !ok || el == nil {
		return 0
	}
	data := event.Widget.DataAttributes()
	names := make([]string, 0, len(data))
	for name := range data {
		if contains(allowed, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		el.SetAttribute("data-"+name, data[name])
	}
	return len(names)
}

// DataAttributes applies PassThroughDataAttributes with the whitelist from
// form.data-attributes of the event's configuration.
func (e *Engine) DataAttributes(event *view.Event) int {
	if event == nil {
		return 0
	}
	return PassThroughDataAttributes(event, e.Config(event.Form).Strings("form.data-attributes"))
}

package styler

import (
	"github.com/goliatone/go-bootstrap-form/pkg/locale"
)

// ModelTypeFormWidget is the only config model type whose names the engine
// enumerates.
const ModelTypeFormWidget = "form_widget"

// ConfigModel is the host's configuration record asking for selectable names.
type ConfigModel struct {
	Type     string `json:"type" yaml:"type"`
	Override bool   `json:"override" yaml:"override"`
}

// NameOption is one selectable widget type with its translated label.
type NameOption struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
}

// NamesEvent carries a config-name enumeration request and its answer.
type NamesEvent struct {
	Model   ConfigModel
	Options []NameOption
}

// ConfigNames lists the widget types selectable for model. Override models
// are limited to the types configured under form.widgets that are also
// registered; otherwise every registered type is listed. Labels come from
// FFL.<name>, falling back to the name. Models of other types report false.
func (e *Engine) ConfigNames(model ConfigModel) ([]NameOption, bool) {
	if model.Type != ModelTypeFormWidget {
		return nil, false
	}

	var names []string
	if model.Override {
		for _, name := range e.resolver.Global().Keys("form.widgets") {
			if e.widgets.Has(name) {
				names = append(names, name)
			}
		}
	} else {
		names = e.widgets.Names()
	}

	options := make([]NameOption, 0, len(names))
	for _, name := range names {
		options = append(options, NameOption{
			Name:  name,
			Label: locale.Translate(e.translator, e.language, "FFL."+name, name),
		})
	}
	return options, true
}

// ConfigNamesHandler adapts ConfigNames to the dispatch table.
func (e *Engine) ConfigNamesHandler(event *NamesEvent) bool {
	if event == nil {
		return false
	}
	options, ok := e.ConfigNames(event.Model)
	if !ok {
		return false
	}
	event.Options = options
	return true
}

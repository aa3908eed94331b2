package styler

import (
	"fmt"

	"github.com/goliatone/go-bootstrap-form/pkg/view"
)

// ViewHandler reacts to a view event.
type ViewHandler func(*view.Event) error

// NamesHandler answers a config-name enumeration. Returning true stops
// propagation to later handlers.
type NamesHandler func(*NamesEvent) bool

// Subscriber is the typed dispatch table the host form framework calls into.
type Subscriber struct {
	CreateView   []ViewHandler
	GenerateView []ViewHandler
	ConfigNames  []NamesHandler
}

// Subscriber returns the dispatch table wired to e: SelectLayout on create,
// OnBuildView on generate and ConfigNamesHandler for name enumeration.
func (e *Engine) Subscriber() *Subscriber {
	return &Subscriber{
		CreateView:   []ViewHandler{e.SelectLayout},
		GenerateView: []ViewHandler{e.OnBuildView},
		ConfigNames:  []NamesHandler{e.ConfigNamesHandler},
	}
}

// DispatchCreateView runs the create-view handlers in order.
func (s *Subscriber) DispatchCreateView(event *view.Event) error {
	return dispatch("create view", s.CreateView, event)
}

// DispatchGenerateView runs the generate-view handlers in order.
func (s *Subscriber) DispatchGenerateView(event *view.Event) error {
	return dispatch("generate view", s.GenerateView, event)
}

// DispatchConfigNames runs the name handlers until one stops propagation and
// reports whether any did.
func (s *Subscriber) DispatchConfigNames(event *NamesEvent) bool {
	if s == nil || event == nil {
		return false
	}
	for _, handler := range s.ConfigNames {
		if handler != nil && handler(event) {
			return true
		}
	}
	return false
}

func dispatch(name string, handlers []ViewHandler, event *view.Event) error {
	for i, handler := range handlers {
		if handler == nil {
			continue
		}
		if err := handler(event); err != nil {
			return fmt.Errorf("styler: %s handler %d: %w", name, i, err)
		}
	}
	return nil
}

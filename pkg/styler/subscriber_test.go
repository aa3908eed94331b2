package styler_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
	"github.com/goliatone/go-bootstrap-form/pkg/locale"
	"github.com/goliatone/go-bootstrap-form/pkg/styler"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
	"github.com/goliatone/go-bootstrap-form/pkg/widgets"
)

func TestSubscriberDispatch(t *testing.T) {
	engine := newEngine(t)
	subscriber := engine.Subscriber()
	event := view.NewEvent(newWidget(t, widgets.Widget{Type: "text", Label: "Name"}), element.New("input"), nil)

	if err := subscriber.DispatchCreateView(event); err != nil {
		t.Fatalf("create view: %v", err)
	}
	if err := subscriber.DispatchGenerateView(event); err != nil {
		t.Fatalf("generate view: %v", err)
	}
	if event.View.Layout() != view.LayoutBootstrap {
		t.Fatalf("expected bootstrap layout")
	}
	if !primary(t, event).HasClass("form-control") {
		t.Fatalf("expected generate handlers to run")
	}

	if err := subscriber.DispatchGenerateView(nil); !errors.Is(err, styler.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

func TestSubscriberStopsAtFirstNamesAnswer(t *testing.T) {
	calls := 0
	subscriber := &styler.Subscriber{
		ConfigNames: []styler.NamesHandler{
			func(*styler.NamesEvent) bool { calls++; return false },
			func(event *styler.NamesEvent) bool {
				calls++
				event.Options = []styler.NameOption{{Name: "text", Label: "Text"}}
				return true
			},
			func(*styler.NamesEvent) bool { calls++; return true },
		},
	}
	event := &styler.NamesEvent{Model: styler.ConfigModel{Type: styler.ModelTypeFormWidget}}

	if !subscriber.DispatchConfigNames(event) {
		t.Fatalf("expected propagation to stop")
	}
	if calls != 2 {
		t.Fatalf("expected two handler calls, got %d", calls)
	}
	if len(event.Options) != 1 {
		t.Fatalf("unexpected options %+v", event.Options)
	}
}

func TestConfigNames(t *testing.T) {
	registry := widgets.NewEmptyRegistry()
	registry.Register("text")
	registry.Register("select")
	registry.Register("mystery")

	catalog := locale.NewCatalog("")
	catalog.Add("de", map[string]string{"FFL.text": "Textfeld", "FFL.select": "Auswahlmenü"})

	engine := newEngine(t,
		styler.WithWidgetRegistry(registry),
		styler.WithTranslator(catalog),
		styler.WithLanguage("de"),
	)

	all, ok := engine.ConfigNames(styler.ConfigModel{Type: styler.ModelTypeFormWidget})
	if !ok {
		t.Fatalf("form_widget models should be handled")
	}
	want := []styler.NameOption{
		{Name: "text", Label: "Textfeld"},
		{Name: "select", Label: "Auswahlmenü"},
		{Name: "mystery", Label: "mystery"},
	}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	configured, _ := engine.ConfigNames(styler.ConfigModel{Type: styler.ModelTypeFormWidget, Override: true})
	want = []styler.NameOption{
		{Name: "select", Label: "Auswahlmenü"},
		{Name: "text", Label: "Textfeld"},
	}
	if diff := cmp.Diff(want, configured); diff != "" {
		t.Fatalf("override names mismatch (-want +got):\n%s", diff)
	}

	if _, ok := engine.ConfigNames(styler.ConfigModel{Type: "form_layout"}); ok {
		t.Fatalf("other model types should not be handled")
	}
}

func TestConfigNamesHandler(t *testing.T) {
	engine := newEngine(t)
	ignored := &styler.NamesEvent{Model: styler.ConfigModel{Type: "module"}}
	if engine.Subscriber().DispatchConfigNames(ignored) {
		t.Fatalf("other model types should propagate")
	}

	event := &styler.NamesEvent{Model: styler.ConfigModel{Type: styler.ModelTypeFormWidget}}
	if !engine.Subscriber().DispatchConfigNames(event) {
		t.Fatalf("form_widget models should stop propagation")
	}
	if len(event.Options) != len(engine.Widgets().Names()) {
		t.Fatalf("expected every registered type, got %d", len(event.Options))
	}
}

func TestPassThroughDataAttributes(t *testing.T) {
	w := newWidget(t, widgets.Widget{
		Type: "text",
		Attributes: map[string]string{
			"data-toggle": "tooltip",
			"data-target": "#help",
			"data-evil":   "x",
			"title":       "ignored",
		},
	})
	event := view.NewEvent(w, element.New("input"), nil)

	if got := newEngine(t).DataAttributes(event); got != 2 {
		t.Fatalf("expected two copied attributes, got %d", got)
	}
	el := primary(t, event)
	if el.Attribute("data-toggle") != "tooltip" || el.Attribute("data-target") != "#help" {
		t.Fatalf("whitelisted attributes missing: %s", el.Attributes())
	}
	if el.HasAttribute("data-evil") || el.HasAttribute("title") {
		t.Fatalf("unexpected attributes copied: %s", el.Attributes())
	}
	if diff := cmp.Diff([]string{"data-target", "data-toggle"}, el.Attributes().Names()); diff != "" {
		t.Fatalf("attribute order mismatch (-want +got):\n%s", diff)
	}
}

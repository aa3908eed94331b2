package bootstrapform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
	"github.com/goliatone/go-bootstrap-form/pkg/widgets"
)

// ErrInvalidFixture reports a fixture document that cannot produce events.
var ErrInvalidFixture = errors.New("bootstrapform: invalid fixture")

// Fixture is a YAML description of widgets rendered outside a host form
// framework, used by the CLI and golden tests.
//
//	language: de
//	form:
//	  id: contact
//	  overrides: [compact]
//	widgets:
//	  - widget: {id: ctrl_name, name: name, type: text, label: Name}
//	    element:
//	      tag: input
//	      attributes: {type: text, name: name}
//	    children:
//	      - name: submit
//	        element: {tag: button, text: Send}
type Fixture struct {
	Language string            `yaml:"language"`
	Form     *view.FormContext `yaml:"form"`
	Widgets  []FixtureWidget   `yaml:"widgets"`
}

// FixtureWidget is one widget with its primary element and named children.
type FixtureWidget struct {
	Widget   widgets.Widget `yaml:"widget"`
	Element  *ElementSpec   `yaml:"element"`
	Children []ChildSpec    `yaml:"children"`
}

// ChildSpec is a named container child.
type ChildSpec struct {
	Name    string      `yaml:"name"`
	Element ElementSpec `yaml:"element"`
}

// ElementSpec describes an element. Attributes keep document order.
type ElementSpec struct {
	Tag        string         `yaml:"tag"`
	ID         string         `yaml:"id"`
	Class      string         `yaml:"class"`
	Text       string         `yaml:"text"`
	Attributes AttributeList  `yaml:"attributes"`
	Children   []*ElementSpec `yaml:"children"`
}

// Attribute is one name/value pair.
type Attribute struct {
	Name  string
	Value string
}

// AttributeList decodes a YAML mapping into pairs in document order.
type AttributeList []Attribute

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *AttributeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: attributes must be a mapping (line %d)", ErrInvalidFixture, node.Line)
	}
	out := make(AttributeList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value string
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("%w: attribute %q: %w", ErrInvalidFixture, node.Content[i].Value, err)
		}
		out = append(out, Attribute{Name: node.Content[i].Value, Value: value})
	}
	*l = out
	return nil
}

// LoadFixture decodes a fixture document.
func LoadFixture(r io.Reader) (*Fixture, error) {
	var fixture Fixture
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFixture)
		}
		return nil, fmt.Errorf("bootstrapform: decode fixture: %w", err)
	}
	if len(fixture.Widgets) == 0 {
		return nil, fmt.Errorf("%w: no widgets", ErrInvalidFixture)
	}
	return &fixture, nil
}

// LoadFixtureFile reads the fixture at path.
func LoadFixtureFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bootstrapform: open fixture: %w", err)
	}
	defer file.Close()
	return LoadFixture(file)
}

// Events builds one event per widget. Widget types left blank are resolved
// through registry; a nil registry uses the builtin types.
func (f *Fixture) Events(registry *widgets.Registry) ([]*view.Event, error) {
	if registry == nil {
		registry = widgets.NewRegistry()
	}
	events := make([]*view.Event, 0, len(f.Widgets))
	for i, fw := range f.Widgets {
		w, err := widgets.New(fw.Widget)
		if err != nil {
			return nil, fmt.Errorf("bootstrapform: widget %d: %w", i, err)
		}
		registry.Apply(w)

		def := fw.Element
		if def == nil {
			def = defaultElement(w)
		}
		primary, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("bootstrapform: widget %d: %w", i, err)
		}
		if primary.ID() == "" && w.ID != "" {
			primary.SetID(w.ID)
		}

		event := view.NewEvent(w, primary, f.Form)
		for _, child := range fw.Children {
			name := strings.TrimSpace(child.Name)
			if name == "" {
				return nil, fmt.Errorf("%w: widget %d has a child without name", ErrInvalidFixture, i)
			}
			node, err := child.Element.Build()
			if err != nil {
				return nil, fmt.Errorf("bootstrapform: widget %d child %q: %w", i, name, err)
			}
			event.Container.AddChild(name, node)
		}
		events = append(events, event)
	}
	return events, nil
}

// Build creates the element described by s.
func (s *ElementSpec) Build() (*element.Element, error) {
	tag := strings.TrimSpace(s.Tag)
	if tag == "" {
		return nil, fmt.Errorf("%w: element without tag", ErrInvalidFixture)
	}
	el := element.New(tag)
	if s.ID != "" {
		el.SetID(s.ID)
	}
	el.AddClass(s.Class)
	for _, attr := range s.Attributes {
		if attr.Name == "class" {
			el.AddClass(attr.Value)
			continue
		}
		el.SetAttribute(attr.Name, attr.Value)
	}
	for _, child := range s.Children {
		if child == nil {
			continue
		}
		node, err := child.Build()
		if err != nil {
			return nil, err
		}
		el.AddChild(node)
	}
	if s.Text != "" {
		el.AddChild(element.Text(s.Text))
	}
	return el, nil
}

func defaultElement(w *widgets.Widget) *ElementSpec {
	inputType := "text"
	if value, ok := w.Attributes["type"]; ok && value != "" {
		inputType = value
	}
	def := &ElementSpec{Tag: "input", Attributes: AttributeList{{Name: "type", Value: inputType}}}
	if w.Name != "" {
		def.Attributes = append(def.Attributes, Attribute{Name: "name", Value: w.Name})
	}
	if w.Placeholder != "" {
		def.Attributes = append(def.Attributes, Attribute{Name: "placeholder", Value: w.Placeholder})
	}
	return def
}

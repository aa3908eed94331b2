package widgets

import (
	"fmt"
	"strings"

	"dario.cat/mergo"
)

// Position values accepted by the icon, unit and submit icon flags.
const (
	PositionLeft  = "left"
	PositionRight = "right"
)

// Widget describes one form field instance as the host form framework hands
// it to the styling engine.
type Widget struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Type        string            `json:"type" yaml:"type"`
	Label       string            `json:"label" yaml:"label"`
	Class       string            `json:"class" yaml:"class"`
	Placeholder string            `json:"placeholder" yaml:"placeholder"`
	Tableless   bool              `json:"tableless" yaml:"tableless"`
	SubmitLabel string            `json:"submitLabel" yaml:"submitLabel"`
	Errors      []string          `json:"errors" yaml:"errors"`
	Attributes  map[string]string `json:"attributes" yaml:"attributes"`

	AddIcon      bool   `json:"addIcon" yaml:"addIcon"`
	Icon         string `json:"icon" yaml:"icon"`
	IconPosition string `json:"iconPosition" yaml:"iconPosition"`

	AddUnit      bool   `json:"addUnit" yaml:"addUnit"`
	Unit         string `json:"unit" yaml:"unit"`
	UnitPosition string `json:"unitPosition" yaml:"unitPosition"`

	InlineStyle bool `json:"inlineStyle" yaml:"inlineStyle"`

	SubmitClass        string `json:"submitClass" yaml:"submitClass"`
	SubmitIcon         string `json:"submitIcon" yaml:"submitIcon"`
	SubmitIconPosition string `json:"submitIconPosition" yaml:"submitIconPosition"`
}

// Defaults returns the values applied to unset descriptor fields.
func Defaults() Widget {
	return Widget{
		IconPosition:       PositionLeft,
		UnitPosition:       PositionLeft,
		SubmitIconPosition: PositionRight,
	}
}

// New returns a copy of w with Defaults applied to unset fields and position
// flags normalised.
func New(w Widget) (*Widget, error) {
	if err := mergo.Merge(&w, Defaults()); err != nil {
		return nil, fmt.Errorf("widgets: apply defaults: %w", err)
	}
	w.Type = strings.TrimSpace(w.Type)
	w.IconPosition = normalisePosition(w.IconPosition, PositionLeft)
	w.UnitPosition = normalisePosition(w.UnitPosition, PositionLeft)
	w.SubmitIconPosition = normalisePosition(w.SubmitIconPosition, PositionRight)
	return &w, nil
}

// HasErrors reports whether the widget carries validation errors.
func (w *Widget) HasErrors() bool {
	if w == nil {
		return false
	}
	for _, message := range w.Errors {
		if strings.TrimSpace(message) != "" {
			return true
		}
	}
	return false
}

// HasLabel reports whether a non-blank label is set.
func (w *Widget) HasLabel() bool {
	return w != nil && strings.TrimSpace(w.Label) != ""
}

// DeclaredClasses splits Class into its tokens in declared order.
func (w *Widget) DeclaredClasses() []string {
	if w == nil {
		return nil
	}
	return strings.Fields(w.Class)
}

// DataAttributes returns the data-* entries of Attributes keyed by the name
// without the prefix.
func (w *Widget) DataAttributes() map[string]string {
	if w == nil || len(w.Attributes) == 0 {
		return nil
	}
	out := make(map[string]string)
	for key, value := range w.Attributes {
		if name, ok := strings.CutPrefix(key, "data-"); ok && name != "" {
			out[name] = value
		}
	}
	return out
}

func normalisePosition(value, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case PositionLeft:
		return PositionLeft
	case PositionRight:
		return PositionRight
	default:
		return fallback
	}
}

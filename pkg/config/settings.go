package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidSettings reports a configuration tree that fails validation.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the typed view of the "form" namespace.
type Settings struct {
	Widgets             map[string]map[string]bool `koanf:"widgets"`
	Horizontal          Horizontal                 `koanf:"horizontal"`
	DefaultHorizontal   bool                       `koanf:"default-horizontal"`
	DefaultSubmitButton string                     `koanf:"default-submit-btn"`
	StyledSelect        StyledSelect               `koanf:"styled-select"`
	StyledUpload        StyledUpload               `koanf:"styled-upload"`
	DataAttributes      []string                   `koanf:"data-attributes" validate:"dive,required"`
	DisabledRules       []string                   `koanf:"disabled-rules" validate:"dive,required"`
}

// Horizontal holds the grid classes used in column layout.
type Horizontal struct {
	Label   string `koanf:"label"`
	Control string `koanf:"control"`
	Offset  string `koanf:"offset"`
}

// StyledSelect configures bootstrap-select integration.
type StyledSelect struct {
	Enabled     bool     `koanf:"enabled"`
	Class       string   `koanf:"class" validate:"required_if=Enabled true"`
	Style       string   `koanf:"style"`
	JavaScript  []string `koanf:"javascript"`
	Stylesheets []string `koanf:"stylesheet"`
	I18n        string   `koanf:"i18n"`
}

// StyledUpload configures the styled file upload.
type StyledUpload struct {
	Enabled  bool   `koanf:"enabled"`
	Class    string `koanf:"class"`
	Position string `koanf:"position" validate:"omitempty,oneof=left right"`
	OnChange string `koanf:"onchange"`
	OnClick  string `koanf:"onclick"`
	Label    string `koanf:"label"`
	LabelKey string `koanf:"label-key"`
}

var settingsValidator = newSettingsValidator()

func newSettingsValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		settings, ok := sl.Current().Interface().(Settings)
		if !ok || !settings.DefaultHorizontal {
			return
		}
		if settings.Horizontal.Label == "" {
			sl.ReportError(settings.Horizontal.Label, "Horizontal.Label", "Label", "required_horizontal", "")
		}
		if settings.Horizontal.Control == "" {
			sl.ReportError(settings.Horizontal.Control, "Horizontal.Control", "Control", "required_horizontal", "")
		}
	}, Settings{})
	return validate
}

// Settings decodes and validates the "form" namespace.
func (c *Config) Settings() (Settings, error) {
	var settings Settings
	if c == nil || c.k == nil {
		return settings, nil
	}
	if err := c.k.Unmarshal("form", &settings); err != nil {
		return Settings{}, fmt.Errorf("config: decode settings: %w", err)
	}
	if err := settingsValidator.Struct(settings); err != nil {
		return Settings{}, fmt.Errorf("config: %w: %w", ErrInvalidSettings, err)
	}
	return settings, nil
}

// Validate checks that the configuration decodes into valid Settings.
func (c *Config) Validate() error {
	_, err := c.Settings()
	return err
}

// RuleDisabled reports whether name is listed in form.disabled-rules.
func (s Settings) RuleDisabled(name string) bool {
	for _, disabled := range s.DisabledRules {
		if disabled == name {
			return true
		}
	}
	return false
}

// DataAttributeAllowed reports whether data-<name> may pass through.
func (s Settings) DataAttributeAllowed(name string) bool {
	for _, allowed := range s.DataAttributes {
		if allowed == name {
			return true
		}
	}
	return false
}

package styler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-bootstrap-form/internal/logging"
	"github.com/goliatone/go-bootstrap-form/pkg/assets"
	"github.com/goliatone/go-bootstrap-form/pkg/config"
	"github.com/goliatone/go-bootstrap-form/pkg/icons"
	"github.com/goliatone/go-bootstrap-form/pkg/locale"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
	"github.com/goliatone/go-bootstrap-form/pkg/widgets"
)

// ErrInvalidEvent is returned for a nil event or an event without container.
var ErrInvalidEvent = errors.New("styler: invalid event")

// StyledSelectGroup is the asset group used for bootstrap-select files.
const StyledSelectGroup = "bootstrap-styled-select"

// AssetSink receives the script and stylesheet references a rule needs.
// Implementations must tolerate repeated registrations of one group.
type AssetSink interface {
	AddScripts(paths []string, group string)
	AddStylesheets(paths []string, group string)
}

// Option customises an Engine.
type Option func(*Engine)

// WithResolver injects the configuration resolver.
func WithResolver(resolver *config.Resolver) Option {
	return func(e *Engine) {
		e.resolver = resolver
	}
}

// WithAssetSink injects the asset sink.
func WithAssetSink(sink AssetSink) Option {
	return func(e *Engine) {
		e.assets = sink
	}
}

// WithIcons fixes the icon generator. Without it the generator is built from
// icons.template of the resolved configuration.
func WithIcons(generator *icons.Generator) Option {
	return func(e *Engine) {
		e.icons = generator
	}
}

// WithTranslator injects the translator used for button and option labels.
func WithTranslator(translator locale.Translator) Option {
	return func(e *Engine) {
		e.translator = translator
	}
}

// WithLanguage sets the render language, for example "de" or "pt_BR".
func WithLanguage(language string) Option {
	return func(e *Engine) {
		e.language = language
	}
}

// WithWidgetRegistry injects the widget type registry.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(e *Engine) {
		e.widgets = registry
	}
}

// WithLogger attaches a logger for rule decisions.
func WithLogger(logger *logging.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEnabled toggles Bootstrap layout selection. Engines are enabled by
// default.
func WithEnabled(enabled bool) Option {
	return func(e *Engine) {
		e.enabled = enabled
	}
}

// Engine applies the styling rules. It may be shared between goroutines but
// renders of one batch are expected to run sequentially.
type Engine struct {
	resolver   *config.Resolver
	assets     AssetSink
	icons      *icons.Generator
	translator locale.Translator
	language   string
	widgets    *widgets.Registry
	logger     *logging.Logger
	enabled    bool
	rules      []rule

	mu         sync.Mutex
	registered map[string]bool
}

// New constructs an Engine, filling missing collaborators with the embedded
// defaults, an in-memory asset registry and the builtin widget types. The
// global configuration is validated once.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		enabled:    true,
		rules:      pipeline(),
		registered: make(map[string]bool),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.Nop()
	}
	if e.resolver == nil {
		resolver, err := config.NewResolver(nil, nil, config.WithLogger(e.logger))
		if err != nil {
			return nil, fmt.Errorf("styler: %w", err)
		}
		e.resolver = resolver
	}
	if err := e.resolver.Global().Validate(); err != nil {
		return nil, fmt.Errorf("styler: %w", err)
	}
	if e.assets == nil {
		e.assets = assets.NewRegistry()
	}
	if e.widgets == nil {
		e.widgets = widgets.NewRegistry()
	}
	return e, nil
}

// Language returns the render language.
func (e *Engine) Language() string {
	return e.language
}

// Assets returns the asset sink.
func (e *Engine) Assets() AssetSink {
	return e.assets
}

// Widgets returns the widget type registry.
func (e *Engine) Widgets() *widgets.Registry {
	return e.widgets
}

// Rules lists the rule names in pipeline order.
func (e *Engine) Rules() []string {
	names := make([]string, 0, len(e.rules))
	for _, r := range e.rules {
		names = append(names, r.name)
	}
	return names
}

// Config returns the configuration for form; nil means the global config.
// Resolution failures are logged and fall back to the global config.
func (e *Engine) Config(form *view.FormContext) *config.Config {
	if form == nil {
		return e.resolver.Global()
	}
	cfg, err := e.resolver.ForForm(form.ID, form.OverrideIDs)
	if err != nil {
		e.logger.WithFields(map[string]any{"form_id": form.ID}).Error(err, "contextual config failed, using global config")
		return e.resolver.Global()
	}
	return cfg
}

// Reset starts a new render batch: contextual configs are rebuilt and asset
// groups registered again on next use. Sinks exposing Reset are reset too.
func (e *Engine) Reset() {
	e.resolver.Reset()
	e.mu.Lock()
	e.registered = make(map[string]bool)
	e.mu.Unlock()
	if resetter, ok := e.assets.(interface{ Reset() }); ok {
		resetter.Reset()
	}
}

// SelectLayout handles the create-view event: enabled engines switch the view
// to the bootstrap layout and mark it as form-group.
func (e *Engine) SelectLayout(event *view.Event) error {
	if event == nil || event.View == nil {
		return fmt.Errorf("%w: missing view", ErrInvalidEvent)
	}
	if !e.enabled {
		return nil
	}
	event.View.SetLayout(view.LayoutBootstrap)
	event.View.Attributes().AddClass("form-group")
	return nil
}

// OnBuildView runs the rule pipeline over event. Missing configuration never
// fails; only a malformed event is an error.
func (e *Engine) OnBuildView(event *view.Event) error {
	if event == nil {
		return fmt.Errorf("%w: nil event", ErrInvalidEvent)
	}
	if event.Container == nil {
		return fmt.Errorf("%w: missing container", ErrInvalidEvent)
	}

	s := e.newState(event)
	disabled := s.config.Strings("form.disabled-rules")
	for _, r := range e.rules {
		fields := map[string]any{"rule": r.name, "widget_type": s.widgetType, "form_id": s.formID()}
		if contains(disabled, r.name) {
			e.logger.WithFields(fields).Debug("rule disabled")
			continue
		}
		if r.apply(e, s) {
			e.logger.WithFields(fields).Debug("rule applied")
		}
	}
	return nil
}

// registerOnce forwards assets for group to the sink the first time group is
// seen in the current batch.
func (e *Engine) registerOnce(group string, scripts, stylesheets []string) bool {
	e.mu.Lock()
	if e.registered[group] {
		e.mu.Unlock()
		return false
	}
	e.registered[group] = true
	e.mu.Unlock()

	if len(scripts) > 0 {
		e.assets.AddScripts(scripts, group)
	}
	if len(stylesheets) > 0 {
		e.assets.AddStylesheets(stylesheets, group)
	}
	return true
}

func (e *Engine) iconGenerator(cfg *config.Config) *icons.Generator {
	if e.icons != nil {
		return e.icons
	}
	return icons.NewGenerator(cfg.String("icons.template", icons.DefaultTemplate))
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}

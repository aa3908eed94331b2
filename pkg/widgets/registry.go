package widgets

import (
	"sort"
	"strings"
	"sync"
)

// Built-in widget type identifiers. The names match the form framework's
// field types and the keys used under form.widgets in the configuration.
const (
	TypeHeadline    = "headline"
	TypeExplanation = "explanation"
	TypeHTML        = "html"
	TypeText        = "text"
	TypeEmail       = "email"
	TypeDigit       = "digit"
	TypeTel         = "tel"
	TypeURL         = "url"
	TypePassword    = "password"
	TypeTextarea    = "textarea"
	TypeSelect      = "select"
	TypeRadio       = "radio"
	TypeCheckbox    = "checkbox"
	TypeUpload      = "upload"
	TypeRange       = "range"
	TypeHidden      = "hidden"
	TypeCaptcha     = "captcha"
	TypeSubmit      = "submit"
	TypeButton      = "button"
)

// Matcher decides whether a widget descriptor belongs to a widget type when
// the descriptor does not name one.
type Matcher func(w Widget) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry knows the widget types available to the form framework. Types are
// listed in registration order; matchers infer a type for descriptors without
// one, higher priority first and ties by registration order.
type Registry struct {
	mu    sync.RWMutex
	names []string
	known map[string]struct{}
	rules []rule
}

// NewRegistry constructs a registry with the built-in types registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// NewEmptyRegistry constructs a registry without built-in types.
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

// Register adds a widget type. Registering a known name is a no-op.
func (r *Registry) Register(name string) {
	if r == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(trimmed)
}

// RegisterMatcher adds a type with a matcher used by Resolve.
func (r *Registry) RegisterMatcher(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.register(trimmed)
	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Has reports whether name is a registered type.
func (r *Registry) Has(name string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.known[strings.TrimSpace(name)]
	return ok
}

// Names lists registered types in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Resolve returns the widget type for w. An explicit Type wins; otherwise the
// matchers are evaluated.
func (r *Registry) Resolve(w Widget) (string, bool) {
	if explicit := strings.TrimSpace(w.Type); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(w) {
			return entry.name, true
		}
	}
	return "", false
}

// Apply fills w.Type through Resolve when it is empty.
func (r *Registry) Apply(w *Widget) bool {
	if w == nil {
		return false
	}
	name, ok := r.Resolve(*w)
	if ok {
		w.Type = name
	}
	return ok
}

func (r *Registry) register(name string) {
	if r.known == nil {
		r.known = make(map[string]struct{})
	}
	if _, exists := r.known[name]; exists {
		return
	}
	r.known[name] = struct{}{}
	r.names = append(r.names, name)
}

func inputType(w Widget) string {
	if w.Attributes == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(w.Attributes["type"]))
}

func inputTypeIs(types ...string) Matcher {
	return func(w Widget) bool {
		current := inputType(w)
		for _, candidate := range types {
			if current == candidate {
				return true
			}
		}
		return false
	}
}

func (r *Registry) registerBuiltins() {
	for _, name := range []string{TypeHeadline, TypeExplanation, TypeHTML} {
		r.Register(name)
	}

	r.RegisterMatcher(TypeUpload, 90, inputTypeIs("file"))
	r.RegisterMatcher(TypeSubmit, 80, inputTypeIs("submit", "image"))
	r.Register(TypeCaptcha)
	r.RegisterMatcher(TypePassword, 70, inputTypeIs("password"))
	r.RegisterMatcher(TypeEmail, 60, inputTypeIs("email"))
	r.RegisterMatcher(TypeTel, 60, inputTypeIs("tel"))
	r.RegisterMatcher(TypeURL, 60, inputTypeIs("url"))
	r.RegisterMatcher(TypeDigit, 60, inputTypeIs("number"))
	r.RegisterMatcher(TypeRange, 60, inputTypeIs("range"))
	r.RegisterMatcher(TypeHidden, 60, inputTypeIs("hidden"))
	r.RegisterMatcher(TypeCheckbox, 50, inputTypeIs("checkbox"))
	r.RegisterMatcher(TypeRadio, 50, inputTypeIs("radio"))
	r.Register(TypeTextarea)
	r.Register(TypeSelect)
	r.RegisterMatcher(TypeText, 10, inputTypeIs("text", "search", ""))
	r.Register(TypeButton)
}

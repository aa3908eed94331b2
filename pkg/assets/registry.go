// Package assets collects the JavaScript and stylesheet references styling
// features need, grouped by feature and emitted once per page.
package assets

import (
	"strings"
	"sync"

	"github.com/goliatone/go-bootstrap-form/pkg/element"
)

// Option customises a Registry.
type Option func(*Registry)

// WithURLResolver maps registered paths to public URLs. An empty result keeps
// the path as registered.
func WithURLResolver(resolve func(string) string) Option {
	return func(r *Registry) {
		r.resolve = resolve
	}
}

type group struct {
	name        string
	scripts     []string
	stylesheets []string
}

// Registry is an additive, idempotent asset sink. Groups keep first
// registration order and paths are deduplicated within and across groups.
type Registry struct {
	mu      sync.RWMutex
	groups  []*group
	index   map[string]*group
	resolve func(string) string
}

// NewRegistry creates an empty registry.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{index: make(map[string]*group)}
	for _, option := range options {
		if option != nil {
			option(r)
		}
	}
	return r
}

// AddScripts registers scripts under group.
func (r *Registry) AddScripts(paths []string, groupName string) {
	r.add(groupName, paths, func(g *group) *[]string { return &g.scripts })
}

// AddStylesheets registers stylesheets under group.
func (r *Registry) AddStylesheets(paths []string, groupName string) {
	r.add(groupName, paths, func(g *group) *[]string { return &g.stylesheets })
}

// HasGroup reports whether anything was registered under group.
func (r *Registry) HasGroup(groupName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[normalize(groupName)]
	return ok
}

// Groups lists group names in registration order.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.groups))
	for _, g := range r.groups {
		names = append(names, g.name)
	}
	return names
}

// Scripts returns every script URL in registration order without duplicates.
func (r *Registry) Scripts() []string {
	return r.collect(func(g *group) []string { return g.scripts })
}

// Stylesheets returns every stylesheet URL in registration order without
// duplicates.
func (r *Registry) Stylesheets() []string {
	return r.collect(func(g *group) []string { return g.stylesheets })
}

// Reset forgets every registration.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups = nil
	r.index = make(map[string]*group)
}

// Tags returns link and script elements for the registered assets,
// stylesheets first.
func (r *Registry) Tags() element.Group {
	var tags element.Group
	for _, href := range r.Stylesheets() {
		tags = append(tags, element.New("link", "rel", "stylesheet", "href", href))
	}
	for _, src := range r.Scripts() {
		tags = append(tags, element.New("script", "src", src))
	}
	return tags
}

func (r *Registry) add(groupName string, paths []string, list func(*group) *[]string) {
	name := normalize(groupName)
	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.index[name]
	if !ok {
		g = &group{name: name}
		r.index[name] = g
		r.groups = append(r.groups, g)
	}
	target := list(g)
	for _, raw := range paths {
		path := strings.TrimSpace(raw)
		if path == "" || contains(*target, path) {
			continue
		}
		*target = append(*target, path)
	}
}

func (r *Registry) collect(list func(*group) []string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	seen := make(map[string]struct{})
	for _, g := range r.groups {
		for _, path := range list(g) {
			url := path
			if r.resolve != nil {
				if resolved := strings.TrimSpace(r.resolve(path)); resolved != "" {
					url = resolved
				}
			}
			if _, exists := seen[url]; exists {
				continue
			}
			seen[url] = struct{}{}
			out = append(out, url)
		}
	}
	return out
}

func contains(values []string, value string) bool {
	for _, existing := range values {
		if existing == value {
			return true
		}
	}
	return false
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

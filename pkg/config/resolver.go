package config

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goliatone/go-bootstrap-form/internal/logging"
)

// DefaultCacheSize bounds the number of contextual configs kept per batch.
const DefaultCacheSize = 128

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithCacheSize overrides DefaultCacheSize.
func WithCacheSize(size int) ResolverOption {
	return func(r *Resolver) {
		if size > 0 {
			r.cacheSize = size
		}
	}
}

// WithLogger attaches a logger for skipped overrides and build failures.
func WithLogger(logger *logging.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// Resolver hands out the configuration for a render context: the global
// config for standalone fields, or a contextual config built from the form's
// override ids and cached by form id until Reset.
type Resolver struct {
	global    *Config
	store     Store
	logger    *logging.Logger
	cacheSize int

	mu    sync.Mutex
	cache *lru.Cache[string, *Config]
}

// NewResolver creates a Resolver. A nil global config resolves to the
// embedded defaults and a nil store knows no overrides.
func NewResolver(global *Config, store Store, options ...ResolverOption) (*Resolver, error) {
	if global == nil {
		global = Defaults()
	}
	if store == nil {
		store = MapStore{}
	}
	r := &Resolver{
		global:    global,
		store:     store,
		cacheSize: DefaultCacheSize,
	}
	for _, option := range options {
		if option != nil {
			option(r)
		}
	}
	cache, err := lru.New[string, *Config](r.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("config: create cache: %w", err)
	}
	r.cache = cache
	return r, nil
}

// Global returns the global configuration.
func (r *Resolver) Global() *Config {
	if r == nil {
		return nil
	}
	return r.global
}

// BuildContextual overlays the overrides named by ids on the global config in
// listed order. Unknown ids are skipped.
func (r *Resolver) BuildContextual(ids []string) (*Config, error) {
	trees := make([]map[string]any, 0, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		tree, ok := r.store.Override(id)
		if !ok {
			r.logger.WithFields(map[string]any{"override_id": id}).Debug("override not found, skipping")
			continue
		}
		trees = append(trees, tree)
	}
	if len(trees) == 0 {
		return r.global, nil
	}
	return r.global.Overlay(trees...)
}

// ForForm returns the contextual config for formID, building and caching it
// on first use. An empty formID returns the global config.
func (r *Resolver) ForForm(formID string, overrideIDs []string) (*Config, error) {
	if formID == "" {
		return r.global, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cache.Get(formID); ok {
		return cfg, nil
	}
	cfg, err := r.BuildContextual(overrideIDs)
	if err != nil {
		return nil, fmt.Errorf("config: form %q: %w", formID, err)
	}
	r.cache.Add(formID, cfg)
	return cfg, nil
}

// Reset drops every cached contextual config, starting a new render batch.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Purge()
}

// Cached reports how many contextual configs are held.
func (r *Resolver) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Len()
}

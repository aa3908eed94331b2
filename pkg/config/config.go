package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

const delimiter = "."

// Config is an immutable configuration tree. The zero value and a nil *Config
// answer every lookup with the supplied default.
type Config struct {
	k *koanf.Koanf
}

// New builds a Config from a nested tree.
func New(tree map[string]any) (*Config, error) {
	k := koanf.New(delimiter)
	if len(tree) > 0 {
		if err := k.Load(confmap.Provider(tree, delimiter), nil); err != nil {
			return nil, fmt.Errorf("config: load tree: %w", err)
		}
	}
	return &Config{k: k}, nil
}

// Exists reports whether path resolves to a value or a mapping.
func (c *Config) Exists(path string) bool {
	if c == nil || c.k == nil {
		return false
	}
	return c.k.Exists(path)
}

// Get returns the raw value at path, or def when a segment is absent or the
// path descends through a non-mapping leaf.
func (c *Config) Get(path string, def any) any {
	if !c.Exists(path) {
		return def
	}
	value := c.k.Get(path)
	if value == nil {
		return def
	}
	return value
}

// Bool returns the boolean at path. String values such as "false" coming from
// the environment layer are parsed.
func (c *Config) Bool(path string, def bool) bool {
	if !c.Exists(path) {
		return def
	}
	switch value := c.k.Get(path).(type) {
	case bool:
		return value
	case nil, map[string]any:
		return def
	default:
		return c.k.Bool(path)
	}
}

// String returns the string at path.
func (c *Config) String(path, def string) string {
	if !c.Exists(path) {
		return def
	}
	switch value := c.k.Get(path).(type) {
	case string:
		return value
	case nil, map[string]any:
		return def
	default:
		return fmt.Sprint(value)
	}
}

// Strings returns the list at path. A single string is treated as a list of
// one, absent paths yield nil.
func (c *Config) Strings(path string) []string {
	if !c.Exists(path) {
		return nil
	}
	return stringList(c.k.Get(path))
}

// Keys returns the immediate child keys of the mapping at path.
func (c *Config) Keys(path string) []string {
	if !c.Exists(path) {
		return nil
	}
	return c.k.MapKeys(path)
}

// Widget returns the boolean flag form.widgets.<widgetType>.<flag>.
func (c *Config) Widget(widgetType, flag string, def bool) bool {
	widgetType = strings.TrimSpace(widgetType)
	if widgetType == "" {
		return def
	}
	return c.Bool(WidgetPath(widgetType, flag), def)
}

// Raw returns a deep copy of the whole tree.
func (c *Config) Raw() map[string]any {
	if c == nil || c.k == nil {
		return map[string]any{}
	}
	return c.k.Raw()
}

// Overlay returns a new Config with trees merged over c in order. Top-level
// keys may be dotted paths ("form.widgets.text.input-group"). Mappings
// merge recursively; scalars and lists replace, and a later value replaces an
// earlier one wholesale when the kinds differ.
func (c *Config) Overlay(trees ...map[string]any) (*Config, error) {
	var k *koanf.Koanf
	if c == nil || c.k == nil {
		k = koanf.New(delimiter)
	} else {
		k = c.k.Copy()
	}
	for idx, tree := range trees {
		if len(tree) == 0 {
			continue
		}
		if err := k.Load(confmap.Provider(tree, delimiter), nil); err != nil {
			return nil, fmt.Errorf("config: overlay %d: %w", idx, err)
		}
	}
	return &Config{k: k}, nil
}

// WidgetPath builds the dotted path for a per-type widget flag.
func WidgetPath(widgetType, flag string) string {
	return "form.widgets." + widgetType + delimiter + flag
}

func stringList(value any) []string {
	switch typed := value.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(typed) == "" {
			return nil
		}
		return []string{typed}
	case []string:
		return append([]string(nil), typed...)
	case []any:
		out := make([]string, 0, len(typed))
		for _, entry := range typed {
			if entry == nil {
				continue
			}
			out = append(out, fmt.Sprint(entry))
		}
		return out
	default:
		return []string{fmt.Sprint(typed)}
	}
}

package locale

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingTranslator is returned when no translator is configured.
	ErrMissingTranslator = errors.New("locale: translator not configured")
	// ErrMissingTranslation is returned when a key has no message.
	ErrMissingTranslation = errors.New("locale: missing translation")
)

// Translator resolves message keys such as "FFL.text" for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// Translate resolves key through t, returning fallback when t is nil, the key
// is missing or the message is blank. A blank fallback yields the key.
func Translate(t Translator, locale, key, fallback string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	if t != nil {
		if result, err := t.Translate(locale, key); err == nil && strings.TrimSpace(result) != "" {
			return result
		}
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// Catalog is an in-memory Translator. Lookups try the exact locale, then its
// language prefix, then the default locale.
type Catalog struct {
	defaultLocale string
	messages      map[string]map[string]string
}

// NewCatalog creates an empty catalog.
func NewCatalog(defaultLocale string) *Catalog {
	return &Catalog{
		defaultLocale: normaliseLocale(defaultLocale),
		messages:      make(map[string]map[string]string),
	}
}

// Add stores messages for locale. Keys are dotted paths.
func (c *Catalog) Add(locale string, messages map[string]string) {
	locale = normaliseLocale(locale)
	if locale == "" {
		return
	}
	bucket, ok := c.messages[locale]
	if !ok {
		bucket = make(map[string]string, len(messages))
		c.messages[locale] = bucket
	}
	for key, value := range messages {
		bucket[strings.TrimSpace(key)] = value
	}
}

// Translate implements Translator. Args are applied with fmt.Sprintf.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	for _, candidate := range c.candidates(locale) {
		if message, ok := c.messages[candidate][key]; ok {
			if len(args) > 0 {
				return fmt.Sprintf(message, args...), nil
			}
			return message, nil
		}
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
}

// Locales lists the locales holding messages.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	return out
}

func (c *Catalog) candidates(locale string) []string {
	locale = normaliseLocale(locale)
	out := make([]string, 0, 3)
	if locale != "" {
		out = append(out, locale)
		if language := Language(locale); language != locale {
			out = append(out, language)
		}
	}
	if c.defaultLocale != "" && c.defaultLocale != locale {
		out = append(out, c.defaultLocale)
	}
	return out
}

// LoadCatalog reads <locale>.yaml, <locale>.yml or <locale>.json files from
// fsys. Nested mappings flatten into dotted keys, so
//
//	MSC:
//	  bootstrapUploadButton: Durchsuchen
//
// becomes "MSC.bootstrapUploadButton".
func LoadCatalog(fsys fs.FS, defaultLocale string) (*Catalog, error) {
	catalog := NewCatalog(defaultLocale)
	if fsys == nil {
		return catalog, nil
	}
	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(name))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			return nil
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("locale: read %s: %w", name, err)
		}
		var tree map[string]any
		if ext == ".json" {
			err = json.Unmarshal(data, &tree)
		} else {
			err = yaml.Unmarshal(data, &tree)
		}
		if err != nil {
			return fmt.Errorf("locale: parse %s: %w", name, err)
		}
		messages := make(map[string]string)
		flatten("", tree, messages)
		catalog.Add(strings.TrimSuffix(path.Base(name), path.Ext(name)), messages)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch typed := value.(type) {
		case map[string]any:
			flatten(full, typed, out)
		case nil:
		default:
			out[full] = fmt.Sprint(typed)
		}
	}
}

func normaliseLocale(locale string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(locale)), "-", "_")
}

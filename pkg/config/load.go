package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// DefaultEnvPrefix is the environment prefix read by WithEnv when none is
// supplied.
const DefaultEnvPrefix = "BOOTSTRAP_FORM_"

// LoadOption customises LoadGlobal.
type LoadOption func(*loadOptions)

type loadOptions struct {
	files     []string
	optional  bool
	envPrefix string
	useEnv    bool
	skipBase  bool
}

// WithFile layers a YAML file over the embedded defaults. Files load in the
// order the options are supplied.
func WithFile(path string) LoadOption {
	return func(o *loadOptions) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			o.files = append(o.files, trimmed)
		}
	}
}

// WithOptionalFiles ignores files supplied through WithFile that do not exist.
func WithOptionalFiles() LoadOption {
	return func(o *loadOptions) {
		o.optional = true
	}
}

// WithEnv layers environment variables carrying prefix over the files. Keys
// are lower-cased with "__" read as a path separator and "_" as a dash, so
// BOOTSTRAP_FORM_FORM__STYLED_SELECT__ENABLED maps to form.styled-select.enabled.
func WithEnv(prefix string) LoadOption {
	return func(o *loadOptions) {
		o.useEnv = true
		o.envPrefix = prefix
		if o.envPrefix == "" {
			o.envPrefix = DefaultEnvPrefix
		}
	}
}

// WithoutDefaults starts from an empty tree instead of the embedded defaults.
func WithoutDefaults() LoadOption {
	return func(o *loadOptions) {
		o.skipBase = true
	}
}

// Defaults returns the embedded default configuration.
func Defaults() *Config {
	cfg, err := LoadGlobal()
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// DefaultsYAML returns the embedded defaults document.
func DefaultsYAML() []byte {
	return append([]byte(nil), defaultsYAML...)
}

// LoadGlobal builds the global configuration: embedded defaults, then each
// file, then the environment.
func LoadGlobal(options ...LoadOption) (*Config, error) {
	var opts loadOptions
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}

	k := koanf.New(delimiter)
	if !opts.skipBase {
		if err := k.Load(&rawBytesProvider{bytes: defaultsYAML}, yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load defaults: %w", err)
		}
	}

	for _, path := range opts.files {
		if _, err := os.Stat(path); err != nil {
			if opts.optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if opts.useEnv {
		prefix := opts.envPrefix
		provider := env.Provider(delimiter, env.Opt{
			Prefix: prefix,
			TransformFunc: func(key, value string) (string, any) {
				return envKey(prefix, key), value
			},
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, fmt.Errorf("config: load environment: %w", err)
		}
	}

	return &Config{k: k}, nil
}

func envKey(prefix, key string) string {
	key = strings.TrimPrefix(key, prefix)
	key = strings.ToLower(key)
	segments := strings.Split(key, "__")
	for idx, segment := range segments {
		segments[idx] = strings.ReplaceAll(segment, "_", "-")
	}
	return strings.Join(segments, delimiter)
}

// rawBytesProvider feeds an in-memory document to a koanf parser.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }

func (r *rawBytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("config: raw bytes provider requires a parser")
}

package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest reports a theme manifest without a name.
var ErrInvalidManifest = errors.New("assets: invalid theme manifest")

type manifestAssets struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type manifestVariant struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    manifestAssets    `yaml:"assets"`
}

type manifestDocument struct {
	Name      string                     `yaml:"name"`
	Version   string                     `yaml:"version"`
	Tokens    map[string]string          `yaml:"tokens"`
	Templates map[string]string          `yaml:"templates"`
	Assets    manifestAssets             `yaml:"assets"`
	Variants  map[string]manifestVariant `yaml:"variants"`
}

// LoadManifest decodes a YAML theme manifest. Asset file keys are the paths
// registered by the styling rules, the values are files under the prefix.
//
//	name: acme
//	assets:
//	  prefix: /static/acme
//	  files:
//	    system/modules/bootstrap-form/assets/bootstrap-select.js: select.js
//	variants:
//	  dark:
//	    assets:
//	      files: {...}
func LoadManifest(r io.Reader) (*theme.Manifest, error) {
	var doc manifestDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("assets: decode theme manifest: %w", err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidManifest)
	}

	manifest := &theme.Manifest{
		Name:      doc.Name,
		Version:   doc.Version,
		Tokens:    doc.Tokens,
		Templates: doc.Templates,
		Assets:    theme.Assets{Prefix: doc.Assets.Prefix, Files: doc.Assets.Files},
	}
	if len(doc.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(doc.Variants))
		for name, variant := range doc.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest, nil
}

// LoadManifestFile reads the manifest at path.
func LoadManifestFile(path string) (*theme.Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open theme manifest: %w", err)
	}
	defer file.Close()
	return LoadManifest(file)
}

// ThemeResolverForManifest selects variant of manifest without a registry.
func ThemeResolverForManifest(manifest *theme.Manifest, variant string) *ThemeResolver {
	if manifest == nil {
		return ThemeResolverFromSelection(nil)
	}
	return ThemeResolverFromSelection(&theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	})
}

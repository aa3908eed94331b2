package assets_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bootstrap-form/pkg/assets"
)

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     [][2]string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, [2]string{name, variant})
	return s.selection, s.err
}

func acmeSelection(variant string) *theme.Selection {
	return &theme.Selection{
		Theme:   "acme",
		Variant: variant,
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Assets: theme.Assets{
				Prefix: "/assets/themes/acme",
				Files: map[string]string{
					"bootstrap-select.js":  "select.js",
					"bootstrap-select.css": "select.css",
				},
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Assets: theme.Assets{
						Files: map[string]string{"bootstrap-select.css": "select.dark.css"},
					},
				},
			},
		},
	}
}

func TestThemeResolverAssetURL(t *testing.T) {
	selector := &stubThemeSelector{selection: acmeSelection("dark")}
	resolver, err := assets.NewThemeResolver(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("new theme resolver: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != [2]string{"acme", "dark"} {
		t.Fatalf("unexpected selector calls %v", selector.calls)
	}

	cases := map[string]string{
		"bootstrap-select.js":  "/assets/themes/acme/select.js",
		"bootstrap-select.css": "/assets/themes/acme/select.dark.css",
		"unknown":              "",
	}
	for key, want := range cases {
		if got := resolver.AssetURL(key); got != want {
			t.Fatalf("asset %q: want %q, got %q", key, want, got)
		}
	}
	if name, variant := resolver.Theme(); name != "acme" || variant != "dark" {
		t.Fatalf("unexpected theme %s/%s", name, variant)
	}
}

func TestThemeResolverFeedsRegistry(t *testing.T) {
	resolver := assets.ThemeResolverFromSelection(acmeSelection(""))
	reg := assets.NewRegistry(assets.WithURLResolver(resolver.AssetURL))
	reg.AddStylesheets([]string{"bootstrap-select.css"}, "bootstrap-styled-select")

	if got := reg.Stylesheets(); len(got) != 1 || got[0] != "/assets/themes/acme/select.css" {
		t.Fatalf("unexpected stylesheets %v", got)
	}
}

func TestNewThemeResolverErrors(t *testing.T) {
	if _, err := assets.NewThemeResolver(nil, "acme", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}
	boom := errors.New("boom")
	_, err := assets.NewThemeResolver(&stubThemeSelector{err: boom}, "acme", "")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}
}

func TestLoadManifestResolvesRegisteredAssets(t *testing.T) {
	doc := `
name: acme
version: 2.0.0
assets:
  prefix: /static/acme
  files:
    vendor/select.js: select.min.js
    vendor/select.css: select.min.css
variants:
  dark:
    assets:
      prefix: /static/acme-dark
      files:
        vendor/select.css: select.dark.css
`
	manifest, err := assets.LoadManifest(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	resolver := assets.ThemeResolverForManifest(manifest, "dark")
	if name, variant := resolver.Theme(); name != "acme" || variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", name, variant)
	}

	registry := assets.NewRegistry(assets.WithURLResolver(resolver.AssetURL))
	registry.AddScripts([]string{"vendor/select.js", "vendor/other.js"}, "select")
	registry.AddStylesheets([]string{"vendor/select.css"}, "select")

	if diff := cmp.Diff([]string{"/static/acme/select.min.js", "vendor/other.js"}, registry.Scripts()); diff != "" {
		t.Fatalf("scripts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/static/acme-dark/select.dark.css"}, registry.Stylesheets()); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadManifestRequiresName(t *testing.T) {
	_, err := assets.LoadManifest(strings.NewReader("version: 1.0.0\n"))
	if !errors.Is(err, assets.ErrInvalidManifest) {
		t.Fatalf("expected ErrInvalidManifest, got %v", err)
	}
}

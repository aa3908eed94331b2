package assets

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeResolver maps asset keys to URLs using a go-theme selection. Variant
// files take precedence over the base manifest files.
type ThemeResolver struct {
	selection *theme.Selection
}

// NewThemeResolver selects name and variant through selector.
func NewThemeResolver(selector theme.ThemeSelector, name, variant string) (*ThemeResolver, error) {
	if selector == nil {
		return nil, errors.New("assets: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("assets: select theme %q: %w", name, err)
	}
	return ThemeResolverFromSelection(selection), nil
}

// ThemeResolverFromSelection wraps an existing selection.
func ThemeResolverFromSelection(selection *theme.Selection) *ThemeResolver {
	return &ThemeResolver{selection: selection}
}

// Theme returns the selected theme and variant names.
func (t *ThemeResolver) Theme() (string, string) {
	if t == nil || t.selection == nil {
		return "", ""
	}
	return t.selection.Theme, t.selection.Variant
}

// AssetURL returns the URL for key or "" when the theme does not provide it.
func (t *ThemeResolver) AssetURL(key string) string {
	if t == nil || t.selection == nil || t.selection.Manifest == nil {
		return ""
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	manifest := t.selection.Manifest
	prefix := manifest.Assets.Prefix

	if variant, ok := manifest.Variants[t.selection.Variant]; ok {
		if file, ok := variant.Assets.Files[key]; ok && file != "" {
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
			return joinURL(prefix, file)
		}
	}
	if file, ok := manifest.Assets.Files[key]; ok && file != "" {
		return joinURL(prefix, file)
	}
	return ""
}

func joinURL(prefix, file string) string {
	if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}

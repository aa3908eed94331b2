package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-form/pkg/config"
)

func TestDefaultsLookups(t *testing.T) {
	cfg := config.Defaults()

	if !cfg.Bool("form.widgets.select.styled-select", false) {
		t.Fatalf("expected select styled-select to default to true")
	}
	if got := cfg.String("form.horizontal.label", ""); got != "col-lg-3" {
		t.Fatalf("unexpected horizontal label %q", got)
	}
	if got := cfg.String("icons.template", ""); got != `<span class="glyphicon glyphicon-%s"></span>` {
		t.Fatalf("unexpected icon template %q", got)
	}
	if diff := cmp.Diff([]string{"target", "toggle", "dismiss", "remote"}, cfg.Strings("form.data-attributes")); diff != "" {
		t.Fatalf("data attributes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"system/modules/bootstrap-form/assets/bootstrap-select/bootstrap-select.min.css"}, cfg.Strings("form.styled-select.stylesheet")); diff != "" {
		t.Fatalf("single string should read as one-element list (-want +got):\n%s", diff)
	}
	onchange := cfg.String("form.styled-upload.onchange", "")
	if !strings.Contains(onchange, `getElementById('%s_value')`) || !strings.Contains(onchange, `/C:\\fakepath\\/i`) {
		t.Fatalf("unexpected onchange template %q", onchange)
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	cfg := config.Defaults()

	cases := []struct {
		name string
		path string
	}{
		{name: "absent segment", path: "form.widgets.unknown.label"},
		{name: "through scalar leaf", path: "form.default-horizontal.nested"},
		{name: "absent namespace", path: "missing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cfg.Get(tc.path, "fallback"); got != "fallback" {
				t.Fatalf("expected default for %s, got %v", tc.path, got)
			}
		})
	}

	var nilConfig *config.Config
	if !nilConfig.Bool("form.anything", true) {
		t.Fatalf("nil config should return the default")
	}
	if nilConfig.Widget("text", "input-group", false) {
		t.Fatalf("nil config should return the default widget flag")
	}
}

func TestAbsentWidgetTypeUsesDefaults(t *testing.T) {
	cfg := config.Defaults()

	if !cfg.Widget("range", "form-control", true) {
		t.Fatalf("form-control should default to enabled")
	}
	if !cfg.Widget("range", "label", true) {
		t.Fatalf("label should default to visible")
	}
	if cfg.Widget("range", "input-group", false) {
		t.Fatalf("input-group should default to disabled")
	}
}

func TestOverlayMergesByPath(t *testing.T) {
	global := config.Defaults()
	overlay, err := global.Overlay(
		map[string]any{"form": map[string]any{
			"widgets": map[string]any{"text": map[string]any{"input-group": true, "label": false}},
		}},
		map[string]any{"form": map[string]any{
			"widgets":         map[string]any{"text": map[string]any{"input-group": false}},
			"data-attributes": []any{"toggle"},
			"horizontal":      "none",
		}},
	)
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}

	if overlay.Widget("text", "input-group", true) {
		t.Fatalf("later override should win")
	}
	if overlay.Widget("text", "label", true) {
		t.Fatalf("earlier override should survive recursive merge")
	}
	if diff := cmp.Diff([]string{"toggle"}, overlay.Strings("form.data-attributes")); diff != "" {
		t.Fatalf("lists should replace (-want +got):\n%s", diff)
	}
	if got := overlay.String("form.horizontal", ""); got != "none" {
		t.Fatalf("scalar should replace mapping, got %q", got)
	}
	if got := overlay.Get("form.horizontal.label", "fallback"); got != "fallback" {
		t.Fatalf("replaced mapping should no longer resolve, got %v", got)
	}
	if got := overlay.String("form.styled-select.class", ""); got != "selectpicker" {
		t.Fatalf("untouched path should equal global, got %q", got)
	}

	if !global.Widget("text", "input-group", false) {
		t.Fatalf("overlay must not mutate the global config")
	}
	if got := global.String("form.horizontal.label", ""); got != "col-lg-3" {
		t.Fatalf("overlay must not mutate the global config, got %q", got)
	}
}

func TestOverlayAcceptsDottedKeys(t *testing.T) {
	overlay, err := config.Defaults().Overlay(map[string]any{"form.widgets.select.styled-select": false})
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if overlay.Widget("select", "styled-select", true) {
		t.Fatalf("dotted override should apply")
	}
}

func TestLoadGlobalLayersFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bootstrap.yaml")
	doc := "form:\n  default-horizontal: false\n  styled-upload:\n    position: left\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BOOTSTRAP_FORM_TEST_FORM__STYLED_SELECT__ENABLED", "false")

	cfg, err := config.LoadGlobal(config.WithFile(path), config.WithEnv("BOOTSTRAP_FORM_TEST_"))
	if err != nil {
		t.Fatalf("load global: %v", err)
	}

	if cfg.Bool("form.default-horizontal", true) {
		t.Fatalf("file layer should disable default-horizontal")
	}
	if got := cfg.String("form.styled-upload.position", ""); got != "left" {
		t.Fatalf("file layer should set upload position, got %q", got)
	}
	if cfg.Bool("form.styled-select.enabled", true) {
		t.Fatalf("environment layer should disable styled select")
	}
	if got := cfg.String("form.styled-upload.class", ""); got != "btn btn-primary" {
		t.Fatalf("defaults should survive layering, got %q", got)
	}
}

func TestLoadGlobalMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := config.LoadGlobal(config.WithFile(missing)); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := config.LoadGlobal(config.WithFile(missing), config.WithOptionalFiles()); err != nil {
		t.Fatalf("optional missing file should be skipped: %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"compact.yaml": {Data: []byte("overrides:\n  compact:\n    form:\n      default-horizontal: false\n")},
		"nested/inline.json": {Data: []byte(`{"overrides":{"inline":{"form":{"widgets":{"text":{"input-group":false}}}}}}`)},
		"notes.txt":          {Data: []byte("ignored")},
	}

	store, err := config.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if diff := cmp.Diff([]string{"compact", "inline"}, store.IDs()); diff != "" {
		t.Fatalf("override ids mismatch (-want +got):\n%s", diff)
	}
	if source, _ := store.Source("inline"); source != "nested/inline.json" {
		t.Fatalf("unexpected source %q", source)
	}
	tree, ok := store.Override("compact")
	if !ok {
		t.Fatalf("expected compact override")
	}
	form, _ := tree["form"].(map[string]any)
	if form["default-horizontal"] != false {
		t.Fatalf("unexpected compact tree %v", tree)
	}
}

func TestLoadFSRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("overrides:\n  shared: {}\n")},
		"b.yaml": {Data: []byte("overrides:\n  shared: {}\n")},
	}
	_, err := config.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), `duplicate override "shared"`) {
		t.Fatalf("expected duplicate override error, got %v", err)
	}
}

func TestLoadFSRejectsEmptyFile(t *testing.T) {
	_, err := config.LoadFS(fstest.MapFS{"empty.yaml": {Data: []byte("  \n")}})
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestSettingsDecode(t *testing.T) {
	settings, err := config.Defaults().Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !settings.DefaultHorizontal || settings.Horizontal.Control != "col-lg-9" {
		t.Fatalf("unexpected horizontal settings %+v", settings.Horizontal)
	}
	if settings.StyledUpload.Position != "right" || settings.StyledUpload.LabelKey != "MSC.bootstrapUploadButton" {
		t.Fatalf("unexpected upload settings %+v", settings.StyledUpload)
	}
	if len(settings.StyledSelect.JavaScript) != 2 || len(settings.StyledSelect.Stylesheets) != 1 {
		t.Fatalf("unexpected select assets %+v", settings.StyledSelect)
	}
	if settings.Widgets["checkbox"]["form-control"] {
		t.Fatalf("expected checkbox form-control flag to decode as false")
	}
	if !settings.DataAttributeAllowed("toggle") || settings.DataAttributeAllowed("bogus") {
		t.Fatalf("unexpected data attribute whitelist %v", settings.DataAttributes)
	}
	if settings.RuleDisabled("input-group") {
		t.Fatalf("no rule should be disabled by default")
	}
}

func TestSettingsValidation(t *testing.T) {
	cases := []struct {
		name     string
		override map[string]any
	}{
		{
			name:     "upload position",
			override: map[string]any{"form.styled-upload.position": "top"},
		},
		{
			name:     "horizontal label required",
			override: map[string]any{"form.horizontal.label": ""},
		},
		{
			name:     "select class required",
			override: map[string]any{"form.styled-select.class": ""},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Defaults().Overlay(tc.override)
			if err != nil {
				t.Fatalf("overlay: %v", err)
			}
			if err := cfg.Validate(); !errors.Is(err, config.ErrInvalidSettings) {
				t.Fatalf("expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	bootstrapform "github.com/goliatone/go-bootstrap-form"
	"github.com/goliatone/go-bootstrap-form/pkg/assets"
	"github.com/goliatone/go-bootstrap-form/pkg/element"
	"github.com/goliatone/go-bootstrap-form/pkg/locale"
	"github.com/goliatone/go-bootstrap-form/pkg/styler"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
)

type renderOptions struct {
	tree          bool
	language      string
	translations  string
	themeManifest string
	themeVariant  string
	withAssets    bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <fixture.yaml>",
		Short: "Style and render the widgets of a fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.tree, "tree", false, "Print the styled element tree instead of HTML")
	cmd.Flags().StringVar(&opts.language, "language", "", "Render language, overrides the fixture language")
	cmd.Flags().StringVar(&opts.translations, "translations", "", "Directory of <locale>.yaml message catalogs")
	cmd.Flags().StringVar(&opts.themeManifest, "theme-manifest", "", "go-theme manifest used to resolve asset URLs")
	cmd.Flags().StringVar(&opts.themeVariant, "theme-variant", "", "Theme variant")
	cmd.Flags().BoolVar(&opts.withAssets, "assets", false, "Print the registered link and script tags")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, path string) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	fixture, err := bootstrapform.LoadFixtureFile(path)
	if err != nil {
		return err
	}
	language := fixture.Language
	if opts.language != "" {
		language = opts.language
	}

	registry, err := newAssetRegistry(opts)
	if err != nil {
		return err
	}
	engineOptions := []styler.Option{styler.WithAssetSink(registry), styler.WithLanguage(language)}
	if opts.translations != "" {
		catalog, err := locale.LoadCatalog(os.DirFS(opts.translations), "en")
		if err != nil {
			return err
		}
		engineOptions = append(engineOptions, styler.WithTranslator(catalog))
	}
	engine, err := app.engine(engineOptions...)
	if err != nil {
		return err
	}

	events, err := fixture.Events(engine.Widgets())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.tree {
		for i, event := range events {
			if err := bootstrapform.Style(engine, event); err != nil {
				return fmt.Errorf("style widget %d: %w", i, err)
			}
			fmt.Fprint(out, element.Dump(event.Container))
		}
	} else {
		renderer, err := view.NewRenderer()
		if err != nil {
			return err
		}
		fragments, err := bootstrapform.RenderEvents(engine, renderer, events)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, strings.Join(fragments, "\n"))
	}

	if opts.withAssets {
		tags, err := element.RenderString(registry.Tags())
		if err != nil {
			return err
		}
		if tags != "" {
			fmt.Fprintln(out, tags)
		}
	}
	app.logger.WithFields(map[string]any{"widgets": len(events), "asset_groups": len(registry.Groups())}).Info("fixture rendered")
	return nil
}

func newAssetRegistry(opts *renderOptions) (*assets.Registry, error) {
	if opts.themeManifest == "" {
		return assets.NewRegistry(), nil
	}
	manifest, err := assets.LoadManifestFile(opts.themeManifest)
	if err != nil {
		return nil, err
	}
	resolver := assets.ThemeResolverForManifest(manifest, opts.themeVariant)
	return assets.NewRegistry(assets.WithURLResolver(resolver.AssetURL)), nil
}

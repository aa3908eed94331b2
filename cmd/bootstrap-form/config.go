package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bootstrap-form/pkg/styler"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
)

func newConfigCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}
	cmd.AddCommand(newConfigGetCmd(rootFlags))
	cmd.AddCommand(newConfigNamesCmd(rootFlags))
	return cmd
}

type configGetOptions struct {
	formOverrides []string
}

func newConfigGetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &configGetOptions{}

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a dotted path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&opts.formOverrides, "form-overrides", nil, "Override ids applied in order (comma separated)")

	return cmd
}

func runConfigGet(cmd *cobra.Command, rootFlags *rootFlags, opts *configGetOptions, path string) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	cfg := app.global
	if len(opts.formOverrides) > 0 {
		form := &view.FormContext{ID: strings.Join(opts.formOverrides, ","), OverrideIDs: opts.formOverrides}
		cfg, err = app.resolver.ForForm(form.ID, form.OverrideIDs)
		if err != nil {
			return err
		}
	}

	path = strings.TrimSpace(path)
	if !cfg.Exists(path) {
		return fmt.Errorf("config: path %q not found", path)
	}
	data, err := yaml.Marshal(cfg.Get(path, nil))
	if err != nil {
		return fmt.Errorf("config: encode %q: %w", path, err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

type configNamesOptions struct {
	override bool
	language string
}

func newConfigNamesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &configNamesOptions{}

	cmd := &cobra.Command{
		Use:   "names",
		Short: "List the widget types selectable for form widget configs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigNames(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.override, "override", false, "Limit to the configured widget types")
	cmd.Flags().StringVar(&opts.language, "language", "", "Label language")

	return cmd
}

func runConfigNames(cmd *cobra.Command, rootFlags *rootFlags, opts *configNamesOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	engine, err := app.engine(styler.WithLanguage(opts.language))
	if err != nil {
		return err
	}

	event := &styler.NamesEvent{Model: styler.ConfigModel{Type: styler.ModelTypeFormWidget, Override: opts.override}}
	engine.Subscriber().DispatchConfigNames(event)

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tLABEL")
	for _, option := range event.Options {
		fmt.Fprintf(writer, "%s\t%s\n", option.Name, option.Label)
	}
	return writer.Flush()
}

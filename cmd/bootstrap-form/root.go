package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath   string
	overridesDir string
	useEnv       bool
	logLevel     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bootstrap-form",
		Short:         "Apply Bootstrap styling rules to form widget fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML file layered over the embedded defaults")
	cmd.PersistentFlags().StringVar(&flags.overridesDir, "overrides", "", "Directory of override documents")
	cmd.PersistentFlags().BoolVar(&flags.useEnv, "env", false, "Layer BOOTSTRAP_FORM_* environment variables")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bootstrap-form/internal/logging"
	"github.com/goliatone/go-bootstrap-form/pkg/config"
	"github.com/goliatone/go-bootstrap-form/pkg/styler"
)

// appContext holds the collaborators shared by the commands.
type appContext struct {
	logger   *logging.Logger
	global   *config.Config
	resolver *config.Resolver
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	logger, err := logging.New(logging.Options{
		Level:         flags.logLevel,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	var options []config.LoadOption
	if flags.configPath != "" {
		options = append(options, config.WithFile(flags.configPath))
	}
	if flags.useEnv {
		options = append(options, config.WithEnv(config.DefaultEnvPrefix))
	}
	global, err := config.LoadGlobal(options...)
	if err != nil {
		return nil, err
	}

	var store config.Store
	if flags.overridesDir != "" {
		info, err := os.Stat(flags.overridesDir)
		if err != nil {
			return nil, fmt.Errorf("overrides directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("overrides path %s is not a directory", flags.overridesDir)
		}
		fileStore, err := config.LoadFS(os.DirFS(flags.overridesDir))
		if err != nil {
			return nil, err
		}
		logger.WithFields(map[string]any{"dir": flags.overridesDir, "overrides": len(fileStore.IDs())}).Debug("overrides loaded")
		store = fileStore
	}

	resolver, err := config.NewResolver(global, store, config.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &appContext{logger: logger, global: global, resolver: resolver}, nil
}

func (a *appContext) engine(options ...styler.Option) (*styler.Engine, error) {
	base := []styler.Option{styler.WithResolver(a.resolver), styler.WithLogger(a.logger)}
	return styler.New(append(base, options...)...)
}

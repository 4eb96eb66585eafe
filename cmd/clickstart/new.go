package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cpcf/clickstart/config"
	"github.com/cpcf/clickstart/debug"
	"github.com/cpcf/clickstart/engine"
	"github.com/cpcf/clickstart/extension"
	"github.com/cpcf/clickstart/scaffold"
	"github.com/cpcf/clickstart/state"
	"github.com/cpcf/clickstart/write"
)

type newFlags struct {
	pkg        string
	layout     string
	configPath string
	noConfig   bool
	pretend    bool
}

func newNewCmd() *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new <project>",
		Short: "Generate a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.pkg, "package", "p", "", "package name (defaults to the project name with hyphens replaced)")
	cmd.Flags().StringVar(&flags.layout, "layout", "", "packaging layout: modern or legacy (default modern)")
	cmd.Flags().StringVar(&flags.configPath, "config", config.DefaultFileName, "defaults file to read")
	cmd.Flags().BoolVar(&flags.noConfig, "no-config", false, "ignore any defaults file")
	cmd.Flags().BoolVar(&flags.pretend, "pretend", false, "report what would be written without writing")

	return cmd
}

func runNew(project string, flags *newFlags) error {
	logger := debug.NewLogger(verbose)

	opts := scaffold.Options{"project": project}
	if flags.pkg != "" {
		opts["package"] = flags.pkg
	}

	layoutName := flags.layout
	if !flags.noConfig {
		var defaults config.Defaults
		err := config.Load(flags.configPath, &defaults)
		switch {
		case errors.Is(err, config.ErrNotFound):
			logger.Debug("no defaults file", "path", flags.configPath)
		case err != nil:
			return err
		default:
			defaults.Apply(opts)
			if layoutName == "" {
				layoutName = defaults.Layout
			}
		}
	}

	layout, err := parseLayout(layoutName)
	if err != nil {
		return err
	}

	e := engine.New(
		engine.WithLogger(logger),
		engine.WithSteps(extension.DefaultSteps(layout)),
	)
	e.Register(&extension.Clickstart{Layout: layout})

	tree, opts, err := e.Run(scaffold.Tree{}, opts)
	if err != nil {
		return err
	}

	flushOpts := []write.FlushOption{write.WithLogger(logger)}
	var dry *write.DryRunWriter
	if flags.pretend {
		dry = write.NewDryRunWriter()
		flushOpts = append(flushOpts, write.WithWriter(dry))
	}

	written, err := write.NewFlusher(project, flushOpts...).Flush(tree, opts)
	if err != nil {
		return err
	}

	if flags.pretend {
		for _, change := range dry.Changes() {
			infof("would %s %s (%d bytes)\n", change.Action, change.Path, change.Size)
		}
		return nil
	}

	manager := state.NewManager(project)
	manifest, err := manager.Load()
	if err != nil {
		return err
	}
	if err := manager.Record(manifest, opts.Project(), written); err != nil {
		return err
	}

	successf("created %s (%d files)\n", project, len(written))
	return nil
}

func parseLayout(name string) (extension.Layout, error) {
	switch name {
	case "", "modern":
		return extension.Modern, nil
	case "legacy":
		return extension.Legacy, nil
	default:
		return 0, fmt.Errorf("unknown layout %q (expected modern or legacy)", name)
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cpcf/clickstart/debug"
	"github.com/cpcf/clickstart/engine"
	"github.com/cpcf/clickstart/extension"
	"github.com/cpcf/clickstart/scaffold"
	"github.com/cpcf/clickstart/state"
	"github.com/cpcf/clickstart/write"
)

type updateFlags struct {
	pkg     string
	layout  string
	pretend bool
}

func newUpdateCmd() *cobra.Command {
	flags := &updateFlags{}

	cmd := &cobra.Command{
		Use:   "update <dir>",
		Short: "Re-apply the generator to an existing project",
		Long:  "update re-runs the clickstart pipeline over a previously generated project.\nFiles a user may have edited are left alone; patched files (.gitignore,\nsetup.cfg) are brought back in line idempotently.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.pkg, "package", "p", "", "package name override")
	cmd.Flags().StringVar(&flags.layout, "layout", "", "packaging layout: modern or legacy (default modern)")
	cmd.Flags().BoolVar(&flags.pretend, "pretend", false, "report what would be written without writing")

	return cmd
}

func runUpdate(dir string, flags *updateFlags) error {
	logger := debug.NewLogger(verbose)

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not an existing project directory", dir)
	}

	manager := state.NewManager(dir)
	manifest, err := manager.Load()
	if err != nil {
		return err
	}

	project := manifest.Project
	if project == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		project = filepath.Base(abs)
	}

	opts := scaffold.Options{"project": project}
	if flags.pkg != "" {
		opts["package"] = flags.pkg
	}

	layout, err := parseLayout(flags.layout)
	if err != nil {
		return err
	}

	// Update runs start from the files on disk that the pipeline patches in
	// place, not from the host defaults: re-seeding defaults would discard
	// user edits before the policies could protect them.
	e := engine.New(
		engine.WithLogger(logger),
		engine.WithSteps([]engine.Step{seedFromDisk(dir)}),
	)
	e.Register(&extension.Clickstart{Layout: layout})

	tree, opts, err := e.Run(scaffold.Tree{}, opts)
	if err != nil {
		return err
	}

	flushOpts := []write.FlushOption{
		write.WithLogger(logger),
		write.WithPriorRun(manifest.Contains),
	}
	var dry *write.DryRunWriter
	if flags.pretend {
		dry = write.NewDryRunWriter()
		flushOpts = append(flushOpts, write.WithWriter(dry))
	}

	written, err := write.NewFlusher(dir, flushOpts...).Flush(tree, opts)
	if err != nil {
		return err
	}

	if flags.pretend {
		for _, change := range dry.Changes() {
			infof("would %s %s (%d bytes)\n", change.Action, change.Path, change.Size)
		}
		return nil
	}

	if err := manager.Record(manifest, project, written); err != nil {
		return err
	}

	successf("updated %s (%d files written)\n", dir, len(written))
	return nil
}

// seedFromDisk loads the files the pipeline patches in place, so their
// current on-disk content is what gets patched.
func seedFromDisk(dir string) engine.Step {
	return engine.Step{
		Name: "host:seed-existing",
		Run: func(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
			for _, name := range []string{".gitignore", "setup.cfg"} {
				data, err := os.ReadFile(filepath.Join(dir, name))
				if err != nil {
					if os.IsNotExist(err) {
						continue
					}
					return nil, nil, err
				}
				tree = scaffold.Put(tree, name, scaffold.File(string(data), scaffold.Overwrite))
			}
			return tree, opts, nil
		},
	}
}

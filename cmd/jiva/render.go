package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/jiva/internal/config"
	"github.com/alexisbeaulieu97/jiva/internal/showcase"
	"github.com/alexisbeaulieu97/jiva/pkg/diff"
)

// ErrFrameMismatch is returned by render --check when the frame differs from
// the golden file.
var ErrFrameMismatch = errors.New("rendered frame differs from golden file")

type renderOptions struct {
	checkPath  string
	updatePath string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a static frame of the showcase",
		Long: `Render the showcase once, with panels marked open fully expanded, and print it.

With --check the frame is compared against a golden file instead and a diff is
printed when they differ. --update writes the golden file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenderWith(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.checkPath, "check", "", "Compare the frame against this golden file")
	cmd.Flags().StringVar(&opts.updatePath, "update", "", "Write the frame to this golden file")
	cmd.MarkFlagsMutuallyExclusive("check", "update")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags) error {
	return runRenderWith(cmd, flags, &renderOptions{})
}

func runRenderWith(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	log, closeLog, err := newRunLogger(flags, "render")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		log.Error(err, "failed to load configuration", "path", flags.configPath)
		return err
	}

	frame, err := showcase.Snapshot(cfg, showcase.WithLogger(log))
	if err != nil {
		return fmt.Errorf("render showcase: %w", err)
	}
	log.Debug("frame rendered")

	switch {
	case opts.updatePath != "":
		if err := os.WriteFile(opts.updatePath, []byte(frame+"\n"), 0o644); err != nil {
			return fmt.Errorf("write golden file: %w", err)
		}
		log.Info("golden file updated", "path", opts.updatePath)
		return nil

	case opts.checkPath != "":
		golden, err := os.ReadFile(opts.checkPath)
		if err != nil {
			return fmt.Errorf("read golden file: %w", err)
		}
		if d := diff.Frames(string(golden), frame+"\n", opts.checkPath, "rendered"); d != "" {
			fmt.Fprint(cmd.OutOrStdout(), d)
			log.Warn("frame mismatch", "path", opts.checkPath)
			return ErrFrameMismatch
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), frame)
	return nil
}

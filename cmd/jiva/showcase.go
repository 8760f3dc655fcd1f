package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/jiva/internal/config"
	"github.com/alexisbeaulieu97/jiva/internal/showcase"
)

var showcaseCmdRunner = runShowcase

func newShowcaseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Launch the interactive showcase",
		Long: `Launch the interactive showcase. Click buttons to play their effects and
triggers to open panels, or move focus with tab and activate with enter.
When stdout is not a terminal a static frame is printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showcaseCmdRunner(cmd, flags)
		},
	}

	return cmd
}

func runShowcase(cmd *cobra.Command, flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runRender(cmd, flags)
	}

	log, closeLog, err := newRunLogger(flags, "showcase")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		log.Error(err, "failed to load configuration", "path", flags.configPath)
		return err
	}

	m, err := showcase.New(cfg, showcase.WithLogger(log))
	if err != nil {
		return fmt.Errorf("build showcase: %w", err)
	}
	defer m.Close()

	log.Info("launching showcase", "title", cfg.Title)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "showcase execution failed")
		return fmt.Errorf("failed to run showcase: %w", err)
	}

	log.Info("showcase closed")
	return nil
}

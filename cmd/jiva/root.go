package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "jiva",
		Short:         "jiva shows animated terminal buttons and collapses",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the showcase
			if len(args) == 0 {
				return showcaseCmdRunner(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a showcase configuration file (default: built-in showcase)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write debug logs to this file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

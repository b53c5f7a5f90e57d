package main

import (
	"github.com/spf13/cobra"

	"github.com/yarikoptic/neurodocker/internal/utils/logger"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "neurodocker",
		Short: "Generate Dockerfile instructions for neuroimaging software",
		Long: "neurodocker generates Dockerfile instruction blocks that install " +
			"standalone SPM on top of the MATLAB Compiler Runtime, without " +
			"requiring a MATLAB license.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")

	root.AddCommand(newGenerateCmd(), newFetchCmd())
	return root
}

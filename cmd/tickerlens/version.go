package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ternarybob/tickerlens/internal/common"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := common.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "TickerLens version %s (build: %s, commit: %s, %s)\n",
				info.Version, info.Build, info.GitCommit, info.GoVersion)
		},
	}
}

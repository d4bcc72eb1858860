package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
)

var (
	// Command-line flags
	configFiles []string // Multiple --config flags supported
	envFiles    []string
	serverPort  int
	serverHost  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tickerlens",
		Short: "Stock research API",
		Long: `tickerlens serves quote snapshots and investment analyses over HTTP.
Analyses come from a hosted model when one is configured and from the
local synthesizer otherwise. Results are cached per symbol.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.PersistentFlags().StringArrayVarP(&configFiles, "config", "c", nil, "Configuration file path (repeatable, later files override earlier ones)")
	rootCmd.PersistentFlags().StringArrayVar(&envFiles, "env-file", nil, "Env file to load before reading configuration (default .env)")
	rootCmd.PersistentFlags().IntVarP(&serverPort, "port", "p", 0, "Server port (overrides config)")
	rootCmd.PersistentFlags().StringVar(&serverHost, "host", "", "Server host (overrides config)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// loadConfig runs the startup sequence shared by every command:
// .env -> config (defaults -> file1 -> file2 -> ... -> env) -> CLI overrides
func loadConfig() (*common.Config, error) {
	if _, err := common.LoadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		for _, candidate := range []string{"tickerlens.toml", "deployments/local/tickerlens.toml"} {
			if _, err := os.Stat(candidate); err == nil {
				configFiles = append(configFiles, candidate)
				break
			}
		}
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Error().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		return nil, err
	}

	common.ApplyFlagOverrides(config, serverPort, serverHost)
	return config, nil
}

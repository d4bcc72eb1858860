package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ternarybob/tickerlens/internal/app"
	"github.com/ternarybob/tickerlens/internal/common"
)

func analyzeCmd() *cobra.Command {
	var (
		offline bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <symbol>",
		Short: "Analyze one symbol and print the response JSON",
		Long: `Run a single analysis without starting the HTTP server. The output is the
same body GET /api/stock/<symbol> returns. --offline skips the hosted model.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			// Keep stdout clean for the JSON result
			if !verbose {
				config.Logging.Level = "error"
			}
			logger := common.InitLogger(config)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application, err := app.New(ctx, config, logger, app.Options{Offline: offline})
			if err != nil {
				return err
			}
			defer application.Close()

			resp, err := application.StockService.GetAnalysis(ctx, args[0])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the hosted analysis provider")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured level")
	return cmd
}

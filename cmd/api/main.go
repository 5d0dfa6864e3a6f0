package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yigit/injurydesk/internal/app/reporting"
	appServices "github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/bootstrap"
	"github.com/yigit/injurydesk/internal/config"
	"github.com/yigit/injurydesk/internal/pkg/logger"
	"github.com/yigit/injurydesk/internal/server"
)

// @title Injury Desk API
// @version 1.0
// @description API for student-athlete injury reporting, treatment and return-to-play tracking

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	ctx, cancel := signalContext()
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "injurydesk",
		Short:         "Student-athlete injury management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML config file")

	root.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newExportCmd(&configPath),
	)
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.NewServer(cmd.Context(), *configPath)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}
			if err := srv.Run(); err != nil {
				return err
			}
			logger.Info().Msg("Application finished gracefully.")
			return nil
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			if cfg.ResolvedBackend() != config.BackendPostgres {
				return fmt.Errorf("migrate needs a postgres backend, configured backend is %q", cfg.ResolvedBackend())
			}

			database, err := bootstrap.ConnectDatabase(cmd.Context(), cfg, lgr)
			if err != nil {
				return err
			}
			database.Close()
			return nil
		},
	}
}

func newExportCmd(configPath *string) *cobra.Command {
	var (
		start, end, sport, severity string
		output                      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered injuries as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := reporting.ParseFilter(start, end, sport, severity)
			if err != nil {
				return err
			}

			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			cfg.Backend.FixtureLatency = 0

			gw, database, err := bootstrap.SetupGateway(cmd.Context(), cfg, lgr)
			if err != nil {
				return err
			}
			if database != nil {
				defer database.Close()
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			analytics := appServices.NewAnalyticsService(gw, lgr)
			if err := analytics.WriteExport(cmd.Context(), filter, w); err != nil {
				return err
			}
			if output != "" && output != "-" {
				lgr.Info().Str("file", output).Msg("Export written")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "reported on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "reported on or before (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sport, "sport", "", "student sport")
	cmd.Flags().StringVar(&severity, "severity", "", "mild, moderate, severe or critical")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty or -")
	return cmd
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

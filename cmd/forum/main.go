package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"myforum/config"
	"myforum/internal/app"
	"myforum/pkg/logger"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "forum",
		Short:         "Forum backend: posts, replies, tags and users over REST",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg := config.LoadConfig()
			log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
			ctx := logger.WithLogger(cmd.Context(), log)
			ctx = context.WithValue(ctx, configKey{}, cfg)
			cmd.SetContext(ctx)
		},
	}

	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

type configKey struct{}

func configFrom(ctx context.Context) config.Config {
	return ctx.Value(configKey{}).(config.Config)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := app.NewApp(ctx, configFrom(ctx))
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			return a.Run(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := app.Migrate(ctx, configFrom(ctx)); err != nil {
				return err
			}
			logger.FromContext(ctx).Info("migrations applied")
			return nil
		},
	}
}

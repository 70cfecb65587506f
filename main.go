package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "orc-brief",
		Short: "Builds the daily morning intel brief",
		Long: `Reads the tech feeds and birth years from the boot document, fetches BTC/ETH prices,
writes the brief and its status record to the output directory and relays the brief
to Telegram when TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are set.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.validate(); err != nil {
				return err
			}

			env, err := LoadEnv()
			if err != nil {
				return err
			}
			c.env = env

			logger := newLogger(env.LogLevel)
			slog.SetDefault(logger)

			if env.SentryDSN != "" {
				err := sentry.Init(sentry.ClientOptions{
					Dsn:              env.SentryDSN,
					EnableTracing:    true,
					TracesSampleRate: 1.0,
				})
				if err != nil {
					// the brief does not depend on Sentry
					logger.Warn("[app] Error initialising Sentry", "error", err)
				}
				defer sentry.Flush(2 * time.Second)
			}

			app := &App{
				config: c,
				logger: logger,
				stdout: cmd.OutOrStdout(),
			}
			return app.run(context.Background())
		},
	}

	cmd.Flags().StringVarP(&c.bootPath, "config", "c", c.bootPath, "path of the boot document")
	cmd.Flags().StringVarP(&c.outDir, "out", "o", c.outDir, "directory for the report and the status record")
	cmd.Flags().IntVar(&c.limit, "limit", c.limit, "entries taken from every feed")
	cmd.Flags().BoolVar(&c.dryRun, "dry-run", false, "print the report and skip Telegram")

	return cmd
}

// newLogger creates the JSON logger used by the whole app. Unknown levels fall back to info.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/samgozman/orc-brief/archivist"
	"github.com/samgozman/orc-brief/boot"
	"github.com/samgozman/orc-brief/jobs"
)

type App struct {
	config *Config
	logger *slog.Logger
	stdout io.Writer
}

// run loads the boot document and builds today's brief. Config errors end the run, every
// data source failure only degrades the report.
func (a *App) run(ctx context.Context) error {
	cfg, err := boot.Load(a.config.bootPath)
	if err != nil {
		a.logger.Error("[app] Error loading boot config", "path", a.config.bootPath, "error", err)
		return err
	}

	job := jobs.NewDailyJob(cfg, archivist.NewArchivist(a.config.outDir)).
		Limit(a.config.limit).
		WithLogger(a.logger)
	if !a.config.dryRun {
		// credentials are checked by the job right before sending
		job.Publish(a.config.env.TelegramBotToken, a.config.env.TelegramChatID)
	}

	report, err := job.Run(ctx)
	if err != nil {
		return err
	}

	if a.config.dryRun {
		fmt.Fprintln(a.stdout, report.Text)
	}
	fmt.Fprintln(a.stdout, "[OK] Report written:", report.Path)
	return nil
}

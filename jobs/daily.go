package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/samgozman/orc-brief/archivist"
	"github.com/samgozman/orc-brief/boot"
	"github.com/samgozman/orc-brief/composer"
	"github.com/samgozman/orc-brief/journalist"
	"github.com/samgozman/orc-brief/oracle"
	"github.com/samgozman/orc-brief/pkg/kst"
	"github.com/samgozman/orc-brief/publisher"
	"github.com/samgozman/orc-brief/scavenger/coins"
	"github.com/samgozman/orc-brief/utils"
)

// Publisher relays the finished report somewhere (Telegram in production).
type Publisher interface {
	Publish(msg string) (pubID string, err error)
}

// PublisherFactory connects a Publisher for the given chat. It is only called when both values are set.
type PublisherFactory func(chatID, token string) (Publisher, error)

// PriceFetcher returns the crypto quote for the brief.
type PriceFetcher interface {
	Fetch(ctx context.Context) (coins.Quote, error)
}

// DailyJob builds the morning brief: feeds, prices and fortunes are collected one after another,
// composed into the report, archived and optionally relayed to Telegram.
type DailyJob struct {
	config       *boot.Config           // boot document with feeds and birth years
	archivist    *archivist.Archivist   // archivist that will write the report and the status record
	composer     *composer.Composer     // composer that will render the report text
	journalist   *journalist.Journalist // journalist that will read the tech feeds
	prices       PriceFetcher           // price source for the crypto section
	clock        kst.Clock              // clock used for labels and the status record
	newPublisher PublisherFactory       // connects the publisher at notify time
	logger       *slog.Logger           // special logger for the job
	options      *dailyJobOptions       // options for the job
}

type dailyJobOptions struct {
	limit         int    // entries taken from every feed
	shouldPublish bool   // if true, will relay the report to Telegram when credentials are present
	token         string // Telegram bot token
	chatID        string // Telegram chat id
}

// Report is the outcome of a successful run.
type Report struct {
	Path      string // Path of the written report
	Text      string // Text of the report
	Published bool   // Published is true when Telegram accepted the message
}

// NewDailyJob creates a DailyJob with production sources: RSS feeds from the boot document,
// Coingecko prices, the KST wall clock and the Telegram publisher.
func NewDailyJob(config *boot.Config, archivist *archivist.Archivist) *DailyJob {
	return &DailyJob{
		config:       config,
		archivist:    archivist,
		composer:     composer.NewComposer(),
		journalist:   journalist.NewRssJournalist("TechSensing", config.RSS()),
		prices:       coins.NewCoingecko(),
		clock:        kst.Now,
		newPublisher: telegramFactory,
		logger:       slog.Default(),
		options:      &dailyJobOptions{limit: journalist.DefaultLimit},
	}
}

func telegramFactory(chatID, token string) (Publisher, error) {
	return publisher.NewTelegramPublisher(chatID, token)
}

// Limit sets the number of entries taken from every feed.
func (j *DailyJob) Limit(limit int) *DailyJob {
	j.options.limit = limit
	return j
}

// Publish sets the flag that will relay the report to Telegram. Empty credentials silently disable it.
func (j *DailyJob) Publish(token, chatID string) *DailyJob {
	j.options.shouldPublish = true
	j.options.token = token
	j.options.chatID = chatID
	return j
}

// WithJournalist replaces the feed reader.
func (j *DailyJob) WithJournalist(jr *journalist.Journalist) *DailyJob {
	j.journalist = jr
	return j
}

// WithPrices replaces the price source.
func (j *DailyJob) WithPrices(p PriceFetcher) *DailyJob {
	j.prices = p
	return j
}

// WithClock replaces the wall clock.
func (j *DailyJob) WithClock(c kst.Clock) *DailyJob {
	j.clock = c
	return j
}

// WithPublisherFactory replaces the way the publisher is connected.
func (j *DailyJob) WithPublisherFactory(f PublisherFactory) *DailyJob {
	j.newPublisher = f
	return j
}

// WithLogger replaces the job logger.
func (j *DailyJob) WithLogger(l *slog.Logger) *DailyJob {
	j.logger = l
	return j
}

// Run builds the brief once. Only archive failures are returned, every data source degrades
// to placeholder text and a failed notification is logged.
func (j *DailyJob) Run(ctx context.Context) (*Report, error) {
	runID := uuid.New().String()
	logger := j.logger.With("run_id", runID)
	kit := utils.NewSentryKit(logger)

	hub, ctx := kit.GetHub(ctx)
	tx := kit.StartJobTransaction(ctx, "RunDailyJob", "job-daily")
	tx.SetTag("run_id", runID)
	ctx = tx.Context()
	defer func() {
		tx.Finish()
		hub.Flush(2 * time.Second)
	}()

	logger.Info("[job-daily] Running daily brief")

	now := j.clock()

	span := tx.StartChild("Journalist.Collect")
	results := j.journalist.Limit(j.options.limit).Collect(ctx)
	span.Finish()
	for _, err := range results.Errors() {
		kit.CaptureError(ctx, hub, "jobDailyFeedError", "[job-daily] Error fetching feed", err)
	}
	tech := results.Lines(j.options.limit)
	kit.AddBreadcrumb(hub, "successful", fmt.Sprintf("Journalist.Collect returned %d lines from %d feeds", len(tech), len(results)))

	span = tx.StartChild("PriceFetcher.Fetch")
	quote, err := j.prices.Fetch(ctx)
	span.Finish()
	if err != nil {
		kit.CaptureError(ctx, hub, "jobDailyPriceError", "[job-daily] Error fetching prices", err)
		quote = coins.Quote{}
	} else {
		kit.AddBreadcrumb(hub, "successful", "PriceFetcher.Fetch returned a quote")
	}

	fortunes := oracle.Daily(j.config.BirthYears())

	text := j.composer.Compose(&composer.Brief{
		Date:     now,
		Tech:     tech,
		Crypto:   quote,
		Fortunes: fortunes,
	})

	span = tx.StartChild("Archivist.SaveReport")
	path, err := j.archivist.SaveReport(text)
	span.Finish()
	if err != nil {
		e := fmt.Errorf("error saving report: %w", err)
		kit.CaptureError(ctx, hub, "jobDailySaveReportError", "[job-daily] Error saving report", e)
		return nil, e
	}

	span = tx.StartChild("Archivist.SaveState")
	err = j.archivist.SaveState(archivist.NewState(now, path))
	span.Finish()
	if err != nil {
		e := fmt.Errorf("error saving state: %w", err)
		kit.CaptureError(ctx, hub, "jobDailySaveStateError", "[job-daily] Error saving state", e)
		return nil, e
	}
	kit.AddBreadcrumb(hub, "successful", fmt.Sprintf("Report written to %s", path))

	report := &Report{Path: path, Text: text}
	if j.options.shouldPublish {
		span = tx.StartChild("Publisher.Publish")
		report.Published = j.notify(ctx, kit, hub, text)
		span.Finish()
	}

	return report, nil
}

// notify relays the report to Telegram. Missing credentials skip it without any network call.
func (j *DailyJob) notify(ctx context.Context, kit *utils.SentryKit, hub *sentry.Hub, text string) bool {
	if j.options.token == "" || j.options.chatID == "" {
		j.logger.Debug("[job-daily] Telegram credentials are not set, skipping notification")
		return false
	}

	p, err := j.newPublisher(j.options.chatID, j.options.token)
	if err != nil {
		kit.CaptureError(ctx, hub, "jobDailyTelegramConnectError", "[WARN] Telegram send failed", err)
		return false
	}

	if _, err := p.Publish(text); err != nil {
		kit.CaptureError(ctx, hub, "jobDailyTelegramPublishError", "[WARN] Telegram send failed", err)
		return false
	}

	return true
}

package jobs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samgozman/orc-brief/archivist"
	"github.com/samgozman/orc-brief/boot"
	"github.com/samgozman/orc-brief/journalist"
	"github.com/samgozman/orc-brief/pkg/kst"
	"github.com/samgozman/orc-brief/scavenger/coins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(msg string) (string, error) {
	args := m.Called(msg)
	return args.String(0), args.Error(1)
}

type MockPriceFetcher struct {
	mock.Mock
}

func (m *MockPriceFetcher) Fetch(ctx context.Context) (coins.Quote, error) {
	args := m.Called(ctx)
	return args.Get(0).(coins.Quote), args.Error(1)
}

// factoryCounter records every attempt to connect a publisher.
type factoryCounter struct {
	calls     int
	publisher Publisher
	err       error
}

func (f *factoryCounter) factory(chatID, token string) (Publisher, error) {
	f.calls++
	return f.publisher, f.err
}

func ptr(v float64) *float64 {
	return &v
}

func newFeedServer(t *testing.T, entries int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items strings.Builder
		for i := 1; i <= entries; i++ {
			fmt.Fprintf(&items, "<item><title>Story %d</title><link>https://news.example/%d</link></item>", i, i)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = fmt.Fprintf(w, `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>%s</channel></rss>`, items.String())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newPriceServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestJob(t *testing.T, cfg *boot.Config, prices PriceFetcher) (*DailyJob, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "out")
	job := NewDailyJob(cfg, archivist.NewArchivist(dir)).
		WithPrices(prices).
		WithClock(kst.Fixed(time.Date(2026, time.October, 16, 7, 0, 0, 0, kst.Location))).
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return job, dir
}

func testConfig(rss ...string) *boot.Config {
	cfg := &boot.Config{}
	cfg.Orc.FortuneBirthYears = []int{1964, 1966, 1967, 1974}
	cfg.Targets.Tech.Targets.RSS = rss
	return cfg
}

// section returns every line between the header starting with from and the header starting with to.
func section(report, from, to string) []string {
	var out []string
	inside := false
	for _, line := range strings.Split(report, "\n") {
		switch {
		case strings.HasPrefix(line, from):
			inside = true
		case inside && strings.HasPrefix(line, to):
			return out
		case inside:
			out = append(out, line)
		}
	}
	return out
}

func TestDailyJob_Run_endToEnd(t *testing.T) {
	feed := newFeedServer(t, 2)
	prices := newPriceServer(t, http.StatusOK, `{"bitcoin":{"usd":65000},"ethereum":{"usd":3200}}`)

	job, dir := newTestJob(t, testConfig(feed.URL), &coins.Coingecko{URL: prices.URL, Client: prices.Client()})
	report, err := job.Limit(3).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, archivist.ReportFile), report.Path)
	assert.False(t, report.Published)

	tech := section(report.Text, "④", "⑤")
	assert.Equal(t, []string{
		"   - Story 1 — https://news.example/1",
		"   - Story 2 — https://news.example/2",
	}, tech)
	assert.Contains(t, report.Text, "⑤ 크립토: BTC: $65,000, ETH: $3,200 (Coingecko)")
	assert.Contains(t, report.Text, "⑥ 운세(7/3) — 64·66·67·74")
	assert.True(t, strings.HasPrefix(report.Text, "2026-10-16 (Fri) KST 아침 인텔 10–15줄 요약\n"))

	written, err := os.ReadFile(report.Path)
	require.NoError(t, err)
	assert.Equal(t, report.Text, string(written))

	state, err := archivist.NewArchivist(dir).LoadState()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16T07:00:00.000000+09:00", state.LastBoot)
	assert.Equal(t, report.Path, state.ReportPath)
}

func TestDailyJob_Run_degradesFailedSources(t *testing.T) {
	broken := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(broken.Close)

	prices := new(MockPriceFetcher)
	prices.On("Fetch", mock.Anything).Return(coins.Quote{}, errors.New("dial tcp: i/o timeout"))

	job, _ := newTestJob(t, testConfig(broken.URL), prices)
	report, err := job.Run(context.Background())
	require.NoError(t, err)

	tech := section(report.Text, "④", "⑤")
	assert.Equal(t, []string{"   - [RSS ERROR] " + broken.URL + ": http error: 404 Not Found"}, tech)
	assert.Contains(t, report.Text, "\n⑤ 크립토: 크립토: N/A (API 제한/지연 가능)\n")
	prices.AssertExpectations(t)
}

func TestDailyJob_Run_noFeeds(t *testing.T) {
	prices := new(MockPriceFetcher)
	prices.On("Fetch", mock.Anything).Return(coins.Quote{BTC: ptr(65000)}, nil)

	job, _ := newTestJob(t, testConfig(), prices)
	report, err := job.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, section(report.Text, "④", "⑤"))
	// half a quote is no quote
	assert.Contains(t, report.Text, "⑤ 크립토: 크립토: N/A (API 제한/지연 가능)")
}

func TestDailyJob_Run_emptyBirthYears(t *testing.T) {
	prices := new(MockPriceFetcher)
	prices.On("Fetch", mock.Anything).Return(coins.Quote{}, nil)

	cfg := testConfig()
	cfg.Orc.FortuneBirthYears = []int{}

	job, _ := newTestJob(t, cfg, prices)
	report, err := job.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(report.Text, "\n⑥ 운세(7/3) — "), report.Text)
	assert.NotContains(t, report.Text, "년생")
}

func TestDailyJob_Run_publish(t *testing.T) {
	okQuote := coins.Quote{BTC: ptr(65000), ETH: ptr(3200)}

	tests := []struct {
		name          string
		token         string
		chatID        string
		publishErr    error
		factoryErr    error
		wantFactory   int
		wantPublished bool
	}{
		{
			name:        "no token",
			chatID:      "123",
			wantFactory: 0,
		},
		{
			name:        "no chat id",
			token:       "123:abc",
			wantFactory: 0,
		},
		{
			name:          "published",
			token:         "123:abc",
			chatID:        "123",
			wantFactory:   1,
			wantPublished: true,
		},
		{
			name:        "send fails but run succeeds",
			token:       "123:abc",
			chatID:      "123",
			publishErr:  errors.New("bad gateway"),
			wantFactory: 1,
		},
		{
			name:        "connect fails but run succeeds",
			token:       "bad",
			chatID:      "123",
			factoryErr:  errors.New("unauthorized"),
			wantFactory: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prices := new(MockPriceFetcher)
			prices.On("Fetch", mock.Anything).Return(okQuote, nil)

			pub := new(MockPublisher)
			if tt.wantFactory > 0 && tt.factoryErr == nil {
				pub.On("Publish", mock.AnythingOfType("string")).Return("42", tt.publishErr)
			}
			counter := &factoryCounter{publisher: pub, err: tt.factoryErr}

			job, _ := newTestJob(t, testConfig(), prices)
			report, err := job.
				Publish(tt.token, tt.chatID).
				WithPublisherFactory(counter.factory).
				Run(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantFactory, counter.calls)
			assert.Equal(t, tt.wantPublished, report.Published)
			pub.AssertExpectations(t)
		})
	}
}

func TestDailyJob_Run_withoutPublishFlag(t *testing.T) {
	prices := new(MockPriceFetcher)
	prices.On("Fetch", mock.Anything).Return(coins.Quote{}, nil)
	counter := &factoryCounter{}

	job, _ := newTestJob(t, testConfig(), prices)
	_, err := job.WithPublisherFactory(counter.factory).Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, counter.calls)
}

func TestDailyJob_Run_archiveFailure(t *testing.T) {
	prices := new(MockPriceFetcher)
	prices.On("Fetch", mock.Anything).Return(coins.Quote{}, nil)

	blocker := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	job := NewDailyJob(testConfig(), archivist.NewArchivist(blocker)).
		WithPrices(prices).
		WithJournalist(journalist.NewRssJournalist("empty", nil)).
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	report, err := job.Run(context.Background())
	assert.Error(t, err)
	assert.Nil(t, report)
}

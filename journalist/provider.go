package journalist

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"
	"github.com/samgozman/orc-brief/pkg/errlvl"
)

// NewsProvider is the interface for the data fetcher (via RSS, API, etc.)
type NewsProvider interface {
	// Fetch returns up to limit headlines in feed order.
	Fetch(ctx context.Context, limit int) ([]*Headline, error)
	// Source identifies the provider in diagnostics (the feed URL for RSS).
	Source() string
}

// RssProvider is the RSS provider implementation
type RssProvider struct {
	Name   string // Name is used for logging purposes
	URL    string
	client *http.Client
}

// NewRssProvider creates a new RssProvider instance
func NewRssProvider(name, url string) *RssProvider {
	return &RssProvider{
		Name: name,
		URL:  url,
	}
}

// WithClient sets the HTTP client used by the feed parser.
func (r *RssProvider) WithClient(c *http.Client) *RssProvider {
	r.client = c
	return r
}

// Source returns the feed URL.
func (r *RssProvider) Source() string {
	return r.URL
}

// Fetch fetches the feed and keeps the first limit entries.
func (r *RssProvider) Fetch(ctx context.Context, limit int) (headlines []*Headline, err error) {
	defer func() {
		if p := recover(); p != nil {
			headlines = nil
			err = newError(errlvl.ERROR, errPanicFetch, fmt.Errorf("%v", p)).WithProvider(r.Name)
		}
	}()

	fp := gofeed.NewParser()
	if r.client != nil {
		fp.Client = r.client
	}

	feed, err := fp.ParseURLWithContext(r.URL, ctx)
	if err != nil {
		return nil, newError(errlvl.WARN, errFetchingFeed, err).WithProvider(r.Name)
	}

	items := feed.Items
	if n := max(limit, 0); len(items) > n {
		items = items[:n]
	}

	headlines = make([]*Headline, 0, len(items))
	for _, item := range items {
		headlines = append(headlines, NewHeadline(item.Title, item.Link))
	}

	return headlines, nil
}

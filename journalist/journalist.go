package journalist

import (
	"context"

	"github.com/samber/lo"
)

// DefaultLimit is the number of entries taken from every feed.
const DefaultLimit = 3

// Journalist reads a group of feeds one after another.
type Journalist struct {
	Name      string
	providers []NewsProvider
	limit     int
}

// NewJournalist creates a new Journalist instance.
func NewJournalist(name string, providers []NewsProvider) *Journalist {
	return &Journalist{
		Name:      name,
		providers: providers,
		limit:     DefaultLimit,
	}
}

// NewRssJournalist creates a Journalist with one RssProvider per URL, named after the URL.
func NewRssJournalist(name string, urls []string) *Journalist {
	providers := lo.Map(urls, func(u string, _ int) NewsProvider {
		return NewRssProvider(u, u)
	})
	return NewJournalist(name, providers)
}

// Limit sets the maximum number of entries taken from each provider. Negative values mean none.
func (j *Journalist) Limit(limit int) *Journalist {
	j.limit = max(limit, 0)
	return j
}

// Collect fetches every provider in order. A failing provider never stops the batch,
// its error is kept in its FeedResult instead.
func (j *Journalist) Collect(ctx context.Context) FeedResults {
	results := make(FeedResults, 0, len(j.providers))
	for _, p := range j.providers {
		headlines, err := p.Fetch(ctx, j.limit)
		results = append(results, &FeedResult{
			URL:       p.Source(),
			Headlines: headlines,
			Err:       err,
		})
	}
	return results
}

// FetchHeadlines collects all providers and renders them as report lines.
func (j *Journalist) FetchHeadlines(ctx context.Context) []string {
	return j.Collect(ctx).Lines(j.limit)
}

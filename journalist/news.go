package journalist

import (
	"errors"
	"fmt"
	"strings"
)

// Headline is a single feed entry reduced to what the brief prints.
type Headline struct {
	Title string // Title is the plain text title of the entry
	Link  string // Link is the entry URL
}

// NewHeadline trims the fields and strips markup from the title. Missing fields stay empty.
func NewHeadline(title, link string) *Headline {
	return &Headline{
		Title: sanitizeTitle(title),
		Link:  strings.TrimSpace(link),
	}
}

// String renders the headline the way it appears in the report.
func (h *Headline) String() string {
	return fmt.Sprintf("%s — %s", h.Title, h.Link)
}

// FeedResult is the outcome of one feed: either its headlines or the reason it failed.
type FeedResult struct {
	URL       string
	Headlines []*Headline
	Err       error
}

// Line renders a failed feed as a single diagnostic line.
func (r *FeedResult) Line() string {
	cause := r.Err
	var e *Error
	if errors.As(r.Err, &e) {
		cause = e.Cause()
	}
	msg := strings.Join(strings.FieldsFunc(cause.Error(), func(c rune) bool { return c == '\n' || c == '\r' }), "; ")
	return fmt.Sprintf("[RSS ERROR] %s: %s", r.URL, msg)
}

// FeedResults keeps results in the order the feeds were configured.
type FeedResults []*FeedResult

// Lines flattens the results into display strings. A failed feed contributes exactly one
// diagnostic line. The output never exceeds limit lines per feed in total.
func (fr FeedResults) Lines(limit int) []string {
	var lines []string
	for _, r := range fr {
		if r.Err != nil {
			lines = append(lines, r.Line())
			continue
		}
		for _, h := range r.Headlines {
			lines = append(lines, h.String())
		}
	}

	n := max(limit, 0) * len(fr)
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// Errors returns the errors of all failed feeds.
func (fr FeedResults) Errors() []error {
	var errs []error
	for _, r := range fr {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

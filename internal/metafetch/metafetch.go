// Package metafetch retrieves page metadata (currently just the title)
// for a URL, with a hard timeout so the UI never waits on a dead site.
package metafetch

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.opentelemetry.io/otel/attribute"

	"webwall/internal/telemetry"
)

// DefaultTimeout bounds a single metadata fetch.
const DefaultTimeout = 5 * time.Second

// ErrNoTitle is returned when the page loads but has no usable title.
var ErrNoTitle = errors.New("metafetch: page has no title")

// Fetcher fetches page metadata.
type Fetcher struct {
	Timeout time.Duration
}

// New returns a fetcher with the default timeout.
func New() *Fetcher {
	return &Fetcher{Timeout: DefaultTimeout}
}

// Title returns the page's <title> text, trimmed and whitespace-collapsed.
// Timeouts, network errors, non-HTML responses, and missing titles all
// come back as errors; callers treat them uniformly as "no title".
func (f *Fetcher) Title(ctx context.Context, url string) (string, error) {
	_, end := telemetry.Span(ctx, "metafetch.title", attribute.String("url", url))
	defer end()

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	type result struct {
		title string
		err   error
	}
	done := make(chan result, 1)

	go func() {
		c := colly.NewCollector()
		c.SetRequestTimeout(timeout)

		var title string
		c.OnHTML("title", func(e *colly.HTMLElement) {
			if title == "" {
				title = collapse(e.Text)
			}
		})

		err := c.Visit(url)
		c.Wait()
		if err != nil {
			done <- result{err: err}
			return
		}
		if title == "" {
			done <- result{err: ErrNoTitle}
			return
		}
		done <- result{title: title}
	}()

	select {
	case <-ctx.Done():
		// The fetch finishes in the background; its result is dropped.
		return "", ctx.Err()
	case r := <-done:
		return r.title, r.err
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

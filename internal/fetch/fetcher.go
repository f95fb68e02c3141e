package fetch

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

// Fetcher retrieves feeds over HTTP.
//
// Each Fetch is a single attempt: no retry, no per-call timeout beyond
// the client timeout set at construction. An optional rate limiter
// caps outbound requests across all callers sharing the Fetcher.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewFetcher creates a Fetcher with the given HTTP client timeout.
// ratePerSecond caps outbound requests; 0 means unlimited.
func NewFetcher(timeout time.Duration, ratePerSecond float64, userAgent string) *Fetcher {
	var limiter *rate.Limiter
	if ratePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSecond), 1)
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		limiter:   limiter,
		userAgent: userAgent,
	}
}

// Fetch issues a single GET to url and parses the body as a
// syndication document.
//
// Transport failures and non-2xx statuses return a *NetworkError;
// bodies gofeed cannot parse return a *ParseError. The function
// respects context cancellation.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Feed, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{URL: url, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	// Set a user agent to be a good citizen
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: url, Status: resp.StatusCode}
	}

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	return convertFeed(parsed), nil
}

// convertFeed maps a gofeed document onto the normalized model.
func convertFeed(parsed *gofeed.Feed) *Feed {
	feed := &Feed{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		Items:       make([]Item, 0, len(parsed.Items)),
	}

	for _, feedItem := range parsed.Items {
		feed.Items = append(feed.Items, convertItem(feedItem))
	}

	return feed
}

// convertItem maps a single gofeed item. Item order is preserved as
// returned by the parser.
func convertItem(feedItem *gofeed.Item) Item {
	item := Item{
		Title:       feedItem.Title,
		Link:        feedItem.Link,
		Description: feedItem.Description,
		Content:     feedItem.Content,
		PubDate:     feedItem.Published,
	}

	// Raw content:encoded, when the document carries the extension
	if vals, ok := feedItem.Extensions["content"]["encoded"]; ok && len(vals) > 0 {
		item.ContentEncoded = vals[0].Value
	}

	if feedItem.PublishedParsed != nil {
		item.Published = feedItem.PublishedParsed
	} else if feedItem.UpdatedParsed != nil {
		item.Published = feedItem.UpdatedParsed
	}

	return item
}

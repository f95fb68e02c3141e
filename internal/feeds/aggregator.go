// Package feeds merges items from all registered sources into one
// combined sequence for display.
package feeds

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/feedline/internal/fetch"
	"github.com/abelbrown/feedline/internal/store"
)

// CombinedItem is one article annotated with its originating feed's
// display title.
type CombinedItem struct {
	Title       string
	Link        string
	Published   *time.Time // nil when the feed carried no parsable date
	SourceTitle string
	Content     string // resolved item HTML, so the detail view needs no refetch
}

// Fetcher is the fetch dependency. Interface for testing; the real
// implementation is *fetch.Fetcher.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Feed, error)
}

// Aggregator fans fetches out over all stored sources and flattens
// the per-source item lists into one sequence.
type Aggregator struct {
	store   store.Store
	fetcher Fetcher
}

// NewAggregator creates an Aggregator reading sources from st and
// fetching through f.
func NewAggregator(st store.Store, f Fetcher) *Aggregator {
	return &Aggregator{store: st, fetcher: f}
}

// LoadAll fetches every stored source concurrently and returns the
// combined item sequence.
//
// Concatenation follows source-list order, stable within each source's
// own item order; there is no cross-source time sort. The join is
// all-or-nothing: the first fetch or parse failure fails the whole
// call and cancels the remaining fetches. Callers should treat the
// error as retryable. The store is never mutated.
func (a *Aggregator) LoadAll(ctx context.Context) ([]CombinedItem, error) {
	sources, err := a.store.ListSources()
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return []CombinedItem{}, nil
	}

	// One goroutine per source; results are indexed by position so
	// reassembly ignores completion order.
	results := make([][]CombinedItem, len(sources))
	g, ctx := errgroup.WithContext(ctx)

	for i, src := range sources {
		g.Go(func() error {
			feed, err := a.fetcher.Fetch(ctx, src.URL)
			if err != nil {
				return err
			}
			results[i] = combine(feed, src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined := make([]CombinedItem, 0)
	for _, items := range results {
		combined = append(combined, items...)
	}
	return combined, nil
}

// combine maps a parsed feed's items, tagging each with the resolved
// source title.
func combine(feed *fetch.Feed, src store.Source) []CombinedItem {
	title := sourceTitle(feed.Title, src)

	items := make([]CombinedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		items = append(items, CombinedItem{
			Title:       it.Title,
			Link:        it.Link,
			Published:   it.Published,
			SourceTitle: title,
			Content:     it.HTML(),
		})
	}
	return items
}

// sourceTitle resolves the display title: parsed feed title, then the
// stored source title, then the source URL.
func sourceTitle(feedTitle string, src store.Source) string {
	if feedTitle != "" {
		return feedTitle
	}
	if src.Title != "" {
		return src.Title
	}
	return src.URL
}

// Package fetch retrieves and parses syndication documents (RSS/Atom)
// into a normalized feed model.
package fetch

import "time"

// NoContentPlaceholder is rendered when an item carries no content at all.
const NoContentPlaceholder = "No content available."

// Feed is a parsed syndication document. Produced fresh on every
// fetch, never cached.
type Feed struct {
	Title       string
	Description string
	Link        string
	Items       []Item
}

// Item is a single entry of a parsed feed.
type Item struct {
	Title       string
	Link        string
	Description string

	// Content is the parser's normalized rich content (Atom <content>,
	// RSS content:encoded). ContentEncoded is the raw content:encoded
	// extension value when the document carries one.
	Content        string
	ContentEncoded string

	// PubDate is the date string as it appeared in the document.
	// Published is the parsed time; nil when the document carried no
	// parsable date. Undated items must stay undated so the recency
	// filter can exclude them.
	PubDate   string
	Published *time.Time
}

// HTML resolves the renderable content for an item: Content, else
// ContentEncoded, else NoContentPlaceholder.
func (it Item) HTML() string {
	if it.Content != "" {
		return it.Content
	}
	if it.ContentEncoded != "" {
		return it.ContentEncoded
	}
	return NoContentPlaceholder
}

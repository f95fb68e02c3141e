package filter

import (
	"testing"
	"time"

	"github.com/abelbrown/feedline/internal/feeds"
)

func itemAt(title string, published *time.Time) feeds.CombinedItem {
	return feeds.CombinedItem{Title: title, Published: published}
}

func tp(t time.Time) *time.Time { return &t }

func TestByRecency(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	items := []feeds.CombinedItem{
		itemAt("at-now", tp(now)),
		itemAt("12h-ago", tp(now.Add(-12*time.Hour))),
		itemAt("36h-ago", tp(now.Add(-36*time.Hour))),
		itemAt("6d12h-ago", tp(now.Add(-(6*24+12)*time.Hour))),
		itemAt("8d-ago", tp(now.Add(-8*24*time.Hour))),
		itemAt("undated", nil),
	}

	t.Run("all is identity", func(t *testing.T) {
		got := ByRecency(items, All, now)
		if len(got) != 6 {
			t.Fatalf("expected all 6 items, got %d", len(got))
		}
		for i := range items {
			if got[i].Title != items[i].Title {
				t.Errorf("item %d reordered: got %q, want %q", i, got[i].Title, items[i].Title)
			}
		}
	})

	t.Run("today keeps items within 24h", func(t *testing.T) {
		got := ByRecency(items, Today, now)
		if len(got) != 2 {
			t.Fatalf("expected 2 items, got %d: %v", len(got), titles(got))
		}
		if got[0].Title != "at-now" || got[1].Title != "12h-ago" {
			t.Errorf("unexpected items: %v", titles(got))
		}
	})

	t.Run("week keeps items within 7 days", func(t *testing.T) {
		got := ByRecency(items, Week, now)
		if len(got) != 4 {
			t.Fatalf("expected 4 items, got %d: %v", len(got), titles(got))
		}
		for _, item := range got {
			if item.Title == "8d-ago" || item.Title == "undated" {
				t.Errorf("item %q should have been excluded", item.Title)
			}
		}
	})
}

func TestByRecencyBoundaryIsInclusive(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	exactly24h := []feeds.CombinedItem{itemAt("24h", tp(now.Add(-24 * time.Hour)))}
	if got := ByRecency(exactly24h, Today, now); len(got) != 1 {
		t.Error("item exactly 24h old should be included under today")
	}

	exactly7d := []feeds.CombinedItem{itemAt("7d", tp(now.Add(-7 * 24 * time.Hour)))}
	if got := ByRecency(exactly7d, Week, now); len(got) != 1 {
		t.Error("item exactly 7 days old should be included under week")
	}
}

func TestByRecencyFutureDatesIncluded(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := []feeds.CombinedItem{itemAt("tomorrow", tp(now.Add(24 * time.Hour)))}

	if got := ByRecency(future, Today, now); len(got) != 1 {
		t.Error("future-dated item should be included under today (no floor at zero)")
	}
	if got := ByRecency(future, Week, now); len(got) != 1 {
		t.Error("future-dated item should be included under week")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"all", All},
		{"today", Today},
		{"week", Week},
		{"unread", All}, // settings may hold "unread"; list filtering treats it as all
		{"", All},
		{"garbage", All},
	}

	for _, tc := range tests {
		if got := ParseMode(tc.in); got != tc.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestModeCycle(t *testing.T) {
	if All.Next() != Today || Today.Next() != Week || Week.Next() != All {
		t.Error("mode cycle should be all -> today -> week -> all")
	}
}

func titles(items []feeds.CombinedItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

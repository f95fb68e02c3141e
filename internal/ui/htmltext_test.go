package ui

import (
	"strings"
	"testing"
)

func TestRenderHTMLStripsTags(t *testing.T) {
	got := RenderHTML("<p>Hello <b>world</b></p>", true)
	if got != "Hello world" {
		t.Errorf("expected 'Hello world', got %q", got)
	}
}

func TestRenderHTMLParagraphBreaks(t *testing.T) {
	got := RenderHTML("<p>first</p><p>second</p>", true)
	if !strings.Contains(got, "first\nsecond") && !strings.Contains(got, "first\n\nsecond") {
		t.Errorf("expected paragraph break between blocks, got %q", got)
	}
}

func TestRenderHTMLEntities(t *testing.T) {
	got := RenderHTML("fish &amp; chips &lt;daily&gt;", true)
	if got != "fish & chips <daily>" {
		t.Errorf("entities not decoded: %q", got)
	}
}

func TestRenderHTMLImages(t *testing.T) {
	html := `before <img src="http://x/pic.png" alt="pic"> after`

	withImages := RenderHTML(html, true)
	if !strings.Contains(withImages, "[image]") {
		t.Errorf("expected [image] marker, got %q", withImages)
	}

	withoutImages := RenderHTML(html, false)
	if strings.Contains(withoutImages, "[image]") || strings.Contains(withoutImages, "img") {
		t.Errorf("expected image dropped, got %q", withoutImages)
	}
	if !strings.Contains(withoutImages, "before") || !strings.Contains(withoutImages, "after") {
		t.Errorf("surrounding text should survive, got %q", withoutImages)
	}
}

func TestRenderHTMLPlainTextPassesThrough(t *testing.T) {
	got := RenderHTML("No content available.", true)
	if got != "No content available." {
		t.Errorf("plain text should pass through, got %q", got)
	}
}

package region

import (
	"strings"
	"testing"
)

func TestSectionDrawsFullBox(t *testing.T) {
	s := NewSection(SectionOptions{Style: BorderSingle, Top: true, Right: true, Bottom: true, Left: true}, TextComponent("hi"))
	result := s.Render(RenderContext{AvailableWidth: 6})
	lines := result.AsLines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (top/content/bottom)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[0], "┐") {
		t.Errorf("top border = %q, want ┌...┐", lines[0])
	}
	if !strings.HasPrefix(lines[2], "└") || !strings.HasSuffix(lines[2], "┘") {
		t.Errorf("bottom border = %q, want └...┘", lines[2])
	}
	if !strings.HasPrefix(lines[1], "│") || !strings.HasSuffix(lines[1], "│") {
		t.Errorf("content row = %q, want │...│", lines[1])
	}
	for _, l := range lines {
		if CountVisible(l) != 6 {
			t.Errorf("line %q has width %d, want 6", l, CountVisible(l))
		}
	}
}

func TestSectionInlinesTitle(t *testing.T) {
	s := NewSection(SectionOptions{Style: BorderSingle, Top: true, Left: true, Right: true, Title: "ok"}, TextComponent(""))
	line := s.topBorder(BorderCharSets[BorderSingle], 10, 1, 1)
	if !strings.Contains(line, "ok") {
		t.Errorf("top border %q should contain title", line)
	}
}

func TestSectionNoBorderIsPassthroughWidth(t *testing.T) {
	s := NewSection(SectionOptions{Style: BorderNone}, TextComponent("abc"))
	got := s.Render(RenderContext{AvailableWidth: 3}).FirstLine()
	if got != "abc" {
		t.Errorf("got %q, want \"abc\"", got)
	}
}

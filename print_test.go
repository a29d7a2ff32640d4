package region

import (
	"strings"
	"testing"
)

func TestSprintContainsContentAndNewline(t *testing.T) {
	result := Sprint(TextComponent("Hello"))
	if !strings.Contains(result, "Hello") {
		t.Errorf("Sprint output should contain 'Hello', got: %q", result)
	}
	if !strings.HasSuffix(result, "\n") {
		t.Errorf("Sprint output should end with newline, got: %q", result)
	}
}

func TestSprintWithStyles(t *testing.T) {
	s := NewStyled(StyledOptions{Bold: true}, TextComponent("Bold"))
	result := Sprint(s)
	if !strings.Contains(result, boldStr) {
		t.Errorf("Sprint output should contain bold ANSI code, got: %q", result)
	}
	if !strings.Contains(result, "Bold") {
		t.Errorf("Sprint output should contain 'Bold', got: %q", result)
	}
	if !strings.Contains(result, resetStr) {
		t.Errorf("Sprint output should contain reset ANSI code, got: %q", result)
	}
}

func TestSprintMultiLine(t *testing.T) {
	grid := NewGrid(GridOptions{Template: []TrackSpec{Fixed(5)}},
		GridCell{Component: ComponentFunc(func(ctx RenderContext) LineResult {
			return ManyLines([]string{"Line1", "Line2", "Line3"})
		})},
	)
	result := Sprint(grid)
	for _, want := range []string{"Line1", "Line2", "Line3"} {
		if !strings.Contains(result, want) {
			t.Errorf("Sprint output should contain %q, got: %q", want, result)
		}
	}
	if strings.Contains(result, "\r\n") {
		t.Errorf("Sprint output should use \\n not \\r\\n, got: %q", result)
	}
	if strings.Contains(result, MoveCursor(0, 0)) {
		t.Errorf("Sprint output should not contain cursor positioning, got: %q", result)
	}
}

func TestFprintCustomWidth(t *testing.T) {
	var sb strings.Builder
	Fprint(&sb, TextComponent("Custom"), PrintOptions{Width: 20})
	result := sb.String()
	if !strings.Contains(result, "Custom") {
		t.Errorf("Fprint output should contain 'Custom', got: %q", result)
	}
}

package region

import "strings"

// Fill repeats a single character to occupy whatever width it's given.
// Generalized from the teacher's spacer intrinsic (a fixed-size invisible
// box): instead of a hard-coded blank, Fill repeats any character across
// the width it is given, rather than a no-op render.
type Fill struct {
	Char  string
	Style Style
}

// NewFill builds a Fill component repeating ch, styled with style.
func NewFill(ch string, style Style) *Fill {
	if ch == "" {
		ch = " "
	}
	return &Fill{Char: ch, Style: style}
}

// Render implements Component: repeats Char to exactly fill
// ctx.AvailableWidth. An unbounded context (auto-measurement) renders empty,
// matching the spacer's "reports zero width in intrinsic-measurement mode".
func (f *Fill) Render(ctx RenderContext) LineResult {
	if ctx.AvailableWidth <= 0 {
		return OneLine("")
	}
	content := strings.Repeat(f.Char, ctx.AvailableWidth)
	if f.Style.Equal(EmptyStyle) {
		return OneLine(content)
	}
	var state styleRunState
	var b strings.Builder
	styleRunToAnsi(f.Style, content, &state, &b)
	finishStyleRuns(&state, &b)
	return OneLine(b.String())
}

// Measure implements Component: a fill has no intrinsic width of its own.
func (f *Fill) Measure(ctx RenderContext) int { return 0 }

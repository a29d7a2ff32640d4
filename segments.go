package region

import "strings"

// Segment is one named column of a Segments row: a gutter showing a line
// number, a content column holding the annotated text, a marker column
// carrying a diagnostic glyph, or any host-defined lane that fits the same
// fixed/flex-width shape.
type Segment struct {
	Component Component
	Width     int  // 0 means this segment takes whatever width remains
	Overflow  Overflow
}

// Segments lays out a fixed sequence of named lanes side by side on one
// logical row — the shape an annotated code-diagnostic view needs (a
// line-number gutter, the source content, and a marker column for
// warnings/errors) without pulling in the full grid engine's track
// resolution for what is always a simple left-to-right concatenation.
// Reuses grid.go's applyOverflow/applyAlign helpers; it is not a new
// rendering path.
type Segments struct {
	Parts []Segment
	Gap   int
}

// NewSegments builds a Segments row from the given parts.
func NewSegments(gap int, parts ...Segment) *Segments {
	return &Segments{Parts: parts, Gap: gap}
}

func (s *Segments) fixedWidth() int {
	total := 0
	for _, p := range s.Parts {
		if p.Width > 0 {
			total += p.Width
		}
	}
	if len(s.Parts) > 1 {
		total += s.Gap * (len(s.Parts) - 1)
	}
	return total
}

// Render implements Component: each segment is measured/rendered at its
// declared width, except at most one flex (Width == 0) segment, which
// absorbs whatever width remains after its fixed siblings and the gaps
// between them.
func (s *Segments) Render(ctx RenderContext) LineResult {
	if len(s.Parts) == 0 {
		return Empty()
	}

	fixed := s.fixedWidth()
	remaining := ctx.AvailableWidth - fixed
	if remaining < 0 {
		remaining = 0
	}

	var b strings.Builder
	usedFlex := false
	for i, p := range s.Parts {
		if i > 0 && s.Gap > 0 {
			b.WriteString(strings.Repeat(" ", s.Gap))
		}
		width := p.Width
		if width <= 0 && !usedFlex {
			width = remaining
			usedFlex = true
		}
		cellCtx := ctx
		cellCtx.AvailableWidth = width
		cellCtx.ColumnIndex = i
		lines := p.Component.Render(cellCtx)
		b.WriteString(applyOverflowFirstLine(lines, width, p.Overflow))
	}
	return OneLine(b.String())
}

// Measure implements Component: the sum of each segment's own intrinsic
// width plus inter-segment gaps.
func (s *Segments) Measure(ctx RenderContext) int {
	total := 0
	for i, p := range s.Parts {
		if i > 0 {
			total += s.Gap
		}
		if p.Width > 0 {
			total += p.Width
			continue
		}
		cellCtx := ctx
		cellCtx.AvailableWidth = UnboundedWidth
		total += p.Component.Measure(cellCtx)
	}
	return total
}

// applyOverflowFirstLine applies overflow/truncation to a component's
// first rendered line at a fixed width, then pads it out to that width so
// adjacent segments stay column-aligned across rows — Segments rows are
// always single lines, unlike grid cells which may wrap to several.
func applyOverflowFirstLine(result LineResult, width int, overflow Overflow) string {
	if width <= 0 {
		return ""
	}
	lines := applyOverflow(result, width, overflow)
	if len(lines) == 0 {
		return strings.Repeat(" ", width)
	}
	return applyAlign(lines, width, AlignLeft)[0]
}

package region

// RenderContext is passed to every component invocation. AvailableWidth is
// a positive column count, or UnboundedWidth during auto-measurement.
// ColumnIndex/RowIndex are position hints some components use for
// alternating styling or responsive decisions. Region is a handle back to
// the owning region for components that legitimately need it (e.g. the
// cursor-showing prompt primitive); most components never touch it.
type RenderContext struct {
	AvailableWidth int
	ColumnIndex    int
	RowIndex       int
	Region         *Region
}

// UnboundedWidth is the sentinel AvailableWidth meaning "measure intrinsic
// content width", used when resolving Auto grid tracks.
const UnboundedWidth = -1

// LineResultKind tags which shape a LineResult holds.
type LineResultKind int

const (
	ResultEmpty LineResultKind = iota
	ResultOneLine
	ResultManyLines
)

// LineResult is the output of invoking a Component: either nothing, one
// line, or several.
type LineResult struct {
	Kind  LineResultKind
	Lines []string // len == 1 for ResultOneLine, len >= 0 for ResultManyLines
}

// Empty is the zero LineResult.
func Empty() LineResult { return LineResult{Kind: ResultEmpty} }

// OneLine wraps a single rendered line.
func OneLine(s string) LineResult { return LineResult{Kind: ResultOneLine, Lines: []string{s}} }

// ManyLines wraps several rendered lines.
func ManyLines(lines []string) LineResult { return LineResult{Kind: ResultManyLines, Lines: lines} }

// AsLines flattens any LineResult to its row slice.
func (r LineResult) AsLines() []string {
	switch r.Kind {
	case ResultEmpty:
		return nil
	default:
		return r.Lines
	}
}

// FirstLine returns the result's first line, or "" if empty.
func (r LineResult) FirstLine() string {
	lines := r.AsLines()
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

// Component is the capability set every concrete component kind (grid,
// styled, fill, section, segments, or a host-supplied extension) must
// implement. Dispatch is static interface satisfaction rather than a
// dynamic registry keyed by element-type name: the tagged-variant model
// spec.md's design notes call for in place of the source's callable-based
// polymorphism.
type Component interface {
	// Render produces the component's output for the given context.
	Render(ctx RenderContext) LineResult
	// Measure returns the component's intrinsic content width, used when
	// it sits in an Auto grid track. Implementations typically call Render
	// with ctx.AvailableWidth == UnboundedWidth and count the first line's
	// visible width.
	Measure(ctx RenderContext) int
}

// ComponentFunc is the "opaque render function" escape hatch for
// host-supplied extensions that don't need a distinct measurement
// strategy: Measure renders at unbounded width and counts visible columns.
type ComponentFunc func(ctx RenderContext) LineResult

func (f ComponentFunc) Render(ctx RenderContext) LineResult { return f(ctx) }

func (f ComponentFunc) Measure(ctx RenderContext) int {
	ctx.AvailableWidth = UnboundedWidth
	return CountVisible(f(ctx).FirstLine())
}

// TextComponent is the simplest concrete component kind: a fixed string,
// rendered as-is regardless of available width (callers wrap it in
// styled() for overflow/alignment handling).
type TextComponent string

func (t TextComponent) Render(ctx RenderContext) LineResult { return OneLine(string(t)) }

func (t TextComponent) Measure(ctx RenderContext) int { return CountVisible(string(t)) }

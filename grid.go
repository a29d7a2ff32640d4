package region

import "strings"

// TrackKind tags which of the four track specifications a Track is.
type TrackKind int

const (
	TrackFixed TrackKind = iota
	TrackFlex
	TrackAuto
	TrackMinMax
)

// TrackSpec describes one column of a grid template.
//   - Fixed(N):        TrackSpec{Kind: TrackFixed, Size: N}
//   - Flex(K):         TrackSpec{Kind: TrackFlex, Flex: K}
//   - Auto:            TrackSpec{Kind: TrackAuto}
//   - MinMax{min,max}: TrackSpec{Kind: TrackMinMax, Min, Max, Preferred: &inner}
type TrackSpec struct {
	Kind      TrackKind
	Size      int        // Fixed width
	Flex      float64    // Flex weight ("K*")
	Min       int        // MinMax lower clamp; applied only when HasMin is set
	Max       int        // MinMax upper clamp; applied only when HasMax is set
	HasMin    bool
	HasMax    bool
	Preferred *TrackSpec // MinMax's wrapped track
}

func Fixed(n int) TrackSpec { return TrackSpec{Kind: TrackFixed, Size: n} }
func Flex(k float64) TrackSpec { return TrackSpec{Kind: TrackFlex, Flex: k} }
func Auto() TrackSpec { return TrackSpec{Kind: TrackAuto} }

func MinMax(min, max int, hasMin, hasMax bool, preferred TrackSpec) TrackSpec {
	return TrackSpec{Kind: TrackMinMax, Min: min, Max: max, HasMin: hasMin, HasMax: hasMax, Preferred: &preferred}
}

// Justify controls main-axis distribution of a grid's extra space.
type Justify string

const (
	JustifyStart        Justify = "start"
	JustifySpaceBetween Justify = "space-between"
)

// SpaceBetweenFill optionally fills the inter-cell gaps of a
// justify:"space-between" grid with a repeated character instead of blanks.
type SpaceBetweenFill struct {
	Char  string
	Style Style
}

// GridOptions configures a Grid's template and justification.
type GridOptions struct {
	Template     []TrackSpec
	ColumnGap    int
	Justify      Justify
	SpaceBetween *SpaceBetweenFill
}

// GridCell pairs a child component with its per-cell overflow/alignment
// policy and an optional responsive-visibility predicate.
type GridCell struct {
	Component Component
	Overflow  Overflow
	Align     Align
	When      func(ctx RenderContext) bool
}

// Grid is the grid layout engine's concrete Component: it resolves
// GridOptions.Template against its Cells' widths and composes them,
// line-by-line, into one LineResult.
type Grid struct {
	Options GridOptions
	Cells   []GridCell
}

func NewGrid(opts GridOptions, cells ...GridCell) *Grid {
	return &Grid{Options: opts, Cells: cells}
}

// resolvedTrack is one track's post-resolution state.
type resolvedTrack struct {
	spec   TrackSpec
	width  int
	active bool // false when dropped by a failing When predicate
}

// resolveTracks classifies each template entry, sizes Fixed/Auto tracks
// directly, distributes remaining space across Flex tracks with
// clamp-and-redistribute for MinMax, then computes space-between gap
// widening. It returns the resolved tracks plus, when the grid justifies
// "space-between", the extra gap width to insert after each of the first
// activeCount-1 active cells (len(extraGap) == 0 otherwise).
func (g *Grid) resolveTracks(ctx RenderContext) ([]resolvedTrack, []int) {
	n := len(g.Options.Template)
	tracks := make([]resolvedTrack, n)
	for i := range g.Options.Template {
		tracks[i] = resolvedTrack{spec: g.Options.Template[i], active: true}
	}

	// Step 1: drop tracks whose cell fails its When predicate. Removed
	// before any distribution, mirroring the teacher's partition of
	// absolute/relative children before flex layout.
	for i, cell := range g.Cells {
		if i >= n {
			break
		}
		if cell.When != nil && !cell.When(ctx) {
			tracks[i].active = false
		}
	}

	activeCount := 0
	for _, t := range tracks {
		if t.active {
			activeCount++
		}
	}
	gapTotal := 0
	if activeCount > 1 {
		gapTotal = g.Options.ColumnGap * (activeCount - 1)
	}

	// Step 2/3: Fixed and Auto tracks get a concrete width directly.
	fixedTotal := gapTotal
	for i, t := range tracks {
		if !t.active {
			continue
		}
		switch t.spec.Kind {
		case TrackFixed:
			tracks[i].width = t.spec.Size
			fixedTotal += t.spec.Size
		case TrackAuto:
			childCtx := ctx
			childCtx.AvailableWidth = UnboundedWidth
			childCtx.ColumnIndex = i
			w := 0
			if i < len(g.Cells) && g.Cells[i].Component != nil {
				w = g.Cells[i].Component.Measure(childCtx)
			}
			if w < 0 {
				w = 0
			}
			if w > ctx.AvailableWidth && ctx.AvailableWidth >= 0 {
				w = ctx.AvailableWidth
			}
			tracks[i].width = w
			fixedTotal += w
		}
	}

	// MinMax tracks wrapping Fixed/Auto resolve immediately too (their
	// "preferred" isn't flexing).
	for i, t := range tracks {
		if !t.active || t.spec.Kind != TrackMinMax || t.spec.Preferred == nil {
			continue
		}
		if t.spec.Preferred.Kind == TrackFixed || t.spec.Preferred.Kind == TrackAuto {
			inner := *t.spec.Preferred
			sub := &Grid{Options: GridOptions{Template: []TrackSpec{inner}}, Cells: g.Cells[i : i+1]}
			subTracks, _ := sub.resolveTracks(ctx)
			w := clampTrack(subTracks[0].width, t.spec)
			tracks[i].width = w
			fixedTotal += w
		}
	}

	// Step 4/5: distribute remaining space across Flex (and flexing
	// MinMax) tracks.
	parentWidth := ctx.AvailableWidth
	if parentWidth < 0 {
		parentWidth = fixedTotal // unbounded parent: flex tracks get nothing extra
	}
	remaining := parentWidth - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	flexIdx := make([]int, 0, n)
	for i, t := range tracks {
		if !t.active {
			continue
		}
		if t.spec.Kind == TrackFlex {
			flexIdx = append(flexIdx, i)
		} else if t.spec.Kind == TrackMinMax && t.spec.Preferred != nil && t.spec.Preferred.Kind == TrackFlex {
			flexIdx = append(flexIdx, i)
		}
	}
	distributeFlex(tracks, flexIdx, remaining)

	// Step 6: justify:"space-between" distributes any space no Flex track
	// claimed as extra gap between cells (first and last cells stay
	// pinned at their resolved width; only the gaps between them grow).
	extraGap := make([]int, 0)
	if g.Options.Justify == JustifySpaceBetween && activeCount >= 3 && len(flexIdx) == 0 && remaining > 0 {
		extraGap = distributeSpaceBetweenGaps(activeCount-1, remaining)
	}

	return tracks, extraGap
}

func clampTrack(w int, spec TrackSpec) int {
	if spec.HasMin && w < spec.Min {
		w = spec.Min
	}
	if spec.HasMax && w > spec.Max {
		w = spec.Max
	}
	if w < 0 {
		w = 0
	}
	return w
}

// distributeFlex spreads `remaining` columns across the tracks at flexIdx
// proportionally to their flex weight, using the teacher's
// integer-remainder-safe share calculation, then iterates to a fixed point
// whenever a MinMax clamp removes a track from full participation: its
// clamped width is pinned and the shortfall/excess it didn't absorb is
// redistributed among the remaining unclamped flex tracks.
func distributeFlex(tracks []resolvedTrack, flexIdx []int, remaining int) {
	active := append([]int(nil), flexIdx...)
	budget := remaining

	for len(active) > 0 {
		totalWeight := 0.0
		for _, i := range active {
			totalWeight += trackWeight(tracks[i].spec)
		}
		if totalWeight <= 0 {
			break
		}

		shares := make(map[int]int, len(active))
		used := 0
		for _, i := range active {
			share := int(float64(budget) * trackWeight(tracks[i].spec) / totalWeight)
			shares[i] = share
			used += share
		}
		// Remainder distribution: hand out leftover columns one at a time,
		// same as the teacher's "1 extra pixel each until exhausted" loop.
		leftover := budget - used
		for _, i := range active {
			if leftover <= 0 {
				break
			}
			shares[i]++
			leftover--
		}

		var clamped []int
		for _, i := range active {
			w := shares[i]
			if tracks[i].spec.Kind == TrackMinMax {
				if c := clampTrack(w, tracks[i].spec); c != w {
					tracks[i].width = c
					clamped = append(clamped, i)
					continue
				}
			}
			tracks[i].width = w
		}
		if len(clamped) == 0 {
			break
		}

		// Pin the clamped tracks at their resolved width; redistribute
		// whatever's left of the original budget among the rest next round.
		next := active[:0:0]
		pinned := 0
		for _, i := range active {
			if inSlice(clamped, i) {
				pinned += tracks[i].width
			} else {
				next = append(next, i)
			}
		}
		budget -= pinned
		active = next
	}
}

func inSlice(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func trackWeight(spec TrackSpec) float64 {
	switch spec.Kind {
	case TrackFlex:
		if spec.Flex <= 0 {
			return 1
		}
		return spec.Flex
	case TrackMinMax:
		if spec.Preferred != nil {
			return trackWeight(*spec.Preferred)
		}
	}
	return 0
}

// distributeSpaceBetweenGaps splits extra columns across gapCount gaps
// using the same integer-remainder-safe technique as distributeFlex, so no
// column of slack is ever lost to rounding.
func distributeSpaceBetweenGaps(gapCount, extra int) []int {
	if gapCount <= 0 {
		return nil
	}
	gaps := make([]int, gapCount)
	base := extra / gapCount
	leftover := extra - base*gapCount
	for i := range gaps {
		gaps[i] = base
		if leftover > 0 {
			gaps[i]++
			leftover--
		}
	}
	return gaps
}

// Render implements Component: composes resolved cell outputs line-by-line.
func (g *Grid) Render(ctx RenderContext) LineResult {
	tracks, extraGap := g.resolveTracks(ctx)

	cellLines := make([][]string, len(tracks))
	maxRows := 1

	for i, t := range tracks {
		if !t.active || t.width <= 0 {
			continue
		}
		if i >= len(g.Cells) || g.Cells[i].Component == nil {
			cellLines[i] = []string{strings.Repeat(" ", t.width)}
			continue
		}
		cell := g.Cells[i]
		childCtx := ctx
		childCtx.AvailableWidth = t.width
		childCtx.ColumnIndex = i
		result := cell.Component.Render(childCtx)
		lines := applyOverflow(result, t.width, cell.Overflow)
		lines = applyAlign(lines, t.width, cell.Align)
		cellLines[i] = lines
		if len(lines) > maxRows {
			maxRows = len(lines)
		}
	}

	gapFill := " "
	if g.Options.SpaceBetween != nil && g.Options.SpaceBetween.Char != "" {
		gapFill = g.Options.SpaceBetween.Char
	}

	rows := make([]string, maxRows)
	for r := 0; r < maxRows; r++ {
		var b strings.Builder
		cellsWritten := 0
		for i, t := range tracks {
			if !t.active || t.width <= 0 {
				continue
			}
			if cellsWritten > 0 {
				gap := g.Options.ColumnGap
				if len(extraGap) >= cellsWritten {
					gap += extraGap[cellsWritten-1]
				}
				b.WriteString(strings.Repeat(gapFill, gap))
			}
			cellsWritten++
			lines := cellLines[i]
			if r < len(lines) {
				b.WriteString(lines[r])
			} else {
				b.WriteString(strings.Repeat(" ", t.width))
			}
		}
		rows[r] = b.String()
	}

	if len(rows) == 1 {
		return OneLine(rows[0])
	}
	return ManyLines(rows)
}

// Measure reports the grid's intrinsic width: the sum of its resolved
// track widths plus gaps, as if laid out against an unbounded parent.
func (g *Grid) Measure(ctx RenderContext) int {
	childCtx := ctx
	childCtx.AvailableWidth = UnboundedWidth
	tracks, _ := g.resolveTracks(childCtx)
	total := 0
	count := 0
	for _, t := range tracks {
		if !t.active {
			continue
		}
		total += t.width
		count++
	}
	if count > 1 {
		total += g.Options.ColumnGap * (count - 1)
	}
	return total
}

// Overflow selects how a cell's content is fit to its resolved width.
type Overflow string

const (
	OverflowNone           Overflow = "none"
	OverflowWrap           Overflow = "wrap"
	OverflowEllipsisStart  Overflow = "ellipsis-start"
	OverflowEllipsisMiddle Overflow = "ellipsis-middle"
	OverflowEllipsisEnd    Overflow = "ellipsis-end"
)

func applyOverflow(result LineResult, width int, overflow Overflow) []string {
	lines := result.AsLines()
	if len(lines) == 0 {
		lines = []string{""}
	}
	switch overflow {
	case OverflowWrap:
		var out []string
		for _, l := range lines {
			out = append(out, WrapText(l, width)...)
		}
		return out
	case OverflowEllipsisStart:
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = TruncateStart(l, width)
		}
		return out
	case OverflowEllipsisMiddle:
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = TruncateMiddle(l, width)
		}
		return out
	case OverflowEllipsisEnd:
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = TruncateEnd(l, width)
		}
		return out
	default: // OverflowNone: hard truncate
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = TruncateToWidth(l, width)
		}
		return out
	}
}

// Align pads a cell's content to fill its resolved width.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

func applyAlign(lines []string, width int, align Align) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		visible := CountVisible(l)
		pad := width - visible
		if pad <= 0 {
			out[i] = l
			continue
		}
		switch align {
		case AlignRight:
			out[i] = strings.Repeat(" ", pad) + l
		case AlignCenter:
			left := pad / 2
			right := pad - left
			out[i] = strings.Repeat(" ", left) + l + strings.Repeat(" ", right)
		default: // AlignLeft
			out[i] = l + strings.Repeat(" ", pad)
		}
	}
	return out
}

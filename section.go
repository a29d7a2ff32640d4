package region

import "strings"

// BorderStyle selects a section's border glyph set.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
)

// BorderChars holds the six glyphs needed to draw a rectangular border.
type BorderChars struct {
	TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical rune
}

// BorderCharSets maps each BorderStyle to its glyph set.
var BorderCharSets = map[BorderStyle]BorderChars{
	BorderSingle: {
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
	},
	BorderDouble: {
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		Horizontal: '═', Vertical: '║',
	},
	BorderRounded: {
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
		Horizontal: '─', Vertical: '│',
	},
}

// SectionOptions configures a Section's border sides and decoration.
type SectionOptions struct {
	Style       BorderStyle
	Top         bool // which sides are drawn; set all four true for a full box
	Right       bool
	Bottom      bool
	Left        bool
	Title       string
	TitleStyle  Style
	BorderColor Style
}

// Section draws an optional border around its children, with the border
// sides independently toggleable and an optional title inlined into the
// top border. Grounded on the teacher's box intrinsic's border-drawing loop
// (corner/edge glyph placement from BorderCharSets), retargeted from
// drawing into a CellBuffer at absolute (x, y) to composing plain string
// rows.
type Section struct {
	Options SectionOptions
	Content Component
}

// NewSection builds a Section from opts; only the border sides set in opts
// are drawn.
func NewSection(opts SectionOptions, content Component) *Section {
	return &Section{Options: opts, Content: content}
}

func (s *Section) sideCount() (left, right, top, bottom int) {
	if s.Options.Style == BorderNone {
		return 0, 0, 0, 0
	}
	if s.Options.Left {
		left = 1
	}
	if s.Options.Right {
		right = 1
	}
	if s.Options.Top {
		top = 1
	}
	if s.Options.Bottom {
		bottom = 1
	}
	return
}

// Render implements Component.
func (s *Section) Render(ctx RenderContext) LineResult {
	left, right, top, bottom := s.sideCount()
	width := ctx.AvailableWidth
	if width <= 0 {
		width = s.Content.Measure(ctx) + left + right
	}
	innerWidth := width - left - right
	if innerWidth < 0 {
		innerWidth = 0
	}

	chars := BorderCharSets[s.Options.Style]

	var lines []string
	if top > 0 {
		lines = append(lines, s.topBorder(chars, innerWidth, left, right))
	}

	childCtx := ctx
	childCtx.AvailableWidth = innerWidth
	content := s.Content.Render(childCtx).AsLines()
	for _, l := range content {
		var b strings.Builder
		if left > 0 {
			b.WriteRune(chars.Vertical)
		}
		padded := TruncateToWidth(l, innerWidth)
		pad := innerWidth - CountVisible(padded)
		b.WriteString(padded)
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if right > 0 {
			b.WriteRune(chars.Vertical)
		}
		lines = append(lines, b.String())
	}

	if bottom > 0 {
		lines = append(lines, s.edgeBorder(chars.BottomLeft, chars.BottomRight, chars.Horizontal, innerWidth, left, right))
	}

	if len(lines) == 1 {
		return OneLine(lines[0])
	}
	return ManyLines(lines)
}

func (s *Section) topBorder(chars BorderChars, innerWidth, left, right int) string {
	if s.Options.Title == "" {
		return s.edgeBorder(chars.TopLeft, chars.TopRight, chars.Horizontal, innerWidth, left, right)
	}

	title := TruncateToWidth(" "+s.Options.Title+" ", innerWidth)
	fillWidth := innerWidth - CountVisible(title)
	leftFill := 1
	if fillWidth < 1 {
		leftFill = 0
	}
	rightFill := fillWidth - leftFill
	if rightFill < 0 {
		rightFill = 0
	}

	var b strings.Builder
	if left > 0 {
		b.WriteRune(chars.TopLeft)
	}
	b.WriteString(strings.Repeat(string(chars.Horizontal), leftFill))
	b.WriteString(title)
	b.WriteString(strings.Repeat(string(chars.Horizontal), rightFill))
	if right > 0 {
		b.WriteRune(chars.TopRight)
	}
	return b.String()
}

func (s *Section) edgeBorder(leftCorner, rightCorner, horizontal rune, innerWidth, left, right int) string {
	var b strings.Builder
	if left > 0 {
		b.WriteRune(leftCorner)
	}
	b.WriteString(strings.Repeat(string(horizontal), innerWidth))
	if right > 0 {
		b.WriteRune(rightCorner)
	}
	return b.String()
}

// Measure implements Component: content width plus border columns.
func (s *Section) Measure(ctx RenderContext) int {
	left, right, _, _ := s.sideCount()
	return s.Content.Measure(ctx) + left + right
}

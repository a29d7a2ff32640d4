package region

import "strings"

// ColorToken is a semantic color name a caller supplies instead of a literal
// Color/RGB — "accent", "muted", "danger", and so on. Resolution of these
// into concrete Style overrides is deferred to a ColorResolver so the host
// application owns its own palette.
type ColorToken string

// StyledOptions configures the styled primitive: SGR attributes, a literal
// or token-based color, overflow/alignment policy, and an explicit width
// bound (falling back to the available width when zero, and to the content
// width when that is unbounded).
type StyledOptions struct {
	Color           Color
	ColorRGB        *RGB
	ColorToken      ColorToken
	Background      Color
	BackgroundRGB   *RGB
	BackgroundToken ColorToken
	Bold            bool
	Dim             bool
	Italic          bool
	Underline       bool
	Inverse         bool
	Strikethrough   bool
	HyperlinkURL    string
	Overflow        Overflow
	Align           Align
	Width           int // 0 means "no explicit bound, use content/track width"
	Resolver        ColorResolver
	When            func(ctx RenderContext) bool
}

// Styled wraps one or more children in SGR attributes, applying overflow and
// alignment to a resolved width the way a grid cell would, but usable
// standalone (e.g. nested directly under Region.Set).
type Styled struct {
	Options  StyledOptions
	Children []Component
}

// NewStyled constructs a Styled component around the given children.
func NewStyled(opts StyledOptions, children ...Component) *Styled {
	return &Styled{Options: opts, Children: children}
}

func (s *Styled) resolvedStyle() Style {
	opts := s.Options
	style := Style{
		Color:         opts.Color,
		ColorRGB:      opts.ColorRGB,
		Background:    opts.Background,
		BackgroundRGB: opts.BackgroundRGB,
		Bold:          opts.Bold,
		Dim:           opts.Dim,
		Italic:        opts.Italic,
		Underline:     opts.Underline,
		Inverse:       opts.Inverse,
		Strikethrough: opts.Strikethrough,
		HyperlinkURL:  opts.HyperlinkURL,
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = DefaultColorResolver()
	}
	if opts.ColorToken != "" {
		if resolved, ok := resolver.Resolve(string(opts.ColorToken)); ok {
			style.Color = resolved.Color
			style.ColorRGB = resolved.ColorRGB
		}
	}
	if opts.BackgroundToken != "" {
		if resolved, ok := resolver.Resolve(string(opts.BackgroundToken)); ok {
			style.Background = resolved.Color
			style.BackgroundRGB = resolved.ColorRGB
		}
	}
	return style
}

func (s *Styled) concatenatedContent(ctx RenderContext) LineResult {
	if len(s.Children) == 0 {
		return Empty()
	}
	if len(s.Children) == 1 {
		return s.Children[0].Render(ctx)
	}
	var lines []string
	maxRows := 1
	rendered := make([][]string, len(s.Children))
	for i, c := range s.Children {
		rendered[i] = c.Render(ctx).AsLines()
		if len(rendered[i]) > maxRows {
			maxRows = len(rendered[i])
		}
	}
	lines = make([]string, maxRows)
	for r := 0; r < maxRows; r++ {
		var b strings.Builder
		for _, rows := range rendered {
			if r < len(rows) {
				b.WriteString(rows[r])
			}
		}
		lines[r] = b.String()
	}
	if len(lines) == 1 {
		return OneLine(lines[0])
	}
	return ManyLines(lines)
}

// Render implements Component.
func (s *Styled) Render(ctx RenderContext) LineResult {
	if s.Options.When != nil && !s.Options.When(ctx) {
		return Empty()
	}

	content := s.concatenatedContent(ctx)
	lines := content.AsLines()
	if len(lines) == 0 {
		lines = []string{""}
	}

	width := s.Options.Width
	if width <= 0 {
		width = ctx.AvailableWidth
	}
	if width > 0 {
		lines = applyOverflow(ManyLines(lines), width, s.Options.Overflow)
		lines = applyAlign(lines, width, s.Options.Align)
	}

	style := s.resolvedStyle()
	out := make([]string, len(lines))
	for i, l := range lines {
		var state styleRunState
		var b strings.Builder
		styleRunToAnsi(style, l, &state, &b)
		finishStyleRuns(&state, &b)
		out[i] = b.String()
	}

	if len(out) == 1 {
		return OneLine(out[0])
	}
	return ManyLines(out)
}

// Measure implements Component: the styled primitive's intrinsic width is
// its unstyled content's visible width (SGR codes themselves are
// zero-width), capped by an explicit Width if one was set.
func (s *Styled) Measure(ctx RenderContext) int {
	unbounded := ctx
	unbounded.AvailableWidth = UnboundedWidth
	w := CountVisible(s.concatenatedContent(unbounded).FirstLine())
	if s.Options.Width > 0 && w > s.Options.Width {
		w = s.Options.Width
	}
	return w
}

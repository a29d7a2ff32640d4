package region

// Color is a compact terminal color representation. Value 0 is unset, 1 is
// the terminal default, and 2-17 are the named colors (8 standard + 8
// bright); RGB colors use a separate override field
// on Style since truecolor needs more than a byte of state.
type Color uint8

const (
	ColorNone    Color = iota // no color set (transparent / inherit)
	ColorDefault              // terminal default (SGR 39/49)
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// NameToColor converts a string color name to a Color.
var NameToColor = map[string]Color{
	"default":       ColorDefault,
	"black":         ColorBlack,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"brightBlack":   ColorBrightBlack,
	"brightRed":     ColorBrightRed,
	"brightGreen":   ColorBrightGreen,
	"brightYellow":  ColorBrightYellow,
	"brightBlue":    ColorBrightBlue,
	"brightMagenta": ColorBrightMagenta,
	"brightCyan":    ColorBrightCyan,
	"brightWhite":   ColorBrightWhite,
}

// RGB is a 24-bit truecolor value. When set on a Style it takes precedence
// over the named Color in the same slot.
type RGB struct {
	R, G, B uint8
}

// Style holds the SGR attributes and hyperlink state applied to a span of
// text: colors, boolean attributes, and an optional OSC-8 target URL.
type Style struct {
	Color         Color
	Background    Color
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Inverse       bool
	Strikethrough bool
	ColorRGB      *RGB
	BackgroundRGB *RGB
	HyperlinkURL  string
}

// EmptyStyle is a Style with no attributes set.
var EmptyStyle = Style{}

// Equal reports whether two Styles render identically.
func (a Style) Equal(b Style) bool {
	if a.Color != b.Color || a.Background != b.Background || a.HyperlinkURL != b.HyperlinkURL {
		return false
	}
	if a.Bold != b.Bold || a.Dim != b.Dim || a.Italic != b.Italic ||
		a.Underline != b.Underline || a.Inverse != b.Inverse ||
		a.Strikethrough != b.Strikethrough {
		return false
	}
	if !rgbEqual(a.ColorRGB, b.ColorRGB) {
		return false
	}
	return rgbEqual(a.BackgroundRGB, b.BackgroundRGB)
}

func rgbEqual(a, b *RGB) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.R == b.R && a.G == b.G && a.B == b.B
}

// HasColor reports whether the style has a foreground color set.
func (s Style) HasColor() bool {
	return s.Color != ColorNone || s.ColorRGB != nil
}

// HasBackground reports whether the style has a background color set.
func (s Style) HasBackground() bool {
	return s.Background != ColorNone || s.BackgroundRGB != nil
}

// Merge combines two styles, with the overlay's non-zero fields taking
// precedence over the base. Used when a styled primitive nests inside
// another and inherits whatever the outer one didn't set.
func (base Style) Merge(overlay Style) Style {
	result := base

	if overlay.Color != ColorNone || overlay.ColorRGB != nil {
		result.Color = overlay.Color
		result.ColorRGB = overlay.ColorRGB
	}
	if overlay.Background != ColorNone || overlay.BackgroundRGB != nil {
		result.Background = overlay.Background
		result.BackgroundRGB = overlay.BackgroundRGB
	}
	if overlay.Bold {
		result.Bold = true
	}
	if overlay.Dim {
		result.Dim = true
	}
	if overlay.Italic {
		result.Italic = true
	}
	if overlay.Underline {
		result.Underline = true
	}
	if overlay.Inverse {
		result.Inverse = true
	}
	if overlay.Strikethrough {
		result.Strikethrough = true
	}
	if overlay.HyperlinkURL != "" {
		result.HyperlinkURL = overlay.HyperlinkURL
	}

	return result
}

// ColorResolver resolves a semantic color token (e.g. "accent", "muted",
// "base") supplied by host code into a concrete Style override. Tokens it
// doesn't recognize are returned unresolved (zero Style) so callers can
// fall back to literal colors.
type ColorResolver interface {
	Resolve(token string) (Style, bool)
}

// ColorResolverFunc adapts a plain function to a ColorResolver.
type ColorResolverFunc func(token string) (Style, bool)

func (f ColorResolverFunc) Resolve(token string) (Style, bool) { return f(token) }

package region

import "github.com/lucasb-eyer/go-colorful"

// defaultSemanticPalette maps the token names spec.md names as examples
// ("accent", "muted", "base") plus the rest of a typical diagnostic palette
// to HSV coordinates (rather than hand-picked hex triplets); Resolve
// converts the chosen entry to a truecolor RGB override.
var defaultSemanticPalette = map[string]colorful.Color{
	"base":    colorful.Hsv(0, 0, 0.85),
	"muted":   colorful.Hsv(0, 0, 0.55),
	"accent":  colorful.Hsv(210, 0.65, 0.95),
	"success": colorful.Hsv(140, 0.55, 0.80),
	"warning": colorful.Hsv(40, 0.75, 0.95),
	"danger":  colorful.Hsv(5, 0.70, 0.90),
	"info":    colorful.Hsv(195, 0.55, 0.90),
}

type paletteResolver struct {
	tokens map[string]colorful.Color
}

// DefaultColorResolver returns the ColorResolver Styled falls back to when a
// caller doesn't supply one of its own: a small fixed HSV palette covering
// the common diagnostic-UI token set.
func DefaultColorResolver() ColorResolver {
	return &paletteResolver{tokens: defaultSemanticPalette}
}

func (p *paletteResolver) Resolve(token string) (Style, bool) {
	c, ok := p.tokens[token]
	if !ok {
		return Style{}, false
	}
	r, g, b := c.RGB255()
	return Style{ColorRGB: &RGB{R: r, G: g, B: b}}, true
}

// NewPaletteResolver builds a ColorResolver from a caller-supplied token ->
// RGB map, for hosts that want their own semantic palette instead of the
// default one.
func NewPaletteResolver(tokens map[string]RGB) ColorResolver {
	converted := make(map[string]colorful.Color, len(tokens))
	for name, rgb := range tokens {
		converted[name] = colorful.Color{
			R: float64(rgb.R) / 255,
			G: float64(rgb.G) / 255,
			B: float64(rgb.B) / 255,
		}
	}
	return &paletteResolver{tokens: converted}
}

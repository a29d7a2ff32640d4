package region

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PrintOptions configures the width used for a one-shot render. Zero means
// auto-detect from the terminal, falling back to 80.
type PrintOptions struct {
	Width int
}

// Print renders a component tree to stdout once, with ANSI styling, and
// without opening a live Region — for CLI drivers that just want a single
// styled line and don't need in-place updates.
func Print(c Component) {
	Fprint(os.Stdout, c, PrintOptions{})
}

// Sprint renders a component tree to a string.
func Sprint(c Component) string {
	var sb strings.Builder
	Fprint(&sb, c, PrintOptions{})
	return sb.String()
}

// Fprint renders a component tree to w once, terminated by a newline.
func Fprint(w io.Writer, c Component, opts PrintOptions) {
	width := opts.Width
	if width <= 0 {
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
	}
	if width <= 0 {
		width = 80
	}

	result := c.Render(RenderContext{AvailableWidth: width})
	lines := result.AsLines()
	for _, l := range lines {
		io.WriteString(w, l)
		io.WriteString(w, "\n")
	}
}

// Escape sequence generation for terminal output: cursor movement, screen
// and line clearing, SGR attributes, OSC-8 hyperlinks, alternate-screen and
// auto-wrap toggling, and the DSR cursor-position query.
package region

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	ESC = "\x1b"
	CSI = ESC + "["
	OSC = ESC + "]"
	ST  = ESC + "\\" // String Terminator
)

// Pre-computed ANSI escape sequences
const (
	csiStr    = "\x1b["
	resetStr  = "\x1b[0m"
	boldStr   = "\x1b[1m"
	dimStr    = "\x1b[2m"
	italicStr = "\x1b[3m"
	underStr  = "\x1b[4m"
	invStr    = "\x1b[7m"
	strikeStr = "\x1b[9m"
	// OSC 8 hyperlink end
	hyperlinkEnd = "\x1b]8;;\x1b\\"
)

// MoveCursor returns the ANSI code to move the cursor to (x, y).
// ANSI uses 1-based coordinates.
func MoveCursor(x, y int) string {
	return csiStr + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H"
}

// HideCursor returns the ANSI code to hide the cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor returns the ANSI code to show the cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// ClearScreen returns the ANSI code to clear the screen and home the cursor.
func ClearScreen() string {
	return CSI + "2J" + CSI + "H"
}

// ClearLine returns the ANSI code to clear the entire current line.
func ClearLine() string {
	return CSI + "2K"
}

// MoveUp/MoveDown/MoveRight/MoveLeft move the cursor N cells in one
// direction, clamped at the screen edge by the terminal itself.
func MoveUp(n int) string    { return CSI + strconv.Itoa(n) + "A" }
func MoveDown(n int) string  { return CSI + strconv.Itoa(n) + "B" }
func MoveRight(n int) string { return CSI + strconv.Itoa(n) + "C" }
func MoveLeft(n int) string  { return CSI + strconv.Itoa(n) + "D" }

// DeleteLines returns the ANSI code to delete N lines starting at the
// cursor row, scrolling lines below up to fill the gap.
func DeleteLines(n int) string {
	return CSI + strconv.Itoa(n) + "M"
}

// SaveCursor/RestoreCursor are the legacy SCO (SCOSC/SCORC) cursor position
// save/restore sequences. Optional per the external interface: most modern
// terminals support them, but the region renderer never relies on them for
// correctness — it always addresses the cursor absolutely.
func SaveCursor() string    { return CSI + "s" }
func RestoreCursor() string { return CSI + "u" }

// EnterAltScreen / ExitAltScreen toggle DEC private mode 1049. Content
// written to the alternate screen is discarded when the terminal exits it.
func EnterAltScreen() string { return ansi.SetAltScreenSaveCursorMode }
func ExitAltScreen() string  { return ansi.ResetAltScreenSaveCursorMode }

// DisableAutoWrap / EnableAutoWrap toggle DEC private mode 7. The region
// renderer disables auto-wrap for the lifetime of an active region so a
// line exactly as wide as the viewport never pushes a spurious blank row.
func DisableAutoWrap() string { return CSI + "?7l" }
func EnableAutoWrap() string  { return CSI + "?7h" }

// QueryCursorPosition returns the DSR (device status report) request for
// the terminal's current cursor position. The caller must read the reply
// itself; see ParseCursorPositionReply.
func QueryCursorPosition() string { return ansi.RequestCursorPositionReport }

// ParseCursorPositionReply parses a DSR reply of the form "ESC [ row ; col
// R" and returns the 1-based row and column. ok is false if s is not a
// well-formed reply.
func ParseCursorPositionReply(s string) (row, col int, ok bool) {
	const prefix = CSI
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, "R") {
		return 0, 0, false
	}
	body := s[len(prefix) : len(s)-1]
	parts := strings.SplitN(body, ";", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	r, errR := strconv.Atoi(parts[0])
	c, errC := strconv.Atoi(parts[1])
	if errR != nil || errC != nil {
		return 0, 0, false
	}
	return r, c, true
}

// Foreground color ANSI codes indexed by Color
var fgCodes = [...]string{
	ColorNone:          "",
	ColorDefault:       "\x1b[39m",
	ColorBlack:         "\x1b[30m",
	ColorRed:           "\x1b[31m",
	ColorGreen:         "\x1b[32m",
	ColorYellow:        "\x1b[33m",
	ColorBlue:          "\x1b[34m",
	ColorMagenta:       "\x1b[35m",
	ColorCyan:          "\x1b[36m",
	ColorWhite:         "\x1b[37m",
	ColorBrightBlack:   "\x1b[90m",
	ColorBrightRed:     "\x1b[91m",
	ColorBrightGreen:   "\x1b[92m",
	ColorBrightYellow:  "\x1b[93m",
	ColorBrightBlue:    "\x1b[94m",
	ColorBrightMagenta: "\x1b[95m",
	ColorBrightCyan:    "\x1b[96m",
	ColorBrightWhite:   "\x1b[97m",
}

// Background color ANSI codes indexed by Color
var bgCodes = [...]string{
	ColorNone:          "",
	ColorDefault:       "\x1b[49m",
	ColorBlack:         "\x1b[40m",
	ColorRed:           "\x1b[41m",
	ColorGreen:         "\x1b[42m",
	ColorYellow:        "\x1b[43m",
	ColorBlue:          "\x1b[44m",
	ColorMagenta:       "\x1b[45m",
	ColorCyan:          "\x1b[46m",
	ColorWhite:         "\x1b[47m",
	ColorBrightBlack:   "\x1b[100m",
	ColorBrightRed:     "\x1b[101m",
	ColorBrightGreen:   "\x1b[102m",
	ColorBrightYellow:  "\x1b[103m",
	ColorBrightBlue:    "\x1b[104m",
	ColorBrightMagenta: "\x1b[105m",
	ColorBrightCyan:    "\x1b[106m",
	ColorBrightWhite:   "\x1b[107m",
}

// ColorToAnsi converts a Color to ANSI escape code.
func ColorToAnsi(color Color, rgb *RGB, isFg bool) string {
	// Handle RGB first
	if rgb != nil {
		if isFg {
			return csiStr + "38;2;" + strconv.Itoa(int(rgb.R)) + ";" + strconv.Itoa(int(rgb.G)) + ";" + strconv.Itoa(int(rgb.B)) + "m"
		}
		return csiStr + "48;2;" + strconv.Itoa(int(rgb.R)) + ";" + strconv.Itoa(int(rgb.G)) + ";" + strconv.Itoa(int(rgb.B)) + "m"
	}

	// Use pre-computed codes for named colors
	if int(color) < len(fgCodes) {
		if isFg {
			return fgCodes[color]
		}
		return bgCodes[color]
	}
	return ""
}

// StyleToAnsi generates ANSI codes for a style, writing directly to builder.
func StyleToAnsi(style Style, sb *strings.Builder) {
	if style.Bold {
		sb.WriteString(boldStr)
	}
	if style.Dim {
		sb.WriteString(dimStr)
	}
	if style.Italic {
		sb.WriteString(italicStr)
	}
	if style.Underline {
		sb.WriteString(underStr)
	}
	if style.Inverse {
		sb.WriteString(invStr)
	}
	if style.Strikethrough {
		sb.WriteString(strikeStr)
	}
	if style.Color != ColorNone || style.ColorRGB != nil {
		sb.WriteString(ColorToAnsi(style.Color, style.ColorRGB, true))
	}
	if style.Background != ColorNone || style.BackgroundRGB != nil {
		sb.WriteString(ColorToAnsi(style.Background, style.BackgroundRGB, false))
	}
}

// HyperlinkStart returns the OSC 8 sequence to start a hyperlink.
func HyperlinkStart(url string) string {
	return "\x1b]8;;" + url + "\x1b\\"
}

// HyperlinkEnd returns the OSC 8 sequence to end a hyperlink.
func HyperlinkEnd() string {
	return hyperlinkEnd
}

// styleRunState tracks the style/hyperlink currently active on a builder
// across a sequence of styleRunToAnsi calls, so only attribute changes that
// actually occur between consecutive runs are emitted.
type styleRunState struct {
	style     Style
	started   bool
	hyperlink string
}

// styleRunToAnsi appends one style-tagged text run to sb, diffing against
// state so unchanged SGR/hyperlink attributes aren't re-emitted between
// consecutive runs — the incremental-diff technique the cell-buffer
// renderer used, retargeted from per-Cell runs to the style+span runs
// styled.go and fill.go build.
func styleRunToAnsi(style Style, text string, state *styleRunState, sb *strings.Builder) {
	styleChanged := !state.started || !state.style.Equal(style)
	hyperlinkChanged := style.HyperlinkURL != state.hyperlink

	if styleChanged {
		if state.hyperlink != "" {
			sb.WriteString(hyperlinkEnd)
		}
		sb.WriteString(resetStr)
		StyleToAnsi(style, sb)
		if style.HyperlinkURL != "" {
			sb.WriteString(HyperlinkStart(style.HyperlinkURL))
		}
	} else if hyperlinkChanged {
		if state.hyperlink != "" {
			sb.WriteString(hyperlinkEnd)
		}
		if style.HyperlinkURL != "" {
			sb.WriteString(HyperlinkStart(style.HyperlinkURL))
		}
	}
	state.hyperlink = style.HyperlinkURL
	state.style = style
	state.started = true

	sb.WriteString(text)
}

// finishStyleRuns closes any still-open hyperlink and resets SGR state,
// called once after the last styleRunToAnsi in a line.
func finishStyleRuns(state *styleRunState, sb *strings.Builder) {
	if state.hyperlink != "" {
		sb.WriteString(hyperlinkEnd)
	}
	if state.started {
		sb.WriteString(resetStr)
	}
}

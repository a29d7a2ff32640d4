package region

import (
	"strings"
	"unicode/utf8"
)

// The text kernel measures and slices strings that mix visible characters
// with ANSI CSI SGR sequences ("\x1b[...m") and OSC-8 hyperlink wrappers
// ("\x1b]8;;URL\x1b\\TEXT\x1b]8;;\x1b\\"). A "visible character" is any code
// point that is neither inside an SGR escape nor inside the URL parameter of
// an OSC-8 opener.
//
// One code point is counted as one display column: grapheme clustering and
// East-Asian wide-width are not implemented (see DESIGN.md, "Open
// Questions").

const (
	oscHyperlinkPrefix = "\x1b]8;;"
	oscTerminator      = "\x1b\\"
)

// token classifies one scan step through a string.
type tokenKind int

const (
	tokenText tokenKind = iota
	tokenSGR
	tokenHyperlinkOpen
	tokenHyperlinkClose
)

// token is one lexical unit produced by scanning: either a single visible
// rune or a complete escape sequence.
type token struct {
	kind tokenKind
	raw  string // the literal bytes of the token (escape sequence or one rune)
	url  string // populated for tokenHyperlinkOpen
}

// scan tokenizes s into a sequence of tokens. Malformed or unterminated
// escape sequences are treated as literal text from the escape character
// onward, so scanning never panics or loses bytes.
func scan(s string) []token {
	var toks []token
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], oscHyperlinkPrefix) {
			rest := s[i+len(oscHyperlinkPrefix):]
			end := strings.Index(rest, oscTerminator)
			if end >= 0 {
				url := rest[:end]
				raw := s[i : i+len(oscHyperlinkPrefix)+end+len(oscTerminator)]
				if url == "" {
					toks = append(toks, token{kind: tokenHyperlinkClose, raw: raw})
				} else {
					toks = append(toks, token{kind: tokenHyperlinkOpen, raw: raw, url: url})
				}
				i += len(raw)
				continue
			}
		}
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && !(s[j] >= 0x40 && s[j] <= 0x7E) {
				j++
			}
			if j < len(s) {
				j++
				toks = append(toks, token{kind: tokenSGR, raw: s[i:j]})
				i = j
				continue
			}
		}
		_, size := decodeRune(s[i:])
		toks = append(toks, token{kind: tokenText, raw: s[i : i+size]})
		i += size
	}
	return toks
}

// decodeRune decodes the first rune of s and returns it with its byte size.
// Kept local (rather than importing unicode/utf8's DecodeRuneInString
// directly at every call site) because the text kernel only ever needs the
// size.
func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

// CountVisible returns the number of visible (non-escape) code points in s.
func CountVisible(s string) int {
	n := 0
	for _, t := range scan(s) {
		if t.kind == tokenText {
			n++
		}
	}
	return n
}

// StripANSI returns s with all SGR sequences and OSC-8 wrappers removed,
// leaving only the visible text.
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, t := range scan(s) {
		if t.kind == tokenText {
			b.WriteString(t.raw)
		}
	}
	return b.String()
}

// ContainsEscapes reports whether s contains any SGR or OSC-8 sequence.
func ContainsEscapes(s string) bool {
	return strings.Contains(s, "\x1b[") || strings.Contains(s, "\x1b]")
}

// isSGRReset reports whether an SGR sequence clears all active attributes:
// bare "\x1b[m", explicit "\x1b[0m", or a compound sequence whose first
// parameter is 0 ("\x1b[0;1m"). Partial resets of individual attributes
// are not modeled.
func isSGRReset(raw string) bool {
	body := strings.TrimSuffix(strings.TrimPrefix(raw, "\x1b["), "m")
	return body == "" || body == "0" || strings.HasPrefix(body, "0;")
}

// trimLeadingVisibleSpace removes leading visible space characters from s,
// leaving any escape sequences that precede them (e.g. a reopened SGR
// prefix) untouched at the front.
func trimLeadingVisibleSpace(s string) string {
	toks := scan(s)
	skipping := true
	out := toks[:0:0]
	for _, t := range toks {
		if skipping {
			if t.kind == tokenText && t.raw == " " {
				continue
			}
			if t.kind == tokenText {
				skipping = false
			}
		}
		out = append(out, t)
	}
	var b strings.Builder
	for _, t := range out {
		b.WriteString(t.raw)
	}
	return b.String()
}

// SplitAtVisiblePos splits s into (before, after) such that
// CountVisible(before) == min(k, CountVisible(s)). Escape sequences are
// never split: every SGR token encountered before the split point is
// replayed into both before's trailing state and after's leading state so
// each half stays independently well-formed; an OSC-8 link left open at the
// split is closed in before and reopened (with the same URL) in after.
func SplitAtVisiblePos(s string, k int) (before, after string) {
	if k < 0 {
		k = 0
	}
	toks := scan(s)

	var b, a strings.Builder
	visible := 0
	openURL := ""
	splitURL := ""
	var activeSGR []string
	inBefore := true
	replayedSGR := false

	for _, t := range toks {
		if inBefore && t.kind == tokenText && visible >= k {
			inBefore = false
		}
		if !inBefore && !replayedSGR {
			for _, sgr := range activeSGR {
				a.WriteString(sgr)
			}
			if openURL != "" {
				a.WriteString(oscHyperlinkPrefix + openURL + oscTerminator)
				splitURL = openURL
			}
			replayedSGR = true
		}
		switch t.kind {
		case tokenText:
			if inBefore {
				b.WriteString(t.raw)
			} else {
				a.WriteString(t.raw)
			}
			visible++
		case tokenSGR:
			if inBefore {
				b.WriteString(t.raw)
			} else {
				a.WriteString(t.raw)
			}
			if isSGRReset(t.raw) {
				activeSGR = activeSGR[:0]
			} else {
				activeSGR = append(activeSGR, t.raw)
			}
		case tokenHyperlinkOpen:
			openURL = t.url
			if inBefore {
				b.WriteString(t.raw)
			} else {
				a.WriteString(t.raw)
			}
		case tokenHyperlinkClose:
			openURL = ""
			if inBefore {
				b.WriteString(t.raw)
			} else {
				a.WriteString(t.raw)
			}
		}
	}

	before = b.String()
	after = a.String()

	if splitURL != "" || (inBefore && openURL != "") {
		// The link was open at the split point (after already reopened it
		// with the same URL), or the string ends with its link unclosed:
		// close it at the end of before.
		before += oscHyperlinkPrefix + oscTerminator
	}

	return before, after
}

// TruncateToWidth returns the longest prefix of s whose visible width is
// at most w.
func TruncateToWidth(s string, w int) string {
	if w < 0 {
		w = 0
	}
	if CountVisible(s) <= w {
		return s
	}
	before, _ := SplitAtVisiblePos(s, w)
	return before
}

const ellipsis = "…"

// TruncateEnd shrinks s to at most w visible columns, appending a single
// ellipsis character when truncation actually occurs. Returns "" if w < 1.
func TruncateEnd(s string, w int) string {
	if w < 1 {
		return ""
	}
	if CountVisible(s) <= w {
		return s
	}
	before, _ := SplitAtVisiblePos(s, w-1)
	return before + ellipsis
}

// TruncateStart shrinks s to at most w visible columns, keeping the tail
// and prefixing a single ellipsis character.
func TruncateStart(s string, w int) string {
	if w < 1 {
		return ""
	}
	total := CountVisible(s)
	if total <= w {
		return s
	}
	_, after := SplitAtVisiblePos(s, total-(w-1))
	return ellipsis + after
}

// TruncateMiddle shrinks s to at most w visible columns, keeping both ends
// and replacing the middle with a single ellipsis.
func TruncateMiddle(s string, w int) string {
	if w < 1 {
		return ""
	}
	total := CountVisible(s)
	if total <= w {
		return s
	}
	if w == 1 {
		return ellipsis
	}
	keep := w - 1
	headLen := keep / 2
	tailLen := keep - headLen
	head, rest := SplitAtVisiblePos(s, headLen)
	_, tail := SplitAtVisiblePos(rest, total-headLen-tailLen)
	return head + ellipsis + tail
}

// FocusRangeResult is the output of TruncateFocusRange.
type FocusRangeResult struct {
	Text            string
	VisibleStartCol int // 0-based visible column of RangeStartCol inside Text's visible run
	VisibleEndCol   int
	RangeStartCol   int // the (possibly clipped) original start column that is guaranteed visible
	RangeEndCol     int
}

// TruncateFocusRange selects the substring of s whose visible columns span a
// contiguous range containing [startCol, endCol] (0-based, inclusive,
// clamped to the string's visible length), inserting up to two ellipses so
// the result fits within maxCol visible columns (no limit when maxCol <= 0).
// When the requested range itself is too wide to fit with both ellipses,
// the result is centered on the range's midpoint instead.
func TruncateFocusRange(s string, maxCol, startCol, endCol int) FocusRangeResult {
	total := CountVisible(s)
	if startCol < 0 {
		startCol = 0
	}
	if endCol >= total {
		endCol = total - 1
	}
	if endCol < startCol {
		endCol = startCol
	}
	if maxCol <= 0 || total <= maxCol {
		return FocusRangeResult{
			Text:            s,
			VisibleStartCol: startCol,
			VisibleEndCol:   endCol,
			RangeStartCol:   startCol,
			RangeEndCol:     endCol,
		}
	}

	rangeWidth := endCol - startCol + 1
	headEllipsis := startCol > 0
	tailEllipsis := endCol < total-1

	budget := maxCol
	if headEllipsis {
		budget--
	}
	if tailEllipsis {
		budget--
	}
	if budget < 1 {
		budget = 1
	}

	var winStart, winEnd int
	if rangeWidth >= budget {
		// The focus range itself doesn't fit: center on its midpoint.
		mid := (startCol + endCol) / 2
		winStart = mid - budget/2
		winEnd = winStart + budget - 1
	} else {
		slack := budget - rangeWidth
		before := slack / 2
		winStart = startCol - before
		winEnd = endCol + (slack - before)
	}
	if winStart < 0 {
		winEnd += -winStart
		winStart = 0
	}
	if winEnd > total-1 {
		winStart -= winEnd - (total - 1)
		winEnd = total - 1
	}
	if winStart < 0 {
		winStart = 0
	}

	headEllipsis = winStart > 0
	tailEllipsis = winEnd < total-1

	_, rest := SplitAtVisiblePos(s, winStart)
	windowLen := winEnd - winStart + 1
	window, _ := SplitAtVisiblePos(rest, windowLen)

	var b strings.Builder
	if headEllipsis {
		b.WriteString(ellipsis)
	}
	b.WriteString(window)
	if tailEllipsis {
		b.WriteString(ellipsis)
	}

	headOffset := 0
	if headEllipsis {
		headOffset = 1
	}
	visStart := headOffset + (startCol - winStart)
	visEnd := headOffset + (endCol - winStart)
	if visStart < headOffset {
		visStart = headOffset
	}

	return FocusRangeResult{
		Text:            b.String(),
		VisibleStartCol: visStart,
		VisibleEndCol:   visEnd,
		RangeStartCol:   startCol,
		RangeEndCol:     endCol,
	}
}

// MapColumnToDisplay returns the 1-based index within the visible characters
// of truncated corresponding to originalCol (0-based) of original, given the
// visible/range bounds reported by TruncateFocusRange. Columns outside
// [rangeStart, rangeEnd] clamp to the nearest end.
func MapColumnToDisplay(original, truncated string, visibleStart, visibleEnd, originalCol, rangeStart, rangeEnd int) int {
	if originalCol < rangeStart {
		originalCol = rangeStart
	}
	if originalCol > rangeEnd {
		originalCol = rangeEnd
	}
	offset := originalCol - rangeStart
	pos := visibleStart + offset
	if pos > visibleEnd {
		pos = visibleEnd
	}
	if pos < 0 {
		pos = 0
	}
	return pos + 1
}

// WrapText breaks s into lines of visible width at most width, preferring
// to break at whitespace boundaries. SGR state open at a break is reopened
// at the start of the next line.
func WrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	if CountVisible(s) <= width {
		return []string{s}
	}

	var lines []string
	remaining := s
	for CountVisible(remaining) > width {
		candidate := TruncateToWidth(remaining, width)
		breakAt := lastWhitespaceVisiblePos(candidate)
		if breakAt <= 0 {
			breakAt = CountVisible(candidate)
		}
		line, rest := SplitAtVisiblePos(remaining, breakAt)
		lines = append(lines, strings.TrimRight(line, " "))
		rest = trimLeadingVisibleSpace(rest)
		remaining = rest
		if remaining == "" {
			return lines
		}
	}
	lines = append(lines, remaining)
	return lines
}

// lastWhitespaceVisiblePos returns the visible column index (exclusive end
// of the word run) of the last space in s's visible text, or -1 if none.
func lastWhitespaceVisiblePos(s string) int {
	visible := StripANSI(s)
	idx := strings.LastIndex(visible, " ")
	if idx < 0 {
		return -1
	}
	return len([]rune(visible[:idx]))
}

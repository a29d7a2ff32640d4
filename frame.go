package region

// MaxFrameHeight bounds how far a logical frame auto-grows via SetLine,
// preventing runaway memory use from a misbehaving caller. Append and Set
// are not capped. 10,000 rows is
// generous for any code-diagnostic or multi-lane dashboard view.
const MaxFrameHeight = 10000

// Frame is the region's logical row store: an ordered sequence of rendered
// lines, each an opaque string that may carry its own SGR/OSC-8 sequences.
// Row addressing in the public API is 1-based; Frame itself is 0-indexed.
type Frame struct {
	rows []string
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Height returns the number of logical rows.
func (f *Frame) Height() int { return len(f.rows) }

// Rows returns the frame's rows. The returned slice is owned by the frame
// and must not be retained past the next mutation.
func (f *Frame) Rows() []string { return f.rows }

// Get returns row n (0-indexed), or "" if out of bounds.
func (f *Frame) Get(n int) string {
	if n < 0 || n >= len(f.rows) {
		return ""
	}
	return f.rows[n]
}

// Set replaces the frame's rows wholesale.
func (f *Frame) Set(rows []string) {
	f.rows = append(f.rows[:0], rows...)
}

// Append adds rows to the end of the frame.
func (f *Frame) Append(rows ...string) {
	f.rows = append(f.rows, rows...)
}

// SetLine sets row n (0-indexed), growing the frame with empty rows if
// needed, capped at MaxFrameHeight.
func (f *Frame) SetLine(n int, content string) {
	if n < 0 || n >= MaxFrameHeight {
		return
	}
	for n >= len(f.rows) {
		f.rows = append(f.rows, "")
	}
	f.rows[n] = content
}

// ClearLine resets row n to the empty string without shrinking the frame.
func (f *Frame) ClearLine(n int) {
	if n < 0 || n >= len(f.rows) {
		return
	}
	f.rows[n] = ""
}

// Clear resets every row to the empty string without shrinking the frame.
func (f *Frame) Clear() {
	for i := range f.rows {
		f.rows[i] = ""
	}
}

// Shrink removes count rows starting at start (0-indexed).
func (f *Frame) Shrink(start, count int) {
	if start < 0 || start >= len(f.rows) || count <= 0 {
		return
	}
	end := start + count
	if end > len(f.rows) {
		end = len(f.rows)
	}
	f.rows = append(f.rows[:start], f.rows[end:]...)
}

// Clone returns an independent copy of the frame's rows.
func (f *Frame) Clone() []string {
	out := make([]string, len(f.rows))
	copy(out, f.rows)
	return out
}

// Viewport clips a logical frame's rows to a height-row viewport, anchored
// at the bottom: when the logical frame is taller than height, only the
// last height rows are kept; when it's shorter, empty rows are padded
// above so the content still appears anchored at the bottom of the
// viewport.
func Viewport(rows []string, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(rows) >= height {
		return rows[len(rows)-height:]
	}
	out := make([]string, height)
	copy(out[height-len(rows):], rows)
	return out
}

// TrimBlankRows returns the subslice of rows with leading and trailing
// visually-blank rows removed. Used to recover a logical frame's actual
// content from a frame that may carry Viewport's bottom-anchored padding.
func TrimBlankRows(rows []string) []string {
	start := 0
	for start < len(rows) && CountVisible(rows[start]) == 0 {
		start++
	}
	end := len(rows)
	for end > start && CountVisible(rows[end-1]) == 0 {
		end--
	}
	return rows[start:end]
}

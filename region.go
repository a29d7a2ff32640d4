package region

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/caudexlabs/goregion/internal/hostio"
)

// regionState tracks the terminal side-effect lifecycle a Region moves
// through, mirroring the state machine in its contract: Pristine on
// construction, Active once the first mutation triggers terminal
// acquisition, Resizing for the span between a size-change event and the
// next successful rebuild, TearingDown once Destroy has been called.
type regionState int

const (
	statePristine regionState = iota
	stateActive
	stateResizing
	stateTearingDown
)

// Options configures a Region at construction. Zero-value fields resolve to
// sensible defaults in NewRegion, the way the teacher's Options/RunOptions
// resolve Output to os.Stdout and width/height to a terminal query then
// 80x24.
type Options struct {
	Output           io.Writer
	Width            int // 0 = query the terminal, falling back to 80
	Height           int // 0 = query the terminal, falling back to 24
	TargetFPS        int // 0 = DefaultFPS
	DisableThrottle  bool
	DisableAltScreen bool
	OnResize         func()
	OnExit           func()
	Debug            DebugSink
}

// Region owns one rectangular block of terminal rows: its logical frame,
// its write buffer, its throttle, and its host handle. Grounded on the
// teacher's Renderer (renderer.go) for the render/diff/emit loop and on
// app.go's Run for terminal acquisition and resize/exit wiring, retargeted
// from a VNode-driven 2D cell grid to a Component-driven 1D string-row
// frame.
type Region struct {
	id uuid.UUID

	mu    sync.Mutex
	state regionState

	host   *hostio.Host
	output io.Writer

	pending  *Frame
	prevViewport []string

	viewportWidth, viewportHeight int

	throttle        *Throttle
	disableThrottle bool
	writeBuf        *WriteBuffer

	rendering       bool
	renderScheduled bool
	timer           *time.Timer

	cursorHidden bool
	cursorLine   int
	cursorCol    int
	showCursor   bool

	altScreenDisabled bool
	teardown          teardownList
	debug             DebugSink

	resizeStop chan struct{}
	onResize   func()
	onExit     func()

	destroyed bool
}

// NewRegion acquires a host handle, resolves viewport dimensions, and
// returns a Region in the Pristine state: no terminal side effects have
// happened yet (those begin on the first mutation, per the state machine).
func NewRegion(opts Options) (*Region, error) {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	host := hostio.Open(output)

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		if tw, th, err := host.Size(); err == nil {
			if width <= 0 {
				width = tw
			}
			if height <= 0 {
				height = th
			}
		}
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	r := &Region{
		id:                uuid.New(),
		state:             statePristine,
		host:              host,
		output:            output,
		pending:           NewFrame(),
		viewportWidth:     width,
		viewportHeight:    height,
		throttle:          NewThrottle(opts.TargetFPS),
		disableThrottle:   opts.DisableThrottle,
		writeBuf:          &WriteBuffer{},
		altScreenDisabled: opts.DisableAltScreen,
		debug:             opts.Debug,
		onResize:          opts.OnResize,
		onExit:            opts.OnExit,
	}

	registerRegion(r)
	r.watchHost()
	return r, nil
}

func (r *Region) watchHost() {
	resizeCh := r.host.WatchResize()
	r.resizeStop = make(chan struct{})
	go func() {
		for {
			select {
			case <-r.resizeStop:
				return
			case <-resizeCh:
				r.handleResize()
			}
		}
	}()

	exitCh := r.host.WatchExit()
	go func() {
		select {
		case <-r.resizeStop:
		case <-exitCh:
			r.Destroy(false)
		}
	}()
}

// Width reports the current viewport width.
func (r *Region) Width() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewportWidth
}

// Height reports the logical frame height (may exceed the viewport).
func (r *Region) Height() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending.Height()
}

// Set replaces the pending frame with the rendered output of components,
// one row per component (multi-line components contribute multiple rows),
// and schedules a repaint.
func (r *Region) Set(components ...Component) {
	r.mu.Lock()
	var rows []string
	ctx := RenderContext{AvailableWidth: r.viewportWidth, Region: r}
	for i, c := range components {
		ctx.RowIndex = i
		rows = append(rows, c.Render(ctx).AsLines()...)
	}
	r.pending.Set(rows)
	r.mu.Unlock()
	r.scheduleRender()
}

// Add appends the rendered output of components to the pending frame and
// schedules a repaint.
func (r *Region) Add(components ...Component) {
	r.mu.Lock()
	base := r.pending.Height()
	ctx := RenderContext{AvailableWidth: r.viewportWidth, Region: r}
	for i, c := range components {
		ctx.RowIndex = base + i
		r.pending.Append(c.Render(ctx).AsLines()...)
	}
	r.mu.Unlock()
	r.scheduleRender()
}

// SetLine sets row n (1-based), growing the frame if needed, and schedules
// a repaint.
func (r *Region) SetLine(n int, content string) error {
	if n < 1 {
		return ErrInvalidLineNumber
	}
	r.mu.Lock()
	r.pending.SetLine(n-1, content)
	r.mu.Unlock()
	r.scheduleRender()
	return nil
}

// LineUpdate pairs a 1-based line number with its new content for
// UpdateLines' atomic multi-row mutation.
type LineUpdate struct {
	Line    int
	Content string
}

// UpdateLines applies a batch of line updates atomically (single repaint).
func (r *Region) UpdateLines(updates []LineUpdate) error {
	for _, u := range updates {
		if u.Line < 1 {
			return ErrInvalidLineNumber
		}
	}
	r.mu.Lock()
	for _, u := range updates {
		r.pending.SetLine(u.Line-1, u.Content)
	}
	r.mu.Unlock()
	r.scheduleRender()
	return nil
}

// GetLine reads the pending row n (1-based).
func (r *Region) GetLine(n int) (string, error) {
	if n < 1 {
		return "", ErrInvalidLineNumber
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending.Get(n - 1), nil
}

// ClearLine resets row n to empty without shrinking the frame.
func (r *Region) ClearLine(n int) error {
	if n < 1 {
		return ErrInvalidLineNumber
	}
	r.mu.Lock()
	r.pending.ClearLine(n - 1)
	r.mu.Unlock()
	r.scheduleRender()
	return nil
}

// Clear resets every row to empty without shrinking the frame.
func (r *Region) Clear() {
	r.mu.Lock()
	r.pending.Clear()
	r.mu.Unlock()
	r.scheduleRender()
}

// ShrinkFrame removes count rows starting at start (0-based) and
// invalidates the previous viewport frame, forcing the next render to
// redraw from scratch.
func (r *Region) ShrinkFrame(start, count int) {
	r.mu.Lock()
	r.pending.Shrink(start, count)
	r.prevViewport = nil
	r.mu.Unlock()
	r.scheduleRender()
}

// ShowCursorAt positions the cursor at (line, column), both 1-based,
// relative to the viewport, for prompt affordance.
func (r *Region) ShowCursorAt(line, column int) {
	r.mu.Lock()
	r.showCursor = true
	r.cursorLine = line
	r.cursorCol = column
	r.mu.Unlock()
	r.scheduleRender()
}

// HideCursor hides the cursor again.
func (r *Region) HideCursor() {
	r.mu.Lock()
	r.showCursor = false
	r.mu.Unlock()
	r.scheduleRender()
}

// scheduleRender requests a repaint, coalescing concurrent requests behind
// a re-entrancy guard: if a render is already in progress, this call
// returns immediately and the in-progress render observes the latest
// pending frame on its next pass.
func (r *Region) scheduleRender() {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return
	}
	if r.rendering {
		r.renderScheduled = true
		r.mu.Unlock()
		return
	}
	r.rendering = true
	r.mu.Unlock()

	r.renderLoop()
}

// renderLoop runs renderOnce repeatedly until no further render was
// requested while the previous one was in flight.
func (r *Region) renderLoop() {
	for {
		r.renderOnce()

		r.mu.Lock()
		if !r.renderScheduled {
			r.rendering = false
			r.mu.Unlock()
			return
		}
		r.renderScheduled = false
		r.mu.Unlock()
	}
}

// renderOnce executes one pass of the render pipeline described in the
// Region renderer's contract: throttle check, terminal-state assurance,
// viewport clip, diff, emit, flush.
func (r *Region) renderOnce() {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return
	}
	if !r.disableThrottle && !r.throttle.ShouldRenderNow() {
		wait := r.throttle.TimeUntilNextFrame()
		r.armTimer(wait)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	if err := r.flushLocked(); err != nil {
		r.debugf("region: write failed: %v", err)
	}
}

// armTimer schedules a single-shot retry after wait, cancelling any
// previously armed timer. Caller must hold r.mu.
func (r *Region) armTimer(wait time.Duration) {
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(wait, func() {
		r.scheduleRender()
	})
}

func (r *Region) ensureTerminalState() {
	if r.state != statePristine && r.state != stateActive {
		return
	}
	if r.state == statePristine {
		if r.host.IsTerminal() {
			if !r.altScreenDisabled {
				r.writeBuf.Write(EnterAltScreen())
			}
			r.writeBuf.Write(DisableAutoWrap())
			r.writeBuf.Write(HideCursor())
			r.writeBuf.Write(ClearScreen())
		}
		r.state = stateActive
	}
}

// flushLocked performs the actual diff-and-emit pass, returning any write
// error so Flush() can propagate it per the renderer's failure semantics:
// write errors are non-recoverable at the core level and surface to the
// caller, they are never silently swallowed by the forced-render path.
func (r *Region) flushLocked() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return nil
	}
	r.ensureTerminalState()

	viewport := Viewport(r.pending.Rows(), r.viewportHeight)
	ops := DiffLines(r.prevViewport, viewport)

	isTerminal := r.host.IsTerminal()
	if isTerminal {
		for _, op := range ops {
			switch op.Kind {
			case NoChange:
				continue
			case DeleteLine:
				r.writeBuf.Write(MoveCursor(0, op.Row))
				r.writeBuf.Write(ClearLine())
			default: // UpdateLine, InsertLine
				content := TruncateToWidth(op.Content, r.viewportWidth)
				r.writeBuf.Write(MoveCursor(0, op.Row))
				r.writeBuf.Write(ClearLine())
				r.writeBuf.Write(content)
				r.writeBuf.Write(resetStr)
			}
		}
		if r.showCursor {
			r.writeBuf.Write(MoveCursor(r.cursorCol-1, r.cursorLine-1))
			r.writeBuf.Write(ShowCursor())
		} else {
			r.writeBuf.Write(HideCursor())
		}
	}

	var writeErr error
	if r.writeBuf.Len() > 0 {
		if _, err := r.writeBuf.Flush(r.output); err != nil {
			writeErr = newRegionError(ErrorKindWriteFailure, ErrWriteFailure, err)
		}
	}

	r.prevViewport = viewport
	return writeErr
}

// Flush forces an immediate render, bypassing the throttle, and returns
// after the write syscall. Write errors propagate to the caller uncaught —
// they are non-recoverable at the core level.
func (r *Region) Flush() error {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return ErrDestroyed
	}
	r.mu.Unlock()
	return r.flushLocked()
}

// handleResize re-reads viewport dimensions, invalidates the previous
// viewport frame so the next render is a full redraw, and invokes the
// host-supplied on_keep_alive callback so the caller can re-render the
// component tree at the new width before the next flush.
func (r *Region) handleResize() {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return
	}
	r.state = stateResizing
	if w, h, err := r.host.Size(); err == nil {
		r.viewportWidth = w
		r.viewportHeight = h
	}
	r.prevViewport = nil
	r.state = stateActive
	cb := r.onResize
	r.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// Destroy tears the region down: idempotent, restores all terminal state
// it changed. clearFirst wipes the region's rows before restoring the
// primary screen; otherwise the final frame is left visible.
func (r *Region) Destroy(clearFirst bool) error {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return nil
	}
	r.destroyed = true
	r.state = stateTearingDown
	wasTerminal := r.host.IsTerminal()
	close(r.resizeStop)
	exitCB := r.onExit
	finalRows := append([]string(nil), r.pending.Rows()...)
	r.mu.Unlock()

	if wasTerminal {
		var buf WriteBuffer
		if clearFirst {
			buf.Write(ClearScreen())
		}
		buf.Write(ShowCursor())
		buf.Write(EnableAutoWrap())
		if !r.altScreenDisabled {
			buf.Write(ExitAltScreen())
			// Leaving the alternate screen discards everything written to
			// it, so if the caller didn't ask to wipe the region first,
			// replay its trimmed final frame sequentially onto the primary
			// screen we've just returned to (no cursor positioning — the
			// primary screen has its own scrollback) so the content the
			// region last showed remains visible on exit. The logical
			// frame, not the bottom-anchored viewport, is trimmed: the
			// viewport pads with blank rows above short content and we
			// don't want those replayed.
			if !clearFirst {
				for _, line := range TrimBlankRows(finalRows) {
					buf.Write(line)
					buf.Write("\n")
				}
			}
		}
		buf.Flush(r.output)
	}

	r.host.StopWatching()
	unregisterRegion(r)
	r.teardown.run()

	if exitCB != nil {
		exitCB()
	}
	return nil
}

// Package hostio opens the terminal, queries its size, and dispatches
// teardown on process-exit signals and resize events — the host shim a
// Region needs but that has no business living in the public region
// package (it touches os.Stdin/os.Stdout/signal.Notify directly).
package hostio

import (
	"errors"
	"io"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var errNoFd = errors.New("hostio: output has no underlying file descriptor")

// Host owns the raw-mode terminal state and the resize/interrupt signal
// channels for one region's lifetime.
type Host struct {
	out      io.Writer
	stdinFd  int
	stdoutFd int
	oldState *term.State

	resizeCh chan os.Signal
	exitCh   chan os.Signal
	done     chan struct{}
}

// Open wires a Host to the given output (normally os.Stdout). It does not
// yet touch terminal mode — call EnterRawMode for that. When out is not an
// *os.File (a bytes.Buffer in tests, a log file, a pipe), the host has no
// file descriptor to query: IsTerminal reports false and Size falls back
// to its caller's own default.
func Open(out io.Writer) *Host {
	stdoutFd := -1
	if f, ok := out.(*os.File); ok {
		stdoutFd = int(f.Fd())
	}
	h := &Host{
		out:      out,
		stdinFd:  int(os.Stdin.Fd()),
		stdoutFd: stdoutFd,
		resizeCh: make(chan os.Signal, 1),
		exitCh:   make(chan os.Signal, 1),
		done:     make(chan struct{}),
	}
	return h
}

// IsTerminal reports whether the host's output is attached to a terminal.
func (h *Host) IsTerminal() bool {
	if h.stdoutFd < 0 {
		return false
	}
	return term.IsTerminal(h.stdoutFd)
}

// Size returns the current terminal width and height in columns/rows. Err
// is non-nil when the output has no underlying file descriptor to query.
func (h *Host) Size() (width, height int, err error) {
	if h.stdoutFd < 0 {
		return 0, 0, errNoFd
	}
	return term.GetSize(h.stdoutFd)
}

// EnterRawMode disables canonical/echo input processing so the region's
// host application can read keypresses directly. Idempotent: a second call
// without an intervening Restore is a no-op.
func (h *Host) EnterRawMode() error {
	if h.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(h.stdinFd)
	if err != nil {
		return err
	}
	h.oldState = state
	return nil
}

// Restore reverts any raw-mode change EnterRawMode made. Idempotent.
func (h *Host) Restore() error {
	if h.oldState == nil {
		return nil
	}
	err := term.Restore(h.stdinFd, h.oldState)
	h.oldState = nil
	return err
}

// WatchResize starts listening for SIGWINCH and returns a channel that
// receives a value every time the terminal is resized. Call StopWatching
// when the region is destroyed to release the signal registration.
func (h *Host) WatchResize() <-chan struct{} {
	signal.Notify(h.resizeCh, unix.SIGWINCH)
	out := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-h.resizeCh:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}

// WatchExit starts listening for the process-termination signals a region
// must tear down on (interrupt, terminate, hangup) and returns a channel
// that fires once when one arrives.
func (h *Host) WatchExit() <-chan os.Signal {
	signal.Notify(h.exitCh, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
	return h.exitCh
}

// StopWatching unregisters both signal channels and stops the resize relay
// goroutine started by WatchResize.
func (h *Host) StopWatching() {
	signal.Stop(h.resizeCh)
	signal.Stop(h.exitCh)
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

// Write implements io.Writer, passing bytes straight through to the
// underlying output — the region's write buffer flushes through this.
func (h *Host) Write(p []byte) (int, error) {
	return h.out.Write(p)
}

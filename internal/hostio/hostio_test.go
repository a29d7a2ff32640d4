package hostio

import (
	"strings"
	"testing"
)

func TestOpenWithNonFileWriterIsNeverATerminal(t *testing.T) {
	var buf strings.Builder
	h := Open(&buf)
	if h.IsTerminal() {
		t.Error("IsTerminal() = true for a bytes-backed writer, want false")
	}
	if _, _, err := h.Size(); err == nil {
		t.Error("Size() error = nil, want an error when there's no file descriptor to query")
	}
}

func TestWritePassesThroughToUnderlyingWriter(t *testing.T) {
	var buf strings.Builder
	h := Open(&buf)
	n, err := h.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write() = (%d, %v), want (5, nil)", n, err)
	}
	if buf.String() != "hello" {
		t.Errorf("buf = %q, want %q", buf.String(), "hello")
	}
}

func TestRestoreWithoutEnterRawModeIsNoop(t *testing.T) {
	var buf strings.Builder
	h := Open(&buf)
	if err := h.Restore(); err != nil {
		t.Errorf("Restore() without a prior EnterRawMode error = %v, want nil", err)
	}
}

func TestStopWatchingIsIdempotent(t *testing.T) {
	var buf strings.Builder
	h := Open(&buf)
	h.WatchResize()
	h.WatchExit()
	h.StopWatching()
	h.StopWatching()
}

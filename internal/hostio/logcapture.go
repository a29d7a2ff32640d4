package hostio

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel tags a captured log line's severity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// LogMessage is one captured line.
type LogMessage struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
}

// LogCapture redirects os.Stdout/os.Stderr to an in-memory ring buffer for
// the lifetime it's started, so a region occupying the bottom rows of the
// terminal doesn't get its content clobbered by a library writing straight
// to stdout. Plain mutex-guarded slice rather than a reactive signal —
// nothing here needs to notify a dependent render graph.
type LogCapture struct {
	mu          sync.Mutex
	messages    []LogMessage
	maxMessages int

	origStdout *os.File
	origStderr *os.File

	stdoutReader, stdoutWriter *os.File
	stderrReader, stderrWriter *os.File

	stopCh chan struct{}
}

// NewLogCapture creates a capture retaining at most maxMessages lines.
func NewLogCapture(maxMessages int) *LogCapture {
	if maxMessages <= 0 {
		maxMessages = 1000
	}
	return &LogCapture{maxMessages: maxMessages}
}

// Start redirects stdout/stderr into the capture.
func (lc *LogCapture) Start() error {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.origStdout = os.Stdout
	lc.origStderr = os.Stderr

	var err error
	lc.stdoutReader, lc.stdoutWriter, err = os.Pipe()
	if err != nil {
		return fmt.Errorf("hostio: stdout pipe: %w", err)
	}
	lc.stderrReader, lc.stderrWriter, err = os.Pipe()
	if err != nil {
		lc.stdoutReader.Close()
		lc.stdoutWriter.Close()
		return fmt.Errorf("hostio: stderr pipe: %w", err)
	}

	os.Stdout = lc.stdoutWriter
	os.Stderr = lc.stderrWriter
	lc.stopCh = make(chan struct{})

	go lc.readPipe(lc.stdoutReader, LogLevelInfo)
	go lc.readPipe(lc.stderrReader, LogLevelError)
	return nil
}

func (lc *LogCapture) readPipe(r *os.File, level LogLevel) {
	buf := make([]byte, 4096)
	for {
		select {
		case <-lc.stopCh:
			return
		default:
		}
		n, err := r.Read(buf)
		if n > 0 {
			lc.add(level, string(buf[:n]))
		}
		if err != nil {
			return
		}
	}
}

// Stop restores stdout/stderr and closes the capture pipes. Idempotent.
func (lc *LogCapture) Stop() {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.stopCh != nil {
		close(lc.stopCh)
		lc.stopCh = nil
	}
	if lc.origStdout != nil {
		os.Stdout = lc.origStdout
		lc.origStdout = nil
	}
	if lc.origStderr != nil {
		os.Stderr = lc.origStderr
		lc.origStderr = nil
	}
	for _, f := range []*os.File{lc.stdoutWriter, lc.stdoutReader, lc.stderrWriter, lc.stderrReader} {
		if f != nil {
			f.Close()
		}
	}
	lc.stdoutWriter, lc.stdoutReader, lc.stderrWriter, lc.stderrReader = nil, nil, nil, nil
}

func (lc *LogCapture) add(level LogLevel, message string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.messages = append(lc.messages, LogMessage{Timestamp: time.Now(), Level: level, Message: message})
	if len(lc.messages) > lc.maxMessages {
		lc.messages = lc.messages[len(lc.messages)-lc.maxMessages:]
	}
}

// Log appends a formatted message at the given level directly, bypassing
// the stdout/stderr pipes (for callers that already hold a LogCapture
// reference instead of writing through the redirected os.Stdout).
func (lc *LogCapture) Log(level LogLevel, format string, args ...any) {
	lc.add(level, fmt.Sprintf(format, args...))
}

// Messages returns a snapshot of captured lines, oldest first.
func (lc *LogCapture) Messages() []LogMessage {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	out := make([]LogMessage, len(lc.messages))
	copy(out, lc.messages)
	return out
}

// LastMessages returns the most recent n messages (or fewer if not enough
// have been captured yet).
func (lc *LogCapture) LastMessages(n int) []LogMessage {
	all := lc.Messages()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Clear discards all captured messages.
func (lc *LogCapture) Clear() {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.messages = nil
}

// WriteToOriginal writes directly to the pre-capture stdout, bypassing
// redirection, for output that must keep reaching the real terminal while
// a LogCapture is active.
func (lc *LogCapture) WriteToOriginal(p []byte) (int, error) {
	lc.mu.Lock()
	orig := lc.origStdout
	lc.mu.Unlock()
	if orig != nil {
		return orig.Write(p)
	}
	return os.Stdout.Write(p)
}

var _ io.Writer = (*LogCapture)(nil)

// Write implements io.Writer by logging at info level, letting a
// LogCapture double as a drop-in log destination.
func (lc *LogCapture) Write(p []byte) (int, error) {
	lc.add(LogLevelInfo, string(p))
	return len(p), nil
}

// FormatMessage renders one LogMessage the way a diagnostic segment would.
func FormatMessage(msg LogMessage) string {
	return fmt.Sprintf("[%s] %-5s %s", msg.Timestamp.Format("15:04:05.000"), msg.Level, msg.Message)
}

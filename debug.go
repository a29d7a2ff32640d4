package region

// DebugSink is a host-supplied diagnostic hook. The core only calls into it
// through a boolean-guarded check (Region.debug != nil) so hot render paths
// never format a string when no sink is attached. Grounded on the teacher's
// FprintLayout/DebugLayout pair, generalized from "print a layout tree" to
// "accept arbitrary diagnostic lines" since there's no layout tree left to
// print in the string-row model.
type DebugSink interface {
	Printf(format string, args ...any)
}

// DebugSinkFunc adapts a plain function to a DebugSink.
type DebugSinkFunc func(format string, args ...any)

func (f DebugSinkFunc) Printf(format string, args ...any) { f(format, args...) }

func (r *Region) debugf(format string, args ...any) {
	if r.debug == nil {
		return
	}
	r.debug.Printf(format, args...)
}

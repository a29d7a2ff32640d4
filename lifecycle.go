package region

import "sync"

// teardownList accumulates cleanup closures and runs them all, in reverse
// registration order, exactly once. Generalized from the teacher's Owner
// (owner.go's CreateRoot/OnCleanup dispose-closure list): that type scoped
// cleanup to a reactive-signal tree; a Region has no signal tree, but it
// still needs "acquire N terminal-mode changes, release all of them on
// teardown, idempotently" — the same shape without the reactive ownership
// stack.
type teardownList struct {
	mu     sync.Mutex
	funcs  []func()
	closed bool
}

// onTeardown registers fn to run when run() is called. Safe to call after
// run() has already fired — fn runs immediately in that case, matching the
// destroy-is-idempotent contract.
func (t *teardownList) onTeardown(fn func()) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		fn()
		return
	}
	t.funcs = append(t.funcs, fn)
	t.mu.Unlock()
}

// run executes every registered cleanup in reverse order (last acquired,
// first released — the usual resource-scoping discipline) and marks the
// list closed. Safe to call more than once; only the first call has effect.
func (t *teardownList) run() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	funcs := t.funcs
	t.funcs = nil
	t.mu.Unlock()

	for i := len(funcs) - 1; i >= 0; i-- {
		funcs[i]()
	}
}

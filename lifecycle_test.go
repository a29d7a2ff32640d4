package region

import "testing"

func TestTeardownListRunsInReverseOrder(t *testing.T) {
	var order []int
	var tl teardownList
	tl.onTeardown(func() { order = append(order, 1) })
	tl.onTeardown(func() { order = append(order, 2) })
	tl.onTeardown(func() { order = append(order, 3) })

	tl.run()

	want := []int{3, 2, 1}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTeardownListRunIsIdempotent(t *testing.T) {
	calls := 0
	var tl teardownList
	tl.onTeardown(func() { calls++ })
	tl.run()
	tl.run()
	if calls != 1 {
		t.Errorf("cleanup ran %d times, want 1", calls)
	}
}

func TestTeardownListRunsLateRegistrationImmediately(t *testing.T) {
	var tl teardownList
	tl.run()

	ran := false
	tl.onTeardown(func() { ran = true })
	if !ran {
		t.Error("onTeardown after run() should invoke its function immediately")
	}
}

package region

import "testing"

func TestDiffLinesNoChange(t *testing.T) {
	prev := []string{"a", "b", "c"}
	curr := []string{"a", "b", "c"}
	ops := DiffLines(prev, curr)
	for i, op := range ops {
		if op.Kind != NoChange {
			t.Errorf("row %d: got %v, want NoChange", i, op.Kind)
		}
	}
}

func TestDiffLinesUpdateInsertDelete(t *testing.T) {
	prev := []string{"a", "b", "c"}
	curr := []string{"a", "x", "c", "d"}
	ops := DiffLines(prev, curr)
	want := []LineOpKind{NoChange, UpdateLine, NoChange, InsertLine}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i, k := range want {
		if ops[i].Kind != k {
			t.Errorf("row %d: got %v, want %v", i, ops[i].Kind, k)
		}
	}
	if ops[1].Content != "x" {
		t.Errorf("row 1 content = %q, want %q", ops[1].Content, "x")
	}
	if ops[3].Content != "d" {
		t.Errorf("row 3 content = %q, want %q", ops[3].Content, "d")
	}
}

func TestDiffLinesShrink(t *testing.T) {
	prev := []string{"a", "b", "c"}
	curr := []string{"a"}
	ops := DiffLines(prev, curr)
	if len(ops) != 3 {
		t.Fatalf("got %d ops, want 3", len(ops))
	}
	if ops[0].Kind != NoChange {
		t.Errorf("row 0 = %v, want NoChange", ops[0].Kind)
	}
	if ops[1].Kind != DeleteLine || ops[2].Kind != DeleteLine {
		t.Errorf("rows 1,2 = %v,%v, want DeleteLine", ops[1].Kind, ops[2].Kind)
	}
}

func TestDiffLinesOpCountMatchesDifferences(t *testing.T) {
	prev := []string{"a", "b", "c", "d"}
	curr := []string{"a", "x", "c"}
	ops := DiffLines(prev, curr)
	nonNoChange := 0
	for _, op := range ops {
		if op.Kind != NoChange {
			nonNoChange++
		}
	}
	expected := 0
	n := len(prev)
	if len(curr) > n {
		n = len(curr)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(prev) || i >= len(curr):
			expected++
		case prev[i] != curr[i]:
			expected++
		}
	}
	if nonNoChange != expected {
		t.Errorf("non-NoChange op count = %d, want %d", nonNoChange, expected)
	}
}

package region

import (
	"reflect"
	"testing"
)

func TestFrameSetLineGrowsAndGetLine(t *testing.T) {
	f := NewFrame()
	f.SetLine(2, "row2")
	if f.Height() != 3 {
		t.Fatalf("Height() = %d, want 3", f.Height())
	}
	if got := f.Get(2); got != "row2" {
		t.Errorf("Get(2) = %q, want %q", got, "row2")
	}
	if got := f.Get(0); got != "" {
		t.Errorf("Get(0) = %q, want empty padding row", got)
	}
}

func TestFrameShrinkRemovesRange(t *testing.T) {
	f := NewFrame()
	f.Append("a", "b", "c", "d")
	f.Shrink(1, 2)
	if got := f.Rows(); !reflect.DeepEqual(got, []string{"a", "d"}) {
		t.Errorf("Rows() after Shrink = %v, want [a d]", got)
	}
}

func TestViewportPadsAboveShortFrame(t *testing.T) {
	got := Viewport([]string{"A", "B"}, 5)
	want := []string{"", "", "", "A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Viewport() = %v, want %v", got, want)
	}
}

func TestViewportClipsToBottomOfTallFrame(t *testing.T) {
	got := Viewport([]string{"A", "B", "C", "D"}, 2)
	want := []string{"C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Viewport() = %v, want %v", got, want)
	}
}

func TestTrimBlankRowsDropsLeadingAndTrailingBlanks(t *testing.T) {
	got := TrimBlankRows([]string{"", "", "A", "B", "", ""})
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrimBlankRows() = %v, want %v", got, want)
	}
}

func TestTrimBlankRowsTreatsANSIOnlyRowAsBlank(t *testing.T) {
	got := TrimBlankRows([]string{"\x1b[0m", "content", "\x1b[31m\x1b[0m"})
	want := []string{"content"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrimBlankRows() = %v, want %v", got, want)
	}
}

func TestTrimBlankRowsAllBlankYieldsEmpty(t *testing.T) {
	got := TrimBlankRows([]string{"", "", ""})
	if len(got) != 0 {
		t.Errorf("TrimBlankRows() = %v, want empty", got)
	}
}

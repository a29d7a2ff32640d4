package region

import "testing"

func TestSegmentsLayoutGutterContentMarker(t *testing.T) {
	s := NewSegments(1,
		Segment{Component: TextComponent("12"), Width: 4},
		Segment{Component: TextComponent("var x = 1"), Width: 0},
		Segment{Component: TextComponent("!"), Width: 1},
	)
	got := s.Render(RenderContext{AvailableWidth: 20}).FirstLine()
	// fixed(4) + gap(1) + flex(13, absorbing 20-4-1-1-1) + gap(1) + fixed(1) == 20
	want := "12  " + " " + "var x = 1    " + " " + "!"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if len(got) != 20 {
		t.Errorf("Render() length = %d, want 20", len(got))
	}
}

func TestSegmentsFlexColumnAbsorbsRemainder(t *testing.T) {
	s := NewSegments(0,
		Segment{Component: TextComponent("A"), Width: 2},
		Segment{Component: TextComponent("B"), Width: 0},
	)
	got := s.Render(RenderContext{AvailableWidth: 10}).FirstLine()
	if len(got) != 10 {
		t.Errorf("Render() length = %d, want 10 (got %q)", len(got), got)
	}
}

func TestSegmentsMeasureSumsFixedAndIntrinsicWidths(t *testing.T) {
	s := NewSegments(1,
		Segment{Component: TextComponent("ab"), Width: 5},
		Segment{Component: TextComponent("hello")},
	)
	got := s.Measure(RenderContext{})
	want := 5 + 1 + len("hello")
	if got != want {
		t.Errorf("Measure() = %d, want %d", got, want)
	}
}

func TestSegmentsEmptyReturnsEmptyResult(t *testing.T) {
	s := NewSegments(1)
	result := s.Render(RenderContext{AvailableWidth: 10})
	if result.Kind != ResultEmpty {
		t.Errorf("Render() on empty Segments = %+v, want ResultEmpty", result)
	}
}

package region

import "testing"

func TestFillRepeatsCharToWidth(t *testing.T) {
	f := NewFill("-", EmptyStyle)
	got := f.Render(RenderContext{AvailableWidth: 6}).FirstLine()
	if got != "------" {
		t.Errorf("got %q, want 6 dashes", got)
	}
}

func TestFillZeroWidthWhenUnbounded(t *testing.T) {
	f := NewFill("*", EmptyStyle)
	got := f.Render(RenderContext{AvailableWidth: UnboundedWidth}).FirstLine()
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if w := f.Measure(RenderContext{AvailableWidth: UnboundedWidth}); w != 0 {
		t.Errorf("Measure = %d, want 0", w)
	}
}

func TestFillDefaultsToSpace(t *testing.T) {
	f := NewFill("", EmptyStyle)
	got := f.Render(RenderContext{AvailableWidth: 3}).FirstLine()
	if got != "   " {
		t.Errorf("got %q, want 3 spaces", got)
	}
}

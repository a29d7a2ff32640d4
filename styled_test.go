package region

import (
	"strings"
	"testing"
)

func TestStyledWrapsBoldAndResets(t *testing.T) {
	s := NewStyled(StyledOptions{Bold: true}, TextComponent("hi"))
	out := s.Render(RenderContext{AvailableWidth: UnboundedWidth}).FirstLine()
	if !strings.Contains(out, boldStr) {
		t.Errorf("rendered output %q missing bold SGR", out)
	}
	if !strings.HasSuffix(out, resetStr) {
		t.Errorf("rendered output %q missing trailing reset", out)
	}
	if CountVisible(out) != 2 {
		t.Errorf("visible width = %d, want 2", CountVisible(out))
	}
}

func TestStyledAppliesOverflowAndAlign(t *testing.T) {
	s := NewStyled(StyledOptions{Overflow: OverflowEllipsisEnd, Align: AlignLeft}, TextComponent("abcdefgh"))
	out := s.Render(RenderContext{AvailableWidth: 5}).FirstLine()
	if got := CountVisible(out); got != 5 {
		t.Errorf("visible width = %d, want 5", got)
	}
	if !strings.Contains(StripANSI(out), ellipsis) {
		t.Errorf("stripped output %q should contain an ellipsis", StripANSI(out))
	}
}

func TestStyledResolvesSemanticToken(t *testing.T) {
	s := NewStyled(StyledOptions{ColorToken: "accent"}, TextComponent("x"))
	out := s.Render(RenderContext{AvailableWidth: UnboundedWidth}).FirstLine()
	if !strings.Contains(out, "38;2;") {
		t.Errorf("rendered output %q should contain a truecolor SGR sequence", out)
	}
}

func TestStyledMeasureIgnoresSGR(t *testing.T) {
	s := NewStyled(StyledOptions{Bold: true, ColorToken: "danger"}, TextComponent("hello"))
	if w := s.Measure(RenderContext{AvailableWidth: UnboundedWidth}); w != 5 {
		t.Errorf("Measure = %d, want 5", w)
	}
}

func TestStyledWhenHidesContent(t *testing.T) {
	s := NewStyled(StyledOptions{When: func(ctx RenderContext) bool { return false }}, TextComponent("x"))
	out := s.Render(RenderContext{AvailableWidth: 10})
	if out.Kind != ResultEmpty {
		t.Errorf("expected Empty result when When is false, got %+v", out)
	}
}

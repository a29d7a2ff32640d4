package region

import "testing"

func TestGridStaticSingleRow(t *testing.T) {
	g := NewGrid(
		GridOptions{Template: []TrackSpec{Fixed(5), Flex(1), Fixed(5)}, ColumnGap: 0},
		GridCell{Component: TextComponent("AA"), Align: AlignLeft},
		GridCell{Component: TextComponent("BBB"), Align: AlignLeft},
		GridCell{Component: TextComponent("CC"), Align: AlignLeft},
	)
	result := g.Render(RenderContext{AvailableWidth: 20})
	got := result.FirstLine()
	// Fixed(5) "AA"+3pad, Flex absorbs 20-5-5=10 cols as "BBB"+7pad, Fixed(5) "CC"+3pad.
	want := "AA   BBB       CC   "
	if got != want {
		t.Errorf("got %q (len %d), want %q (len %d)", got, CountVisible(got), want, CountVisible(want))
	}
	if CountVisible(got) != 20 {
		t.Errorf("rendered width = %d, want 20", CountVisible(got))
	}
}

func TestGridResponsiveHide(t *testing.T) {
	g := NewGrid(
		GridOptions{Template: []TrackSpec{Fixed(15), Flex(1), Fixed(15)}, ColumnGap: 0},
		GridCell{Component: TextComponent("left"), Align: AlignLeft},
		GridCell{Component: TextComponent("middle"), Align: AlignLeft},
		GridCell{
			Component: TextComponent("right"),
			Align:     AlignLeft,
			When:      func(ctx RenderContext) bool { return ctx.AvailableWidth > 50 },
		},
	)
	result := g.Render(RenderContext{AvailableWidth: 40})
	line := result.FirstLine()
	if CountVisible(line) != 40 { // 15 (left) + 25 (flex reclaims the dropped track's space too)
		t.Errorf("line %q has visible width %d, want 40", line, CountVisible(line))
	}
	if got := line[:4]; got != "left" {
		t.Errorf("left cell = %q, want \"left\"", got)
	}
}

func TestGridClosureSumsToParentWidth(t *testing.T) {
	g := NewGrid(
		GridOptions{Template: []TrackSpec{Fixed(10), Flex(1), Flex(2)}, ColumnGap: 1},
		GridCell{Component: TextComponent("x"), Align: AlignLeft},
		GridCell{Component: TextComponent("y"), Align: AlignLeft},
		GridCell{Component: TextComponent("z"), Align: AlignLeft},
	)
	result := g.Render(RenderContext{AvailableWidth: 40})
	if got := CountVisible(result.FirstLine()); got != 40 {
		t.Errorf("rendered width = %d, want 40", got)
	}
}

func TestGridMinMaxClampsAndRedistributes(t *testing.T) {
	inner := Flex(1)
	g := NewGrid(
		GridOptions{Template: []TrackSpec{
			MinMax(0, 5, false, true, inner),
			Flex(1),
		}, ColumnGap: 0},
		GridCell{Component: TextComponent(""), Align: AlignLeft},
		GridCell{Component: TextComponent(""), Align: AlignLeft},
	)
	tracks, _ := g.resolveTracks(RenderContext{AvailableWidth: 20})
	if tracks[0].width != 5 {
		t.Errorf("clamped track width = %d, want 5", tracks[0].width)
	}
	if tracks[1].width != 15 {
		t.Errorf("redistributed track width = %d, want 15", tracks[1].width)
	}
}

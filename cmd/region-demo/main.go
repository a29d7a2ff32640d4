// Command region-demo exercises a region end to end: a grid header, a
// fill-backed divider, and a bordered section holding a styled status row,
// repainted a few times on a short tick so the diff-based repaint is
// visible rather than just the first frame.
//
// Run with: go run ./cmd/region-demo
package main

import (
	"fmt"
	"os"
	"time"

	region "github.com/caudexlabs/goregion"
)

func buildHeader(tick int) region.Component {
	return region.NewGrid(region.GridOptions{
		Template: []region.TrackSpec{
			region.Fixed(12),
			region.Flex(1),
			region.Fixed(10),
		},
		ColumnGap: 1,
	},
		region.GridCell{Component: region.NewStyled(region.StyledOptions{ColorToken: "accent", Bold: true}, region.TextComponent("region-demo"))},
		region.GridCell{Component: region.NewStyled(region.StyledOptions{ColorToken: "muted"}, region.TextComponent(fmt.Sprintf("tick %d", tick)))},
		region.GridCell{Component: region.NewStyled(region.StyledOptions{ColorToken: "success", Align: region.AlignRight}, region.TextComponent("LIVE")), Align: region.AlignRight},
	)
}

func buildBody(tick int) region.Component {
	status := "ok"
	token := "success"
	if tick%5 == 4 {
		status = "retrying"
		token = "warning"
	}
	return region.NewSection(region.SectionOptions{
		Style: region.BorderRounded,
		Top:   true, Right: true, Bottom: true, Left: true,
		Title:      "status",
		TitleStyle: region.Style{Bold: true},
	}, region.NewStyled(region.StyledOptions{ColorToken: token}, region.TextComponent("worker pool: "+status)))
}

func main() {
	r, err := region.NewRegion(region.Options{
		Output: os.Stdout,
		Height: 6,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "region-demo:", err)
		os.Exit(1)
	}
	defer r.Destroy(true)

	for tick := 0; tick < 20; tick++ {
		r.Set(
			buildHeader(tick),
			region.NewFill("─", region.Style{Color: region.ColorBrightBlack}),
			buildBody(tick),
		)
		time.Sleep(150 * time.Millisecond)
	}
}

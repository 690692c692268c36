// hypsometry sweeps the water level across a grid's slider range and writes
// an HTML chart of the flooded-area fraction at each level.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"floodview/internal/dem"
	"floodview/internal/flood"
)

func main() {
	gridPath := flag.String("grid", "data/grid.json", "path to the elevation grid resource")
	out := flag.String("out", "hypsometry.html", "output HTML file")
	step := flag.Float64("step", dem.LevelStep, "level sweep step")
	flag.Parse()

	grid, err := dem.LoadFile(*gridPath)
	if err != nil {
		log.Fatalf("load grid: %v", err)
	}

	cells := flood.BuildCells(grid)
	min, max := grid.LevelBounds()
	curve := flood.Curve(cells, min, max, *step)

	xs := make([]string, len(curve))
	ys := make([]opts.LineData, len(curve))
	for i, p := range curve {
		xs[i] = fmt.Sprintf("%.1f", p.Level)
		ys[i] = opts.LineData{Value: p.Fraction * 100}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Flood hypsometry",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Flooded area by water level",
			Subtitle: fmt.Sprintf("%dx%d cells, elev %.1f..%.1f",
				grid.NCols-1, grid.NRows-1, grid.Stats.Min, grid.Stats.Max),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "water level"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "flooded %", Max: 100}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xs).AddSeries("flooded", ys,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		log.Fatalf("render chart: %v", err)
	}
	log.Printf("wrote %s (%d points)", *out, len(curve))
}

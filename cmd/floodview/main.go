//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"floodview/internal/app"
	"floodview/internal/dem"
	"floodview/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := dem.LoadFile(cfg.GridPath)
	if err != nil {
		log.Fatalf("load grid: %v", err)
	}
	log.Printf("grid %dx%d, %d samples (%d missing), elev %.1f..%.1f",
		grid.NCols, grid.NRows, grid.Stats.Samples, grid.Stats.Missing,
		grid.Stats.Min, grid.Stats.Max)

	painter := render.NewPainter(grid)
	session, err := app.NewSession(grid, painter, cfg)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	defer session.Close()

	game := app.New(session, painter, cfg)
	w, h := painter.Size()

	ebiten.SetWindowTitle("floodview")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale+64)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/dot-pop/internal/app"
	"github.com/iburimskiy/dot-pop/internal/config"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Dot Pop - Ctrl+R: reset shape, F2: screenshot, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	a := app.New(config.WindowWidth, config.WindowHeight)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}

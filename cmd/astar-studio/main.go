package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mkempster/astar-studio/internal/app"
)

func main() {
	a := app.New(32, 32)
	w, h := a.Size()
	ebiten.SetWindowTitle("A* Studio")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

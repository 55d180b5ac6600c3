// Package ebiten provides the Ebiten-based graphical backend for the
// world map: hardware-accelerated tile rendering, mouse panning and
// wheel zoom.
package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"worldmap/pkg/game/mapview"
)

// Backend drives an Ebiten window from a shared map view.
type Backend struct {
	view *mapview.View

	windowWidth  int
	windowHeight int

	lastUpdate time.Time

	// Go-to-tile prompt state. While active the prompt owns the
	// keyboard and camera key bindings are suspended.
	gotoActive bool
	gotoText   string

	invalidLogged bool
}

// New creates a backend with the given initial window size.
func New(width, height int) *Backend {
	return &Backend{
		windowWidth:  width,
		windowHeight: height,
	}
}

// Run opens the window and blocks until the player quits or the window
// is closed.
func (b *Backend) Run(view *mapview.View) error {
	b.view = view
	view.Resize(float64(b.windowWidth), float64(b.windowHeight))

	ebiten.SetWindowSize(b.windowWidth, b.windowHeight)
	ebiten.SetWindowTitle("World Map")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Opening map window (%dx%d)", b.windowWidth, b.windowHeight)
	return ebiten.RunGame(b)
}

// Layout reports the logical screen size and propagates window resizes
// to the view.
func (b *Backend) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != b.windowWidth || outsideHeight != b.windowHeight {
		b.windowWidth = outsideWidth
		b.windowHeight = outsideHeight
		b.view.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

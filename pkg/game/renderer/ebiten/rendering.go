package ebiten

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/leonelquinteros/gotext"

	"worldmap/pkg/engine/geom"
	"worldmap/pkg/game/renderer"
)

var colorBackground = color.RGBA{18, 20, 28, 255}

// Draw renders one frame from a consistent snapshot of the view (Ebiten
// interface).
func (b *Backend) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := b.view.Snapshot()
	if !snap.Viewport.Valid() {
		// No renderable camera yet, e.g. before the first layout.
		if !b.invalidLogged {
			b.invalidLogged = true
			log.Printf("Skipping frame: no valid viewport yet")
		}
		return
	}

	canvas := &drawCanvas{dst: screen, scale: snap.Viewport.Scale()}
	renderer.RenderTiles(canvas, snap.Grid, snap.Viewport)
	renderer.RenderMarkers(canvas, snap.Markers, snap.Viewport, snap.PulsePhase)
	canvas.Present()

	b.drawHUD(screen)
}

// drawHUD prints the hovered tile, the zoom level and the go-to prompt in
// the top-left corner.
func (b *Backend) drawHUD(screen *ebiten.Image) {
	vp := b.view.Viewport()

	hud := fmt.Sprintf("%s: %s", gotext.Get("Zoom"), vp.Zoom)

	x, y := ebiten.CursorPosition()
	scale := vp.Scale()
	tile := geom.ScreenToTile(float64(x)/scale, float64(y)/scale, vp.Origin())
	if tile.InBounds() {
		hud += fmt.Sprintf("  %s: %d,%d", gotext.Get("Tile"), tile.X, tile.Y)
	}

	if b.gotoActive {
		hud += fmt.Sprintf("\n%s: %s_", gotext.Get("Go to tile"), b.gotoText)
	}

	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

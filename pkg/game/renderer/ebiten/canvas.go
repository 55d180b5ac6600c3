package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawCanvas adapts an Ebiten image to the shared Canvas interface.
// Incoming coordinates are camera-space world units; the zoom scale is
// applied here, once, when rasterizing.
type drawCanvas struct {
	dst   *ebiten.Image
	scale float64
}

func (c *drawCanvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.dst,
		float32(x*c.scale), float32(y*c.scale),
		float32(w*c.scale), float32(h*c.scale),
		col, false)
}

func (c *drawCanvas) StrokeRect(x, y, w, h, strokeWidth float64, col color.Color) {
	vector.StrokeRect(c.dst,
		float32(x*c.scale), float32(y*c.scale),
		float32(w*c.scale), float32(h*c.scale),
		float32(strokeWidth), col, false)
}

func (c *drawCanvas) FillCircle(cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst,
		float32(cx*c.scale), float32(cy*c.scale),
		float32(r*c.scale), col, false)
}

func (c *drawCanvas) DrawText(x, y float64, text string, col color.Color) {
	// Debug text is fine for small marker labels; it stays readable at
	// every zoom level because it is not scaled.
	ebitenutil.DebugPrintAt(c.dst, text, int(x*c.scale), int(y*c.scale))
}

func (c *drawCanvas) Present() {
	// Ebiten presents the frame itself at the end of Draw.
}

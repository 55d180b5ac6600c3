package viewport

import (
	"math"

	"worldmap/pkg/engine/geom"
)

// Viewport is an immutable camera over the world. X and Y are the world
// coordinates of the top-left corner; Width and Height are the on-screen
// size in pixels. All mutating operations return a new value, so a
// snapshot handed to a render backend never changes under it.
type Viewport struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Zoom   ZoomLevel
}

// New returns a viewport of the given screen size at the map origin,
// clamped so it starts on the map.
func New(width, height float64, zoom ZoomLevel) Viewport {
	v := Viewport{Width: width, Height: height, Zoom: zoom}
	return v.Clamp()
}

// Scale returns the world-to-screen magnification.
func (v Viewport) Scale() float64 {
	return v.Zoom.Scale()
}

// WorldWidth returns how many world units the viewport spans horizontally.
func (v Viewport) WorldWidth() float64 {
	return v.Width / v.Scale()
}

// WorldHeight returns how many world units the viewport spans vertically.
func (v Viewport) WorldHeight() float64 {
	return v.Height / v.Scale()
}

// Origin returns the top-left corner in world coordinates.
func (v Viewport) Origin() geom.Point {
	return geom.Point{X: v.X, Y: v.Y}
}

// Valid reports whether the viewport can be rendered from: finite
// coordinates, positive dimensions and a defined zoom level.
func (v Viewport) Valid() bool {
	for _, f := range []float64{v.X, v.Y, v.Width, v.Height} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.Width > 0 && v.Height > 0 && v.Zoom.Valid()
}

// Clamp constrains the origin so the visible window stays on the map.
// On an axis where the map is smaller than the window, the map is
// centered instead. A zero-size viewport is returned unchanged; there
// is nothing meaningful to clamp against before the first resize.
func (v Viewport) Clamp() Viewport {
	if v.Width <= 0 || v.Height <= 0 {
		return v
	}
	v.X = clampAxis(v.X, v.WorldWidth(), geom.MapPixelWidth)
	v.Y = clampAxis(v.Y, v.WorldHeight(), geom.MapPixelHeight)
	return v
}

func clampAxis(origin, span, mapSpan float64) float64 {
	if span >= mapSpan {
		return (mapSpan - span) / 2
	}
	if origin < 0 {
		return 0
	}
	if max := mapSpan - span; origin > max {
		return max
	}
	return origin
}

// PanBy shifts the camera by a screen-space delta. Dragging right moves
// the world right under the cursor, so the origin moves the other way.
func (v Viewport) PanBy(dx, dy float64) Viewport {
	v.X -= dx / v.Scale()
	v.Y -= dy / v.Scale()
	return v.Clamp()
}

// CenterOn places the given tile at the middle of the viewport, then
// clamps back onto the map.
func (v Viewport) CenterOn(tile geom.TilePoint) Viewport {
	corner := geom.TileToWorld(tile.X, tile.Y)
	v.X = corner.X - v.WorldWidth()/2
	v.Y = corner.Y - v.WorldHeight()/2
	return v.Clamp()
}

// WithZoom switches to a new zoom level while keeping the world point at
// the viewport center fixed.
func (v Viewport) WithZoom(zoom ZoomLevel) Viewport {
	if !zoom.Valid() || zoom == v.Zoom {
		return v
	}
	cx := v.X + v.WorldWidth()/2
	cy := v.Y + v.WorldHeight()/2
	v.Zoom = zoom
	v.X = cx - v.WorldWidth()/2
	v.Y = cy - v.WorldHeight()/2
	return v.Clamp()
}

// Resize changes the on-screen size, keeping the origin stable.
func (v Viewport) Resize(width, height float64) Viewport {
	v.Width = width
	v.Height = height
	return v.Clamp()
}

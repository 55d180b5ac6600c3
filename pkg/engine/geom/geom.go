// Package geom provides the coordinate spaces used by the map: 1-based tile
// indices, world pixels, and pre-scale screen pixels. All conversions are
// pure functions; none of them hold state.
package geom

import "math"

// Map dimensions and tile geometry. These are fixed properties of the game
// world, not runtime configuration.
const (
	// TileSize is the side of one tile in world pixels.
	TileSize = 32

	// MapWidth and MapHeight are the world dimensions in tiles.
	MapWidth  = 150
	MapHeight = 150

	// MapPixelWidth and MapPixelHeight are the world dimensions in pixels.
	MapPixelWidth  = MapWidth * TileSize
	MapPixelHeight = MapHeight * TileSize
)

// Point is a position in world or screen pixel space.
type Point struct {
	X float64
	Y float64
}

// TilePoint is a 1-based tile index pair. Valid tiles have
// X in [1, MapWidth] and Y in [1, MapHeight].
type TilePoint struct {
	X int
	Y int
}

// InBounds reports whether the tile index pair addresses a real tile.
func (t TilePoint) InBounds() bool {
	return t.X >= 1 && t.X <= MapWidth && t.Y >= 1 && t.Y <= MapHeight
}

// TileToWorld returns the world-pixel position of the top-left corner of a
// tile. Tile (1,1) maps to world (0,0).
func TileToWorld(tx, ty int) Point {
	return Point{
		X: float64(tx-1) * TileSize,
		Y: float64(ty-1) * TileSize,
	}
}

// TileCenter returns the world-pixel position of the middle of a tile.
func TileCenter(tx, ty int) Point {
	p := TileToWorld(tx, ty)
	p.X += TileSize / 2
	p.Y += TileSize / 2
	return p
}

// WorldToTile returns the 1-based tile containing a world-pixel position.
// It is the exact inverse of TileToWorld for tile-aligned positions:
// WorldToTile(TileToWorld(x, y)) == (x, y) for every valid tile.
func WorldToTile(wx, wy float64) TilePoint {
	return TilePoint{
		X: int(math.Floor(wx/TileSize)) + 1,
		Y: int(math.Floor(wy/TileSize)) + 1,
	}
}

// WorldToScreen translates a world position into pre-scale screen space
// relative to the viewport origin. Scale is applied by the canvas transform
// at draw time, not here, so hit-testing stays a plain subtraction.
func WorldToScreen(wx, wy float64, origin Point) Point {
	return Point{X: wx - origin.X, Y: wy - origin.Y}
}

// ScreenToWorld is the inverse of WorldToScreen. The screen position must be
// in the same pre-scale space WorldToScreen produces; pointer pixels are
// divided by the viewport scale once, at the input boundary, before they
// reach this function.
func ScreenToWorld(sx, sy float64, origin Point) Point {
	return Point{X: sx + origin.X, Y: sy + origin.Y}
}

// ScreenToTile resolves a pre-scale screen position to the tile under it.
func ScreenToTile(sx, sy float64, origin Point) TilePoint {
	w := ScreenToWorld(sx, sy, origin)
	return WorldToTile(w.X, w.Y)
}

// ClampTile forces a tile index pair into the valid map range.
func ClampTile(t TilePoint) TilePoint {
	if t.X < 1 {
		t.X = 1
	}
	if t.X > MapWidth {
		t.X = MapWidth
	}
	if t.Y < 1 {
		t.Y = 1
	}
	if t.Y > MapHeight {
		t.Y = MapHeight
	}
	return t
}

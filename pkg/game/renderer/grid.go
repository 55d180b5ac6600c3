package renderer

import (
	"math"

	"worldmap/pkg/engine/geom"
	"worldmap/pkg/engine/world"
	"worldmap/pkg/game/viewport"
)

// TileRange is an inclusive rectangle of 1-based tile indices. An empty
// range has Max < Min on at least one axis.
type TileRange struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Empty reports whether the range contains no tiles.
func (r TileRange) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Count returns the number of tiles in the range.
func (r TileRange) Count() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// Contains reports whether the tile indices fall inside the range.
func (r TileRange) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// VisibleTiles returns the tiles whose world rectangles intersect the
// viewport. Tiles touching the window only at its far edge are excluded,
// so a 320px window at 1:1 scale covers exactly ten 32px tiles.
func VisibleTiles(v viewport.Viewport) TileRange {
	x0, y0 := v.X, v.Y
	x1 := v.X + v.WorldWidth()
	y1 := v.Y + v.WorldHeight()

	r := TileRange{
		MinX: int(math.Floor(x0/geom.TileSize)) + 1,
		MinY: int(math.Floor(y0/geom.TileSize)) + 1,
		MaxX: int(math.Ceil(x1 / geom.TileSize)),
		MaxY: int(math.Ceil(y1 / geom.TileSize)),
	}

	// Off-map portions of the window render as void, not tiles.
	r.MinX = maxInt(r.MinX, 1)
	r.MinY = maxInt(r.MinY, 1)
	r.MaxX = minInt(r.MaxX, geom.MapWidth)
	r.MaxY = minInt(r.MaxY, geom.MapHeight)
	return r
}

// RenderTiles draws every visible tile onto the canvas and returns how
// many were drawn.
func RenderTiles(c Canvas, grid *world.Grid, v viewport.Viewport) int {
	r := VisibleTiles(v)
	if r.Empty() {
		return 0
	}

	origin := v.Origin()
	drawn := 0
	for ty := r.MinY; ty <= r.MaxY; ty++ {
		for tx := r.MinX; tx <= r.MaxX; tx++ {
			tile, ok := grid.At(tx, ty)
			if !ok {
				continue
			}
			corner := geom.TileToWorld(tx, ty)
			pos := geom.WorldToScreen(corner.X, corner.Y, origin)
			style := StyleForTerrain(tile.Terrain)
			c.FillRect(pos.X, pos.Y, geom.TileSize, geom.TileSize, style.Fill)
			c.StrokeRect(pos.X, pos.Y, geom.TileSize, geom.TileSize, tileBorderWidth, style.Border)
			drawn++
		}
	}
	return drawn
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

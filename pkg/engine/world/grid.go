package world

import (
	"fmt"

	"worldmap/pkg/engine/geom"
)

// Grid is a complete, rectangular terrain snapshot with encapsulated tile
// storage. Rows are addressed grid[y-1][x-1]; the public accessors take
// 1-based tile indices.
type Grid struct {
	tiles  [][]Tile
	width  int
	height int
}

// NewGrid validates and wraps a full-size terrain snapshot. The snapshot
// must be exactly MapHeight rows of MapWidth tiles.
func NewGrid(tiles [][]Tile) (*Grid, error) {
	return NewGridSize(tiles, geom.MapWidth, geom.MapHeight)
}

// NewGridSize wraps a snapshot of arbitrary dimensions. Dimension mismatches
// are an error here, at the boundary, so rendering never has to re-check
// row lengths.
func NewGridSize(tiles [][]Tile, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if len(tiles) != height {
		return nil, fmt.Errorf("grid has %d rows, want %d", len(tiles), height)
	}
	for y, row := range tiles {
		if len(row) != width {
			return nil, fmt.Errorf("grid row %d has %d tiles, want %d", y+1, len(row), width)
		}
	}
	return &Grid{tiles: tiles, width: width, height: height}, nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int {
	return g.height
}

// At returns the tile at the given 1-based indices. The second return is
// false outside the grid; callers skip such tiles rather than failing.
func (g *Grid) At(x, y int) (Tile, bool) {
	if g == nil || x < 1 || x > g.width || y < 1 || y > g.height {
		return Tile{}, false
	}
	return g.tiles[y-1][x-1], true
}

// ForEach calls fn for every tile in row-major order.
func (g *Grid) ForEach(fn func(t Tile)) {
	if g == nil {
		return
	}
	for _, row := range g.tiles {
		for _, t := range row {
			fn(t)
		}
	}
}

// CenterTile returns the tile indices of the grid center.
func (g *Grid) CenterTile() geom.TilePoint {
	return geom.TilePoint{X: g.width/2 + 1, Y: g.height/2 + 1}
}

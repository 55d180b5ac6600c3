// Package renderer holds the backend-neutral rendering routines: tile
// culling, terrain styling and marker drawing shared by the graphical and
// terminal backends.
package renderer

import (
	"image/color"

	"worldmap/pkg/engine/world"
)

// TerrainStyle describes how one terrain category is drawn: a fill and
// border for graphical backends, and a glyph for the terminal.
type TerrainStyle struct {
	Fill   color.RGBA
	Border color.RGBA
	Glyph  rune
}

// Terrain palette - muted fills with slightly darker borders so the tile
// grid reads without dominating the markers.
var terrainStyles = map[world.TerrainCategory]TerrainStyle{
	world.TerrainPlains:    {Fill: color.RGBA{126, 160, 90, 255}, Border: color.RGBA{106, 138, 74, 255}, Glyph: '.'},
	world.TerrainForest:    {Fill: color.RGBA{62, 110, 58, 255}, Border: color.RGBA{48, 88, 46, 255}, Glyph: '♣'},
	world.TerrainHills:     {Fill: color.RGBA{150, 136, 92, 255}, Border: color.RGBA{126, 114, 76, 255}, Glyph: '∩'},
	world.TerrainMountain:  {Fill: color.RGBA{120, 116, 120, 255}, Border: color.RGBA{92, 88, 92, 255}, Glyph: '▲'},
	world.TerrainWater:     {Fill: color.RGBA{58, 96, 160, 255}, Border: color.RGBA{46, 78, 132, 255}, Glyph: '≈'},
	world.TerrainDesert:    {Fill: color.RGBA{206, 182, 122, 255}, Border: color.RGBA{176, 154, 100, 255}, Glyph: '~'},
	world.TerrainSwamp:     {Fill: color.RGBA{84, 102, 70, 255}, Border: color.RGBA{66, 82, 56, 255}, Glyph: '"'},
	world.TerrainRoad:      {Fill: color.RGBA{168, 152, 128, 255}, Border: color.RGBA{140, 126, 106, 255}, Glyph: '='},
	world.TerrainCity:      {Fill: color.RGBA{178, 170, 160, 255}, Border: color.RGBA{120, 114, 106, 255}, Glyph: '#'},
	world.TerrainWasteland: {Fill: color.RGBA{96, 88, 80, 255}, Border: color.RGBA{76, 70, 64, 255}, Glyph: '∴'},
}

// StyleForTerrain returns the style for a terrain category, falling back
// to the wasteland style for anything unknown.
func StyleForTerrain(t world.TerrainCategory) TerrainStyle {
	if s, ok := terrainStyles[t]; ok {
		return s
	}
	return terrainStyles[world.TerrainWasteland]
}

// Marker palette.
var (
	colorMarkerSelf          = color.RGBA{80, 255, 120, 255}  // Bright green for the local player
	colorMarkerDistinguished = color.RGBA{255, 210, 70, 255}  // Gold for the flag carrier
	colorMarkerOther         = color.RGBA{230, 230, 240, 255} // Off-white for everyone else
	colorMarkerGlow          = color.RGBA{255, 255, 255, 70}  // Translucent halo behind pulsing markers
	colorMarkerLabel         = color.RGBA{235, 235, 245, 255}
)

const (
	// markerBaseRadius is the default marker radius in world units, used
	// when a marker does not carry its own size.
	markerBaseRadius = 10.0

	// tileBorderWidth is the grid line thickness in world units.
	tileBorderWidth = 1.0

	// pulseAmplitude is the fractional radius swing of a pulsing marker.
	pulseAmplitude = 0.10
)

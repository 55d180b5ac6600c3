package world

// TerrainCategory classifies a tile for display purposes. The renderer maps
// each category to a color and icon; nothing in this package decides what a
// terrain means for gameplay.
type TerrainCategory int

const (
	TerrainPlains TerrainCategory = iota
	TerrainForest
	TerrainHills
	TerrainMountain
	TerrainWater
	TerrainDesert
	TerrainSwamp
	TerrainRoad
	TerrainCity
	TerrainWasteland

	terrainCategoryCount
)

var terrainNames = map[TerrainCategory]string{
	TerrainPlains:    "Plains",
	TerrainForest:    "Forest",
	TerrainHills:     "Hills",
	TerrainMountain:  "Mountain",
	TerrainWater:     "Water",
	TerrainDesert:    "Desert",
	TerrainSwamp:     "Swamp",
	TerrainRoad:      "Road",
	TerrainCity:      "City",
	TerrainWasteland: "Wasteland",
}

// String returns the display name of the category. Unknown values report as
// Wasteland so a bad snapshot degrades instead of crashing a draw path.
func (t TerrainCategory) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return terrainNames[TerrainWasteland]
}

// Valid reports whether the category is one of the known terrain kinds.
func (t TerrainCategory) Valid() bool {
	return t >= 0 && t < terrainCategoryCount
}

// TileFlags carries the optional per-tile markers as bitflags.
type TileFlags uint8

const (
	// FlagOccupied marks a tile that currently hosts an entity.
	FlagOccupied TileFlags = 1 << iota
	// FlagOwned marks a tile claimed by some player.
	FlagOwned
)

// Has reports whether all bits in mask are set.
func (f TileFlags) Has(mask TileFlags) bool {
	return f&mask == mask
}

// Tile is one cell of the world snapshot supplied by the caller. Indices are
// 1-based. Tiles are immutable once handed to the map; position updates
// arrive as a whole new grid.
type Tile struct {
	X       int
	Y       int
	Terrain TerrainCategory
	Flags   TileFlags
}

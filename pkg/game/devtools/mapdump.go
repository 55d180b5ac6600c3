// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"worldmap/pkg/engine/world"
)

const mapDumpFilename = "map.txt"

// terrainSymbols are the single-character symbols for the dump. Kept in
// ASCII so the file diffs cleanly.
var terrainSymbols = map[world.TerrainCategory]rune{
	world.TerrainPlains:    '.',
	world.TerrainForest:    'f',
	world.TerrainHills:     'h',
	world.TerrainMountain:  'M',
	world.TerrainWater:     '~',
	world.TerrainDesert:    'd',
	world.TerrainSwamp:     's',
	world.TerrainRoad:      '=',
	world.TerrainCity:      '#',
	world.TerrainWasteland: 'x',
}

func terrainSymbol(t world.TerrainCategory) rune {
	if r, ok := terrainSymbols[t]; ok {
		return r
	}
	return '?'
}

// DumpMapToFile writes a full debug dump to map.txt: metadata, legend,
// the terrain grid and the marker list. Format is human- and LLM-readable
// (sections, key: value, consistent structure).
func DumpMapToFile(g *world.Grid, markers []world.PlayerMarker, seed int64) (string, error) {
	if g == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== MAP DUMP DEBUG (terrain, markers) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", seed)
	fmt.Fprintf(f, "grid_width: %d\n", g.Width())
	fmt.Fprintf(f, "grid_height: %d\n", g.Height())
	fmt.Fprintf(f, "coordinate_system: x,y (1-based, x=horizontal, y=vertical)\n")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend (terrain symbols) ---")
	fmt.Fprintln(f, ". = plains  f = forest  h = hills  M = mountain  ~ = water  d = desert  s = swamp  = = road  # = city  x = wasteland  @ = marker")
	fmt.Fprintln(f, "")

	markerAt := make(map[[2]int]bool, len(markers))
	for _, m := range markers {
		markerAt[[2]int{m.Position.X, m.Position.Y}] = true
	}

	fmt.Fprintln(f, "--- Map ---")
	for y := 1; y <= g.Height(); y++ {
		for x := 1; x <= g.Width(); x++ {
			if markerAt[[2]int{x, y}] {
				fmt.Fprint(f, "@")
				continue
			}
			tile, _ := g.At(x, y)
			fmt.Fprintf(f, "%c", terrainSymbol(tile.Terrain))
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Markers (all with x,y and role) ---")
	for _, m := range markers {
		role := "player"
		switch {
		case m.IsSelf:
			role = "self"
		case m.IsDistinguished:
			role = "carrier"
		}
		fmt.Fprintf(f, "  x: %d y: %d id: %q username: %q role: %s\n",
			m.Position.X, m.Position.Y, m.EntityID, m.Username, role)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END MAP DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// Package generator builds the demo world: Perlin-noise terrain and a set
// of player markers, both deterministic from a seed.
package generator

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/google/uuid"

	"worldmap/pkg/engine/geom"
	"worldmap/pkg/engine/world"
)

// Perlin parameters. Two octave stacks, one for elevation and one for
// moisture, sampled at a low frequency so features span many tiles.
const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseFrequency = 0.045
)

// Elevation and moisture thresholds for terrain classification.
const (
	seaLevel      = 0.38
	lowlandLevel  = 0.62
	highlandLevel = 0.78

	swampMoisture  = 0.68
	forestMoisture = 0.52
	desertMoisture = 0.24
)

// Terrain generates the full map from a seed. The same seed always yields
// the same grid.
func Terrain(seed int64) (*world.Grid, error) {
	elevation := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	moisture := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed+1)

	tiles := make([][]world.Tile, geom.MapHeight)
	for y := range tiles {
		tiles[y] = make([]world.Tile, geom.MapWidth)
		for x := range tiles[y] {
			fx := float64(x) * noiseFrequency
			fy := float64(y) * noiseFrequency
			e := normalize(elevation.Noise2D(fx, fy))
			m := normalize(moisture.Noise2D(fx, fy))
			tiles[y][x] = world.Tile{
				X:       x + 1,
				Y:       y + 1,
				Terrain: classify(e, m),
			}
		}
	}

	carveRoads(tiles)
	return world.NewGrid(tiles)
}

// normalize maps Perlin output from [-1,1] to [0,1].
func normalize(n float64) float64 {
	return (n + 1) / 2
}

func classify(elevation, moisture float64) world.TerrainCategory {
	switch {
	case elevation < seaLevel:
		return world.TerrainWater
	case elevation < lowlandLevel:
		switch {
		case moisture > swampMoisture:
			return world.TerrainSwamp
		case moisture > forestMoisture:
			return world.TerrainForest
		case moisture < desertMoisture:
			return world.TerrainDesert
		default:
			return world.TerrainPlains
		}
	case elevation < highlandLevel:
		return world.TerrainHills
	default:
		return world.TerrainMountain
	}
}

// carveRoads lays a crossroad through the map center and founds a city
// where the roads meet. Water is left alone; the roads stop at the shore.
func carveRoads(tiles [][]world.Tile) {
	midY := geom.MapHeight / 2
	midX := geom.MapWidth / 2

	for x := 0; x < geom.MapWidth; x++ {
		if tiles[midY][x].Terrain != world.TerrainWater {
			tiles[midY][x].Terrain = world.TerrainRoad
		}
	}
	for y := 0; y < geom.MapHeight; y++ {
		if tiles[y][midX].Terrain != world.TerrainWater {
			tiles[y][midX].Terrain = world.TerrainRoad
		}
	}

	// The city occupies a 3x3 block around the crossing.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			t := &tiles[midY+dy][midX+dx]
			if t.Terrain != world.TerrainWater {
				t.Terrain = world.TerrainCity
				t.Flags |= world.FlagOwned
			}
		}
	}
}

var demoNames = []string{
	"ranger", "nomad", "cartographer", "scout", "pilgrim",
	"drifter", "surveyor", "courier", "warden", "tracker",
}

// Markers spawns count demo player markers on land tiles. The first one
// is the flag carrier. Positions are deterministic from the seed; entity
// ids are fresh UUIDs each run.
func Markers(g *world.Grid, seed int64, count int) []world.PlayerMarker {
	rng := rand.New(rand.NewSource(seed))
	markers := make([]world.PlayerMarker, 0, count)

	for i := 0; i < count; i++ {
		markers = append(markers, world.PlayerMarker{
			EntityID:        uuid.NewString(),
			Username:        demoNames[rng.Intn(len(demoNames))],
			Position:        landTile(g, rng),
			IsDistinguished: i == 0,
		})
	}
	return markers
}

// landTile picks a random non-water tile.
func landTile(g *world.Grid, rng *rand.Rand) geom.TilePoint {
	for {
		p := geom.TilePoint{
			X: 1 + rng.Intn(g.Width()),
			Y: 1 + rng.Intn(g.Height()),
		}
		if t, ok := g.At(p.X, p.Y); ok && t.Terrain != world.TerrainWater {
			return p
		}
	}
}

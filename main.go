package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/leonelquinteros/gotext"

	"worldmap/pkg/engine/geom"
	"worldmap/pkg/engine/input"
	"worldmap/pkg/engine/terminal"
	"worldmap/pkg/engine/world"
	"worldmap/pkg/game/config"
	"worldmap/pkg/game/devtools"
	"worldmap/pkg/game/generator"
	"worldmap/pkg/game/mapview"
	ebitenbackend "worldmap/pkg/game/renderer/ebiten"
	"worldmap/pkg/game/renderer/tui"
	"worldmap/pkg/game/viewport"
)

func main() {
	cfg := config.Current()

	backendName := flag.String("renderer", cfg.Renderer, "render backend: ebiten or tui")
	seed := flag.Int64("seed", 42, "world generation seed")
	markerCount := flag.Int("markers", 12, "number of demo players to spawn")
	locale := flag.String("locale", cfg.Locale, "interface locale")
	dumpMap := flag.Bool("dumpmap", false, "write the generated map to map.txt and exit")
	flag.Parse()

	gotext.Configure("locales", *locale, "default")
	applyBindings(cfg.Bindings)

	grid, err := generator.Terrain(*seed)
	if err != nil {
		log.Fatalf("Cannot generate terrain: %v", err)
	}
	markers := generator.Markers(grid, *seed, *markerCount)

	if *dumpMap {
		path, err := devtools.DumpMapToFile(grid, markers, *seed)
		if err != nil {
			log.Fatalf("Cannot dump map: %v", err)
		}
		log.Printf("Map dumped to %s", path)
		return
	}

	zoom, err := viewport.ParseZoomLevel(cfg.ZoomLevel)
	if err != nil {
		log.Printf("Ignoring saved zoom level: %v", err)
		zoom = viewport.ZoomZone
	}

	view := mapview.New(float64(cfg.WindowWidth), float64(cfg.WindowHeight), zoom, mapview.Callbacks{
		OnTileClick: func(tile geom.TilePoint) {
			log.Printf("Tile clicked: %d,%d", tile.X, tile.Y)
		},
		OnZoomChange: func(z viewport.ZoomLevel) {
			if err := cfg.SetZoomLevel(z.String()); err != nil {
				log.Printf("Could not save zoom preference: %v", err)
			}
		},
	})
	view.SetGrid(grid)
	view.SetMarkers(markers)
	view.SetPlayer(world.PlayerMarker{
		EntityID: uuid.NewString(),
		Username: "you",
		Position: grid.CenterTile(),
	})

	// Demo traffic: wander the remote players so the marker layer has
	// something to animate.
	go wanderMarkers(view, markers, *seed)

	var backend interface {
		Run(view *mapview.View) error
	}
	switch *backendName {
	case "tui":
		if !terminal.IsInteractive() {
			log.Fatalf("Cannot start the tui renderer: stdout is not a terminal")
		}
		backend = tui.New()
	case "ebiten":
		backend = ebitenbackend.New(cfg.WindowWidth, cfg.WindowHeight)
	default:
		log.Fatalf("Unknown renderer %q (want ebiten or tui)", *backendName)
	}

	log.Printf("Starting %s renderer (seed %d, %d markers)", *backendName, *seed, len(markers))
	if err := backend.Run(view); err != nil {
		log.Fatalf("Renderer exited: %v", err)
	}
}

// applyBindings installs the user's saved key bindings, keyed by action
// name the way the config file stores them.
func applyBindings(bindings map[string]string) {
	for name, code := range bindings {
		action, ok := input.ActionByName(name)
		if !ok {
			log.Printf("Ignoring binding for unknown action %q", name)
			continue
		}
		input.SetSingleBinding(action, code)
	}
}

// wanderMarkers nudges each remote marker one tile in a random direction
// every couple of seconds and pushes the full set back into the view.
func wanderMarkers(view *mapview.View, markers []world.PlayerMarker, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	current := append([]world.PlayerMarker(nil), markers...)

	for range time.Tick(2 * time.Second) {
		for i := range current {
			next := geom.TilePoint{
				X: current[i].Position.X + rng.Intn(3) - 1,
				Y: current[i].Position.Y + rng.Intn(3) - 1,
			}
			current[i].Position = geom.ClampTile(next)
		}
		view.SetMarkers(current)
	}
}

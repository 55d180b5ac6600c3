package mapview

import (
	"math"
	"testing"

	"worldmap/pkg/engine/geom"
	"worldmap/pkg/engine/input"
	"worldmap/pkg/engine/world"
	"worldmap/pkg/game/viewport"
)

func testGrid(t *testing.T) *world.Grid {
	t.Helper()
	tiles := make([][]world.Tile, geom.MapHeight)
	for y := range tiles {
		tiles[y] = make([]world.Tile, geom.MapWidth)
		for x := range tiles[y] {
			tiles[y][x] = world.Tile{X: x + 1, Y: y + 1, Terrain: world.TerrainPlains}
		}
	}
	g, err := world.NewGrid(tiles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func newTestView(t *testing.T, cb Callbacks) *View {
	t.Helper()
	v := New(640, 640, viewport.ZoomZone, cb)
	v.SetGrid(testGrid(t))
	return v
}

func TestSetPlayerFollowsPosition(t *testing.T) {
	v := newTestView(t, Callbacks{})
	v.SetPlayer(world.PlayerMarker{EntityID: "me", Position: geom.TilePoint{X: 75, Y: 75}})
	if got := v.Viewport().X; got != 2048 {
		t.Errorf("X = %v, want 2048", got)
	}

	// The camera follows the player whenever the position changes.
	v.SetPlayer(world.PlayerMarker{EntityID: "me", Position: geom.TilePoint{X: 10, Y: 10}})
	if got := v.Viewport().X; got != 0 {
		t.Errorf("X after move = %v, want 0 (recentered on the new position)", got)
	}

	// An update without movement leaves a browsing camera alone.
	v.CenterOnTile(geom.TilePoint{X: 75, Y: 75})
	v.SetPlayer(world.PlayerMarker{EntityID: "me", Position: geom.TilePoint{X: 10, Y: 10}})
	if got := v.Viewport().X; got != 2048 {
		t.Errorf("X after stationary update = %v, want 2048", got)
	}
}

func TestSetPlayerDefersToActiveGesture(t *testing.T) {
	v := newTestView(t, Callbacks{})
	v.SetPlayer(world.PlayerMarker{EntityID: "me", Position: geom.TilePoint{X: 75, Y: 75}})

	v.PointerDown(100, 100)
	v.PointerMove(150, 100) // now panning, origin at 1998

	// A position change mid-drag must not snatch the camera.
	v.SetPlayer(world.PlayerMarker{EntityID: "me", Position: geom.TilePoint{X: 10, Y: 10}})
	if got := v.Viewport().X; got != 1998 {
		t.Errorf("X during drag = %v, want 1998", got)
	}

	// Once the gesture ends the follow resumes on the next change.
	v.PointerUp(150, 100)
	v.SetPlayer(world.PlayerMarker{EntityID: "me", Position: geom.TilePoint{X: 10, Y: 10}})
	if got := v.Viewport().X; got != 0 {
		t.Errorf("X after gesture = %v, want 0", got)
	}
}

func TestClickResolvesTile(t *testing.T) {
	var clicked []geom.TilePoint
	v := newTestView(t, Callbacks{
		OnTileClick: func(tile geom.TilePoint) { clicked = append(clicked, tile) },
	})

	v.PointerDown(100, 100)
	v.PointerMove(102, 101) // inside the click threshold
	v.PointerUp(102, 101)

	if len(clicked) != 1 {
		t.Fatalf("clicks = %d, want 1", len(clicked))
	}
	vp := v.Viewport()
	want := geom.ScreenToTile(102/vp.Scale(), 101/vp.Scale(), vp.Origin())
	if clicked[0] != want {
		t.Errorf("clicked %+v, want %+v", clicked[0], want)
	}
}

func TestDragPansInsteadOfClicking(t *testing.T) {
	var clicks int
	v := newTestView(t, Callbacks{
		OnTileClick: func(geom.TilePoint) { clicks++ },
	})
	v.CenterOnTile(geom.TilePoint{X: 75, Y: 75})
	before := v.Viewport()

	v.PointerDown(100, 100)
	v.PointerMove(150, 100)
	v.PointerUp(150, 100)

	if clicks != 0 {
		t.Errorf("drag produced %d clicks", clicks)
	}
	after := v.Viewport()
	if got := after.X - before.X; got != -50 {
		t.Errorf("origin moved by %v, want -50", got)
	}
}

func TestPointerCancelDropsClick(t *testing.T) {
	var clicks int
	v := newTestView(t, Callbacks{
		OnTileClick: func(geom.TilePoint) { clicks++ },
	})
	v.PointerDown(100, 100)
	v.PointerCancel()
	v.PointerUp(100, 100)
	if clicks != 0 {
		t.Errorf("cancelled gesture produced %d clicks", clicks)
	}
}

func TestHandleIntentPansOneTile(t *testing.T) {
	v := newTestView(t, Callbacks{})
	v.CenterOnTile(geom.TilePoint{X: 75, Y: 75})
	before := v.Viewport()

	v.HandleIntent(input.Intent{Action: input.ActionPanEast})
	if got := v.Viewport().X - before.X; got != geom.TileSize {
		t.Errorf("east pan moved origin by %v, want %v", got, float64(geom.TileSize))
	}

	v.HandleIntent(input.Intent{Action: input.ActionPanNorth})
	if got := v.Viewport().Y - before.Y; got != -geom.TileSize {
		t.Errorf("north pan moved origin by %v, want %v", got, float64(-geom.TileSize))
	}
}

func TestHandleIntentZoomFiresCallback(t *testing.T) {
	var zooms []viewport.ZoomLevel
	v := newTestView(t, Callbacks{
		OnZoomChange: func(z viewport.ZoomLevel) { zooms = append(zooms, z) },
	})

	v.HandleIntent(input.Intent{Action: input.ActionZoomIn})
	if got := v.Viewport().Zoom; got != viewport.ZoomRegion {
		t.Errorf("zoom = %v, want Region", got)
	}
	if len(zooms) != 1 || zooms[0] != viewport.ZoomRegion {
		t.Errorf("zoom callbacks = %v, want [Region]", zooms)
	}

	// Already at the tightest level: no change, no callback.
	v.HandleIntent(input.Intent{Action: input.ActionZoomIn})
	if len(zooms) != 1 {
		t.Errorf("saturated zoom fired a callback: %v", zooms)
	}
}

func TestHandleIntentCenterPlayer(t *testing.T) {
	v := newTestView(t, Callbacks{})
	v.SetPlayer(world.PlayerMarker{EntityID: "me", Position: geom.TilePoint{X: 75, Y: 75}})
	v.CenterOnTile(geom.TilePoint{X: 10, Y: 10})

	v.HandleIntent(input.Intent{Action: input.ActionCenterPlayer})
	if got := v.Viewport().X; got != 2048 {
		t.Errorf("X = %v, want 2048", got)
	}
}

func TestSetMarkersReplacesWholesale(t *testing.T) {
	v := newTestView(t, Callbacks{})
	v.SetMarkers([]world.PlayerMarker{
		{EntityID: "a", Position: geom.TilePoint{X: 1, Y: 1}},
		{EntityID: "b", Position: geom.TilePoint{X: 2, Y: 2}},
	})
	v.SetMarkers([]world.PlayerMarker{
		{EntityID: "c", Position: geom.TilePoint{X: 3, Y: 3}},
	})

	snap := v.Snapshot()
	if len(snap.Markers) != 1 {
		t.Fatalf("markers = %d, want 1", len(snap.Markers))
	}
	if snap.Markers[0].EntityID != "c" {
		t.Errorf("marker = %s, want c", snap.Markers[0].EntityID)
	}
}

func TestSnapshotAppendsPlayerLast(t *testing.T) {
	v := newTestView(t, Callbacks{})
	v.SetMarkers([]world.PlayerMarker{{EntityID: "a", Position: geom.TilePoint{X: 1, Y: 1}}})
	v.SetPlayer(world.PlayerMarker{EntityID: "me", Position: geom.TilePoint{X: 5, Y: 5}})

	snap := v.Snapshot()
	if len(snap.Markers) != 2 {
		t.Fatalf("markers = %d, want 2", len(snap.Markers))
	}
	last := snap.Markers[len(snap.Markers)-1]
	if last.EntityID != "me" || !last.IsSelf {
		t.Errorf("last marker = %+v, want the self marker", last)
	}
}

func TestSnapshotIsolatedFromLaterUpdates(t *testing.T) {
	v := newTestView(t, Callbacks{})
	v.SetMarkers([]world.PlayerMarker{{EntityID: "a", Position: geom.TilePoint{X: 1, Y: 1}}})
	snap := v.Snapshot()
	v.SetMarkers(nil)
	if len(snap.Markers) != 1 {
		t.Errorf("snapshot mutated by later update: %v", snap.Markers)
	}
}

func TestAdvanceWrapsPhase(t *testing.T) {
	v := newTestView(t, Callbacks{})
	v.Advance(pulsePeriod * 2.25)
	snap := v.Snapshot()
	if snap.PulsePhase < 0 || snap.PulsePhase >= 1 {
		t.Fatalf("phase = %v, want [0,1)", snap.PulsePhase)
	}
	if math.Abs(snap.PulsePhase-0.25) > 1e-9 {
		t.Errorf("phase = %v, want 0.25", snap.PulsePhase)
	}
}

func TestDegenerateViewportFallsBackToLastGood(t *testing.T) {
	v := newTestView(t, Callbacks{})
	v.Resize(0, 0)
	vp := v.Viewport()
	if vp.Width != 640 || vp.Height != 640 {
		t.Errorf("viewport = %vx%v, want last good 640x640", vp.Width, vp.Height)
	}
	if !vp.Valid() {
		t.Error("render viewport should always be valid")
	}
}

func TestConsumeDirty(t *testing.T) {
	v := newTestView(t, Callbacks{})
	if !v.ConsumeDirty() {
		t.Error("fresh view should be dirty")
	}
	if v.ConsumeDirty() {
		t.Error("second consume should be clean")
	}
	v.HandleIntent(input.Intent{Action: input.ActionPanEast})
	if !v.ConsumeDirty() {
		t.Error("pan should dirty the view")
	}

	// Reporting an unchanged size must not force a redraw.
	v.Resize(640, 640)
	if v.ConsumeDirty() {
		t.Error("same-size resize should not dirty the view")
	}
	v.Resize(800, 600)
	if !v.ConsumeDirty() {
		t.Error("real resize should dirty the view")
	}
}

func TestKeyboardCapture(t *testing.T) {
	v := newTestView(t, Callbacks{})
	if v.KeyboardCaptured() {
		t.Error("keyboard should start uncaptured")
	}
	v.SetKeyboardCaptured(true)
	if !v.KeyboardCaptured() {
		t.Error("capture flag not set")
	}
}

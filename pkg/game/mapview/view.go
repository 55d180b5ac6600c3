// Package mapview owns the interactive state of the world map: the
// camera, the terrain snapshot, the player markers and the pointer and
// keyboard handling that drive them. Render backends read from it through
// Snapshot and never mutate it directly.
package mapview

import (
	"log"
	"math"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"worldmap/pkg/engine/geom"
	"worldmap/pkg/engine/input"
	"worldmap/pkg/engine/world"
	"worldmap/pkg/game/viewport"
)

// clickThreshold is how far, in screen pixels, the pointer may travel
// between press and release and still count as a click.
const clickThreshold = 4.0

// pulsePeriod is one full marker pulse, in seconds.
const pulsePeriod = 1.2

type pointerState int

const (
	pointerIdle pointerState = iota
	pointerPressed
	pointerPanning
)

// Callbacks are the caller-supplied hooks the view fires on interaction.
// Any of them may be nil. They are invoked while the view lock is held,
// so they must not call back into the view.
type Callbacks struct {
	OnTileClick      func(tile geom.TilePoint)
	OnViewportChange func(v viewport.Viewport)
	OnZoomChange     func(z viewport.ZoomLevel)
}

// Snapshot is an immutable copy of everything a backend needs to draw one
// frame.
type Snapshot struct {
	Grid       *world.Grid
	Markers    []world.PlayerMarker
	Viewport   viewport.Viewport
	PulsePhase float64
}

// View is the shared map session. All methods are safe for concurrent use;
// game updates arrive on one goroutine while a backend reads snapshots on
// another.
type View struct {
	mu sync.Mutex

	grid      *world.Grid
	player    *world.PlayerMarker
	markers   []world.PlayerMarker
	markerIDs mapset.Set[string]

	vp       viewport.Viewport
	lastGood viewport.Viewport

	pulsePhase float64

	pointer      pointerState
	downX, downY float64
	lastX, lastY float64

	lastCentered     geom.TilePoint
	keyboardCaptured bool
	dirty            bool

	callbacks Callbacks
}

// New creates a view with the given initial screen size and zoom level.
func New(width, height float64, zoom viewport.ZoomLevel, cb Callbacks) *View {
	vp := viewport.New(width, height, zoom)
	return &View{
		vp:        vp,
		lastGood:  vp,
		markerIDs: mapset.New[string](),
		callbacks: cb,
		dirty:     true,
	}
}

// SetGrid replaces the terrain snapshot.
func (v *View) SetGrid(g *world.Grid) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.grid = g
	v.dirty = true
}

// SetPlayer updates the local player marker. The camera follows the
// player: any update whose position differs from the last one it centered
// on recenters, unless a pointer gesture is in progress, in which case the
// user keeps control and the follow resumes on the next position change.
func (v *View) SetPlayer(m world.PlayerMarker) {
	v.mu.Lock()
	defer v.mu.Unlock()
	m.IsSelf = true
	v.player = &m
	v.dirty = true
	if m.Position != v.lastCentered && v.pointer == pointerIdle {
		v.lastCentered = m.Position
		v.applyViewport(v.vp.CenterOn(m.Position))
	}
}

// SetMarkers replaces the remote player markers wholesale. Partial updates
// are not supported; the server sends the full set each time.
func (v *View) SetMarkers(markers []world.PlayerMarker) {
	v.mu.Lock()
	defer v.mu.Unlock()

	next := mapset.New[string]()
	for _, m := range markers {
		next.Put(m.EntityID)
		if !v.markerIDs.Has(m.EntityID) {
			log.Printf("marker joined: %s (%s)", m.EntityID, m.Username)
		}
	}
	v.markerIDs.Each(func(id string) {
		if !next.Has(id) {
			log.Printf("marker left: %s", id)
		}
	})

	v.markerIDs = next
	v.markers = append(v.markers[:0:0], markers...)
	v.dirty = true
}

// Player returns a copy of the local player marker, if one is set.
func (v *View) Player() (world.PlayerMarker, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.player == nil {
		return world.PlayerMarker{}, false
	}
	return *v.player, true
}

// Viewport returns the current camera.
func (v *View) Viewport() viewport.Viewport {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renderViewport()
}

// Resize updates the on-screen size of the view. Passing the current size
// is a no-op, so callers may report their size every frame without
// dirtying the view.
func (v *View) Resize(width, height float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if width == v.vp.Width && height == v.vp.Height {
		return
	}
	v.applyViewport(v.vp.Resize(width, height))
}

// SetZoom jumps directly to a zoom level, preserving the view center.
func (v *View) SetZoom(z viewport.ZoomLevel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.setZoomLocked(z)
}

func (v *View) setZoomLocked(z viewport.ZoomLevel) {
	if !z.Valid() || z == v.vp.Zoom {
		return
	}
	v.applyViewport(v.vp.WithZoom(z))
	if v.callbacks.OnZoomChange != nil {
		v.callbacks.OnZoomChange(z)
	}
}

// CenterOnTile moves the camera so the given tile sits at the view center.
// Out-of-bounds tiles are clamped onto the map first.
func (v *View) CenterOnTile(tile geom.TilePoint) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applyViewport(v.vp.CenterOn(geom.ClampTile(tile)))
}

// PointerDown begins pointer tracking at the given screen position.
func (v *View) PointerDown(x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pointer = pointerPressed
	v.downX, v.downY = x, y
	v.lastX, v.lastY = x, y
}

// PointerMove updates pointer tracking. Once the pointer has traveled past
// the click threshold the gesture becomes a pan and the camera follows the
// cursor.
func (v *View) PointerMove(x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pointer == pointerIdle {
		return
	}

	if v.pointer == pointerPressed {
		if math.Hypot(x-v.downX, y-v.downY) > clickThreshold {
			v.pointer = pointerPanning
		}
	}
	if v.pointer == pointerPanning {
		v.applyViewport(v.vp.PanBy(x-v.lastX, y-v.lastY))
	}
	v.lastX, v.lastY = x, y
}

// PointerUp ends the gesture. A release that never became a pan is a
// click, resolved to the tile under the cursor.
func (v *View) PointerUp(x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	wasClick := v.pointer == pointerPressed
	v.pointer = pointerIdle

	if !wasClick {
		return
	}

	vp := v.renderViewport()
	scale := vp.Scale()
	tile := geom.ScreenToTile(x/scale, y/scale, vp.Origin())
	if !tile.InBounds() {
		return
	}
	if _, ok := v.grid.At(tile.X, tile.Y); !ok {
		return
	}
	if v.callbacks.OnTileClick != nil {
		v.callbacks.OnTileClick(tile)
	}
}

// PointerCancel aborts the gesture without producing a click.
func (v *View) PointerCancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pointer = pointerIdle
}

// HandleIntent applies a keyboard or wheel intent to the camera. Pan
// intents move the view by one tile. Intents the view does not own, such
// as quitting, are ignored here.
func (v *View) HandleIntent(it input.Intent) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// One tile of world travel, expressed as the screen-space delta
	// PanBy expects.
	step := geom.TileSize * v.vp.Scale()

	switch it.Action {
	case input.ActionPanNorth:
		v.applyViewport(v.vp.PanBy(0, step))
	case input.ActionPanSouth:
		v.applyViewport(v.vp.PanBy(0, -step))
	case input.ActionPanWest:
		v.applyViewport(v.vp.PanBy(step, 0))
	case input.ActionPanEast:
		v.applyViewport(v.vp.PanBy(-step, 0))
	case input.ActionZoomIn:
		v.setZoomLocked(v.vp.Zoom.StepIn())
	case input.ActionZoomOut:
		v.setZoomLocked(v.vp.Zoom.StepOut())
	case input.ActionCenterPlayer:
		if v.player != nil {
			v.lastCentered = v.player.Position
			v.applyViewport(v.vp.CenterOn(v.player.Position))
		}
	}
}

// SetKeyboardCaptured marks keyboard focus as owned by a text widget.
// Backends check this before translating key presses into camera intents.
func (v *View) SetKeyboardCaptured(captured bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.keyboardCaptured = captured
}

// KeyboardCaptured reports whether a text widget currently owns the
// keyboard.
func (v *View) KeyboardCaptured() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.keyboardCaptured
}

// Advance moves the pulse animation forward by dt seconds.
func (v *View) Advance(dt float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pulsePhase += dt / pulsePeriod
	v.pulsePhase -= math.Floor(v.pulsePhase)
	v.dirty = true
}

// ConsumeDirty reports whether anything changed since the last call and
// resets the flag. Backends that redraw on demand poll this.
func (v *View) ConsumeDirty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	d := v.dirty
	v.dirty = false
	return d
}

// Snapshot returns a consistent copy of the drawable state. The local
// player marker is appended last so it renders on top.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	markers := append([]world.PlayerMarker(nil), v.markers...)
	if v.player != nil {
		markers = append(markers, *v.player)
	}

	return Snapshot{
		Grid:       v.grid,
		Markers:    markers,
		Viewport:   v.renderViewport(),
		PulsePhase: v.pulsePhase,
	}
}

// applyViewport installs a new camera, remembering it as the last known
// good one when it is renderable. Callers hold the lock.
func (v *View) applyViewport(vp viewport.Viewport) {
	v.vp = vp
	v.dirty = true
	if vp.Valid() {
		v.lastGood = vp
	}
	if v.callbacks.OnViewportChange != nil {
		v.callbacks.OnViewportChange(vp)
	}
}

// renderViewport returns the camera to draw from, substituting the last
// known good one if the current camera is degenerate (for example before
// the first resize arrives). Callers hold the lock.
func (v *View) renderViewport() viewport.Viewport {
	if v.vp.Valid() {
		return v.vp
	}
	return v.lastGood
}

package viewport

import (
	"math"
	"math/rand"
	"testing"

	"worldmap/pkg/engine/geom"
)

func assertOnMap(t *testing.T, v Viewport) {
	t.Helper()
	if v.WorldWidth() < geom.MapPixelWidth {
		if v.X < 0 || v.X+v.WorldWidth() > geom.MapPixelWidth {
			t.Errorf("X=%v spans off the map (world width %v)", v.X, v.WorldWidth())
		}
	}
	if v.WorldHeight() < geom.MapPixelHeight {
		if v.Y < 0 || v.Y+v.WorldHeight() > geom.MapPixelHeight {
			t.Errorf("Y=%v spans off the map (world height %v)", v.Y, v.WorldHeight())
		}
	}
}

func TestCenterOnTile(t *testing.T) {
	v := New(640, 640, ZoomZone).CenterOn(geom.TilePoint{X: 75, Y: 75})
	if v.X != 2048 {
		t.Errorf("X = %v, want 2048", v.X)
	}
	if v.Y != 2048 {
		t.Errorf("Y = %v, want 2048", v.Y)
	}
}

func TestPanByDividesByScale(t *testing.T) {
	v := New(640, 640, ZoomRegion).CenterOn(geom.TilePoint{X: 75, Y: 75})
	before := v.X
	v = v.PanBy(64, 0)
	if got := v.X - before; got != -32 {
		t.Errorf("origin moved by %v, want -32", got)
	}
}

func TestClampKeepsWindowOnMap(t *testing.T) {
	v := New(640, 640, ZoomZone)
	v.X = -500
	v.Y = 1e6
	v = v.Clamp()
	if v.X != 0 {
		t.Errorf("X = %v, want 0", v.X)
	}
	if want := float64(geom.MapPixelHeight - 640); v.Y != want {
		t.Errorf("Y = %v, want %v", v.Y, want)
	}
}

func TestClampIsIdempotent(t *testing.T) {
	v := New(800, 600, ZoomQuadrant)
	v.X = 99999
	v.Y = -99999
	once := v.Clamp()
	twice := once.Clamp()
	if once != twice {
		t.Errorf("second clamp changed the viewport: %+v vs %+v", once, twice)
	}
}

func TestClampCentersSmallMap(t *testing.T) {
	// At FullMap scale the 4800px map is 1200 screen px; a larger window
	// letterboxes it in the middle.
	v := New(2000, 2000, ZoomFullMap)
	wantX := (geom.MapPixelWidth - 2000/0.25) / 2
	if v.X != wantX {
		t.Errorf("X = %v, want %v", v.X, wantX)
	}
	if v.X >= 0 {
		t.Error("expected a negative origin when centering a small map")
	}
}

func TestClampZeroSizeIsNoop(t *testing.T) {
	v := Viewport{X: 123, Y: 456, Zoom: ZoomZone}
	if got := v.Clamp(); got != v {
		t.Errorf("zero-size clamp changed the viewport: %+v", got)
	}
}

func TestWithZoomKeepsCenter(t *testing.T) {
	v := New(640, 640, ZoomZone).CenterOn(geom.TilePoint{X: 75, Y: 75})
	cx := v.X + v.WorldWidth()/2
	cy := v.Y + v.WorldHeight()/2
	z := v.WithZoom(ZoomRegion)
	if got := z.X + z.WorldWidth()/2; math.Abs(got-cx) > 1e-9 {
		t.Errorf("center X moved from %v to %v", cx, got)
	}
	if got := z.Y + z.WorldHeight()/2; math.Abs(got-cy) > 1e-9 {
		t.Errorf("center Y moved from %v to %v", cy, got)
	}
	if z.Zoom != ZoomRegion {
		t.Errorf("zoom = %v, want Region", z.Zoom)
	}
}

func TestWithZoomInvalidLevelIsNoop(t *testing.T) {
	v := New(640, 640, ZoomZone)
	if got := v.WithZoom(ZoomLevel(42)); got != v {
		t.Errorf("invalid zoom changed the viewport: %+v", got)
	}
}

func TestResizeKeepsOriginStable(t *testing.T) {
	v := New(640, 640, ZoomZone).CenterOn(geom.TilePoint{X: 75, Y: 75})
	r := v.Resize(320, 320)
	if r.Width != 320 || r.Height != 320 {
		t.Errorf("size = %vx%v, want 320x320", r.Width, r.Height)
	}
	if r.X != v.X || r.Y != v.Y {
		t.Errorf("origin moved on resize: (%v,%v) vs (%v,%v)", r.X, r.Y, v.X, v.Y)
	}
}

func TestRandomOperationsStayOnMap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := New(800, 600, ZoomZone)
	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			v = v.PanBy(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		case 1:
			v = v.CenterOn(geom.TilePoint{X: 1 + rng.Intn(geom.MapWidth), Y: 1 + rng.Intn(geom.MapHeight)})
		case 2:
			v = v.WithZoom(ZoomLevel(rng.Intn(4)))
		case 3:
			v = v.Resize(100+rng.Float64()*1000, 100+rng.Float64()*1000)
		}
		if !v.Valid() {
			t.Fatalf("viewport became invalid at step %d: %+v", i, v)
		}
		assertOnMap(t, v)
	}
}

func TestValid(t *testing.T) {
	if !New(640, 480, ZoomZone).Valid() {
		t.Error("fresh viewport should be valid")
	}
	bad := Viewport{X: math.NaN(), Width: 640, Height: 480, Zoom: ZoomZone}
	if bad.Valid() {
		t.Error("NaN origin should be invalid")
	}
	zero := Viewport{Zoom: ZoomZone}
	if zero.Valid() {
		t.Error("zero-size viewport should be invalid")
	}
	wrongZoom := Viewport{Width: 640, Height: 480, Zoom: ZoomLevel(9)}
	if wrongZoom.Valid() {
		t.Error("undefined zoom level should be invalid")
	}
}

package viewport

import "fmt"

// ZoomLevel is a named magnification step. Levels are ordered from widest
// to tightest so stepping in/out is an increment on the underlying value.
type ZoomLevel int

const (
	ZoomFullMap ZoomLevel = iota
	ZoomQuadrant
	ZoomZone
	ZoomRegion

	zoomLevelCount
)

var zoomScales = map[ZoomLevel]float64{
	ZoomFullMap:  0.25,
	ZoomQuadrant: 0.5,
	ZoomZone:     1.0,
	ZoomRegion:   2.0,
}

var zoomNames = map[ZoomLevel]string{
	ZoomFullMap:  "FullMap",
	ZoomQuadrant: "Quadrant",
	ZoomZone:     "Zone",
	ZoomRegion:   "Region",
}

// Valid reports whether z is one of the defined levels.
func (z ZoomLevel) Valid() bool {
	return z >= ZoomFullMap && z < zoomLevelCount
}

// Scale returns the world-to-screen magnification for this level.
func (z ZoomLevel) Scale() float64 {
	s, ok := zoomScales[z]
	if !ok {
		panic(fmt.Sprintf("viewport: invalid zoom level %d", int(z)))
	}
	return s
}

func (z ZoomLevel) String() string {
	if name, ok := zoomNames[z]; ok {
		return name
	}
	return fmt.Sprintf("ZoomLevel(%d)", int(z))
}

// StepIn returns the next tighter level, saturating at ZoomRegion.
func (z ZoomLevel) StepIn() ZoomLevel {
	if z >= ZoomRegion {
		return ZoomRegion
	}
	return z + 1
}

// StepOut returns the next wider level, saturating at ZoomFullMap.
func (z ZoomLevel) StepOut() ZoomLevel {
	if z <= ZoomFullMap {
		return ZoomFullMap
	}
	return z - 1
}

// ParseZoomLevel maps a level name back to its value, for configuration.
func ParseZoomLevel(name string) (ZoomLevel, error) {
	for z, n := range zoomNames {
		if n == name {
			return z, nil
		}
	}
	return ZoomZone, fmt.Errorf("unknown zoom level %q", name)
}

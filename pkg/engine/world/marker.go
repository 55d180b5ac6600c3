package world

import "worldmap/pkg/engine/geom"

// PlayerMarker is a live position marker for an entity on the map. Marker
// lists are replaced wholesale on every update from the caller; a position
// change is an overwrite, not a delta.
type PlayerMarker struct {
	EntityID string
	Username string
	Position geom.TilePoint

	// IsSelf marks the viewing player's own marker.
	IsSelf bool

	// IsDistinguished marks a special entity (the "carrier") that gets the
	// accent style and pulse animation.
	IsDistinguished bool

	// Size is an optional radius override in world pixels; 0 means default.
	Size float64
}

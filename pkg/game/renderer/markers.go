package renderer

import (
	"image/color"
	"math"

	"worldmap/pkg/engine/geom"
	"worldmap/pkg/engine/world"
	"worldmap/pkg/game/viewport"
)

// MarkerStyle is the resolved appearance of one player marker.
type MarkerStyle struct {
	Fill    color.RGBA
	Radius  float64
	Pulses  bool
	Labeled bool
}

// StyleForMarker resolves a marker's color, base radius and whether it
// pulses and carries a name label. The local player and distinguished
// players pulse and are labeled; everyone else renders as an anonymous
// steady dot.
func StyleForMarker(m world.PlayerMarker) MarkerStyle {
	s := MarkerStyle{Fill: colorMarkerOther, Radius: m.Size}
	if s.Radius <= 0 {
		s.Radius = markerBaseRadius
	}
	switch {
	case m.IsSelf:
		s.Fill = colorMarkerSelf
		s.Pulses = true
		s.Labeled = true
	case m.IsDistinguished:
		s.Fill = colorMarkerDistinguished
		s.Pulses = true
		s.Labeled = true
	}
	return s
}

// PulseScale returns the radius multiplier for a pulsing marker at the
// given phase, where phase runs 0..1 over one pulse period. The swing is
// a gentle sine so the marker breathes rather than blinks.
func PulseScale(phase float64) float64 {
	return 1 + pulseAmplitude*math.Sin(2*math.Pi*phase)
}

// RenderMarkers draws the markers that fall inside the viewport and
// returns how many were drawn. phase drives the pulse animation for the
// markers that have one.
func RenderMarkers(c Canvas, markers []world.PlayerMarker, v viewport.Viewport, phase float64) int {
	visible := VisibleTiles(v)
	if visible.Empty() {
		return 0
	}

	origin := v.Origin()
	drawn := 0
	for _, m := range markers {
		if !m.Position.InBounds() || !visible.Contains(m.Position.X, m.Position.Y) {
			continue
		}

		style := StyleForMarker(m)
		radius := style.Radius
		if style.Pulses {
			radius *= PulseScale(phase)
		}

		center := geom.TileCenter(m.Position.X, m.Position.Y)
		pos := geom.WorldToScreen(center.X, center.Y, origin)

		if style.Pulses {
			c.FillCircle(pos.X, pos.Y, radius*1.6, colorMarkerGlow)
		}
		c.FillCircle(pos.X, pos.Y, radius, style.Fill)
		if style.Labeled && m.Username != "" {
			c.DrawText(pos.X+radius+2, pos.Y-radius, m.Username, colorMarkerLabel)
		}
		drawn++
	}
	return drawn
}

package renderer

import "image/color"

// Canvas is the drawing surface a backend hands to the shared rendering
// routines. Coordinates are camera-space: world units relative to the
// viewport origin. The backend applies the zoom scale when rasterizing,
// so the routines here never multiply by it.
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.Color)

	// StrokeRect outlines an axis-aligned rectangle.
	StrokeRect(x, y, w, h, strokeWidth float64, c color.Color)

	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c color.Color)

	// DrawText draws a small label with its top-left at (x, y).
	DrawText(x, y float64, text string, c color.Color)

	// Present flushes the frame. Backends that draw directly to a live
	// surface may treat this as a no-op.
	Present()
}

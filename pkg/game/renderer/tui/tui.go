// Package tui provides the terminal backend for the world map. It renders
// a window of tiles as colored glyphs, one terminal cell per tile, and
// reads camera commands from the keyboard between frames.
package tui

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"worldmap/pkg/engine/geom"
	engineinput "worldmap/pkg/engine/input"
	"worldmap/pkg/engine/terminal"
	"worldmap/pkg/engine/world"
	"worldmap/pkg/game/mapview"
	"worldmap/pkg/game/renderer"
	"worldmap/pkg/game/viewport"
)

// reserved rows for the status line and the input prompt.
const chromeRows = 3

// Backend renders the map into the terminal and polls stdin for commands.
type Backend struct {
	colorSelf          color.Style
	colorDistinguished color.Style
	colorOther         color.Style
	colorStatus        color.Style
}

// New creates a terminal backend.
func New() *Backend {
	return &Backend{
		colorSelf:          color.Style{color.FgGreen, color.OpBold},
		colorDistinguished: color.Style{color.FgYellow, color.OpBold},
		colorOther:         color.Style{color.FgWhite, color.OpBold},
		colorStatus:        color.Style{color.FgCyan},
	}
}

// Run renders frames and blocks on keyboard input until the player quits.
func (t *Backend) Run(view *mapview.View) error {
	for {
		cols, rows := terminal.GetSize()
		mapRows := rows - chromeRows
		if mapRows < 1 {
			mapRows = 1
		}

		// Give the camera a matching pixel size so clamping and
		// centering behave like the graphical backend.
		view.Resize(float64(cols*geom.TileSize), float64(mapRows*geom.TileSize))

		// Redraw only when something changed; an unbound key or a
		// saturated zoom leaves the previous frame up.
		if view.ConsumeDirty() {
			t.renderFrame(view.Snapshot(), cols, mapRows)
		}

		code := engineinput.GetInputWithArrows()
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceTerminal,
			Code:   code,
		}))

		switch intent.Action {
		case engineinput.ActionQuit:
			return nil
		case engineinput.ActionGoto:
			t.promptGoto(view)
		default:
			view.HandleIntent(intent)
		}
	}
}

// renderFrame draws a cols x rows window of tiles centered on the camera.
func (t *Backend) renderFrame(snap mapview.Snapshot, cols, rows int) {
	// Clear and home.
	fmt.Print("\033[2J\033[H")

	center := centerTile(snap.Viewport)
	minX := center.X - cols/2
	minY := center.Y - rows/2

	markers := make(map[geom.TilePoint]world.PlayerMarker, len(snap.Markers))
	for _, m := range snap.Markers {
		markers[m.Position] = m
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pos := geom.TilePoint{X: minX + col, Y: minY + row}
			if m, ok := markers[pos]; ok {
				sb.WriteString(t.markerGlyph(m))
				continue
			}
			tile, ok := snap.Grid.At(pos.X, pos.Y)
			if !ok {
				sb.WriteByte(' ')
				continue
			}
			style := renderer.StyleForTerrain(tile.Terrain)
			fill := style.Fill
			sb.WriteString(color.RGB(fill.R, fill.G, fill.B).Sprint(string(style.Glyph)))
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())

	status := fmt.Sprintf("%s: %d,%d  %s: %s",
		gotext.Get("Center"), center.X, center.Y,
		gotext.Get("Zoom"), snap.Viewport.Zoom)
	fmt.Println(t.colorStatus.Sprint(status))
	fmt.Printf("%s: %s/%s/%s/%s  %s: %s/%s  %s: %s  %s: %s  %s: %s > ",
		gotext.Get("Move"),
		keyHint(engineinput.ActionPanNorth), keyHint(engineinput.ActionPanWest),
		keyHint(engineinput.ActionPanSouth), keyHint(engineinput.ActionPanEast),
		gotext.Get("Zoom"), keyHint(engineinput.ActionZoomIn), keyHint(engineinput.ActionZoomOut),
		gotext.Get("Center"), keyHint(engineinput.ActionCenterPlayer),
		gotext.Get("Go to"), keyHint(engineinput.ActionGoto),
		gotext.Get("Quit"), keyHint(engineinput.ActionQuit))
}

// keyHint picks the shortest code bound to an action, for the help line.
// Rebinding through the config file shows up here automatically.
func keyHint(action engineinput.Action) string {
	codes := engineinput.GetBindingsByAction()[action]
	if len(codes) == 0 {
		return "?"
	}
	best := codes[0]
	for _, c := range codes[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

func (t *Backend) markerGlyph(m world.PlayerMarker) string {
	switch {
	case m.IsSelf:
		return t.colorSelf.Sprint("@")
	case m.IsDistinguished:
		return t.colorDistinguished.Sprint("&")
	default:
		return t.colorOther.Sprint("o")
	}
}

// promptGoto reads a tile reference and recenters the camera on it.
func (t *Backend) promptGoto(view *mapview.View) {
	view.SetKeyboardCaptured(true)
	defer view.SetKeyboardCaptured(false)

	fmt.Print(gotext.Get("Go to tile (x,y)") + ": ")
	line := engineinput.GetInput()

	parts := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != 2 {
		return
	}
	var x, y int
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &x, &y); err != nil {
		return
	}
	view.CenterOnTile(geom.TilePoint{X: x, Y: y})
}

// centerTile resolves the tile at the middle of the viewport.
func centerTile(v viewport.Viewport) geom.TilePoint {
	cx := v.X + v.WorldWidth()/2
	cy := v.Y + v.WorldHeight()/2
	return geom.ClampTile(geom.WorldToTile(cx, cy))
}

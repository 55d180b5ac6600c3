package ebiten

import (
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"worldmap/pkg/engine/geom"
	engineinput "worldmap/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the raw codes the binding layer
// understands.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyArrowLeft:      "arrow_left",
	ebiten.KeyArrowRight:     "arrow_right",
	ebiten.KeyW:              "w",
	ebiten.KeyA:              "a",
	ebiten.KeyS:              "s",
	ebiten.KeyD:              "d",
	ebiten.KeyEqual:          "=",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyHome:           "home",
	ebiten.KeyC:              "c",
	ebiten.KeyH:              "h",
	ebiten.KeyG:              "g",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
}

// Update advances the animation clock and translates device input into
// view operations (Ebiten interface).
func (b *Backend) Update() error {
	now := time.Now()
	if !b.lastUpdate.IsZero() {
		b.view.Advance(now.Sub(b.lastUpdate).Seconds())
	}
	b.lastUpdate = now

	if b.gotoActive {
		b.updateGotoPrompt()
		return nil
	}

	if err := b.updateKeyboard(); err != nil {
		return err
	}
	b.updateWheel()
	b.updatePointer()
	return nil
}

func (b *Backend) updateKeyboard() error {
	for key, code := range keyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		raw := engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		switch intent.Action {
		case engineinput.ActionQuit:
			return ebiten.Termination
		case engineinput.ActionGoto:
			b.openGotoPrompt()
		default:
			b.view.HandleIntent(intent)
		}
	}
	return nil
}

func (b *Backend) updateWheel() {
	_, wy := ebiten.Wheel()
	code := ""
	switch {
	case wy > 0:
		code = "wheel_up"
	case wy < 0:
		code = "wheel_down"
	default:
		return
	}
	raw := engineinput.RawInput{
		Device:    engineinput.DeviceMouse,
		Code:      code,
		Timestamp: time.Now(),
	}
	b.view.HandleIntent(engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)))
}

func (b *Backend) updatePointer() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		b.view.PointerDown(fx, fy)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		b.view.PointerMove(fx, fy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		b.view.PointerUp(fx, fy)
	}
}

func (b *Backend) openGotoPrompt() {
	b.gotoActive = true
	b.gotoText = ""
	b.view.SetKeyboardCaptured(true)
}

func (b *Backend) closeGotoPrompt() {
	b.gotoActive = false
	b.gotoText = ""
	b.view.SetKeyboardCaptured(false)
}

// updateGotoPrompt collects typed text for the go-to-tile prompt. While
// the prompt is open every key belongs to it, never to the camera.
func (b *Backend) updateGotoPrompt() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if (r >= '0' && r <= '9') || r == ',' || r == ' ' {
			b.gotoText += string(r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(b.gotoText) > 0 {
		b.gotoText = b.gotoText[:len(b.gotoText)-1]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		b.closeGotoPrompt()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if tile, ok := parseTileRef(b.gotoText); ok {
			b.view.CenterOnTile(tile)
		}
		b.closeGotoPrompt()
	}
}

// parseTileRef parses "x,y" (or "x y") into tile indices.
func parseTileRef(s string) (geom.TilePoint, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != 2 {
		return geom.TilePoint{}, false
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		return geom.TilePoint{}, false
	}
	return geom.TilePoint{X: x, Y: y}, true
}

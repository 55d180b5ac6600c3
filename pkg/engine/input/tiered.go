package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high-level intent against the map view.
type Action int

const (
	ActionNone Action = iota

	// Camera movement
	ActionPanNorth
	ActionPanSouth
	ActionPanWest
	ActionPanEast

	// Camera zoom
	ActionZoomIn
	ActionZoomOut

	// Meta / UI
	ActionCenterPlayer // Snap the camera back onto the player (Home)
	ActionGoto         // Open the go-to-tile prompt
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants
// to do with the camera.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "KeyW", "arrow_up", "wheel_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after deduplication.
// The underlying libraries (Ebiten's inpututil, terminal raw mode) already
// emit one event per press, but the distinct type keeps the layering
// explicit and leaves room for key-repeat shaping later.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Panning (arrows, WASD, compass words for the terminal)
	"arrow_up":    ActionPanNorth,
	"w":           ActionPanNorth,
	"north":       ActionPanNorth,
	"arrow_down":  ActionPanSouth,
	"s":           ActionPanSouth,
	"south":       ActionPanSouth,
	"arrow_left":  ActionPanWest,
	"a":           ActionPanWest,
	"west":        ActionPanWest,
	"arrow_right": ActionPanEast,
	"d":           ActionPanEast,
	"east":        ActionPanEast,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"wheel_up":        ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
	"wheel_down":      ActionZoomOut,

	// Recenter on the player
	"home":   ActionCenterPlayer,
	"center": ActionCenterPlayer,
	"c":      ActionCenterPlayer,
	"h":      ActionCenterPlayer,

	// Go-to-tile prompt
	"g":    ActionGoto,
	"goto": ActionGoto,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPanNorth:
		return "Pan North"
	case ActionPanSouth:
		return "Pan South"
	case ActionPanWest:
		return "Pan West"
	case ActionPanEast:
		return "Pan East"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionCenterPlayer:
		return "Center On Player"
	case ActionGoto:
		return "Go To Tile"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// allActions lists every bindable action once, for name lookups.
var allActions = []Action{
	ActionPanNorth, ActionPanSouth, ActionPanWest, ActionPanEast,
	ActionZoomIn, ActionZoomOut,
	ActionCenterPlayer, ActionGoto, ActionQuit,
}

// ActionByName resolves a name produced by ActionName back to its action.
func ActionByName(name string) (Action, bool) {
	for _, a := range allActions {
		if ActionName(a) == name {
			return a, true
		}
	}
	return ActionNone, false
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// reservedCodes can never be rebound away; the camera must always be
// reachable from the arrow keys and the wheel.
var reservedCodes = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"wheel_up":    true,
	"wheel_down":  true,
}

// SetSingleBinding replaces all non-reserved bindings for the given action
// with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		bindings[code] = action
	}
}

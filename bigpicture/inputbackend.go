package bigpicture

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps each control to the keyboard keys that drive it
var keyBindings = [controlCount][]ebiten.Key{
	ControlLeft:         {ebiten.KeyArrowLeft},
	ControlRight:        {ebiten.KeyArrowRight},
	ControlLaunch:       {ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace},
	ControlPaneForward:  {ebiten.KeyArrowDown, ebiten.KeyPageDown},
	ControlPaneBackward: {ebiten.KeyArrowUp, ebiten.KeyPageUp},
	ControlBack:         {ebiten.KeyEscape, ebiten.KeyBackspace},
	ControlMenu:         {ebiten.KeyF10, ebiten.KeyM},
}

// padBindings maps each control to standard gamepad buttons
var padBindings = [controlCount][]ebiten.StandardGamepadButton{
	ControlLeft:         {ebiten.StandardGamepadButtonLeftLeft},
	ControlRight:        {ebiten.StandardGamepadButtonLeftRight},
	ControlLaunch:       {ebiten.StandardGamepadButtonRightBottom},
	ControlPaneForward:  {ebiten.StandardGamepadButtonFrontTopRight, ebiten.StandardGamepadButtonLeftBottom},
	ControlPaneBackward: {ebiten.StandardGamepadButtonFrontTopLeft, ebiten.StandardGamepadButtonLeftTop},
	ControlBack:         {ebiten.StandardGamepadButtonRightRight, ebiten.StandardGamepadButtonCenterLeft},
	ControlMenu:         {ebiten.StandardGamepadButtonCenterRight},
}

// mouseBindings maps controls to mouse buttons
var mouseBindings = map[Control]ebiten.MouseButton{
	ControlLaunch:      ebiten.MouseButtonLeft,
	ControlPaneForward: ebiten.MouseButtonRight,
}

// EbitenInput reads keyboard, the first gamepad and the mouse through
// ebiten. Level state is compared with the previous frame so each control
// reports one down and one up event however many devices press it.
type EbitenInput struct {
	pressed [controlCount]bool

	// wheelAccum carries fractional scroll (touchpads) between frames
	wheelAccum float64
	stickSent  bool
}

// NewEbitenInput creates the ebiten input backend
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll returns the input changes since the previous call.
// It must be called from ebiten's Update.
func (e *EbitenInput) Poll() []Event {
	var events []Event

	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	hasGamepad := len(gamepadIDs) > 0
	var gamepadID ebiten.GamepadID
	if hasGamepad {
		gamepadID = gamepadIDs[0]
	}

	for c := Control(0); c < controlCount; c++ {
		down, dev := e.controlPressed(c, hasGamepad, gamepadID)
		if down == e.pressed[c] {
			continue
		}
		e.pressed[c] = down
		if down {
			ev := ControlDown(c)
			ev.Device = dev
			events = append(events, ev)
		} else {
			events = append(events, ControlUp(c))
		}
	}

	if hasGamepad && ebiten.IsStandardGamepadLayoutAvailable(gamepadID) {
		x := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		events = append(events, StickMoved(x))
		e.stickSent = true
	} else if e.stickSent {
		// Gamepad went away; report neutral so the router re-arms
		events = append(events, StickMoved(0))
		e.stickSent = false
	}

	_, dy := ebiten.Wheel()
	e.wheelAccum += dy
	if ticks := int(e.wheelAccum); ticks != 0 {
		events = append(events, WheelScrolled(ticks))
		e.wheelAccum -= float64(ticks)
	}
	if math.Abs(e.wheelAccum) < 1e-9 {
		e.wheelAccum = 0
	}

	return events
}

// controlPressed reports whether any device holds c, and which one
func (e *EbitenInput) controlPressed(c Control, hasGamepad bool, id ebiten.GamepadID) (bool, Device) {
	for _, key := range keyBindings[c] {
		if ebiten.IsKeyPressed(key) {
			return true, DeviceKeyboard
		}
	}
	if hasGamepad {
		for _, btn := range padBindings[c] {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true, DeviceGamepad
			}
		}
	}
	if btn, ok := mouseBindings[c]; ok && ebiten.IsMouseButtonPressed(btn) {
		return true, DeviceMouse
	}
	return false, DeviceKeyboard
}

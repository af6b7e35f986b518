package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding is the set of keys and standard gamepad buttons that trigger one action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

var (
	MoveLeft = Binding{
		Keys:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	}
	MoveRight = Binding{
		Keys:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	}
	Inventory = Binding{
		Keys:    []ebiten.Key{ebiten.KeyI},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	}
	Map = Binding{
		Keys:    []ebiten.Key{ebiten.KeyM},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	}
	Back = Binding{
		Keys:    []ebiten.Key{ebiten.KeyEscape},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	}
)

// Pressed reports whether any input of the binding is held.
func (b Binding) Pressed() bool {
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, g := range standardGamepads() {
		for _, button := range b.Buttons {
			if ebiten.IsStandardGamepadButtonPressed(g, button) {
				return true
			}
		}
	}
	return false
}

// JustPressed reports whether any input of the binding went down this tick.
func (b Binding) JustPressed() bool {
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, g := range standardGamepads() {
		for _, button := range b.Buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(g, button) {
				return true
			}
		}
	}
	return false
}

// standardGamepads lists connected gamepads with a standard layout. Others are ignored
// since their button numbering is unknown.
func standardGamepads() []ebiten.GamepadID {
	var ids []ebiten.GamepadID
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			ids = append(ids, g)
		}
	}
	return ids
}

// CursorJustClicked reports the cursor position when the left mouse button or a touch
// went down this tick.
func CursorJustClicked() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	if touches := inpututil.AppendJustPressedTouchIDs(nil); len(touches) > 0 {
		x, y = ebiten.TouchPosition(touches[0])
		return x, y, true
	}
	return 0, 0, false
}

package game

import (
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/kinematic"
)

// MoveCommand is one step of held-key movement.
type MoveCommand struct {
	Direction kinematic.Direction
}

// ToggleOverlayCommand opens or closes an overlay.
type ToggleOverlayCommand struct {
	Overlay types.Overlay
}

// EscapeCommand closes the open overlays, or leaves the street when none is open.
type EscapeCommand struct{}

// StartCommand begins a new game from the menu.
type StartCommand struct{}

// UpgradeSkillCommand spends a free point on a skill.
type UpgradeSkillCommand struct {
	Skill types.Skill
}

// SelectLocationCommand picks a travel destination on the map.
type SelectLocationCommand struct {
	LocationID int
}

// ChooseCommand picks the Nth entry of the open overlay, counting from 1.
// With the map open it selects a location. With only the inventory open it upgrades a skill.
type ChooseCommand struct {
	Index int
}

// TravelCommand goes to the selected location.
type TravelCommand struct{}

// QuitCommand stops the game loop.
type QuitCommand struct{}

package terminal

import (
	"github.com/cbodonnell/kvartal/pkg/game"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/kinematic"
	"github.com/gdamore/tcell/v2"
)

// CommandForKey maps a key press to a game command. The second value is false for unbound keys.
// Terminals report presses but never releases, so a held arrow key arrives as a stream of
// repeats and each one becomes a single MoveCommand.
func CommandForKey(ev *tcell.EventKey) (interface{}, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.MoveCommand{Direction: kinematic.DirectionLeft}, true
	case tcell.KeyRight:
		return game.MoveCommand{Direction: kinematic.DirectionRight}, true
	case tcell.KeyEscape:
		return game.EscapeCommand{}, true
	case tcell.KeyEnter:
		return game.StartCommand{}, true
	case tcell.KeyCtrlC:
		return game.QuitCommand{}, true
	case tcell.KeyRune:
		return commandForRune(ev.Rune())
	}
	return nil, false
}

func commandForRune(r rune) (interface{}, bool) {
	switch r {
	case 'a', 'A', 'ф', 'Ф':
		return game.MoveCommand{Direction: kinematic.DirectionLeft}, true
	case 'd', 'D', 'в', 'В':
		return game.MoveCommand{Direction: kinematic.DirectionRight}, true
	case 'i', 'I', 'ш', 'Ш':
		return game.ToggleOverlayCommand{Overlay: types.OverlayInventory}, true
	case 'm', 'M', 'ь', 'Ь':
		return game.ToggleOverlayCommand{Overlay: types.OverlayMap}, true
	case 't', 'T', 'е', 'Е':
		return game.TravelCommand{}, true
	case 'q', 'Q', 'й', 'Й':
		return game.QuitCommand{}, true
	}
	if r >= '1' && r <= '9' {
		return game.ChooseCommand{Index: int(r - '0')}, true
	}
	return nil, false
}

// Package session holds the state of one play-through: which screen is shown,
// which overlays are open, where the player stands and what they have picked up.
//
// A Session is driven by a single goroutine. Front ends call Tick once per frame
// and read the events it publishes from the event queue.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/kvartal/pkg/catalog"
	"github.com/cbodonnell/kvartal/pkg/game/constants"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/kinematic"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/progression"
	"github.com/cbodonnell/kvartal/pkg/proximity"
	"github.com/cbodonnell/kvartal/pkg/queue"
)

var (
	ErrLocationLocked  = errors.New("location is locked")
	ErrNoLocation      = errors.New("no location selected")
	ErrNotInGame       = errors.New("not on the game screen")
	ErrUnknownLocation = errors.New("unknown location")
)

// Input is the held-key state sampled for one tick.
type Input struct {
	Left  bool
	Right bool
}

// Popup is the reward notification currently on screen.
type Popup struct {
	Reward    types.RewardEvent
	Remaining time.Duration
}

type Session struct {
	catalog *catalog.Catalog
	events  queue.Queue

	screen        types.Screen
	inventoryOpen bool
	mapOpen       bool

	player    types.PlayerState
	x         float64
	facing    kinematic.Direction
	walking   bool
	walkCycle float64
	collected proximity.CollectedSet
	activeNPC *types.NPC
	dialogue  string
	popup     *Popup

	selectedLocation *types.Location
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	// Catalog is the static game content. Defaults to catalog.Default().
	Catalog *catalog.Catalog
	// EventQueue receives every event the session publishes.
	EventQueue queue.Queue
}

func NewSession(opts NewSessionOptions) (*Session, error) {
	if opts.EventQueue == nil {
		return nil, fmt.Errorf("event queue is required")
	}
	c := opts.Catalog
	if c == nil {
		c = catalog.Default()
	}

	s := &Session{
		catalog: c,
		events:  opts.EventQueue,
		screen:  types.ScreenMenu,
	}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.inventoryOpen = false
	s.mapOpen = false
	s.player = types.NewPlayerState()
	s.x = constants.PlayerStartingX
	s.facing = kinematic.DirectionRight
	s.walking = false
	s.walkCycle = 0
	s.collected = proximity.NewCollectedSet()
	s.activeNPC = nil
	s.dialogue = ""
	s.popup = nil
	s.selectedLocation = nil
}

func (s *Session) publish(event interface{}) {
	if err := s.events.Enqueue(event); err != nil {
		log.Error("Failed to publish %T: %v", event, err)
	}
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Session) Screen() types.Screen {
	return s.screen
}

func (s *Session) Player() types.PlayerState {
	return s.player
}

func (s *Session) X() float64 {
	return s.x
}

func (s *Session) Facing() kinematic.Direction {
	return s.facing
}

func (s *Session) Walking() bool {
	return s.walking
}

func (s *Session) WalkCycle() float64 {
	return s.walkCycle
}

// Collected reports whether the collectible with the given id was picked up.
func (s *Session) Collected(id int) bool {
	return s.collected.Has(id)
}

// ActiveNPC returns the NPC in range and their line, or nil.
func (s *Session) ActiveNPC() (*types.NPC, string) {
	return s.activeNPC, s.dialogue
}

// Popup returns the reward popup currently on screen.
func (s *Session) Popup() (Popup, bool) {
	if s.popup == nil {
		return Popup{}, false
	}
	return *s.popup, true
}

func (s *Session) InventoryOpen() bool {
	return s.inventoryOpen
}

func (s *Session) MapOpen() bool {
	return s.mapOpen
}

func (s *Session) overlayOpen() bool {
	return s.inventoryOpen || s.mapOpen
}

func (s *Session) SelectedLocation() (types.Location, bool) {
	if s.selectedLocation == nil {
		return types.Location{}, false
	}
	return *s.selectedLocation, true
}

// Start begins a new game from the menu.
func (s *Session) Start() {
	if s.screen == types.ScreenGame {
		return
	}
	s.reset()
	s.screen = types.ScreenGame
	log.Info("Starting new game as %s", s.player.Name)
	s.publish(types.ScreenChangedEvent{Screen: types.ScreenGame})
}

// QuitToMenu leaves the game screen. Pending overlay and popup state is discarded.
func (s *Session) QuitToMenu() {
	if s.screen == types.ScreenMenu {
		return
	}
	s.CloseOverlays()
	s.cancelPopup()
	s.screen = types.ScreenMenu
	s.publish(types.ScreenChangedEvent{Screen: types.ScreenMenu})
}

// Tick advances the session by one frame.
func (s *Session) Tick(in Input, dt time.Duration) {
	if s.screen != types.ScreenGame {
		return
	}

	s.tickPopup(dt)

	if s.overlayOpen() {
		s.walking = false
	} else {
		s.move(in)
	}

	s.evaluate()
}

func (s *Session) move(in Input) {
	moved := false
	if in.Left {
		s.x = kinematic.StepLeft(s.x)
		s.facing = kinematic.DirectionLeft
		moved = true
	}
	if in.Right {
		s.x = kinematic.StepRight(s.x)
		s.facing = kinematic.DirectionRight
		moved = true
	}
	s.walking = moved
	if moved {
		s.walkCycle += constants.WalkCycleStep
	}
}

func (s *Session) evaluate() {
	before := s.player
	result := proximity.Evaluate(s.player, s.x, s.catalog, s.collected)
	s.player = result.Player
	s.collected = result.Collected

	if result.Reward != nil {
		log.Debug("Picked up collectible %d at x=%0.0f: +%d XP", result.Reward.CollectibleID, s.x, result.Reward.XP)
		s.popup = &Popup{
			Reward:    *result.Reward,
			Remaining: result.Reward.TTL,
		}
		s.publish(*result.Reward)

		if progression.LevelsGained(before, s.player) > 0 {
			log.Info("%s reached level %d", s.player.Name, s.player.Level)
			s.publish(types.LevelUpEvent{
				Level:        s.player.Level,
				MaxHitpoints: s.player.MaxHitpoints,
			})
		}
	}

	if !sameNPC(s.activeNPC, result.ActiveNPC) {
		s.activeNPC = result.ActiveNPC
		s.dialogue = result.Dialogue
		s.publish(types.NPCChangedEvent{
			NPC:      s.activeNPC,
			Dialogue: s.dialogue,
		})
	}
}

func sameNPC(a, b *types.NPC) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

func (s *Session) tickPopup(dt time.Duration) {
	if s.popup == nil {
		return
	}
	s.popup.Remaining -= dt
	if s.popup.Remaining <= 0 {
		s.popup = nil
	}
}

func (s *Session) cancelPopup() {
	s.popup = nil
}

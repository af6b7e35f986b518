package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/kinematic"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/queue"
	"github.com/cbodonnell/kvartal/pkg/session"
)

// GameManager drives a session at a fixed interval for front ends without their own game loop.
// Commands are read from a queue once per tick. Events published by the session are handed to
// OnEvent in order, and OnFrame runs after every tick.
type GameManager struct {
	session          *session.Session
	commandQueue     queue.Queue
	eventQueue       queue.Queue
	gameLoopInterval time.Duration
	onEvent          func(event interface{})
	onFrame          func()
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Session          *session.Session
	CommandQueue     queue.Queue
	EventQueue       queue.Queue
	GameLoopInterval time.Duration
	// OnEvent is called for every session event. Optional.
	OnEvent func(event interface{})
	// OnFrame is called after every tick. Optional.
	OnFrame func()
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	gm := &GameManager{
		session:          opts.Session,
		commandQueue:     opts.CommandQueue,
		eventQueue:       opts.EventQueue,
		gameLoopInterval: opts.GameLoopInterval,
		onEvent:          opts.OnEvent,
		onFrame:          opts.OnFrame,
	}
	if gm.onEvent == nil {
		gm.onEvent = func(interface{}) {}
	}
	if gm.onFrame == nil {
		gm.onFrame = func() {}
	}
	return gm
}

// errQuit stops the loop after a QuitCommand.
var errQuit = errors.New("quit requested")

// Start runs the game loop until ctx is cancelled or a QuitCommand is processed.
func (gm *GameManager) Start(ctx context.Context) error {
	if gm.gameLoopInterval <= 0 {
		return fmt.Errorf("invalid game loop interval %s", gm.gameLoopInterval)
	}

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := gm.gameTick(); err != nil {
				if errors.Is(err, errQuit) {
					log.Info("Stopping game loop")
					return nil
				}
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick() error {
	in, quit, err := gm.processCommands()
	if err != nil {
		return fmt.Errorf("failed to process commands: %v", err)
	}

	gm.session.Tick(in, gm.gameLoopInterval)
	gm.processEvents()
	gm.onFrame()

	if quit {
		return errQuit
	}
	return nil
}

// processCommands applies all pending commands and folds movement into a single tick input.
func (gm *GameManager) processCommands() (session.Input, bool, error) {
	var in session.Input
	quit := false

	pending, err := gm.commandQueue.ReadAllMessages()
	if err != nil {
		return in, false, fmt.Errorf("failed to read commands: %v", err)
	}

	for _, item := range pending {
		switch cmd := item.(type) {
		case MoveCommand:
			switch cmd.Direction {
			case kinematic.DirectionLeft:
				in.Left = true
			case kinematic.DirectionRight:
				in.Right = true
			}
		case ToggleOverlayCommand:
			switch cmd.Overlay {
			case types.OverlayInventory:
				gm.session.ToggleInventory()
			case types.OverlayMap:
				gm.session.ToggleMap()
			}
		case EscapeCommand:
			if gm.session.InventoryOpen() || gm.session.MapOpen() {
				gm.session.CloseOverlays()
			} else {
				gm.session.QuitToMenu()
			}
		case StartCommand:
			gm.session.Start()
		case UpgradeSkillCommand:
			if !gm.session.UpgradeSkill(cmd.Skill) {
				log.Debug("Cannot upgrade %s", cmd.Skill)
			}
		case SelectLocationCommand:
			if err := gm.session.SelectLocation(cmd.LocationID); err != nil {
				log.Debug("Failed to select location %d: %v", cmd.LocationID, err)
			}
		case ChooseCommand:
			gm.choose(cmd.Index)
		case TravelCommand:
			if err := gm.session.Travel(); err != nil {
				log.Debug("Failed to travel: %v", err)
			}
		case QuitCommand:
			quit = true
		default:
			log.Warn("Received unexpected command %T", item)
		}
	}

	return in, quit, nil
}

func (gm *GameManager) choose(index int) {
	switch {
	case gm.session.MapOpen():
		if err := gm.session.SelectLocation(index); err != nil {
			log.Debug("Failed to select location %d: %v", index, err)
		}
	case gm.session.InventoryOpen():
		skill := types.Skill(index - 1)
		if index < 1 || !skill.Valid() || !gm.session.UpgradeSkill(skill) {
			log.Debug("Cannot upgrade skill %d", index)
		}
	}
}

func (gm *GameManager) processEvents() {
	events, err := gm.eventQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read session events: %v", err)
		return
	}
	for _, event := range events {
		gm.onEvent(event)
	}
}

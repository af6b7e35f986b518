package game

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/kvartal/client/scenes"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/queue"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// session is the play-through driven by this game.
	session *session.Session
	// events receives everything the session publishes.
	events queue.Queue
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// exit is set when the player asks to quit.
	exit bool
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	}
	return "Unknown"
}

const (
	DefaultScreenWidth  = 960
	DefaultScreenHeight = 540
)

type NewGameOptions struct {
	Debug bool
	// EventQueue is the queue the session publishes to and the game drains every frame.
	EventQueue queue.Queue
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	events := opts.EventQueue
	if events == nil {
		events = queue.NewInMemoryQueue(1024)
	}

	s, err := session.NewSession(session.NewSessionOptions{
		EventQueue: events,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}

	g := &Game{
		debug:   opts.Debug,
		session: s,
		events:  events,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnNewGame: g.session.Start,
		OnExit: func() {
			log.Info("Exiting")
			g.exit = true
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

func (g *Game) loadCity() error {
	city, err := scenes.NewCityScene(scenes.CitySceneOptions{
		Session:      g.session,
		Debug:        g.debug,
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
	})
	if err != nil {
		return fmt.Errorf("failed to create city scene: %v", err)
	}
	if err := g.SetScene(city); err != nil {
		return fmt.Errorf("failed to set city scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

func (g *Game) Update() error {
	if g.exit {
		return ebiten.Termination
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if err := g.processPendingEvents(); err != nil {
		return fmt.Errorf("failed to process pending events: %v", err)
	}

	return nil
}

func (g *Game) processPendingEvents() error {
	events, err := g.events.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read session events: %v", err)
	}

	for _, event := range events {
		if e, ok := event.(types.ScreenChangedEvent); ok {
			if err := g.handleScreenChanged(e); err != nil {
				return err
			}
			continue
		}

		handled, err := scenes.Dispatch(g.scene, event)
		if err != nil {
			log.Error("Failed to handle %T: %v", event, err)
		} else if !handled {
			log.Trace("Dropping %T in mode %s", event, g.mode)
		}
	}

	return nil
}

func (g *Game) handleScreenChanged(e types.ScreenChangedEvent) error {
	log.Debug("Screen changed to %s", e.Screen)
	switch e.Screen {
	case types.ScreenGame:
		if g.mode == GameModePlay {
			return nil
		}
		if err := g.loadCity(); err != nil {
			return fmt.Errorf("failed to load city scene: %v", err)
		}
	case types.ScreenMenu:
		if g.mode == GameModeMenu {
			return nil
		}
		if err := g.loadMenu(); err != nil {
			return fmt.Errorf("failed to load menu scene: %v", err)
		}
	default:
		return errors.New("unknown screen")
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}

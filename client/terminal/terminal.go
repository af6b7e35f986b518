package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/kvartal/pkg/game"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/queue"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the terminal tick rate, roughly 60 frames per second.
const FrameInterval = 16 * time.Millisecond

type Options struct {
	// Mute skips opening the audio device.
	Mute bool
	// Screen overrides the terminal screen. Optional.
	Screen tcell.Screen
}

// Run plays the game in the terminal until the player quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create screen: %v", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	logger := log.Scoped("terminal")

	commandQueue := queue.NewInMemoryQueue(1024)
	eventQueue := queue.NewInMemoryQueue(1024)

	s, err := session.NewSession(session.NewSessionOptions{EventQueue: eventQueue})
	if err != nil {
		return fmt.Errorf("failed to create session: %v", err)
	}

	chime := NewChime()
	if !opts.Mute {
		if err := chime.Init(); err != nil {
			logger.Warn("Running without sound: %v", err)
		}
	}

	renderer := NewRenderer(screen, s)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollInput(ctx, logger, screen, commandQueue)

	gm := game.NewGameManager(game.NewGameManagerOptions{
		Session:          s,
		CommandQueue:     commandQueue,
		EventQueue:       eventQueue,
		GameLoopInterval: FrameInterval,
		OnEvent: func(event interface{}) {
			renderer.HandleEvent(event)
			chime.HandleEvent(event)
		},
		OnFrame: renderer.Draw,
	})

	logger.Info("Starting terminal game loop")
	return gm.Start(ctx)
}

// pollInput turns terminal key presses into commands until the screen is finalized.
func pollInput(ctx context.Context, logger *log.Logger, screen tcell.Screen, commandQueue queue.Queue) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if ctx.Err() != nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd, ok := CommandForKey(ev)
			if !ok {
				continue
			}
			if err := commandQueue.Enqueue(cmd); err != nil {
				logger.Error("Failed to enqueue command %T: %v", cmd, err)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

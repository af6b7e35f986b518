package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/kvartal/client/game"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/queue"
	"github.com/cbodonnell/kvartal/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen")
	scale := flag.Int("scale", 1, "Window scale factor")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	if *scale < 1 {
		*scale = 1
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:      *debug,
		EventQueue: queue.NewInMemoryQueue(1024),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth*(*scale), game.DefaultScreenHeight*(*scale))
	ebiten.SetWindowTitle("BLACK RUSSIA 2D")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
	log.Info("Client stopped")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/kvartal/client/terminal"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/version"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	logFile := flag.String("log-file", "", "Write logs to this file. Logs are discarded when empty since the terminal is taken by the game")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			panic(fmt.Sprintf("Failed to open log file: %v", err))
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting terminal client version %s", version.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := terminal.Run(ctx, terminal.Options{Mute: *mute}); err != nil {
		fmt.Fprintf(os.Stderr, "Terminal client failed: %v\n", err)
		os.Exit(1)
	}
	log.Info("Terminal client stopped")
}

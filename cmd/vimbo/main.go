package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"vimbo/internal/cheats"
	"vimbo/internal/config"
	"vimbo/internal/pager"
	"vimbo/internal/ui"
	"vimbo/internal/ui/logic"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if cfg.ShowVersion {
		fmt.Printf("vimbo %s\n", version)
		return 0
	}

	// Set up logging
	if cfg.LogPath != "" {
		logFile, err := tea.LogToFile(cfg.LogPath, "vimbo")
		if err != nil {
			fmt.Fprintf(os.Stderr, "vimbo: %v\n", err)
			return 1
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	dataset, err := cheats.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vimbo: %v\n", err)
		return 1
	}

	if cfg.List {
		if err := pager.New(os.Stdout).List(logic.Filter(dataset, cfg.InitialQuery)); err != nil {
			fmt.Fprintf(os.Stderr, "vimbo: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	var caught atomic.Value
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		sig := <-sigChan
		caught.Store(sig)
		cancel()
	}()

	opts := ui.Options{
		Dataset:      dataset,
		InitialQuery: cfg.InitialQuery,
		PageSize:     cfg.PageSize,
	}
	if err := ui.Run(ctx, opts); err != nil {
		if ui.Interrupted(err) {
			sig, _ := caught.Load().(os.Signal)
			log.Printf("terminated by signal %v", sig)
			return signalExitCode(sig)
		}
		fmt.Fprintf(os.Stderr, "vimbo: %v\n", err)
		return 1
	}
	return 0
}

// signalExitCode follows the shell convention of 128 plus the signal number.
// A session interrupted before the signal was recorded counts as SIGINT.
func signalExitCode(sig os.Signal) int {
	s, ok := sig.(syscall.Signal)
	if !ok {
		s = syscall.SIGINT
	}
	return 128 + int(s)
}

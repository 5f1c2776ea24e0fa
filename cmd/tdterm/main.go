// cmd/tdterm/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"balloon-tower-defense/internal/advisor"
	"balloon-tower-defense/internal/app"
	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	defsPath := flag.String("defs", "", "path to a definitions YAML file (embedded defaults if empty)")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	flag.Parse()

	lib := defs.Default()
	if *defsPath != "" {
		loaded, err := defs.LoadLibrary(*defsPath)
		if err != nil {
			log.Fatal(err)
		}
		lib = loaded
	}

	// Лог в терминал испортит картинку, поэтому либо в файл, либо никуда.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	game := app.NewGame(lib, *seed)
	adv := advisor.New(advisor.RuleSuggester{Library: lib}, advisor.DefaultTimeout)
	if client, err := advisor.NewGenerativeClientFromEnv(); err == nil {
		adv = advisor.New(client, advisor.DefaultTimeout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	term.NewSession(game, screen, adv).Run(ctx)
}

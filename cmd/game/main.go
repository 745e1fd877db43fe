package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/skyfall/internal/audio"
	"github.com/tomz197/skyfall/internal/config"
	"github.com/tomz197/skyfall/internal/loop"
	"github.com/tomz197/skyfall/internal/store"
)

const defaultDBPath = "skyfall.db"

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{}

	dbPath := config.GetEnv("SKYFALL_DB", defaultDBPath)
	if db, err := store.Open(dbPath); err == nil {
		defer db.Close()
		opts.Store = db
	} else {
		fmt.Fprintf(os.Stderr, "high score store unavailable: %v\n", err)
	}

	// A failed audio init just means a silent game.
	snd := audio.NewManager()
	if err := snd.Init(); err == nil {
		defer snd.Close()
		opts.Cues = snd
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/core"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/parameter"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML session file (default: built-in projects)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/folio.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio cues muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the main goroutine crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}

	table, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}

	catalog := cfg.Catalog()
	session := engine.NewSession(engine.SessionConfig{
		Targets:      catalog.Targets(),
		StartX:       cfg.StartX,
		TickInterval: cfg.Tick(),
		KeyTable:     table,
	})
	log.Printf("session %s: %d targets, tick %v", session.ID(), catalog.Len(), cfg.Tick())

	// Audio is optional, env overrides the file
	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = cfg.AudioEnabled()
	audioCfg.MasterVolume = cfg.AudioVolume()
	audioCfg = audio.ApplyEnv(audioCfg)

	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer func() {
		sound.Drain(parameter.AudioDrainTimeout)
		sound.Cleanup()
	}()
	sound.SetMuted(*muteFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableFocus()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newApp(screen, session, catalog, table, cfg.Hold(), sound).run(ctx)

	log.Printf("session %s: exit after %d ticks", session.ID(), session.TickCount())
}

package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/core"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/render/renderers"
)

// app is the terminal front-end: it feeds keys into the session and draws its snapshots
type app struct {
	screen       tcell.Screen
	session      *engine.Session
	catalog      *content.Catalog
	feed         *engine.KeyFeed
	sound        *audio.SoundManager
	orchestrator *render.Orchestrator
}

func newApp(screen tcell.Screen, session *engine.Session, catalog *content.Catalog, table *input.KeyTable, hold time.Duration, sound *audio.SoundManager) *app {
	a := &app{
		screen:       screen,
		session:      session,
		catalog:      catalog,
		feed:         engine.NewKeyFeed(nil, session.Queue(), table, hold),
		sound:        sound,
		orchestrator: render.NewOrchestrator(screen),
	}
	renderers.RegisterAll(a.orchestrator)

	session.OnJump(func(uint64) { sound.PlayJump() })
	session.OnSelect(func(ev engine.SelectionEvent) {
		if ev.Changed && ev.ID != "" {
			sound.PlaySelect()
		}
	})
	return a
}

// handleEvent applies one terminal event, returns false when the user quits
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		a.orchestrator.Resize(w, h)
	case *tcell.EventFocus:
		if !ev.Focused {
			a.feed.ReleaseAll()
		}
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q' || r == 'Q':
			return false
		case r == 'm' || r == 'M':
			a.sound.SetMuted(!a.sound.IsMuted())
			return true
		case r == 'p' || r == 'P':
			if !a.session.Resume() {
				a.session.Pause()
				a.feed.ReleaseAll()
			}
			return true
		case r == '0':
			a.session.Select("")
			return true
		case r >= '1' && r <= '9':
			if p, ok := a.catalog.At(int(r - '1')); ok {
				a.session.Select(p.ID)
			}
			return true
		}
	}

	a.feed.Press(input.CodeFromEvent(ev))
	return true
}

// renderFrame releases expired keys and draws the latest snapshot
func (a *app) renderFrame() {
	a.feed.Flush()

	w, h := a.screen.Size()
	a.orchestrator.RenderFrame(render.RenderContext{
		Snapshot:     a.session.Snapshot(),
		Catalog:      a.catalog,
		AudioEnabled: a.sound.IsActive(),
		Muted:        a.sound.IsMuted(),
		Paused:       a.session.IsPaused(),
		Dropped:      a.session.Queue().Dropped(),
		Late:         a.session.Scheduler().LateCount(),
		Width:        w,
		Height:       h,
	})
}

// run starts the session and drives the frame loop until quit or ctx cancellation
func (a *app) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.session.Start(ctx)
	defer a.session.Stop()
	defer a.feed.ReleaseAll()

	events := make(chan tcell.Event, parameter.InputQueueSize)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	a.renderFrame()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !a.handleEvent(ev) {
				log.Printf("session %s: quit requested", a.session.ID())
				return
			}
		case <-frameTicker.C:
			a.renderFrame()
		}
	}
}

package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/render"
	"github.com/pixil98/go-testutil"
)

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(60, 24)
	t.Cleanup(screen.Fini)

	catalog := content.NewCatalog(content.DefaultProjects())
	session := engine.NewSession(engine.SessionConfig{Targets: catalog.Targets()})
	t.Cleanup(session.Stop)

	cfg := audio.DefaultConfig()
	cfg.Enabled = false
	sound := audio.NewSoundManager(cfg)

	return newApp(screen, session, catalog, nil, parameter.KeyHoldWindow, sound), screen
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDigitKeysSelectDirectly(t *testing.T) {
	a, _ := newTestApp(t)

	testutil.AssertEqual(t, "handled", a.handleEvent(runeKey('3')), true)
	testutil.AssertEqual(t, "third project", a.session.Selection(), "synth")

	a.handleEvent(runeKey('9'))
	testutil.AssertEqual(t, "missing slot ignored", a.session.Selection(), "synth")

	a.handleEvent(runeKey('0'))
	testutil.AssertEqual(t, "cleared", a.session.Selection(), "")
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)

	quit := []*tcell.EventKey{
		runeKey('q'),
		runeKey('Q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quit {
		if a.handleEvent(ev) {
			t.Errorf("key %v did not quit", ev.Name())
		}
	}
}

func TestMovementKeyReachesSession(t *testing.T) {
	a, _ := newTestApp(t)

	a.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	a.session.Step()

	testutil.AssertEqual(t, "vx", a.session.Snapshot().Velocity.X, -parameter.MoveSpeed)
}

func TestMuteToggle(t *testing.T) {
	a, _ := newTestApp(t)

	a.handleEvent(runeKey('m'))
	testutil.AssertEqual(t, "muted", a.sound.IsMuted(), true)
	a.handleEvent(runeKey('m'))
	testutil.AssertEqual(t, "unmuted", a.sound.IsMuted(), false)
}

func TestFocusLossReleasesKeys(t *testing.T) {
	a, _ := newTestApp(t)

	a.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	a.handleEvent(tcell.NewEventFocus(false))
	a.session.Step()

	// Press and release drained in the same tick leave no direction held
	testutil.AssertEqual(t, "vx", a.session.Snapshot().Velocity.X, 0.0)
}

func TestRenderFrameDrawsAvatar(t *testing.T) {
	a, screen := newTestApp(t)
	a.renderFrame()

	ctx := render.RenderContext{Width: 60, Height: 24}
	r, _, _, _ := screen.GetContent(ctx.Column(0), ctx.Row(0)-2)
	testutil.AssertEqual(t, "head", r, 'o')
}

func TestRunExitsOnQuitKey(t *testing.T) {
	a, screen := newTestApp(t)

	done := make(chan struct{})
	go func() {
		a.run(context.Background())
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after quit key")
	}
	testutil.AssertEqual(t, "scheduler stopped", a.session.Scheduler().IsRunning(), false)
}

func TestRunExitsOnCancel(t *testing.T) {
	a, _ := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestPauseToggle(t *testing.T) {
	a, _ := newTestApp(t)

	a.handleEvent(runeKey('p'))
	testutil.AssertEqual(t, "paused", a.session.IsPaused(), true)
	a.handleEvent(runeKey('p'))
	testutil.AssertEqual(t, "resumed", a.session.IsPaused(), false)
}

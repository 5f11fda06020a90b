package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-testutil"
)

func TestGoRecoversPanic(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	SetCrashScreen(screen)

	exited := make(chan int, 1)
	orig := exitFunc
	exitFunc = func(code int) { exited <- code }
	defer func() {
		exitFunc = orig
		SetCrashScreen(nil)
	}()

	Go(func() { panic("boom") })

	testutil.AssertEqual(t, "exit code", <-exited, 1)

	crashMu.Lock()
	defer crashMu.Unlock()
	testutil.AssertEqual(t, "screen released", crashScreen == nil, true)
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	called := false
	orig := exitFunc
	exitFunc = func(int) { called = true }
	defer func() { exitFunc = orig }()

	HandleCrash(nil)
	testutil.AssertEqual(t, "exit called", called, false)
}

package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-testutil"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestBufferClipsOutOfBounds(t *testing.T) {
	b := NewBuffer(4, 2)
	b.SetWithBg(-1, 0, 'x', RgbStatusBar, RGBBlack)
	b.SetWithBg(4, 1, 'x', RgbStatusBar, RGBBlack)
	b.SetFgOnly(0, 2, 'x', RgbStatusBar, 0)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if r := b.Get(x, y).Rune; r != 0 {
				t.Errorf("cell (%d,%d) = %q, want empty", x, y, r)
			}
		}
	}
	testutil.AssertEqual(t, "out of range get", b.Get(9, 9), Cell{})
}

func TestBufferSetStringStopsAtEdge(t *testing.T) {
	b := NewBuffer(5, 1)
	end := b.SetString(2, 0, "hello", RgbStatusBar, 0)

	testutil.AssertEqual(t, "end column", end, 5)
	testutil.AssertEqual(t, "first", b.Get(2, 0).Rune, 'h')
	testutil.AssertEqual(t, "last", b.Get(4, 0).Rune, 'l')
}

func TestBufferResizeClears(t *testing.T) {
	b := NewBuffer(3, 3)
	b.SetWithBg(1, 1, '#', RgbStatusBar, RGBBlack)
	b.Resize(2, 2)

	w, h := b.Size()
	testutil.AssertEqual(t, "width", w, 2)
	testutil.AssertEqual(t, "height", h, 2)
	testutil.AssertEqual(t, "cleared", b.Get(1, 1).Rune, rune(0))
}

func TestFlushDefaultsBackground(t *testing.T) {
	s := newSimScreen(t, 3, 1)
	b := NewBuffer(3, 1)
	b.SetFgOnly(0, 0, 'a', RgbStatusBar, 0)
	b.SetWithBg(1, 0, 'b', RgbStatusBar, RgbSurface)
	b.Flush(s)

	testutil.AssertEqual(t, "untouched bg", b.Get(0, 0).Bg, RgbBackground)
	testutil.AssertEqual(t, "explicit bg", b.Get(1, 0).Bg, RgbSurface)

	r, _, _, _ := s.GetContent(0, 0)
	testutil.AssertEqual(t, "rune", r, 'a')
	r, _, _, _ = s.GetContent(1, 0)
	testutil.AssertEqual(t, "second rune", r, 'b')
	r, _, _, _ = s.GetContent(2, 0)
	testutil.AssertEqual(t, "blank", r, ' ')
}

type recordingRenderer struct {
	name  string
	log   *[]string
	shown bool
}

func (r *recordingRenderer) Render(RenderContext, *Buffer) { *r.log = append(*r.log, r.name) }
func (r *recordingRenderer) IsVisible() bool               { return r.shown }

func TestOrchestratorPriorityOrder(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	o := NewOrchestrator(s)

	var calls []string
	o.Register(&recordingRenderer{name: "ui", log: &calls, shown: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "ground", log: &calls, shown: true}, PriorityGround)
	o.Register(&recordingRenderer{name: "hidden", log: &calls, shown: false}, PriorityTargets)
	o.Register(&recordingRenderer{name: "ui2", log: &calls, shown: true}, PriorityUI)

	o.RenderFrame(RenderContext{Width: 10, Height: 5})

	testutil.AssertEqual(t, "order", strings.Join(calls, ","), "ground,ui,ui2")
}

func TestOrchestratorFollowsContextSize(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	o := NewOrchestrator(s)

	o.RenderFrame(RenderContext{Width: 20, Height: 8})

	w, h := o.Buffer().Size()
	testutil.AssertEqual(t, "width", w, 20)
	testutil.AssertEqual(t, "height", h, 8)
}

func TestContextMapping(t *testing.T) {
	ctx := RenderContext{Width: 40, Height: 20}

	testutil.AssertEqual(t, "left bound", ctx.Column(-8), 2)
	testutil.AssertEqual(t, "right bound", ctx.Column(8), 37)
	testutil.AssertEqual(t, "origin", ctx.Column(0), 20)
	testutil.AssertEqual(t, "ground row", ctx.GroundRow(), 18)
	testutil.AssertEqual(t, "standing row", ctx.Row(0), 17)
	testutil.AssertEqual(t, "one unit up", ctx.Row(1), 15)
}

func TestRGBBlend(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{200, 100, 50}

	testutil.AssertEqual(t, "no alpha", a.Blend(b, 0), a)
	testutil.AssertEqual(t, "full alpha", a.Blend(b, 1), b)
	testutil.AssertEqual(t, "half", a.Blend(b, 0.5), RGB{100, 50, 25})
	testutil.AssertEqual(t, "max", RGB{10, 200, 0}.Max(RGB{20, 100, 5}), RGB{20, 200, 5})
}

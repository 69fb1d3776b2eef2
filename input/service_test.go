package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/events"
	"github.com/lixenwraith/archive/layout"
	"github.com/lixenwraith/archive/vmath"
)

type staticScene struct {
	scene *layout.Scene
}

func (s *staticScene) Scene() *layout.Scene { return s.scene }

type recorder struct {
	events []events.Event
}

func record(bus *events.Bus) *recorder {
	r := &recorder{}
	for t := events.EventPointerMove; t <= events.EventSubmitted; t++ {
		bus.Subscribe(t, func(ev events.Event) { r.events = append(r.events, ev) })
	}
	return r
}

func (r *recorder) types() []events.EventType {
	out := make([]events.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func (r *recorder) count(t events.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newTestScene() *staticScene {
	s := layout.NewScene(vmath.R(0, 0, 80*constants.CellWidthPx, 24*constants.CellHeightPx))
	s.Root.Add(layout.NewElement("btn", vmath.CellRect{X: 10, Y: 5, W: 10, H: 2}.
		ToPixels(constants.CellWidthPx, constants.CellHeightPx), constants.TagButton))
	return &staticScene{scene: s}
}

func TestMouseMoveAndHover(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	svc := NewService(bus, newTestScene())

	svc.Handle(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	svc.Handle(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	svc.Handle(tcell.NewEventMouse(13, 5, tcell.ButtonNone, tcell.ModNone))
	bus.Dispatch()

	if got := rec.count(events.EventPointerMove); got != 3 {
		t.Errorf("Expected 3 moves, got %d", got)
	}
	// Root on first move, button on second, same leaf on third
	if got := rec.count(events.EventPointerOver); got != 2 {
		t.Errorf("Expected 2 hover changes, got %d", got)
	}
	if h := svc.Hovered(); len(h) == 0 || h[0].ID != "btn" {
		t.Errorf("Expected btn hovered, got %v", h)
	}

	move := rec.events[0].Payload.(*events.PointerPayload)
	want := vmath.CellToPixel(1, 1, constants.CellWidthPx, constants.CellHeightPx)
	if move.Pos != want {
		t.Errorf("Expected pixel center %v, got %v", want, move.Pos)
	}
}

func TestMouseButtonTransitions(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	svc := NewService(bus, newTestScene())

	svc.Handle(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone))
	svc.Handle(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone))
	svc.Handle(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	bus.Dispatch()

	if rec.count(events.EventPointerDown) != 1 || rec.count(events.EventPointerUp) != 1 {
		t.Errorf("Expected one down and one up, got %v", rec.types())
	}
	for _, ev := range rec.events {
		if ev.Type == events.EventPointerDown {
			p := ev.Payload.(*events.PointerPayload)
			if len(p.Chain) == 0 || p.Chain[0].ID != "btn" {
				t.Error("Expected down to carry the hovered chain")
			}
		}
	}
}

func TestWheelScroll(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	svc := NewService(bus, newTestScene())

	svc.Handle(tcell.NewEventMouse(2, 2, tcell.WheelDown, tcell.ModNone))
	svc.Handle(tcell.NewEventMouse(2, 2, tcell.WheelUp, tcell.ModNone))
	bus.Dispatch()

	var deltas []float64
	for _, ev := range rec.events {
		if ev.Type == events.EventScroll {
			deltas = append(deltas, ev.Payload.(*events.ScrollPayload).DeltaY)
		}
	}
	if len(deltas) != 2 || deltas[0] != constants.WheelStepPx || deltas[1] != -constants.WheelStepPx {
		t.Errorf("Expected [+step -step], got %v", deltas)
	}
	if rec.count(events.EventPointerDown) != 0 {
		t.Error("Wheel must not produce button events")
	}
}

func TestKeysAndResize(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	svc := NewService(bus, newTestScene())

	svc.Handle(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	svc.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	svc.Handle(tcell.NewEventResize(120, 40))
	bus.Dispatch()

	types := rec.types()
	want := []events.EventType{events.EventKey, events.EventQuit, events.EventResize}
	if len(types) != len(want) {
		t.Fatalf("Expected %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], types[i])
		}
	}
	if k := rec.events[0].Payload.(*events.KeyPayload); k.Rune != 'a' {
		t.Errorf("Expected rune a, got %q", k.Rune)
	}
	if r := rec.events[2].Payload.(*events.ResizePayload); r.Cols != 120 || r.Rows != 40 {
		t.Errorf("Expected 120x40, got %dx%d", r.Cols, r.Rows)
	}
}

// TestRehoverAfterSceneChange verifies content moving under a still pointer reclassifies hover
func TestRehoverAfterSceneChange(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	src := newTestScene()
	svc := NewService(bus, src)

	svc.Handle(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	bus.Dispatch()
	before := rec.count(events.EventPointerOver)

	src.scene = layout.NewScene(src.scene.Root.Rect)
	svc.Rehover()
	bus.Dispatch()

	if rec.count(events.EventPointerOver) != before+1 {
		t.Error("Expected hover change after scene rebuild")
	}
	if h := svc.Hovered(); len(h) != 1 || h[0].ID != "root" {
		t.Errorf("Expected root hovered, got %v", h)
	}
}

// TestRehoverRebuiltSceneUnchanged verifies an equal rebuilt tree publishes no hover
func TestRehoverRebuiltSceneUnchanged(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	src := newTestScene()
	svc := NewService(bus, src)

	svc.Handle(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	bus.Dispatch()
	before := rec.count(events.EventPointerOver)

	for range 5 {
		src.scene = newTestScene().scene
		svc.Rehover()
	}
	bus.Dispatch()

	if got := rec.count(events.EventPointerOver); got != before {
		t.Errorf("Expected no hover events for an unchanged scene, got %d", got-before)
	}
}

package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/events"
	"github.com/lixenwraith/archive/layout"
	"github.com/lixenwraith/archive/vmath"
)

// SceneSource provides the most recently rendered element tree
type SceneSource interface {
	Scene() *layout.Scene
}

// Service is the single point of raw input capture
// Translates tcell events into classified bus events; no other component reads tcell input
type Service struct {
	bus   *events.Bus
	scene SceneSource

	pos        vmath.Vec2
	hasPointer bool
	hovered    []*layout.Element
	buttons    tcell.ButtonMask
}

// NewService creates an input service publishing on bus
func NewService(bus *events.Bus, scene SceneSource) *Service {
	return &Service{bus: bus, scene: scene}
}

// Handle translates one raw terminal event
func (s *Service) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		s.handleMouse(ev)

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			s.bus.Publish(events.EventQuit, nil)
			return
		}
		s.bus.Publish(events.EventKey, &events.KeyPayload{
			Key:  ev.Key(),
			Rune: ev.Rune(),
			Mod:  ev.Modifiers(),
		})

	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.bus.Publish(events.EventResize, &events.ResizePayload{Cols: cols, Rows: rows})
	}
}

func (s *Service) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	pos := vmath.CellToPixel(cx, cy, constants.CellWidthPx, constants.CellHeightPx)
	buttons := ev.Buttons()

	if !s.hasPointer || pos != s.pos {
		s.pos = pos
		s.hasPointer = true
		s.bus.Publish(events.EventPointerMove, &events.PointerPayload{Pos: pos})
	}
	s.Rehover()

	switch {
	case buttons&tcell.WheelUp != 0:
		s.bus.Publish(events.EventScroll, &events.ScrollPayload{DeltaY: -constants.WheelStepPx})
	case buttons&tcell.WheelDown != 0:
		s.bus.Publish(events.EventScroll, &events.ScrollPayload{DeltaY: constants.WheelStepPx})
	}

	pressed := buttons&tcell.Button1 != 0
	was := s.buttons&tcell.Button1 != 0
	if pressed != was {
		payload := &events.PointerPayload{Pos: pos, Chain: s.hovered}
		if pressed {
			s.bus.Publish(events.EventPointerDown, payload)
		} else {
			s.bus.Publish(events.EventPointerUp, payload)
		}
	}
	s.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
}

// Rehover re-runs the hit test at the last pointer position
// Called after each render since content can move under a still pointer (scroll, expand)
// Publishes EventPointerOver only when the hovered leaf changed
func (s *Service) Rehover() {
	if !s.hasPointer || s.scene == nil {
		return
	}
	chain := s.scene.Scene().HitTest(s.pos)
	if layout.Same(chain, s.hovered) {
		s.hovered = chain
		return
	}
	s.hovered = chain
	s.bus.Publish(events.EventPointerOver, &events.OverPayload{Chain: chain})
}

// Pointer returns the last raw pointer position and whether one was seen
func (s *Service) Pointer() (vmath.Vec2, bool) {
	return s.pos, s.hasPointer
}

// Hovered returns the current hovered chain, leaf first
func (s *Service) Hovered() []*layout.Element {
	return s.hovered
}

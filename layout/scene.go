package layout

import "github.com/lixenwraith/archive/vmath"

// Scene is the element tree for one rendered frame
// Rebuilt by the page controller each frame, read by the input service for hit-testing
type Scene struct {
	Root *Element
}

// NewScene creates a scene whose root covers the viewport
func NewScene(viewport vmath.Rect) *Scene {
	return &Scene{Root: NewElement("root", viewport)}
}

// HitTest returns the chain from the deepest element containing p up to the root
// Later children paint over earlier ones and win the test
// Returns nil when p is outside the root
func (s *Scene) HitTest(p vmath.Vec2) []*Element {
	if s == nil || s.Root == nil || !s.Root.Rect.Contains(p) {
		return nil
	}
	return hit(s.Root, p).Chain()
}

func hit(e *Element, p vmath.Vec2) *Element {
	for i := len(e.children) - 1; i >= 0; i-- {
		c := e.children[i]
		if c.Rect.Contains(p) {
			return hit(c, p)
		}
	}
	return e
}

// Find returns the element with id, or nil
func (s *Scene) Find(id string) *Element {
	if s == nil || s.Root == nil {
		return nil
	}
	return s.Root.Find(id)
}
